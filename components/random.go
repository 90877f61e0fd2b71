package components

import "github.com/yohamta/donburi"

// RandomSource yields uniform values in [0,1). Scenes install a seeded
// generator; tests install scripted sequences.
type RandomSource interface {
	Float64() float64
}

type RandomData struct {
	Source RandomSource
}

var Random = donburi.NewComponentType[RandomData]()
