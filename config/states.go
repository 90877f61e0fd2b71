package config

// ParticleMode is the lifecycle state of a single particle.
type ParticleMode int

const (
	ModeAmbient        ParticleMode = iota // twinkling or drifting background point
	ModeShootingActive                     // moving, fading, leaving a trail
	ModeShootingIdle                       // parked, waiting for the trigger
)

func (m ParticleMode) String() string {
	switch m {
	case ModeAmbient:
		return "ambient"
	case ModeShootingActive:
		return "shooting-active"
	case ModeShootingIdle:
		return "shooting-idle"
	}
	return "unknown"
}

// SpawnPolicy selects how a field creates particles.
type SpawnPolicy int

const (
	SpawnProbabilistic SpawnPolicy = iota // idle particles activate with a per-frame probability
	SpawnPeriodic                         // a timer tops the population up to its target
	SpawnBurst                            // each scroll event appends a fixed batch
)

// Page identifies one of the hosted surfaces.
type Page int

const (
	PageHome Page = iota
	PagePlanets
	PageTimeline
)

func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PagePlanets:
		return "planets"
	case PageTimeline:
		return "timeline"
	}
	return "unknown"
}

// ParsePage maps a -page flag value to a Page.
func ParsePage(s string) (Page, bool) {
	for _, p := range []Page{PageHome, PagePlanets, PageTimeline} {
		if p.String() == s {
			return p, true
		}
	}
	return PageHome, false
}
