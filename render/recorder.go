package render

import (
	"fmt"
	"image/color"
)

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpGradient OpKind = "gradient"
	OpRect     OpKind = "rect"
	OpCircle   OpKind = "circle"
	OpLine     OpKind = "line"
	OpBlit     OpKind = "blit"
)

// Op is one recorded call.
type Op struct {
	Kind  OpKind
	Args  [5]float32
	Color color.RGBA
	Layer string // name of the blitted layer
}

func (o Op) String() string {
	if o.Kind == OpBlit {
		return fmt.Sprintf("blit(%s)", o.Layer)
	}
	return fmt.Sprintf("%s%v", o.Kind, o.Args)
}

// Recorder is a Canvas that records calls instead of drawing.
type Recorder struct {
	Name   string
	Width  int
	Height int
	Ops    []Op
	Layers []*Recorder
}

// NewRecorder creates a recording canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Name: "surface", Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) { return r.Width, r.Height }

func (r *Recorder) FillGradient(x, y, w, h float32, top, bottom color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpGradient, Args: [5]float32{x, y, w, h}, Color: top})
}

func (r *Recorder) FillRect(x, y, w, h float32, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Args: [5]float32{x, y, w, h}, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float32, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, Args: [5]float32{cx, cy, radius}, Color: clr})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float32, clr color.RGBA) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Args: [5]float32{x0, y0, x1, y1, width}, Color: clr})
}

func (r *Recorder) NewLayer(width, height int) Canvas {
	l := &Recorder{Name: fmt.Sprintf("layer%d", len(r.Layers)), Width: width, Height: height}
	r.Layers = append(r.Layers, l)
	return l
}

func (r *Recorder) Blit(layer Canvas) {
	name := "?"
	if l, ok := layer.(*Recorder); ok {
		name = l.Name
	}
	r.Ops = append(r.Ops, Op{Kind: OpBlit, Layer: name})
}

// Kinds returns the op kinds in call order.
func (r *Recorder) Kinds() []OpKind {
	out := make([]OpKind, len(r.Ops))
	for i, op := range r.Ops {
		out[i] = op.Kind
	}
	return out
}
