package core

// OpKind names a recorded Canvas call.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpText
	OpLine
	OpCircle
)

// Op is one recorded Canvas call. Unused fields are zero.
type Op struct {
	Kind       OpKind
	X, Y, W, H float64
	Size       float64
	Text       string
	Glow, Fill Color
}

// Recorder is a Canvas that keeps the ops of the current frame. Front ends
// that draw outside the update call replay them later; tests inspect them.
type Recorder struct {
	Ops []Op
}

// Clear drops the recorded frame and records the clear itself.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

// Rect records a filled rectangle.
func (r *Recorder) Rect(x, y, w, h float64, glow, fill Color) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, X: x, Y: y, W: w, H: h, Glow: glow, Fill: fill})
}

// Text records a label.
func (r *Recorder) Text(text string, x, y, size float64) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Text: text, X: x, Y: y, Size: size})
}

// Line records a stroke; the end point is kept in W and H.
func (r *Recorder) Line(x1, y1, x2, y2 float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, X: x1, Y: y1, W: x2, H: y2, Fill: c})
}

// Circle records a disc; the radius is kept in W.
func (r *Recorder) Circle(cx, cy, rad float64, c Color) {
	r.Ops = append(r.Ops, Op{Kind: OpCircle, X: cx, Y: cy, W: rad, Fill: c})
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns the recorded labels in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Replay issues the recorded ops against dst.
func (r *Recorder) Replay(dst Canvas) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpRect:
			dst.Rect(op.X, op.Y, op.W, op.H, op.Glow, op.Fill)
		case OpText:
			dst.Text(op.Text, op.X, op.Y, op.Size)
		case OpLine:
			dst.Line(op.X, op.Y, op.W, op.H, op.Fill)
		case OpCircle:
			dst.Circle(op.X, op.Y, op.W, op.Fill)
		}
	}
}
