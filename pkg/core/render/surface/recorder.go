package surface

import "github.com/matzehuels/randpix/pkg/core/render"

var _ render.Surface = (*Recorder)(nil)

// Op names a recorded surface call.
type Op string

const (
	OpClear Op = "clear"
	OpColor Op = "color"
	OpFill  Op = "fill"
)

// Call is one recorded surface call. Color is set for OpColor and, for
// OpFill, holds the fill color in effect at the time.
type Call struct {
	Op         Op
	X, Y, W, H int
	Color      string
}

// Recorder is a surface that only remembers what was asked of it.
type Recorder struct {
	Width, Height int
	Calls         []Call

	fill string
}

// NewRecorder returns an empty recorder of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) ClearRect(x, y, w, h int) {
	r.Calls = append(r.Calls, Call{Op: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) SetFillColor(css string) {
	r.fill = css
	r.Calls = append(r.Calls, Call{Op: OpColor, Color: css})
}

func (r *Recorder) FillRect(x, y, w, h int) {
	r.Calls = append(r.Calls, Call{Op: OpFill, X: x, Y: y, W: w, H: h, Color: r.fill})
}

// Fills returns the recorded FillRect calls in order.
func (r *Recorder) Fills() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == OpFill {
			out = append(out, c)
		}
	}
	return out
}

// Reset forgets every recorded call.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.fill = ""
}
