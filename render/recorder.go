package render

import (
	"fmt"
	"image/color"
	"log/slog"
)

// Operation is one recorded drawing call.
type Operation struct {
	Name  string
	X, Y  int
	W, H  int
	Color color.Color
}

// Recorder is a canvas that draws nothing. It keeps the operations of the
// frame being built and counts presented frames, which is enough for the
// headless frontend and for tests.
type Recorder struct {
	clr    color.Color
	ops    []Operation
	frames int

	log           *slog.Logger
	logOperations bool
}

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithLogger sets the logger used for presented frames.
func WithLogger(log *slog.Logger) RecorderOption {
	return func(r *Recorder) {
		r.log = log
	}
}

// WithLogOperations logs every drawing call at debug level.
func WithLogOperations(enabled bool) RecorderOption {
	return func(r *Recorder) {
		r.logOperations = enabled
	}
}

// NewRecorder creates an empty Recorder.
func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{
		clr: color.White,
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Recorder) SetColor(clr color.Color) {
	r.clr = clr
}

func (r *Recorder) FillRect(x, y, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("render: negative rectangle size %dx%d", width, height)
	}
	r.record(Operation{Name: "FillRect", X: x, Y: y, W: width, H: height, Color: r.clr})
	return nil
}

// Clear starts a new frame, dropping the operations of the previous one.
func (r *Recorder) Clear() error {
	r.ops = r.ops[:0]
	r.record(Operation{Name: "Clear", Color: r.clr})
	return nil
}

func (r *Recorder) Present() error {
	r.frames++
	if r.logOperations {
		r.log.Debug("frame presented", "frame", r.frames, "operations", len(r.ops))
	}
	return nil
}

// Operations returns the calls recorded since the last Clear.
func (r *Recorder) Operations() []Operation {
	return r.ops
}

// Frames returns the number of presented frames.
func (r *Recorder) Frames() int {
	return r.frames
}

// Covers reports whether any FillRect of the current frame covers (x, y).
func (r *Recorder) Covers(x, y int) bool {
	for _, op := range r.ops {
		if op.Name != "FillRect" {
			continue
		}
		if x >= op.X && x < op.X+op.W && y >= op.Y && y < op.Y+op.H {
			return true
		}
	}
	return false
}

func (r *Recorder) record(op Operation) {
	r.ops = append(r.ops, op)
	if r.logOperations {
		r.log.Debug("draw", "op", op.Name, "x", op.X, "y", op.Y, "w", op.W, "h", op.H)
	}
}
