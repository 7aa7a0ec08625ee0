package game

import (
	"math"
	"testing"

	"github.com/OpticalFlyer/pong/geom"
)

const epsilon = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= epsilon
}

func approxPoint(a, b geom.Point) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestNew(t *testing.T) {
	s := New(DefaultConfig())

	if s.Ball.Pos != geom.Pt(600, 300) {
		t.Errorf("ball starts at %v; want (600, 300)", s.Ball.Pos)
	}
	if s.Ball.Speed != geom.Pt(-5, 1) {
		t.Errorf("ball speed %v; want (-5, 1)", s.Ball.Speed)
	}
	if s.Ball.Size != 20 {
		t.Errorf("ball size %f; want 20", s.Ball.Size)
	}
	if s.Paddle.Pos != geom.Pt(1190, 300) {
		t.Errorf("paddle at %v; want (1190, 300)", s.Paddle.Pos)
	}
	if s.Paddle.FrontEdge() != 1180 {
		t.Errorf("paddle front edge %f; want 1180", s.Paddle.FrontEdge())
	}
	if s.Ticks != 0 {
		t.Errorf("ticks %d; want 0", s.Ticks)
	}

	wantBorders := [3]geom.Rectangle{
		BorderTop:    geom.Rect(geom.Pt(0, 0), geom.Pt(1200, 20)),
		BorderLeft:   geom.Rect(geom.Pt(0, 0), geom.Pt(20, 600)),
		BorderBottom: geom.Rect(geom.Pt(0, 580), geom.Pt(1200, 600)),
	}
	for i, want := range wantBorders {
		if s.Borders[i].Rectangle != want {
			t.Errorf("border %d = %v; want %v", i, s.Borders[i].Rectangle, want)
		}
	}
}

func TestUpdateBall(t *testing.T) {
	tests := []struct {
		name      string
		pos       geom.Point
		speed     geom.Point
		wantPos   geom.Point
		wantSpeed geom.Point
		wantTicks int
	}{
		{
			name:      "Free flight",
			pos:       geom.Pt(600, 300),
			speed:     geom.Pt(-5, 1),
			wantPos:   geom.Pt(595, 301),
			wantSpeed: geom.Pt(-5, 1),
		},
		{
			name:      "Left border pushes back by penetration depth",
			pos:       geom.Pt(40, 300),
			speed:     geom.Pt(-5, 0),
			wantPos:   geom.Pt(40, 300),
			wantSpeed: geom.Pt(5, 0),
		},
		{
			name:      "Top border",
			pos:       geom.Pt(600, 40),
			speed:     geom.Pt(0, -7),
			wantPos:   geom.Pt(600, 40),
			wantSpeed: geom.Pt(0, 7),
		},
		{
			name:      "Bottom border",
			pos:       geom.Pt(600, 555),
			speed:     geom.Pt(0, 10),
			wantPos:   geom.Pt(600, 560),
			wantSpeed: geom.Pt(0, -10),
		},
		{
			name:      "Corner reflects both axes",
			pos:       geom.Pt(42, 42),
			speed:     geom.Pt(-5, -5),
			wantPos:   geom.Pt(40, 40),
			wantSpeed: geom.Pt(5, 5),
		},
		{
			name:      "Paddle hit snaps ball center to paddle face",
			pos:       geom.Pt(1155, 300),
			speed:     geom.Pt(10, 0),
			wantPos:   geom.Pt(1180, 300),
			wantSpeed: geom.Pt(-11, 0),
			wantTicks: 1,
		},
		{
			name:      "Paddle hit scales vertical speed too",
			pos:       geom.Pt(1155, 300),
			speed:     geom.Pt(10, 2),
			wantPos:   geom.Pt(1180, 302),
			wantSpeed: geom.Pt(-11, 2.2),
			wantTicks: 1,
		},
		{
			name:      "Ball touching face before tick still hits",
			pos:       geom.Pt(1160, 300),
			speed:     geom.Pt(5, 0),
			wantPos:   geom.Pt(1180, 300),
			wantSpeed: geom.Pt(-5.5, 0),
			wantTicks: 1,
		},
		{
			name:      "Ball landing exactly on face is not a hit",
			pos:       geom.Pt(1150, 300),
			speed:     geom.Pt(10, 0),
			wantPos:   geom.Pt(1160, 300),
			wantSpeed: geom.Pt(10, 0),
		},
		{
			name:      "Vertical overlap boundary counts as hit",
			pos:       geom.Pt(1155, 370),
			speed:     geom.Pt(10, 0),
			wantPos:   geom.Pt(1180, 370),
			wantSpeed: geom.Pt(-11, 0),
			wantTicks: 1,
		},
		{
			name:      "Vertical miss flies past",
			pos:       geom.Pt(1155, 100),
			speed:     geom.Pt(10, 0),
			wantPos:   geom.Pt(1165, 100),
			wantSpeed: geom.Pt(10, 0),
		},
		{
			name:      "Fast ball cannot tunnel through paddle",
			pos:       geom.Pt(1100, 300),
			speed:     geom.Pt(200, 0),
			wantPos:   geom.Pt(1180, 300),
			wantSpeed: geom.Pt(-220, 0),
			wantTicks: 1,
		},
		{
			name:      "Ball already past the face does not re-trigger",
			pos:       geom.Pt(1185, 300),
			speed:     geom.Pt(1, 0),
			wantPos:   geom.Pt(1186, 300),
			wantSpeed: geom.Pt(1, 0),
		},
		{
			name:      "No right border",
			pos:       geom.Pt(1500, 300),
			speed:     geom.Pt(10, 0),
			wantPos:   geom.Pt(1510, 300),
			wantSpeed: geom.Pt(10, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(DefaultConfig())
			s.Ball.Pos = tt.pos
			s.Ball.Speed = tt.speed

			s.UpdateBall()

			if !approxPoint(s.Ball.Pos, tt.wantPos) {
				t.Errorf("pos = %v; want %v", s.Ball.Pos, tt.wantPos)
			}
			if !approxPoint(s.Ball.Speed, tt.wantSpeed) {
				t.Errorf("speed = %v; want %v", s.Ball.Speed, tt.wantSpeed)
			}
			if s.Ticks != tt.wantTicks {
				t.Errorf("ticks = %d; want %d", s.Ticks, tt.wantTicks)
			}
		})
	}
}

func TestUpdateBall_RestingBallScoresOnce(t *testing.T) {
	s := New(DefaultConfig())
	s.Ball.Pos = geom.Pt(1155, 300)
	s.Ball.Speed = geom.Pt(10, 0)

	s.UpdateBall()
	if s.Ticks != 1 {
		t.Fatalf("ticks after hit = %d; want 1", s.Ticks)
	}

	// Park the ball past the face and let it drift further right.
	s.Ball.Speed = geom.Pt(0.5, 0)
	for i := 0; i < 20; i++ {
		s.UpdateBall()
	}
	if s.Ticks != 1 {
		t.Errorf("ticks after resting = %d; want 1", s.Ticks)
	}
}

func TestPaddleUpdate(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		pointerY float64
		want     float64
	}{
		{"Pointer below arena clamps to bottom", 1000, 530},
		{"Pointer above arena clamps to top", -50, 70},
		{"Pointer on top border clamps", 69.9, 70},
		{"Top limit is allowed", 70, 70},
		{"Bottom limit is allowed", 530, 530},
		{"Pointer inside range", 321.5, 321.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newPaddle(cfg)
			p.Update(tt.pointerY, cfg)
			if p.Pos.Y != tt.want {
				t.Errorf("Pos.Y = %f; want %f", p.Pos.Y, tt.want)
			}
			if p.Pos.X != 1190 || p.Width != 20 || p.Length != 100 {
				t.Errorf("paddle geometry changed: %+v", p)
			}
		})
	}
}

func TestUpdate_MovesPaddleBeforeBall(t *testing.T) {
	s := New(DefaultConfig())
	s.Ball.Pos = geom.Pt(1155, 100)
	s.Ball.Speed = geom.Pt(10, 0)

	// The paddle starts at y=300, out of reach; the pointer brings it in
	// the same frame.
	s.Update(100)

	if s.Paddle.Pos.Y != 100 {
		t.Fatalf("paddle y = %f; want 100", s.Paddle.Pos.Y)
	}
	if s.Ticks != 1 {
		t.Errorf("ticks = %d; want 1", s.Ticks)
	}
}

func TestReset(t *testing.T) {
	s := New(DefaultConfig())
	s.Update(123)
	s.Ball.Pos = geom.Pt(1500, 42)
	s.Ball.Speed = geom.Pt(33, -7)
	s.Ticks = 17

	s.Reset()

	if s.Ball != newBall(s.Config()) {
		t.Errorf("ball after reset = %+v; want %+v", s.Ball, newBall(s.Config()))
	}
	if s.Ticks != 0 {
		t.Errorf("ticks after reset = %d; want 0", s.Ticks)
	}
	if s.Paddle.Pos.Y != 123 {
		t.Errorf("paddle y after reset = %f; want 123", s.Paddle.Pos.Y)
	}
}

func TestArena(t *testing.T) {
	s := New(DefaultConfig())
	if !s.Arena().Contains(s.Ball.Pos) {
		t.Errorf("initial ball %v outside arena %v", s.Ball.Pos, s.Arena())
	}
	s.Ball.Pos = geom.Pt(1300, 300)
	if s.Arena().Contains(s.Ball.Pos) {
		t.Errorf("ball %v past right edge reported inside arena", s.Ball.Pos)
	}
}
