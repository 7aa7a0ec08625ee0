package game

import (
	"testing"

	"github.com/OpticalFlyer/pong/geom"
)

func BenchmarkUpdateBall(b *testing.B) {
	starts := []struct{ pos, speed geom.Point }{
		{geom.Pt(600, 300), geom.Pt(-5, 1)},
		{geom.Pt(40, 40), geom.Pt(-5, -5)},
		{geom.Pt(1155, 300), geom.Pt(10, 0)},
		{geom.Pt(600, 555), geom.Pt(0, 10)},
	}
	s := New(DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, st := range starts {
			s.Ball.Pos, s.Ball.Speed = st.pos, st.speed
			s.UpdateBall()
		}
	}
}

func BenchmarkStateDraw(b *testing.B) {
	s := New(DefaultConfig())
	s.Ticks = 1234
	c := &fakeCanvas{}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := s.Draw(c); err != nil {
			b.Fatal(err)
		}
	}
}
