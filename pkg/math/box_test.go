package math

import "testing"

func TestBox2FirstObservationReplacesSentinels(t *testing.T) {
	b := NewBox2()
	if !b.Empty() {
		t.Fatal("new box should be empty")
	}

	b.Observe(4000, 3000)
	if b.Empty() {
		t.Fatal("box should not be empty after Observe")
	}
	if b.Min != (Vec2{4000, 3000}) || b.Max != (Vec2{4000, 3000}) {
		t.Errorf("got %+v, want degenerate box at (4000,3000)", b)
	}
}

func TestBox2MonotonicWidening(t *testing.T) {
	b := NewBox2()
	pts := []Vec2{{1, 1}, {-2, 5}, {3, -4}, {0, 0}}
	for i, p := range pts {
		prev := b
		b.Observe(p.X, p.Y)
		if i > 0 && (b.Min.X > prev.Min.X || b.Max.X < prev.Max.X) {
			t.Errorf("box shrank after observing %v", p)
		}
	}
	for _, p := range pts {
		if !b.Contains(p.X, p.Y, 0) {
			t.Errorf("box %+v does not contain %v", b, p)
		}
	}
	if b.Min != (Vec2{-2, -4}) || b.Max != (Vec2{3, 5}) {
		t.Errorf("got %+v", b)
	}
}

func TestBox2TranslateAndCenter(t *testing.T) {
	b := NewBox2()
	b.ObserveExtent(0, 0, 4, 2)
	b.Translate(-1, 1)
	if got := b.Center(); got != (Vec2{1, 2}) {
		t.Errorf("Center() = %v, want {1 2}", got)
	}
}

func TestBox2UnionIgnoresEmpty(t *testing.T) {
	b := PointsBox(Vec2{1, 1})
	b.Union(NewBox2())
	if b.Min != (Vec2{1, 1}) || b.Max != (Vec2{1, 1}) {
		t.Errorf("union with empty box changed extent: %+v", b)
	}
}

func TestBox3Center(t *testing.T) {
	b := NewBox3()
	if !b.Empty() {
		t.Fatal("new box should be empty")
	}
	b.Observe(Vec3{-1, 2, -3})
	b.Observe(Vec3{3, 4, 1})
	if got := b.Center(); got != (Vec3{1, 3, -1}) {
		t.Errorf("Center() = %v", got)
	}
}
