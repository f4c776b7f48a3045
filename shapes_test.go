package argel

import (
	"math"
	"testing"
)

// painted returns the set of pixels of c equal to col.
func painted(c *Canvas, col Color) map[[2]int]bool {
	m := make(map[[2]int]bool)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Pixels()[y*c.Stride()+x] == uint32(col) {
				m[[2]int{x, y}] = true
			}
		}
	}
	return m
}

func TestDrawRectangle(t *testing.T) {
	c := New(10, 10)
	c.Draw(2, 3, Rectangle(4, 2), Red)

	got := painted(c, Red)
	if len(got) != 8 {
		t.Errorf("painted %d pixels, want 8", len(got))
	}
	for y := 3; y <= 4; y++ {
		for x := 2; x <= 5; x++ {
			if !got[[2]int{x, y}] {
				t.Errorf("pixel (%d, %d) not painted", x, y)
			}
		}
	}
}

func TestDrawRectangleNegativeSize(t *testing.T) {
	c := New(10, 10)
	c.Draw(5, 5, Rectangle(-2, -3), Green)

	got := painted(c, Green)
	if len(got) != 6 {
		t.Errorf("painted %d pixels, want 6", len(got))
	}
	for y := 3; y <= 5; y++ {
		for x := 4; x <= 5; x++ {
			if !got[[2]int{x, y}] {
				t.Errorf("pixel (%d, %d) not painted", x, y)
			}
		}
	}
}

func TestDrawClipped(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		shape Shape
		want  int
	}{
		{"rect top left", -3, -3, Rectangle(5, 5), 4},
		{"rect bottom right", 8, 8, Rectangle(5, 5), 4},
		{"rect covering", -100, -100, Rectangle(1000, 1000), 100},
		{"rect far away", 500, -500, Rectangle(5, 5), 0},
		{"circle far away", -500, 500, Circle(5), 0},
		{"circle overlapping corner", -4, -4, Circle(4), 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(10, 10)
			c.Draw(tt.x, tt.y, tt.shape, White)
			if got := len(painted(c, White)); got != tt.want {
				t.Errorf("painted %d pixels, want %d", got, tt.want)
			}
		})
	}
}

func TestDrawCircle(t *testing.T) {
	c := New(20, 20)
	c.Draw(5, 5, Circle(3), Blue)

	got := painted(c, Blue)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			dx, dy := x-8, y-8
			inBox := x >= 5 && x < 11 && y >= 5 && y < 11
			want := inBox && dx*dx+dy*dy <= 9
			if got[[2]int{x, y}] != want {
				t.Errorf("pixel (%d, %d) painted = %v, want %v", x, y, got[[2]int{x, y}], want)
			}
		}
	}
}

func TestDrawDegenerate(t *testing.T) {
	shapes := map[string]Shape{
		"zero width":      Rectangle(0, 5),
		"zero height":     Rectangle(5, 0),
		"zero radius":     Circle(0),
		"negative radius": Circle(-3),
		"huge radius":     Circle(math.MaxInt),
		"overflow radius": Circle(math.MaxInt/2 + 1),
	}
	for name, s := range shapes {
		t.Run(name, func(t *testing.T) {
			c := New(10, 10)
			c.Draw(5, 5, s, Red)
			if got := len(painted(c, Red)); got != 0 {
				t.Errorf("painted %d pixels, want 0", got)
			}
		})
	}
}

func TestDrawEmptyBuffer(t *testing.T) {
	c := NewFromPixels(4, 4, nil)
	// Must not panic.
	c.Draw(0, 0, Rectangle(2, 2), Red)
	c.Draw(0, 0, Circle(2), Red)
}

func TestShapeReuse(t *testing.T) {
	c := New(10, 10)
	dot := Rectangle(1, 1)
	c.Draw(0, 0, dot, Red)
	c.Draw(9, 9, dot, Green)
	c.Draw(4, 7, dot, Blue)

	for _, tt := range []struct {
		x, y int
		col  Color
	}{{0, 0, Red}, {9, 9, Green}, {4, 7, Blue}} {
		if got := Color(c.Pixels()[tt.y*10+tt.x]); got != tt.col {
			t.Errorf("pixel (%d, %d) = %#x, want %#x", tt.x, tt.y, uint32(got), uint32(tt.col))
		}
	}
}

func TestShapeFunc(t *testing.T) {
	var gotX, gotY int
	var gotColor Color
	cross := ShapeFunc(func(c *Canvas, x, y int, col Color) {
		gotX, gotY, gotColor = x, y, col
		c.Draw(x-1, y, Rectangle(3, 1), col)
		c.Draw(x, y-1, Rectangle(1, 3), col)
	})

	c := New(5, 5)
	c.Draw(2, 2, cross, Red)

	if gotX != 2 || gotY != 2 || gotColor != Red {
		t.Errorf("ShapeFunc called with (%d, %d, %#x)", gotX, gotY, uint32(gotColor))
	}
	if got := len(painted(c, Red)); got != 5 {
		t.Errorf("painted %d pixels, want 5", got)
	}
}

func BenchmarkDrawCircle(b *testing.B) {
	c := New(512, 512)
	s := Circle(200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Draw(56, 56, s, Green)
	}
}
