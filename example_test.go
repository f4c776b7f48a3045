package argel_test

import (
	"bytes"
	"fmt"

	"github.com/gogpu/argel"
)

func Example() {
	c := argel.New(4, 4)
	c.Fill(argel.Black)
	c.Draw(1, 1, argel.Rectangle(2, 2), argel.Red)

	r, g, b, err := c.GetPixel(2, 2)
	fmt.Println(r, g, b, err)

	var buf bytes.Buffer
	if err := c.EncodePPM(&buf); err != nil {
		panic(err)
	}
	fmt.Println(buf.Len())
	// Output:
	// 255 0 0 <nil>
	// 59
}

func ExampleCircle() {
	c := argel.New(4, 4)
	c.Draw(0, 0, argel.Circle(2), argel.White)
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if r, _, _, _ := c.GetPixel(x, y); r != 0 {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// ..#.
	// .###
	// ####
	// .###
}
