// Command argeldemo renders a few demonstration scenes to PPM files.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/argel"
	"github.com/gogpu/argel/ppm"
)

var scenes = map[string]func(*argel.Canvas){
	"simple":  drawSimple,
	"circle":  drawCircle,
	"pixels":  drawPixels,
	"circles": drawCircles,
}

func main() {
	var (
		scene   = flag.String("scene", "simple", "scene to render: simple, circle, pixels, circles")
		width   = flag.Int("width", 100, "image width")
		height  = flag.Int("height", 100, "image height")
		output  = flag.String("output", "", "output file (default <scene>.ppm)")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		argel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	draw, ok := scenes[*scene]
	if !ok {
		log.Fatalf("unknown scene %q", *scene)
	}
	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid size %dx%d", *width, *height)
	}
	path := *output
	if path == "" {
		path = *scene + ".ppm"
	}

	c := argel.New(*width, *height)
	draw(c)

	if err := c.SavePPM(path); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("Saved %s (%dx%d, %d bytes)", path, *width, *height, ppm.EncodedSize(*width, *height)))
}

// drawSimple places four corner squares and one centered square.
func drawSimple(c *argel.Canvas) {
	w, h := c.Width(), c.Height()
	qw, qh := w/4, h/4
	sq := argel.Rectangle(qw, qh)

	c.Fill(argel.Black)
	c.Draw(0, 0, sq, argel.Green)
	c.Draw(0, h-qh, sq, argel.Green)
	c.Draw(w-qw, h-qh, sq, argel.Green)
	c.Draw(w-qw, 0, sq, argel.Green)
	c.Draw(qw, qh, argel.Rectangle(w/2, h/2), argel.Green)
}

// drawCircle draws one disk filling half the smaller dimension.
func drawCircle(c *argel.Canvas) {
	r := min(c.Width(), c.Height()) / 4
	c.Draw(c.Width()/2-r, c.Height()/2-r, argel.Circle(r), argel.Green)
}

// drawPixels writes a red/green gradient pixel by pixel.
func drawPixels(c *argel.Canvas) {
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			col := argel.RGB(uint8(y), uint8(x), 100)
			if err := c.SetPixel(x, y, col); err != nil {
				log.Fatalf("SetPixel(%d, %d): %v", x, y, err)
			}
		}
	}
}

// drawCircles reuses one shape at several origins, some partly off-canvas.
func drawCircles(c *argel.Canvas) {
	c.Fill(argel.RGB(0x20, 0x20, 0x30))
	r := min(c.Width(), c.Height()) / 5
	dot := argel.Circle(r)
	colors := []argel.Color{argel.Red, argel.Green, argel.Blue, argel.White}
	for i, col := range colors {
		x := i*c.Width()/len(colors) - r/2
		y := c.Height()/2 - r
		c.Draw(x, y, dot, col)
	}
	c.Draw(-r, -r, dot, argel.White)
	c.Draw(c.Width()-r, c.Height()-r, dot, argel.White)
}
