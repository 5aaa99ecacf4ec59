package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/kevmo314/go-yuv"
	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
	"github.com/kevmo314/go-yuv/pkg/testpattern"
)

// Display shows a frame scaled to the window. R rotates it by 90
// degrees and M mirrors it.
type Display struct {
	src    yuv.Buffer
	width  int
	height int
	filter yuv.FilterMode
	rotate yuv.RotateMode
	mirror bool
	frame  *ebiten.Image
}

func (g *Display) Update() error {
	changed := g.frame == nil
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rotate = (g.rotate + 90) % 360
		changed = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.mirror = !g.mirror
		changed = true
	}
	if !changed {
		return nil
	}
	frame, err := g.render()
	if err != nil {
		return err
	}
	g.frame = frame
	return nil
}

func (g *Display) render() (*ebiten.Image, error) {
	w, h := g.width, g.height
	if g.rotate.Transposes() {
		w, h = h, w
	}
	scaled, err := yuv.I420.Allocate(w, h)
	if err != nil {
		return nil, err
	}
	defer scaled.Close()
	if err := yuv.Scale(g.src, scaled, g.filter); err != nil {
		return nil, err
	}

	var cur yuv.Buffer = scaled
	if g.mirror {
		mirrored, err := yuv.I420.Allocate(w, h)
		if err != nil {
			return nil, err
		}
		defer mirrored.Close()
		if err := scaled.MirrorTo(mirrored); err != nil {
			return nil, err
		}
		cur = mirrored
	}
	if g.rotate != yuv.Rotate0 {
		rotated, err := yuv.I420.Allocate(g.width, g.height)
		if err != nil {
			return nil, err
		}
		defer rotated.Close()
		if err := yuv.Rotate(cur, rotated, g.rotate); err != nil {
			return nil, err
		}
		cur = rotated
	}

	out, err := yuv.ABGR.Allocate(g.width, g.height)
	if err != nil {
		return nil, err
	}
	defer out.Close()
	if err := yuv.Convert(cur, out); err != nil {
		return nil, err
	}
	img, err := yuv.AsImage(out)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func (g *Display) Draw(screen *ebiten.Image) {
	if g.frame != nil {
		screen.DrawImage(g.frame, &ebiten.DrawImageOptions{})
	}
}

func (g *Display) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	input := flag.String("input", "", "raw frame to show instead of the test pattern")
	inputFormat := flag.String("format", "I420", "format of the raw frame")
	srcWidth := flag.Int("src-width", 1280, "source frame width")
	srcHeight := flag.Int("src-height", 720, "source frame height")
	width := flag.Int("width", 640, "window width")
	height := flag.Int("height", 360, "window height")
	filterName := flag.String("filter", yuv.DefaultFilter().String(), "scale filter: NONE, LINEAR, BILINEAR or BOX")

	flag.Parse()

	filter, err := engine.ParseFilterMode(*filterName)
	if err != nil {
		log.Fatal(err)
	}

	src, err := load(*input, *inputFormat, *srcWidth, *srcHeight)
	if err != nil {
		log.Fatal(err)
	}
	defer src.Close()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("yuvview " + filter.String())
	g := &Display{src: src, width: *width, height: *height, filter: filter}
	if err := ebiten.RunGame(g); err != nil {
		log.Printf("ebiten error: %s", err)
	}
}

func load(path, format string, width, height int) (yuv.Buffer, error) {
	if path == "" {
		return testpattern.I420(width, height)
	}
	f, err := formats.Parse(format)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return yuv.ReadFrame(file, f, width, height)
}
