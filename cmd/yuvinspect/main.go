package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"text/tabwriter"

	"golang.org/x/image/draw"

	"github.com/gdamore/tcell/v2"
	"github.com/kevmo314/go-yuv"
	"github.com/kevmo314/go-yuv/pkg/engine"
	"github.com/kevmo314/go-yuv/pkg/formats"
	"github.com/kevmo314/go-yuv/pkg/testpattern"
	"github.com/rivo/tview"
)

func main() {
	width := flag.Int("width", 640, "frame width in pixels")
	height := flag.Int("height", 480, "frame height in pixels")
	plain := flag.Bool("plain", false, "print the layout table to stdout instead of starting the UI")

	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("invalid size %dx%d", *width, *height)
	}

	if *plain {
		printLayouts(os.Stdout, *width, *height)
		return
	}

	app := tview.NewApplication()

	formatList := tview.NewList()
	formatList.SetBorder(true).SetTitle("Formats")

	planeList := tview.NewList()
	planeList.SetBorder(true).SetTitle("Planes")

	targets := tview.NewList()
	targets.SetBorder(true).SetTitle("Conversions")

	preview := tview.NewImage()
	preview.SetColors(256).SetDithering(tview.DitheringNone).SetBorder(true).SetTitle("Preview")

	logText := tview.NewTextView()
	logText.SetMaxLines(10).SetBorder(true).SetTitle("Log")

	log.SetOutput(logText)
	yuv.SetLogger(slog.New(slog.NewTextHandler(logText, &slog.HandlerOptions{Level: slog.LevelDebug})))

	pattern, err := testpattern.I420(*width, *height)
	if err != nil {
		log.Fatalf("allocating test pattern: %s", err)
	}
	defer pattern.Close()

	for _, f := range formats.All() {
		formatList.AddItem(f.String(), formatSubtitle(f), 0, func() {
			planeList.Clear()
			l := f.Layout(*width, *height)
			for i, p := range l.Planes {
				g := f.Plane(i)
				planeList.AddItem(fmt.Sprintf("%s: stride %d, %d rows", g.Name, p.Stride, p.Rows),
					fmt.Sprintf("%d bytes, %d byte elements, subsampled %dx%d", p.Capacity, g.BytesPerElement, 1<<g.ShiftX, 1<<g.ShiftY), 0, nil)
			}
			planeList.AddItem(fmt.Sprintf("Total %d bytes", l.Total()), "", 0, nil)

			targets.Clear()
			e := yuv.DefaultEngine()
			if !e.Supports(engine.Key{Op: engine.OpConvert, Src: formats.FormatI420, Dst: f}) {
				log.Printf("engine cannot produce %s from I420", f)
				return
			}
			for _, dst := range formats.All() {
				if !e.Supports(engine.Key{Op: engine.OpConvert, Src: f, Dst: dst}) {
					continue
				}
				targets.AddItem(fmt.Sprintf("%s -> %s", f, dst), "", 0, func() {
					img, err := render(pattern, f, dst)
					if err != nil {
						log.Printf("rendering %s: %s", dst, err)
						return
					}
					w := 64
					h := img.Bounds().Dy() * w / img.Bounds().Dx()
					preview.SetImage(resize(img, w, h))
				})
			}
			app.SetFocus(targets)
		})
	}

	targets.SetDoneFunc(func() {
		app.SetFocus(formatList)
	})
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			app.SetFocus(formatList)
			return nil
		}
		return event
	})

	flex := tview.NewFlex().
		AddItem(formatList, 0, 1, true).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(planeList, 0, 1, false).
			AddItem(targets, 0, 1, false), 0, 1, false).
		AddItem(preview, 0, 2, false)

	if err := app.SetRoot(tview.NewFlex().SetDirection(tview.FlexRow).AddItem(flex, 0, 1, true).AddItem(logText, 10, 0, false), true).Run(); err != nil {
		panic(err)
	}
}

func formatSubtitle(f formats.Format) string {
	fcc := f.FourCC()
	return fmt.Sprintf("%s, %s", fcc[:], f.GUID())
}

// render converts the pattern through each format in turn and returns
// something the preview can show, going through ABGR when the last format has
// no image view.
func render(pattern *yuv.I420Buffer, chain ...formats.Format) (image.Image, error) {
	var dst yuv.Buffer = pattern
	for _, f := range chain {
		next, err := yuv.Allocate(f, pattern.Width(), pattern.Height())
		if err != nil {
			return nil, err
		}
		defer next.Close()
		if err := yuv.Convert(dst, next); err != nil {
			return nil, err
		}
		dst = next
	}
	if img, err := yuv.AsImage(dst); err == nil {
		return copyImage(img), nil
	}
	abgr, err := yuv.ABGR.Allocate(pattern.Width(), pattern.Height())
	if err != nil {
		return nil, err
	}
	defer abgr.Close()
	if err := yuv.Convert(dst, abgr); err != nil {
		return nil, err
	}
	img, err := yuv.AsImage(abgr)
	if err != nil {
		return nil, err
	}
	return copyImage(img), nil
}

// copyImage detaches img from buffer memory that is about to be freed.
func copyImage(img image.Image) *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	return dst
}

func resize(img image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

func printLayouts(out *os.File, width, height int) {
	tw := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(tw, "FORMAT\tFOURCC\tPLANE\tSTRIDE\tROWS\tCAPACITY\tGUID\n")
	for _, f := range formats.All() {
		guid := f.GUID()
		fcc := f.FourCC()
		l := f.Layout(width, height)
		for i, p := range l.Planes {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n", f, fcc[:], f.Plane(i).Name, p.Stride, p.Rows, p.Capacity, guid)
		}
		fmt.Fprintf(tw, "%s\t\ttotal\t\t\t%d\t\n", f, l.Total())
	}
	tw.Flush()
}
