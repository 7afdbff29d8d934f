// Package image is a go library that creates images from board positions.
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/mway1/atomic"
)

// SVG writes the board SVG representation into the writer.
// An error is returned if there is an error writing data.
// SVG also takes options which can customize the image output.
func SVG(w io.Writer, b *atomic.Board, opts ...func(*encoder)) error {
	e := newEncoder(w, opts)
	return e.EncodeSVG(b)
}

// SquareColors is designed to be used as an optional argument
// to the SVG function.  It changes the default light and
// dark square colors to the colors given.
func SquareColors(light, dark color.Color) func(*encoder) {
	return func(e *encoder) {
		e.light = light
		e.dark = dark
	}
}

// MarkSquares is designed to be used as an optional argument
// to the SVG function.  It marks the given squares with the
// color.  A possible usage includes marking squares of the
// previous move.
func MarkSquares(c color.Color, sqs ...atomic.Square) func(*encoder) {
	return func(e *encoder) {
		for _, sq := range sqs {
			e.marks[sq] = c
		}
	}
}

// MarkExplosion marks every square emptied by the explosion.
func MarkExplosion(c color.Color, ex *atomic.Explosion) func(*encoder) {
	if ex == nil {
		return nil
	}
	return MarkSquares(c, ex.Removed()...)
}

// Perspective is designed to be used as an optional argument
// to the SVG function.  It draws the board from the perspective
// of the given color.  White is the default.
func Perspective(c atomic.Color) func(*encoder) {
	return func(e *encoder) {
		e.perspective = c
	}
}

// A encoder encodes chess boards into images.
type encoder struct {
	w           io.Writer
	light       color.Color
	dark        color.Color
	perspective atomic.Color
	marks       map[atomic.Square]color.Color
}

func newEncoder(w io.Writer, options []func(*encoder)) *encoder {
	e := &encoder{
		w:           w,
		light:       color.RGBA{235, 209, 166, 255},
		dark:        color.RGBA{165, 117, 81, 255},
		perspective: atomic.White,
		marks:       map[atomic.Square]color.Color{},
	}
	for _, op := range options {
		if op != nil {
			op(e)
		}
	}
	return e
}

const (
	sqWidth     = 45
	sqHeight    = 45
	boardWidth  = 8 * sqWidth
	boardHeight = 8 * sqHeight
)

// errWriter records the first write error so drawing code stays linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

// EncodeSVG writes the board SVG representation into
// the encoder's writer.  An error is returned if there
// is an error writing data.
func (e *encoder) EncodeSVG(b *atomic.Board) error {
	ew := &errWriter{w: e.w}
	canvas := svg.New(ew)
	canvas.Start(boardWidth, boardHeight)
	canvas.Rect(0, 0, boardWidth, boardHeight)

	for i := 0; i < 64; i++ {
		sq := atomic.Sq(i%8, i/8)
		x, y := xyForSquare(e.perspective, sq)
		c := e.colorForSquare(sq)
		if mark, ok := e.marks[sq]; ok {
			c = mark
		}
		canvas.Rect(x, y, sqWidth, sqHeight, "fill: "+colorToHex(c))

		if p, ok := b.Piece(sq); ok {
			canvas.Text(x+sqWidth/2, y+sqHeight*3/4, p.Glyph(),
				"text-anchor:middle;font-size:36px;fill:#000000")
		}

		if label := rankLabel(e.perspective, sq); label != "" {
			canvas.Text(x+3, y+11, label, "font-size:10px;fill:"+colorToHex(e.labelColor(sq)))
		}
		if label := fileLabel(e.perspective, sq); label != "" {
			canvas.Text(x+sqWidth-8, y+sqHeight-3, label, "font-size:10px;fill:"+colorToHex(e.labelColor(sq)))
		}
	}
	canvas.End()
	return ew.err
}

func (e *encoder) colorForSquare(sq atomic.Square) color.Color {
	if (sq.File+sq.Rank)%2 == 0 {
		return e.dark
	}
	return e.light
}

func (e *encoder) labelColor(sq atomic.Square) color.Color {
	if (sq.File+sq.Rank)%2 == 0 {
		return e.light
	}
	return e.dark
}

func xyForSquare(perspective atomic.Color, sq atomic.Square) (int, int) {
	file, rank := sq.File, sq.Rank
	if perspective == atomic.Black {
		file = 7 - file
		rank = 7 - rank
	}
	return file * sqWidth, (7 - rank) * sqHeight
}

// rankLabel is drawn on the leftmost file of the image.
func rankLabel(perspective atomic.Color, sq atomic.Square) string {
	edge := 0
	if perspective == atomic.Black {
		edge = 7
	}
	if sq.File != edge {
		return ""
	}
	return fmt.Sprint(sq.Rank + 1)
}

// fileLabel is drawn on the bottom rank of the image.
func fileLabel(perspective atomic.Color, sq atomic.Square) string {
	edge := 0
	if perspective == atomic.Black {
		edge = 7
	}
	if sq.Rank != edge {
		return ""
	}
	return string(rune('a' + sq.File))
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
