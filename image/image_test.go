package image

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mway1/atomic"
)

func TestSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, atomic.StartingBoard()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, 32, strings.Count(out, "font-size:36px"))
	assert.Contains(t, out, "♔")
	assert.Contains(t, out, "♚")
	assert.Contains(t, out, colorToHex(color.RGBA{235, 209, 166, 255}))
}

func TestMarkExplosion(t *testing.T) {
	ex := &atomic.Explosion{
		Center:   atomic.Sq(3, 6),
		Capturer: atomic.Casualty{Square: atomic.Sq(0, 3)},
	}
	mark := color.RGBA{R: 230, G: 90, B: 60, A: 255}

	var buf bytes.Buffer
	require.NoError(t, SVG(&buf, &atomic.Board{}, MarkExplosion(mark, ex)))
	assert.Equal(t, 2, strings.Count(buf.String(), "fill: #e65a3c"))

	buf.Reset()
	require.NoError(t, SVG(&buf, &atomic.Board{}, MarkExplosion(mark, nil)))
	assert.NotContains(t, buf.String(), "#e65a3c")
}

func TestSquareColorsAndPerspective(t *testing.T) {
	light := color.RGBA{255, 255, 255, 255}
	dark := color.RGBA{0, 0, 0, 255}

	var white, black bytes.Buffer
	require.NoError(t, SVG(&white, &atomic.Board{}, SquareColors(light, dark)))
	require.NoError(t, SVG(&black, &atomic.Board{}, SquareColors(light, dark), Perspective(atomic.Black)))

	assert.Contains(t, white.String(), "fill: #ffffff")
	assert.Contains(t, white.String(), "fill: #000000")
	assert.NotEqual(t, white.String(), black.String())
}

func TestXYForSquare(t *testing.T) {
	x, y := xyForSquare(atomic.White, atomic.Sq(0, 0))
	assert.Equal(t, 0, x)
	assert.Equal(t, 7*sqHeight, y)

	x, y = xyForSquare(atomic.Black, atomic.Sq(0, 0))
	assert.Equal(t, 7*sqWidth, x)
	assert.Equal(t, 0, y)
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestSVGWriteError(t *testing.T) {
	err := SVG(failWriter{}, atomic.StartingBoard())
	assert.ErrorIs(t, err, errWrite)
}
