package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mway1/atomic"
)

const demoScript = "../../testdata/demo.script"

func writeScript(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestRunDemo(t *testing.T) {
	svgDir := t.TempDir()
	cfg := Config{PrintBoard: true, Parallel: 1, SVGDir: svgDir, Scripts: []string{demoScript}}

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, nil, &out))

	text := out.String()
	assert.True(t, strings.HasPrefix(text, "== "+demoScript+" (Atomic demo)\n"))
	assert.Contains(t, text, "1. b2b4\n")
	assert.Contains(t, text, "3... g7a1 boom: rook a1, knight b1\n")
	assert.Contains(t, text, "22. e4f5 boom: pawn f5")
	assert.Contains(t, text, "(game over)\n")
	assert.Contains(t, text, "╔═══")
	assert.True(t, strings.HasSuffix(text, "Result: 1-0 (KingExploded)\n"))
	assert.NotContains(t, text, "rejected")

	svg, err := os.ReadFile(filepath.Join(svgDir, "demo.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "fill: #e65a3c")
}

func TestRunStdinAndOrder(t *testing.T) {
	second := writeScript(t, "second.script", "1. e2e4 e7e5 *")
	cfg := Config{Parallel: 4, Scripts: []string{"-", second}}

	in := strings.NewReader("[Event \"stdin\"]\n1. e2e5 g1f3")
	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, in, &out))

	text := out.String()
	first := strings.Index(text, "== - (stdin)")
	other := strings.Index(text, "== "+second)
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, other)
	assert.Less(t, first, other)

	assert.Contains(t, text, "1. e2e5 rejected: "+atomic.IllegalGeometry.String())
	// The parser guessed black for g1f3, but white moved after the rejection.
	assert.Contains(t, text, "1. g1f3\n")
	assert.NotContains(t, text, "1... g1f3")
	assert.Contains(t, text, "Result: *, Black to move\n")
	assert.Contains(t, text, "Result: *, White to move\n")
	assert.NotContains(t, text, "╔═══")
}

func TestRunStrict(t *testing.T) {
	path := writeScript(t, "bad.script", "1. e2e5 *")
	cfg := Config{Parallel: 1, Strict: true, Scripts: []string{path}}

	var out bytes.Buffer
	err := Run(context.Background(), cfg, nil, &out)
	assert.ErrorIs(t, err, ErrRejected)
	assert.ErrorIs(t, err, atomic.IllegalGeometry)
	assert.Empty(t, out.String())
}

func TestRunResultMismatch(t *testing.T) {
	path := writeScript(t, "liar.script", "1. e2e4 0-1")
	cfg := Config{Parallel: 1, Scripts: []string{path}}

	err := Run(context.Background(), cfg, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, atomic.ErrResultMismatch)
}

func TestRunMissingScript(t *testing.T) {
	cfg := Config{Parallel: 1, Scripts: []string{filepath.Join(t.TempDir(), "missing.script")}}
	err := Run(context.Background(), cfg, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{Parallel: 1, Scripts: []string{demoScript}}
	err := Run(ctx, cfg, nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunRepeatedStdin(t *testing.T) {
	cfg := Config{Parallel: 2, Scripts: []string{"-", "-"}}
	in := strings.NewReader("1. e2e4 e7e5 *")

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, in, &out))

	text := out.String()
	assert.Equal(t, 2, strings.Count(text, "== -\n"))
	assert.Equal(t, 2, strings.Count(text, "1. e2e4\n"))
	assert.Equal(t, 2, strings.Count(text, "1... e7e5\n"))
	assert.Equal(t, 2, strings.Count(text, "Result: *, White to move\n"))
}

func TestRunSVGNamesDoNotCollide(t *testing.T) {
	a := writeScript(t, "x.script", "1. e2e4 *")
	b := writeScript(t, "x.script", "1. d2d4 *")
	svgDir := t.TempDir()
	cfg := Config{Parallel: 2, SVGDir: svgDir, Scripts: []string{a, b, "-"}}

	require.NoError(t, Run(context.Background(), cfg, strings.NewReader("*"), &bytes.Buffer{}))
	for _, name := range []string{"x-1.svg", "x-2.svg", "stdin.svg"} {
		_, err := os.Stat(filepath.Join(svgDir, name))
		assert.NoError(t, err, name)
	}
	_, err := os.Stat(filepath.Join(svgDir, "x.svg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlanJobs(t *testing.T) {
	jobs := planJobs([]string{"a/x.script", "b/x.script", "-", "y.txt", "-"})
	svgs := make([]string, len(jobs))
	for i, j := range jobs {
		svgs[i] = j.svg
	}
	assert.Equal(t, []string{"x-1.svg", "x-2.svg", "stdin-3.svg", "y.svg", "stdin-5.svg"}, svgs)
	assert.Equal(t, "b/x.script", jobs[1].name)
}
