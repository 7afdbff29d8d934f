package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mway1/atomic"
	"github.com/mway1/atomic/image"
	"github.com/mway1/atomic/internal/session"
)

// ErrRejected is returned in strict mode when a script contains a move the
// engine rejects.
var ErrRejected = errors.New("move rejected")

var blastColor = color.RGBA{R: 230, G: 90, B: 60, A: 255}

// job is one script argument and the file its final SVG is written to.
type job struct {
	name string
	svg  string
}

// Run replays every configured script, each in its own session, and writes
// the reports to out in the order the scripts were given. Standard input is
// read once, so every "-" argument replays the same script.
func Run(ctx context.Context, cfg Config, in io.Reader, out io.Writer) error {
	var stdin []byte
	if slices.Contains(cfg.Scripts, "-") {
		raw, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		stdin = raw
	}

	mgr := session.NewManager()
	jobs := planJobs(cfg.Scripts)
	reports := make([]string, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallel)
	for i, j := range jobs {
		g.Go(func() error {
			script, err := loadScript(j.name, stdin)
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			text, err := replay(ctx, cfg, mgr, j, script)
			if err != nil {
				return fmt.Errorf("%s: %w", j.name, err)
			}
			reports[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, r := range reports {
		if _, err := io.WriteString(out, r); err != nil {
			return err
		}
	}
	return nil
}

// planJobs names the SVG of each script after its base name. Arguments that
// share a base name get their 1-based position appended.
func planJobs(scripts []string) []job {
	bases := make([]string, len(scripts))
	seen := make(map[string]int)
	for i, name := range scripts {
		base := "stdin"
		if name != "-" {
			base = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		}
		bases[i] = base
		seen[base]++
	}

	jobs := make([]job, len(scripts))
	for i, name := range scripts {
		svg := bases[i]
		if seen[svg] > 1 {
			svg = fmt.Sprintf("%s-%d", svg, i+1)
		}
		jobs[i] = job{name: name, svg: svg + ".svg"}
	}
	return jobs
}

func loadScript(name string, stdin []byte) (*atomic.Script, error) {
	if name == "-" {
		return atomic.ParseScript(bytes.NewReader(stdin))
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return atomic.ParseScript(f)
}

func replay(ctx context.Context, cfg Config, mgr *session.Manager, j job, script *atomic.Script) (string, error) {
	game, err := script.NewGame()
	if err != nil {
		return "", err
	}
	s := mgr.Add(game)
	defer func() { _ = mgr.Delete(s.ID) }()
	log.Printf("replaying %s in session %s", j.name, s.ID)

	var sb strings.Builder
	fmt.Fprintf(&sb, "== %s", j.name)
	if event := script.TagPairs["Event"]; event != "" {
		fmt.Fprintf(&sb, " (%s)", event)
	}
	sb.WriteString("\n")

	var lastBlast *atomic.Explosion
	for _, mv := range script.Moves {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		// One goroutine owns s, so the turn cannot change before Move.
		mover := s.Snapshot().Turn
		res, err := s.Move(mv.From, mv.To)
		sb.WriteString(formatStep(mv, mover, res, err))
		sb.WriteString("\n")
		if err != nil {
			if cfg.Strict {
				return "", fmt.Errorf("%s: %w: %w", mv.Text, ErrRejected, err)
			}
			continue
		}
		if res.Explosion != nil {
			lastBlast = res.Explosion
		}
	}

	snap := s.Snapshot()
	if cfg.PrintBoard {
		sb.WriteString(snap.Board.Draw())
	}
	fmt.Fprintf(&sb, "Result: %s", snap.Outcome)
	if snap.Method != atomic.NoMethod {
		fmt.Fprintf(&sb, " (%s)", snap.Method)
	} else {
		fmt.Fprintf(&sb, ", %s to move", snap.Turn.Name())
	}
	sb.WriteString("\n")

	if err := script.CheckResult(snap.Outcome); err != nil {
		return "", err
	}

	if cfg.SVGDir != "" {
		if err := writeSVG(filepath.Join(cfg.SVGDir, j.svg), snap.Board, lastBlast); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

// formatStep renders one move attempt by mover as a single line.
func formatStep(mv atomic.ScriptMove, mover atomic.Color, res *atomic.MoveResult, err error) string {
	prefix := fmt.Sprintf("%d. ", mv.Number)
	if mover == atomic.Black {
		prefix = fmt.Sprintf("%d... ", mv.Number)
	}
	line := prefix + mv.Text
	if err != nil {
		var moveErr *atomic.MoveError
		if errors.As(err, &moveErr) {
			return line + " rejected: " + moveErr.Reason.String()
		}
		return line + " rejected: " + err.Error()
	}
	if res.Explosion == nil {
		return line
	}
	ex := res.Explosion
	destroyed := []string{ex.Victim.Type.Name() + " " + ex.Center.String()}
	for _, c := range ex.Collateral {
		destroyed = append(destroyed, c.Piece.Type.Name()+" "+c.Square.String())
	}
	line += " boom: " + strings.Join(destroyed, ", ")
	if res.Ended {
		line += " (game over)"
	}
	return line
}

func writeSVG(path string, b *atomic.Board, blast *atomic.Explosion) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := image.SVG(f, b, image.MarkExplosion(blastColor, blast)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
