// Package shell is the interactive command loop: a banner, a prompt,
// and one fully processed command at a time. Per-command failures are
// reported and the loop carries on; only startup errors are fatal.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"pixmill/internal/engine"
	"pixmill/internal/logging"
)

type Shell struct {
	eng *engine.Engine
	in  io.Reader
	out io.Writer
}

func New(eng *engine.Engine, in io.Reader, out io.Writer) *Shell {
	return &Shell{eng: eng, in: in, out: out}
}

// Run reads commands until quit, EOF, or context cancellation. The read
// itself blocks; cancellation is observed between commands.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintf(s.out, "transforms: %s, history\n", strings.Join(engine.Kinds(), ", "))
	fmt.Fprintln(s.out, `type a transform name, "history", or "quit"`)

	sc := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			fmt.Fprintln(s.out, "goodbye")
			return nil
		}
		s.dispatch(strings.ToLower(line))
	}
}

func (s *Shell) dispatch(cmd string) {
	switch {
	case cmd == "history":
		s.printHistory()
	case s.eng.Knows(cmd):
		start := time.Now()
		if err := s.eng.Apply(cmd); err != nil {
			logging.L().Error("conversion failed", "kind", cmd, "err", err)
			fmt.Fprintf(s.out, "%s failed: %v\n", cmd, err)
			return
		}
		fmt.Fprintf(s.out, "%s took %s\n", cmd, time.Since(start).Round(time.Microsecond))
	default:
		fmt.Fprintf(s.out, "unknown transform %q\n", cmd)
	}
}

func (s *Shell) printHistory() {
	cache := s.eng.Cache()
	fmt.Fprintf(s.out, "%d conversions recorded\n", cache.Count())
	for _, r := range cache.Records() {
		fmt.Fprintf(s.out, "%s  %-10s %d %d\n",
			r.Timestamp.Format(time.RFC3339), r.Kind, r.Meta.Width, r.Meta.Height)
	}
}
