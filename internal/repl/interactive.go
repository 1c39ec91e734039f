package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/peterh/liner"
)

// StartInteractive runs the loop with line editing. Previous sessions' lines from
// the history store are available with the arrow keys. Ctrl-C or Ctrl-D exits.
func StartInteractive(ctx context.Context, out io.Writer, opts Options) error {
	s := NewSession(opts)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	s.seedHistory(ctx, line)

	io.WriteString(out, Banner)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		input, err := line.Prompt(s.opts.Prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			io.WriteString(out, "\n")
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}

		io.WriteString(out, s.Rep(ctx, input))
	}
}

func (s *Session) seedHistory(ctx context.Context, line *liner.State) {
	inputs := s.recentInputs(ctx)
	for _, in := range inputs {
		line.AppendHistory(in)
	}
	slog.Debug("history loaded", slog.Int("entries", len(inputs)))
}

// recentInputs returns the lines to reload, oldest first. A HistorySize of 0 keeps
// everything, matching what the memory store retains.
func (s *Session) recentInputs(ctx context.Context) []string {
	n := s.opts.HistorySize
	if n <= 0 {
		n = -1
	}
	entries, err := s.opts.History.Recent(ctx, n)
	if err != nil {
		slog.Warn("failed to load history", slog.Any("error", err))
		return nil
	}
	inputs := make([]string, len(entries))
	for i, e := range entries {
		inputs[i] = e.Input
	}
	return inputs
}
