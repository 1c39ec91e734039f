package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"lispy/internal/ast"
	"lispy/internal/evaluator"
	"lispy/internal/history"
	"lispy/internal/lexer"
	"lispy/internal/object"
	"lispy/internal/parser"
	"lispy/internal/printer"
	"lispy/internal/reader"
	"lispy/internal/util"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	Banner        = "DIY Lispy\nPress C-c to Exit.\n\n"
	PROMPT        = util.DefaultPrompt
	historyWrites = 2 * time.Second
)

type Options struct {
	Prompt       string
	Color        bool
	Quiet        bool // no banner, no prompt
	MaxDepth     int
	MaxLineBytes int // 0 means util.DefaultMaxLineBytes
	DebugTxtAST  bool
	DebugJsonAST bool
	History      history.Store
	HistorySize  int
}

// Evaluate reads, evaluates and renders one syntax tree. It reports whether the
// result is an error.
func Evaluate(root ast.Node, p printer.Printer) (string, bool) {
	line, _, failed := evaluate(root, p)
	return line, failed
}

func evaluate(root ast.Node, p printer.Printer) (styled, plain string, failed bool) {
	result := evaluator.Eval(reader.Read(root))
	defer object.Destroy(result)

	_, failed = result.(*object.Error)
	return p.Render(result), printer.Render(result), failed
}

// Session evaluates lines one at a time. Lines share nothing but the history store.
type Session struct {
	opts    Options
	printer printer.Printer
}

func NewSession(opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = PROMPT
	}
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = util.DefaultMaxLineBytes
	}
	if opts.History == nil {
		opts.History = history.NewMemory(opts.HistorySize)
	}
	return &Session{
		opts:    opts,
		printer: printer.Printer{Color: opts.Color},
	}
}

// Rep runs one read-eval-print cycle and returns everything to be shown for the
// line, newline terminated.
func (s *Session) Rep(ctx context.Context, line string) string {
	var out strings.Builder

	p := parser.New(lexer.New(line), line)
	p.SetMaxDepth(s.opts.MaxDepth)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		printParserErrors(&out, line, p)
		s.record(ctx, line, strings.Join(p.Errors(), "\n"), true)
		return out.String()
	}

	s.printDebugAST(&out, program)

	styled, plain, failed := evaluate(program, s.printer)
	out.WriteString(styled)
	out.WriteString("\n")

	s.record(ctx, line, plain, failed)
	return out.String()
}

func (s *Session) printDebugAST(out *strings.Builder, program *ast.Tree) {
	if s.opts.DebugTxtAST {
		out.WriteString(parser.RenderASTAsText(program, 0))
		out.WriteString("\n")
	}
	if s.opts.DebugJsonAST {
		js, err := parser.RenderASTAsJSON(program)
		if err != nil {
			slog.Warn("could not render AST", slog.Any("error", err))
			return
		}
		out.WriteString(js)
	}
}

func (s *Session) record(ctx context.Context, line, output string, failed bool) {
	if strings.TrimSpace(line) == "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, historyWrites)
	defer cancel()

	err := s.opts.History.Append(ctx, history.Entry{
		Input:  line,
		Output: output,
		Failed: failed,
		At:     time.Now(),
	})
	if err != nil {
		slog.Warn("failed to record history", slog.Any("error", err))
	}
}

// Start runs the loop over a plain reader, e.g. a pipe or a file. It returns nil at
// end of input. A line longer than MaxLineBytes is reported and skipped.
func Start(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	s := NewSession(opts)
	r := bufio.NewReader(in)

	if !opts.Quiet {
		io.WriteString(out, Banner)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !opts.Quiet {
			fmt.Fprint(out, s.opts.Prompt)
		}
		line, tooLong, err := readLine(r, s.opts.MaxLineBytes)
		if err != nil {
			if !opts.Quiet {
				io.WriteString(out, "\n")
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if tooLong {
			slog.Warn("input line skipped", slog.Int("limit", s.opts.MaxLineBytes))
			e := object.ErrLineTooLong(s.opts.MaxLineBytes)
			io.WriteString(out, s.printer.Render(e)+"\n")
			object.Destroy(e)
			continue
		}

		io.WriteString(out, s.Rep(ctx, line))
	}
}

// readLine reads up to the next newline. When the line exceeds limit bytes the rest
// of it is drained and tooLong is set.
func readLine(r *bufio.Reader, limit int) (line string, tooLong bool, err error) {
	var sb strings.Builder
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			return "", false, err
		}
		if !tooLong {
			if sb.Len()+len(chunk) > limit {
				tooLong = true
				sb.Reset()
			} else {
				sb.Write(chunk)
			}
		}
		if !isPrefix {
			return sb.String(), tooLong, nil
		}
	}
}

func printParserErrors(out io.Writer, src string, p *parser.Parser) {
	io.WriteString(out, "parse error:\n")
	for _, msg := range p.Errors() {
		io.WriteString(out, "\t"+msg+"\n")
	}
	line, col := p.ErrorPosition()
	if ctxLines := util.GetContextLines(src, line, col); ctxLines != "" {
		io.WriteString(out, ctxLines+"\n")
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
