package printer

import (
	"io"
	"lispy/internal/object"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Printer renders values as text. With Color set, errors are shown in red.
type Printer struct {
	Color bool
}

// Render is the uncoloured rendering of v.
func Render(v object.Object) string {
	return Printer{}.Render(v)
}

func (p Printer) Render(v object.Object) string {
	var sb strings.Builder
	p.render(&sb, v)
	return sb.String()
}

func (p Printer) render(sb *strings.Builder, v object.Object) {
	switch v := v.(type) {
	case *object.Number:
		sb.WriteString(strconv.FormatInt(v.Value, 10))

	case *object.Error:
		if p.Color {
			sb.WriteString(errorColor().Sprint(v.Inspect()))
		} else {
			sb.WriteString(v.Inspect())
		}

	case *object.Symbol:
		sb.WriteString(v.Name)

	case *object.Expression:
		sb.WriteByte('(')
		for i, c := range v.Children {
			if i > 0 {
				sb.WriteByte(' ')
			}
			p.render(sb, c)
		}
		sb.WriteByte(')')
	}
}

// Println writes the rendering of v followed by a newline.
func (p Printer) Println(w io.Writer, v object.Object) error {
	_, err := io.WriteString(w, p.Render(v)+"\n")
	return err
}

// errorColor is red regardless of color.NoColor; callers decide through Printer.Color.
func errorColor() *color.Color {
	c := color.New(color.FgRed)
	c.EnableColor()
	return c
}
