package parser

import (
	"fmt"
	"lispy/internal/ast"
	"reflect"
	"strings"
)

// RenderASTAsText produces an indented dump of the syntax tree, one node per line.
// Leaves show their tag, position and contents; branches show only their tag.
func RenderASTAsText(node ast.Node, indent int) string {
	if node == nil || (reflect.ValueOf(node).Kind() == reflect.Ptr && reflect.ValueOf(node).IsNil()) {
		return "nil"
	}

	sp := strings.Repeat("  ", indent)

	if t, ok := node.(*ast.Tree); ok && !ast.IsBranch(t.Kind) {
		return fmt.Sprintf("%s%s:%d:%d '%s'", sp, t.Kind, t.Line, t.Column, t.Text)
	}

	if len(node.Children()) == 0 && !ast.IsBranch(node.Tag()) {
		return fmt.Sprintf("%s%s '%s'", sp, node.Tag(), node.Contents())
	}

	var sb strings.Builder
	sb.WriteString(sp + node.Tag())
	for _, c := range node.Children() {
		sb.WriteString("\n")
		sb.WriteString(RenderASTAsText(c, indent+1))
	}
	return sb.String()
}
