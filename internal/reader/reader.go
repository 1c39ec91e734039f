package reader

import (
	"lispy/internal/ast"
	"lispy/internal/object"
	"strconv"
	"strings"
)

// Read converts a syntax tree into a value tree. It relies only on the node's tag,
// its contents and its children, never on how the tree was produced.
func Read(node ast.Node) object.Object {
	tag := node.Tag()

	if strings.Contains(tag, "number") {
		return readNumber(node.Contents())
	}

	if strings.Contains(tag, "symbol") {
		return object.NewSymbol(node.Contents())
	}

	x := object.NewExpression()
	for _, child := range node.Children() {
		if skip(child) {
			continue
		}
		x.Append(Read(child))
	}
	return x
}

func readNumber(text string) object.Object {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return object.ErrInvalidNumber()
	}
	return object.NewNumber(n)
}

// parens and anchors carry no value
func skip(child ast.Node) bool {
	c := child.Contents()
	return c == "(" || c == ")" || child.Tag() == ast.TagAnchor
}
