package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"lispy/internal/ast"
	"reflect"
)

// WalkAST recursively traverses the syntax tree and serializes it into a map structure.
func WalkAST(node ast.Node) interface{} {
	if node == nil || (reflect.ValueOf(node).Kind() == reflect.Ptr && reflect.ValueOf(node).IsNil()) {
		return nil
	}

	m := map[string]interface{}{
		"tag": node.Tag(),
	}

	if t, ok := node.(*ast.Tree); ok {
		m["line"] = t.Line
		m["column"] = t.Column
	}

	if ast.IsBranch(node.Tag()) {
		children := make([]interface{}, len(node.Children()))
		for i, c := range node.Children() {
			children[i] = WalkAST(c)
		}
		m["children"] = children
	} else {
		m["contents"] = node.Contents()
	}

	return m
}

func RenderASTAsJSON(node ast.Node) (string, error) {
	astMap := WalkAST(node)
	buf := new(bytes.Buffer)
	encoder := json.NewEncoder(buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(astMap); err != nil {
		return "", fmt.Errorf("failed to encode JSON: %v", err)
	}
	return buf.String(), nil
}
