package ast

import (
	"bytes"
	"strings"
)

// Tags attached to tree nodes. A node's tag is a '|' separated classification path,
// e.g. "expr|number|regex", so consumers match on the segment they care about.
const (
	TagRoot       = ">"
	TagAnchor     = "regex"
	TagChar       = "char"
	TagNumber     = "expr|number|regex"
	TagOperator   = "expr|symbol|char"
	TagIdentifier = "expr|symbol|regex"
	TagSexpr      = "expr|sexpr|>"
)

// The base Node interface. A node is either a leaf carrying literal text or a
// branch carrying an ordered list of children.
type Node interface {
	Tag() string
	Contents() string
	Children() []Node
	String() string
}

// Tree is the concrete node produced by the parser.
type Tree struct {
	Kind   string
	Text   string
	Line   int
	Column int
	Kids   []Node
}

func (t *Tree) Tag() string      { return t.Kind }
func (t *Tree) Contents() string { return t.Text }
func (t *Tree) Children() []Node { return t.Kids }

// String renders the tree back as source text, normalised to single spaces.
func (t *Tree) String() string {
	if len(t.Kids) == 0 {
		return t.Text
	}

	var out bytes.Buffer
	parts := []string{}
	for _, k := range t.Kids {
		s := k.String()
		if s == "" {
			continue
		}
		parts = append(parts, s)
	}

	joined := strings.Join(parts, " ")
	joined = strings.ReplaceAll(joined, "( ", "(")
	joined = strings.ReplaceAll(joined, " )", ")")
	out.WriteString(joined)
	return out.String()
}

// IsBranch reports whether the tag classifies a structural node.
func IsBranch(tag string) bool {
	return tag == TagRoot || strings.HasSuffix(tag, ">")
}

// Leaf builds a node carrying literal text.
func Leaf(kind, text string, line, column int) *Tree {
	return &Tree{Kind: kind, Text: text, Line: line, Column: column}
}

// Branch builds a structural node; children are appended with Add.
func Branch(kind string, line, column int) *Tree {
	return &Tree{Kind: kind, Line: line, Column: column, Kids: []Node{}}
}

func (t *Tree) Add(child Node) *Tree {
	t.Kids = append(t.Kids, child)
	return t
}
