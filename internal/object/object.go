package object

import (
	"strconv"
	"strings"
	"sync/atomic"
)

const (
	NUMBER_OBJ = "NUMBER"
	ERROR_OBJ  = "ERROR"
	SYMBOL_OBJ = "SYMBOL"
	SEXPR_OBJ  = "SEXPR"
)

type ObjectType string

// Object is a closed sum: *Number, *Error, *Symbol and *Expression are the only
// implementations. Consumers switch on the concrete type.
type Object interface {
	Type() ObjectType
	Inspect() string
	object()
}

// live counts values that have been constructed but not yet destroyed.
var live atomic.Int64

// Live returns the number of values currently alive.
func Live() int64 {
	return live.Load()
}

type Number struct {
	Value int64
}

func NewNumber(n int64) *Number {
	live.Add(1)
	return &Number{Value: n}
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return strconv.FormatInt(n.Value, 10) }
func (n *Number) object()          {}

type Error struct {
	Kind    ErrorKind
	Message string
}

func NewError(kind ErrorKind, message string) *Error {
	live.Add(1)
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return "Error: " + e.Message }
func (e *Error) object()          {}

type Symbol struct {
	Name string
}

func NewSymbol(name string) *Symbol {
	live.Add(1)
	return &Symbol{Name: name}
}

func (s *Symbol) Type() ObjectType { return SYMBOL_OBJ }
func (s *Symbol) Inspect() string  { return s.Name }
func (s *Symbol) object()          {}

// Expression owns its children: a child is never referenced from two parents.
type Expression struct {
	Children []Object
}

func NewExpression() *Expression {
	live.Add(1)
	return &Expression{}
}

func (e *Expression) Type() ObjectType { return SEXPR_OBJ }
func (e *Expression) Inspect() string {
	parts := make([]string, len(e.Children))
	for i, c := range e.Children {
		parts[i] = c.Inspect()
	}
	return "(" + strings.Join(parts, " ") + ")"
}
func (e *Expression) object() {}

func (e *Expression) Len() int { return len(e.Children) }

// Append moves child into e, after every existing child.
func (e *Expression) Append(child Object) *Expression {
	e.Children = append(e.Children, child)
	return e
}

// Destroy ends the life of v and, for an Expression, of every child it still owns.
// Each value must be destroyed at most once.
func Destroy(v Object) {
	switch v := v.(type) {
	case *Expression:
		for _, c := range v.Children {
			Destroy(c)
		}
		v.Children = nil
	case *Error:
		v.Message = ""
	case *Symbol:
		v.Name = ""
	case *Number:
	}
	live.Add(-1)
}
