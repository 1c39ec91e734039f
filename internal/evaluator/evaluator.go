package evaluator

import (
	"lispy/internal/object"
	"log/slog"
)

// Eval evaluates v and returns the result, taking ownership of v. Leaves evaluate
// to themselves; expressions are applied.
func Eval(v object.Object) object.Object {
	switch v := v.(type) {
	case *object.Expression:
		return evalExpression(v)
	default:
		return v
	}
}

func evalExpression(e *object.Expression) object.Object {
	// every child is evaluated before any error is looked at
	for i, child := range e.Children {
		e.Children[i] = Eval(child)
	}

	for i, child := range e.Children {
		if err, ok := child.(*object.Error); ok {
			slog.Debug("expression short-circuited",
				slog.String("kind", err.Kind.String()),
				slog.Int("position", i),
				slog.Int("siblings", len(e.Children)-1))
			return object.Take(e, i)
		}
	}

	switch e.Len() {
	case 0:
		return e
	case 1:
		return object.Take(e, 0)
	}

	head := object.Pop(e, 0)
	sym, ok := head.(*object.Symbol)
	if !ok {
		object.Destroy(head)
		object.Destroy(e)
		return object.ErrNotASymbolHead()
	}

	result := ApplyOperator(e, sym.Name)
	object.Destroy(head)
	return result
}
