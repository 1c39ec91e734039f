package evaluator

import (
	"lispy/internal/object"
	"log/slog"
)

type operator func(acc, next int64) int64

var operators = map[string]operator{
	"+": func(acc, next int64) int64 { return acc + next },
	"-": func(acc, next int64) int64 { return acc - next },
	"*": func(acc, next int64) int64 { return acc * next },
	"/": func(acc, next int64) int64 { return acc / next },
}

// ApplyOperator folds op over the operands from left to right and consumes the
// operands expression. A lone operand of "-" is negated.
func ApplyOperator(operands *object.Expression, op string) object.Object {
	for _, c := range operands.Children {
		if _, ok := c.(*object.Number); !ok {
			object.Destroy(operands)
			return object.ErrNonNumberOperand()
		}
	}

	fn, ok := operators[op]
	if !ok {
		slog.Debug("unknown operator", slog.String("op", op))
		object.Destroy(operands)
		return object.ErrBadOperator(op)
	}

	if operands.Len() == 0 {
		object.Destroy(operands)
		return object.ErrTooFewOperands(op)
	}

	acc := object.Pop(operands, 0).(*object.Number)

	if op == "-" && operands.Len() == 0 {
		acc.Value = -acc.Value
	}

	for operands.Len() > 0 {
		next := object.Pop(operands, 0).(*object.Number)

		if op == "/" && next.Value == 0 {
			object.Destroy(acc)
			object.Destroy(next)
			object.Destroy(operands)
			return object.ErrDivideByZero()
		}

		acc.Value = fn(acc.Value, next.Value)
		object.Destroy(next)
	}

	object.Destroy(operands)
	return acc
}
