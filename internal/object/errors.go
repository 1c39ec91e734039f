package object

import "fmt"

type ErrorKind int

const (
	InvalidNumber ErrorKind = iota
	DivideByZero
	NonNumberOperand
	NotASymbolHead
	BadOperator
	TooFewOperands
	LineTooLong
)

var kindNames = [...]string{
	"InvalidNumber",
	"DivideByZero",
	"NonNumberOperand",
	"NotASymbolHead",
	"BadOperator",
	"TooFewOperands",
	"LineTooLong",
}

func (k ErrorKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

const (
	MsgInvalidNumber    = "Invalid Number."
	MsgDivideByZero     = "Attempt to divide by zero."
	MsgNonNumberOperand = "Cannot apply operand to a non-number."
	MsgNotASymbolHead   = "S-Expression does not start with a symbol."
)

func ErrInvalidNumber() *Error    { return NewError(InvalidNumber, MsgInvalidNumber) }
func ErrDivideByZero() *Error     { return NewError(DivideByZero, MsgDivideByZero) }
func ErrNonNumberOperand() *Error { return NewError(NonNumberOperand, MsgNonNumberOperand) }
func ErrNotASymbolHead() *Error   { return NewError(NotASymbolHead, MsgNotASymbolHead) }

func ErrBadOperator(op string) *Error {
	return NewError(BadOperator, fmt.Sprintf("Unknown operator '%s'.", op))
}

func ErrTooFewOperands(op string) *Error {
	return NewError(TooFewOperands, fmt.Sprintf("Operator '%s' needs at least one operand.", op))
}

func ErrLineTooLong(limit int) *Error {
	return NewError(LineTooLong, fmt.Sprintf("Input line longer than %d bytes.", limit))
}
