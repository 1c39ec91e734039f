package object

import "slices"

// Pop removes the child at index i and hands it to the caller. Later children
// shift left by one; e keeps ownership of everything else. i must be in range.
func Pop(e *Expression, i int) Object {
	x := e.Children[i]
	e.Children = slices.Delete(e.Children, i, i+1)
	return x
}

// Take is Pop followed by destroying e along with its remaining children.
func Take(e *Expression, i int) Object {
	x := Pop(e, i)
	Destroy(e)
	return x
}
