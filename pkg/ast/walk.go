package ast

import (
	"strings"

	"github.com/pkg/errors"
)

// Order selects the sequence in which Walk visits nodes.
type Order int

const (
	// PreOrder visits a node before its children, children in tree order.
	PreOrder Order = iota
	// PostOrder visits a node after its children, children in tree order.
	PostOrder
	// ReversePreOrder visits a node before its children, children in reverse
	// tree order.
	ReversePreOrder
)

var orderNames = map[Order]string{
	PreOrder:        "preorder",
	PostOrder:       "postorder",
	ReversePreOrder: "reverse",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}

	return "unknown"
}

// ParseOrder returns the Order with the given name (case-insensitive). An
// empty name selects PreOrder.
func ParseOrder(name string) (Order, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return PreOrder, nil
	}

	for order, n := range orderNames {
		if n == name {
			return order, nil
		}
	}

	return PreOrder, errors.Errorf("unknown visit order: %s", name)
}

// Walk calls fn for every node in the tree rooted at n in the given order.
// Walking stops at the first error fn returns, and that error is returned.
//
// Children are read while walking, so fn must not change the shape of the
// tree.
func Walk(n Node, order Order, fn func(Node) error) error {
	if n == nil {
		return nil
	}

	if order != PostOrder {
		if err := fn(n); err != nil {
			return err
		}
	}

	count := n.NumChildren()
	for i := range count {
		idx := i
		if order == ReversePreOrder {
			idx = count - 1 - i
		}

		if err := Walk(n.Child(idx), order, fn); err != nil {
			return err
		}
	}

	if order == PostOrder {
		return fn(n)
	}

	return nil
}

// Inspect traverses the tree rooted at n in pre-order. Children of a node are
// skipped when fn returns false for it.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	for i := range n.NumChildren() {
		Inspect(n.Child(i), fn)
	}
}
