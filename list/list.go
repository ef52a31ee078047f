// Package list implements a persistent singly-linked list of integers.
//
// The empty list is the nil *List, and every method accepts a nil receiver.
// Lists are never modified after construction: operations return new lists,
// which may share nodes with their inputs.
package list

type List struct {
	elem int64
	next *List
}

// New returns the empty list.
func New() *List {
	var l *List
	return l
}

// From builds a list holding xs in order.
func From(xs []int64) *List {
	var l = New()
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Push(xs[i])
	}
	return l
}

// Push returns a list with x in front of l.
func (l *List) Push(x int64) *List {
	return &List{elem: x, next: l}
}

// Head returns the first element of l, or false if l is empty.
func (l *List) Head() (int64, bool) {
	if l == nil {
		return 0, false
	}
	return l.elem, true
}

// Rest returns l without its first element. The rest of an empty list is
// empty.
func (l *List) Rest() *List {
	if l == nil {
		return New()
	}
	return l.next
}

// Pop splits l into its head and rest. The boolean is false if l is empty.
func (l *List) Pop() (int64, *List, bool) {
	x, ok := l.Head()
	return x, l.Rest(), ok
}

// Append returns a list with x after the last element of l.
func (l *List) Append(x int64) *List {
	return l.Concat(&List{elem: x})
}

// Concat returns the elements of l followed by the elements of other.
//
// The nodes of l are copied; other becomes the shared tail of the result.
func (l *List) Concat(other *List) *List {
	var head = other
	// link points at the field the next copied node goes into
	link := &head
	for n := l; n != nil; n = n.next {
		c := &List{elem: n.elem, next: other}
		*link = c
		link = &c.next
	}
	return head
}

// Add is Concat with l as the left operand.
func (l *List) Add(other *List) *List {
	return l.Concat(other)
}
