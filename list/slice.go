package list

import "github.com/goose-lang/primitive"

// appendTo adds the elements of l to acc in order.
func (l *List) appendTo(acc []int64) []int64 {
	for n := l; n != nil; n = n.next {
		acc = append(acc, n.elem)
	}
	return acc
}

// ToSlice returns the elements of l in order. The result is never nil.
func (l *List) ToSlice() []int64 {
	return l.appendTo([]int64{})
}

// Split returns a list of the first n elements of l and a list of the rest.
//
// n must be at most l.Len(); Split panics otherwise.
func (l *List) Split(n uint64) (*List, *List) {
	xs := l.ToSlice()
	primitive.Assert(n <= uint64(len(xs)))
	return From(xs[:n]), From(xs[n:])
}
