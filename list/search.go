package list

import "github.com/goose-lang/std"

// Find reports whether x appears anywhere in l.
func (l *List) Find(x int64) bool {
	var n = l
	for n != nil {
		if n.elem == x {
			return true
		}
		n = n.next
	}
	return false
}

// Len returns the number of elements in l.
func (l *List) Len() uint64 {
	var count = uint64(0)
	for n := l; n != nil; n = n.next {
		count = std.SumAssumeNoOverflow(count, 1)
	}
	return count
}
