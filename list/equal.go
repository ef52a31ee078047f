package list

import (
	"strconv"
	"strings"
)

// Equal reports whether l and other hold the same values in the same order.
func (l *List) Equal(other *List) bool {
	var a = l
	var b = other
	for {
		// an empty list only equals another empty list
		if a == nil || b == nil {
			return a == nil && b == nil
		}
		if a.elem != b.elem {
			return false
		}
		a = a.next
		b = b.next
	}
}

// String renders l as its values joined by commas and terminated by NIL, so
// [1, 2, 3] renders as "1,2,3,NIL" and the empty list as "NIL".
func (l *List) String() string {
	var sb strings.Builder
	for n := l; n != nil; n = n.next {
		sb.WriteString(strconv.FormatInt(n.elem, 10))
		sb.WriteByte(',')
	}
	sb.WriteString("NIL")
	return sb.String()
}
