package list_test

import (
	"testing"

	"conslist/list"

	"github.com/goose-lang/std"
	"github.com/stretchr/testify/assert"
)

// Lists are never modified, so one list can be read and extended from several
// goroutines without locking.
func TestSharedList(t *testing.T) {
	assert := assert.New(t)

	shared := list.From([]int64{1, 2, 3})
	results := make([]*list.List, 4)
	var handles []*std.JoinHandle
	for i := range results {
		h := std.Spawn(func() {
			results[i] = shared.Append(int64(i)).Push(int64(-i))
		})
		handles = append(handles, h)
	}
	for _, h := range handles {
		h.Join()
	}

	assert.Equal("1,2,3,NIL", shared.String())
	for i, l := range results {
		assert.Equal([]int64{int64(-i), 1, 2, 3, int64(i)}, l.ToSlice())
	}
}

func TestSharedTail(t *testing.T) {
	assert := assert.New(t)

	tail := list.From([]int64{3, 4})
	a := list.From([]int64{1}).Concat(tail)
	b := tail.Push(2)

	assert.Equal("1,3,4,NIL", a.String())
	assert.Equal("2,3,4,NIL", b.String())
	assert.Equal("3,4,NIL", tail.String())
}
