package tuple

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *point
	var m map[string]int
	var s []int
	var f func()
	var ch chan int
	var err error

	for _, v := range []any{nil, p, m, s, f, ch, err} {
		assert.True(t, IsNil(v), "%T", v)
	}
	for _, v := range []any{0, "", false, point{}, []int{}, map[string]int{}, &point{}} {
		assert.False(t, IsNil(v), "%T", v)
	}
}

func TestValueEqual_NonComparableInInterface(t *testing.T) {
	t.Parallel()

	assert.True(t, valueEqual[any]([]int{1}, []int{1}))
	assert.False(t, valueEqual[any]([]int{1}, "x"))
	assert.False(t, valueEqual[any](1, int64(1)))
	assert.True(t, valueEqual[any](nil, nil))
	assert.False(t, valueEqual[any](nil, 0))
}

func TestValueHash_Absent(t *testing.T) {
	t.Parallel()

	var p *point
	assert.Zero(t, valueHash[any](nil))
	assert.Zero(t, valueHash(p))
	assert.Equal(t, valueHash(point{1, 2}), valueHash(point{1, 2}))
}

func TestValueHash_LooseValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, looseHash, valueHash[any]([]float64{1}))
	assert.Equal(t, looseHash, valueHash[any](stamped{Name: "a"}))
	assert.Equal(t, looseHash, valueHash(net.ParseIP("1.2.3.4")))
	assert.NotEqual(t, looseHash, valueHash([]int{1}))

	cyclic := &node{}
	cyclic.Next = cyclic
	assert.Equal(t, looseHash, valueHash(cyclic))
}
