package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(fr *frontier) (cells, seqs []int) {
	for fr.Len() > 0 {
		e := fr.Pop()
		cells = append(cells, e.cell)
		seqs = append(seqs, e.seq)
	}
	return cells, seqs
}

func TestFrontier_FIFOAmongEqualPriority(t *testing.T) {
	fr := newFrontier()
	fr.Push(10, 5)
	fr.Push(11, 3)
	fr.Push(12, 5)
	fr.Push(13, 3)
	fr.Push(14, 5)

	cells, seqs := drain(fr)
	assert.Equal(t, []int{11, 13, 10, 12, 14}, cells)
	assert.Equal(t, []int{1, 3, 0, 2, 4}, seqs)
}

func TestFrontier_Membership(t *testing.T) {
	fr := newFrontier()
	fr.Push(7, 1)
	require.True(t, fr.Contains(7))
	require.False(t, fr.Contains(8))

	fr.Pop()
	assert.False(t, fr.Contains(7))
	assert.Zero(t, fr.Len())
}

func TestFrontier_KeepsPushedPriority(t *testing.T) {
	fr := newFrontier()
	fr.Push(1, 4)
	fr.Push(2, 6)
	fr.Push(3, 5)
	require.True(t, fr.Contains(2))

	cells, seqs := drain(fr)
	assert.Equal(t, []int{1, 3, 2}, cells)
	assert.Equal(t, []int{0, 2, 1}, seqs)
}

func TestFrontier_SequenceNeverReused(t *testing.T) {
	fr := newFrontier()
	fr.Push(1, 0)
	fr.Pop()
	fr.Push(1, 0)
	e := fr.Pop()
	assert.Equal(t, 1, e.seq)
}
