// 31 July 2020

package randseq_test

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/seqalign/pkg/randseq"
)

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandSeqArgs{
		Wrtr:   &sb,
		Cmmt:   "testing seq",
		Nseq:   500,
		MinLen: 40,
		MaxLen: 60,
		White:  true,
	}
	require.NoError(t, randseq.RandSeqMain(&args))
	if n := strings.Count(sb.String(), ">"); n != args.Nseq {
		t.Fatal("count >, got ", n, "expected", args.Nseq)
	}
}

func TestStrand(t *testing.T) {
	rnd := rand.New(rand.NewSource(1637))
	seen := make(map[int]bool)
	for i := 0; i < 2000; i++ {
		s, err := randseq.Strand(rnd, 40, 60)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(s), 40)
		require.LessOrEqual(t, len(s), 60)
		for _, c := range s {
			require.Contains(t, randseq.DNA, string(c))
		}
		seen[len(s)] = true
	}
	assert.Len(t, seen, 21, "every length in the range should turn up")

	s, err := randseq.Strand(rnd, 1, 1)
	require.NoError(t, err)
	assert.Len(t, s, 1)
}

func TestStrandSeed(t *testing.T) {
	a, _ := randseq.Strand(rand.New(rand.NewSource(42)), 100, 200)
	b, _ := randseq.Strand(rand.New(rand.NewSource(42)), 100, 200)
	assert.True(t, bytes.Equal(a, b), "same seed should give the same strand")
}

func TestBadRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for _, r := range [][2]int{{0, 10}, {-1, 3}, {10, 9}} {
		s, err := randseq.Strand(rnd, r[0], r[1])
		assert.Nil(t, s)
		assert.True(t, errors.Is(err, randseq.ErrBadRange), "range %v gave %v", r, err)
	}
	err := randseq.RandSeqMain(&randseq.RandSeqArgs{Wrtr: &strings.Builder{}, Nseq: 1, MinLen: 5, MaxLen: 4})
	assert.ErrorIs(t, err, randseq.ErrBadRange)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteFail(t *testing.T) {
	args := randseq.RandSeqArgs{Wrtr: failWriter{}, Nseq: 10, MinLen: 5, MaxLen: 10}
	assert.ErrorContains(t, randseq.RandSeqMain(&args), "disk full")
}
