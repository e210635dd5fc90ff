package seq_test

import (
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrew-torda/seqalign/pkg/brokenio"
	"github.com/andrew-torda/seqalign/pkg/randseq"
	. "github.com/andrew-torda/seqalign/pkg/seq"
	"github.com/andrew-torda/seqalign/pkg/seq/common"
)

func cmmtHelp(got, want string, t *testing.T) {
	if got != want {
		t.Fatalf("checking comments wanted \"%s\" got \"%s\"", want, got)
	}
}

// TestComment is to check that comments are read exactly, correctly
func TestComment(t *testing.T) {
	c0 := "testcomment no space"
	c1 := " testcomment with space at start"
	s := "aaa\n"
	seqs := ">" + c0 + "\n" + s + ">" + c1 + "\r\n" + s
	slc, err := ReadFasta(strings.NewReader(seqs))
	if err != nil {
		t.Fatal("bust reading simple seqs in TestComment", err)
	}
	require.Len(t, slc, 2)
	cmmtHelp(slc[1].GetCmmt(), c1, t)
	cmmtHelp(slc[0].GetCmmt(), c0, t)
}

// TestDiffLen checks if we can read sequences of different lengths,
// with white space in the middle, and that they come back upper case.
func TestDiffLen(t *testing.T) {
	s := `
>s1
g
> s2
a t
> s3
ga
t
c`
	slc, err := ReadFasta(strings.NewReader(s))
	require.NoError(t, err)
	want := []string{"G", "AT", "GATC"}
	require.Len(t, slc, len(want))
	for i, w := range want {
		assert.Equal(t, w, string(slc[i].GetSeq()))
		assert.Equal(t, len(w), slc[i].Len())
	}
}

func TestBroken(t *testing.T) {
	var broken = []struct {
		in   string
		want error
	}{
		{"", ErrNoSeqs},
		{"  \n ", ErrNoSeqs},
		{"acgt\n", ErrFormat},
		{"acgt\n> s1\nacgt", ErrFormat},
		{"> s1\n\n> s2\nacgt", ErrEmptySeq},
		{"> s1\nacgt\n> s2", ErrEmptySeq},
	}
	for _, x := range broken {
		_, err := ReadFasta(strings.NewReader(x.in))
		assert.ErrorIs(t, err, x.want, "input %q", x.in)
	}
	_, err := ReadFasta(strings.NewReader("> s1\nac\xe4gt"))
	assert.ErrorContains(t, err, "bad sym")
}

// TestReadFile writes random strands with white space scattered
// through them and reads them back through the memory map.
func TestReadFile(t *testing.T) {
	const nseq = 50
	var sb strings.Builder
	args := randseq.RandSeqArgs{Wrtr: &sb, Cmmt: "strand", Nseq: nseq, MinLen: 40, MaxLen: 60, White: true}
	require.NoError(t, randseq.RandSeqMain(&args))
	fname, err := common.WrtTemp(sb.String())
	require.NoError(t, err)
	defer os.Remove(fname)

	n, err := NumSeq(fname)
	require.NoError(t, err)
	assert.Equal(t, nseq, n)

	slc, err := ReadFile(fname)
	require.NoError(t, err)
	require.Len(t, slc, nseq)
	for i, s := range slc {
		assert.Equal(t, fmt.Sprintf(" strand %2d", i+1), s.GetCmmt())
		assert.GreaterOrEqual(t, s.Len(), 40)
		assert.LessOrEqual(t, s.Len(), 60)
		assert.Equal(t, -1, strings.IndexFunc(string(s.GetSeq()), func(r rune) bool {
			return !strings.ContainsRune(randseq.DNA, r)
		}))
	}
}

func TestReadFileEmpty(t *testing.T) {
	fname, err := common.WrtTemp("")
	require.NoError(t, err)
	defer os.Remove(fname)
	_, err = ReadFile(fname)
	assert.ErrorIs(t, err, ErrNoSeqs)
	n, err := NumSeq(fname)
	assert.NoError(t, err)
	assert.Zero(t, n)

	_, err = ReadFile(fname + ".not.there")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	s := New(" s1", []byte("GATTACA"))
	assert.Equal(t, "> s1\nGATTACA", s.String())
}

// TestReadBroken feeds the reader input that fails part way through,
// or looks like an empty file.
func TestReadBroken(t *testing.T) {
	const in = "> s1\nGATTACA\n> s2\nACGT\n"
	rdr := brokenio.NewReader(io.NopCloser(strings.NewReader(in)), 1)
	rdr.SetProbFail(1)
	_, err := ReadFasta(rdr)
	assert.ErrorIs(t, err, brokenio.ErrBroken)
	assert.ErrorContains(t, err, "reading fasta")

	rdr = brokenio.NewReader(io.NopCloser(strings.NewReader(in)), 1)
	rdr.SetProbZeroFile(1)
	_, err = ReadFasta(rdr)
	assert.ErrorIs(t, err, ErrNoSeqs)

	rdr = brokenio.NewReader(io.NopCloser(strings.NewReader(in)), 1)
	slc, err := ReadFasta(rdr)
	require.NoError(t, err)
	assert.Len(t, slc, 2)
	assert.Equal(t, len(in), rdr.NByte())
}
