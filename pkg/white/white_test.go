package white_test

import (
	"testing"

	"github.com/andrew-torda/seqalign/pkg/white"
)

func TestRemove(t *testing.T) {
	ss := []string{
		"abcdefghijk",
		" a b c d e f g h i j k",
		"a b c de fgh ijk",
		"   abcdefghijk    ",
		"a   b      cdefghijk\n ",
		"a  b  c  d   e    f     ghijk",
		"a bcdefghij   k",
		"abcdefghij\r\nk",
	}
	for _, s := range ss {
		b := []byte(s)
		c := cap(b)
		white.Remove(&b)
		if string(b) != "abcdefghijk" {
			t.Fatalf("white remove broke on \"%s\" got \"%s\"", s, b)
		}
		if cap(b) != c {
			t.Fatalf("capacity changed from %d to %d on \"%s\"", c, cap(b), s)
		}
	}
	for _, s := range []string{"", " \t\n"} {
		b := []byte(s)
		if white.Remove(&b); len(b) != 0 {
			t.Fatalf("wanted nothing left of \"%s\", got \"%s\"", s, b)
		}
	}
	var empty []byte
	if white.Remove(&empty); len(empty) != 0 {
		t.Fatal("nil slice grew")
	}
}
