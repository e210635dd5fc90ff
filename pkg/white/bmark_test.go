package white_test

import (
	"strings"
	"testing"

	"github.com/andrew-torda/seqalign/pkg/white"
)

func BenchmarkRemove(b *testing.B) {
	s := strings.Repeat("acgtacgtac ", 6) + "\n"
	s = strings.Repeat(s, 10)
	for i := 0; i < b.N; i++ {
		tt := []byte(s)
		white.Remove(&tt)
	}
}
