// 19 Oct 2026

package main

import (
	"os"

	"github.com/andrew-torda/seqalign/pkg/seqalign"
)

func main() {
	os.Exit(seqalign.Mymain())
}
