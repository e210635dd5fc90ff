// 31 July 2020
// 19 Oct 2026 DNA strands with a length range, for the aligner.

// Package randseq makes random DNA strands, either one at a time for
// the aligner or as a fasta file for testing the readers.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
	"sync"

	"cloudeng.io/errors"
)

const (
	nPadWhite = 9 // For padding for adding whitespace to sequences
)

// DNA is the alphabet we draw from.
const DNA = "ATGC"

// ErrBadRange is returned when a length range cannot be used.
var ErrBadRange = errors.New("bad strand length range")

// checkRange wants 0 < minLen <= maxLen.
func checkRange(minLen, maxLen int) error {
	if minLen <= 0 {
		return fmt.Errorf("%w: minimum length %d must be positive", ErrBadRange, minLen)
	}
	if maxLen < minLen {
		return fmt.Errorf("%w: maximum length %d is less than minimum %d", ErrBadRange, maxLen, minLen)
	}
	return nil
}

// getseq returns a byte slice with a random sequence in it. There is
// room at the end for some white space.
func getseq(seqlen int, rnd *rand.Rand) []byte {
	space := seqlen + (seqlen / nPadWhite) // about 10% rubbish white space
	ret := make([]byte, seqlen, space)
	l := int32(len(DNA))
	for i := 0; i < seqlen; i++ {
		ret[i] = DNA[rnd.Int31n(l)]
	}
	return ret
}

// Strand returns a strand whose length is drawn uniformly from
// [minLen, maxLen] and whose bases are drawn uniformly from DNA.
// A bad range is an error and nothing is drawn.
func Strand(rnd *rand.Rand, minLen, maxLen int) ([]byte, error) {
	if err := checkRange(minLen, maxLen); err != nil {
		return nil, err
	}
	n := minLen + rnd.Intn(maxLen-minLen+1)
	s := getseq(n, rnd)
	return s[:n:n], nil
}

// RandSeqArgs is the set of arguments passed to the main function
type RandSeqArgs struct {
	Iseed  int64     // random number seed
	Wrtr   io.Writer // where we write to
	Cmmt   string    // Comment for the sequences
	Nseq   int       // number of sequences
	MinLen int       // Shortest sequence
	MaxLen int       // Longest sequence
	White  bool      // Sprinkle white space through the sequences
}

// addInner is used by addspace to add a space or newline
func addInner(s []byte, n int, c byte, spacernd *rand.Rand) []byte {
	for i := 0; i < n; i++ {
		s = append(s, 0)
		pos := spacernd.Int31n(int32(len(s)))
		copy(s[pos+1:], s[pos:])
		s[pos] = c
	}
	return s
}

// addspace is given a byte array and adds white characters at random
// positions. We work out how much space is to be used. We flip a coin.
// Heads we don't add a newline. Tails we make about 1/10 (integer 1/9)
// of the spaces to be newlines.
func addspace(s []byte, spacernd *rand.Rand) []byte {
	toAdd := cap(s) - len(s)
	coin := spacernd.Int31n(2)
	nNL := 0 // Number of new lines to add
	if coin == 0 {
		nNL = toAdd / 9
	}

	nSpace := toAdd - nNL
	s = addInner(s, nSpace, ' ', spacernd)
	s = addInner(s, nNL, '\n', spacernd)
	return s
}

// writeseq takes a bytestring which is our sequence. It adds a comment
// and sends it out for writing. n is the number of the sequence, so the
// output has comment lines "> something 1, > something 2..."
// The first write error stops output and is sent back on errc.
func writeseq(sChan <-chan []byte, args *RandSeqArgs, errc chan<- error, wg *sync.WaitGroup) {
	defer wg.Done()

	width := len(fmt.Sprintf("%d", args.Nseq))
	spacernd := rand.New(rand.NewSource(args.Iseed + 1))
	var i int
	var err error
	for s := range sChan {
		i++
		if err != nil {
			continue // drain
		}
		if args.White {
			s = addspace(s, spacernd)
		}
		tmp := fmt.Sprintf("> %s %[2]*d\n", args.Cmmt, width, i)
		if _, err = io.WriteString(args.Wrtr, tmp); err != nil {
			continue
		}
		if _, err = args.Wrtr.Write(s); err != nil {
			continue
		}
		_, err = args.Wrtr.Write([]byte{'\n'})
	}
	errc <- err
}

// RandSeqMain writes random strands to an io.Writer in fasta format.
func RandSeqMain(args *RandSeqArgs) error {
	if err := checkRange(args.MinLen, args.MaxLen); err != nil {
		return err
	}
	var wg sync.WaitGroup
	rnd := rand.New(rand.NewSource(args.Iseed))
	sChan := make(chan []byte)
	errc := make(chan error, 1)
	wg.Add(1)
	go writeseq(sChan, args, errc, &wg)
	for i := 0; i < args.Nseq; i++ {
		n := args.MinLen + rnd.Intn(args.MaxLen-args.MinLen+1)
		sChan <- getseq(n, rnd)
	}
	close(sChan)
	wg.Wait()
	if err := <-errc; err != nil {
		return fmt.Errorf("writing sequences: %w", err)
	}
	return nil
}
