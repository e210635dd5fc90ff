// brokenio is a wrapper around an io.ReadCloser. It allows us to set
// rates of failed read operations, so readers can be tested against
// input that dies part way.
// Typical use: You get a file pointer, or a reader from some other
// source. You write
// reader = brokenio.NewReader(reader, seed) to wrap the old reader.
// Everything then functions as before, but with artificial errors.
// When we introduce an error, we return an error.
// When we introduce a failure on the first read, we return without an
// error. This is what one often sees on a zero length file.

package brokenio

import (
	"fmt"
	"io"
	"math/rand"

	"cloudeng.io/errors"
)

// ErrBroken is wrapped by every error this package makes up.
var ErrBroken = errors.New("broken read")

// A BrknRdrClsr is modelled on the various Readers in the standard
// library, but with variables controlling the frequency of errors.
// These values are the fraction of time an error will take place,
// so a value of 0.05 means failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability of a read failing
	fracFail     float32 // How much of a failed read is thrown away
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader - a wrapper around the old one.
// It does not fail until told to.
func NewReader(rIn io.ReadCloser, seed int64) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig:  rIn,
		rnd:      rand.New(rand.NewSource(seed)),
		fracFail: 0.5,
	}
}

// SetFracFail sets the amount of the bytes which will be trashed
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a file reading failure.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// NByte is how much has come through so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// trashSlice wipes out the second part of a slice.
// The amount to wipe out is given by a fraction, so 0.3
// will wipe out the second 30 % of a slice
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("%w: wiped out last %d of %d", ErrBroken, len(p)-nkeep, len(p))
}

// Read wraps the original reader and sums up the amount of data that
// has gone through. It generates an error with a probability given by probFail.
// On the first call, we might return zero data to simulate a zero length file
// which is a rather common occurrence.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		r.nCalled++
		return 0, io.EOF
	}
	n, err = r.rdrOrig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.rnd.Float32() < r.probFail && r.fracFail > 0 {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	return r.rdrOrig.Close()
}
