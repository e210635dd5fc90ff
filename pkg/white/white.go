// Package white strips white space out of byte slices.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Remove acts on a byte slice, in place, and removes all the white
// space. The length is adjusted, the capacity is unchanged.
func Remove(s *[]byte) {
	t := (*s)[:0]
	for _, c := range *s {
		if !asciiSpace[c] {
			t = append(t, c)
		}
	}
	*s = t
}
