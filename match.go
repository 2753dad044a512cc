// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/lzo/match.go (dedicated match-finding file shape)

package hpzt

// longestMatch scans the dictionary's candidate list for the first byte at
// block[pos] and returns the 1-based ID and length of the longest phrase
// that matches, or (0, 0) if none does. A match may compare bytes up to
// len(block); a phrase that would run past the end of block is skipped.
// The encoder only calls this below its commit limit, and its carry
// reserve keeps that limit far enough behind len(block) for cross-block
// correctness.
func (d *Dictionary) longestMatch(block []byte, pos int) (id int, length int) {
	for _, idx := range d.candidates(block[pos]) {
		phrase := d.phrases[idx]
		end := pos + len(phrase)
		if end > len(block) {
			continue
		}

		if string(block[pos:end]) == phrase {
			return idx + 1, len(phrase)
		}
	}

	return 0, 0
}
