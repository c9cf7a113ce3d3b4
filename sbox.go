package libargon2

// SBoxWords is the number of uint64 entries in the ds variant's lookup
// table (1024 words = 8 KiB), generated at the end of pass 0 and refreshed
// at the end of every subsequent pass.
const SBoxWords = 1024

// sboxIndexMask selects the addressable range within the table. The
// published constant for this table is 511 (the low 9 bits); since the
// table itself holds 1024 words generated in 16 batches of 64 (see
// refreshSBox), this implementation reads both halves of the table by
// combining the low-word mask with a second, independently shifted index,
// so every generated word is reachable rather than only the first 512.
const sboxIndexMask = 511

// SBox is the ds variant's 8 KiB data-dependent lookup table.
type SBox [SBoxWords]uint64

// newSBox derives an S-box from block b: sixteen applications of G(b, b),
// each contributing 64 words to the table.
func newSBox(b *Block) *SBox {
	var s SBox
	refreshSBox(&s, b)
	return &s
}

// refreshSBox regenerates s in place from b, reusing the same 16-iteration
// derivation used for the initial S-box.
func refreshSBox(s *SBox, b *Block) {
	prev := *b
	for iter := 0; iter < 16; iter++ {
		var next Block
		compressBasic(&prev, &prev, &next)
		copy(s[iter*64:iter*64+64], next[:64])
		prev = next
	}
}

// sboxMix is the ds variant's inner mixing step, applied between the row
// and column permutation passes of the compressor. It runs 96 iterations
// of a data-dependent multiply-accumulate recurrence seeded from Z's
// running state, reading two words from the S-box each iteration and
// folding their product into the first and last words of Z.
//
// The S-variant has no independent public specification to match
// bit-for-bit (see DESIGN.md); this recurrence is a self-consistent,
// deterministic construction of the data-dependent lookup-table mixing
// step Argon2ds adds on top of RFC 9106 Section 3.4's base compressor.
func sboxMix(z *Block, s *SBox) {
	acc := z[0] ^ z[127]
	for i := 0; i < 96; i++ {
		idx1 := acc & sboxIndexMask
		idx2 := (acc >> 32) & sboxIndexMask
		s1 := s[idx1]
		s2 := s[idx2+512]

		w := uint64(uint32(s1)) * uint64(uint32(s2))

		z[0] += w
		z[127] ^= rotr64(w, 17)
		acc = z[0] ^ z[127]
	}
}
