package libargon2

// compressBasic computes next = G(prev, ref) with no S-box mixing and no
// feed-forward into an existing value, per RFC 9106 Section 3.4:
//
//  1. R = prev XOR ref
//  2. Z = R
//  3. permute rows of Z
//  4. permute columns of Z
//  5. next = Z XOR R
//
// It is used wherever something outside the main segment loop needs the
// plain compression primitive: S-box (re)generation and the
// data-independent address stream. The segment loop itself uses compress.
func compressBasic(prev, ref, next *Block) {
	var z, r Block
	XORInto(&r, prev, ref)
	z = r

	permute(&z)

	z.XOR(&r)
	*next = z
}

// compress computes next = G(prev, ref), optionally mixing in the ds
// variant's S-box step between the row and column permutation passes, and
// optionally XORing the result into the block already occupying next: RFC
// 9106 Section 3.4 requires the new block to be XORed into the existing
// block, rather than overwrite it, on every pass after the first.
func compress(prev, ref, next *Block, withXOR bool, sbox *SBox) {
	var z, r Block
	XORInto(&r, prev, ref)
	z = r

	permuteRows(&z)
	if sbox != nil {
		sboxMix(&z, sbox)
	}
	permuteColumns(&z)

	z.XOR(&r)

	if withXOR {
		next.XOR(&z)
	} else {
		*next = z
	}
}
