package libargon2

// permute applies the Argon2 permutation P to the full 1024-byte block Z:
// first to each of the 8 rows (contiguous 16-word groups), then to each of
// the 8 columns (16-word groups gathered with stride 16, two words at a
// time), per RFC 9106 Section 3.4: P is applied to all eight rows, then to
// all eight columns of the resulting matrix.
func permute(z *Block) {
	permuteRows(z)
	permuteColumns(z)
}

// permuteRows applies gRound to each contiguous 16-word group.
func permuteRows(z *Block) {
	for i := 0; i < 8; i++ {
		gRound(z[16*i : 16*i+16])
	}
}

// permuteColumns applies gRound to each of the 8 column groups. Column i
// gathers words at offsets {2i, 2i+1} from each of the 8 row-blocks of 16
// words (i.e. indices 2i+16k and 2i+16k+1 for k in 0..8), mixes them, and
// scatters the result back to the same positions.
func permuteColumns(z *Block) {
	var v [16]uint64
	for i := 0; i < 8; i++ {
		for k := 0; k < 8; k++ {
			v[2*k] = z[16*k+2*i]
			v[2*k+1] = z[16*k+2*i+1]
		}
		gRound(v[:])
		for k := 0; k < 8; k++ {
			z[16*k+2*i] = v[2*k]
			z[16*k+2*i+1] = v[2*k+1]
		}
	}
}
