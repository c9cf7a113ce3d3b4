package libargon2

// AddressesPerBlock is the number of pseudo-random address words produced
// by one compression of the input block, per RFC 9106 Section 3.3
// (Indexing, data-independent addressing).
const AddressesPerBlock = 128

// addressStream produces the pseudo-random J values for data-independent
// addressing. It encodes (pass, lane, slice, memory_blocks, passes,
// variant) into an input block and, every AddressesPerBlock words
// consumed, compresses a zero block against it twice (the second pass
// re-compressing the first result) to refresh the address block, exactly
// as the segment loop's data-dependent branch would compress prev/ref —
// except both operands here are synthetic, never S-box-mixed, and never
// XORed into an existing value.
type addressStream struct {
	zero    Block
	input   Block
	address Block
	used    int
}

func newAddressStream(pos Position, memoryBlocks, passes uint32, variant Variant) *addressStream {
	s := &addressStream{used: AddressesPerBlock}
	s.input[0] = uint64(pos.Pass)
	s.input[1] = uint64(pos.Lane)
	s.input[2] = uint64(pos.Slice)
	s.input[3] = uint64(memoryBlocks)
	s.input[4] = uint64(passes)
	s.input[5] = uint64(variant)
	s.input[6] = 0
	return s
}

// next returns the next pseudo-random 64-bit word from the stream.
func (s *addressStream) next() uint64 {
	if s.used == AddressesPerBlock {
		s.input[6]++
		compressBasic(&s.zero, &s.input, &s.address)
		compressBasic(&s.zero, &s.address, &s.address)
		s.used = 0
	}
	v := s.address[s.used]
	s.used++
	return v
}
