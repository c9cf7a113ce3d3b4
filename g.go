package libargon2

// g is the Blake2b mixing function adapted for Argon2: the fBlaMka variant
// that folds in a 2*lo32(a)*lo32(b) multiplication term at each addition.
// All-zero inputs map to all-zero outputs.
//
// Reference: Blake2b spec section 3.2; Argon2 spec section 3.6 (fBlaMka).
func g(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = a + b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 32)
	c = c + d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 24)

	a = a + b + 2*uint64(uint32(a))*uint64(uint32(b))
	d = rotr64(d^a, 16)
	c = c + d + 2*uint64(uint32(c))*uint64(uint32(d))
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// rotr64 rotates x right by n bits.
func rotr64(x uint64, n uint) uint64 {
	return (x >> n) | (x << (64 - n))
}

// gRound applies one full Blake2b round (column mixing, then diagonal
// mixing) to a 16-word group, in place.
func gRound(v []uint64) {
	v[0], v[4], v[8], v[12] = g(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = g(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = g(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = g(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = g(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = g(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = g(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = g(v[3], v[4], v[9], v[14])
}
