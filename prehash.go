package libargon2

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// version is the algorithm version byte encoded into the pre-hash
// (RFC 9106 Section 3.1). 0x13 (19) is the current Argon2 version; the
// RFC 9106 test vectors and every modern Argon2 deployment use it.
const version = 0x13

// oracleH is the fixed-output hash of RFC 9106 Section 2.4: Blake2b-512
// over arbitrary-length input. golang.org/x/crypto/blake2b is the
// external collaborator this package relies on; it never reimplements
// Blake2b itself.
func oracleH(data []byte) [64]byte {
	return blake2b.Sum512(data)
}

// oracleHPrime is the variable-length hash function H'(X, tau) of RFC
// 9106 Section 3.2:
//
//   - tau <= 64:  Blake2b(le32(tau) || X, tau), a single call parameterized
//     with the requested digest length.
//   - tau  > 64:  chain 64-byte Blake2b digests, emitting the first 32
//     bytes of each; the final chunk is produced by a Blake2b call
//     parameterized with the exact number of bytes remaining, not by
//     truncating a 64-byte digest (Blake2b's output-length parameter feeds
//     its IV, so Blake2b(n) and Blake2b(64)[:n] differ for n != 64).
func oracleHPrime(x []byte, tau uint32) []byte {
	prefixed := make([]byte, 4+len(x))
	binary.LittleEndian.PutUint32(prefixed[:4], tau)
	copy(prefixed[4:], x)

	if tau <= 64 {
		h, err := blake2b.New(int(tau), nil)
		if err != nil {
			panic("libargon2: blake2b.New failed for valid output length: " + err.Error())
		}
		h.Write(prefixed)
		return h.Sum(nil)
	}

	out := make([]byte, tau)
	v := blake2b.Sum512(prefixed)
	copied := copy(out, v[:32])

	for int(tau)-copied > 64 {
		v = blake2b.Sum512(v[:])
		copied += copy(out[copied:], v[:32])
	}

	remaining := int(tau) - copied
	h, err := blake2b.New(remaining, nil)
	if err != nil {
		panic("libargon2: blake2b.New failed for valid output length: " + err.Error())
	}
	h.Write(v[:])
	copy(out[copied:], h.Sum(nil))

	return out
}

// preHash computes H0, the 64-byte seed binding every parameter and input
// (RFC 9106 Section 3.1's exact pre-hash byte layout).
func preHash(cfg Config, variant Variant, password, salt, secret, ad []byte) [64]byte {
	size := 6*4 + 4 + len(password) + 4 + len(salt) + 4 + len(secret) + 4 + len(ad)
	buf := make([]byte, 0, size)

	var le [4]byte
	put := func(v uint32) {
		binary.LittleEndian.PutUint32(le[:], v)
		buf = append(buf, le[:]...)
	}
	putField := func(data []byte) {
		put(uint32(len(data)))
		buf = append(buf, data...)
	}

	put(cfg.Lanes)
	put(cfg.OutputLen)
	put(cfg.MemoryCost)
	put(cfg.TimeCost)
	put(version)
	put(uint32(variant))

	putField(password)
	putField(salt)
	putField(secret)
	putField(ad)

	return oracleH(buf)
}

// seedLane fills the first two blocks of lane l from H0, per RFC 9106
// Section 3.1: B[l][i] = H'(H0 || le32(i) || le32(l), 1024).
func seedLane(m *Matrix, l uint32, h0 [64]byte) error {
	var input [72]byte
	copy(input[:64], h0[:])

	for i := uint32(0); i < 2; i++ {
		binary.LittleEndian.PutUint32(input[64:68], i)
		binary.LittleEndian.PutUint32(input[68:72], l)
		bytes := oracleHPrime(input[:], BlockSize)
		if err := m.At(l, i).FromBytes(bytes); err != nil {
			return err
		}
	}
	return nil
}

// finalize XORs the last block of every lane together and extends the
// result to outlen bytes through H' (RFC 9106 Section 3.1, finalization).
func finalize(m *Matrix, outlen uint32) []byte {
	var c Block
	c = *m.At(0, m.laneLength-1)
	for l := uint32(1); l < m.lanes; l++ {
		c.XOR(m.At(l, m.laneLength-1))
	}
	return oracleHPrime(c.ToBytes(), outlen)
}
