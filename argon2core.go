package libargon2

import "context"

// Hash runs the full Argon2 core against in, writing the resulting tag
// into in.Out (which must already be in.OutLen bytes long): validate,
// pre-hash, seed, schedule, finalize, per RFC 9106 Section 3.1 (Argon2
// Operation).
//
// All validation happens before any memory is allocated; the only error
// that can occur mid-run is a matrix allocation failure, surfaced
// unchanged.
func Hash(in *Input) error {
	if err := in.validate(); err != nil {
		return err
	}

	h0 := preHash(Config{
		TimeCost:   in.TimeCost,
		MemoryCost: in.MemoryCost,
		Lanes:      in.Lanes,
		OutputLen:  in.OutLen,
	}, in.Variant, in.Pwd, in.Salt, in.Secret, in.AD)

	if in.ClearPassword {
		zeroSlice(in.Pwd)
	}
	if in.ClearSecret {
		zeroSlice(in.Secret)
	}

	m, err := newMatrix(in.MemoryCost, in.Lanes, in.Provider)
	if err != nil {
		return err
	}

	for l := uint32(0); l < in.Lanes; l++ {
		if err := seedLane(m, l, h0); err != nil {
			m.Release()
			return err
		}
	}

	if err := fillMemory(context.Background(), m, in.TimeCost, in.Variant); err != nil {
		if in.ClearMemory {
			m.Zero()
		}
		m.Release()
		return err
	}

	tag := finalize(m, in.OutLen)
	copy(in.Out, tag)

	if in.ClearMemory {
		m.Zero()
	}
	m.Release()

	return nil
}

// Config mirrors the subset of Input that the pre-hash layout binds; it
// exists so preHash has a value type to pass around instead of the full
// Input (which also carries allocator/clear flags that never feed the
// hash).
type Config struct {
	TimeCost   uint32
	MemoryCost uint32
	Lanes      uint32
	OutputLen  uint32
}

// Sum is a convenience wrapper for the common case: no secret, no
// associated data, default allocator, no in-place clearing.
func Sum(variant Variant, password, salt []byte, timeCost, memoryCost, lanes, outLen uint32) ([]byte, error) {
	out := make([]byte, outLen)
	in := &Input{
		Out:        out,
		OutLen:     outLen,
		Pwd:        password,
		PwdLen:     uint32(len(password)),
		Salt:       salt,
		SaltLen:    uint32(len(salt)),
		TimeCost:   timeCost,
		MemoryCost: memoryCost,
		Lanes:      lanes,
		Variant:    variant,
	}
	if err := Hash(in); err != nil {
		return nil, err
	}
	return out, nil
}

// zeroSlice overwrites every byte of b with zero. Used for clear_password
// and clear_secret, grounded on the overwrite-then-drop pattern in
// r2unit-openpasswd's securemem.go.
func zeroSlice(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
