package libargon2

// Limits from RFC 9106 Section 3.1 (Argon2 Operation, parameter ranges).
const (
	MinOutputLen = 4
	MaxOutputLen = 1<<32 - 1

	MaxPasswordLen = 1<<32 - 1

	MinSaltLen = 8
	MaxSaltLen = 1<<32 - 1

	MaxSecretLen = 1<<32 - 1
	MaxADLen     = 1<<32 - 1

	MinTimeCost = 1
	MaxTimeCost = 1<<32 - 1

	MaxMemoryCost = 1<<32 - 1

	MinLanes = 1
	MaxLanes = 1<<24 - 1
)

// Input collects every field the Argon2 core consumes, mirroring the C ABI
// struct the reference implementation uses: explicit pointer/length pairs
// rather than bare Go slices, so a caller (and this package's own tests)
// can construct the "length > 0 but pointer null" mismatch RFC 9106
// requires implementations to reject distinctly from a too-short/too-long
// length.
type Input struct {
	Out    []byte
	OutLen uint32

	Pwd    []byte
	PwdLen uint32

	Salt    []byte
	SaltLen uint32

	Secret    []byte
	SecretLen uint32

	AD    []byte
	ADLen uint32

	TimeCost   uint32
	MemoryCost uint32
	Lanes      uint32

	Variant Variant

	ClearPassword bool
	ClearSecret   bool
	ClearMemory   bool

	// Provider overrides the default heap allocator for the working
	// matrix. Nil uses defaultProvider.
	Provider MemoryProvider
}

// validate checks every range/nullity condition from RFC 9106 Section 3.1,
// in order, returning the first violation. No allocation happens before
// this returns OK.
func (in *Input) validate() error {
	if in.Out == nil {
		return newError(ErrOutputPtrNull)
	}
	if in.OutLen < MinOutputLen {
		return newError(ErrOutputTooShort)
	}
	if in.OutLen > MaxOutputLen {
		return newError(ErrOutputTooLong)
	}

	if in.Pwd == nil && in.PwdLen != 0 {
		return newError(ErrPasswordPtrMismatch)
	}
	if in.PwdLen > MaxPasswordLen {
		return newError(ErrPasswordTooLong)
	}

	if in.Salt == nil && in.SaltLen != 0 {
		return newError(ErrSaltPtrMismatch)
	}
	if in.SaltLen < MinSaltLen {
		return newError(ErrSaltTooShort)
	}
	if in.SaltLen > MaxSaltLen {
		return newError(ErrSaltTooLong)
	}

	if in.Secret == nil && in.SecretLen != 0 {
		return newError(ErrSecretPtrMismatch)
	}
	if in.SecretLen > MaxSecretLen {
		return newError(ErrSecretTooLong)
	}

	if in.AD == nil && in.ADLen != 0 {
		return newError(ErrADPtrMismatch)
	}
	if in.ADLen > MaxADLen {
		return newError(ErrADTooLong)
	}

	if in.TimeCost < MinTimeCost {
		return newError(ErrTimeTooSmall)
	}
	if in.TimeCost > MaxTimeCost {
		return newError(ErrTimeTooLarge)
	}

	if in.Lanes < MinLanes {
		return newError(ErrLanesTooFew)
	}
	if in.Lanes > MaxLanes {
		return newError(ErrLanesTooMany)
	}

	minMemory := 8 * in.Lanes
	if in.MemoryCost < minMemory {
		return newError(ErrMemoryTooLittle)
	}
	if in.MemoryCost > MaxMemoryCost {
		return newError(ErrMemoryTooLarge)
	}

	if !in.Variant.Valid() {
		return newError(ErrUnknownVariant)
	}

	if uint32(len(in.Out)) != in.OutLen {
		return newError(ErrOutputPtrMismatch)
	}

	return nil
}
