package libargon2

// Variant selects one of the five Argon2-family addressing/mixing schemes.
// The numeric values double as the variant_tag encoded into the pre-hash
// (RFC 9106 Section 3.1); VariantD, VariantI, and VariantID keep the exact
// values (0, 1, 2) the standard assigns them so pre-hash digests for those
// three variants match published Argon2 implementations byte for byte.
// VariantDI and VariantDS have no RFC-assigned type code — they are this
// package's own extensions — so they take the next two values.
type Variant uint32

const (
	// VariantD is data-dependent addressing throughout (fastest, not
	// side-channel resistant).
	VariantD Variant = 0
	// VariantI is data-independent addressing throughout (side-channel
	// resistant, slower to reach the same memory-hardness).
	VariantI Variant = 1
	// VariantID starts data-independent and switches to data-dependent
	// partway through pass 0 — the real-world Argon2id schedule.
	VariantID Variant = 2
	// VariantDI starts data-dependent and switches to data-independent
	// partway through pass 0 (see dataIndependent below). Not an RFC 9106
	// type; this package's own addition.
	VariantDI Variant = 3
	// VariantDS is data-dependent addressing with S-box mixing in the
	// compressor. Not an RFC 9106 type; this package's own addition.
	VariantDS Variant = 4
)

// Valid reports whether v is one of the five defined variants.
func (v Variant) Valid() bool {
	return v <= VariantDS
}

func (v Variant) String() string {
	switch v {
	case VariantD:
		return "d"
	case VariantI:
		return "i"
	case VariantDI:
		return "di"
	case VariantID:
		return "id"
	case VariantDS:
		return "ds"
	default:
		return "unknown"
	}
}

// usesSBox reports whether the compressor must mix in the S-box for this
// variant.
func (v Variant) usesSBox() bool {
	return v == VariantDS
}

// dataIndependent reports whether slot (pass, slice) uses data-independent
// addressing for this variant.
//
// VariantID follows the published Argon2id schedule (RFC 9106 Section 3.5):
// independent for the first half of pass 0 (slices 0 and 1), dependent
// everywhere else. VariantDI is its mirror — dependent for the first half
// of pass 0, independent everywhere else — giving the "di" tag its own
// real dispatch rather than aliasing "i", which some reference ports get
// wrong by conflating the two.
func (v Variant) dataIndependent(pass, slice uint32) bool {
	switch v {
	case VariantI:
		return true
	case VariantD, VariantDS:
		return false
	case VariantID:
		return pass == 0 && slice < SyncPoints/2
	case VariantDI:
		return !(pass == 0 && slice < SyncPoints/2)
	default:
		return false
	}
}
