package libargon2

// SyncPoints is the number of segments a lane is divided into per pass,
// the granularity of the inter-lane synchronization point (RFC 9106
// Section 3.1).
const SyncPoints = 4

// Position identifies the slot currently being filled: which pass, which
// lane, which quarter-lane slice, and which index within that slice.
type Position struct {
	Pass  uint32
	Lane  uint32
	Slice uint32
	Index uint32
}

// sameLane decides whether the reference block for this slot must come
// from the filling lane itself, per RFC 9106 Section 3.3 (Indexing):
// always true for the very first segment of the very first pass (nothing
// else has been written yet to reference), otherwise true iff the high 32
// bits of J, taken modulo the lane count, select the current lane.
func sameLane(pos Position, j2 uint32, lanes uint32) bool {
	if pos.Pass == 0 && pos.Slice == 0 {
		return true
	}
	return j2%lanes == pos.Lane
}

// refLane returns the lane the reference block is drawn from.
func refLane(pos Position, same bool, j2 uint32, lanes uint32) uint32 {
	if same {
		return pos.Lane
	}
	return j2 % lanes
}

// refIndex computes the reference block's position within its lane,
// following the reference Argon2 index_alpha algorithm (RFC 9106 Section
// 3.3). The 32-bit arithmetic order is preserved exactly since the final
// skew distribution (z = W - 1 - y) is sensitive to truncation order.
func refIndex(pos Position, same bool, j1 uint32, segmentLength, laneLength uint32) uint32 {
	var areaSize uint32

	if pos.Pass == 0 {
		if pos.Slice == 0 {
			areaSize = pos.Index - 1
		} else if same {
			areaSize = pos.Slice*segmentLength + pos.Index - 1
		} else {
			areaSize = pos.Slice * segmentLength
			if pos.Index == 0 {
				areaSize--
			}
		}
	} else {
		if same {
			areaSize = laneLength - segmentLength + pos.Index - 1
		} else {
			areaSize = laneLength - segmentLength
			if pos.Index == 0 {
				areaSize--
			}
		}
	}
	if areaSize == 0 {
		areaSize = 1
	}

	x := uint64(j1) * uint64(j1)
	x >>= 32
	relative := uint64(areaSize-1) - (uint64(areaSize)*x)>>32

	var start uint32
	if pos.Pass != 0 {
		if pos.Slice == SyncPoints-1 {
			start = 0
		} else {
			start = (pos.Slice + 1) * segmentLength
		}
	}

	return (start + uint32(relative)) % laneLength
}
