package libargon2

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// fillMemory runs the full passes x SyncPoints x lanes schedule over m,
// per RFC 9106 Section 3.4 (memory filling). Within one slice, all lanes
// are filled concurrently (one goroutine per lane via errgroup, mirroring
// the "N independent workers, join before continuing" shape moby/moby uses
// for its own fan-out/fan-in steps); the errgroup.Wait() at the end of
// each slice is the cross-lane synchronization point RFC 9106 requires
// before any lane may begin the next slice.
func fillMemory(ctx context.Context, m *Matrix, passes uint32, variant Variant) error {
	var sbox *SBox

	for pass := uint32(0); pass < passes; pass++ {
		for slice := uint32(0); slice < SyncPoints; slice++ {
			g, gctx := errgroup.WithContext(ctx)
			for lane := uint32(0); lane < m.lanes; lane++ {
				lane := lane
				g.Go(func() error {
					select {
					case <-gctx.Done():
						return gctx.Err()
					default:
					}
					fillSegment(m, pass, lane, slice, passes, variant, sbox)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
		}

		if variant.usesSBox() {
			if sbox == nil {
				sbox = newSBox(m.At(0, 0))
			} else {
				refreshSBox(sbox, m.At(0, 0))
			}
		}
	}
	return nil
}

// fillSegment fills one lane's slice of segmentLength blocks, choosing the
// reference block for each via the indexing function and mixing it in via
// the compression function G (RFC 9106 Sections 3.3 and 3.4).
func fillSegment(m *Matrix, pass, lane, slice, passes uint32, variant Variant, sbox *SBox) {
	start := uint32(0)
	if pass == 0 && slice == 0 {
		start = 2
	}

	independent := variant.dataIndependent(pass, slice)
	var stream *addressStream
	if independent {
		stream = newAddressStream(Position{Pass: pass, Lane: lane, Slice: slice}, m.memoryBlocks, passes, variant)
		// Address words are indexed by slot, so the two seeded slots of the
		// first segment still consume theirs.
		for k := uint32(0); k < start; k++ {
			stream.next()
		}
	}

	var sb *SBox
	if variant.usesSBox() {
		sb = sbox
	}

	for i := start; i < m.segmentLength; i++ {
		currentIndex := slice*m.segmentLength + i

		prevIndex := currentIndex - 1
		if currentIndex == 0 {
			prevIndex = m.laneLength - 1
		}
		prev := m.At(lane, prevIndex)

		var j uint64
		if independent {
			j = stream.next()
		} else {
			j = prev[0]
		}
		j1 := uint32(j)
		j2 := uint32(j >> 32)

		pos := Position{Pass: pass, Lane: lane, Slice: slice, Index: i}
		same := sameLane(pos, j2, m.lanes)
		rl := refLane(pos, same, j2, m.lanes)
		ri := refIndex(pos, same, j1, m.segmentLength, m.laneLength)

		ref := m.At(rl, ri)
		next := m.At(lane, currentIndex)

		compress(prev, ref, next, pass != 0, sb)
	}
}
