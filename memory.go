package libargon2

// MemoryProvider abstracts allocation of the working matrix. The reference
// C implementation takes allocate/free callback pointers so a caller can
// plug in e.g. mlock'd or huge-page-backed memory; this is the same
// capability expressed as a Go interface instead of function pointers.
type MemoryProvider interface {
	Allocate(blocks int) ([]Block, error)
	Release([]Block)
}

// defaultProvider is a plain-heap MemoryProvider. The algorithm never
// needs the matrix pre-zeroed: every block is written before it is ever
// read.
type defaultProvider struct{}

func (defaultProvider) Allocate(blocks int) ([]Block, error) {
	return make([]Block, blocks), nil
}

func (defaultProvider) Release([]Block) {}

// Matrix is the lanes x lane_length rectangular array of blocks, stored
// flat. It holds the working memory of one Hash call.
type Matrix struct {
	blocks        []Block
	lanes         uint32
	laneLength    uint32
	memoryBlocks  uint32
	segmentLength uint32
	provider      MemoryProvider
}

// newMatrix derives memoryBlocks/laneLength/segmentLength from mCost and
// lanes (RFC 9106 Section 3.1) and allocates the backing storage through
// provider.
func newMatrix(mCost, lanes uint32, provider MemoryProvider) (*Matrix, error) {
	if provider == nil {
		provider = defaultProvider{}
	}

	unit := SyncPoints * lanes
	memoryBlocks := mCost
	if memoryBlocks < 2*unit {
		memoryBlocks = 2 * unit
	}
	memoryBlocks -= memoryBlocks % unit

	blocks, err := provider.Allocate(int(memoryBlocks))
	if err != nil {
		return nil, newError(ErrMemoryAllocation)
	}

	laneLength := memoryBlocks / lanes
	return &Matrix{
		blocks:        blocks,
		lanes:         lanes,
		laneLength:    laneLength,
		memoryBlocks:  memoryBlocks,
		segmentLength: laneLength / SyncPoints,
		provider:      provider,
	}, nil
}

// At returns a pointer to the block at (lane, index-within-lane).
func (m *Matrix) At(lane, index uint32) *Block {
	return &m.blocks[lane*m.laneLength+index]
}

// Zero overwrites every block with zeros (clear_memory).
func (m *Matrix) Zero() {
	for i := range m.blocks {
		m.blocks[i].Zero()
	}
}

// Release returns the backing storage to its provider.
func (m *Matrix) Release() {
	m.provider.Release(m.blocks)
	m.blocks = nil
}
