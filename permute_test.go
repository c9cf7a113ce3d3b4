package libargon2

import "testing"

func TestPermuteIsDeterministic(t *testing.T) {
	var a, b Block
	for i := range a {
		a[i] = uint64(i * 37)
		b[i] = a[i]
	}
	permute(&a)
	permute(&b)
	if a != b {
		t.Fatal("permute() is not deterministic for identical inputs")
	}
}

func TestPermuteChangesBlock(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = uint64(i + 1)
	}
	orig := b
	permute(&b)
	if b == orig {
		t.Fatal("permute() left the block unchanged")
	}
}

func TestPermuteRowsThenColumnsDifferFromRowsOnly(t *testing.T) {
	var rowsOnly, full Block
	for i := range rowsOnly {
		rowsOnly[i] = uint64(i + 1)
		full[i] = uint64(i + 1)
	}
	permuteRows(&rowsOnly)
	permute(&full)
	if rowsOnly == full {
		t.Fatal("column pass had no effect; permute() should differ from permuteRows() alone")
	}
}
