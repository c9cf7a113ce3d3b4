package libargon2

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestBlockConstants(t *testing.T) {
	if BlockSize != 1024 {
		t.Errorf("BlockSize = %d, want 1024", BlockSize)
	}
	if QWordsInBlock != 128 {
		t.Errorf("QWordsInBlock = %d, want 128", QWordsInBlock)
	}
	if BlockSize != QWordsInBlock*8 {
		t.Errorf("BlockSize (%d) != QWordsInBlock*8 (%d)", BlockSize, QWordsInBlock*8)
	}
}

func TestBlockZero(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = uint64(i + 1)
	}
	b.Zero()
	for i, v := range b {
		if v != 0 {
			t.Errorf("b[%d] = %d after Zero(), want 0", i, v)
		}
	}
}

func TestBlockCopy(t *testing.T) {
	var src, dst Block
	for i := range src {
		src[i] = uint64(i*2 + 1)
	}
	dst.Copy(&src)
	if dst != src {
		t.Fatal("Copy() did not duplicate all words")
	}
	dst[0] = 9999
	if src[0] == 9999 {
		t.Error("modifying dst affected src")
	}
}

func TestBlockXOR(t *testing.T) {
	var a, b Block
	for i := range a {
		a[i] = 0xAAAAAAAAAAAAAAAA
		b[i] = 0x5555555555555555
	}
	a.XOR(&b)
	for i := range a {
		if a[i] != 0xFFFFFFFFFFFFFFFF {
			t.Errorf("a[%d] = 0x%x, want 0xFFFFFFFFFFFFFFFF", i, a[i])
		}
	}
}

func TestBlockXORIdentity(t *testing.T) {
	var a, b Block
	for i := range a {
		a[i] = uint64(i*7 + 13)
		b[i] = a[i]
	}
	a.XOR(&b)
	for i := range a {
		if a[i] != 0 {
			t.Errorf("a[%d] = %d after XOR with self, want 0", i, a[i])
		}
	}
}

func TestXORInto(t *testing.T) {
	var a, b, dst Block
	for i := range a {
		a[i] = uint64(i)
		b[i] = uint64(i * 3)
	}
	XORInto(&dst, &a, &b)
	for i := range dst {
		if dst[i] != a[i]^b[i] {
			t.Errorf("dst[%d] = %d, want %d", i, dst[i], a[i]^b[i])
		}
	}
}

func TestBlockToBytesFromBytesRoundTrip(t *testing.T) {
	var b Block
	for i := range b {
		b[i] = uint64(i*11 + 7)
	}
	data := b.ToBytes()
	if len(data) != BlockSize {
		t.Fatalf("ToBytes() len = %d, want %d", len(data), BlockSize)
	}
	var restored Block
	if err := restored.FromBytes(data); err != nil {
		t.Fatalf("FromBytes() error: %v", err)
	}
	if restored != b {
		t.Error("round trip did not preserve block contents")
	}
}

func TestBlockFromBytesInvalidSize(t *testing.T) {
	sizes := []int{0, 512, 2048, BlockSize - 1, BlockSize + 1}
	for _, size := range sizes {
		var b Block
		err := b.FromBytes(make([]byte, size))
		if err == nil {
			t.Errorf("FromBytes(%d bytes) succeeded, want error", size)
		}
	}
}

func TestBlockToBytesEndianness(t *testing.T) {
	var b Block
	b[0] = 0x0123456789ABCDEF
	data := b.ToBytes()
	want := []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01}
	if !bytes.Equal(data[:8], want) {
		t.Errorf("ToBytes() endianness = %x, want %x", data[:8], want)
	}
	if got := binary.LittleEndian.Uint64(data[:8]); got != b[0] {
		t.Errorf("decode = 0x%x, want 0x%x", got, b[0])
	}
}
