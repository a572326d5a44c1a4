package repr

// spaceForCapacity is how many bytes of the cell's last machine word are
// available to store a heap capacity once the discriminant byte is
// subtracted: PtrSize - 1 (7 on 64-bit, 3 on 32-bit).
const spaceForCapacity = PtrSize - 1

// spillSentinel is the all-ones bit pattern (ignoring the discriminant
// byte) that marks "the real capacity didn't fit, go look at the heap
// header instead." It can never be produced by packCapacity for a
// capacity that fits, because MaxCapacityInline is one less than it.
var spillSentinel = func() [spaceForCapacity]byte {
	var b [spaceForCapacity]byte
	for i := range b {
		b[i] = 0xFF
	}
	return b
}()

// MaxCapacityInline is the threshold at which a capacity spills to the
// heap header instead of living in the cell's own capacity word: any c
// >= MaxCapacityInline spills. The largest capacity actually stored
// inline is therefore MaxCapacityInline - 1. 64-bit: 2^56 - 2 (~64
// petabytes). 32-bit: 2^24 - 2 (~16 MiB).
const MaxCapacityInline = (uint64(1) << (spaceForCapacity * 8)) - 2

// packCapacity encodes c into the capacity word's leading spaceForCapacity
// bytes, little-endian. If c is at or past MaxCapacityInline it instead
// writes the spill sentinel and reports spilled=true: the caller must
// store c in the heap allocation's header word (see heap.go) and consult
// that header on every subsequent read.
func packCapacity(c uint64) (bytes [spaceForCapacity]byte, spilled bool) {
	if c >= MaxCapacityInline {
		return spillSentinel, true
	}
	for i := 0; i < spaceForCapacity; i++ {
		bytes[i] = byte(c >> (8 * i))
	}
	return bytes, false
}

// unpackCapacity is packCapacity's inverse. spilled reports whether the
// caller must instead read the true value from the heap header.
func unpackCapacity(bytes [spaceForCapacity]byte) (c uint64, spilled bool) {
	if bytes == spillSentinel {
		return 0, true
	}
	for i := 0; i < spaceForCapacity; i++ {
		c |= uint64(bytes[i]) << (8 * i)
	}
	return c, false
}
