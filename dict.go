package lzw

// dictEntry is one dictionary sequence: the code of its predecessor sequence
// (nilCode for the reserved single-byte entries) plus one trailing byte.
type dictEntry struct {
	prev  int
	value byte
}

// dictionary maps (predecessor code, next byte) pairs to codes. Entries
// 0..255 are fixed single-byte sequences; entries from FirstCode up are
// appended in the order pairs are first seen, and that order assigns their
// numeric codes, which is part of the wire protocol.
//
// The encoder and decoder each rebuild their own instance from the same code
// sequence; identical add/flush rules keep the two structurally identical.
type dictionary struct {
	size    int
	entries [MaxDictEntries]dictEntry

	// Lookup index for findIndex. The original scheme does a linear scan of
	// all entries; a hash keyed on (prev, value) finds the same entry because
	// appended pairs are unique. Codes are still assigned by insertion order.
	index map[uint32]int
}

// newDictionary returns a dictionary holding only the 256 single-byte entries.
func newDictionary() *dictionary {
	d := &dictionary{
		size:  FirstCode,
		index: make(map[uint32]int, MaxDictEntries-FirstCode),
	}
	for i := 0; i < FirstCode; i++ {
		d.entries[i] = dictEntry{prev: nilCode, value: byte(i)}
	}

	return d
}

func pairKey(prev int, value byte) uint32 {
	return uint32(prev)<<8 | uint32(value)
}

// findIndex returns the code for the (prev, value) pair, or nilCode if the
// pair is not in the dictionary. With no predecessor the byte value is its
// own code.
func (d *dictionary) findIndex(prev int, value byte) int {
	if prev == nilCode {
		return int(value)
	}

	if code, ok := d.index[pairKey(prev, value)]; ok {
		return code
	}

	return nilCode
}

// add appends a new entry for the (prev, value) pair. Returns false when the
// dictionary is at capacity; flush resets it before that point in normal
// operation, so an overflow means the code stream and the dictionary have
// lost sync.
func (d *dictionary) add(prev int, value byte) bool {
	if d.size == MaxDictEntries {
		return false
	}

	d.entries[d.size] = dictEntry{prev: prev, value: value}
	d.index[pairKey(prev, value)] = d.size
	d.size++

	return true
}

// flush advances the code width schedule after an insertion point. When size
// reaches 2^width the width grows by one; when that would pass MaxCodeBits
// the dictionary instead resets to its initial 256 entries at StartBits
// width. Returns the width to use from here on and whether a reset happened,
// since the decoder must also drop its previous-code context on reset.
func (d *dictionary) flush(width int) (int, bool) {
	if d.size == 1<<width {
		width++
		if width > MaxCodeBits {
			d.size = FirstCode
			clear(d.index)
			return StartBits, true
		}
	}

	return width, false
}
