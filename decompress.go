package lzw

import "fmt"

// Decompress decompresses an LZW code stream into a new buffer of length
// outLen. src and bits are the values produced by Compress. The result may
// be shorter than outLen if the stream ends early; a stream that does not
// fit in outLen bytes is an error (use DecompressInto for partial decodes).
func Decompress(src []byte, bits, outLen int) ([]byte, error) {
	if outLen < 0 {
		return nil, ErrNegativeOutLen
	}

	out := make([]byte, outLen)
	n, err := DecompressInto(out, src, bits)
	if err != nil {
		return nil, err
	}

	return out[:n], nil
}

// DecompressInto decompresses the first bits bits of src into dst and
// returns the number of bytes written. When dst fills up before the stream
// ends, the count of bytes decoded so far is returned together with
// ErrDstFull; everything written up to that point is valid, so an undersized
// dst yields exactly a prefix of the original data.
func DecompressInto(dst, src []byte, bits int) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	if bits <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBitCount, bits)
	}

	r, err := NewBitReader(src, bits)
	if err != nil {
		return 0, err
	}

	return decode(dst, r, newDictionary())
}

// decode runs the decoder state machine, rebuilding the encoder's dictionary
// from the code sequence alone. prev holds the previously read code; first
// holds the first byte of the most recently emitted sequence, which resolves
// the one code the encoder can emit before the decoder has built its entry.
func decode(dst []byte, r *BitReader, d *dictionary) (int, error) {
	prev := nilCode
	first := 0
	width := StartBits
	n := 0

	for !r.EndOfStream() {
		v, err := r.ReadBits(width)
		if err != nil {
			return n, err
		}
		code := int(v)

		// The first code of the stream, and the first after a dictionary
		// reset, is always a bare byte value.
		if prev == nilCode {
			if code >= FirstCode {
				return n, fmt.Errorf("%w: leading code %d outside byte range", ErrCorrupt, code)
			}
			if n == len(dst) {
				return n, ErrDstFull
			}
			dst[n] = byte(code)
			n++
			first, prev = code, code
			continue
		}

		switch {
		case code > d.size:
			return n, fmt.Errorf("%w: code %d beyond dictionary size %d", ErrCorrupt, code, d.size)
		case code == d.size:
			// The encoder emitted the entry it is adding right now: it must
			// be prev's sequence followed by that sequence's own first byte.
			if n, first, err = emitSequence(d, prev, dst, n); err != nil {
				return n, err
			}
			if n == len(dst) {
				return n, ErrDstFull
			}
			dst[n] = byte(first)
			n++
		default:
			if n, first, err = emitSequence(d, code, dst, n); err != nil {
				return n, err
			}
		}

		if !d.add(prev, byte(first)) {
			return n, fmt.Errorf("%w: at %d entries", ErrDictOverflow, d.size)
		}
		var reset bool
		if width, reset = d.flush(width); reset {
			prev = nilCode
		} else {
			prev = code
		}
	}

	return n, nil
}

// emitSequence writes the full byte sequence for code into dst starting at
// offset n. The predecessor chain stores the sequence youngest byte first,
// so it is collected into a scratch buffer and written out reversed. Returns
// the new offset and the sequence's first byte; stops with ErrDstFull when
// dst runs out.
func emitSequence(d *dictionary, code int, dst []byte, n int) (int, int, error) {
	// Chains shorten strictly toward the single-byte entries, so a sequence
	// can never exceed the dictionary's capacity.
	var seq [MaxDictEntries]byte
	i := 0
	for code != nilCode {
		seq[i] = d.entries[code].value
		code = d.entries[code].prev
		i++
	}

	first := int(seq[i-1])
	for i--; i >= 0; i-- {
		if n == len(dst) {
			return n, first, ErrDstFull
		}
		dst[n] = seq[i]
		n++
	}

	return n, first, nil
}
