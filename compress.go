package lzw

// Compress compresses src into an LZW code stream. Options nil means
// DefaultCompressOptions(). It returns the packed code bytes and the exact
// bit length of the stream; the last byte may be only partially used, so
// both values must be handed to Decompress together with the data.
// Ownership of the returned buffer passes to the caller.
func Compress(src []byte, opts *CompressOptions) ([]byte, int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	initial := opts.InitialBits
	if initial <= 0 {
		initial = DefaultWriterBits
	}
	w := NewBitWriterSize(initial, opts.GrowthFactor)
	encode(w, newDictionary(), src)

	n, bits := w.ByteCount(), w.BitCount()
	return w.Release()[:n], bits, nil
}

// encode runs the encoder state machine: extend the current match while the
// dictionary knows the sequence, and on the first unknown pair emit the
// matched code, record the new pair and restart the match from the current
// byte. The residual match is flushed as one final code.
func encode(w *BitWriter, d *dictionary, src []byte) {
	code := nilCode
	width := StartBits

	for _, value := range src {
		index := d.findIndex(code, value)
		if index != nilCode {
			code = index
			continue
		}

		w.AppendBits(uint64(code), width)

		// Width bookkeeping comes before the insert: on a reset the pair is
		// dropped, which keeps the decoder side (which inserts first, then
		// flushes one code later) building the identical table.
		var reset bool
		if width, reset = d.flush(width); !reset {
			d.add(code, value)
		}
		code = int(value)
	}

	if code != nilCode {
		w.AppendBits(uint64(code), width)
	}
}
