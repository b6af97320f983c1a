/*
Package lzw implements LZW (Lempel-Ziv-Welch) compression and decompression
of whole in-memory buffers.

Format: the raw variable-width code stream of the GIF image format and the
classic compress tool, with two simplifications: no End-Of-Input or Clear
codes are stored, and codes are capped at 12 bits (4096 dictionary entries).
Codes are packed least-significant-bit first and start at 9 bits; the width
grows by one bit each time the dictionary size crosses a power of two, and
the dictionary resets to its 256 single-byte entries when it fills. End of
input is simply the end of the bit stream, which is why the exact bit count
travels with the compressed bytes: the last byte may be only partially used.

There are no headers, lengths or checksums; the stream is only decodable by
a decoder applying exactly the same dictionary growth and reset schedule.
Both sides rebuild the dictionary from the code sequence alone.

Use Compress(src, opts) with nil for the default output buffer sizing.
Use Decompress(src, bits, outLen) to decode into a new buffer.
Use DecompressInto(dst, src, bits) to decode into a caller-owned buffer;
an undersized dst yields a prefix of the data together with ErrDstFull.
Use BitWriter and BitReader directly for other variable-width bit formats.

# Examples

Round-trip compress and decompress:

	enc, bits, err := lzw.Compress(data, nil)
	if err != nil {
		return err
	}
	dec, err := lzw.Decompress(enc, bits, len(data))
	if err != nil {
		return err
	}
	// dec equals data

Decode into a fixed buffer, accepting a partial result:

	buf := make([]byte, 1024)
	n, err := lzw.DecompressInto(buf, enc, bits)
	if err != nil && !errors.Is(err, lzw.ErrDstFull) {
		return err
	}
	// buf[:n] holds the first n decoded bytes

Pack and inspect bits directly:

	w := lzw.NewBitWriter()
	w.AppendBits(0b101, 3)
	_ = w.BitString() // "101"
*/
package lzw
