package lzw

// LZW code stream constants (GIF/compress scheme, 12-bit dictionary cap).
const (
	StartBits      = 9    // Initial code width in bits.
	MaxCodeBits    = 12   // Maximum code width; the dictionary resets past this.
	FirstCode      = 256  // First dictionary code after the reserved byte range.
	MaxDictEntries = 4096 // Dictionary capacity (1 << MaxCodeBits).
)

// nilCode marks "no code": an entry with no predecessor, or encoder/decoder
// state before any code has been matched.
const nilCode = -1
