package lzw

// CompressOptions configures the output bit buffer of Compress.
type CompressOptions struct {
	// InitialBits is the bit buffer's starting capacity in bits.
	// 0 means DefaultWriterBits (8192 bits).
	InitialBits int
	// GrowthFactor multiplies the buffer's byte capacity on overflow.
	// Values below 2 mean 2 (doubling).
	GrowthFactor int
}

// DefaultCompressOptions returns options for default compression:
// 8192-bit initial buffer, growth by doubling.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{
		InitialBits:  DefaultWriterBits,
		GrowthFactor: 2,
	}
}
