package domain

// CompressionOptions configures the compression behavior for packed archives.
// Compression settings affect both storage efficiency and system performance.
type CompressionOptions struct {
	// Enable toggles compression for packed archive files.
	// When false the archive service stores bytes verbatim and only
	// computes tokens.
	Enable bool

	// Level defines the compression level for zstd when compression is enabled.
	// Supported levels:
	//   - FastestLevel: Fastest compression, equivalent to zstd's fastest mode
	//   - DefaultLevel: Default balanced compression (≈ zstd level 3)
	//   - BestLevel: Maximum compression regardless of CPU cost
	// If not specified, DefaultLevel will be used.
	Level uint8

	// EncoderConcurrency specifies the number of concurrent compression operations.
	// Higher values may improve compression speed but increase memory usage.
	// Default is number of CPU cores if set to 0.
	EncoderConcurrency uint8

	// DecoderConcurrency specifies the number of concurrent decompression operations.
	// Higher values may improve read performance but increase memory usage.
	// Default is number of CPU cores if set to 0.
	DecoderConcurrency uint8
}
