package domain

// ChecksumOptions defines configuration for checksum streams.
type ChecksumOptions struct {
	// Algorithm specifies which digest algorithm to use.
	// Defaults to MD5 if not specified, matching the historical
	// token format where "$1$$..." is the common case.
	Algorithm Algorithm

	// BufferSize controls the chunk size used when a service drives
	// the stream itself (manifest verification, archive packing).
	// Callers reading the stream directly choose their own chunk size.
	//
	// Default: 32KB
	BufferSize int
}
