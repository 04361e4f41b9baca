package archive

import "errors"

var (
	// ErrBadMagic indicates the file is not a sumstream archive.
	ErrBadMagic = errors.New("not a sumstream archive")

	// ErrArchiveCorrupted indicates the archive header failed its crc32 self-check.
	ErrArchiveCorrupted = errors.New("archive header failed integrity check")

	// ErrUnsupportedVersion indicates the archive was written by an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported archive version")
)
