package manifest

import "errors"

var (
	// ErrEntryExists indicates a token is already recorded for the path and force was not set.
	ErrEntryExists = errors.New("manifest entry already exists for path")

	// ErrEntryNotFound indicates no token has been recorded for the path.
	ErrEntryNotFound = errors.New("no manifest entry for path")

	// ErrManifestCorrupted indicates the manifest file failed its crc32 self-check.
	ErrManifestCorrupted = errors.New("manifest file failed integrity check")

	// ErrUnsupportedVersion indicates the manifest file was written by an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported manifest version")
)
