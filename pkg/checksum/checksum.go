// Package checksum provides the crc32 self-check used on stored manifest
// and archive bytes. It guards the store files themselves; content digests
// go through the hasher adapters instead.
package checksum

import "hash/crc32"

var table = crc32.MakeTable(crc32.IEEE)

func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, table)
}

func VerifyChecksum(data []byte, checksum uint32) bool {
	return crc32.Checksum(data, table) == checksum
}
