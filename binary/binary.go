// Package binary implements the compact little-endian encoding used by every record stored in the
// token database.
package binary

import (
	"encoding/binary"
)

var (
	LittleEndian  = binary.LittleEndian
	BigEndian     = binary.BigEndian
	DefaultEndian = LittleEndian
)

var AppendUvarint = binary.AppendUvarint
