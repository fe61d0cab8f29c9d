package binary

import (
	"encoding/binary"
	"errors"
	"runtime"
	"strconv"
	"strings"
)

func NewDes(data []byte) Des {
	return Des{
		data: data,
	}
}

type Des struct {
	data []byte
	err  error
}

func (d Des) RemainingData() []byte {
	return d.data
}

func (s *Des) fail(msg string) {
	s.err = errors.New(getCaller() + " " + msg)
}

// take returns the next n bytes, or nil if the data is too short
func (s *Des) take(n int) []byte {
	if s.err != nil {
		return nil
	}
	if len(s.data) < n {
		s.fail("invalid length")
		return nil
	}
	b := s.data[:n]
	s.data = s.data[n:]
	return b
}

func (s *Des) ReadUint8() uint8 {
	b := s.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}
func (s *Des) ReadUint16() uint16 {
	b := s.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}
func (s *Des) ReadUint64() uint64 {
	b := s.take(8)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}
func (s *Des) ReadUvarint() uint64 {
	if s.err != nil {
		return 0
	}
	d, x := binary.Uvarint(s.data)
	if x <= 0 {
		s.fail("invalid uvarint")
		return 0
	}
	s.data = s.data[x:]
	return d
}
func (s *Des) ReadVarint() int64 {
	if s.err != nil {
		return 0
	}
	d, x := binary.Varint(s.data)
	if x <= 0 {
		s.fail("invalid varint")
		return 0
	}
	s.data = s.data[x:]
	return d
}

// ReadFixedByteArray returns a copy of the next length bytes. The copy is required since the database
// backends only guarantee the underlying memory during the transaction.
func (s *Des) ReadFixedByteArray(length int) []byte {
	out := make([]byte, length)
	copy(out, s.take(length))
	return out
}
func (s *Des) ReadByteSlice() []byte {
	length := s.ReadUvarint()
	if s.err != nil {
		return []byte{}
	}
	if uint64(len(s.data)) < length {
		s.fail("invalid binary length")
		return []byte{}
	}
	return s.ReadFixedByteArray(int(length))
}
func (s *Des) ReadString() string {
	return string(s.ReadByteSlice())
}

func (s *Des) ReadBool() bool {
	b := s.take(1)
	if b == nil {
		return false
	}

	switch b[0] {
	case 1:
		return true
	case 2:
		return false
	default:
		s.fail("invalid boolean value")
		return false
	}
}

func (s *Des) Error() error {
	return s.err
}

func getCaller() string {
	_, file, line, _ := runtime.Caller(3)
	fileSpl := strings.Split(file, "/")
	return fileSpl[len(fileSpl)-1] + ":" + strconv.FormatInt(int64(line), 10)
}
