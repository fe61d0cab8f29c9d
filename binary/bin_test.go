package binary

import (
	"bytes"
	"math"
	"testing"
)

func BenchmarkBinary(b *testing.B) {
	s := NewSer(make([]byte, b.N*4))

	n := uint64(b.N)
	for i := uint64(0); i < n; i++ {
		s.AddUvarint(i)
	}

	d := NewDes(s.Output())

	for i := uint64(0); i < n; i++ {
		d.ReadUvarint()
	}

	if d.Error() != nil {
		b.Fatal(d.Error())
	}
}

func TestSerDes(t *testing.T) {
	s := NewSer(make([]byte, 64))
	s.AddUint8(7)
	s.AddUint16(1000)
	s.AddUint64(math.MaxUint64)
	s.AddUvarint(300)
	s.AddVarint(-60)
	s.AddBool(true)
	s.AddBool(false)
	s.AddString("VIREL")
	s.AddFixedByteArray([]byte{1, 2, 3})

	d := NewDes(s.Output())
	if d.ReadUint8() != 7 || d.ReadUint16() != 1000 || d.ReadUint64() != math.MaxUint64 {
		t.Fatal("fixed width integers do not match")
	}
	if d.ReadUvarint() != 300 || d.ReadVarint() != -60 {
		t.Fatal("varints do not match")
	}
	if !d.ReadBool() || d.ReadBool() {
		t.Fatal("booleans do not match")
	}
	if d.ReadString() != "VIREL" {
		t.Fatal("string does not match")
	}
	if !bytes.Equal(d.ReadFixedByteArray(3), []byte{1, 2, 3}) {
		t.Fatal("byte array does not match")
	}
	if d.Error() != nil {
		t.Fatal(d.Error())
	}
	if len(d.RemainingData()) != 0 {
		t.Fatal("unexpected remaining data")
	}
}

func TestDesErrors(t *testing.T) {
	d := NewDes([]byte{0})
	if d.ReadBool(); d.Error() == nil {
		t.Fatal("zero byte must not decode as a boolean")
	}

	d = NewDes([]byte{5, 'a'})
	d.ReadByteSlice()
	if d.Error() == nil {
		t.Fatal("expected length error")
	}

	// errors are sticky
	d.ReadUint8()
	if d.Error() == nil {
		t.Fatal("error should persist")
	}
}
