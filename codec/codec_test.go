package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/config"
	"github.com/yobol/go-opcua/status"
)

func limitsForTest() config.Limits {
	l := config.Default()
	l.MaxNestedStruct = 3
	l.MaxNestedDiagInfo = 2
	l.MaxStringLength = 4
	l.MaxArrayLength = 4
	return l
}

func TestPrimitiveRoundTrip(t *testing.T) {
	l := limitsForTest()
	w := NewWriter(l)
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteSByte(-12))
	require.NoError(t, w.WriteByte(200))
	require.NoError(t, w.WriteInt16(-1000))
	require.NoError(t, w.WriteUInt16(60000))
	require.NoError(t, w.WriteInt32(-70000))
	require.NoError(t, w.WriteUInt32(4000000000))
	require.NoError(t, w.WriteInt64(-1 << 40))
	require.NoError(t, w.WriteUInt64(1 << 62))
	require.NoError(t, w.WriteFloat(3.5))
	require.NoError(t, w.WriteDouble(-2.25))

	r := NewReader(w.Bytes(), l)
	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)
	sb, err := r.ReadSByte()
	require.NoError(t, err)
	require.EqualValues(t, -12, sb)
	by, err := r.ReadByte()
	require.NoError(t, err)
	require.EqualValues(t, 200, by)
	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.EqualValues(t, -1000, i16)
	u16, err := r.ReadUInt16()
	require.NoError(t, err)
	require.EqualValues(t, 60000, u16)
	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.EqualValues(t, -70000, i32)
	u32, err := r.ReadUInt32()
	require.NoError(t, err)
	require.EqualValues(t, 4000000000, u32)
	i64, err := r.ReadInt64()
	require.NoError(t, err)
	require.EqualValues(t, -1<<40, i64)
	u64, err := r.ReadUInt64()
	require.NoError(t, err)
	require.EqualValues(t, 1<<62, u64)
	f32, err := r.ReadFloat()
	require.NoError(t, err)
	require.EqualValues(t, 3.5, f32)
	f64, err := r.ReadDouble()
	require.NoError(t, err)
	require.EqualValues(t, -2.25, f64)
	require.Zero(t, r.Remaining())
}

func TestBoolNonZeroByteCanonicalizes(t *testing.T) {
	l := config.Default()
	r := NewReader([]byte{0x7F}, l)
	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)
}

func TestNullVsEmptyByteSequence(t *testing.T) {
	l := limitsForTest()

	w1 := NewWriter(l)
	require.NoError(t, w1.WriteByteSequence(nil, true))
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, w1.Bytes())

	w2 := NewWriter(l)
	require.NoError(t, w2.WriteByteSequence([]byte{}, false))
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, w2.Bytes())

	require.NotEqual(t, w1.Bytes(), w2.Bytes())

	r1 := NewReader(w1.Bytes(), l)
	data, isNull, err := r1.ReadByteSequence(0)
	require.NoError(t, err)
	require.True(t, isNull)
	require.Nil(t, data)

	r2 := NewReader(w2.Bytes(), l)
	data, isNull, err = r2.ReadByteSequence(0)
	require.NoError(t, err)
	require.False(t, isNull)
	require.Len(t, data, 0)
}

func TestStringWireFixture(t *testing.T) {
	// S3 from spec: String{"OK"} encodes to 02 00 00 00 4F 4B.
	l := config.Default()
	w := NewWriter(l)
	require.NoError(t, w.WriteByteSequence([]byte("OK"), false))
	require.Equal(t, []byte{0x02, 0x00, 0x00, 0x00, 0x4F, 0x4B}, w.Bytes())
}

func TestMaxStringLengthRejectsWithoutAllocating(t *testing.T) {
	l := limitsForTest()
	w := NewWriter(l)
	require.NoError(t, w.WriteByteSequence([]byte("hello"), false)) // len 5 > cap 4
	r := NewReader(w.Bytes(), l)
	data, isNull, err := r.ReadByteSequence(l.MaxStringLength)
	require.Error(t, err)
	require.Equal(t, status.OutOfMemory, status.Of(err))
	require.Nil(t, data)
	require.False(t, isNull)
}

func TestMaxArrayLengthRejects(t *testing.T) {
	l := limitsForTest()
	w := NewWriter(l)
	require.NoError(t, WriteFixedArray(w, []int32{1, 2, 3, 4, 5}))
	r := NewReader(w.Bytes(), l)
	out, err := ReadFixedArray[int32](r, l.MaxArrayLength)
	require.Error(t, err)
	require.Equal(t, status.OutOfMemory, status.Of(err))
	require.Nil(t, out)
}

func TestArrayNegativeOneTreatedAsZero(t *testing.T) {
	l := config.Default()
	r := NewReader([]byte{0xFF, 0xFF, 0xFF, 0xFF}, l)
	n, err := r.ReadArrayLen(0)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}

func TestFixedArrayRoundTrip(t *testing.T) {
	l := config.Default()
	in := []int32{7, 8, 9}
	w := NewWriter(l)
	require.NoError(t, WriteFixedArray(w, in))
	// S5 prefix fragment: length 03 00 00 00 then 07 00 00 00 08 00 00 00 09 00 00 00
	require.Equal(t, []byte{
		0x03, 0x00, 0x00, 0x00,
		0x07, 0x00, 0x00, 0x00,
		0x08, 0x00, 0x00, 0x00,
		0x09, 0x00, 0x00, 0x00,
	}, w.Bytes())

	r := NewReader(w.Bytes(), l)
	out, err := ReadFixedArray[int32](r, 0)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestFloatNaNCanonicalized(t *testing.T) {
	l := config.Default()
	w := NewWriter(l)
	require.NoError(t, w.WriteFloat(float32(nan())))
	require.Equal(t, canonicalQNaN32, leUint32(w.Bytes()))
}

func nan() float64 {
	var z float64
	return z / z
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func TestStructNestingCapRejectsWithoutIO(t *testing.T) {
	l := limitsForTest() // MaxNestedStruct = 3
	w := NewWriter(l)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.EnterStruct())
	}
	before := w.Len()
	err := w.EnterStruct()
	require.Error(t, err)
	require.Equal(t, status.InvalidState, status.Of(err))
	require.Equal(t, before, w.Len(), "rejected EnterStruct must not grow the output buffer")
}

func TestDiagNestingCapIndependentOfStructCap(t *testing.T) {
	l := limitsForTest() // MaxNestedDiagInfo = 2, MaxNestedStruct = 3
	r := NewReader(nil, l)
	require.NoError(t, r.EnterStruct())
	require.NoError(t, r.EnterDiag())
	require.NoError(t, r.EnterDiag())
	err := r.EnterDiag()
	require.Error(t, err)
	require.Equal(t, status.InvalidState, status.Of(err))
	// struct depth counter is untouched by the diag cap being hit.
	require.NoError(t, r.EnterStruct())
}

func TestHostIsLittleEndianIsConsistent(t *testing.T) {
	first := HostIsLittleEndian()
	for i := 0; i < 10; i++ {
		require.Equal(t, first, HostIsLittleEndian())
	}
}
