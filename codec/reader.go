package codec

import (
	"encoding/binary"
	"math"

	"github.com/yobol/go-opcua/config"
	"github.com/yobol/go-opcua/status"
)

// Reader decodes from a complete in-memory byte buffer. Structural and
// array reads are bounds-checked against limits before any allocation is
// performed.
type Reader struct {
	data   []byte
	pos    int
	limits config.Limits

	structDepth uint32
	diagDepth   uint32
}

// NewReader returns a Reader over data, bounded by limits.
func NewReader(data []byte, limits config.Limits) *Reader {
	return &Reader{data: data, limits: limits}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Pos returns the current read cursor, for callers that need to know how
// much of the buffer a partial decode consumed.
func (r *Reader) Pos() int { return r.pos }

func (r *Reader) need(n int) error {
	if r.Remaining() < n {
		return status.New(status.WouldBlock, "need %d more bytes, have %d", n, r.Remaining())
	}
	return nil
}

func (r *Reader) take(n int) []byte {
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

// EnterStruct is the read-side counterpart of Writer.EnterStruct.
func (r *Reader) EnterStruct() error {
	if r.structDepth >= r.limits.MaxNestedStruct {
		return status.New(status.InvalidState, "nesting depth exceeds max_nested_struct")
	}
	r.structDepth++
	return nil
}

func (r *Reader) LeaveStruct() {
	if r.structDepth > 0 {
		r.structDepth--
	}
}

// EnterDiag is the read-side counterpart of Writer.EnterDiag.
func (r *Reader) EnterDiag() error {
	if r.diagDepth >= r.limits.MaxNestedDiagInfo {
		return status.New(status.InvalidState, "nesting depth exceeds max_nested_diag_info")
	}
	r.diagDepth++
	return nil
}

func (r *Reader) LeaveDiag() {
	if r.diagDepth > 0 {
		r.diagDepth--
	}
}

// ReadRaw reads n raw bytes with no interpretation. The returned slice
// aliases the Reader's backing array.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	return r.take(n), nil
}

func (r *Reader) ReadBool() (bool, error) {
	if err := r.need(1); err != nil {
		return false, err
	}
	return r.take(1)[0] != 0, nil
}

func (r *Reader) ReadSByte() (int8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return int8(r.take(1)[0]), nil
}

func (r *Reader) ReadByte() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	return r.take(1)[0], nil
}

func (r *Reader) ReadInt16() (int16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(r.take(2))), nil
}

func (r *Reader) ReadUInt16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(r.take(2)), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(r.take(4))), nil
}

func (r *Reader) ReadUInt32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.take(4)), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(r.take(8))), nil
}

func (r *Reader) ReadUInt64() (uint64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.take(8)), nil
}

func (r *Reader) ReadFloat() (float32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint32(r.take(4))
	if bits == canonicalQNaN32 || isNaN32(bits) {
		return float32(math.NaN()), nil
	}
	return math.Float32frombits(bits), nil
}

func (r *Reader) ReadDouble() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint64(r.take(8))
	if bits == canonicalQNaN64 || isNaN64(bits) {
		return math.NaN(), nil
	}
	return math.Float64frombits(bits), nil
}

func isNaN32(bits uint32) bool {
	exp := (bits >> 23) & 0xFF
	frac := bits & 0x7FFFFF
	return exp == 0xFF && frac != 0
}

func isNaN64(bits uint64) bool {
	exp := (bits >> 52) & 0x7FF
	frac := bits & 0xFFFFFFFFFFFFF
	return exp == 0x7FF && frac != 0
}

// ReadByteSequence reads the Int32-length-prefixed byte sequence shared by
// String, ByteString, and XmlElement. It returns isNull=true for length -1,
// a zero-length non-nil slice for length 0, and applies maxLen as the
// decode bound (0 disables the check).
func (r *Reader) ReadByteSequence(maxLen uint32) (data []byte, isNull bool, err error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, false, err
	}
	if n == nullLength {
		return nil, true, nil
	}
	if n < 0 {
		return nil, false, status.New(status.EncodingError, "negative length %d", n)
	}
	if maxLen != 0 && uint32(n) > maxLen {
		return nil, false, status.New(status.OutOfMemory, "length %d exceeds cap %d", n, maxLen)
	}
	b, err := r.ReadRaw(int(n))
	if err != nil {
		return nil, false, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, false, nil
}

// ReadArrayLen reads and validates the Int32 array-length prefix. A decoded
// length of -1 is accepted and treated as zero, matching the -1/0
// equivalence used for array length throughout the wire format.
func (r *Reader) ReadArrayLen(maxLen uint32) (int, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return 0, err
	}
	if n == nullLength {
		return 0, nil
	}
	if n < 0 {
		return 0, status.New(status.EncodingError, "negative array length %d", n)
	}
	if maxLen != 0 && uint32(n) > maxLen {
		return 0, status.New(status.OutOfMemory, "array length %d exceeds cap %d", n, maxLen)
	}
	return int(n), nil
}

// Limits returns the limits this Reader was constructed with, so that
// higher layers (e.g. ua's array/string decode helpers) can apply the same
// caps without threading them separately.
func (r *Reader) Limits() config.Limits { return r.limits }

// Limits is the Writer-side accessor used by callers that need to check
// caps before an encode, e.g. bounding an outgoing array's length against
// MaxArrayLength symmetrically with the decode-side cap.
func (w *Writer) Limits() config.Limits { return w.limits }
