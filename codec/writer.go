// Package codec implements the OPC UA Binary primitive, nesting-guarded
// structural, and array read/write operations. It knows nothing about the
// built-in or composite type system above it; ua builds on these
// primitives.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/yobol/go-opcua/config"
	"github.com/yobol/go-opcua/status"
)

// nullLength is the Int32 wire value that marks a null string, ByteString,
// XmlElement, or array.
const nullLength int32 = -1

// Writer accumulates encoded bytes for a single message. It threads the
// nesting-depth counters required by spec invariants 4 and 5 through every
// structural write.
type Writer struct {
	buf    []byte
	limits config.Limits

	structDepth uint32
	diagDepth   uint32
}

// NewWriter returns a Writer bounded by limits. Pass config.GetEncodingConstants()
// for the process-wide configuration.
func NewWriter(limits config.Limits) *Writer {
	return &Writer{limits: limits}
}

// Bytes returns the bytes written so far. The returned slice aliases the
// Writer's internal buffer and must not be retained across further writes.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// Reset discards any written bytes and nesting state, so the Writer can be
// reused for the next message.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
	w.structDepth = 0
	w.diagDepth = 0
}

// EnterStruct increments the structural nesting counter, failing with
// InvalidState without writing anything if MaxNestedStruct would be
// exceeded. Every recursive composite encode must call EnterStruct before
// writing any of its fields and LeaveStruct when done, even on error paths.
func (w *Writer) EnterStruct() error {
	if w.structDepth >= w.limits.MaxNestedStruct {
		return status.New(status.InvalidState, "nesting depth exceeds max_nested_struct")
	}
	w.structDepth++
	return nil
}

// LeaveStruct decrements the structural nesting counter.
func (w *Writer) LeaveStruct() {
	if w.structDepth > 0 {
		w.structDepth--
	}
}

// EnterDiag is the DiagnosticInfo-specific analog of EnterStruct, bounded
// independently by MaxNestedDiagInfo (spec invariant 4).
func (w *Writer) EnterDiag() error {
	if w.diagDepth >= w.limits.MaxNestedDiagInfo {
		return status.New(status.InvalidState, "nesting depth exceeds max_nested_diag_info")
	}
	w.diagDepth++
	return nil
}

// LeaveDiag decrements the DiagnosticInfo nesting counter.
func (w *Writer) LeaveDiag() {
	if w.diagDepth > 0 {
		w.diagDepth--
	}
}

func (w *Writer) grow(n int) []byte {
	at := len(w.buf)
	w.buf = append(w.buf, make([]byte, n)...)
	return w.buf[at : at+n]
}

// WriteRaw appends data verbatim, with no length prefix. Used for fixed-size
// fields (e.g. a Guid's 16 bytes) and by higher layers composing their own
// framing.
func (w *Writer) WriteRaw(data []byte) error {
	w.buf = append(w.buf, data...)
	return nil
}

func (w *Writer) WriteBool(v bool) error {
	b := w.grow(1)
	if v {
		b[0] = 1
	} else {
		b[0] = 0
	}
	return nil
}

func (w *Writer) WriteSByte(v int8) error {
	b := w.grow(1)
	b[0] = byte(v)
	return nil
}

func (w *Writer) WriteByte(v uint8) error {
	b := w.grow(1)
	b[0] = v
	return nil
}

func (w *Writer) WriteInt16(v int16) error {
	binary.LittleEndian.PutUint16(w.grow(2), uint16(v))
	return nil
}

func (w *Writer) WriteUInt16(v uint16) error {
	binary.LittleEndian.PutUint16(w.grow(2), v)
	return nil
}

func (w *Writer) WriteInt32(v int32) error {
	binary.LittleEndian.PutUint32(w.grow(4), uint32(v))
	return nil
}

func (w *Writer) WriteUInt32(v uint32) error {
	binary.LittleEndian.PutUint32(w.grow(4), v)
	return nil
}

func (w *Writer) WriteInt64(v int64) error {
	binary.LittleEndian.PutUint64(w.grow(8), uint64(v))
	return nil
}

func (w *Writer) WriteUInt64(v uint64) error {
	binary.LittleEndian.PutUint64(w.grow(8), v)
	return nil
}

// canonicalQNaN32 / canonicalQNaN64 are the canonical quiet-NaN bit patterns
// NaN values are normalized to on the wire, so that any NaN produced by a
// peer's particular FPU round-trips to the same bytes.
const (
	canonicalQNaN32 uint32 = 0x7FC00000
	canonicalQNaN64 uint64 = 0x7FF8000000000000
)

func (w *Writer) WriteFloat(v float32) error {
	bits := math.Float32bits(v)
	if math.IsNaN(float64(v)) {
		bits = canonicalQNaN32
	}
	binary.LittleEndian.PutUint32(w.grow(4), bits)
	return nil
}

func (w *Writer) WriteDouble(v float64) error {
	bits := math.Float64bits(v)
	if math.IsNaN(v) {
		bits = canonicalQNaN64
	}
	binary.LittleEndian.PutUint64(w.grow(8), bits)
	return nil
}

// WriteByteSequence writes the Int32-length-prefixed byte sequence shared by
// String, ByteString, and XmlElement: null writes length -1 and no bytes,
// otherwise the real length (which may be 0) followed by the bytes.
func (w *Writer) WriteByteSequence(data []byte, isNull bool) error {
	if isNull {
		return w.WriteInt32(nullLength)
	}
	if err := w.WriteInt32(int32(len(data))); err != nil {
		return err
	}
	return w.WriteRaw(data)
}

// WriteArrayLen writes the Int32 array-length prefix. Callers write the n
// elements themselves immediately afterward.
func (w *Writer) WriteArrayLen(n int) error {
	return w.WriteInt32(int32(n))
}
