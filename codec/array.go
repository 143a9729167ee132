package codec

import (
	"unsafe"

	"github.com/yobol/go-opcua/status"
)

// fixedWidth is the set of built-in cell types whose in-memory layout
// matches their little-endian wire layout byte-for-byte, making the
// contiguous-copy fast path valid on a little-endian host.
type fixedWidth interface {
	int8 | uint8 | int16 | uint16 | int32 | uint32 | int64 | uint64 | float32 | float64
}

// WriteFixedArray writes the Int32 length prefix followed by data's
// elements. On a little-endian host it performs one contiguous memory copy;
// otherwise it falls back to writing elements one at a time.
func WriteFixedArray[T fixedWidth](w *Writer, data []T) error {
	if err := w.WriteArrayLen(len(data)); err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if hostLittleEndian {
		return w.WriteRaw(asBytes(data))
	}
	for _, v := range data {
		if err := writeFixedElem(w, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadFixedArray reads an Int32-length-prefixed array of T, applying maxLen
// as the decode bound. On a little-endian host it performs one contiguous
// memory copy of the backing bytes into a freshly allocated slice.
func ReadFixedArray[T fixedWidth](r *Reader, maxLen uint32) ([]T, error) {
	n, err := r.ReadArrayLen(maxLen)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	if hostLittleEndian {
		raw, err := r.ReadRaw(n * sz)
		if err != nil {
			return nil, err
		}
		out := make([]T, n)
		copy(asBytes(out), raw)
		return out, nil
	}
	out := make([]T, n)
	for i := range out {
		v, err := readFixedElem[T](r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func asBytes[T fixedWidth](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	sz := int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*sz)
}

func writeFixedElem[T fixedWidth](w *Writer, v T) error {
	switch x := any(v).(type) {
	case int8:
		return w.WriteSByte(x)
	case uint8:
		return w.WriteByte(x)
	case int16:
		return w.WriteInt16(x)
	case uint16:
		return w.WriteUInt16(x)
	case int32:
		return w.WriteInt32(x)
	case uint32:
		return w.WriteUInt32(x)
	case int64:
		return w.WriteInt64(x)
	case uint64:
		return w.WriteUInt64(x)
	case float32:
		return w.WriteFloat(x)
	case float64:
		return w.WriteDouble(x)
	default:
		return status.New(status.InvalidParameters, "unsupported fixed-width element type")
	}
}

func readFixedElem[T fixedWidth](r *Reader) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int8:
		v, err := r.ReadSByte()
		return any(v).(T), err
	case uint8:
		v, err := r.ReadByte()
		return any(v).(T), err
	case int16:
		v, err := r.ReadInt16()
		return any(v).(T), err
	case uint16:
		v, err := r.ReadUInt16()
		return any(v).(T), err
	case int32:
		v, err := r.ReadInt32()
		return any(v).(T), err
	case uint32:
		v, err := r.ReadUInt32()
		return any(v).(T), err
	case int64:
		v, err := r.ReadInt64()
		return any(v).(T), err
	case uint64:
		v, err := r.ReadUInt64()
		return any(v).(T), err
	case float32:
		v, err := r.ReadFloat()
		return any(v).(T), err
	case float64:
		v, err := r.ReadDouble()
		return any(v).(T), err
	default:
		return zero, status.New(status.InvalidParameters, "unsupported fixed-width element type")
	}
}
