package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// Boolean, SByte, Byte, ... Double are the eleven fixed-width OPC UA
// scalar built-ins. Each is a defined type over the matching Go primitive,
// so they satisfy Value directly without any boxing.

type Boolean bool
type SByte int8
type Byte uint8
type Int16 int16
type UInt16 uint16
type Int32 int32
type UInt32 uint32
type Int64 int64
type UInt64 uint64
type Float float32
type Double float64

func (v *Boolean) Init()  { *v = false }
func (v *Boolean) Clear() { *v = false }
func (v *Boolean) CopyTo(dst Value) error {
	d, ok := dst.(*Boolean)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Boolean")
	}
	*d = *v
	return nil
}
func (v *Boolean) CompareTo(other Value) (int, error) {
	o, ok := other.(*Boolean)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Boolean")
	}
	return compareBool(bool(*v), bool(*o)), nil
}
func (v *Boolean) Encode(w *codec.Writer) error { return w.WriteBool(bool(*v)) }
func (v *Boolean) Decode(r *codec.Reader) error {
	b, err := r.ReadBool()
	if err != nil {
		v.Clear()
		return err
	}
	*v = Boolean(b)
	return nil
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

// The remaining scalar types all follow the identical pattern; a generic
// helper would hide that from a reader skimming the file for one type's
// wire behavior, so each is spelled out explicitly, the way the built-in
// registry in a C implementation spells out one vtable row per type.

func (v *SByte) Init()  { *v = 0 }
func (v *SByte) Clear() { *v = 0 }
func (v *SByte) CopyTo(dst Value) error {
	d, ok := dst.(*SByte)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *SByte")
	}
	*d = *v
	return nil
}
func (v *SByte) CompareTo(other Value) (int, error) {
	o, ok := other.(*SByte)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *SByte")
	}
	return compareOrdered(int64(*v), int64(*o)), nil
}
func (v *SByte) Encode(w *codec.Writer) error { return w.WriteSByte(int8(*v)) }
func (v *SByte) Decode(r *codec.Reader) error {
	b, err := r.ReadSByte()
	if err != nil {
		v.Clear()
		return err
	}
	*v = SByte(b)
	return nil
}

func (v *Byte) Init()  { *v = 0 }
func (v *Byte) Clear() { *v = 0 }
func (v *Byte) CopyTo(dst Value) error {
	d, ok := dst.(*Byte)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Byte")
	}
	*d = *v
	return nil
}
func (v *Byte) CompareTo(other Value) (int, error) {
	o, ok := other.(*Byte)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Byte")
	}
	return compareOrdered(uint64(*v), uint64(*o)), nil
}
func (v *Byte) Encode(w *codec.Writer) error { return w.WriteByte(uint8(*v)) }
func (v *Byte) Decode(r *codec.Reader) error {
	b, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	*v = Byte(b)
	return nil
}

func (v *Int16) Init()  { *v = 0 }
func (v *Int16) Clear() { *v = 0 }
func (v *Int16) CopyTo(dst Value) error {
	d, ok := dst.(*Int16)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Int16")
	}
	*d = *v
	return nil
}
func (v *Int16) CompareTo(other Value) (int, error) {
	o, ok := other.(*Int16)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Int16")
	}
	return compareOrdered(int64(*v), int64(*o)), nil
}
func (v *Int16) Encode(w *codec.Writer) error { return w.WriteInt16(int16(*v)) }
func (v *Int16) Decode(r *codec.Reader) error {
	x, err := r.ReadInt16()
	if err != nil {
		v.Clear()
		return err
	}
	*v = Int16(x)
	return nil
}

func (v *UInt16) Init()  { *v = 0 }
func (v *UInt16) Clear() { *v = 0 }
func (v *UInt16) CopyTo(dst Value) error {
	d, ok := dst.(*UInt16)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *UInt16")
	}
	*d = *v
	return nil
}
func (v *UInt16) CompareTo(other Value) (int, error) {
	o, ok := other.(*UInt16)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *UInt16")
	}
	return compareOrdered(uint64(*v), uint64(*o)), nil
}
func (v *UInt16) Encode(w *codec.Writer) error { return w.WriteUInt16(uint16(*v)) }
func (v *UInt16) Decode(r *codec.Reader) error {
	x, err := r.ReadUInt16()
	if err != nil {
		v.Clear()
		return err
	}
	*v = UInt16(x)
	return nil
}

func (v *Int32) Init()  { *v = 0 }
func (v *Int32) Clear() { *v = 0 }
func (v *Int32) CopyTo(dst Value) error {
	d, ok := dst.(*Int32)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Int32")
	}
	*d = *v
	return nil
}
func (v *Int32) CompareTo(other Value) (int, error) {
	o, ok := other.(*Int32)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Int32")
	}
	return compareOrdered(int64(*v), int64(*o)), nil
}
func (v *Int32) Encode(w *codec.Writer) error { return w.WriteInt32(int32(*v)) }
func (v *Int32) Decode(r *codec.Reader) error {
	x, err := r.ReadInt32()
	if err != nil {
		v.Clear()
		return err
	}
	*v = Int32(x)
	return nil
}

func (v *UInt32) Init()  { *v = 0 }
func (v *UInt32) Clear() { *v = 0 }
func (v *UInt32) CopyTo(dst Value) error {
	d, ok := dst.(*UInt32)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *UInt32")
	}
	*d = *v
	return nil
}
func (v *UInt32) CompareTo(other Value) (int, error) {
	o, ok := other.(*UInt32)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *UInt32")
	}
	return compareOrdered(uint64(*v), uint64(*o)), nil
}
func (v *UInt32) Encode(w *codec.Writer) error { return w.WriteUInt32(uint32(*v)) }
func (v *UInt32) Decode(r *codec.Reader) error {
	x, err := r.ReadUInt32()
	if err != nil {
		v.Clear()
		return err
	}
	*v = UInt32(x)
	return nil
}

func (v *Int64) Init()  { *v = 0 }
func (v *Int64) Clear() { *v = 0 }
func (v *Int64) CopyTo(dst Value) error {
	d, ok := dst.(*Int64)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Int64")
	}
	*d = *v
	return nil
}
func (v *Int64) CompareTo(other Value) (int, error) {
	o, ok := other.(*Int64)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Int64")
	}
	return compareOrdered(int64(*v), int64(*o)), nil
}
func (v *Int64) Encode(w *codec.Writer) error { return w.WriteInt64(int64(*v)) }
func (v *Int64) Decode(r *codec.Reader) error {
	x, err := r.ReadInt64()
	if err != nil {
		v.Clear()
		return err
	}
	*v = Int64(x)
	return nil
}

func (v *UInt64) Init()  { *v = 0 }
func (v *UInt64) Clear() { *v = 0 }
func (v *UInt64) CopyTo(dst Value) error {
	d, ok := dst.(*UInt64)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *UInt64")
	}
	*d = *v
	return nil
}
func (v *UInt64) CompareTo(other Value) (int, error) {
	o, ok := other.(*UInt64)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *UInt64")
	}
	return compareOrdered(uint64(*v), uint64(*o)), nil
}
func (v *UInt64) Encode(w *codec.Writer) error { return w.WriteUInt64(uint64(*v)) }
func (v *UInt64) Decode(r *codec.Reader) error {
	x, err := r.ReadUInt64()
	if err != nil {
		v.Clear()
		return err
	}
	*v = UInt64(x)
	return nil
}

func (v *Float) Init()  { *v = 0 }
func (v *Float) Clear() { *v = 0 }
func (v *Float) CopyTo(dst Value) error {
	d, ok := dst.(*Float)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Float")
	}
	*d = *v
	return nil
}
func (v *Float) CompareTo(other Value) (int, error) {
	o, ok := other.(*Float)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Float")
	}
	return compareOrdered(float64(*v), float64(*o)), nil
}
func (v *Float) Encode(w *codec.Writer) error { return w.WriteFloat(float32(*v)) }
func (v *Float) Decode(r *codec.Reader) error {
	x, err := r.ReadFloat()
	if err != nil {
		v.Clear()
		return err
	}
	*v = Float(x)
	return nil
}

func (v *Double) Init()  { *v = 0 }
func (v *Double) Clear() { *v = 0 }
func (v *Double) CopyTo(dst Value) error {
	d, ok := dst.(*Double)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Double")
	}
	*d = *v
	return nil
}
func (v *Double) CompareTo(other Value) (int, error) {
	o, ok := other.(*Double)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Double")
	}
	return compareOrdered(float64(*v), float64(*o)), nil
}
func (v *Double) Encode(w *codec.Writer) error { return w.WriteDouble(float64(*v)) }
func (v *Double) Decode(r *codec.Reader) error {
	x, err := r.ReadDouble()
	if err != nil {
		v.Clear()
		return err
	}
	*v = Double(x)
	return nil
}

type ordered interface {
	~int64 | ~uint64 | ~float64
}

func compareOrdered[T ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func init() {
	register(TypeBoolean, "Boolean", 1, func() Value { return new(Boolean) })
	register(TypeSByte, "SByte", 1, func() Value { return new(SByte) })
	register(TypeByte, "Byte", 1, func() Value { return new(Byte) })
	register(TypeInt16, "Int16", 2, func() Value { return new(Int16) })
	register(TypeUInt16, "UInt16", 2, func() Value { return new(UInt16) })
	register(TypeInt32, "Int32", 4, func() Value { return new(Int32) })
	register(TypeUInt32, "UInt32", 4, func() Value { return new(UInt32) })
	register(TypeInt64, "Int64", 8, func() Value { return new(Int64) })
	register(TypeUInt64, "UInt64", 8, func() Value { return new(UInt64) })
	register(TypeFloat, "Float", 4, func() Value { return new(Float) })
	register(TypeDouble, "Double", 8, func() Value { return new(Double) })
}
