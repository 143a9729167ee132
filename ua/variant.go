package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// VariantShape is the structural form a Variant's payload takes.
type VariantShape uint8

const (
	ShapeScalar VariantShape = iota
	ShapeArray
	ShapeMatrix
)

const (
	variantTypeIDMask    byte = 0x3F
	variantArrayFlag     byte = 0x80
	variantDimsFlag      byte = 0x40
)

// Variant is a discriminated container holding any one built-in type, as a
// scalar, a flat array, or a matrix (a flat array plus dimensions). The
// array backing slice carries an owned/borrowed flag: ShallowCopy and
// GetRange share the backing slice (borrowed); SetRange on a borrowed
// Variant clones the slice first (copy-on-write), so the Variant it was
// taken from does not change. SetRange on the owning Variant writes in
// place, and borrowed Variants sharing its slice see the change.
type Variant struct {
	typeID TypeID
	shape  VariantShape
	scalar Value
	array  []Value
	dims   []int32
	owned  bool
}

// NewVariantScalar takes ownership of v.
func NewVariantScalar(id TypeID, v Value) Variant {
	return Variant{typeID: id, shape: ShapeScalar, scalar: v, owned: true}
}

// NewVariantArray takes ownership of values.
func NewVariantArray(id TypeID, values []Value) Variant {
	return Variant{typeID: id, shape: ShapeArray, array: values, owned: true}
}

// NewVariantMatrix takes ownership of values; len(values) must equal the
// product of dims.
func NewVariantMatrix(id TypeID, values []Value, dims []int32) Variant {
	return Variant{typeID: id, shape: ShapeMatrix, array: values, dims: dims, owned: true}
}

func (v Variant) IsNull() bool { return v.typeID == TypeNull }
func (v Variant) TypeID() TypeID        { return v.typeID }
func (v Variant) Shape() VariantShape   { return v.shape }
func (v Variant) Scalar() Value         { return v.scalar }
func (v Variant) Array() []Value        { return v.array }
func (v Variant) Dimensions() []int32   { return v.dims }

func (v *Variant) Init()  { *v = Variant{} }
func (v *Variant) Clear() { *v = Variant{} }

// ShallowCopy returns a Variant sharing the same backing array, marked
// borrowed; mutating it via SetRange clones the backing array first.
func (v Variant) ShallowCopy() Variant {
	out := v
	out.owned = false
	return out
}

// Move transfers ownership of v's backing storage to the result and clears
// v, avoiding a deep copy of the array/scalar payload.
func (v *Variant) Move() Variant {
	out := *v
	*v = Variant{}
	return out
}

func (v *Variant) CopyTo(dst Value) error {
	d, ok := dst.(*Variant)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Variant")
	}
	d.typeID = v.typeID
	d.shape = v.shape
	d.owned = true
	if v.scalar != nil {
		cp := New(v.typeID)
		if cp != nil {
			if err := v.scalar.CopyTo(cp); err != nil {
				return err
			}
		}
		d.scalar = cp
	} else {
		d.scalar = nil
	}
	if v.array != nil {
		d.array = make([]Value, len(v.array))
		for i, e := range v.array {
			cp := New(v.typeID)
			if cp != nil && e != nil {
				if err := e.CopyTo(cp); err != nil {
					return err
				}
			}
			d.array[i] = cp
		}
	} else {
		d.array = nil
	}
	d.dims = append([]int32(nil), v.dims...)
	return nil
}

func (v *Variant) CompareTo(other Value) (int, error) {
	o, ok := other.(*Variant)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Variant")
	}
	if c := compareOrdered(uint64(v.typeID), uint64(o.typeID)); c != 0 {
		return c, nil
	}
	if c := compareOrdered(uint64(v.shape), uint64(o.shape)); c != 0 {
		return c, nil
	}
	switch v.shape {
	case ShapeScalar:
		if v.scalar == nil || o.scalar == nil {
			return compareBool(v.scalar != nil, o.scalar != nil), nil
		}
		return v.scalar.CompareTo(o.scalar)
	default:
		if c := compareOrdered(uint64(len(v.array)), uint64(len(o.array))); c != 0 {
			return c, nil
		}
		for i := range v.array {
			c, err := v.array[i].CompareTo(o.array[i])
			if err != nil {
				return 0, err
			}
			if c != 0 {
				return c, nil
			}
		}
		return 0, nil
	}
}

// GetRange returns a Variant view of v.array[start:start+length], sharing
// the backing array (borrowed). Only valid for array and matrix shapes.
func (v Variant) GetRange(start, length int) (Variant, error) {
	if v.shape == ShapeScalar {
		return Variant{}, status.New(status.InvalidParameters, "GetRange: not an array variant")
	}
	if start < 0 || length < 0 || start+length > len(v.array) {
		return Variant{}, status.New(status.InvalidParameters, "GetRange: out of bounds")
	}
	return Variant{
		typeID: v.typeID,
		shape:  ShapeArray,
		array:  v.array[start : start+length],
		owned:  false,
	}, nil
}

// SetRange overwrites v.array[start:start+len(values)], cloning the backing
// array first if v is borrowed (copy-on-write), so the Variant v was taken
// from via GetRange/ShallowCopy is unaffected. If v owns its array the
// write is in place and borrowed Variants sharing it see the new values.
func (v *Variant) SetRange(start int, values []Value) error {
	if v.shape == ShapeScalar {
		return status.New(status.InvalidParameters, "SetRange: not an array variant")
	}
	if start < 0 || start+len(values) > len(v.array) {
		return status.New(status.InvalidParameters, "SetRange: out of bounds")
	}
	if !v.owned {
		cloned := make([]Value, len(v.array))
		copy(cloned, v.array)
		v.array = cloned
		v.owned = true
	}
	copy(v.array[start:start+len(values)], values)
	return nil
}

func (v *Variant) Encode(w *codec.Writer) error {
	if v.typeID == TypeNull {
		return w.WriteByte(0)
	}
	mask := byte(v.typeID) & variantTypeIDMask
	switch v.shape {
	case ShapeArray:
		mask |= variantArrayFlag
	case ShapeMatrix:
		mask |= variantArrayFlag | variantDimsFlag
	}
	if err := w.WriteByte(mask); err != nil {
		return err
	}
	if v.shape == ShapeScalar {
		if v.scalar == nil {
			return status.New(status.InvalidParameters, "Encode: nil scalar payload")
		}
		return EncodeBuiltin(w, v.typeID, v.scalar)
	}
	if err := w.WriteArrayLen(len(v.array)); err != nil {
		return err
	}
	for _, e := range v.array {
		if err := EncodeBuiltin(w, v.typeID, e); err != nil {
			return err
		}
	}
	if v.shape == ShapeMatrix {
		if err := w.WriteArrayLen(len(v.dims)); err != nil {
			return err
		}
		for _, d := range v.dims {
			if err := w.WriteInt32(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *Variant) Decode(r *codec.Reader) error {
	mask, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	id := TypeID(mask & variantTypeIDMask)
	if id == TypeNull {
		v.Clear()
		return nil
	}
	if !id.IsValid() {
		v.Clear()
		return status.New(status.EncodingError, "Variant: unknown type id %d", id)
	}
	isArray := mask&variantArrayFlag != 0
	hasDims := mask&variantDimsFlag != 0
	if !isArray {
		val, err := DecodeBuiltin(r, id)
		if err != nil {
			v.Clear()
			return err
		}
		v.typeID, v.shape, v.scalar, v.array, v.dims, v.owned = id, ShapeScalar, val, nil, nil, true
		return nil
	}
	n, err := r.ReadArrayLen(r.Limits().MaxArrayLength)
	if err != nil {
		v.Clear()
		return err
	}
	values := make([]Value, n)
	for i := 0; i < n; i++ {
		val, err := DecodeBuiltin(r, id)
		if err != nil {
			v.Clear()
			return err
		}
		values[i] = val
	}
	var dims []int32
	shape := ShapeArray
	if hasDims {
		shape = ShapeMatrix
		dn, err := r.ReadArrayLen(r.Limits().MaxArrayLength)
		if err != nil {
			v.Clear()
			return err
		}
		dims = make([]int32, dn)
		product := int64(1)
		for i := 0; i < dn; i++ {
			d, err := r.ReadInt32()
			if err != nil {
				v.Clear()
				return err
			}
			dims[i] = d
			product *= int64(d)
		}
		if product != int64(len(values)) {
			v.Clear()
			return status.New(status.EncodingError, "Variant: matrix dimension product %d does not match element count %d", product, len(values))
		}
	}
	v.typeID, v.shape, v.scalar, v.array, v.dims, v.owned = id, shape, nil, values, dims, true
	return nil
}

func init() {
	register(TypeVariant, "Variant", 24, func() Value { return new(Variant) })
}
