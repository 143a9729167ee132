package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// byteSequence is the shared representation of String, ByteString, and
// XmlElement: a (length, bytes) pair where length -1 is the null state,
// distinct from the zero-length value, plus an owned flag recording
// whether Clear should drop (GC, in Go) the backing array or merely
// forget it because a caller still holds the only reference.
//
// The owned flag is false (borrowed) for values built by the Attach*
// constructors and true for values built by the New* constructors, by
// CopyTo and by Decode.
type byteSequence struct {
	data   []byte
	isNull bool
	owned  bool
}

func (b *byteSequence) init() {
	b.data = nil
	b.isNull = true
	b.owned = false
}

func (b *byteSequence) clear() {
	b.data = nil
	b.isNull = true
	b.owned = false
}

func (b *byteSequence) copyFrom(src *byteSequence) {
	if src.isNull {
		b.data = nil
		b.isNull = true
		b.owned = false
		return
	}
	b.data = append([]byte(nil), src.data...)
	b.isNull = false
	b.owned = true
}

func (b *byteSequence) attach(data []byte) {
	b.data = data
	b.isNull = data == nil
	b.owned = false
}

func (b *byteSequence) setOwned(data []byte) {
	if data == nil {
		b.data = []byte{}
	} else {
		b.data = data
	}
	b.isNull = false
	b.owned = true
}

func (b *byteSequence) compare(o *byteSequence) int {
	switch {
	case b.isNull && o.isNull:
		return 0
	case b.isNull:
		return -1
	case o.isNull:
		return 1
	}
	return compareBytes(b.data, o.data)
}

func compareBytes(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func (b *byteSequence) encode(w *codec.Writer) error {
	return w.WriteByteSequence(b.data, b.isNull)
}

func (b *byteSequence) decode(r *codec.Reader, maxLen uint32) error {
	data, isNull, err := r.ReadByteSequence(maxLen)
	if err != nil {
		b.clear()
		return err
	}
	b.data = data
	b.isNull = isNull
	b.owned = true
	return nil
}

// String is the OPC UA String built-in: a null/empty/non-empty UTF-8 byte
// sequence.
type String struct{ byteSequence }

// NewString returns an owned String holding a copy of s.
func NewString(s string) String {
	var v String
	v.setOwned([]byte(s))
	return v
}

// NullString returns the null String.
func NullString() String {
	var v String
	v.init()
	return v
}

// AttachString wraps data without copying it; data must not be mutated by
// the caller afterward. Clear on the result will not touch data.
func AttachString(data []byte) String {
	var v String
	v.attach(data)
	return v
}

func (v *String) Init()  { v.init() }
func (v *String) Clear() { v.clear() }
func (v *String) IsNull() bool { return v.isNull }
func (v *String) Value() string {
	if v.isNull {
		return ""
	}
	return string(v.data)
}
func (v *String) Bytes() []byte { return v.data }

func (v *String) CopyTo(dst Value) error {
	d, ok := dst.(*String)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *String")
	}
	d.copyFrom(&v.byteSequence)
	return nil
}

func (v *String) CompareTo(other Value) (int, error) {
	o, ok := other.(*String)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *String")
	}
	return v.compare(&o.byteSequence), nil
}

func (v *String) Encode(w *codec.Writer) error { return v.encode(w) }
func (v *String) Decode(r *codec.Reader) error {
	return v.decode(r, r.Limits().MaxStringLength)
}

// ByteString is the OPC UA ByteString built-in: an arbitrary, possibly null,
// byte sequence. Wire-identical to String.
type ByteString struct{ byteSequence }

func NewByteString(data []byte) ByteString {
	var v ByteString
	v.setOwned(append([]byte(nil), data...))
	return v
}

func NullByteString() ByteString {
	var v ByteString
	v.init()
	return v
}

func AttachByteString(data []byte) ByteString {
	var v ByteString
	v.attach(data)
	return v
}

func (v *ByteString) Init()  { v.init() }
func (v *ByteString) Clear() { v.clear() }
func (v *ByteString) IsNull() bool { return v.isNull }
func (v *ByteString) Bytes() []byte { return v.data }

func (v *ByteString) CopyTo(dst Value) error {
	d, ok := dst.(*ByteString)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *ByteString")
	}
	d.copyFrom(&v.byteSequence)
	return nil
}

func (v *ByteString) CompareTo(other Value) (int, error) {
	o, ok := other.(*ByteString)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *ByteString")
	}
	return v.compare(&o.byteSequence), nil
}

func (v *ByteString) Encode(w *codec.Writer) error { return v.encode(w) }
func (v *ByteString) Decode(r *codec.Reader) error {
	return v.decode(r, r.Limits().MaxStringLength)
}

// XmlElement is structurally identical to ByteString.
type XmlElement struct{ byteSequence }

func NewXmlElement(data []byte) XmlElement {
	var v XmlElement
	v.setOwned(append([]byte(nil), data...))
	return v
}

func NullXmlElement() XmlElement {
	var v XmlElement
	v.init()
	return v
}

func (v *XmlElement) Init()  { v.init() }
func (v *XmlElement) Clear() { v.clear() }
func (v *XmlElement) IsNull() bool { return v.isNull }
func (v *XmlElement) Bytes() []byte { return v.data }

func (v *XmlElement) CopyTo(dst Value) error {
	d, ok := dst.(*XmlElement)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *XmlElement")
	}
	d.copyFrom(&v.byteSequence)
	return nil
}

func (v *XmlElement) CompareTo(other Value) (int, error) {
	o, ok := other.(*XmlElement)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *XmlElement")
	}
	return v.compare(&o.byteSequence), nil
}

func (v *XmlElement) Encode(w *codec.Writer) error { return v.encode(w) }
func (v *XmlElement) Decode(r *codec.Reader) error {
	return v.decode(r, r.Limits().MaxStringLength)
}

func init() {
	register(TypeString, "String", 16, func() Value { return new(String) })
	register(TypeByteString, "ByteString", 16, func() Value { return new(ByteString) })
	register(TypeXmlElement, "XmlElement", 16, func() Value { return new(XmlElement) })
}
