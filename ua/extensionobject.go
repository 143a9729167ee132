package ua

import (
	"encoding/binary"

	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// ExtensionObjectBodyKind is the wire encoding-byte discriminant for an
// ExtensionObject's body.
type ExtensionObjectBodyKind uint8

const (
	BodyNone ExtensionObjectBodyKind = iota
	BodyByteString
	BodyXml
	// BodyObject never appears as a standalone wire value: it is encoded
	// exactly like BodyByteString (encoding byte 1) but the payload bytes
	// are the binary encoding of a registered EncodeableType, decoded
	// in place via the EncodeableType registry rather than kept opaque.
	BodyObject
)

// ExtensionObject carries an arbitrary struct identified by its binary
// encoding id, used wherever the protocol needs an extensible payload.
type ExtensionObject struct {
	TypeId ExpandedNodeId
	Kind   ExtensionObjectBodyKind
	Bytes  ByteString
	Xml    XmlElement
	Object Value
}

func NewExtensionObjectByteString(typeId ExpandedNodeId, data []byte) ExtensionObject {
	return ExtensionObject{TypeId: typeId, Kind: BodyByteString, Bytes: NewByteString(data)}
}

func NewExtensionObjectXml(typeId ExpandedNodeId, data []byte) ExtensionObject {
	return ExtensionObject{TypeId: typeId, Kind: BodyXml, Xml: NewXmlElement(data)}
}

func NewExtensionObjectObject(typeId ExpandedNodeId, obj Value) ExtensionObject {
	return ExtensionObject{TypeId: typeId, Kind: BodyObject, Object: obj}
}

func (v *ExtensionObject) Init()  { *v = ExtensionObject{} }
func (v *ExtensionObject) Clear() { *v = ExtensionObject{} }

func (v *ExtensionObject) CopyTo(dst Value) error {
	d, ok := dst.(*ExtensionObject)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *ExtensionObject")
	}
	if err := v.TypeId.CopyTo(&d.TypeId); err != nil {
		return err
	}
	d.Kind = v.Kind
	if err := v.Bytes.CopyTo(&d.Bytes); err != nil {
		return err
	}
	if err := v.Xml.CopyTo(&d.Xml); err != nil {
		return err
	}
	if v.Object != nil {
		cp := cloneRegisteredValue(v.Object)
		if cp != nil {
			if err := v.Object.CopyTo(cp); err != nil {
				return err
			}
		}
		d.Object = cp
	} else {
		d.Object = nil
	}
	return nil
}

func (v *ExtensionObject) CompareTo(other Value) (int, error) {
	o, ok := other.(*ExtensionObject)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *ExtensionObject")
	}
	return v.TypeId.CompareTo(&o.TypeId)
}

func (v *ExtensionObject) Encode(w *codec.Writer) error {
	if err := v.TypeId.Encode(w); err != nil {
		return err
	}
	switch v.Kind {
	case BodyNone:
		return w.WriteByte(0)
	case BodyByteString:
		if err := w.WriteByte(1); err != nil {
			return err
		}
		return v.Bytes.Encode(w)
	case BodyXml:
		if err := w.WriteByte(2); err != nil {
			return err
		}
		return v.Xml.Encode(w)
	case BodyObject:
		if err := w.WriteByte(1); err != nil {
			return err
		}
		return v.encodeObjectBody(w)
	default:
		return status.New(status.EncodingError, "ExtensionObject: unknown body kind %d", v.Kind)
	}
}

// encodeObjectBody writes a placeholder length, encodes the object, then
// patches the real byte count back in, since the encoded size is not known
// ahead of time.
func (v *ExtensionObject) encodeObjectBody(w *codec.Writer) error {
	if v.Object == nil {
		return w.WriteInt32(-1)
	}
	lengthPos := w.Len()
	if err := w.WriteInt32(0); err != nil {
		return err
	}
	bodyStart := w.Len()
	if err := v.Object.Encode(w); err != nil {
		return err
	}
	length := w.Len() - bodyStart
	binary.LittleEndian.PutUint32(w.Bytes()[lengthPos:lengthPos+4], uint32(length))
	return nil
}

func (v *ExtensionObject) Decode(r *codec.Reader) error {
	var typeId ExpandedNodeId
	if err := typeId.Decode(r); err != nil {
		v.Clear()
		return err
	}
	kindByte, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	*v = ExtensionObject{TypeId: typeId}
	switch kindByte {
	case 0:
		v.Kind = BodyNone
	case 1:
		if newFn, ok := lookupEncodeableByBinaryID(typeId.NodeId()); ok {
			length, err := r.ReadInt32()
			if err != nil {
				v.Clear()
				return err
			}
			if length < 0 {
				v.Kind = BodyObject
				return nil
			}
			bodyBytes, err := r.ReadRaw(int(length))
			if err != nil {
				v.Clear()
				return err
			}
			bodyReader := codec.NewReader(bodyBytes, r.Limits())
			obj := newFn()
			if err := obj.Decode(bodyReader); err != nil {
				v.Clear()
				return err
			}
			v.Kind = BodyObject
			v.Object = obj
			return nil
		}
		var bs ByteString
		if err := bs.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.Kind = BodyByteString
		v.Bytes = bs
	case 2:
		var xml XmlElement
		if err := xml.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.Kind = BodyXml
		v.Xml = xml
	default:
		v.Clear()
		return status.New(status.EncodingError, "ExtensionObject: unknown encoding byte 0x%02X", kindByte)
	}
	return nil
}

func init() {
	register(TypeExtensionObject, "ExtensionObject", 40, func() Value { return new(ExtensionObject) })
}
