package ua

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// IdentifierType discriminates the four shapes a NodeId's identifier can
// take.
type IdentifierType uint8

const (
	IdentifierNumeric IdentifierType = iota
	IdentifierString
	IdentifierGuid
	IdentifierByteString
)

// The six wire forms for a NodeId, selected at encode time: for a numeric
// identifier the smallest of 0x00-0x02 that fits; 0x03-0x05 correspond 1:1
// with the other three IdentifierType values.
const (
	formTwoByte    byte = 0x00
	formFourByte   byte = 0x01
	formNumeric    byte = 0x02
	formString     byte = 0x03
	formGuid       byte = 0x04
	formByteString byte = 0x05
)

const (
	expandedFlagNamespaceURI byte = 0x80
	expandedFlagServerIndex  byte = 0x40
	formMask                 byte = 0x3F
)

// NodeId is a tagged union over {Numeric, String, Guid, ByteString} plus a
// namespace index.
type NodeId struct {
	ns      uint16
	idType  IdentifierType
	numeric uint32
	str     String
	guid    Guid
	bstr    ByteString
}

func NewNumericNodeId(ns uint16, id uint32) NodeId {
	return NodeId{ns: ns, idType: IdentifierNumeric, numeric: id}
}

func NewStringNodeId(ns uint16, id string) NodeId {
	return NodeId{ns: ns, idType: IdentifierString, str: NewString(id)}
}

func NewGuidNodeId(ns uint16, id Guid) NodeId {
	return NodeId{ns: ns, idType: IdentifierGuid, guid: id}
}

func NewByteStringNodeId(ns uint16, id []byte) NodeId {
	return NodeId{ns: ns, idType: IdentifierByteString, bstr: NewByteString(id)}
}

func (n NodeId) Namespace() uint16        { return n.ns }
func (n NodeId) IdentifierType() IdentifierType { return n.idType }
func (n NodeId) Numeric() uint32          { return n.numeric }
func (n NodeId) StringID() string         { return n.str.Value() }
func (n NodeId) GuidID() Guid             { return n.guid }
func (n NodeId) ByteStringID() []byte     { return n.bstr.Bytes() }

// IsNull reports whether the NodeId is null: namespace 0 and the
// identifier is the type's zero value.
func (n NodeId) IsNull() bool {
	if n.ns != 0 {
		return false
	}
	switch n.idType {
	case IdentifierNumeric:
		return n.numeric == 0
	case IdentifierString:
		return n.str.IsNull() || n.str.Value() == ""
	case IdentifierGuid:
		return n.guid.id == ([16]byte{})
	case IdentifierByteString:
		return n.bstr.IsNull()
	}
	return true
}

func (v *NodeId) Init()  { *v = NodeId{} }
func (v *NodeId) Clear() { *v = NodeId{} }

func (v *NodeId) CopyTo(dst Value) error {
	d, ok := dst.(*NodeId)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *NodeId")
	}
	d.ns = v.ns
	d.idType = v.idType
	d.numeric = v.numeric
	_ = v.str.CopyTo(&d.str)
	d.guid = v.guid
	_ = v.bstr.CopyTo(&d.bstr)
	return nil
}

// CompareTo orders by (identifier-type, namespace, identifier).
func (v *NodeId) CompareTo(other Value) (int, error) {
	o, ok := other.(*NodeId)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *NodeId")
	}
	if c := compareOrdered(uint64(v.idType), uint64(o.idType)); c != 0 {
		return c, nil
	}
	if c := compareOrdered(uint64(v.ns), uint64(o.ns)); c != 0 {
		return c, nil
	}
	switch v.idType {
	case IdentifierNumeric:
		return compareOrdered(uint64(v.numeric), uint64(o.numeric)), nil
	case IdentifierString:
		return v.str.compare(&o.str.byteSequence), nil
	case IdentifierGuid:
		c, err := v.guid.CompareTo(&o.guid)
		return c, err
	case IdentifierByteString:
		return v.bstr.compare(&o.bstr.byteSequence), nil
	}
	return 0, nil
}

// selectForm picks the space-optimal numeric wire form, or the structured
// form for non-numeric identifiers.
func (v *NodeId) selectForm() byte {
	switch v.idType {
	case IdentifierString:
		return formString
	case IdentifierGuid:
		return formGuid
	case IdentifierByteString:
		return formByteString
	}
	switch {
	case v.ns == 0 && v.numeric <= 0xFF:
		return formTwoByte
	case v.ns <= 0xFF && v.numeric <= 0xFFFF:
		return formFourByte
	default:
		return formNumeric
	}
}

func (v *NodeId) Encode(w *codec.Writer) error {
	form := v.selectForm()
	if err := w.WriteByte(form); err != nil {
		return err
	}
	return v.encodePayload(w, form)
}

func (v *NodeId) encodePayload(w *codec.Writer, form byte) error {
	switch form {
	case formTwoByte:
		return w.WriteByte(byte(v.numeric))
	case formFourByte:
		if err := w.WriteByte(byte(v.ns)); err != nil {
			return err
		}
		return w.WriteUInt16(uint16(v.numeric))
	case formNumeric:
		if err := w.WriteUInt16(v.ns); err != nil {
			return err
		}
		return w.WriteUInt32(v.numeric)
	case formString:
		if err := w.WriteUInt16(v.ns); err != nil {
			return err
		}
		return v.str.Encode(w)
	case formGuid:
		if err := w.WriteUInt16(v.ns); err != nil {
			return err
		}
		return v.guid.Encode(w)
	case formByteString:
		if err := w.WriteUInt16(v.ns); err != nil {
			return err
		}
		return v.bstr.Encode(w)
	default:
		return status.New(status.EncodingError, "unknown NodeId form 0x%02X", form)
	}
}

func (v *NodeId) Decode(r *codec.Reader) error {
	b, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	if err := v.decodePayload(r, b&formMask); err != nil {
		v.Clear()
		return err
	}
	return nil
}

func (v *NodeId) decodePayload(r *codec.Reader, form byte) error {
	switch form {
	case formTwoByte:
		id, err := r.ReadByte()
		if err != nil {
			return err
		}
		v.ns, v.idType, v.numeric = 0, IdentifierNumeric, uint32(id)
	case formFourByte:
		ns, err := r.ReadByte()
		if err != nil {
			return err
		}
		id, err := r.ReadUInt16()
		if err != nil {
			return err
		}
		v.ns, v.idType, v.numeric = uint16(ns), IdentifierNumeric, uint32(id)
	case formNumeric:
		ns, err := r.ReadUInt16()
		if err != nil {
			return err
		}
		id, err := r.ReadUInt32()
		if err != nil {
			return err
		}
		v.ns, v.idType, v.numeric = ns, IdentifierNumeric, id
	case formString:
		ns, err := r.ReadUInt16()
		if err != nil {
			return err
		}
		var s String
		if err := s.Decode(r); err != nil {
			return err
		}
		v.ns, v.idType, v.str = ns, IdentifierString, s
	case formGuid:
		ns, err := r.ReadUInt16()
		if err != nil {
			return err
		}
		var g Guid
		if err := g.Decode(r); err != nil {
			return err
		}
		v.ns, v.idType, v.guid = ns, IdentifierGuid, g
	case formByteString:
		ns, err := r.ReadUInt16()
		if err != nil {
			return err
		}
		var bs ByteString
		if err := bs.Decode(r); err != nil {
			return err
		}
		v.ns, v.idType, v.bstr = ns, IdentifierByteString, bs
	default:
		return status.New(status.EncodingError, "unknown NodeId form 0x%02X", form)
	}
	return nil
}

// String renders the canonical ns=<u16>;<i|s|g|b>=<identifier> form; the
// ns=<u16>; prefix is omitted for namespace 0.
func (v NodeId) String() string {
	prefix := ""
	if v.ns != 0 {
		prefix = fmt.Sprintf("ns=%d;", v.ns)
	}
	switch v.idType {
	case IdentifierNumeric:
		return fmt.Sprintf("%si=%d", prefix, v.numeric)
	case IdentifierString:
		return fmt.Sprintf("%ss=%s", prefix, v.str.Value())
	case IdentifierGuid:
		return fmt.Sprintf("%sg=%s", prefix, v.guid.String())
	case IdentifierByteString:
		return fmt.Sprintf("%sb=%s", prefix, string(v.bstr.Bytes()))
	}
	return prefix
}

// ParseNodeId parses the canonical ns=<u16>;<i|s|g|b>=<identifier> form.
// Absent "ns=" means namespace 0.
func ParseNodeId(s string) (NodeId, error) {
	var ns uint16
	rest := s
	if strings.HasPrefix(s, "ns=") {
		parts := strings.SplitN(s, ";", 2)
		if len(parts) != 2 {
			return NodeId{}, status.New(status.InvalidParameters, "malformed NodeId %q", s)
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(parts[0], "ns="), 10, 16)
		if err != nil {
			return NodeId{}, status.New(status.InvalidParameters, "malformed namespace in %q: %v", s, err)
		}
		ns = uint16(n)
		rest = parts[1]
	}
	if len(rest) < 2 || rest[1] != '=' {
		return NodeId{}, status.New(status.InvalidParameters, "malformed identifier in %q", s)
	}
	kind, ident := rest[0], rest[2:]
	switch kind {
	case 'i':
		n, err := strconv.ParseUint(ident, 10, 32)
		if err != nil {
			return NodeId{}, status.New(status.InvalidParameters, "malformed numeric identifier in %q: %v", s, err)
		}
		return NewNumericNodeId(ns, uint32(n)), nil
	case 's':
		return NewStringNodeId(ns, ident), nil
	case 'g':
		g, err := ParseGuid(ident)
		if err != nil {
			return NodeId{}, err
		}
		return NewGuidNodeId(ns, g), nil
	case 'b':
		return NewByteStringNodeId(ns, []byte(ident)), nil
	default:
		return NodeId{}, status.New(status.InvalidParameters, "unknown identifier kind %q in %q", string(kind), s)
	}
}

func init() {
	register(TypeNodeId, "NodeId", 24, func() Value { return new(NodeId) })
}
