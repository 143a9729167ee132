package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// QualifiedName pairs a namespace index with a name String, used wherever
// OPC UA needs a browse-path-safe identifier.
type QualifiedName struct {
	NamespaceIndex uint16
	Name           String
}

func NewQualifiedName(ns uint16, name string) QualifiedName {
	return QualifiedName{NamespaceIndex: ns, Name: NewString(name)}
}

func (v *QualifiedName) Init() {
	v.NamespaceIndex = 0
	v.Name.Init()
}
func (v *QualifiedName) Clear() {
	v.NamespaceIndex = 0
	v.Name.Clear()
}

func (v *QualifiedName) CopyTo(dst Value) error {
	d, ok := dst.(*QualifiedName)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *QualifiedName")
	}
	d.NamespaceIndex = v.NamespaceIndex
	return v.Name.CopyTo(&d.Name)
}

func (v *QualifiedName) CompareTo(other Value) (int, error) {
	o, ok := other.(*QualifiedName)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *QualifiedName")
	}
	if c := compareOrdered(uint64(v.NamespaceIndex), uint64(o.NamespaceIndex)); c != 0 {
		return c, nil
	}
	return v.Name.compare(&o.Name.byteSequence), nil
}

func (v *QualifiedName) Encode(w *codec.Writer) error {
	if err := w.WriteUInt16(v.NamespaceIndex); err != nil {
		return err
	}
	return v.Name.Encode(w)
}

func (v *QualifiedName) Decode(r *codec.Reader) error {
	ns, err := r.ReadUInt16()
	if err != nil {
		v.Clear()
		return err
	}
	var name String
	if err := name.Decode(r); err != nil {
		v.Clear()
		return err
	}
	v.NamespaceIndex = ns
	v.Name = name
	return nil
}

func init() {
	register(TypeQualifiedName, "QualifiedName", 18, func() Value { return new(QualifiedName) })
}
