package ua

import (
	"encoding/binary"

	"github.com/google/uuid"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// Guid is the OPC UA 128-bit identifier: Data1 (UInt32), Data2 (UInt16),
// Data3 (UInt16) each wire-little-endian, followed by Data4's 8 raw bytes.
// It is backed by google/uuid.UUID, whose 16-byte array is laid out in the
// same field order as the canonical 8-4-4-4-12 string form (and so matches
// Data1..Data4 big-endian within the array); only Data1..Data3 need a
// byte-order flip on the wire.
type Guid struct {
	id uuid.UUID
}

// NewGuid wraps an existing uuid.UUID.
func NewGuid(id uuid.UUID) Guid { return Guid{id: id} }

// ParseGuid parses the canonical 8-4-4-4-12 hex form.
func ParseGuid(s string) (Guid, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return Guid{}, status.New(status.InvalidParameters, "parse guid: %v", err)
	}
	return Guid{id: id}, nil
}

// String renders the canonical 8-4-4-4-12 form.
func (v Guid) String() string { return v.id.String() }

// UUID returns the underlying uuid.UUID.
func (v Guid) UUID() uuid.UUID { return v.id }

func (v *Guid) Init()  { v.id = uuid.UUID{} }
func (v *Guid) Clear() { v.id = uuid.UUID{} }

func (v *Guid) CopyTo(dst Value) error {
	d, ok := dst.(*Guid)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *Guid")
	}
	d.id = v.id
	return nil
}

// CompareTo compares field-by-field, with the Data4 tail compared as raw
// bytes.
func (v *Guid) CompareTo(other Value) (int, error) {
	o, ok := other.(*Guid)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *Guid")
	}
	d1a, d2a, d3a := guidFields(v.id)
	d1b, d2b, d3b := guidFields(o.id)
	if c := compareOrdered(uint64(d1a), uint64(d1b)); c != 0 {
		return c, nil
	}
	if c := compareOrdered(uint64(d2a), uint64(d2b)); c != 0 {
		return c, nil
	}
	if c := compareOrdered(uint64(d3a), uint64(d3b)); c != 0 {
		return c, nil
	}
	return compareBytes(v.id[8:16], o.id[8:16]), nil
}

func guidFields(id uuid.UUID) (uint32, uint16, uint16) {
	return binary.BigEndian.Uint32(id[0:4]), binary.BigEndian.Uint16(id[4:6]), binary.BigEndian.Uint16(id[6:8])
}

func (v *Guid) Encode(w *codec.Writer) error {
	d1, d2, d3 := guidFields(v.id)
	if err := w.WriteUInt32(d1); err != nil {
		return err
	}
	if err := w.WriteUInt16(d2); err != nil {
		return err
	}
	if err := w.WriteUInt16(d3); err != nil {
		return err
	}
	return w.WriteRaw(v.id[8:16])
}

func (v *Guid) Decode(r *codec.Reader) error {
	d1, err := r.ReadUInt32()
	if err != nil {
		v.Clear()
		return err
	}
	d2, err := r.ReadUInt16()
	if err != nil {
		v.Clear()
		return err
	}
	d3, err := r.ReadUInt16()
	if err != nil {
		v.Clear()
		return err
	}
	d4, err := r.ReadRaw(8)
	if err != nil {
		v.Clear()
		return err
	}
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[0:4], d1)
	binary.BigEndian.PutUint16(id[4:6], d2)
	binary.BigEndian.PutUint16(id[6:8], d3)
	copy(id[8:16], d4)
	v.id = id
	return nil
}

func init() {
	register(TypeGuid, "Guid", 16, func() Value { return new(Guid) })
}
