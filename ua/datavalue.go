package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

const (
	dataValueValueFlag             byte = 0x01
	dataValueStatusFlag            byte = 0x02
	dataValueSourceTimestampFlag   byte = 0x04
	dataValueServerTimestampFlag   byte = 0x08
	dataValueSourcePicosecondsFlag byte = 0x10
	dataValueServerPicosecondsFlag byte = 0x20
)

// DataValue wraps a Variant with the five optional metadata fields OPC UA
// attaches to a read/write/subscription result: a StatusCode and a
// (timestamp, picosecond remainder) pair for both source and server.
type DataValue struct {
	Value             Variant
	hasValue          bool
	Status            StatusCode
	hasStatus         bool
	SourceTimestamp   DateTime
	hasSourceTS       bool
	ServerTimestamp   DateTime
	hasServerTS       bool
	SourcePicoseconds UInt16
	hasSourcePicos    bool
	ServerPicoseconds UInt16
	hasServerPicos    bool
}

func (v *DataValue) SetValue(val Variant)          { v.Value, v.hasValue = val, true }
func (v *DataValue) SetStatus(s StatusCode)        { v.Status, v.hasStatus = s, true }
func (v *DataValue) SetSourceTimestamp(t DateTime) { v.SourceTimestamp, v.hasSourceTS = t, true }
func (v *DataValue) SetServerTimestamp(t DateTime) { v.ServerTimestamp, v.hasServerTS = t, true }
func (v *DataValue) SetSourcePicoseconds(p UInt16) { v.SourcePicoseconds, v.hasSourcePicos = p, true }
func (v *DataValue) SetServerPicoseconds(p UInt16) { v.ServerPicoseconds, v.hasServerPicos = p, true }

func (v *DataValue) Init()  { *v = DataValue{} }
func (v *DataValue) Clear() { *v = DataValue{} }

func (v *DataValue) CopyTo(dst Value) error {
	d, ok := dst.(*DataValue)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *DataValue")
	}
	*d = DataValue{}
	if v.hasValue {
		if err := v.Value.CopyTo(&d.Value); err != nil {
			return err
		}
		d.hasValue = true
	}
	d.Status, d.hasStatus = v.Status, v.hasStatus
	d.SourceTimestamp, d.hasSourceTS = v.SourceTimestamp, v.hasSourceTS
	d.ServerTimestamp, d.hasServerTS = v.ServerTimestamp, v.hasServerTS
	d.SourcePicoseconds, d.hasSourcePicos = v.SourcePicoseconds, v.hasSourcePicos
	d.ServerPicoseconds, d.hasServerPicos = v.ServerPicoseconds, v.hasServerPicos
	return nil
}

// CompareTo orders lexicographically by (status, server timestamp, server
// picoseconds, source timestamp, source picoseconds, value), per spec §4.2.
// An absent field compares as less than any present value of the same
// field, matching the absent-sorts-first convention used elsewhere (e.g.
// String's null-before-any-value ordering).
func (v *DataValue) CompareTo(other Value) (int, error) {
	o, ok := other.(*DataValue)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *DataValue")
	}
	if c := compareBool(v.hasStatus, o.hasStatus); c != 0 {
		return c, nil
	}
	if v.hasStatus {
		if c := compareOrdered(uint64(v.Status), uint64(o.Status)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasServerTS, o.hasServerTS); c != 0 {
		return c, nil
	}
	if v.hasServerTS {
		if c := compareOrdered(int64(v.ServerTimestamp), int64(o.ServerTimestamp)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasServerPicos, o.hasServerPicos); c != 0 {
		return c, nil
	}
	if v.hasServerPicos {
		if c := compareOrdered(uint64(v.ServerPicoseconds), uint64(o.ServerPicoseconds)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasSourceTS, o.hasSourceTS); c != 0 {
		return c, nil
	}
	if v.hasSourceTS {
		if c := compareOrdered(int64(v.SourceTimestamp), int64(o.SourceTimestamp)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasSourcePicos, o.hasSourcePicos); c != 0 {
		return c, nil
	}
	if v.hasSourcePicos {
		if c := compareOrdered(uint64(v.SourcePicoseconds), uint64(o.SourcePicoseconds)); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasValue, o.hasValue); c != 0 {
		return c, nil
	}
	if v.hasValue {
		return v.Value.CompareTo(&o.Value)
	}
	return 0, nil
}

func (v *DataValue) mask() byte {
	var m byte
	if v.hasValue {
		m |= dataValueValueFlag
	}
	if v.hasStatus {
		m |= dataValueStatusFlag
	}
	if v.hasSourceTS {
		m |= dataValueSourceTimestampFlag
	}
	if v.hasServerTS {
		m |= dataValueServerTimestampFlag
	}
	if v.hasSourcePicos {
		m |= dataValueSourcePicosecondsFlag
	}
	if v.hasServerPicos {
		m |= dataValueServerPicosecondsFlag
	}
	return m
}

func (v *DataValue) Encode(w *codec.Writer) error {
	m := v.mask()
	if err := w.WriteByte(m); err != nil {
		return err
	}
	if m&dataValueValueFlag != 0 {
		if err := v.Value.Encode(w); err != nil {
			return err
		}
	}
	if m&dataValueStatusFlag != 0 {
		if err := v.Status.Encode(w); err != nil {
			return err
		}
	}
	if m&dataValueSourceTimestampFlag != 0 {
		if err := v.SourceTimestamp.Encode(w); err != nil {
			return err
		}
	}
	if m&dataValueServerTimestampFlag != 0 {
		if err := v.ServerTimestamp.Encode(w); err != nil {
			return err
		}
	}
	if m&dataValueSourcePicosecondsFlag != 0 {
		if err := v.SourcePicoseconds.Encode(w); err != nil {
			return err
		}
	}
	if m&dataValueServerPicosecondsFlag != 0 {
		if err := v.ServerPicoseconds.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (v *DataValue) Decode(r *codec.Reader) error {
	m, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	*v = DataValue{}
	if m&dataValueValueFlag != 0 {
		if err := v.Value.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasValue = true
	}
	if m&dataValueStatusFlag != 0 {
		if err := v.Status.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasStatus = true
	}
	if m&dataValueSourceTimestampFlag != 0 {
		if err := v.SourceTimestamp.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasSourceTS = true
	}
	if m&dataValueServerTimestampFlag != 0 {
		if err := v.ServerTimestamp.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasServerTS = true
	}
	if m&dataValueSourcePicosecondsFlag != 0 {
		if err := v.SourcePicoseconds.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasSourcePicos = true
	}
	if m&dataValueServerPicosecondsFlag != 0 {
		if err := v.ServerPicoseconds.Decode(r); err != nil {
			v.Clear()
			return err
		}
		v.hasServerPicos = true
	}
	return nil
}

func init() {
	register(TypeDataValue, "DataValue", 64, func() Value { return new(DataValue) })
}
