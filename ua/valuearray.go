package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// ValueArray is a generic array-of-Value field for use inside a registered
// EncodeableType struct (C4, spec §4.4/invariant 1): every array field in
// the field-descriptor model is an Int32 length immediately followed by a
// same-typed payload descriptor. A Go slice already carries its own length,
// so the two collapse into this one field here; New supplies the element
// constructor the isArrayLength/typeIndex pair would otherwise select.
//
// A struct embedding a ValueArray must set New in its Init method, e.g.:
//
//	func (v *Reading) Init() { v.Tags.New = func() Value { return new(String) } }
type ValueArray struct {
	New   func() Value
	Elems []Value
}

func (a *ValueArray) Init() { a.Elems = nil }

func (a *ValueArray) Clear() {
	for _, e := range a.Elems {
		if e != nil {
			e.Clear()
		}
	}
	a.Elems = nil
}

func (a *ValueArray) CopyTo(dst Value) error {
	d, ok := dst.(*ValueArray)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *ValueArray")
	}
	if d.New == nil {
		d.New = a.New
	}
	if a.Elems == nil {
		d.Elems = nil
		return nil
	}
	if d.New == nil {
		return status.New(status.InvalidParameters, "CopyTo: dst ValueArray has no element constructor")
	}
	out := make([]Value, len(a.Elems))
	for i, e := range a.Elems {
		cp := d.New()
		cp.Init()
		if e != nil {
			if err := e.CopyTo(cp); err != nil {
				return err
			}
		}
		out[i] = cp
	}
	d.Elems = out
	return nil
}

func (a *ValueArray) CompareTo(other Value) (int, error) {
	o, ok := other.(*ValueArray)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *ValueArray")
	}
	if c := compareOrdered(uint64(len(a.Elems)), uint64(len(o.Elems))); c != 0 {
		return c, nil
	}
	for i := range a.Elems {
		c, err := a.Elems[i].CompareTo(o.Elems[i])
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

func (a *ValueArray) Encode(w *codec.Writer) error {
	if err := w.WriteArrayLen(len(a.Elems)); err != nil {
		return err
	}
	for _, e := range a.Elems {
		if err := e.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (a *ValueArray) Decode(r *codec.Reader) error {
	if a.New == nil {
		return status.New(status.InvalidParameters, "Decode: ValueArray has no element constructor")
	}
	n, err := r.ReadArrayLen(r.Limits().MaxArrayLength)
	if err != nil {
		a.Clear()
		return err
	}
	elems := make([]Value, n)
	for i := 0; i < n; i++ {
		e := a.New()
		e.Init()
		if err := e.Decode(r); err != nil {
			a.Clear()
			return err
		}
		elems[i] = e
	}
	a.Elems = elems
	return nil
}
