package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// Value is the uniform per-built-in-type vtable every scalar, String,
// Guid, NodeId, Variant, DataValue, DiagnosticInfo, LocalizedText, and
// ExtensionObject implements, so that the codec and the EncodeableType
// engine can treat built-ins polymorphically.
type Value interface {
	// Init writes the type's zero state into the receiver.
	Init()
	// Clear releases any owned resources and returns the receiver to its
	// zero state. Clear is re-entrant: calling it twice is safe.
	Clear()
	// CopyTo deep-copies the receiver into dst, which must already be
	// initialized. On failure dst is cleared.
	CopyTo(dst Value) error
	// CompareTo returns -1/0/+1 following the type's ordering, or an error
	// if other is not comparable to the receiver's concrete type.
	CompareTo(other Value) (int, error)
	// Encode writes the receiver's wire form.
	Encode(w *codec.Writer) error
	// Decode reads the receiver's wire form. On partial failure the
	// receiver is left cleared.
	Decode(r *codec.Reader) error
}

// vtableEntry is the per-type registry row: everything needed to treat a
// built-in id polymorphically without a type switch at every call site.
type vtableEntry struct {
	Name string
	// Size is the in-memory cell size hint carried over from the C
	// ancestor's allocation-sizing role; Go's GC makes it non-load-bearing,
	// and only SizeOf reads it.
	Size uint32
	New  func() Value
}

var registry [typeIDCount]vtableEntry

func register(id TypeID, name string, size uint32, newFn func() Value) {
	registry[id] = vtableEntry{Name: name, Size: size, New: newFn}
}

// New constructs a freshly-initialized Value for id, or nil if id is out of
// range or not a registered built-in. For TypeNull it returns the no-op
// Null value.
func New(id TypeID) Value {
	if !id.IsValid() || registry[id].New == nil {
		return nil
	}
	v := registry[id].New()
	v.Init()
	return v
}

// SizeOf returns the registered in-memory cell size hint for id.
func SizeOf(id TypeID) uint32 {
	if !id.IsValid() {
		return 0
	}
	return registry[id].Size
}

// NameOf returns the registered display name for id.
func NameOf(id TypeID) string {
	if !id.IsValid() {
		return "Unknown"
	}
	if registry[id].Name != "" {
		return registry[id].Name
	}
	return id.String()
}

// EncodeBuiltin dispatches to the per-type vtable for id, encoding v's wire form.
func EncodeBuiltin(w *codec.Writer, id TypeID, v Value) error {
	if id == TypeNull || v == nil {
		return nil
	}
	return v.Encode(w)
}

// DecodeBuiltin constructs and decodes a fresh Value for id.
func DecodeBuiltin(r *codec.Reader, id TypeID) (Value, error) {
	if id == TypeNull {
		return nil, nil
	}
	v := New(id)
	if v == nil {
		return nil, status.New(status.InvalidParameters, "unregistered built-in type id %d", id)
	}
	if err := v.Decode(r); err != nil {
		v.Clear()
		return nil, err
	}
	return v, nil
}

// nullValue implements Value as the no-op vtable for TypeNull: Init,
// Clear, CopyTo, and Encode/Decode are no-ops, and CompareTo only
// succeeds (as equal) against another Null.
type nullValue struct{}

func (nullValue) Init()  {}
func (nullValue) Clear() {}

func (nullValue) CopyTo(Value) error { return nil }

func (nullValue) CompareTo(other Value) (int, error) {
	if _, ok := other.(nullValue); ok {
		return 0, nil
	}
	return 0, status.New(status.InvalidParameters, "cannot compare Null to %T", other)
}

func (nullValue) Encode(*codec.Writer) error { return nil }
func (nullValue) Decode(*codec.Reader) error { return nil }

func init() {
	register(TypeNull, "Null", 0, func() Value { return nullValue{} })
}
