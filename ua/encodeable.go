package ua

import (
	"reflect"
	"sync"

	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// EncodeableType describes a user-defined structured type the way the
// built-in registry in value.go describes a built-in one: a name, the two
// NodeIds that identify it (its abstract TypeId and its binary encoding
// id), and a constructor. Field layout is not stored: goType records only
// the Go struct type, and EncodeStruct/DecodeStruct/CopyStruct/
// CompareStruct walk the struct's fields by reflection on every call.
type EncodeableType struct {
	Name             string
	TypeId           NodeId
	BinaryEncodingId NodeId
	New              func() Value

	goType reflect.Type
}

// Registry maps a structured type's two NodeId identities, and its Go
// type, to its EncodeableType descriptor.
type Registry struct {
	mu         sync.RWMutex
	byTypeId   map[NodeId]*EncodeableType
	byBinaryId map[NodeId]*EncodeableType
	byGoType   map[reflect.Type]*EncodeableType
}

func NewRegistry() *Registry {
	return &Registry{
		byTypeId:   make(map[NodeId]*EncodeableType),
		byBinaryId: make(map[NodeId]*EncodeableType),
		byGoType:   make(map[reflect.Type]*EncodeableType),
	}
}

// DefaultRegistry is the process-wide registry consulted by ExtensionObject
// decoding and by EncodeStruct/DecodeStruct.
var DefaultRegistry = NewRegistry()

func (r *Registry) Register(desc *EncodeableType) error {
	if desc.New == nil {
		return status.New(status.InvalidParameters, "Register: nil constructor for %s", desc.Name)
	}
	sample := desc.New()
	rv := reflect.ValueOf(sample)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return status.New(status.InvalidParameters, "Register: %s constructor must return a pointer to struct", desc.Name)
	}
	desc.goType = rv.Elem().Type()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byTypeId[desc.TypeId]; exists {
		return status.New(status.InvalidParameters, "Register: %s: TypeId already registered", desc.Name)
	}
	if _, exists := r.byBinaryId[desc.BinaryEncodingId]; exists {
		return status.New(status.InvalidParameters, "Register: %s: BinaryEncodingId already registered", desc.Name)
	}
	if _, exists := r.byGoType[desc.goType]; exists {
		return status.New(status.InvalidParameters, "Register: %s: Go type already registered", desc.Name)
	}
	r.byTypeId[desc.TypeId] = desc
	r.byBinaryId[desc.BinaryEncodingId] = desc
	r.byGoType[desc.goType] = desc
	return nil
}

func (r *Registry) Unregister(typeId NodeId) {
	r.mu.Lock()
	defer r.mu.Unlock()
	desc, ok := r.byTypeId[typeId]
	if !ok {
		return
	}
	delete(r.byTypeId, typeId)
	delete(r.byBinaryId, desc.BinaryEncodingId)
	delete(r.byGoType, desc.goType)
}

func (r *Registry) GetEncodeableType(typeId NodeId) (*EncodeableType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.byTypeId[typeId]
	return desc, ok
}

func (r *Registry) GetByBinaryEncodingId(id NodeId) (*EncodeableType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.byBinaryId[id]
	return desc, ok
}

func (r *Registry) descriptorFor(v Value) (*EncodeableType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return nil, false
	}
	desc, ok := r.byGoType[rv.Elem().Type()]
	return desc, ok
}

func lookupEncodeableByBinaryID(id NodeId) (func() Value, bool) {
	desc, ok := DefaultRegistry.GetByBinaryEncodingId(id)
	if !ok {
		return nil, false
	}
	return desc.New, true
}

func cloneRegisteredValue(v Value) Value {
	desc, ok := DefaultRegistry.descriptorFor(v)
	if !ok {
		return nil
	}
	return desc.New()
}

// structField pairs a field's Value vtable with its isToEncode bit (spec
// §3 field descriptor): a field tagged `opcua:"noencode"` is still walked
// by init/clear/copy/compare but skipped by encode/decode.
type structField struct {
	value    Value
	toEncode bool
}

// EncodeStruct encodes every isToEncode field of v (which must be a
// pointer to struct) that itself implements Value, in declaration order,
// inside a struct-nesting guard. Fields that do not implement Value (plain
// bool flags, unexported bookkeeping) are skipped entirely; fields tagged
// `opcua:"noencode"` are skipped here but still reached by CopyStruct/
// CompareStruct.
func EncodeStruct(w *codec.Writer, v Value) error {
	fields, err := structFields(v)
	if err != nil {
		return err
	}
	if err := w.EnterStruct(); err != nil {
		return err
	}
	defer w.LeaveStruct()
	for _, f := range fields {
		if !f.toEncode {
			continue
		}
		if err := f.value.Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// DecodeStruct mirrors EncodeStruct.
func DecodeStruct(r *codec.Reader, v Value) error {
	fields, err := structFields(v)
	if err != nil {
		return err
	}
	if err := r.EnterStruct(); err != nil {
		return err
	}
	defer r.LeaveStruct()
	for _, f := range fields {
		if !f.toEncode {
			continue
		}
		if err := f.value.Decode(r); err != nil {
			return err
		}
	}
	return nil
}

// CompareStruct orders two values of the same registered type
// lexicographically by field, including isToEncode=false fields: they are
// in-memory state like any other and spec §4.4 only exempts them from the
// wire, not from compare.
func CompareStruct(a, b Value) (int, error) {
	af, err := structFields(a)
	if err != nil {
		return 0, err
	}
	bf, err := structFields(b)
	if err != nil {
		return 0, err
	}
	if len(af) != len(bf) {
		return 0, status.New(status.InvalidParameters, "CompareStruct: field count mismatch")
	}
	for i := range af {
		c, err := af[i].value.CompareTo(bf[i].value)
		if err != nil {
			return 0, err
		}
		if c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// CopyStruct deep-copies every Value field from src to dst, including
// isToEncode=false fields.
func CopyStruct(src, dst Value) error {
	sf, err := structFields(src)
	if err != nil {
		return err
	}
	df, err := structFields(dst)
	if err != nil {
		return err
	}
	if len(sf) != len(df) {
		return status.New(status.InvalidParameters, "CopyStruct: field count mismatch")
	}
	for i := range sf {
		if err := sf[i].value.CopyTo(df[i].value); err != nil {
			return err
		}
	}
	return nil
}

func structFields(v Value) ([]structField, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return nil, status.New(status.InvalidParameters, "structFields: not a pointer to struct")
	}
	elem := rv.Elem()
	var out []structField
	for i := 0; i < elem.NumField(); i++ {
		sf := elem.Type().Field(i)
		if !sf.IsExported() {
			continue
		}
		f := elem.Field(i)
		if !f.CanAddr() {
			continue
		}
		if fv, ok := f.Addr().Interface().(Value); ok {
			out = append(out, structField{value: fv, toEncode: sf.Tag.Get("opcua") != "noencode"})
		}
	}
	return out, nil
}
