package ua

import (
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/status"
)

// ExpandedNodeId extends NodeId with an optional namespace URI (replacing
// the numeric namespace index when present) and an optional server index,
// each flagged by a bit ORed into the NodeId's own encoding byte.
type ExpandedNodeId struct {
	nodeId       NodeId
	namespaceURI String
	hasURI       bool
	serverIndex  uint32
	hasServer    bool
}

func NewExpandedNodeId(id NodeId) ExpandedNodeId {
	return ExpandedNodeId{nodeId: id}
}

func (v ExpandedNodeId) NodeId() NodeId { return v.nodeId }

func (v ExpandedNodeId) NamespaceURI() (string, bool) {
	if !v.hasURI {
		return "", false
	}
	return v.namespaceURI.Value(), true
}

func (v *ExpandedNodeId) SetNamespaceURI(uri string) {
	v.namespaceURI = NewString(uri)
	v.hasURI = true
}

func (v ExpandedNodeId) ServerIndex() (uint32, bool) {
	if !v.hasServer {
		return 0, false
	}
	return v.serverIndex, true
}

func (v *ExpandedNodeId) SetServerIndex(idx uint32) {
	v.serverIndex = idx
	v.hasServer = true
}

func (v ExpandedNodeId) IsNull() bool {
	return v.nodeId.IsNull() && !v.hasURI && !v.hasServer
}

func (v *ExpandedNodeId) Init()  { *v = ExpandedNodeId{} }
func (v *ExpandedNodeId) Clear() { *v = ExpandedNodeId{} }

func (v *ExpandedNodeId) CopyTo(dst Value) error {
	d, ok := dst.(*ExpandedNodeId)
	if !ok {
		return status.New(status.InvalidParameters, "CopyTo: dst is not *ExpandedNodeId")
	}
	if err := v.nodeId.CopyTo(&d.nodeId); err != nil {
		return err
	}
	_ = v.namespaceURI.CopyTo(&d.namespaceURI)
	d.hasURI = v.hasURI
	d.serverIndex = v.serverIndex
	d.hasServer = v.hasServer
	return nil
}

func (v *ExpandedNodeId) CompareTo(other Value) (int, error) {
	o, ok := other.(*ExpandedNodeId)
	if !ok {
		return 0, status.New(status.InvalidParameters, "CompareTo: other is not *ExpandedNodeId")
	}
	c, err := v.nodeId.CompareTo(&o.nodeId)
	if err != nil || c != 0 {
		return c, err
	}
	if c := compareBool(v.hasURI, o.hasURI); c != 0 {
		return c, nil
	}
	if v.hasURI {
		if c := v.namespaceURI.compare(&o.namespaceURI.byteSequence); c != 0 {
			return c, nil
		}
	}
	if c := compareBool(v.hasServer, o.hasServer); c != 0 {
		return c, nil
	}
	return compareOrdered(uint64(v.serverIndex), uint64(o.serverIndex)), nil
}

func (v *ExpandedNodeId) Encode(w *codec.Writer) error {
	form := v.nodeId.selectForm()
	flags := form
	if v.hasURI {
		flags |= expandedFlagNamespaceURI
	}
	if v.hasServer {
		flags |= expandedFlagServerIndex
	}
	if err := w.WriteByte(flags); err != nil {
		return err
	}
	if err := v.nodeId.encodePayload(w, form); err != nil {
		return err
	}
	if v.hasURI {
		if err := v.namespaceURI.Encode(w); err != nil {
			return err
		}
	}
	if v.hasServer {
		if err := w.WriteUInt32(v.serverIndex); err != nil {
			return err
		}
	}
	return nil
}

func (v *ExpandedNodeId) Decode(r *codec.Reader) error {
	b, err := r.ReadByte()
	if err != nil {
		v.Clear()
		return err
	}
	form := b & formMask
	v.nodeId = NodeId{}
	if err := v.nodeId.decodePayload(r, form); err != nil {
		v.Clear()
		return err
	}
	v.hasURI = b&expandedFlagNamespaceURI != 0
	if v.hasURI {
		if err := v.namespaceURI.Decode(r); err != nil {
			v.Clear()
			return err
		}
	}
	v.hasServer = b&expandedFlagServerIndex != 0
	if v.hasServer {
		idx, err := r.ReadUInt32()
		if err != nil {
			v.Clear()
			return err
		}
		v.serverIndex = idx
	}
	return nil
}

func init() {
	register(TypeExpandedNodeId, "ExpandedNodeId", 32, func() Value { return new(ExpandedNodeId) })
}
