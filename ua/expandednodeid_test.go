package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func TestExpandedNodeIdPlainRoundTrip(t *testing.T) {
	l := config.Default()
	src := NewExpandedNodeId(NewNumericNodeId(1, 42))

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out ExpandedNodeId
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))

	c, err := src.CompareTo(&out)
	require.NoError(t, err)
	require.Equal(t, 0, c)
	_, hasURI := out.NamespaceURI()
	require.False(t, hasURI)
	_, hasServer := out.ServerIndex()
	require.False(t, hasServer)
}

func TestExpandedNodeIdWithURIAndServerIndex(t *testing.T) {
	l := config.Default()
	src := NewExpandedNodeId(NewStringNodeId(2, "widgets"))
	src.SetNamespaceURI("http://example.com/widgets")
	src.SetServerIndex(7)

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out ExpandedNodeId
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))

	uri, ok := out.NamespaceURI()
	require.True(t, ok)
	require.Equal(t, "http://example.com/widgets", uri)

	idx, ok := out.ServerIndex()
	require.True(t, ok)
	require.Equal(t, uint32(7), idx)

	require.Equal(t, src.NodeId().String(), out.NodeId().String())
}

func TestExpandedNodeIdIsNull(t *testing.T) {
	var v ExpandedNodeId
	v.Init()
	require.True(t, v.IsNull())

	v.SetServerIndex(3)
	require.False(t, v.IsNull())
}
