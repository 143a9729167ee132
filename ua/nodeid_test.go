package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func nodeIdTestLimits() config.Limits {
	l := config.Default()
	l.MaxStringLength = 64
	return l
}

func TestNodeIdTwoByteForm(t *testing.T) {
	n := NewNumericNodeId(0, 42)
	w := codec.NewWriter(nodeIdTestLimits())
	require.NoError(t, n.Encode(w))
	require.Equal(t, []byte{0x00, 0x2A}, w.Bytes())

	r := codec.NewReader(w.Bytes(), nodeIdTestLimits())
	var out NodeId
	require.NoError(t, out.Decode(r))
	require.Equal(t, n, out)
}

func TestNodeIdFourByteForm(t *testing.T) {
	n := NewNumericNodeId(5, 1025)
	w := codec.NewWriter(nodeIdTestLimits())
	require.NoError(t, n.Encode(w))
	require.Equal(t, []byte{0x01, 0x05, 0x01, 0x04}, w.Bytes())

	r := codec.NewReader(w.Bytes(), nodeIdTestLimits())
	var out NodeId
	require.NoError(t, out.Decode(r))
	require.Equal(t, n, out)
}

func TestNodeIdNumericFormWhenOutOfRange(t *testing.T) {
	n := NewNumericNodeId(300, 70000)
	w := codec.NewWriter(nodeIdTestLimits())
	require.NoError(t, n.Encode(w))
	require.Equal(t, byte(formNumeric), w.Bytes()[0])

	r := codec.NewReader(w.Bytes(), nodeIdTestLimits())
	var out NodeId
	require.NoError(t, out.Decode(r))
	require.Equal(t, n, out)
}

func TestNodeIdStringRoundTrip(t *testing.T) {
	n := NewStringNodeId(2, "Temperature")
	w := codec.NewWriter(nodeIdTestLimits())
	require.NoError(t, n.Encode(w))
	require.Equal(t, byte(formString), w.Bytes()[0])

	r := codec.NewReader(w.Bytes(), nodeIdTestLimits())
	var out NodeId
	require.NoError(t, out.Decode(r))
	require.Equal(t, "Temperature", out.StringID())
	require.Equal(t, uint16(2), out.Namespace())
}

func TestNodeIdIsNull(t *testing.T) {
	require.True(t, NewNumericNodeId(0, 0).IsNull())
	require.False(t, NewNumericNodeId(0, 1).IsNull())
	require.False(t, NewNumericNodeId(1, 0).IsNull())
}

func TestNodeIdStringFormatAndParse(t *testing.T) {
	n := NewNumericNodeId(5, 1025)
	require.Equal(t, "ns=5;i=1025", n.String())

	parsed, err := ParseNodeId("ns=5;i=1025")
	require.NoError(t, err)
	require.Equal(t, n, parsed)

	n2 := NewNumericNodeId(0, 42)
	require.Equal(t, "i=42", n2.String())
	parsed2, err := ParseNodeId("i=42")
	require.NoError(t, err)
	require.Equal(t, n2, parsed2)
}

func TestNodeIdCompareToOrdersByIdentifierTypeThenNamespaceThenValue(t *testing.T) {
	a := NewNumericNodeId(0, 1)
	b := NewNumericNodeId(0, 2)
	c, err := (&a).CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c)
}
