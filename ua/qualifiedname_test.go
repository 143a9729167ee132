package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func TestQualifiedNameRoundTrip(t *testing.T) {
	l := config.Default()
	src := NewQualifiedName(3, "Temperature")

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out QualifiedName
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))

	require.Equal(t, uint16(3), out.NamespaceIndex)
	require.Equal(t, "Temperature", out.Name.Value())
}

func TestQualifiedNameCompareToOrdersByNamespaceThenName(t *testing.T) {
	a := NewQualifiedName(1, "b")
	b := NewQualifiedName(2, "a")
	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c)

	x := NewQualifiedName(1, "a")
	y := NewQualifiedName(1, "b")
	c, err = x.CompareTo(&y)
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestQualifiedNameCopyToIsIndependent(t *testing.T) {
	src := NewQualifiedName(5, "Pressure")
	var dst QualifiedName
	dst.Init()
	require.NoError(t, src.CopyTo(&dst))

	dst.Name = NewString("changed")
	require.Equal(t, "Pressure", src.Name.Value())
}
