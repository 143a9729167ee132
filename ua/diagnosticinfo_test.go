package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func diagnosticInfoTestLimits() config.Limits {
	l := config.Default()
	l.MaxNestedDiagInfo = 4
	return l
}

func TestDiagnosticInfoRoundTripWithInnerChain(t *testing.T) {
	l := diagnosticInfoTestLimits()
	var src DiagnosticInfo
	src.Init()
	src.SetSymbolicId(1)
	src.SetAdditionalInfo("outer")

	var inner DiagnosticInfo
	inner.Init()
	inner.SetSymbolicId(2)
	inner.SetAdditionalInfo("inner")
	src.InnerDiagnosticInfo = &inner

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out DiagnosticInfo
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))

	require.Equal(t, int32(1), int32(out.SymbolicId))
	require.NotNil(t, out.InnerDiagnosticInfo)
	require.Equal(t, int32(2), int32(out.InnerDiagnosticInfo.SymbolicId))
	require.Equal(t, "inner", out.InnerDiagnosticInfo.AdditionalInfo.Value())
}

// TestDiagnosticInfoCompareToRecursesIntoInnerChain verifies spec §4.1:
// two DiagnosticInfo values with identical top-level fields but differing
// only in their inner chain must not compare equal.
func TestDiagnosticInfoCompareToRecursesIntoInnerChain(t *testing.T) {
	var a, b DiagnosticInfo
	a.Init()
	b.Init()
	a.SetSymbolicId(1)
	b.SetSymbolicId(1)

	var innerA, innerB DiagnosticInfo
	innerA.Init()
	innerB.Init()
	innerA.SetSymbolicId(5)
	innerB.SetSymbolicId(6)
	a.InnerDiagnosticInfo = &innerA
	b.InnerDiagnosticInfo = &innerB

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestDiagnosticInfoCompareToNilInnerSortsBeforePresent(t *testing.T) {
	var a, b DiagnosticInfo
	a.Init()
	b.Init()
	a.SetSymbolicId(1)
	b.SetSymbolicId(1)

	var innerB DiagnosticInfo
	innerB.Init()
	b.InnerDiagnosticInfo = &innerB

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestDiagnosticInfoCompareToOrdersBySymbolicIdFirst(t *testing.T) {
	var a, b DiagnosticInfo
	a.Init()
	b.Init()
	a.SetSymbolicId(1)
	b.SetSymbolicId(2)
	a.SetAdditionalInfo("zzz")
	b.SetAdditionalInfo("aaa")

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c, "SymbolicId must outrank AdditionalInfo")
}

func TestDiagnosticInfoCompareToEqualWhenAllFieldsMatch(t *testing.T) {
	var a, b DiagnosticInfo
	a.Init()
	b.Init()
	a.SetSymbolicId(3)
	b.SetSymbolicId(3)
	a.SetAdditionalInfo("same")
	b.SetAdditionalInfo("same")

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, 0, c)
}
