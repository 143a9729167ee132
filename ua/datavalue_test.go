package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestDataValueCompareToOrdersByStatusFirst exercises spec §4.2's
// lexicographic order: status outranks every timestamp and the value
// itself, so a DataValue with a lower value but a higher status still
// compares greater.
func TestDataValueCompareToOrdersByStatusFirst(t *testing.T) {
	var a, b DataValue
	a.Init()
	b.Init()

	i1, i2 := Int32(1), Int32(99)
	a.SetValue(NewVariantScalar(TypeInt32, &i1))
	b.SetValue(NewVariantScalar(TypeInt32, &i2))
	a.SetStatus(StatusCode(1))
	b.SetStatus(StatusCode(0))

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, 1, c, "higher status must outrank a lower value")
}

// TestDataValueCompareToFallsThroughInOrder verifies that when status,
// server timestamp, and server picoseconds are all equal, source timestamp
// breaks the tie before source picoseconds or value are consulted.
func TestDataValueCompareToFallsThroughInOrder(t *testing.T) {
	var a, b DataValue
	a.Init()
	b.Init()
	a.SetStatus(StatusCode(5))
	b.SetStatus(StatusCode(5))
	a.SetServerTimestamp(DateTime(100))
	b.SetServerTimestamp(DateTime(100))
	a.SetSourceTimestamp(DateTime(1))
	b.SetSourceTimestamp(DateTime(2))

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

// TestDataValueCompareToAbsentFieldSortsBeforePresent checks that an unset
// optional field (e.g. no status set at all) sorts before any present
// value of that same field.
func TestDataValueCompareToAbsentFieldSortsBeforePresent(t *testing.T) {
	var a, b DataValue
	a.Init()
	b.Init()
	b.SetStatus(StatusCode(0))

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestDataValueCompareToEqualWhenAllFieldsMatch(t *testing.T) {
	var a, b DataValue
	a.Init()
	b.Init()
	i := Int32(42)
	j := Int32(42)
	a.SetValue(NewVariantScalar(TypeInt32, &i))
	b.SetValue(NewVariantScalar(TypeInt32, &j))
	a.SetStatus(StatusCode(0))
	b.SetStatus(StatusCode(0))

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, 0, c)
}
