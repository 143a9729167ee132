package ua

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func TestScalarBuiltinRoundTrip(t *testing.T) {
	l := config.Default()

	boolIn, boolOut := Boolean(true), new(Boolean)
	sbyteIn, sbyteOut := SByte(-12), new(SByte)
	byteIn, byteOut := Byte(200), new(Byte)
	i16In, i16Out := Int16(-1000), new(Int16)
	u16In, u16Out := UInt16(60000), new(UInt16)
	i32In, i32Out := Int32(-70000), new(Int32)
	u32In, u32Out := UInt32(4000000000), new(UInt32)
	i64In, i64Out := Int64(-5000000000), new(Int64)
	u64In, u64Out := UInt64(18000000000000000000), new(UInt64)
	floatIn, floatOut := Float(3.5), new(Float)
	doubleIn, doubleOut := Double(2.71828), new(Double)

	cases := []struct {
		name string
		in   Value
		out  Value
	}{
		{"Boolean", &boolIn, boolOut},
		{"SByte", &sbyteIn, sbyteOut},
		{"Byte", &byteIn, byteOut},
		{"Int16", &i16In, i16Out},
		{"UInt16", &u16In, u16Out},
		{"Int32", &i32In, i32Out},
		{"UInt32", &u32In, u32Out},
		{"Int64", &i64In, i64Out},
		{"UInt64", &u64In, u64Out},
		{"Float", &floatIn, floatOut},
		{"Double", &doubleIn, doubleOut},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := codec.NewWriter(l)
			require.NoError(t, c.in.Encode(w))

			r := codec.NewReader(w.Bytes(), l)
			require.NoError(t, c.out.Decode(r))

			cmp, err := c.in.CompareTo(c.out)
			require.NoError(t, err)
			require.Equal(t, 0, cmp)
		})
	}
}

func TestScalarRegistryConstructsZeroValue(t *testing.T) {
	v := New(TypeInt32)
	require.NotNil(t, v)
	i, ok := v.(*Int32)
	require.True(t, ok)
	require.Equal(t, Int32(0), *i)
}

func TestDoubleNaNSurvivesRoundTrip(t *testing.T) {
	l := config.Default()
	w := codec.NewWriter(l)
	require.NoError(t, w.WriteDouble(math.NaN()))

	r := codec.NewReader(w.Bytes(), l)
	got, err := r.ReadDouble()
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
}
