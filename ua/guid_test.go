package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func TestGuidParseStringRoundTrip(t *testing.T) {
	g, err := ParseGuid("72962b91-fa75-4ae6-8d28-b404dc7daf63")
	require.NoError(t, err)
	require.Equal(t, "72962b91-fa75-4ae6-8d28-b404dc7daf63", g.String())
}

func TestGuidWireRoundTrip(t *testing.T) {
	l := config.Default()
	src, err := ParseGuid("00000001-0002-0003-0405-060708090a0b")
	require.NoError(t, err)

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	// Data1/Data2/Data3 are little-endian on the wire; Data4 is raw bytes.
	require.Equal(t, []byte{
		0x01, 0x00, 0x00, 0x00, // Data1 = 0x00000001, little-endian
		0x02, 0x00, // Data2 = 0x0002, little-endian
		0x03, 0x00, // Data3 = 0x0003, little-endian
		0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, // Data4, raw
	}, w.Bytes())

	var out Guid
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))
	require.Equal(t, src.String(), out.String())
}

func TestGuidCompareToOrdersByFieldThenData4(t *testing.T) {
	a, err := ParseGuid("00000001-0000-0000-0000-000000000000")
	require.NoError(t, err)
	b, err := ParseGuid("00000002-0000-0000-0000-000000000000")
	require.NoError(t, err)

	c, err := a.CompareTo(&b)
	require.NoError(t, err)
	require.Equal(t, -1, c)
}

func TestGuidInvalidStringFails(t *testing.T) {
	_, err := ParseGuid("not-a-guid")
	require.Error(t, err)
}
