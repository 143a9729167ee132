package ua

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func TestStatusCodeSeverity(t *testing.T) {
	require.True(t, StatusCode(0).IsGood())
	require.False(t, StatusCode(0).IsBad())
	require.False(t, StatusCode(0).IsUncertain())

	uncertain := StatusCode(0x40000000)
	require.True(t, uncertain.IsUncertain())
	require.False(t, uncertain.IsBad())
	require.False(t, uncertain.IsGood())

	bad := StatusCode(0x80010000)
	require.True(t, bad.IsBad())
	require.False(t, bad.IsUncertain())
	require.False(t, bad.IsGood())

	badWithUncertainBit := StatusCode(0xC0000000)
	require.True(t, badWithUncertainBit.IsBad(), "bad bit takes priority over the uncertain bit")
	require.False(t, badWithUncertainBit.IsUncertain())
}

func TestStatusCodeRoundTrip(t *testing.T) {
	l := config.Default()
	src := StatusCode(0x80340000)

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out StatusCode
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))
	require.Equal(t, src, out)
}
