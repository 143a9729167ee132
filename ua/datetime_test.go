package ua

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
)

func TestDateTimeRoundTripThroughTime(t *testing.T) {
	want := time.Date(2024, 3, 15, 12, 30, 45, 0, time.UTC)
	dt := NewDateTime(want)
	require.True(t, dt.Time().Equal(want))
}

func TestDateTimeWireRoundTrip(t *testing.T) {
	l := config.Default()
	src := NewDateTime(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	w := codec.NewWriter(l)
	require.NoError(t, src.Encode(w))

	var out DateTime
	r := codec.NewReader(w.Bytes(), l)
	require.NoError(t, out.Decode(r))
	require.Equal(t, src, out)
}

func TestDateTimeZeroIsEpoch(t *testing.T) {
	var dt DateTime
	dt.Init()
	require.True(t, dt.Time().Equal(opcUAEpoch))
}
