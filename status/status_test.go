package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOfAndIs(t *testing.T) {
	require.Equal(t, OK, Of(nil))

	err := New(InvalidState, "nesting cap reached")
	require.Equal(t, InvalidState, Of(err))
	require.True(t, Is(err, InvalidState))
	require.False(t, Is(err, OutOfMemory))

	require.Equal(t, NotOK, Of(errors.New("plain")))
}

func TestToTCP(t *testing.T) {
	require.Equal(t, BadTcpMessageTooLarge, ToTCP(OutOfMemory))
	require.Equal(t, BadTcpMessageTypeInvalid, ToTCP(EncodingError))
	require.Equal(t, BadTcpNotEnoughResources, ToTCP(InvalidState))
	require.Equal(t, BadTcpInternalError, ToTCP(NotOK))
}

func TestErrorIs(t *testing.T) {
	err := New(WouldBlock, "short read")
	require.True(t, errors.Is(err, New(WouldBlock, "")))
	require.False(t, errors.Is(err, New(Closed, "")))
}
