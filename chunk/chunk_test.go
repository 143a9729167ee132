package chunk

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yobol/go-opcua/config"
)

func smallChunkLimits() config.Limits {
	l := config.Default()
	l.BufferSize = config.MinTCPUAChunkSize
	l.SendMaxNbChunks = 4
	l.ReceiveMaxNbChunks = 4
	l.SendMaxMsgSize = 0
	l.ReceiveMaxMsgSize = 0
	return l
}

func TestSplitAndReassembleSingleChunk(t *testing.T) {
	l := smallChunkLimits()
	b := NewBuilder(MessageTypeSecure, l)
	body := []byte("hello opc ua")
	chunks, err := b.Split(body)
	require.NoError(t, err)
	require.Len(t, chunks, 1)

	a := NewAssembler(l)
	out, done, err := a.Feed(chunks[0])
	require.NoError(t, err)
	require.True(t, done)
	require.Equal(t, body, out)
}

func TestSplitAcrossMultipleChunks(t *testing.T) {
	l := smallChunkLimits()
	l.BufferSize = headerSize + 10
	b := NewBuilder(MessageTypeSecure, l)
	body := make([]byte, 25)
	for i := range body {
		body[i] = byte(i)
	}
	chunks, err := b.Split(body)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	a := NewAssembler(l)
	var out []byte
	var done bool
	for _, c := range chunks {
		out, done, err = a.Feed(c)
		require.NoError(t, err)
	}
	require.True(t, done)
	require.Equal(t, body, out)
}

func TestReceiveMaxNbChunksRejects(t *testing.T) {
	l := smallChunkLimits()
	l.BufferSize = headerSize + 10
	l.ReceiveMaxNbChunks = 2
	b := NewBuilder(MessageTypeSecure, l)
	body := make([]byte, 25)
	chunks, err := b.Split(body)
	require.NoError(t, err)
	require.Len(t, chunks, 3)

	a := NewAssembler(l)
	_, _, err = a.Feed(chunks[0])
	require.NoError(t, err)
	_, _, err = a.Feed(chunks[1])
	require.NoError(t, err)
	_, _, err = a.Feed(chunks[2])
	require.Error(t, err)
}

func TestSendMaxMsgSizeRejectsBeforeSplitting(t *testing.T) {
	l := smallChunkLimits()
	l.SendMaxMsgSize = 10
	b := NewBuilder(MessageTypeSecure, l)
	_, err := b.Split(make([]byte, 20))
	require.Error(t, err)
}

func TestAbortChunkDiscardsInProgressMessage(t *testing.T) {
	l := smallChunkLimits()
	l.BufferSize = headerSize + 10
	b := NewBuilder(MessageTypeSecure, l)
	body := make([]byte, 25)
	chunks, err := b.Split(body)
	require.NoError(t, err)

	a := NewAssembler(l)
	_, done, err := a.Feed(chunks[0])
	require.NoError(t, err)
	require.False(t, done)

	abortChunk := Header{Type: MessageTypeSecure, Kind: ChunkAbort, Length: headerSize}.Encode()
	_, done, err = a.Feed(abortChunk)
	require.NoError(t, err)
	require.False(t, done)

	out, done, err := a.Feed(chunks[0])
	require.NoError(t, err)
	require.False(t, done)
	_ = out
}

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := Header{Type: MessageTypeHello, Kind: ChunkFinal, Length: 42}
	decoded, err := DecodeHeader(h.Encode())
	require.NoError(t, err)
	require.Equal(t, h, decoded)
}
