// Package chunk assembles and disassembles OPC UA Binary TCP messages into
// chunks, enforcing the per-direction chunk-count and message-size caps
// from config.Limits. Violations are returned as status codes, which
// status.ToTCP maps to the OPC UA TCP error codes.
package chunk

import (
	"encoding/binary"

	"github.com/yobol/go-opcua/config"
	"github.com/yobol/go-opcua/status"
)

// MessageType is the 3-byte ASCII type tag at the start of every chunk
// header (e.g. "MSG", "HEL", "ACK", "ERR", "OPN", "CLO").
type MessageType [3]byte

var (
	MessageTypeHello     = MessageType{'H', 'E', 'L'}
	MessageTypeAck       = MessageType{'A', 'C', 'K'}
	MessageTypeError     = MessageType{'E', 'R', 'R'}
	MessageTypeOpen      = MessageType{'O', 'P', 'N'}
	MessageTypeClose     = MessageType{'C', 'L', 'O'}
	MessageTypeSecure    = MessageType{'M', 'S', 'G'}
)

// ChunkKind is the 4th header byte: F (final), C (intermediate), A (abort).
type ChunkKind byte

const (
	ChunkFinal        ChunkKind = 'F'
	ChunkIntermediate ChunkKind = 'C'
	ChunkAbort        ChunkKind = 'A'
)

const headerSize = 8 // 3-byte type + 1-byte kind + 4-byte uint32 length

// Header is the 8-byte chunk header: message type, chunk kind, and total
// chunk length (header included).
type Header struct {
	Type   MessageType
	Kind   ChunkKind
	Length uint32
}

func (h Header) Encode() []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:3], h.Type[:])
	buf[3] = byte(h.Kind)
	binary.LittleEndian.PutUint32(buf[4:8], h.Length)
	return buf
}

func DecodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, status.New(status.WouldBlock, "chunk header needs %d bytes, have %d", headerSize, len(buf))
	}
	var h Header
	copy(h.Type[:], buf[0:3])
	h.Kind = ChunkKind(buf[3])
	h.Length = binary.LittleEndian.Uint32(buf[4:8])
	return h, nil
}

// Builder splits a single logical message body into chunks no larger than
// limits.BufferSize, respecting limits.SendMaxNbChunks and
// limits.SendMaxMsgSize.
type Builder struct {
	typ    MessageType
	limits config.Limits
}

func NewBuilder(typ MessageType, limits config.Limits) *Builder {
	return &Builder{typ: typ, limits: limits}
}

// Split divides body into chunks, the last marked ChunkFinal and all
// others ChunkIntermediate. An oversized body (after accounting for the
// per-chunk header) returns status.OutOfMemory, which status.ToTCP maps to
// BadTcpMessageTooLarge.
func (b *Builder) Split(body []byte) ([][]byte, error) {
	maxBody := int(b.limits.BufferSize) - headerSize
	if maxBody <= 0 {
		return nil, status.New(status.InvalidState, "buffer_size too small for chunk header")
	}
	sendMax := b.limits.EffectiveSendMaxMsgSize()
	if sendMax != 0 && uint64(len(body)) > sendMax {
		return nil, status.New(status.OutOfMemory, "message body %d exceeds send_max_msg_size %d", len(body), sendMax)
	}
	nChunks := (len(body) + maxBody - 1) / maxBody
	if nChunks == 0 {
		nChunks = 1
	}
	if b.limits.SendMaxNbChunks != 0 && uint32(nChunks) > b.limits.SendMaxNbChunks {
		return nil, status.New(status.OutOfMemory, "message needs %d chunks, exceeds send_max_nb_chunks %d", nChunks, b.limits.SendMaxNbChunks)
	}
	chunks := make([][]byte, 0, nChunks)
	for off := 0; off < len(body) || (off == 0 && len(body) == 0); {
		end := off + maxBody
		if end > len(body) {
			end = len(body)
		}
		kind := ChunkIntermediate
		if end == len(body) {
			kind = ChunkFinal
		}
		part := body[off:end]
		h := Header{Type: b.typ, Kind: kind, Length: uint32(headerSize + len(part))}
		chunks = append(chunks, append(h.Encode(), part...))
		off = end
		if off == len(body) {
			break
		}
	}
	return chunks, nil
}

// Assembler reassembles a chunk stream into one logical message body,
// enforcing limits.ReceiveMaxNbChunks and limits.ReceiveMaxMsgSize.
type Assembler struct {
	limits config.Limits
	parts  [][]byte
	total  int
	typ    MessageType
	done   bool
}

func NewAssembler(limits config.Limits) *Assembler {
	return &Assembler{limits: limits}
}

// Reset discards any in-progress message, for reuse after an abort or
// completed message.
func (a *Assembler) Reset() {
	a.parts = nil
	a.total = 0
	a.done = false
}

// Feed consumes one complete chunk (header included). It returns the
// assembled body and true once a ChunkFinal chunk completes the message.
// A ChunkAbort chunk discards the in-progress message and returns
// (nil, false, nil): the caller should read the abort's StatusCode body
// separately per the OPC UA TCP error-chunk convention.
func (a *Assembler) Feed(chunkBytes []byte) ([]byte, bool, error) {
	h, err := DecodeHeader(chunkBytes)
	if err != nil {
		return nil, false, err
	}
	if int(h.Length) != len(chunkBytes) {
		return nil, false, status.New(status.EncodingError, "chunk header length %d does not match %d received bytes", h.Length, len(chunkBytes))
	}
	if len(a.parts) == 0 {
		a.typ = h.Type
	} else if h.Type != a.typ {
		a.Reset()
		return nil, false, status.New(status.EncodingError, "chunk message type changed mid-message")
	}

	if h.Kind == ChunkAbort {
		a.Reset()
		return nil, false, nil
	}

	body := chunkBytes[headerSize:]
	if a.limits.ReceiveMaxNbChunks != 0 && uint32(len(a.parts)+1) > a.limits.ReceiveMaxNbChunks {
		a.Reset()
		return nil, false, status.New(status.OutOfMemory, "message exceeds receive_max_nb_chunks %d", a.limits.ReceiveMaxNbChunks)
	}
	a.total += len(body)
	recvMax := a.limits.EffectiveReceiveMaxMsgSize()
	if recvMax != 0 && uint64(a.total) > recvMax {
		a.Reset()
		return nil, false, status.New(status.OutOfMemory, "message exceeds receive_max_msg_size %d", recvMax)
	}
	a.parts = append(a.parts, body)

	if h.Kind != ChunkFinal {
		return nil, false, nil
	}
	out := make([]byte, 0, a.total)
	for _, p := range a.parts {
		out = append(out, p...)
	}
	a.Reset()
	return out, true, nil
}
