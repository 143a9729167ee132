// Package config holds the process-wide, write-once encoding limits. Once
// SetEncodingConstants succeeds, the record is immutable; readers take no
// lock.
package config

import (
	"sync/atomic"
)

// MinTCPUAChunkSize is the minimum buffer_size accepted by SetEncodingConstants,
// matching the OPC UA Binary TCP handshake floor (8192 bytes).
const MinTCPUAChunkSize = 8192

// Limits is the process-wide configuration record bounding message,
// array, string, and nesting sizes.
// The zero value is not meaningful; use Default() or FromEnv().
type Limits struct {
	// BufferSize is the single-chunk body byte capacity. Must be >=
	// MinTCPUAChunkSize.
	BufferSize uint32
	// ReceiveMaxNbChunks bounds the number of chunks reassembled per
	// received message. 0 means unbounded, and is rejected together with
	// ReceiveMaxMsgSize == 0.
	ReceiveMaxNbChunks uint32
	// ReceiveMaxMsgSize bounds the total bytes per received message. 0
	// means derive from ReceiveMaxNbChunks * BufferSize.
	ReceiveMaxMsgSize uint32
	// SendMaxNbChunks is the send-side symmetric chunk cap.
	SendMaxNbChunks uint32
	// SendMaxMsgSize is the send-side symmetric byte cap.
	SendMaxMsgSize uint32
	// MaxStringLength caps string/ByteString decode length.
	MaxStringLength uint32
	// MaxArrayLength caps array decode length.
	MaxArrayLength uint32
	// MaxNestedDiagInfo caps DiagnosticInfo recursion depth. Default 100.
	MaxNestedDiagInfo uint32
	// MaxNestedStruct caps all other composite recursion depth.
	MaxNestedStruct uint32
}

// Default returns a conservative out-of-the-box configuration: a single
// 64KiB chunk, generous string/array caps, and a default DiagnosticInfo
// nesting cap of 100.
func Default() Limits {
	return Limits{
		BufferSize:         65536,
		ReceiveMaxNbChunks: 128,
		ReceiveMaxMsgSize:  0,
		SendMaxNbChunks:    128,
		SendMaxMsgSize:     0,
		MaxStringLength:    128 * 1024,
		MaxArrayLength:     100000,
		MaxNestedDiagInfo:  100,
		MaxNestedStruct:    100,
	}
}

// Validate reports whether l is an internally consistent set of limits,
// validating every field against its documented constraints.
func (l Limits) Validate() bool {
	if l.BufferSize < MinTCPUAChunkSize {
		return false
	}
	if l.ReceiveMaxNbChunks == 0 && l.ReceiveMaxMsgSize == 0 {
		return false
	}
	if l.SendMaxNbChunks == 0 && l.SendMaxMsgSize == 0 {
		return false
	}
	if l.ReceiveMaxMsgSize != 0 && l.ReceiveMaxMsgSize < l.BufferSize {
		return false
	}
	if l.SendMaxMsgSize != 0 && l.SendMaxMsgSize < l.BufferSize {
		return false
	}
	return true
}

// EffectiveReceiveMaxMsgSize returns ReceiveMaxMsgSize, deriving it from
// ReceiveMaxNbChunks * BufferSize when it is 0.
func (l Limits) EffectiveReceiveMaxMsgSize() uint64 {
	if l.ReceiveMaxMsgSize != 0 {
		return uint64(l.ReceiveMaxMsgSize)
	}
	return uint64(l.ReceiveMaxNbChunks) * uint64(l.BufferSize)
}

// EffectiveSendMaxMsgSize is the send-side counterpart of
// EffectiveReceiveMaxMsgSize.
func (l Limits) EffectiveSendMaxMsgSize() uint64 {
	if l.SendMaxMsgSize != 0 {
		return uint64(l.SendMaxMsgSize)
	}
	return uint64(l.SendMaxNbChunks) * uint64(l.BufferSize)
}

var active atomic.Pointer[Limits]

// SetEncodingConstants installs l as the process-wide configuration. It
// succeeds exactly once: subsequent calls, even with identical values,
// return false and leave the previously-installed record untouched.
// Inconsistent combinations are rejected without ever becoming active.
func SetEncodingConstants(l Limits) bool {
	if !l.Validate() {
		return false
	}
	cp := l
	return active.CompareAndSwap(nil, &cp)
}

// GetEncodingConstants returns the active limits, or the package Default()
// if SetEncodingConstants has not yet been called.
func GetEncodingConstants() Limits {
	if p := active.Load(); p != nil {
		return *p
	}
	return Default()
}

// resetForTest clears the write-once cell. Only ever called from this
// package's own tests.
func resetForTest() {
	active.Store(nil)
}
