package config

import (
	"os"
	"strconv"
)

// FromEnv builds a Limits from environment variables, defaulting any unset
// or unparseable field to Default(). This is an operator convenience for the
// example binaries; it is not part of the core's wire or service surface.
func FromEnv() Limits {
	l := Default()
	l.BufferSize = envUint32("OPCUA_BUFFER_SIZE", l.BufferSize)
	l.ReceiveMaxNbChunks = envUint32("OPCUA_RECEIVE_MAX_NB_CHUNKS", l.ReceiveMaxNbChunks)
	l.ReceiveMaxMsgSize = envUint32("OPCUA_RECEIVE_MAX_MSG_SIZE", l.ReceiveMaxMsgSize)
	l.SendMaxNbChunks = envUint32("OPCUA_SEND_MAX_NB_CHUNKS", l.SendMaxNbChunks)
	l.SendMaxMsgSize = envUint32("OPCUA_SEND_MAX_MSG_SIZE", l.SendMaxMsgSize)
	l.MaxStringLength = envUint32("OPCUA_MAX_STRING_LENGTH", l.MaxStringLength)
	l.MaxArrayLength = envUint32("OPCUA_MAX_ARRAY_LENGTH", l.MaxArrayLength)
	l.MaxNestedDiagInfo = envUint32("OPCUA_MAX_NESTED_DIAG_INFO", l.MaxNestedDiagInfo)
	l.MaxNestedStruct = envUint32("OPCUA_MAX_NESTED_STRUCT", l.MaxNestedStruct)
	return l
}

func envUint32(name string, fallback uint32) uint32 {
	v, ok := os.LookupEnv(name)
	if !ok {
		return fallback
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fallback
	}
	return uint32(n)
}
