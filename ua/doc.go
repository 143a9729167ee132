// Package ua implements the OPC UA Binary built-in type system: the
// per-type registry, the in-memory built-in values, and the
// EncodeableType reflection engine that generically init/clear/encode/
// decode/copy/compares any registered composite type.
//
// Encoding and decoding bottom out in codec.Writer/codec.Reader; ua never
// touches a socket and never logs: codec functions never log, they
// return errors for the caller to handle.
package ua
