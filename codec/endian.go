package codec

import "unsafe"

// hostLittleEndian reports whether this process is running on a strictly
// little-endian host. It is checked once at init, the same technique mebo's
// endian.CheckEndianness uses: probe a known uint16 value's in-memory byte
// order rather than trusting a build tag.
var hostLittleEndian = checkHostLittleEndian()

func checkHostLittleEndian() bool {
	var probe uint16 = 0x0102
	b := (*[2]byte)(unsafe.Pointer(&probe))
	return b[0] == 0x02
}

// HostIsLittleEndian reports whether array read/write may use the
// contiguous-copy fast path on this host.
func HostIsLittleEndian() bool { return hostLittleEndian }
