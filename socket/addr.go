package socket

import (
	"net"

	"github.com/yobol/go-opcua/status"
)

// resolveIPv4 resolves host to its first IPv4 address. DNS resolution
// itself is not performance-sensitive here, so it uses the stdlib resolver
// rather than a raw-socket implementation.
func resolveIPv4(host string) ([4]byte, error) {
	var out [4]byte
	ips, err := net.LookupIP(host)
	if err != nil {
		return out, err
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			copy(out[:], v4)
			return out, nil
		}
	}
	return out, status.New(status.NotOK, "no IPv4 address for %s", host)
}
