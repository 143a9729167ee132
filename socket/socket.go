// Package socket is the non-blocking raw-fd transport layer: TCP sockets
// wrapped directly over golang.org/x/sys/unix rather than net.Conn, so
// readiness can be driven from an explicit Set (an fd-set analog) instead
// of a blocking goroutine-per-connection model.
package socket

import (
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/yobol/go-opcua/status"
)

var (
	logMu  sync.RWMutex
	logger = logrus.New()
)

// SetLogger replaces the package-wide logger.
func SetLogger(l *logrus.Logger) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = l
}

func log() *logrus.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return logger
}

// Socket wraps a single non-blocking TCP file descriptor.
type Socket struct {
	fd     int
	closed bool
	mu     sync.Mutex
}

// AddrInfoGet resolves host:port into a unix.Sockaddr, preferring IPv4.
func AddrInfoGet(host string, port uint16) (unix.Sockaddr, error) {
	ip, err := resolveIPv4(host)
	if err != nil {
		return nil, status.New(status.InvalidParameters, "resolve %s: %v", host, err)
	}
	return &unix.SockaddrInet4{Port: int(port), Addr: ip}, nil
}

// CreateNew allocates a non-blocking TCP/IPv4 socket with SO_REUSEADDR and
// TCP_NODELAY set. Only IPv4 is supported: no IPv6 socket is created and
// IPV6_V6ONLY is never set or cleared.
func CreateNew() (*Socket, error) {
	fd, err := unix.Socket(unix.AF_INET, unix.SOCK_STREAM, unix.IPPROTO_TCP)
	if err != nil {
		return nil, status.New(status.NotOK, "socket: %v", err)
	}
	if err := unix.SetNonblock(fd, true); err != nil {
		unix.Close(fd)
		return nil, status.New(status.NotOK, "set nonblock: %v", err)
	}
	if err := unix.SetsockoptInt(fd, unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
		unix.Close(fd)
		return nil, status.New(status.NotOK, "reuseaddr: %v", err)
	}
	if err := unix.SetsockoptInt(fd, unix.IPPROTO_TCP, unix.TCP_NODELAY, 1); err != nil {
		unix.Close(fd)
		return nil, status.New(status.NotOK, "nodelay: %v", err)
	}
	return &Socket{fd: fd}, nil
}

// Listen binds and listens on addr with the given backlog.
func (s *Socket) Listen(addr unix.Sockaddr, backlog int) error {
	if err := unix.Bind(s.fd, addr); err != nil {
		return status.New(status.NotOK, "bind: %v", err)
	}
	if err := unix.Listen(s.fd, backlog); err != nil {
		return status.New(status.NotOK, "listen: %v", err)
	}
	return nil
}

// Accept accepts one pending connection. Returns status.WouldBlock when
// none is pending, matching non-blocking accept(2) semantics (EAGAIN).
func (s *Socket) Accept() (*Socket, error) {
	nfd, _, err := unix.Accept(s.fd)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return nil, status.New(status.WouldBlock, "accept: no pending connection")
		}
		return nil, status.New(status.NotOK, "accept: %v", err)
	}
	if err := unix.SetNonblock(nfd, true); err != nil {
		unix.Close(nfd)
		return nil, status.New(status.NotOK, "set nonblock: %v", err)
	}
	_ = unix.SetsockoptInt(nfd, unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	log().WithField("fd", nfd).Debug("accepted connection")
	return &Socket{fd: nfd}, nil
}

// AcceptUnderLimit accepts at most one pending connection from listener,
// enforcing the process-wide counter's saturation-safe policy (spec §4.6):
// the slot is reserved speculatively before the kernel accept so concurrent
// acceptors cannot both race past the cap. If the reservation lands past
// the nominal max (but still within acceptSlack), the connection is still
// drained from the kernel backlog — never left half-accepted — and then
// immediately closed and the slot released, so a saturated listener keeps
// answering connections instead of silently stalling the backlog.
func AcceptUnderLimit(listener *Socket, counter *Counter) (*Socket, error) {
	granted, count := counter.acquireWithCount()
	if !granted {
		return nil, status.New(status.WouldBlock, "accept: socket limit reached")
	}
	conn, err := listener.Accept()
	if err != nil {
		counter.Release()
		return nil, err
	}
	if count > counter.max {
		log().WithField("fd", conn.fd).WithField("in_use", count).
			Debug("accepted connection rejected: socket limit reached")
		conn.Close()
		counter.Release()
		return nil, status.New(status.WouldBlock, "accept: rejected under saturation")
	}
	return conn, nil
}

// Connect begins a non-blocking connect. A nil error here does not mean the
// connection is established; call CheckAckConnect once the Set reports the
// fd writable.
func (s *Socket) Connect(addr unix.Sockaddr) error {
	err := unix.Connect(s.fd, addr)
	if err == nil || err == unix.EINPROGRESS {
		return nil
	}
	return status.New(status.NotOK, "connect: %v", err)
}

// CheckAckConnect reads SO_ERROR after a Set reports the connecting fd
// writable, to distinguish a completed connect from a failed one.
func (s *Socket) CheckAckConnect() error {
	errno, err := unix.GetsockoptInt(s.fd, unix.SOL_SOCKET, unix.SO_ERROR)
	if err != nil {
		return status.New(status.NotOK, "getsockopt SO_ERROR: %v", err)
	}
	if errno != 0 {
		return status.New(status.NotOK, "connect failed: errno %d", errno)
	}
	return nil
}

// Read performs a single non-blocking read. status.WouldBlock means try
// again later; a zero-length nil-error read means the peer closed.
func (s *Socket) Read(p []byte) (int, error) {
	n, err := unix.Read(s.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, status.New(status.WouldBlock, "read: no data available")
		}
		return 0, status.New(status.NotOK, "read: %v", err)
	}
	return n, nil
}

// Write performs a single non-blocking write, returning the number of bytes
// actually written (which may be less than len(p)).
func (s *Socket) Write(p []byte) (int, error) {
	n, err := unix.Write(s.fd, p)
	if err != nil {
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return 0, status.New(status.WouldBlock, "write: socket buffer full")
		}
		return 0, status.New(status.NotOK, "write: %v", err)
	}
	return n, nil
}

func (s *Socket) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return unix.Close(s.fd)
}

func (s *Socket) Fd() int { return s.fd }
