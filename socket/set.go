package socket

import (
	"golang.org/x/sys/unix"

	"github.com/yobol/go-opcua/status"
)

// Set is a readiness set: an fd-set analog tracking which sockets are
// waited on for read or write readiness, mirroring the select(2)/FD_SET
// family this package is built directly on rather than net.Conn's
// per-connection goroutine model.
type Set struct {
	read  map[int]*Socket
	write map[int]*Socket
}

func NewSet() *Set {
	return &Set{read: make(map[int]*Socket), write: make(map[int]*Socket)}
}

func (s *Set) AddRead(sock *Socket)  { s.read[sock.fd] = sock }
func (s *Set) AddWrite(sock *Socket) { s.write[sock.fd] = sock }

func (s *Set) RemoveRead(sock *Socket)  { delete(s.read, sock.fd) }
func (s *Set) RemoveWrite(sock *Socket) { delete(s.write, sock.fd) }

func (s *Set) HasRead(sock *Socket) bool {
	_, ok := s.read[sock.fd]
	return ok
}

func (s *Set) Clear() {
	s.read = make(map[int]*Socket)
	s.write = make(map[int]*Socket)
}

// WaitResult is the subset of a Set that was actually ready after Wait.
type WaitResult struct {
	Readable []*Socket
	Writable []*Socket
}

// Wait blocks (or returns immediately if timeoutMs == 0) until at least one
// socket in the set is ready, using select(2).
func (s *Set) Wait(timeoutMs int) (WaitResult, error) {
	var rfds, wfds unix.FdSet
	maxFd := 0
	for fd := range s.read {
		fdSet(&rfds, fd)
		if fd > maxFd {
			maxFd = fd
		}
	}
	for fd := range s.write {
		fdSet(&wfds, fd)
		if fd > maxFd {
			maxFd = fd
		}
	}
	var tv *unix.Timeval
	if timeoutMs >= 0 {
		t := unix.NsecToTimeval(int64(timeoutMs) * 1e6)
		tv = &t
	}
	n, err := unix.Select(maxFd+1, &rfds, &wfds, nil, tv)
	if err != nil {
		return WaitResult{}, status.New(status.NotOK, "select: %v", err)
	}
	if n == 0 {
		return WaitResult{}, nil
	}
	var res WaitResult
	for fd, sock := range s.read {
		if fdIsSet(&rfds, fd) {
			res.Readable = append(res.Readable, sock)
		}
	}
	for fd, sock := range s.write {
		if fdIsSet(&wfds, fd) {
			res.Writable = append(res.Writable, sock)
		}
	}
	return res, nil
}

func fdSet(set *unix.FdSet, fd int) {
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdIsSet(set *unix.FdSet, fd int) bool {
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
