// Command ua-echo-server accepts OPC UA Binary TCP connections one at a
// time and echoes back every message it assembles from a connection's
// chunks. No Hello/Acknowledge handshake is performed.
package main

import (
	"github.com/sirupsen/logrus"

	"github.com/yobol/go-opcua/chunk"
	"github.com/yobol/go-opcua/config"
	"github.com/yobol/go-opcua/socket"
	"github.com/yobol/go-opcua/status"
)

const listenPort = 4840

// maxSockets bounds how many connections this process will serve
// concurrently; accept-under-saturation (spec §4.6) still drains and
// rejects anything beyond it rather than leaving the backlog to stall.
const maxSockets = 64

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	socket.SetLogger(logger)

	limits := config.FromEnv()
	if !config.SetEncodingConstants(limits) {
		limits = config.GetEncodingConstants()
	}

	listener, err := socket.CreateNew()
	if err != nil {
		logger.WithError(err).Fatal("create listen socket")
	}
	addr, err := socket.AddrInfoGet("0.0.0.0", listenPort)
	if err != nil {
		logger.WithError(err).Fatal("resolve listen address")
	}
	if err := listener.Listen(addr, 8); err != nil {
		logger.WithError(err).Fatal("listen")
	}
	logger.WithField("port", listenPort).Info("ua-echo-server listening")

	counter := socket.NewCounter(maxSockets)
	waitSet := socket.NewSet()
	waitSet.AddRead(listener)
	for {
		if _, err := waitSet.Wait(1000); err != nil {
			logger.WithError(err).Fatal("select")
		}
		conn, err := socket.AcceptUnderLimit(listener, counter)
		if err != nil {
			continue
		}
		logger.Info("accepted connection")
		if err := serveConnection(conn, limits, logger); err != nil {
			logger.WithError(err).Warn("connection ended")
		}
		conn.Close()
		counter.Release()
	}
}

func serveConnection(conn *socket.Socket, limits config.Limits, logger *logrus.Logger) error {
	assembler := chunk.NewAssembler(limits)
	waitSet := socket.NewSet()
	waitSet.AddRead(conn)

	readBuf := make([]byte, limits.BufferSize)

	for {
		if _, err := waitSet.Wait(5000); err != nil {
			return err
		}
		n, err := conn.Read(readBuf)
		if err != nil {
			if isWouldBlock(err) {
				continue
			}
			return err
		}
		if n == 0 {
			return nil
		}
		body, done, err := assembler.Feed(readBuf[:n])
		if err != nil {
			logger.WithError(err).Warn("chunk assembly failed")
			return err
		}
		if !done {
			continue
		}
		echo := chunk.NewBuilder(chunk.MessageTypeSecure, limits)
		chunks, err := echo.Split(body)
		if err != nil {
			return err
		}
		for _, c := range chunks {
			if err := writeAll(conn, c); err != nil {
				return err
			}
		}
	}
}

func writeAll(conn *socket.Socket, p []byte) error {
	for len(p) > 0 {
		n, err := conn.Write(p)
		if err != nil {
			if isWouldBlock(err) {
				continue
			}
			return err
		}
		p = p[n:]
	}
	return nil
}

func isWouldBlock(err error) bool {
	return status.Is(err, status.WouldBlock)
}
