// Command ua-echo-client connects to ua-echo-server, sends a String
// payload wrapped in a single message chunk, and prints the echoed reply.
package main

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yobol/go-opcua/chunk"
	"github.com/yobol/go-opcua/codec"
	"github.com/yobol/go-opcua/config"
	"github.com/yobol/go-opcua/socket"
	"github.com/yobol/go-opcua/status"
	"github.com/yobol/go-opcua/ua"
)

const (
	serverHost = "127.0.0.1"
	serverPort = 4840
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)
	socket.SetLogger(logger)

	limits := config.GetEncodingConstants()

	conn, err := socket.CreateNew()
	if err != nil {
		logger.WithError(err).Fatal("create socket")
	}
	defer conn.Close()

	addr, err := socket.AddrInfoGet(serverHost, serverPort)
	if err != nil {
		logger.WithError(err).Fatal("resolve server address")
	}
	if err := conn.Connect(addr); err != nil {
		logger.WithError(err).Fatal("connect")
	}

	waitSet := socket.NewSet()
	waitSet.AddWrite(conn)
	if _, err := waitSet.Wait(5000); err != nil {
		logger.WithError(err).Fatal("select on connect")
	}
	if err := conn.CheckAckConnect(); err != nil {
		logger.WithError(err).Fatal("connect failed")
	}

	w := codec.NewWriter(limits)
	greeting := ua.NewString("hello from ua-echo-client")
	if err := greeting.Encode(w); err != nil {
		logger.WithError(err).Fatal("encode payload")
	}

	builder := chunk.NewBuilder(chunk.MessageTypeSecure, limits)
	chunks, err := builder.Split(w.Bytes())
	if err != nil {
		logger.WithError(err).Fatal("split message")
	}
	for _, c := range chunks {
		if err := writeAll(conn, c); err != nil {
			logger.WithError(err).Fatal("send chunk")
		}
	}

	assembler := chunk.NewAssembler(limits)
	readBuf := make([]byte, limits.BufferSize)
	readSet := socket.NewSet()
	readSet.AddRead(conn)
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := readSet.Wait(1000); err != nil {
			logger.WithError(err).Fatal("select")
		}
		n, err := conn.Read(readBuf)
		if err != nil {
			if status.Is(err, status.WouldBlock) {
				continue
			}
			logger.WithError(err).Fatal("read")
		}
		body, done, err := assembler.Feed(readBuf[:n])
		if err != nil {
			logger.WithError(err).Fatal("assemble reply")
		}
		if !done {
			continue
		}
		r := codec.NewReader(body, limits)
		var reply ua.String
		if err := reply.Decode(r); err != nil {
			logger.WithError(err).Fatal("decode reply")
		}
		fmt.Println(reply.Value())
		return
	}
	logger.Fatal("timed out waiting for echo")
}

func writeAll(conn *socket.Socket, p []byte) error {
	for len(p) > 0 {
		n, err := conn.Write(p)
		if err != nil {
			if status.Is(err, status.WouldBlock) {
				continue
			}
			return err
		}
		p = p[n:]
	}
	return nil
}
