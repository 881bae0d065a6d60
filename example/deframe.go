package main

import (
	"fmt"
	"io"
	"log/slog"
	"net"

	"github.com/jsandersr/netframe"
)

const typeChat netframe.MessageType = 1

func main() {
	client, server := net.Pipe()

	// Writer side: encode a few messages back-to-back, then send the wire
	// bytes in 5-byte slices so no write lines up with a message boundary.
	go func() {
		defer client.Close()

		var wire []byte
		for _, text := range []string{"hello", "from", "netframe"} {
			wire = netframe.AppendMessage(wire, netframe.Message{
				Header: netframe.Header{Type: typeChat},
				Body:   []byte(text),
			})
		}

		for len(wire) > 0 {
			n := 5
			if n > len(wire) {
				n = len(wire)
			}
			if _, err := client.Write(wire[:n]); err != nil {
				slog.Error("write failed", "error", err)
				return
			}
			wire = wire[n:]
		}
	}()

	reader := netframe.NewMessageReader(server)
	for {
		msg, err := reader.ReadMessage()
		if err != nil {
			if err != io.EOF {
				slog.Error("read failed", "error", err)
			}
			return
		}
		fmt.Printf("type=%d body=%q\n", msg.Type(), msg.Body)
	}
}
