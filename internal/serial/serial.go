// Package serial provides pluggable sinks for the 0xFF01 side channel that
// ROM test harnesses use to stream pass/fail banners.
package serial

import (
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/websocket"
)

// Sink receives one byte at a time as the bus services writes to 0xFF01.
type Sink interface {
	WriteByte(b byte)
}

// writerSink adapts an io.Writer into a Sink.
type writerSink struct{ w io.Writer }

func (s writerSink) WriteByte(b byte) {
	_, _ = s.w.Write([]byte{b})
}

// Stdout returns a Sink that writes to os.Stdout, the sink the CLI harness
// uses so a running test ROM's banner appears on the terminal.
func Stdout() Sink {
	return writerSink{w: os.Stdout}
}

// NewWriterSink wraps an arbitrary io.Writer (a bytes.Buffer in tests, a
// log file, ...) as a Sink.
func NewWriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

// WebSocketSink fans each serial byte out to every connected websocket
// client, so a ROM test run can be watched live from a browser.
type WebSocketSink struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	history []byte
}

// NewWebSocketSink returns an empty sink ready to accept client
// connections via Upgrade.
func NewWebSocketSink() *WebSocketSink {
	return &WebSocketSink{clients: make(map[*websocket.Conn]struct{})}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Upgrade promotes an HTTP connection to a websocket client and replays
// the banner collected so far, then registers the client for future bytes.
func (s *WebSocketSink) Upgrade(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	s.mu.Lock()
	backlog := append([]byte(nil), s.history...)
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	if len(backlog) > 0 {
		_ = conn.WriteMessage(websocket.TextMessage, backlog)
	}
	return nil
}

// WriteByte implements Sink, broadcasting b to every connected client and
// appending it to the replay buffer for clients that connect later.
func (s *WebSocketSink) WriteByte(b byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, b)
	for conn := range s.clients {
		if err := conn.WriteMessage(websocket.TextMessage, []byte{b}); err != nil {
			delete(s.clients, conn)
			_ = conn.Close()
		}
	}
}
