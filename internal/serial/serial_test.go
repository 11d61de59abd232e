package serial

import (
	"bytes"
	"testing"
)

func TestWriterSinkForwardsBytes(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	s.WriteByte('H')
	s.WriteByte('i')
	if buf.String() != "Hi" {
		t.Errorf("buffer = %q, want %q", buf.String(), "Hi")
	}
}

func TestWebSocketSinkBuffersHistoryWithoutClients(t *testing.T) {
	s := NewWebSocketSink()
	s.WriteByte('A')
	s.WriteByte('B')
	if string(s.history) != "AB" {
		t.Errorf("history = %q, want %q", string(s.history), "AB")
	}
}
