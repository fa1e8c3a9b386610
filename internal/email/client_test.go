package email

import (
	"net"
	"testing"
	"time"
)

func TestSetupSessionTimesOutOnSilentServer(t *testing.T) {
	// A server that accepts the connection but never sends a greeting
	// must not hang the caller past the setup deadline.
	client, server := net.Pipe()
	defer server.Close()

	done := make(chan error, 1)
	go func() {
		_, err := setupSession(client, "user", "pass", 100*time.Millisecond)
		done <- err
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("setup succeeded against a silent server")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("setup did not return after the deadline")
	}
}
