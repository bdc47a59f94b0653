package bootstrap

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAudit struct {
	actions chan string
}

func (a *recordingAudit) Log(_ context.Context, entry AuditLog) {
	a.actions <- entry.Action
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	audit := &recordingAudit{actions: make(chan string, 2)}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- serve(ctx, ln, handler, ServerConfig{ShutdownTimeout: time.Second}, audit)
	}()

	assert.Equal(t, "SERVER_START", <-audit.actions)

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, "SERVER_SHUTDOWN", <-audit.actions)
}

func TestRunHTTPServer_ListenError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	_, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	err = RunHTTPServer(context.Background(), http.NotFoundHandler(), ServerConfig{Port: port}, &recordingAudit{actions: make(chan string, 2)})
	assert.Error(t, err)
}
