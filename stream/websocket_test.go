package stream

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"tweet-lab/errors"

	"github.com/gorilla/websocket"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestWebsocketTransport_Stream(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	upgrader := websocket.Upgrader{}
	var connections atomic.Int32
	var badRequests atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if q := r.URL.Query(); strings.Join(q["track"], ",") != "Bucs,Chiefs" || q.Get("language") != "en" {
			badRequests.Add(1)
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		if connections.Add(1) > 1 {
			// Second connection stays open until the client leaves
			_, _, _ = conn.ReadMessage()
			return
		}
		for _, message := range []string{
			`{"text":"Go Bucs!"}`,
			`{"disconnect":{"code":4,"stream_name":"relay","reason":"duplicate stream"}}`,
			`{"text":"Chiefs next year"}`,
		} {
			_ = conn.WriteMessage(websocket.TextMessage, []byte(message))
		}
		// Closing without a close frame drops the connection
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/subscribe"
	transport := NewWebsocketTransport(log, wsURL, time.Second, fastBackoff)
	listener := &recordingListener{}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- transport.Stream(ctx, testFilter, listener) }()

	req.Eventually(func() bool { return connections.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		req.ErrorIs(err, context.Canceled)
	case <-time.After(2 * time.Second):
		req.Fail("Stream did not stop at time")
	}

	frames, errs := listener.snapshot()
	req.Equal([]string{`{"text":"Go Bucs!"}`, `{"text":"Chiefs next year"}`}, frames)
	req.Len(errs, 2)
	req.Contains(errs[0].Error(), "duplicate stream")
	req.ErrorIs(errs[1], errors.ErrTransport)
	req.Zero(badRequests.Load())
}
