package stream

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"tweet-lab/contract"
	"tweet-lab/domain"

	"github.com/cenkalti/backoff/v5"
	"github.com/gorilla/websocket"
)

const defaultReadTimeout = 90 * time.Second

// WebsocketTransport reads a relay that re-broadcasts the filtered stream,
// one JSON message per frame. The filter is passed as query parameters.
type WebsocketTransport struct {
	log         *slog.Logger
	url         string
	dialer      websocket.Dialer
	readTimeout time.Duration
	backoff     Backoff
}

func NewWebsocketTransport(log *slog.Logger, streamURL string, readTimeout time.Duration, policy Backoff) *WebsocketTransport {
	if readTimeout <= 0 {
		readTimeout = defaultReadTimeout
	}
	return &WebsocketTransport{
		log:         log,
		url:         streamURL,
		dialer:      websocket.Dialer{HandshakeTimeout: 10 * time.Second},
		readTimeout: readTimeout,
		backoff:     policy,
	}
}

func (w *WebsocketTransport) Stream(ctx context.Context, filter domain.Filter, listener contract.Listener) error {
	return keepStreaming(ctx, w.backoff, listener, func(ctx context.Context, connected func()) error {
		return w.connect(ctx, filter, listener, connected)
	})
}

func (w *WebsocketTransport) connect(ctx context.Context, filter domain.Filter, listener contract.Listener, connected func()) error {
	wsURL, err := w.buildURL(filter)
	if err != nil {
		return backoff.Permanent(err)
	}

	conn, resp, err := w.dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil && permanentStatus(resp.StatusCode) {
			return backoff.Permanent(fmt.Errorf("relay answered %s: %w", resp.Status, err))
		}
		return err
	}
	defer conn.Close()
	// Unblock ReadMessage as soon as the session stops
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	connected()
	w.log.Info("Connected to stream relay", "url", w.url)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(w.readTimeout))
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("read error: %w", err)
		}
		dispatch(ctx, message, listener)
	}
}

func (w *WebsocketTransport) buildURL(filter domain.Filter) (string, error) {
	u, err := url.Parse(w.url)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for _, keyword := range filter.Keywords {
		q.Add("track", keyword)
	}
	for _, lang := range filter.Languages {
		q.Add("language", lang)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
