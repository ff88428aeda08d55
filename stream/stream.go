// Package stream holds the transports a session subscribes through.
// A transport owns its connection and reconnection policy: it reconnects
// with exponential backoff until its context is done, and reports every
// dropped connection and platform notice to the listener's error path.
package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"tweet-lab/contract"
	"tweet-lab/errors"
	"tweet-lab/observability"

	"github.com/cenkalti/backoff/v5"
)

const (
	defaultInitialBackoff = time.Second
	defaultMaxBackoff     = 5 * time.Minute
)

var errStreamClosed = fmt.Errorf("stream closed by server")

// Credentials are the four OAuth1 secrets of the streaming account.
type Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

func (b Backoff) orDefault() Backoff {
	if b.Initial <= 0 {
		b.Initial = defaultInitialBackoff
	}
	if b.Max <= 0 {
		b.Max = defaultMaxBackoff
	}
	return b
}

// connectFunc holds one connection open until it drops.
// It calls connected once the subscription is accepted.
type connectFunc func(ctx context.Context, connected func()) error

// keepStreaming reconnects until ctx is done or a connection fails permanently.
func keepStreaming(ctx context.Context, policy Backoff, listener contract.Listener, connect connectFunc) error {
	policy = policy.orDefault()
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = policy.Initial
	b.MaxInterval = policy.Max

	operation := func() (struct{}, error) {
		err := connect(ctx, func() {
			b.Reset()
			observability.ConnectionState.Set(1)
		})
		observability.ConnectionState.Set(0)
		if ctx.Err() != nil {
			return struct{}{}, backoff.Permanent(ctx.Err())
		}
		if err == nil {
			err = errStreamClosed
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(0),
		backoff.WithNotify(func(err error, next time.Duration) {
			listener.OnError(ctx, fmt.Errorf("%w: %w, reconnecting in %s", errors.ErrTransport, err, next))
		}),
	)
	// Retries are unbounded, only a permanent failure gets here
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("%w: %w", errors.ErrStreamRejected, err)
	}
	return err
}

// permanentStatus lists the HTTP answers a reconnection cannot fix.
func permanentStatus(code int) bool {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound,
		http.StatusNotAcceptable, http.StatusRequestEntityTooLarge, http.StatusRequestedRangeNotSatisfiable:
		return true
	}
	return false
}

type notice struct {
	Disconnect *struct {
		Code       int    `json:"code"`
		StreamName string `json:"stream_name"`
		Reason     string `json:"reason"`
	} `json:"disconnect"`
	Warning *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"warning"`
}

var (
	disconnectPrefix = []byte(`{"disconnect"`)
	warningPrefix    = []byte(`{"warning"`)
)

// noticeOf returns the platform notice carried by frame, or nil for any other message.
func noticeOf(frame []byte) error {
	if !bytes.HasPrefix(frame, disconnectPrefix) && !bytes.HasPrefix(frame, warningPrefix) {
		return nil
	}
	var n notice
	if err := json.Unmarshal(frame, &n); err != nil {
		return nil
	}
	switch {
	case n.Disconnect != nil:
		return fmt.Errorf("%w: disconnect notice %d on %s: %s",
			errors.ErrTransport, n.Disconnect.Code, n.Disconnect.StreamName, n.Disconnect.Reason)
	case n.Warning != nil:
		return fmt.Errorf("%w: warning notice %s: %s", errors.ErrTransport, n.Warning.Code, n.Warning.Message)
	}
	return nil
}

// dispatch routes one frame to the listener, notices go to the error path.
func dispatch(ctx context.Context, frame []byte, listener contract.Listener) {
	if err := noticeOf(frame); err != nil {
		listener.OnError(ctx, err)
		return
	}
	listener.OnData(ctx, frame)
}
