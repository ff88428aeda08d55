package stream

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"tweet-lab/contract"
	"tweet-lab/domain"

	"github.com/cenkalti/backoff/v5"
	"github.com/dghubble/oauth1"
)

const (
	DefaultFilterURL = "https://stream.twitter.com/1.1/statuses/filter.json"
	maxFrameSize     = 1 << 20
)

// TwitterTransport subscribes to the filter endpoint: one long-lived,
// OAuth1-signed POST whose body is newline-delimited JSON.
// Blank lines are keep-alives.
type TwitterTransport struct {
	log     *slog.Logger
	client  *http.Client
	url     string
	backoff Backoff
}

func NewTwitterTransport(log *slog.Logger, credentials Credentials, filterURL string, policy Backoff) *TwitterTransport {
	config := oauth1.NewConfig(credentials.ConsumerKey, credentials.ConsumerSecret)
	token := oauth1.NewToken(credentials.AccessToken, credentials.AccessTokenSecret)
	if filterURL == "" {
		filterURL = DefaultFilterURL
	}
	return &TwitterTransport{
		log:     log,
		client:  config.Client(oauth1.NoContext, token),
		url:     filterURL,
		backoff: policy,
	}
}

func (t *TwitterTransport) Stream(ctx context.Context, filter domain.Filter, listener contract.Listener) error {
	return keepStreaming(ctx, t.backoff, listener, func(ctx context.Context, connected func()) error {
		return t.connect(ctx, filter, listener, connected)
	})
}

func (t *TwitterTransport) connect(ctx context.Context, filter domain.Filter, listener contract.Listener, connected func()) error {
	form := url.Values{}
	form.Set("track", strings.Join(filter.Keywords, ","))
	if len(filter.Languages) > 0 {
		form.Set("language", strings.Join(filter.Languages, ","))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, strings.NewReader(form.Encode()))
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("filter stream answered %s", resp.Status)
		if permanentStatus(resp.StatusCode) {
			return backoff.Permanent(err)
		}
		return err
	}

	connected()
	t.log.Info("Connected to filter stream", "url", t.url, "keywords", len(filter.Keywords), "languages", filter.Languages)

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), maxFrameSize)
	for scanner.Scan() {
		frame := bytes.TrimSpace(scanner.Bytes())
		if len(frame) == 0 {
			continue
		}
		dispatch(ctx, frame, listener)
	}
	return scanner.Err()
}
