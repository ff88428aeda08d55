package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tweet-lab/domain"
	"tweet-lab/errors"
	"tweet-lab/repositories"
)

// TweetSink appends one normalized record per call to its repository.
// Each call is one independent write bounded by the sink timeout.
type TweetSink struct {
	repository repositories.ITweetRepository
	log        *slog.Logger
	timeout    time.Duration
}

func NewTweetSink(repository repositories.ITweetRepository, log *slog.Logger, timeout time.Duration) TweetSink {
	return TweetSink{repository: repository, log: log, timeout: timeout}
}

func (s TweetSink) Append(ctx context.Context, record domain.NormalizedRecord) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.repository.Insert(ctx, record); err != nil {
		return fmt.Errorf("%w: %s: %w", errors.ErrWrite, s.repository.Name(), err)
	}
	s.log.Debug("Record stored", "collection", s.repository.Name(), "user", record.User)
	return nil
}
