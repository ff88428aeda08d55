package workers

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"tweet-lab/contract"
	"tweet-lab/domain"
	"tweet-lab/errors"
	"tweet-lab/normalizer"
	"tweet-lab/observability"
	"tweet-lab/track"

	"github.com/abadojack/whatlanggo"
)

// TweetSession is the long-lived subscription for one filter.
// The transport calls OnData and OnError sequentially, one frame at a time,
// so a slow write backs up the read loop. Nothing in the message path
// terminates the session: failures are logged, counted and the frame dropped.
type TweetSession struct {
	log       *slog.Logger
	transport contract.Transport
	filter    domain.Filter
	sink      contract.RecordSink
	matcher   *track.Matcher
	stats     *observability.Stats
	// rejected is written by Run and read once the supervisor has returned
	rejected error
}

func NewTweetSession(log *slog.Logger, transport contract.Transport, filter domain.Filter,
	sink contract.RecordSink, matcher *track.Matcher, stats *observability.Stats) *TweetSession {
	return &TweetSession{
		log:       log,
		transport: transport,
		filter:    filter,
		sink:      sink,
		matcher:   matcher,
		stats:     stats,
	}
}

func (s *TweetSession) Run(ctx context.Context) error {
	s.log.Info("Opening stream session", "keywords", s.filter.Keywords, "languages", s.filter.Languages)
	err := s.transport.Stream(ctx, s.filter, s)
	if err == nil || ctx.Err() != nil {
		return err
	}
	s.OnError(ctx, err)
	if stderrors.Is(err, errors.ErrStreamRejected) {
		// Reopening would get the same answer, finish instead of being restarted
		s.log.Error("Stream rejected, session stopped", "error", err)
		s.rejected = err
		return nil
	}
	return err
}

// Rejected returns the error that stopped the session for good, if any.
func (s *TweetSession) Rejected() error {
	return s.rejected
}

func (s *TweetSession) OnData(ctx context.Context, frame []byte) {
	s.stats.Received.Add(1)
	// outcome counted when a panic escapes, it follows the stage the message reached
	panicOutcome := observability.OutcomeMalformed
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Message handling panicked, message dropped", "panic", r, "size", len(frame))
			if panicOutcome != "" {
				s.stats.Outcome(panicOutcome)
			}
		}
	}()

	record, err := normalizer.Normalize(frame)
	if err != nil {
		if field, ok := errors.FieldOf(err); ok {
			s.log.Warn("Message dropped", "reason", "missing field", "field", field)
			s.stats.Outcome(observability.OutcomeMissingField)
			return
		}
		s.log.Warn("Message dropped", "reason", "malformed", "error", err, "size", len(frame))
		s.stats.Outcome(observability.OutcomeMalformed)
		return
	}
	if record == nil {
		s.stats.Outcome(observability.OutcomeSkipped)
		return
	}

	panicOutcome = observability.OutcomeWriteError
	start := time.Now()
	if err = s.sink.Append(ctx, *record); err != nil {
		s.log.Error("Record dropped", "error", err, "user", record.User)
		s.stats.Outcome(observability.OutcomeWriteError)
		return
	}
	observability.SinkWriteDuration.Observe(time.Since(start).Seconds())
	s.stats.Outcome(observability.OutcomeStored)
	panicOutcome = ""
	s.observe(*record)
}

func (s *TweetSession) OnError(_ context.Context, err error) {
	s.log.Warn("Transport error, still listening", "error", err)
	s.stats.Transport()
}

func (s *TweetSession) observe(record domain.NormalizedRecord) {
	keywords := s.matcher.Match(record.Tweet)
	for _, keyword := range keywords {
		observability.KeywordMatchesTotal.WithLabelValues(keyword).Inc()
	}
	lang := whatlanggo.Detect(record.Tweet).Lang.Iso6391()
	if lang == "" {
		lang = "und"
	}
	observability.LanguagesTotal.WithLabelValues(lang).Inc()
	s.log.Debug("Record stored", "user", record.User, "keywords", keywords, "lang", lang)
}
