package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tweet-lab/domain"
	"tweet-lab/observability"
	"tweet-lab/repositories"
	"tweet-lab/runtime/workers"
	"tweet-lab/sink"
	"tweet-lab/stream"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
)

type ingestionSuite struct {
	BaseMongoSuite
}

func TestIngestionSuite(t *testing.T) {
	suite.Run(t, &ingestionSuite{})
}

func (s *ingestionSuite) TestFilterStreamToCollection() {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	coll := s.Collection("post_game")
	filter := domain.Filter{Keywords: []string{"Bucs", "SuperbowlLV"}, Languages: []string{"en"}}

	s.Step("Serve a filter stream: tweet, deletion, warning, broken tweet, tweet")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		for _, line := range []string{
			`{"text": "Go Bucs!", "entities":{"hashtags":[{"text":"SuperbowlLV"}]}, "created_at":"2021-02-07T23:00:00", "user":{"screen_name":"fan1", "time_zone":"EST", "location":"Tampa"}, "retweeted": false}`,
			`{"delete": {"status": {"id": 1357}}}`,
			`{"warning":{"code":"FALLING_BEHIND","message":"queue 60% full"}}`,
			`{"text": "no author", "entities":{"hashtags":[]}, "created_at":"2021-02-07T23:01:00", "retweeted": false}`,
			`{"text": "Tampa!", "entities":{"hashtags":[]}, "created_at":"2021-02-07T23:02:00", "user":{"screen_name":"fan2", "time_zone":null, "location":null}, "retweeted": true}`,
		} {
			fmt.Fprint(w, line+"\r\n")
			w.(http.Flusher).Flush()
		}
		<-r.Context().Done()
	}))
	defer server.Close()

	s.Step("Run the session until both tweets are stored")
	repository := repositories.NewMongoTweetRepository(coll, log)
	stats := observability.NewStats()
	transport := stream.NewTwitterTransport(log, stream.Credentials{
		ConsumerKey: "k", ConsumerSecret: "s", AccessToken: "t", AccessTokenSecret: "ts",
	}, server.URL, stream.Backoff{Initial: 10 * time.Millisecond})
	session := workers.NewTweetSession(log, transport, filter, sink.NewTweetSink(repository, log, 5*time.Second), nil, stats)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		_ = session.Run(ctx)
		close(done)
	}()
	s.Require().Eventually(func() bool { return stats.Stored.Load() == 2 }, 10*time.Second, 20*time.Millisecond)
	cancel()
	<-done

	s.Step("Check the stored documents")
	cursor, err := coll.Find(context.Background(), bson.D{}, nil)
	s.Require().NoError(err)
	var records []domain.NormalizedRecord
	s.Require().NoError(cursor.All(context.Background(), &records))
	s.Require().Len(records, 2)
	s.Equal(domain.NormalizedRecord{
		Date:      "2021-02-07T23:00:00",
		User:      "fan1",
		Tweet:     "Go Bucs!",
		Retweeted: false,
		Hashtags:  []string{"SuperbowlLV"},
		TimeZone:  lo.ToPtr("EST"),
		Location:  lo.ToPtr("Tampa"),
	}, records[0])
	s.Equal("fan2", records[1].User)
	s.Nil(records[1].TimeZone)
	s.EqualValues(1, stats.MissingField.Load())
	s.EqualValues(1, stats.TransportErrors.Load())
}
