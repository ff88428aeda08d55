package repositories

import (
	"context"
	"log/slog"
	"testing"

	"tweet-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Insert_Multiple_Records(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewBadgerTweetRepository(openBadger(t), slog.Default(), "post_game")

	records := []domain.NormalizedRecord{
		{Date: "d1", User: "Alice", Tweet: "Go Bucs!", Hashtags: []string{"SuperbowlLV"}, TimeZone: lo.ToPtr("EST"), Location: lo.ToPtr("Tampa")},
		{Date: "d2", User: "Bob", Tweet: "Chiefs next year", Retweeted: true, Hashtags: []string{"ChiefsKingdom", "Chiefs"}},
		{Date: "d3", User: "Clara", Tweet: "GOAT", Hashtags: []string{"TomBrady"}, Location: lo.ToPtr("Boston")},
	}
	for _, record := range records {
		req.NoError(repository.Insert(ctx, record))
	}

	count, err := repository.Count(ctx)
	req.NoError(err)
	req.EqualValues(len(records), count)

	fetched, err := repository.All()
	req.NoError(err)
	req.Equal(records, fetched)
}

func Test_Insert_Same_Record_Twice_Stores_Two_Records(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repository := NewBadgerTweetRepository(openBadger(t), slog.Default(), "post_game")
	record := domain.NormalizedRecord{Date: "d", User: "fan1", Tweet: "Go Bucs!", Hashtags: []string{"SuperbowlLV"}}

	// Records are not deduplicated
	req.NoError(repository.Insert(ctx, record))
	req.NoError(repository.Insert(ctx, record))

	count, err := repository.Count(ctx)
	req.NoError(err)
	req.EqualValues(2, count)
}

func Test_Collections_Are_Isolated(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	db := openBadger(t)
	first := NewBadgerTweetRepository(db, slog.Default(), "first")
	second := NewBadgerTweetRepository(db, slog.Default(), "second")

	req.NoError(first.Insert(ctx, domain.NormalizedRecord{User: "a", Hashtags: []string{"x"}}))

	count, err := second.Count(ctx)
	req.NoError(err)
	req.Zero(count)
	req.Equal("second", second.Name())
}
