package repositories

import (
	"context"
	"log/slog"
	"testing"

	"tweet-lab/domain"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoTweetRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	record := domain.NormalizedRecord{
		Date:     "2021-02-07T23:00:00",
		User:     "fan1",
		Tweet:    "Go Bucs!",
		Hashtags: []string{"SuperbowlLV"},
		TimeZone: lo.ToPtr("EST"),
		Location: lo.ToPtr("Tampa"),
	}

	mt.Run("insert success", func(mt *mtest.T) {
		req := require.New(mt)
		repository := NewMongoTweetRepository(mt.Coll, slog.Default())
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		req.NoError(repository.Insert(context.Background(), record))

		started := mt.GetStartedEvent()
		req.NotNil(started)
		req.Equal("insert", started.CommandName)
	})

	mt.Run("insert write error", func(mt *mtest.T) {
		req := require.New(mt)
		repository := NewMongoTweetRepository(mt.Coll, slog.Default())
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		req.Error(repository.Insert(context.Background(), record))
	})

	mt.Run("count", func(mt *mtest.T) {
		req := require.New(mt)
		repository := NewMongoTweetRepository(mt.Coll, slog.Default())
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		count, err := repository.Count(context.Background())
		req.NoError(err)
		req.EqualValues(3, count)
		req.Equal(ns, repository.Name())
	})
}
