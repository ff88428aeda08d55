package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"tweet-lab/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type MongoTweetRepository struct {
	coll *mongo.Collection
	log  *slog.Logger
}

func NewMongoTweetRepository(coll *mongo.Collection, log *slog.Logger) MongoTweetRepository {
	return MongoTweetRepository{coll: coll, log: log}
}

// ConnectMongo opens the client once for the process lifetime and checks the server answers.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return client, nil
}

func (m MongoTweetRepository) Insert(ctx context.Context, record domain.NormalizedRecord) error {
	res, err := m.coll.InsertOne(ctx, record)
	if err != nil {
		return err
	}
	m.log.Debug("Record inserted", "collection", m.Name(), "id", res.InsertedID)
	return nil
}

func (m MongoTweetRepository) Count(ctx context.Context) (int64, error) {
	return m.coll.CountDocuments(ctx, bson.D{})
}

func (m MongoTweetRepository) Name() string {
	return m.coll.Database().Name() + "." + m.coll.Name()
}
