package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tweet-lab/domain"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// BadgerTweetRepository stores records in an embedded BadgerDB,
// one BSON document per key.
type BadgerTweetRepository struct {
	db         *badger.DB
	log        *slog.Logger
	collection string
}

func NewBadgerTweetRepository(db *badger.DB, log *slog.Logger, collection string) BadgerTweetRepository {
	return BadgerTweetRepository{db: db, log: log, collection: collection}
}

// Insert persists a record under "tweet:{collection}:{timestamp_padded}:{uuid}":
//  1. 19-digit zero padding keeps keys in arrival order.
//  2. The UUID keeps two records arriving at the same nanosecond apart,
//     so appending the same record twice stores it twice.
func (b BadgerTweetRepository) Insert(_ context.Context, record domain.NormalizedRecord) error {
	key := fmt.Sprintf("%s%019d:%s", b.prefix(), time.Now().UnixNano(), uuid.New())
	bytes, err := bson.Marshal(record)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func (b BadgerTweetRepository) Count(_ context.Context) (int64, error) {
	var count int64
	err := b.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()
		prefix := []byte(b.prefix())
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	return count, err
}

// All returns the stored records in arrival order.
func (b BadgerTweetRepository) All() ([]domain.NormalizedRecord, error) {
	var records []domain.NormalizedRecord
	err := b.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(b.prefix())
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				var record domain.NormalizedRecord
				if err := bson.Unmarshal(value, &record); err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return records, err
}

func (b BadgerTweetRepository) Name() string {
	return b.collection
}

func (b BadgerTweetRepository) prefix() string {
	return "tweet:" + b.collection + ":"
}
