//go:generate go run go.uber.org/mock/mockgen -source=tweet.go -destination=../mocks/mock_tweet_repository.go -package=mocks
package repositories

import (
	"context"

	"tweet-lab/domain"
)

// ITweetRepository appends normalized records to one named collection.
// Inserts are independent: nothing is deduplicated.
type ITweetRepository interface {
	Insert(ctx context.Context, record domain.NormalizedRecord) error
	Count(ctx context.Context) (int64, error)
	Name() string
}
