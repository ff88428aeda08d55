//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"tweet-lab/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Listener receives stream frames and transport notices, one call at a time.
type Listener interface {
	OnData(ctx context.Context, frame []byte)
	OnError(ctx context.Context, err error)
}

// Transport owns the connection to the stream and its reconnection policy.
// Stream blocks until ctx is done or the transport gives up.
type Transport interface {
	Stream(ctx context.Context, filter domain.Filter, listener Listener) error
}

type RecordSink interface {
	Append(ctx context.Context, record domain.NormalizedRecord) error
}
