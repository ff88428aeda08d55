package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tweet-lab/contract"
	"tweet-lab/internal"
	"tweet-lab/observability"
	"tweet-lab/repositories"
	"tweet-lab/runtime/workers"
	"tweet-lab/sink"
	"tweet-lab/stream"
	"tweet-lab/track"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component from one configuration, so deferred cleanups
// (database handle, debug server) execute before main exits.
func run() error {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return err
	}
	log := logs.GetLoggerFromString(config.LogLevel)
	filter := config.Filter()

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Storage
	repository, closeRepository, err := openRepository(ctx, config, log)
	if err != nil {
		return err
	}
	defer closeRepository()

	// 4. Session
	matcher, err := track.NewMatcher(filter.Keywords)
	if err != nil {
		return fmt.Errorf("keyword matcher: %w", err)
	}
	stats := observability.NewStats()
	session := workers.NewTweetSession(
		log, newTransport(config, log), filter,
		sink.NewTweetSink(repository, log, config.SinkTimeout),
		matcher, stats,
	)

	if config.MetricsPort > 0 {
		server := internal.StartDebugServer(log, config.MetricsPort, stats.Snapshot)
		defer internal.StopDebugServer(server)
	}

	// 5. Listen until a signal arrives
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(session).Run(ctx)
	log.Info("Shutting down gracefully...")

	// 6. Final report
	countCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var stored *int64
	if count, err := repository.Count(countCtx); err == nil {
		stored = lo.ToPtr(count)
	} else {
		log.Warn("Could not count stored records", "error", err)
	}
	stats.Report(os.Stdout, repository.Name(), stored)
	if err := session.Rejected(); err != nil {
		return err
	}
	log.Info("Program stopped cleanly")
	return nil
}

func newTransport(config internal.Config, log *slog.Logger) contract.Transport {
	policy := stream.Backoff{}
	if config.Transport == internal.TransportWebsocket {
		return stream.NewWebsocketTransport(log, config.StreamURL, 0, policy)
	}
	credentials := stream.Credentials{
		ConsumerKey:       config.ConsumerKey,
		ConsumerSecret:    config.ConsumerSecret,
		AccessToken:       config.AccessToken,
		AccessTokenSecret: config.AccessTokenSecret,
	}
	return stream.NewTwitterTransport(log, credentials, config.StreamURL, policy)
}

func openRepository(ctx context.Context, config internal.Config, log *slog.Logger) (repositories.ITweetRepository, func(), error) {
	switch config.SinkBackend {
	case internal.BackendBadger:
		db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		closeDB := func() {
			log.Info("Closing BadgerDB...")
			_ = db.Close()
		}
		return repositories.NewBadgerTweetRepository(db, log, config.MongoCollection), closeDB, nil
	default:
		client, err := repositories.ConnectMongo(ctx, config.MongoURI)
		if err != nil {
			return nil, nil, fmt.Errorf("database opening failed: %w", err)
		}
		closeClient := func() {
			log.Info("Closing MongoDB client...")
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		coll := client.Database(config.MongoDatabase).Collection(config.MongoCollection)
		return repositories.NewMongoTweetRepository(coll, log), closeClient, nil
	}
}
