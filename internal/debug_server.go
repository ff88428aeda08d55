package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/samber/lo"
)

type StatsProvider func() map[string]any

// StartDebugServer exposes /metrics for Prometheus and /stats for a quick look at the session.
// The returned server is shut down by the caller.
func StartDebugServer(log *slog.Logger, port int, statsProvider StatsProvider) *http.Server {
	server := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%d", port),
		Handler:           NewDebugMux(statsProvider),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("Starting debug server", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn("Debug server stopped", "error", err)
		}
	}()
	return server
}

func NewDebugMux(statsProvider StatsProvider) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if statsProvider == nil {
			return
		}
		stats := statsProvider()
		keys := lo.Keys(stats)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "%s %v\n", k, stats[k])
		}
	})
	return mux
}

func StopDebugServer(server *http.Server) {
	if server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)
}
