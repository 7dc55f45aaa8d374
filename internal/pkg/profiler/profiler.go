// Package profiler exposes a wall-clock profile of the running process over HTTP.
package profiler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/felixge/fgprof"
	"github.com/rs/zerolog/log"
)

const Path = "/debug/fgprof"

// Serve starts serving fgprof at Path on addr in the background. The returned
// function shuts the listener down; it is safe to call when addr is empty, in
// which case nothing is served.
func Serve(addr string) (stop func()) {
	if addr == "" {
		return func() {}
	}

	mux := http.NewServeMux()
	mux.Handle(Path, fgprof.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("address", addr).Str("path", Path).Msg("profiler listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("profiler stopped")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
