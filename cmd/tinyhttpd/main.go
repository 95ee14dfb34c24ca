// Command tinyhttpd runs the raw-socket HTTP server. The default mode
// dispatches one goroutine per connection; -sequential serves
// connections one at a time on the accept loop.
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"

	"tinyhttpd/internal/config"
	"tinyhttpd/internal/obs"
	"tinyhttpd/rawhttp"
	"tinyhttpd/render"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides SERVER_HOST/SERVER_PORT)")
	sequential := flag.Bool("sequential", false, "serve connections one at a time")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	lvl := zerolog.InfoLevel
	if *debug {
		lvl = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	listen := cfg.ServerAddress()
	if *addr != "" {
		listen = *addr
	}
	if *sequential {
		cfg.Server.Sequential = true
	}

	meter := obs.NewCounterMeter()
	r := render.New()
	r.Metrics = meter.Snapshot

	srv := &rawhttp.Server{
		Addr:     listen,
		Renderer: r,
		Router: rawhttp.Router{Extras: map[string]rawhttp.RouteKind{
			"/healthz": rawhttp.RouteHealthz,
			"/metrics": rawhttp.RouteMetrics,
		}},
		Sequential:     cfg.Server.Sequential,
		ReadBufferSize: cfg.Server.ReadBufferBytes,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		Logger:         obs.ZerologLogger{L: log},
		Meter:          meter,
		Report:         reportConn(log),
	}

	log.Info().
		Str("address", "http://"+listen).
		Bool("sequential", cfg.Server.Sequential).
		Str("version", r.Info.Version).
		Msg("server started")

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// reportConn logs every connection outcome, the structured equivalent
// of the reference's per-connection status table.
func reportConn(log zerolog.Logger) func(rawhttp.ConnectionOutcome, error) {
	return func(out rawhttp.ConnectionOutcome, err error) {
		if err != nil {
			log.Error().
				Str("connection", out.Peer).
				Err(err).
				Msg("request failed")
			return
		}
		if out.StatusText == "" {
			log.Debug().
				Str("connection", out.Peer).
				Msg("closed without sending a request")
			return
		}
		log.Info().
			Str("connection", out.Peer).
			Str("request", out.Path).
			Str("response", out.StatusText).
			Int("bytes", out.BytesRead).
			Msg("request served")
	}
}
