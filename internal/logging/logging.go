// Package logging configures zerolog and provides request logging middleware.
package logging

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/diewo77/go-quotes/internal/config"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// Setup installs the global logger for the configured level and format.
func Setup(cfg config.LogConfig) {
	SetupWriter(cfg, os.Stdout)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(cfg config.LogConfig, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	// zerolog.Ctx falls back to the global logger outside requests.
	zerolog.DefaultContextLogger = &zlog.Logger

	if cfg.Format == "json" {
		zlog.Logger = zerolog.New(out).With().Timestamp().Logger()
		return
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// Middleware logs one line per request and attaches a request-scoped logger
// (retrievable with zerolog.Ctx) carrying the request id.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := r.Header.Get(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, reqID)

		logger := zlog.With().Str("request_id", reqID).Logger()
		r = r.WithContext(logger.WithContext(r.Context()))

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		ev := logger.Info()
		if rec.status >= http.StatusInternalServerError {
			ev = logger.Error()
		}
		ev.Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
