package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dshills/statespace-go/internal/ux"
	"github.com/dshills/statespace-go/search"
	"github.com/dshills/statespace-go/search/emit"
	"github.com/dshills/statespace-go/search/store"
)

const shutdownTimeout = 3 * time.Second

// multiEmitter fans one event stream out to several sinks.
type multiEmitter []emit.Emitter

func (m multiEmitter) Emit(event emit.Event) {
	for _, e := range m {
		e.Emit(event)
	}
}

// solveEnv bundles everything a puzzle command wires up around the
// search itself: event sinks, metrics, and the run archive.
type solveEnv struct {
	opts    search.Options
	archive store.Store[string]
	wait    func()
	cleanup []func()
}

// newSolveEnv assembles the search options from the persistent flags.
// Callers must close() the returned environment when done.
func newSolveEnv() (*solveEnv, error) {
	env := &solveEnv{}

	var sinks []emit.Emitter
	if flagEvents || flagEventsJSON {
		sinks = append(sinks, emit.NewLogEmitter(os.Stderr, flagEventsJSON))
	}
	if flagTrace {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
		otel.SetTracerProvider(provider)
		otelEmitter := emit.NewOTelEmitter(provider.Tracer("statespace"))
		sinks = append(sinks, otelEmitter)
		env.cleanup = append(env.cleanup, func() {
			ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := otelEmitter.Flush(ctx); err != nil {
				ux.Errorf("flush spans: %v", err)
			}
			if err := provider.Shutdown(ctx); err != nil {
				ux.Errorf("shut down tracer: %v", err)
			}
		})
	}
	switch len(sinks) {
	case 0:
	case 1:
		env.opts.Emitter = sinks[0]
	default:
		env.opts.Emitter = multiEmitter(sinks)
	}

	if flagMetricsListen != "" {
		registry := prometheus.NewRegistry()
		env.opts.Metrics = search.NewPrometheusMetrics(registry)
		env.wait = serveMetrics(flagMetricsListen, registry)
	}

	env.opts.MaxStates = flagMaxStates

	archive, closeArchive, err := openArchive()
	if err != nil {
		env.close()
		return nil, err
	}
	env.archive = archive
	if closeArchive != nil {
		env.cleanup = append(env.cleanup, func() {
			if err := closeArchive(); err != nil {
				ux.Errorf("close archive: %v", err)
			}
		})
	}

	return env, nil
}

// close releases the environment's resources in reverse wiring order.
func (e *solveEnv) close() {
	for i := len(e.cleanup) - 1; i >= 0; i-- {
		e.cleanup[i]()
	}
	e.cleanup = nil
}

// waitIfServing blocks until interrupt when a metrics endpoint is up, so
// the scrape target outlives the solve.
func (e *solveEnv) waitIfServing() {
	if e.wait != nil {
		e.wait()
	}
}

// serveMetrics exposes the registry on addr and returns a function that
// blocks until SIGINT or SIGTERM, then shuts the server down.
func serveMetrics(addr string, registry *prometheus.Registry) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ux.Errorf("metrics server: %v", err)
		}
	}()

	return func() {
		fmt.Println(ux.Statline(fmt.Sprintf("serving metrics on %s, ctrl-c to exit", addr)))
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			ux.Errorf("shut down metrics server: %v", err)
		}
	}
}

// openArchive resolves --store into a run archive. The empty string and
// "none" disable archiving; "memory" and "mysql" select those backends;
// anything else is a SQLite file path.
func openArchive() (store.Store[string], func() error, error) {
	switch flagStore {
	case "", "none":
		return nil, nil, nil
	case "memory":
		return store.NewMemStore[string](), nil, nil
	case "mysql":
		dsn := flagMySQLDSN
		if dsn == "" {
			dsn = os.Getenv("STATESPACE_MYSQL_DSN")
		}
		if dsn == "" {
			return nil, nil, errors.New("mysql archive needs --mysql-dsn or STATESPACE_MYSQL_DSN")
		}
		st, err := store.NewMySQLStore[string](dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("open mysql archive: %w", err)
		}
		return st, st.Close, nil
	default:
		st, err := store.NewSQLiteStore[string](flagStore)
		if err != nil {
			return nil, nil, fmt.Errorf("open archive %s: %w", flagStore, err)
		}
		return st, st.Close, nil
	}
}

// renderPath formats every state on the path for display and archiving.
func renderPath[S any](path []S, render func(S) string) []string {
	if len(path) == 0 {
		return nil
	}
	states := make([]string, len(path))
	for i, s := range path {
		states[i] = render(s)
	}
	return states
}

// stepCaptions recovers the move behind each step of the path when
// --explain is set. A step whose move cannot be reconstructed leaves the
// whole path uncaptioned rather than mislabeled.
func stepCaptions[S comparable, M fmt.Stringer](path []S, moves func(S) []M, apply func(S, M) S) []string {
	if !flagExplain || len(path) < 2 {
		return nil
	}
	annotated, ok := search.Annotate(path, moves, apply)
	if !ok {
		return nil
	}
	captions := make([]string, len(annotated))
	for i, m := range annotated {
		captions[i] = m.String()
	}
	return captions
}

// finishRun reports the outcome and archives it when a store is open.
func finishRun(ctx context.Context, env *solveEnv, model string, order search.Order, found bool, runID string, states []string, stats search.Stats) error {
	fmt.Println(ux.Solution(found, len(states)))
	fmt.Println(ux.Statline(fmt.Sprintf("expanded %d, generated %d, rejected %d, duplicates %d, peak frontier %d, %s",
		stats.Expanded, stats.Generated, stats.Rejected, stats.Duplicates, stats.PeakFrontier, stats.Duration)))

	if env.archive == nil {
		return nil
	}
	rec := store.Record[string]{
		RunID:    runID,
		Model:    model,
		Order:    order.String(),
		Found:    found,
		Path:     states,
		Expanded: stats.Expanded,
		Duration: stats.Duration,
	}
	if err := env.archive.SaveRun(ctx, rec); err != nil {
		return fmt.Errorf("archive run: %w", err)
	}
	fmt.Println(ux.Statline(fmt.Sprintf("archived run %s", runID)))
	return nil
}
