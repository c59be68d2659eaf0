// Package main implements the zonegrid web server: a browser-based time
// zone comparison view with URL-query-string state.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/zonegrid/zonegrid/pkg/convert"
	"github.com/zonegrid/zonegrid/pkg/tz"
)

//go:embed templates/home.html
var homeTemplate string

//go:embed static/*
var staticFiles embed.FS

var (
	port    = flag.String("port", "8080", "Port for web server (or set ZONEGRID_PORT)")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
	version = flag.Bool("version", false, "Show version")
)

type rateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
}

func newRateLimiter() *rateLimiter {
	return &rateLimiter{
		requests: make(map[string][]time.Time),
	}
}

func (rl *rateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-time.Minute)

	var valid []time.Time
	for _, t := range rl.requests[ip] {
		if t.After(cutoff) {
			valid = append(valid, t)
		}
	}

	// Rate limit: 120 requests per minute per IP. Generous; every user
	// action reloads the page.
	if len(valid) >= 120 {
		rl.requests[ip] = valid
		return false
	}

	rl.requests[ip] = append(valid, now)
	return true
}

func main() {
	flag.Parse()

	if *version {
		fmt.Println("zonegrid Server v1.0.0")
		return
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if env := os.Getenv("ZONEGRID_PORT"); env != "" && !flagChanged("port") {
		*port = env
	}

	logger.Info("Server configuration", "port", *port, "verbose", *verbose)

	tmpl, err := template.New("home").Parse(homeTemplate)
	if err != nil {
		logger.Error("Failed to parse home template", "error", err)
		os.Exit(1)
	}

	resolver := tz.NewResolver()
	catalog := tz.NewCatalog(resolver, logger)

	// Caches catalog search responses only. Conversion responses depend on
	// the instant and are recomputed on every request, never cached.
	cache := otter.Must(&otter.Options[string, []byte]{
		MaximumSize:     10_000,
		InitialCapacity: 256,
	})

	server := &server{
		engine:   convert.New(resolver),
		resolver: resolver,
		catalog:  catalog,
		cache:    cache,
		limiter:  newRateLimiter(),
		logger:   logger,
		tmpl:     tmpl,
		now:      time.Now,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", server.handleHome)
	mux.HandleFunc("GET /api/v1/convert", server.handleConvert)
	mux.HandleFunc("GET /api/v1/grid", server.handleGrid)
	mux.HandleFunc("GET /api/v1/zones", server.handleZones)
	mux.HandleFunc("GET /healthz", server.handleHealthz)
	mux.Handle("/static/", http.FileServer(http.FS(staticFiles)))

	srv := &http.Server{
		Addr:              ":" + *port,
		Handler:           server.wrap(mux),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", *port)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}

func flagChanged(name string) bool {
	changed := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			changed = true
		}
	})
	return changed
}

type server struct {
	engine   *convert.Engine
	resolver *tz.Resolver
	catalog  tz.Catalog
	cache    *otter.Cache[string, []byte]
	limiter  *rateLimiter
	logger   *slog.Logger
	tmpl     *template.Template
	now      func() time.Time
}

func (s *server) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := fmt.Sprintf("%d-%d", time.Now().Unix(), time.Now().Nanosecond())
		w.Header().Set("X-Request-ID", requestID)

		defer func() {
			if err := recover(); err != nil {
				const size = 64 << 10
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]

				s.logger.Error("PANIC: Request handler crashed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", requestID,
					"client_ip", clientIP(r),
					"stack", string(buf))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:")

		switch {
		case strings.HasPrefix(r.URL.Path, "/api/"):
			// Conversion output is time-dependent; never let it cache.
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		case strings.HasPrefix(r.URL.Path, "/static/"):
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
		default:
			w.Header().Set("Cache-Control", "no-store")
		}

		if !s.limiter.allow(clientIP(r)) {
			s.logger.Error("Rate limit exceeded", "request_id", requestID, "client_ip", clientIP(r))
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			return
		}

		handler.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	return strings.Split(r.RemoteAddr, ":")[0]
}
