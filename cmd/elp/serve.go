package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/ChristopherRabotin/elp"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"
)

func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve positions over HTTP and websocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				conf.ServerAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return serve(ctx, newServer(theory, conf, logger, prometheus.NewRegistry()))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func serve(ctx context.Context, s *server) error {
	srv := &http.Server{
		Addr:              s.conf.ServerAddr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		level.Info(s.logger).Log("subsys", "server", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// limiterTTL is how long a client's bucket outlives its last request.
const limiterTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientLimiters holds one token bucket per client address. Buckets idle for
// longer than ttl are dropped.
type clientLimiters struct {
	mu        sync.Mutex
	limiters  map[string]*clientLimiter
	r         rate.Limit
	b         int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newClientLimiters(r rate.Limit, b int) *clientLimiters {
	return &clientLimiters{
		limiters:  make(map[string]*clientLimiter),
		r:         r,
		b:         b,
		ttl:       limiterTTL,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *clientLimiters) get(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	if now.Sub(l.lastSweep) > l.ttl {
		for k, c := range l.limiters {
			if now.Sub(c.lastSeen) > l.ttl {
				delete(l.limiters, k)
			}
		}
		l.lastSweep = now
	}
	c, exists := l.limiters[client]
	if !exists {
		c = &clientLimiter{limiter: rate.NewLimiter(l.r, l.b)}
		l.limiters[client] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (l *clientLimiters) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

type server struct {
	theory   *elp.Theory
	conf     elp.Config
	logger   log.Logger
	limiters *clientLimiters
	metrics  *metrics
	gatherer prometheus.Gatherer
	upgrader websocket.Upgrader
}

func newServer(th *elp.Theory, conf elp.Config, logger log.Logger, reg *prometheus.Registry) *server {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &server{
		theory:   th,
		conf:     conf,
		logger:   log.With(logger, "subsys", "server"),
		limiters: newClientLimiters(rate.Limit(conf.ServerRate), conf.ServerBurst),
		metrics:  newMetrics(reg),
		gatherer: reg,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/position", s.limit(s.handlePosition))
	mux.HandleFunc("/stream", s.limit(s.handleStream))
	mux.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return mux
}

func (s *server) limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}
		if !s.limiters.get(client).Allow() {
			s.metrics.rateLimited.Inc()
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// positionResponse is the body of /position and of each /stream message.
type positionResponse struct {
	JD        float64 `json:"jd"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Z         float64 `json:"z"`
	Distance  float64 `json:"distance_km"`
	Longitude float64 `json:"longitude_deg"`
	Latitude  float64 `json:"latitude_deg"`
	Precision float64 `json:"precision"`
}

func (s *server) position(jd, precision float64) positionResponse {
	x, y, z := s.theory.Position(jd, precision)
	sph := s.theory.Spherical(jd, precision)
	return positionResponse{
		JD:        jd,
		X:         x,
		Y:         y,
		Z:         z,
		Distance:  sph.Dist,
		Longitude: sph.Lon.Deg(),
		Latitude:  sph.Lat.Deg(),
		Precision: precision,
	}
}

// handlePosition answers GET /position?jd=...&precision=... or ?date=...;
// the date is read as TT and without one the current time is used.
func (s *server) handlePosition(w http.ResponseWriter, r *http.Request) {
	began := time.Now()
	code := http.StatusOK
	defer func() { s.metrics.record("position", code, time.Since(began)) }()

	q := r.URL.Query()
	var jd float64
	if v := q.Get("jd"); v != "" {
		var err error
		if jd, err = strconv.ParseFloat(v, 64); err != nil {
			code = http.StatusBadRequest
			http.Error(w, fmt.Sprintf("invalid jd `%s`", v), code)
			return
		}
	}
	jd, err := readJD(jd, q.Get("date"))
	if err != nil {
		code = http.StatusBadRequest
		http.Error(w, err.Error(), code)
		return
	}
	precision := s.conf.Precision
	if v := q.Get("precision"); v != "" {
		if precision, err = strconv.ParseFloat(v, 64); err != nil || precision < 0 {
			code = http.StatusBadRequest
			http.Error(w, fmt.Sprintf("invalid precision `%s`", v), code)
			return
		}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.position(jd, precision)); err != nil {
		level.Warn(s.logger).Log("endpoint", "position", "err", err)
	}
}

// handleStream pushes the current position every stream interval until the
// client goes away.
func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		level.Warn(s.logger).Log("endpoint", "stream", "err", err)
		return
	}
	defer conn.Close()
	s.metrics.streams.Inc()
	defer s.metrics.streams.Dec()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	interval := s.conf.StreamInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		began := time.Now()
		if err := conn.WriteJSON(s.position(elp.JD(began), s.conf.Precision)); err != nil {
			level.Debug(s.logger).Log("endpoint", "stream", "status", "closed", "err", err)
			return
		}
		s.metrics.record("stream", http.StatusOK, time.Since(began))
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
