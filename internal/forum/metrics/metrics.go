// Package metrics holds the forum's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ThreadsCreated counts threads created.
	ThreadsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_threads_created_total",
		Help: "Total number of threads created",
	})

	// PostsCreated counts replies, seed posts excluded.
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_posts_created_total",
		Help: "Total number of replies posted",
	})

	// PostsRejected counts replies refused by thread state.
	PostsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_posts_rejected_total",
		Help: "Total number of replies rejected by reason",
	}, []string{"reason"})

	FlagsRaised = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_flags_total",
		Help: "Total number of flag requests",
	})

	// ModerationActions counts resolves and lock toggles by action.
	ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_moderation_actions_total",
		Help: "Total number of moderation actions by type",
	}, []string{"action"})

	RoleChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_role_changes_total",
		Help: "Total number of role updates by resulting role",
	}, []string{"role"})

	// ActivityTouchFailures counts replies whose thread activity could not
	// be bumped after the reply was stored.
	ActivityTouchFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "forum_activity_touch_failures_total",
		Help: "Total number of failed thread activity updates after a reply",
	})

	// AuthorizationDenials counts requests refused by the role guard.
	AuthorizationDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "forum_authorization_denials_total",
		Help: "Total number of requests refused by required role",
	}, []string{"requirement"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "forum_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds by route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// HTTPMiddleware records request latency labelled by the matched route
// pattern, so path parameters do not explode label cardinality.
func HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		HTTPRequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(rec.status)).
			Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (s *statusRecorder) WriteHeader(code int) {
	if !s.wroteHeader {
		s.status = code
		s.wroteHeader = true
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Unwrap() http.ResponseWriter { return s.ResponseWriter }
