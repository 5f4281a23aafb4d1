package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lead outcomes used as the "result" label
const (
	ResultAccepted    = "accepted"
	ResultRejected    = "rejected"
	ResultRateLimited = "rate_limited"
	ResultCanceled    = "canceled"
)

var (
	// Lead-capture form metrics
	LeadSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_lead_submissions_total",
		Help: "Lead form submissions by outcome",
	}, []string{"result"})

	LeadsByRole = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_leads_by_role_total",
		Help: "Accepted leads by selected role",
	}, []string{"role"})

	// Entry screen metrics
	EntrySessionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "website_entry_sessions_active",
		Help: "Open entry screen websocket sessions",
	})

	EntryExits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "website_entry_exits_total",
		Help: "Orb clicks that started the exit sequence",
	})

	EntryThemes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_entry_theme_renders_total",
		Help: "Entry screen renders by time-of-day theme",
	}, []string{"theme"})

	// HTTP
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "website_http_requests_total",
		Help: "HTTP requests by route pattern and status class",
	}, []string{"route", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "website_http_request_duration_seconds",
		Help:    "HTTP request latency by route pattern",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)
