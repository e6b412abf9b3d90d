package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	ChangesLogged = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "change_log_entries_total",
			Help: "Change log rows written",
		},
		[]string{"entity_type", "operation"},
	)
	ChangeLogFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "change_log_failures_total",
			Help: "Change log writes that failed",
		},
	)

	GuestCodesIssued = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "guest_codes_issued_total",
			Help: "Guest access codes minted",
		},
	)
	GuestCodesRedeemed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "guest_codes_redeemed_total",
			Help: "Guest access codes redeemed into sessions",
		},
	)
)

var Handler = promhttp.Handler

func Init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ChangesLogged)
	prometheus.MustRegister(ChangeLogFailures)
	prometheus.MustRegister(GuestCodesIssued)
	prometheus.MustRegister(GuestCodesRedeemed)
}
