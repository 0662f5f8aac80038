package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	LoginAttempts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "club_login_attempts_total", Help: "Total login attempts"},
	)
	LoginFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "club_login_failures_total", Help: "Total failed login attempts"},
	)
	RegistrationsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "club_registrations_total", Help: "Total event registrations created"},
	)
	TeamsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "club_teams_total", Help: "Total hackathon teams created"},
	)
	UploadsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "club_uploads_rejected_total", Help: "Total rejected PDF uploads"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "club_rate_limited_total", Help: "Total requests rejected by rate limiting"},
	)
)

func Register() {
	prometheus.MustRegister(
		LoginAttempts, LoginFailures,
		RegistrationsCreated, TeamsCreated,
		UploadsRejected, RateLimited,
	)
}
