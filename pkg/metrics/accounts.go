package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// AccountMetrics records counters for the registration and login flows.
type AccountMetrics struct {
	registrations *prometheus.CounterVec
	activations   *prometheus.CounterVec
	logins        *prometheus.CounterVec
	otpEmails     prometheus.Counter
}

// NewAccountMetrics registers the account metrics on the provided registerer.
func NewAccountMetrics(reg prometheus.Registerer) *AccountMetrics {
	if reg == nil {
		return &AccountMetrics{}
	}
	registrations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "account_registrations_total",
		Help: "Completed registrations by role.",
	}, []string{"role"})
	activations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "account_activations_total",
		Help: "Activation attempts by result.",
	}, []string{"result"})
	logins := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "account_logins_total",
		Help: "Login attempts by result.",
	}, []string{"result"})
	otpEmails := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "account_otp_emails_total",
		Help: "OTP emails dispatched.",
	})
	reg.MustRegister(registrations, activations, logins, otpEmails)
	return &AccountMetrics{
		registrations: registrations,
		activations:   activations,
		logins:        logins,
		otpEmails:     otpEmails,
	}
}

// IncRegistration increments the registration counter for the given role.
func (m *AccountMetrics) IncRegistration(role string) {
	if m == nil || m.registrations == nil {
		return
	}
	m.registrations.WithLabelValues(normalizeLabel(role)).Inc()
}

// IncActivation increments the activation counter for the given result.
func (m *AccountMetrics) IncActivation(result string) {
	if m == nil || m.activations == nil {
		return
	}
	m.activations.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncLogin increments the login counter for the given result.
func (m *AccountMetrics) IncLogin(result string) {
	if m == nil || m.logins == nil {
		return
	}
	m.logins.WithLabelValues(normalizeLabel(result)).Inc()
}

// IncOTPEmail increments the dispatched OTP email counter.
func (m *AccountMetrics) IncOTPEmail() {
	if m == nil || m.otpEmails == nil {
		return
	}
	m.otpEmails.Inc()
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
