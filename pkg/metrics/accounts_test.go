package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestAccountMetricsExportCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewAccountMetrics(reg)

	metrics.IncRegistration("student")
	metrics.IncRegistration("student")
	metrics.IncActivation("ok")
	metrics.IncLogin("invalid_credentials")
	metrics.IncOTPEmail()

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "account_registrations_total", "role", "student"); err != nil {
		t.Fatalf("fetch registrations: %v", err)
	} else if got != 2 {
		t.Fatalf("expected registrations=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "account_activations_total", "result", "ok"); err != nil {
		t.Fatalf("fetch activations: %v", err)
	} else if got != 1 {
		t.Fatalf("expected activations=1, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "account_logins_total", "result", "invalid_credentials"); err != nil {
		t.Fatalf("fetch logins: %v", err)
	} else if got != 1 {
		t.Fatalf("expected logins=1, got %f", got)
	}
}

func TestAccountMetricsNilSafe(t *testing.T) {
	var metrics *AccountMetrics
	metrics.IncRegistration("judge")
	metrics.IncActivation("ok")
	metrics.IncLogin("ok")
	metrics.IncOTPEmail()

	empty := NewAccountMetrics(nil)
	empty.IncRegistration("judge")
}

func TestNormalizeLabel(t *testing.T) {
	if got := normalizeLabel("  Student "); got != "student" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := normalizeLabel(""); got != "unknown" {
		t.Fatalf("unexpected label %q", got)
	}
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, labelKey, labelValue string) (float64, error) {
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelKey && label.GetValue() == labelValue {
					return metric.GetCounter().GetValue(), nil
				}
			}
		}
	}
	return 0, fmt.Errorf("metric %s{%s=%q} not found", name, labelKey, labelValue)
}
