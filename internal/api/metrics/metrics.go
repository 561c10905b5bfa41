// Package metrics defines and registers all custom Prometheus metrics for the
// StayNest API. It is the single source of truth for metric names, labels, and
// help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "staynest"

// LoginsTotal counts login attempts by outcome ("success" or "failure").
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RegistrationsTotal counts completed registrations by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of completed registrations, by role.",
	},
	[]string{"role"},
)

// PaymentsRecordedTotal counts rent payments recorded, by payment method.
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of rent payments recorded, by method.",
	},
	[]string{"method"},
)

// RequestsOpenedTotal counts service requests opened, by type and priority.
var RequestsOpenedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_opened_total",
		Help:      "Total number of service requests opened, by type and priority.",
	},
	[]string{"type", "priority"},
)

// UploadsRejectedTotal counts document uploads rejected before storage.
// Label reason: "too_large" or "bad_type".
var UploadsRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_rejected_total",
		Help:      "Total number of document uploads rejected by validation.",
	},
	[]string{"reason"},
)

// TokensRevokedTotal counts tokens revoked by logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens revoked via logout.",
	},
)
