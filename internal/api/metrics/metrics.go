// Package metrics defines and registers all custom Prometheus metrics for the
// shelter API. It is the single source of truth for metric names, labels, and
// help strings. Registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shelter"

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "success" or "duplicate_email"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// VolunteerApplicationsTotal counts volunteer applications merged into an account.
var VolunteerApplicationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "volunteer_applications_total",
		Help:      "Total number of volunteer applications successfully merged.",
	},
)

// AnimalsCreatedTotal counts animal records added.
// Label:
//   - type: the animal type (e.g. "dog", "cat")
var AnimalsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "animals_created_total",
		Help:      "Total number of animal records created, by animal type.",
	},
	[]string{"type"},
)

// AnimalUpdatesTotal counts admin updates to animal records.
// Label:
//   - status: the status the record was set to (e.g. "ADOPTED")
var AnimalUpdatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "animal_updates_total",
		Help:      "Total number of admin animal updates, by resulting status.",
	},
	[]string{"status"},
)
