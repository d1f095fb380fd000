// Copyright (c) 2025 The faculty-vote authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service holds the election counters. Each instance owns its own
// registry so handlers under test can register freely.
type Service struct {
	VotesAccepted       prometheus.Counter
	DuplicateRejections prometheus.Counter
	EligibilityFailures prometheus.Counter
	NominationsReceived prometheus.Counter
	NominationConflicts prometheus.Counter

	registry *prometheus.Registry
}

func NewService() *Service {
	s := &Service{
		VotesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "election_votes_accepted_total",
			Help: "Ballot submissions accepted and recorded in the ledger",
		}),
		DuplicateRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "election_duplicate_rejections_total",
			Help: "Submissions rejected because a category was already voted",
		}),
		EligibilityFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "election_eligibility_failures_total",
			Help: "Matriculation numbers that failed the eligibility rules",
		}),
		NominationsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "election_nominations_received_total",
			Help: "Nominations stored for review",
		}),
		NominationConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "election_nomination_conflicts_total",
			Help: "Nomination batches rejected for a duplicate nominator",
		}),
		registry: prometheus.NewRegistry(),
	}

	s.registry.MustRegister(
		s.VotesAccepted,
		s.DuplicateRejections,
		s.EligibilityFailures,
		s.NominationsReceived,
		s.NominationConflicts,
	)

	return s
}

// Handler serves the registry in prometheus text exposition format.
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})
}
