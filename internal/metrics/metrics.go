// Package metrics exposes prometheus counters for scoring activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MarkWrites counts ledger mutations by score category.
	MarkWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scorecard_mark_writes_total",
		Help: "Number of mark-writing operations applied, by category.",
	}, []string{"category"})

	// LeaderboardReads counts on-demand ranking computations.
	LeaderboardReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scorecard_leaderboard_reads_total",
		Help: "Number of leaderboard computations, by ranking.",
	}, []string{"ranking"})

	// DedupMerges counts CCE groups merged by the maintenance dedup run.
	DedupMerges = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scorecard_cce_dedup_students_total",
		Help: "Number of student records rewritten by CCE deduplication.",
	})
)
