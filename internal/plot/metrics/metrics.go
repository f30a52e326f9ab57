package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the plot module. Tracks command counts
// by outcome and critical path durations.
type Metrics struct {
	PlotsCreated       prometheus.Counter
	PlotsAssigned      prometheus.Counter
	PlotsDeleted       *prometheus.CounterVec
	RelatedReserved    prometheus.Counter
	RuleViolations     *prometheus.CounterVec
	AssignDuration     prometheus.Histogram
	DeleteDuration     prometheus.Histogram
	StatisticsDuration prometheus.Histogram
	StatsCacheHits     prometheus.Counter
	StatsCacheMisses   prometheus.Counter
}

// New creates a Metrics instance with all plot module metrics registered.
func New() *Metrics {
	return &Metrics{
		PlotsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kleingarten_plots_created_total",
			Help: "Total number of plots created",
		}),
		PlotsAssigned: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kleingarten_plots_assigned_total",
			Help: "Total number of successful plot assignments",
		}),
		PlotsDeleted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kleingarten_plots_deleted_total",
			Help: "Total number of plot deletions by outcome",
		}, []string{"outcome"}),
		RelatedReserved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kleingarten_related_plots_reserved_total",
			Help: "Total number of related plots reserved by the assignment heuristic",
		}),
		RuleViolations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "kleingarten_rule_violations_total",
			Help: "Total number of business-rule failures by command",
		}, []string{"command"}),
		AssignDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kleingarten_assign_duration_seconds",
			Help:    "Duration of assignment commands",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		DeleteDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kleingarten_delete_duration_seconds",
			Help:    "Duration of deletion commands",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		StatisticsDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "kleingarten_statistics_duration_seconds",
			Help:    "Duration of statistics aggregation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		StatsCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kleingarten_stats_cache_hits_total",
			Help: "Statistics served from the Redis cache",
		}),
		StatsCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "kleingarten_stats_cache_misses_total",
			Help: "Statistics recomputed after a cache miss",
		}),
	}
}

// ObserveAssign records the duration of an assignment command.
// Call with time.Now() captured at the start of the operation.
func (m *Metrics) ObserveAssign(start time.Time) {
	m.AssignDuration.Observe(time.Since(start).Seconds())
}

// ObserveDelete records the duration of a deletion command.
func (m *Metrics) ObserveDelete(start time.Time) {
	m.DeleteDuration.Observe(time.Since(start).Seconds())
}

// ObserveStatistics records the duration of a statistics aggregation.
func (m *Metrics) ObserveStatistics(start time.Time) {
	m.StatisticsDuration.Observe(time.Since(start).Seconds())
}
