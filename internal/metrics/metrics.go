package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhooksProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordertags_webhooks_processed_total",
		Help: "Total number of order webhooks processed, by topic.",
	},
		[]string{"topic"},
	)

	TagMutationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordertags_tag_mutations_total",
		Help: "Total number of admin tag mutations applied, by action.",
	},
		[]string{"action"},
	)

	TagSyncFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ordertags_tag_sync_failures_total",
		Help: "Total number of failed outbound tag sync calls to Shopify.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ordertags_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
