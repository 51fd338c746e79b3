package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_shipments_created_total",
		Help: "Total number of shipments successfully created.",
	})

	ShipmentsUpdatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_shipments_updated_total",
		Help: "Total number of shipments successfully updated.",
	})

	ShipmentsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_shipments_deleted_total",
		Help: "Total number of shipments successfully deleted.",
	})

	PaymentsVerifiedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_irs_payments_verified_total",
		Help: "Total number of IRS hold payments successfully verified.",
	})

	HistoryEntriesAddedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_history_entries_added_total",
		Help: "Total number of history entries appended to shipments.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tracker_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	DBRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tracker_db_transient_retries_total",
		Help: "Total number of database operations retried after a transient connection failure.",
	})
)
