package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBookingsCreated,
			Help: HelpTextBookingsCreated,
		},
		[]string{LabelEventType},
	)

	BookingStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBookingStatusChanges,
			Help: HelpTextBookingStatusChanges,
		},
		[]string{LabelFrom, LabelTo},
	)

	BookedGuests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameBookedGuests,
			Help: HelpTextBookedGuests,
		},
	)

	ShoppingListsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameShoppingListsGenerated,
			Help: HelpTextShoppingListsGenerated,
		},
		[]string{LabelSource},
	)

	ShoppingListLines = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameShoppingListLines,
			Help:    HelpTextShoppingListLines,
			Buckets: ShoppingListLineBuckets,
		},
	)

	CatalogSyncRecords = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogSyncRecords,
			Help: HelpTextCatalogSyncRecords,
		},
		[]string{LabelOutcome},
	)

	CatalogCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCatalogCacheLookups,
			Help: HelpTextCatalogCacheLookups,
		},
		[]string{LabelResult},
	)

	NotificationsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsSent,
			Help: HelpTextNotificationsSent,
		},
		[]string{LabelResult},
	)
)
