package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameBookingsCreated        = "bookings_created_total"
	MetricNameBookingStatusChanges   = "booking_status_changes_total"
	MetricNameBookedGuests           = "booked_guests_total"
	MetricNameShoppingListsGenerated = "shopping_lists_generated_total"
	MetricNameShoppingListLines      = "shopping_list_lines"
	MetricNameCatalogSyncRecords     = "catalog_sync_records_total"
	MetricNameCatalogCacheLookups    = "catalog_cache_lookups_total"
	MetricNameNotificationsSent      = "notifications_sent_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextBookingsCreated        = "Total number of catering events booked"
	HelpTextBookingStatusChanges   = "Total number of booking status transitions"
	HelpTextBookedGuests           = "Total guests across booked events"
	HelpTextShoppingListsGenerated = "Total number of shopping lists generated"
	HelpTextShoppingListLines      = "Number of ingredient lines per generated shopping list"
	HelpTextCatalogSyncRecords     = "Catalog seed records processed by outcome"
	HelpTextCatalogCacheLookups    = "Recipe cache lookups by result"
	HelpTextNotificationsSent      = "Outbound notifications by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelEventType = "event_type"
	LabelFrom      = "from"
	LabelTo        = "to"
	LabelSource    = "source"
	LabelOutcome   = "outcome"
	LabelResult    = "result"
)

// Label values
const (
	SourceEvent = "event"
	SourceAdHoc = "adhoc"

	OutcomeInserted = "inserted"
	OutcomeUpdated  = "updated"
	OutcomeSkipped  = "skipped"

	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultSuccess = "success"
	ResultFailure = "failure"

	// UnmatchedRoute labels requests that never reached a chi route
	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ShoppingListLineBuckets covers lists from a single dish to a full banquet
var ShoppingListLineBuckets = []float64{1, 5, 10, 25, 50, 100, 250}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
