package booking

// ExportFilenameFormat names the downloadable shopping list: customer name, delivery date
const ExportFilenameFormat = "ingredients-%s-%s.txt"

// Log messages
const (
	LogMsgEventCreated        = "Event created"
	LogMsgEventUpdated        = "Event updated"
	LogMsgEventDeleted        = "Event deleted"
	LogMsgStatusChanged       = "Event status changed"
	LogMsgShoppingList        = "Shopping list generated"
	LogMsgPublishFailed       = "Failed to publish booking event"
	LogMsgNotificationFailed  = "Failed to send event notification"
	LogMsgNotificationSent    = "Event notification sent"
	LogMsgNotificationPayload = "Notification payload could not be decoded"
)

// Notification text
const (
	NotifierUsername        = "Catering Planner"
	NotifyCreatedTitle      = "New catering event booked"
	NotifyStatusTitleFormat = "Event %s"
	NotifyCreatedColor      = 0x2ecc71
	NotifyStatusColor       = 0x3498db
)
