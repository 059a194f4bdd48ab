package pubsub

import (
	"strconv"

	"salesboard/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter and trace on.
func eventAttributes(event *service.ImportCompletedEvent) map[string]string {
	attributes := map[string]string{
		"event_type":     "import.completed",
		"platform_id":    strconv.FormatInt(event.PlatformID, 10),
		"platform_name":  event.PlatformName,
		"rows_processed": strconv.Itoa(event.RowsProcessed),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
