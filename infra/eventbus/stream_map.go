package eventbus

import (
	"fmt"
	"strings"
)

// streamNameFor returns the Redis stream carrying events of eventType.
func streamNameFor(prefix, eventType string) string {
	return prefix + nameFor("events", eventType)
}

// dlqStreamName returns the DLQ stream name for the given event type.
func dlqStreamName(prefix, eventType string) string {
	return prefix + nameFor("dlq", eventType)
}

// groupNameFor returns the Redis consumer group name for the event type.
func groupNameFor(eventType string) string {
	return nameFor("group", eventType)
}

func nameFor(kind, eventType string) string {
	parts := strings.Split(eventType, ".")
	if len(parts) == 2 {
		return fmt.Sprintf("%s:%s:%s", kind, strings.ToLower(parts[0]), strings.ToLower(parts[1]))
	}
	return fmt.Sprintf("%s:%s", kind, strings.ToLower(eventType))
}
