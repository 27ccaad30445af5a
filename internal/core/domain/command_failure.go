package domain

import "time"

// CommandFailure is a durable forensic record of an unexpected processing
// failure. It is created only by the command failure interceptor, written
// outside the failed business transaction, and never mutated or deleted.
type CommandFailure struct {
	ID             string    `json:"id"`
	CommandName    string    `json:"commandName"`
	ErrorDetails   string    `json:"errorDetails"`
	Timestamp      time.Time `json:"timestamp"` // UTC
	RequestContent *string   `json:"requestContent,omitempty"`
	TraceID        string    `json:"traceID"`
}
