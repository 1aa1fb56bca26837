package request

// SchedulerRequest represents the JSON body for scheduler control.
type SchedulerRequest struct {
	// Action controls the scheduler. Allowed values:
	// - "start": start processing batches
	// - "stop":  stop processing batches
	Action string `json:"action"`
}

// SendSMSRequest is the JSON body for an immediate SMS send. One envelope
// is returned per recipient.
type SendSMSRequest struct {
	// From overrides the configured sender number when set.
	From    string   `json:"from,omitempty"`
	To      []string `json:"to"`
	Message string   `json:"message"`
	Tag     string   `json:"tag,omitempty"`
}

// SendEmailRequest is the JSON body for an immediate email send. The call
// blocks until the platform-side operation completes.
type SendEmailRequest struct {
	// Sender overrides the configured sender address when set.
	Sender  string   `json:"sender,omitempty"`
	To      string   `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	HTML    bool     `json:"html,omitempty"`
	CC      []string `json:"cc,omitempty"`
	BCC     []string `json:"bcc,omitempty"`
	ReplyTo string   `json:"replyTo,omitempty"`
}

// EnqueueMessageRequest is the JSON body for queueing an outbox message.
type EnqueueMessageRequest struct {
	// Channel is "SMS" or "EMAIL".
	Channel string `json:"channel"`
	To      string `json:"to"`
	// Subject is required for EMAIL, ignored for SMS.
	Subject string `json:"subject,omitempty"`
	Content string `json:"content"`
}
