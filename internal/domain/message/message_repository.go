package message

import "context"

// Repository defines the persistence operations for outbox messages.
//
// It is implemented by infrastructure layers (e.g. GORM) while the
// domain and service layers depend only on this interface. Queries span
// both channels; callers filter by Channel when they care.
type Repository interface {
	// Save persists a new message.
	Save(ctx context.Context, m *Message) error

	// GetPending returns up to limit messages awaiting delivery.
	GetPending(ctx context.Context, limit int) ([]*Message, error)

	// GetSent returns a paginated list of delivered messages along with
	// the total number of delivered records.
	GetSent(ctx context.Context, page, limit int) ([]*Message, int64, error)

	// UpdateStatus updates the status and delivery metadata of an
	// existing message.
	UpdateStatus(ctx context.Context, m *Message) error
}
