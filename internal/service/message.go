package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/StormyDevil/azure-communication-services-solution/internal/cache"
	domain "github.com/StormyDevil/azure-communication-services-solution/internal/domain/message"
)

// Dispatcher delivers one outbox message over its channel and returns the
// platform-assigned message id plus the raw delivery detail.
type Dispatcher interface {
	Deliver(ctx context.Context, m *domain.Message) (externalID string, raw string, err error)
}

type MessageService interface {
	Enqueue(ctx context.Context, channel domain.Channel, to, subject, content string) (*domain.Message, error)
	GetSent(ctx context.Context, page, limit int) ([]*domain.Message, int64, error)
	ProcessBatch(ctx context.Context) error
}

type messageService struct {
	repo       domain.Repository
	dispatcher Dispatcher
	cache      cache.Cache
	logger     *zap.Logger

	// Batch processing configuration, injected from config at startup.
	batchSize         int
	maxWorkers        int
	perMessageTimeout time.Duration
}

// NewMessageService creates an outbox service with the given dependencies
// and batch processing settings. The config values are passed explicitly
// from the caller (e.g. main) so this package does not depend on env.
func NewMessageService(
	repo domain.Repository,
	dispatcher Dispatcher,
	cache cache.Cache,
	logger *zap.Logger,
	batchSize int,
	maxWorkers int,
	perMessageTimeout time.Duration,
) MessageService {
	// Apply sane defaults if config values are missing or invalid.
	if batchSize <= 0 {
		batchSize = 100
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	if perMessageTimeout <= 0 {
		perMessageTimeout = 5 * time.Second
	}

	return &messageService{
		repo:              repo,
		dispatcher:        dispatcher,
		cache:             cache,
		logger:            logger,
		batchSize:         batchSize,
		maxWorkers:        maxWorkers,
		perMessageTimeout: perMessageTimeout,
	}
}

// Enqueue validates and persists a new pending message for the scheduler
// to pick up.
func (s *messageService) Enqueue(ctx context.Context, channel domain.Channel, to, subject, content string) (*domain.Message, error) {
	msg, err := domain.NewMessage(channel, to, subject, content)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save message: %w", err)
	}
	return msg, nil
}

func (s *messageService) GetSent(ctx context.Context, page, limit int) ([]*domain.Message, int64, error) {
	return s.repo.GetSent(ctx, page, limit)
}

// ProcessBatch pulls a batch of pending messages from the repository and
// delivers them using a small worker pool. The batch size, worker count
// and per-message timeout are provided at construction time.
func (s *messageService) ProcessBatch(ctx context.Context) error {
	messages, err := s.repo.GetPending(ctx, s.batchSize)
	if err != nil {
		return fmt.Errorf("fetch pending messages: %w", err)
	}

	// Nothing to do; exit quickly so the scheduler can tick again.
	if len(messages) == 0 {
		s.logger.Debug("no pending messages to process")
		return nil
	}

	s.logger.Info("processing batch",
		zap.Int("messages", len(messages)),
		zap.Int("batchSize", s.batchSize),
		zap.Int("maxWorkers", s.maxWorkers))

	// Decide how many workers we need for this batch.
	workerCount := len(messages)
	if workerCount > s.maxWorkers {
		workerCount = s.maxWorkers
	}
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup

	// Each worker processes a stride of the batch: worker w takes
	// indices w, w+workerCount, w+2*workerCount, ...
	for w := 0; w < workerCount; w++ {
		wg.Add(1)

		go func(workerID, start int) {
			defer wg.Done()

			for i := start; i < len(messages); i += workerCount {
				// If the parent context has been cancelled (e.g. by the
				// scheduler), stop picking up new messages.
				if ctx.Err() != nil {
					s.logger.Warn("context cancelled, stopping worker", zap.Int("worker", workerID))
					return
				}

				msg := messages[i]

				msgCtx, cancel := context.WithTimeout(ctx, s.perMessageTimeout)
				if err := s.processMessage(msgCtx, msg); err != nil {
					s.logger.Warn("message delivery failed",
						zap.Int("worker", workerID),
						zap.String("id", msg.ID.String()),
						zap.Error(err))
				}
				cancel()
			}
		}(w+1, w)
	}

	wg.Wait()

	s.logger.Info("batch completed")
	return nil
}

// processMessage delivers a single pending message through the channel
// dispatcher and updates its status in the repository.
//
// Flow:
//   - Hand the message to the dispatcher (SMS or email service).
//   - On failure: mark the message FAILED and persist that status.
//   - On success: mark it SUCCESS, persist, and best-effort cache the
//     sent timestamp in Redis keyed by the platform message id.
func (s *messageService) processMessage(ctx context.Context, msg *domain.Message) error {
	id := msg.ID.String()

	externalID, raw, err := s.dispatcher.Deliver(ctx, msg)
	if err != nil {
		msg.MarkFailed(raw)

		// Best-effort: persist the FAILED status so this message is not
		// retried indefinitely as PENDING.
		if uErr := s.repo.UpdateStatus(ctx, msg); uErr != nil {
			s.logger.Error("persist FAILED status", zap.String("id", id), zap.Error(uErr))
		}

		return fmt.Errorf("deliver message %s: %w", id, err)
	}

	msg.MarkSent(externalID, raw)
	if err := s.repo.UpdateStatus(ctx, msg); err != nil {
		return fmt.Errorf("update status for %s: %w", id, err)
	}

	if s.cache != nil && externalID != "" {
		sentAt := time.Now().Format(time.RFC3339)
		if msg.SentAt != nil {
			sentAt = msg.SentAt.Format(time.RFC3339)
		}

		key := cache.Deliveries.Key(externalID)
		if err := s.cache.Set(ctx, key, sentAt, 24*time.Hour); err != nil {
			s.logger.Warn("cache sent timestamp", zap.String("messageId", externalID), zap.Error(err))
		}
	}

	return nil
}
