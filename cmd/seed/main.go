package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/StormyDevil/azure-communication-services-solution/internal/config"
	"github.com/StormyDevil/azure-communication-services-solution/internal/db/gormdb"
	domain "github.com/StormyDevil/azure-communication-services-solution/internal/domain/message"
	mesgRepo "github.com/StormyDevil/azure-communication-services-solution/internal/repository/gorm/message"
	"gorm.io/gorm"
)

func main() {
	ctx := context.Background()

	// Load application configuration (DB, Redis, etc.) from env/.env.
	cfg := config.New()

	// Open a Postgres connection through our GORM adapter.
	gormAdapter, err := gormdb.New(cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("[Seed] Failed to connect to database: %v", err)
	}

	log.Printf("[Seed] Connected to database %q", cfg.DB.Name)

	// 1) AutoMigrate: make sure the messages table exists.
	// We go through the adapter to access the underlying *gorm.DB.
	rawDB := gormAdapter.Conn().(*gorm.DB)

	if err := rawDB.AutoMigrate(&mesgRepo.MessageModel{}); err != nil {
		log.Fatalf("[Seed] AutoMigrate failed: %v", err)
	}
	log.Println("[Seed] Messages table is up to date (AutoMigrate completed).")

	// 2) Primitive seeding: always insert N random PENDING messages,
	// alternating between SMS and email.
	const seedCount = 50

	// The repository expects a db.DB interface, so we pass the adapter,
	// not the raw *gorm.DB.
	repo := mesgRepo.NewRepository(gormAdapter)

	log.Printf("[Seed] Inserting %d random messages...", seedCount)

	for i := 0; i < seedCount; i++ {
		var (
			msg *domain.Message
			err error
		)

		// Use the domain constructor so we respect domain rules:
		// status = PENDING, timestamps, channel validation.
		if i%2 == 0 {
			msg, err = domain.NewMessage(domain.ChannelSMS, randomPhone(), "", randomContent(i+1))
		} else {
			subject := fmt.Sprintf("Seed email #%d", i+1)
			msg, err = domain.NewMessage(domain.ChannelEmail, randomEmail(i+1), subject, randomContent(i+1))
		}
		if err != nil {
			log.Fatalf("[Seed] Failed to build message #%d: %v", i+1, err)
		}

		if err := repo.Save(ctx, msg); err != nil {
			log.Fatalf("[Seed] Failed to save message #%d: %v", i+1, err)
		}

		log.Printf("[Seed] Created message #%d: id=%s channel=%s to=%s",
			i+1, msg.ID.String(), msg.Channel, msg.To)
	}

	log.Printf("[Seed] Done. Inserted %d messages into table 'messages'.", seedCount)
}

// randomPhone generates a simple fake phone number in an E.164-like format.
// Example output: +14255550123
func randomPhone() string {
	base := "+1425555"
	n := rand.Intn(9000) + 1000 // 4 digits
	return fmt.Sprintf("%s%d", base, n)
}

// randomEmail generates a fake recipient address for seeding.
func randomEmail(i int) string {
	return fmt.Sprintf("recipient%d@example.com", i)
}

// randomContent generates a simple message body for seeding.
func randomContent(i int) string {
	now := time.Now().Format("15:04:05")
	return fmt.Sprintf("Seed message #%d sent at %s", i, now)
}
