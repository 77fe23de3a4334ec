// Package fraud holds the fraud-prevention reactions to account lifecycle
// events.
package fraud

import (
	"context"
	"log"

	"github.com/DuDupedrosa/krt-bank/internal/events"
)

// Service runs a fraud screening whenever an account changes. Screening logic
// is owned by the fraud-prevention team; these handlers are its entry points.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// OnAccountCreated starts the screening for a newly registered account.
func (s *Service) OnAccountCreated(ctx context.Context, msg events.AccountMessage) error {
	log.Printf("fraud: screening new account %s (nationalId=%s)", msg.ID, msg.NationalID)
	return nil
}

// OnAccountUpdated re-screens an account whose registration data changed.
func (s *Service) OnAccountUpdated(ctx context.Context, msg events.AccountMessage) error {
	log.Printf("fraud: re-screening updated account %s (nationalId=%s)", msg.ID, msg.NationalID)
	return nil
}

// OnAccountDeleted closes any open screening for the deactivated account.
func (s *Service) OnAccountDeleted(ctx context.Context, msg events.AccountMessage) error {
	log.Printf("fraud: closing screenings for deactivated account %s", msg.ID)
	return nil
}
