// Package card holds the card-issuance reactions to account lifecycle events.
package card

import (
	"context"
	"log"

	"github.com/DuDupedrosa/krt-bank/internal/events"
	"github.com/DuDupedrosa/krt-bank/internal/models"
)

// Service reacts to account snapshots delivered by the bus. The card domain
// logic itself is owned by another team; these handlers are the integration
// points it plugs into.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// OnAccountCreated provisions a card for the new account holder.
func (s *Service) OnAccountCreated(ctx context.Context, msg events.AccountMessage) error {
	log.Printf("card: issuing card for new account %s (%s)", msg.ID, msg.Name)
	return nil
}

// OnAccountUpdated refreshes the cardholder data.
func (s *Service) OnAccountUpdated(ctx context.Context, msg events.AccountMessage) error {
	log.Printf("card: updating cardholder data for account %s (%s)", msg.ID, msg.Name)
	return nil
}

// OnAccountDeleted blocks the cards of a deactivated account.
func (s *Service) OnAccountDeleted(ctx context.Context, msg events.AccountMessage) error {
	if msg.Status != string(models.StatusInactive) {
		log.Printf("card: delete event for account %s arrived with status %s", msg.ID, msg.Status)
	}
	log.Printf("card: blocking cards for deactivated account %s (%s)", msg.ID, msg.Name)
	return nil
}
