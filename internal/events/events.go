// Package events defines the account event topology: one durable direct
// exchange per bounded context, one routing key per lifecycle change, and one
// durable queue per (subsystem, event) pair bound to that key. Every bound
// queue receives its own copy of every matching event.
package events

import "time"

// Exchange topology for the accounts bounded context.
const (
	AccountsExchange = "accounts_exchange"
	ExchangeDirect   = "direct"
)

// Routing keys, one per account lifecycle change.
const (
	AccountCreated = "account_created"
	AccountUpdated = "account_updated"
	AccountDeleted = "account_deleted"
)

// QueueName builds the durable queue name for a subsystem bound to a routing
// key, e.g. QueueName("card", AccountCreated) -> "card_account_created_queue".
// Reusing the same name on every restart is what makes the queue durable per
// subsystem; two instances sharing a name compete for its messages instead.
func QueueName(subsystem, routingKey string) string {
	return subsystem + "_" + routingKey + "_queue"
}

// AccountMessage is the wire payload carried on every routing key: a snapshot
// of the account after the mutation. Consumers decode leniently — unknown
// fields are ignored and missing ones are zero-valued — because producer and
// consumers deploy independently.
type AccountMessage struct {
	ID         string    `json:"id"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	Name       string    `json:"name"`
	NationalID string    `json:"nationalId"`
	Status     string    `json:"status"`
}
