// Package queue publishes catalog change notifications to the message
// broker for external consumers (audit trails, sync jobs). Nothing in
// this process consumes them.
package queue

// Actions carried by a CatalogEvent.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// CatalogEvent is published after every successful mutation. It
// carries enough to log or mirror the change without querying the
// primary database.
type CatalogEvent struct {
	EventID    string `json:"event_id"`
	Entity     string `json:"entity"` // user | galaxy | constellation | star
	Action     string `json:"action"`
	ID         uint64 `json:"id"`
	Name       string `json:"name,omitempty"` // display label at mutation time, empty on delete
	OccurredAt string `json:"occurred_at"`    // RFC 3339 UTC
}
