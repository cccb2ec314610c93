package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventUpdatePlayerStats EventType = "update-player-stats"
	EventNotifyResult      EventType = "notify-result"
	EventNotifyBooking     EventType = "notify-booking"
)

// MatchConfirmedEvent is published when a match is finalized. The push
// endpoint fans it out to stats aggregation and notifications.
type MatchConfirmedEvent struct {
	MatchID string `msgpack:"match_id"`
}

// ReservationBookedEvent is published when a court booking lands.
type ReservationBookedEvent struct {
	ReservationID string `msgpack:"reservation_id"`
}
