package reservation

// ReservationStore defines the interface for court reservation storage.
type ReservationStore interface {
	Book(r *Reservation) error
	Get(reservationID string) (*Reservation, error)
	GetByCourt(courtID string, from, to int64) ([]*Reservation, error)
	GetByPlayer(playerID string) ([]*Reservation, error)
	Cancel(reservationID, playerID string, staff bool) error
}
