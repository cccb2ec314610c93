package reservation

import "errors"

var (
	// ErrNotFound is returned when no reservation matches the lookup.
	ErrNotFound = errors.New("reservation not found")
	// ErrSlotTaken is returned when the court is already booked for the slot.
	ErrSlotTaken = errors.New("court already booked for this slot")
	// ErrNotAuthorized is returned when the actor may not cancel the booking.
	ErrNotAuthorized = errors.New("not authorized")
	// ErrInvalidSlot is returned for bookings whose times make no sense.
	ErrInvalidSlot = errors.New("invalid reservation slot")
)
