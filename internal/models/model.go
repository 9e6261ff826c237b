package models

import (
	"strings"
	"time"

	"gearshare/internal/sharingerrors"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusWaiting  BookingStatus = "WAITING"
	StatusApproved BookingStatus = "APPROVED"
	StatusRejected BookingStatus = "REJECTED"
)

// BookingState is the temporal/status filter used by booking listings.
type BookingState string

const (
	StateAll      BookingState = "ALL"
	StateCurrent  BookingState = "CURRENT"
	StatePast     BookingState = "PAST"
	StateFuture   BookingState = "FUTURE"
	StateWaiting  BookingState = "WAITING"
	StateRejected BookingState = "REJECTED"
)

// ParseBookingState parses a listing state query value. An empty value
// defaults to ALL; anything unrecognized is an UnknownStateError.
func ParseBookingState(raw string) (BookingState, error) {
	if raw == "" {
		return StateAll, nil
	}
	switch BookingState(strings.ToUpper(raw)) {
	case StateAll:
		return StateAll, nil
	case StateCurrent:
		return StateCurrent, nil
	case StatePast:
		return StatePast, nil
	case StateFuture:
		return StateFuture, nil
	case StateWaiting:
		return StateWaiting, nil
	case StateRejected:
		return StateRejected, nil
	default:
		return "", &sharingerrors.UnknownStateError{Value: raw}
	}
}

// User is a platform participant. Email is unique across live users.
type User struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Email string `gorm:"not null;uniqueIndex" json:"email"`
}

// Item is a thing an owner shares for booking. Owner is immutable after
// creation; RequestID links the item to the request it answers, if any.
type Item struct {
	ID          string  `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Available   bool    `gorm:"not null" json:"available"`
	OwnerID     string  `gorm:"not null;index" json:"ownerId"`
	RequestID   *string `gorm:"index" json:"requestId,omitempty"`

	Owner *User `gorm:"foreignKey:OwnerID" json:"-"`
}

// Booking is a time-bounded reservation of an item by a non-owner user.
type Booking struct {
	ID       string        `gorm:"primaryKey" json:"id"`
	Start    time.Time     `gorm:"column:start_date;not null;index" json:"start"`
	End      time.Time     `gorm:"column:end_date;not null" json:"end"`
	ItemID   string        `gorm:"not null;index" json:"itemId"`
	BookerID string        `gorm:"not null;index" json:"bookerId"`
	Status   BookingStatus `gorm:"type:varchar(16);not null;index" json:"status"`

	Item   *Item `gorm:"foreignKey:ItemID" json:"-"`
	Booker *User `gorm:"foreignKey:BookerID" json:"-"`
}

// Comment is feedback on an item by a user who finished a booking on it.
type Comment struct {
	ID       string    `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:varchar(512);not null" json:"text"`
	ItemID   string    `gorm:"not null;index" json:"itemId"`
	AuthorID string    `gorm:"not null;index" json:"authorId"`
	Created  time.Time `gorm:"not null" json:"created"`

	Author *User `gorm:"foreignKey:AuthorID" json:"-"`
}

// ItemRequest is a wish for an item that does not exist yet. Items whose
// RequestID points at it are its answers.
type ItemRequest struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Description string    `gorm:"not null" json:"description"`
	RequesterID string    `gorm:"not null;index" json:"requesterId"`
	Created     time.Time `gorm:"not null;index" json:"created"`
}
