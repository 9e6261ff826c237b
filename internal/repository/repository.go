package repository

import (
	"time"

	model "gearshare/internal/models"
)

// UserDB defines user directory storage.
type UserDB interface {
	SaveUser(user model.User) (model.User, error)
	UpdateUser(user model.User) (model.User, error)
	GetUserByID(id string) (model.User, error)
	GetAllUsers() ([]model.User, error)
	DeleteUser(id string) error
	EmailTaken(email, excludeID string) (bool, error)
}

// ItemDB defines item catalog storage.
type ItemDB interface {
	SaveItem(item model.Item) (model.Item, error)
	UpdateItem(item model.Item) (model.Item, error)
	GetItemByID(id string) (model.Item, error)
	GetItemsByOwner(ownerID string, offset, limit int) ([]model.Item, error)
	SearchItems(text string, offset, limit int) ([]model.Item, error)
	GetItemsByRequests(requestIDs []string) ([]model.Item, error)
}

// BookingDB defines booking storage. Listing results carry Item and Booker
// populated and are ordered by start descending. DecideBooking performs a
// compare-and-swap on status: it succeeds only while the booking is still
// WAITING, so two concurrent decisions cannot both win.
type BookingDB interface {
	SaveBooking(booking model.Booking) (model.Booking, error)
	GetBookingByID(id string) (model.Booking, error)
	DecideBooking(id string, status model.BookingStatus) (model.Booking, error)
	ListForBooker(bookerID string, state model.BookingState, now time.Time, offset, limit int) ([]model.Booking, error)
	ListForOwner(ownerID string, state model.BookingState, now time.Time, offset, limit int) ([]model.Booking, error)
	LastBookingForItem(itemID string, now time.Time) (*model.Booking, error)
	NextBookingForItem(itemID string, now time.Time) (*model.Booking, error)
	HasFinishedBooking(bookerID, itemID string, now time.Time) (bool, error)
}

// CommentDB defines comment storage. Results carry Author populated.
type CommentDB interface {
	SaveComment(comment model.Comment) (model.Comment, error)
	GetCommentsByItem(itemID string) ([]model.Comment, error)
	GetCommentsByItems(itemIDs []string) ([]model.Comment, error)
}

// RequestDB defines item request storage. Listings are ordered by created
// descending (newest first).
type RequestDB interface {
	SaveRequest(request model.ItemRequest) (model.ItemRequest, error)
	GetRequestByID(id string) (model.ItemRequest, error)
	GetRequestsByRequester(requesterID string) ([]model.ItemRequest, error)
	GetRequestsFromOthers(requesterID string, offset, limit int) ([]model.ItemRequest, error)
}

// SharingDB is the full storage surface of the platform.
type SharingDB interface {
	UserDB
	ItemDB
	BookingDB
	CommentDB
	RequestDB
}
