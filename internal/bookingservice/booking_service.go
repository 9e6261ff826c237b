package bookingservice

import (
	"fmt"
	"time"

	model "gearshare/internal/models"
	"gearshare/internal/repository"
	"gearshare/internal/sharingerrors"
	"gearshare/utils"
)

// BookingService is the booking engine: it validates booking requests,
// enforces ownership and availability rules, and runs the WAITING ->
// APPROVED/REJECTED state machine.
type BookingService struct {
	repo repository.SharingDB
}

// NewBookingService creates a new BookingService instance
func NewBookingService(repo repository.SharingDB) *BookingService {
	return &BookingService{
		repo: repo,
	}
}

// CreateBooking validates and records a booking request. The new booking
// always starts in WAITING; no item or user record is touched.
func (s *BookingService) CreateBooking(itemID string, start, end time.Time, bookerID string) (model.Booking, error) {
	if err := validateWindow(start, end); err != nil {
		return model.Booking{}, err
	}

	item, err := s.repo.GetItemByID(itemID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("service: item lookup failed: %w", err)
	}
	if item.OwnerID == bookerID {
		return model.Booking{}, fmt.Errorf("service: cannot book own item: %w", sharingerrors.ErrNotFound)
	}
	if !item.Available {
		return model.Booking{}, fmt.Errorf("service: item is not available for booking: %w", sharingerrors.ErrUnavailable)
	}
	if _, err := s.repo.GetUserByID(bookerID); err != nil {
		return model.Booking{}, fmt.Errorf("service: booker lookup failed: %w", err)
	}

	booking := model.Booking{
		ID:       utils.GenerateID(),
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   model.StatusWaiting,
	}

	saved, err := s.repo.SaveBooking(booking)
	if err != nil {
		return model.Booking{}, fmt.Errorf("service: failed to save booking for item %s by user %s: %w", itemID, bookerID, err)
	}
	return saved, nil
}

// validateWindow checks the booking time window before any storage lookup:
// start strictly before end, start not in the past, end strictly future.
func validateWindow(start, end time.Time) error {
	now := time.Now()
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("service: %w - missing start or end", sharingerrors.ErrValidation)
	}
	if !start.Before(end) {
		return fmt.Errorf("service: %w - start must be strictly before end", sharingerrors.ErrValidation)
	}
	if start.Before(now) {
		return fmt.Errorf("service: %w - start must not be in the past", sharingerrors.ErrValidation)
	}
	if !end.After(now) {
		return fmt.Errorf("service: %w - end must be in the future", sharingerrors.ErrValidation)
	}
	return nil
}

// ApproveBooking lets the item owner decide a WAITING booking. The
// already-decided check runs before the ownership check, and the storage
// layer re-checks the WAITING status atomically.
func (s *BookingService) ApproveBooking(userID, bookingID string, approved bool) (model.Booking, error) {
	booking, err := s.repo.GetBookingByID(bookingID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("service: booking lookup failed: %w", err)
	}
	if _, err := s.repo.GetUserByID(userID); err != nil {
		return model.Booking{}, fmt.Errorf("service: user lookup failed: %w", err)
	}
	if booking.Status == model.StatusApproved {
		return model.Booking{}, fmt.Errorf("service: booking is already approved: %w", sharingerrors.ErrUnavailable)
	}
	if booking.Status != model.StatusWaiting {
		return model.Booking{}, fmt.Errorf("service: booking is already decided: %w", sharingerrors.ErrUnavailable)
	}
	if booking.Item == nil || booking.Item.OwnerID != userID {
		return model.Booking{}, fmt.Errorf("service: only the item owner can decide a booking: %w", sharingerrors.ErrNotFound)
	}

	status := model.StatusRejected
	if approved {
		status = model.StatusApproved
	}
	decided, err := s.repo.DecideBooking(bookingID, status)
	if err != nil {
		return model.Booking{}, fmt.Errorf("service: failed to decide booking %s: %w", bookingID, err)
	}
	return decided, nil
}

// GetBookingByID returns a booking visible only to its booker or the
// item's owner. Anyone else gets not-found, hiding the booking's existence.
func (s *BookingService) GetBookingByID(userID, bookingID string) (model.Booking, error) {
	booking, err := s.repo.GetBookingByID(bookingID)
	if err != nil {
		return model.Booking{}, fmt.Errorf("service: booking lookup failed: %w", err)
	}
	if booking.BookerID != userID && (booking.Item == nil || booking.Item.OwnerID != userID) {
		return model.Booking{}, fmt.Errorf("service: booking %s is not visible to user %s: %w", bookingID, userID, sharingerrors.ErrNotFound)
	}
	return booking, nil
}

// ListForRequester returns the user's own bookings filtered by state,
// newest start first. The user is re-checked on every call so a caller
// bug surfaces as not-found instead of an empty list.
func (s *BookingService) ListForRequester(userID, stateRaw string, from, size int) ([]model.Booking, error) {
	state, err := model.ParseBookingState(stateRaw)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if _, err := s.repo.GetUserByID(userID); err != nil {
		return nil, fmt.Errorf("service: user lookup failed: %w", err)
	}
	bookings, err := s.repo.ListForBooker(userID, state, time.Now().UTC(), from, size)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListForOwner returns bookings on the user's items filtered by state,
// newest start first.
func (s *BookingService) ListForOwner(userID, stateRaw string, from, size int) ([]model.Booking, error) {
	state, err := model.ParseBookingState(stateRaw)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if _, err := s.repo.GetUserByID(userID); err != nil {
		return nil, fmt.Errorf("service: user lookup failed: %w", err)
	}
	bookings, err := s.repo.ListForOwner(userID, state, time.Now().UTC(), from, size)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list owner bookings for user %s: %w", userID, err)
	}
	return bookings, nil
}
