package repository

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	model "gearshare/internal/models"
	"gearshare/internal/sharingerrors"
)

// MemoryRepo is a concurrency-safe in-memory implementation of SharingDB.
// It backs tests and local runs without a database.
type MemoryRepo struct {
	mu       sync.RWMutex
	users    map[string]model.User
	items    map[string]model.Item
	bookings map[string]model.Booking
	comments map[string][]model.Comment // key: itemID -> comments in creation order
	requests map[string]model.ItemRequest
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:    make(map[string]model.User),
		items:    make(map[string]model.Item),
		bookings: make(map[string]model.Booking),
		comments: make(map[string][]model.Comment),
		requests: make(map[string]model.ItemRequest),
	}
}

// ---- users ----

func (r *MemoryRepo) SaveUser(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return user, nil
}

func (r *MemoryRepo) UpdateUser(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return model.User{}, fmt.Errorf("update user %s: %w", user.ID, sharingerrors.ErrNotFound)
	}
	r.users[user.ID] = user
	return user, nil
}

func (r *MemoryRepo) GetUserByID(id string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, sharingerrors.ErrNotFound)
	}
	return user, nil
}

func (r *MemoryRepo) GetAllUsers() ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *MemoryRepo) DeleteUser(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("delete user %s: %w", id, sharingerrors.ErrNotFound)
	}
	delete(r.users, id)
	return nil
}

func (r *MemoryRepo) EmailTaken(email, excludeID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// ---- items ----

func (r *MemoryRepo) SaveItem(item model.Item) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.Owner = nil
	r.items[item.ID] = item
	return item, nil
}

func (r *MemoryRepo) UpdateItem(item model.Item) (model.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return model.Item{}, fmt.Errorf("update item %s: %w", item.ID, sharingerrors.ErrNotFound)
	}
	item.Owner = nil
	r.items[item.ID] = item
	return item, nil
}

func (r *MemoryRepo) GetItemByID(id string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", id, sharingerrors.ErrNotFound)
	}
	return item, nil
}

func (r *MemoryRepo) GetItemsByOwner(ownerID string, offset, limit int) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var items []model.Item
	for _, it := range r.items {
		if it.OwnerID == ownerID {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return paginate(items, offset, limit), nil
}

func (r *MemoryRepo) SearchItems(text string, offset, limit int) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	needle := strings.ToLower(text)
	var items []model.Item
	for _, it := range r.items {
		if !it.Available {
			continue
		}
		if strings.Contains(strings.ToLower(it.Name), needle) ||
			strings.Contains(strings.ToLower(it.Description), needle) {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return paginate(items, offset, limit), nil
}

func (r *MemoryRepo) GetItemsByRequests(requestIDs []string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wanted := make(map[string]bool, len(requestIDs))
	for _, id := range requestIDs {
		wanted[id] = true
	}
	var items []model.Item
	for _, it := range r.items {
		if it.RequestID != nil && wanted[*it.RequestID] {
			items = append(items, it)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// ---- bookings ----

func (r *MemoryRepo) SaveBooking(booking model.Booking) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.Item = nil
	booking.Booker = nil
	r.bookings[booking.ID] = booking
	return r.populateBooking(booking), nil
}

func (r *MemoryRepo) GetBookingByID(id string) (model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	booking, ok := r.bookings[id]
	if !ok {
		return model.Booking{}, fmt.Errorf("get booking %s: %w", id, sharingerrors.ErrNotFound)
	}
	return r.populateBooking(booking), nil
}

func (r *MemoryRepo) DecideBooking(id string, status model.BookingStatus) (model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return model.Booking{}, fmt.Errorf("decide booking %s: %w", id, sharingerrors.ErrNotFound)
	}
	if booking.Status != model.StatusWaiting {
		return model.Booking{}, fmt.Errorf("decide booking %s: %w", id, sharingerrors.ErrAlreadyDecided)
	}
	booking.Status = status
	r.bookings[id] = booking
	return r.populateBooking(booking), nil
}

func (r *MemoryRepo) ListForBooker(bookerID string, state model.BookingState, now time.Time, offset, limit int) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []model.Booking
	for _, b := range r.bookings {
		if b.BookerID == bookerID && matchState(b, state, now) {
			result = append(result, r.populateBooking(b))
		}
	}
	sortByStartDesc(result)
	return paginate(result, offset, limit), nil
}

func (r *MemoryRepo) ListForOwner(ownerID string, state model.BookingState, now time.Time, offset, limit int) ([]model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []model.Booking
	for _, b := range r.bookings {
		item, ok := r.items[b.ItemID]
		if !ok || item.OwnerID != ownerID {
			continue
		}
		if matchState(b, state, now) {
			result = append(result, r.populateBooking(b))
		}
	}
	sortByStartDesc(result)
	return paginate(result, offset, limit), nil
}

func (r *MemoryRepo) LastBookingForItem(itemID string, now time.Time) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var last *model.Booking
	for _, b := range r.bookings {
		if b.ItemID != itemID || b.Status != model.StatusApproved || !b.Start.Before(now) {
			continue
		}
		if last == nil || b.End.After(last.End) {
			candidate := r.populateBooking(b)
			last = &candidate
		}
	}
	return last, nil
}

func (r *MemoryRepo) NextBookingForItem(itemID string, now time.Time) (*model.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var next *model.Booking
	for _, b := range r.bookings {
		if b.ItemID != itemID || b.Status != model.StatusApproved || !b.Start.After(now) {
			continue
		}
		if next == nil || b.Start.Before(next.Start) {
			candidate := r.populateBooking(b)
			next = &candidate
		}
	}
	return next, nil
}

func (r *MemoryRepo) HasFinishedBooking(bookerID, itemID string, now time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.bookings {
		if b.BookerID == bookerID && b.ItemID == itemID && b.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

// ---- comments ----

func (r *MemoryRepo) SaveComment(comment model.Comment) (model.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment.Author = nil
	r.comments[comment.ItemID] = append(r.comments[comment.ItemID], comment)
	return r.populateComment(comment), nil
}

func (r *MemoryRepo) GetCommentsByItem(itemID string) ([]model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	comments := make([]model.Comment, 0, len(r.comments[itemID]))
	for _, c := range r.comments[itemID] {
		comments = append(comments, r.populateComment(c))
	}
	return comments, nil
}

func (r *MemoryRepo) GetCommentsByItems(itemIDs []string) ([]model.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var comments []model.Comment
	for _, id := range itemIDs {
		for _, c := range r.comments[id] {
			comments = append(comments, r.populateComment(c))
		}
	}
	return comments, nil
}

// ---- requests ----

func (r *MemoryRepo) SaveRequest(request model.ItemRequest) (model.ItemRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests[request.ID] = request
	return request, nil
}

func (r *MemoryRepo) GetRequestByID(id string) (model.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	request, ok := r.requests[id]
	if !ok {
		return model.ItemRequest{}, fmt.Errorf("get request %s: %w", id, sharingerrors.ErrNotFound)
	}
	return request, nil
}

func (r *MemoryRepo) GetRequestsByRequester(requesterID string) ([]model.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var requests []model.ItemRequest
	for _, req := range r.requests {
		if req.RequesterID == requesterID {
			requests = append(requests, req)
		}
	}
	sortByCreatedDesc(requests)
	return requests, nil
}

func (r *MemoryRepo) GetRequestsFromOthers(requesterID string, offset, limit int) ([]model.ItemRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var requests []model.ItemRequest
	for _, req := range r.requests {
		if req.RequesterID != requesterID {
			requests = append(requests, req)
		}
	}
	sortByCreatedDesc(requests)
	return paginate(requests, offset, limit), nil
}

// ---- helpers ----

// populateBooking returns a copy with Item and Booker resolved.
// Callers must hold at least the read lock.
func (r *MemoryRepo) populateBooking(b model.Booking) model.Booking {
	if item, ok := r.items[b.ItemID]; ok {
		b.Item = &item
	}
	if booker, ok := r.users[b.BookerID]; ok {
		b.Booker = &booker
	}
	return b
}

// populateComment returns a copy with Author resolved.
// Callers must hold at least the read lock.
func (r *MemoryRepo) populateComment(c model.Comment) model.Comment {
	if author, ok := r.users[c.AuthorID]; ok {
		c.Author = &author
	}
	return c
}

func matchState(b model.Booking, state model.BookingState, now time.Time) bool {
	switch state {
	case model.StateCurrent:
		return b.Start.Before(now) && b.End.After(now)
	case model.StatePast:
		return b.End.Before(now)
	case model.StateFuture:
		return b.Start.After(now)
	case model.StateWaiting:
		return b.Status == model.StatusWaiting
	case model.StateRejected:
		return b.Status == model.StatusRejected
	default:
		return true
	}
}

func sortByStartDesc(bookings []model.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		if bookings[i].Start.Equal(bookings[j].Start) {
			return bookings[i].ID < bookings[j].ID
		}
		return bookings[i].Start.After(bookings[j].Start)
	})
}

func sortByCreatedDesc(requests []model.ItemRequest) {
	sort.Slice(requests, func(i, j int) bool {
		if requests[i].Created.Equal(requests[j].Created) {
			return requests[i].ID < requests[j].ID
		}
		return requests[i].Created.After(requests[j].Created)
	})
}

func paginate[T any](in []T, offset, limit int) []T {
	if offset < 0 || offset >= len(in) {
		return []T{}
	}
	end := len(in)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return append([]T(nil), in[offset:end]...)
}
