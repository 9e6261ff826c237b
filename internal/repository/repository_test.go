package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	model "gearshare/internal/models"
	"gearshare/internal/sharingerrors"

	"github.com/stretchr/testify/require"
)

// Helper to create a new User
func newUser(id, name string) model.User {
	return model.User{
		ID:    id,
		Name:  name,
		Email: fmt.Sprintf("%s@example.com", id),
	}
}

// Helper to create a new Item
func newItem(id, ownerID string, available bool) model.Item {
	return model.Item{
		ID:          id,
		Name:        fmt.Sprintf("item %s", id),
		Description: fmt.Sprintf("description for %s", id),
		Available:   available,
		OwnerID:     ownerID,
	}
}

// Helper to create a new Booking
func newBooking(id, itemID, bookerID string, start, end time.Time, status model.BookingStatus) model.Booking {
	return model.Booking{
		ID:       id,
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   status,
	}
}

// seedRepo builds a repo with two users, one item owned by user1 and a
// set of bookings by user2 spanning past, current and future windows.
func seedRepo(t *testing.T, now time.Time) *MemoryRepo {
	t.Helper()
	repo := NewMemoryRepo()

	_, err := repo.SaveUser(newUser("user1", "Owner"))
	require.NoError(t, err)
	_, err = repo.SaveUser(newUser("user2", "Booker"))
	require.NoError(t, err)
	_, err = repo.SaveItem(newItem("item1", "user1", true))
	require.NoError(t, err)

	bookings := []model.Booking{
		newBooking("past", "item1", "user2", now.Add(-48*time.Hour), now.Add(-24*time.Hour), model.StatusApproved),
		newBooking("current", "item1", "user2", now.Add(-1*time.Hour), now.Add(1*time.Hour), model.StatusApproved),
		newBooking("future", "item1", "user2", now.Add(24*time.Hour), now.Add(48*time.Hour), model.StatusApproved),
		newBooking("waiting", "item1", "user2", now.Add(72*time.Hour), now.Add(96*time.Hour), model.StatusWaiting),
		newBooking("rejected", "item1", "user2", now.Add(120*time.Hour), now.Add(144*time.Hour), model.StatusRejected),
	}
	for _, b := range bookings {
		_, err := repo.SaveBooking(b)
		require.NoError(t, err)
	}
	return repo
}

// Test ListForBooker state partitions
func TestMemoryRepo_ListForBooker_States(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := seedRepo(t, now)

	tests := []struct {
		name    string
		state   model.BookingState
		wantIDs []string
	}{
		{name: "all", state: model.StateAll, wantIDs: []string{"rejected", "waiting", "future", "current", "past"}},
		{name: "current", state: model.StateCurrent, wantIDs: []string{"current"}},
		{name: "past", state: model.StatePast, wantIDs: []string{"past"}},
		{name: "future", state: model.StateFuture, wantIDs: []string{"rejected", "waiting", "future"}},
		{name: "waiting", state: model.StateWaiting, wantIDs: []string{"waiting"}},
		{name: "rejected", state: model.StateRejected, wantIDs: []string{"rejected"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bookings, err := repo.ListForBooker("user2", tc.state, now, 0, 20)
			require.NoError(t, err)

			got := make([]string, 0, len(bookings))
			for _, b := range bookings {
				got = append(got, b.ID)
			}
			require.Equal(t, tc.wantIDs, got, "results must be ordered by start descending")
		})
	}
}

func TestMemoryRepo_ListForOwner(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := seedRepo(t, now)

	bookings, err := repo.ListForOwner("user1", model.StateAll, now, 0, 20)
	require.NoError(t, err)
	require.Len(t, bookings, 5)
	// Item and Booker resolved on listing results
	require.NotNil(t, bookings[0].Item)
	require.Equal(t, "user1", bookings[0].Item.OwnerID)
	require.NotNil(t, bookings[0].Booker)
	require.Equal(t, "user2", bookings[0].Booker.ID)

	none, err := repo.ListForOwner("user2", model.StateAll, now, 0, 20)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestMemoryRepo_ListForBooker_Pagination(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := seedRepo(t, now)

	page, err := repo.ListForBooker("user2", model.StateAll, now, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "waiting", page[0].ID)
	require.Equal(t, "future", page[1].ID)

	beyond, err := repo.ListForBooker("user2", model.StateAll, now, 10, 2)
	require.NoError(t, err)
	require.Empty(t, beyond)
}

// Test DecideBooking compare-and-swap
func TestMemoryRepo_DecideBooking(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := seedRepo(t, now)

	decided, err := repo.DecideBooking("waiting", model.StatusApproved)
	require.NoError(t, err)
	require.Equal(t, model.StatusApproved, decided.Status)

	// A second decision must fail: only WAITING bookings can transition
	_, err = repo.DecideBooking("waiting", model.StatusRejected)
	require.ErrorIs(t, err, sharingerrors.ErrAlreadyDecided)

	_, err = repo.DecideBooking("rejected", model.StatusApproved)
	require.ErrorIs(t, err, sharingerrors.ErrAlreadyDecided)

	_, err = repo.DecideBooking("missing", model.StatusApproved)
	require.ErrorIs(t, err, sharingerrors.ErrNotFound)
}

// Two concurrent decisions on the same booking admit exactly one winner.
func TestMemoryRepo_DecideBooking_Concurrent(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := seedRepo(t, now)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.DecideBooking("waiting", model.StatusApproved)
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, sharingerrors.ErrAlreadyDecided)
		}
	}
	require.Equal(t, 1, winners)
}

// Test the item-booking projector predicates
func TestMemoryRepo_LastAndNextBooking(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := seedRepo(t, now)

	last, err := repo.LastBookingForItem("item1", now)
	require.NoError(t, err)
	require.NotNil(t, last)
	// The in-progress booking has started, so it wins over the finished
	// one on the greater end; only start < now is checked, not end < now.
	require.Equal(t, "current", last.ID)
	require.True(t, last.End.After(now))

	next, err := repo.NextBookingForItem("item1", now)
	require.NoError(t, err)
	require.NotNil(t, next)
	// waiting and rejected bookings start sooner but are not APPROVED
	require.Equal(t, "future", next.ID)

	// No approved bookings at all -> both projections empty
	_, err = repo.SaveItem(newItem("item2", "user1", true))
	require.NoError(t, err)
	last, err = repo.LastBookingForItem("item2", now)
	require.NoError(t, err)
	require.Nil(t, last)
	next, err = repo.NextBookingForItem("item2", now)
	require.NoError(t, err)
	require.Nil(t, next)
}

func TestMemoryRepo_HasFinishedBooking(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	repo := seedRepo(t, now)

	finished, err := repo.HasFinishedBooking("user2", "item1", now)
	require.NoError(t, err)
	require.True(t, finished)

	finished, err = repo.HasFinishedBooking("user1", "item1", now)
	require.NoError(t, err)
	require.False(t, finished)
}

func TestMemoryRepo_EmailTaken(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.SaveUser(model.User{ID: "u1", Name: "A", Email: "a@example.com"})
	require.NoError(t, err)

	tests := []struct {
		name      string
		email     string
		excludeID string
		want      bool
	}{
		{name: "taken", email: "a@example.com", excludeID: "", want: true},
		{name: "taken_case_insensitive", email: "A@Example.COM", excludeID: "", want: true},
		{name: "own_email_excluded", email: "a@example.com", excludeID: "u1", want: false},
		{name: "free", email: "b@example.com", excludeID: "", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			taken, err := repo.EmailTaken(tc.email, tc.excludeID)
			require.NoError(t, err)
			require.Equal(t, tc.want, taken)
		})
	}
}

func TestMemoryRepo_SearchItems(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.SaveItem(model.Item{ID: "i1", Name: "Cordless Drill", Description: "18V", Available: true, OwnerID: "u1"})
	require.NoError(t, err)
	_, err = repo.SaveItem(model.Item{ID: "i2", Name: "Ladder", Description: "includes drill bits", Available: true, OwnerID: "u1"})
	require.NoError(t, err)
	_, err = repo.SaveItem(model.Item{ID: "i3", Name: "Drill Press", Description: "heavy", Available: false, OwnerID: "u1"})
	require.NoError(t, err)

	items, err := repo.SearchItems("drill", 0, 20)
	require.NoError(t, err)
	require.Len(t, items, 2, "unavailable items must not match")

	ids := []string{items[0].ID, items[1].ID}
	require.Equal(t, []string{"i1", "i2"}, ids)
}

func TestMemoryRepo_RequestsAndAnswers(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	now := time.Now().UTC()

	_, err := repo.SaveRequest(model.ItemRequest{ID: "r1", Description: "need a drill", RequesterID: "u1", Created: now.Add(-time.Hour)})
	require.NoError(t, err)
	_, err = repo.SaveRequest(model.ItemRequest{ID: "r2", Description: "need a tent", RequesterID: "u1", Created: now})
	require.NoError(t, err)
	_, err = repo.SaveRequest(model.ItemRequest{ID: "r3", Description: "need a kayak", RequesterID: "u2", Created: now})
	require.NoError(t, err)

	own, err := repo.GetRequestsByRequester("u1")
	require.NoError(t, err)
	require.Len(t, own, 2)
	require.Equal(t, "r2", own[0].ID, "newest first")

	others, err := repo.GetRequestsFromOthers("u1", 0, 20)
	require.NoError(t, err)
	require.Len(t, others, 1)
	require.Equal(t, "r3", others[0].ID)

	req1 := "r1"
	_, err = repo.SaveItem(model.Item{ID: "i1", Name: "Drill", Description: "answer", Available: true, OwnerID: "u2", RequestID: &req1})
	require.NoError(t, err)

	answers, err := repo.GetItemsByRequests([]string{"r1", "r2"})
	require.NoError(t, err)
	require.Len(t, answers, 1)
	require.Equal(t, "i1", answers[0].ID)
}

func TestMemoryRepo_UserCRUD(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepo()
	_, err := repo.SaveUser(newUser("u1", "A"))
	require.NoError(t, err)

	got, err := repo.GetUserByID("u1")
	require.NoError(t, err)
	require.Equal(t, "A", got.Name)

	_, err = repo.GetUserByID("missing")
	require.ErrorIs(t, err, sharingerrors.ErrNotFound)

	require.NoError(t, repo.DeleteUser("u1"))
	require.ErrorIs(t, repo.DeleteUser("u1"), sharingerrors.ErrNotFound)
}
