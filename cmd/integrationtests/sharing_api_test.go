package integrationtests

import (
	"net/http"
	"testing"
	"time"

	model "gearshare/internal/models"

	"github.com/stretchr/testify/require"
)

func TestUserLifecycle(t *testing.T) {
	router, _ := SetupTestRouter()

	aliceID := createUser(t, router, "Alice", "alice@example.com")

	// Duplicate email is a conflict
	w := ExecuteRequest(t, router, http.MethodPost, "/users", "", map[string]any{
		"name":  "Impostor",
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusConflict, w.Code)
	require.Equal(t, "EmailAlreadyExists error", ParseMap(t, w)["error"])

	// Partial update keeps the email
	w = ExecuteRequest(t, router, http.MethodPatch, "/users/"+aliceID, "", map[string]any{
		"name": "Alicia",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := ParseMap(t, w)
	require.Equal(t, "Alicia", updated["name"])
	require.Equal(t, "alice@example.com", updated["email"])

	// Re-submitting your own email is not a conflict
	w = ExecuteRequest(t, router, http.MethodPatch, "/users/"+aliceID, "", map[string]any{
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)

	createUser(t, router, "Bob", "bob@example.com")
	w = ExecuteRequest(t, router, http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ParseList(t, w), 2)

	w = ExecuteRequest(t, router, http.MethodDelete, "/users/"+aliceID, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = ExecuteRequest(t, router, http.MethodGet, "/users/"+aliceID, "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "IdNotFound error", ParseMap(t, w)["error"])

	// The freed email can be reused
	w = ExecuteRequest(t, router, http.MethodPost, "/users", "", map[string]any{
		"name":  "New Alice",
		"email": "alice@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestItemEndpointsRequireIdentity(t *testing.T) {
	router, _ := SetupTestRouter()

	w := ExecuteRequest(t, router, http.MethodPost, "/items", "", map[string]any{
		"name":        "Drill",
		"description": "18V",
		"available":   true,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Validation error", ParseMap(t, w)["error"])
}

func TestItemLifecycle(t *testing.T) {
	router, _ := SetupTestRouter()

	ownerID := createUser(t, router, "Owner", "owner@example.com")
	otherID := createUser(t, router, "Other", "other@example.com")

	// Unknown owner is hidden behind not-found
	w := ExecuteRequest(t, router, http.MethodPost, "/items", "ghost", map[string]any{
		"name":        "Drill",
		"description": "18V",
		"available":   true,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	itemID := createItem(t, router, ownerID, "Cordless Drill", true)

	// Only the owner can update
	w = ExecuteRequest(t, router, http.MethodPatch, "/items/"+itemID, otherID, map[string]any{
		"available": false,
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = ExecuteRequest(t, router, http.MethodPatch, "/items/"+itemID, ownerID, map[string]any{
		"available": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, false, ParseMap(t, w)["available"])

	// Unavailable items disappear from search
	w = ExecuteRequest(t, router, http.MethodGet, "/items/search?text=drill", otherID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, ParseList(t, w))

	w = ExecuteRequest(t, router, http.MethodPatch, "/items/"+itemID, ownerID, map[string]any{
		"available": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = ExecuteRequest(t, router, http.MethodGet, "/items/search?text=DRILL", otherID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ParseList(t, w), 1)

	// Blank search is an empty list, not an error
	w = ExecuteRequest(t, router, http.MethodGet, "/items/search?text=", otherID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, ParseList(t, w))
}

func TestBookingFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	ownerID := createUser(t, router, "Owner", "owner@example.com")
	bookerID := createUser(t, router, "Booker", "booker@example.com")
	thirdID := createUser(t, router, "Third", "third@example.com")
	itemID := createItem(t, router, ownerID, "Kayak", true)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(48 * time.Hour)
	booking := createBooking(t, router, bookerID, itemID, start, end)
	bookingID := booking["id"].(string)
	require.Equal(t, "WAITING", booking["status"])

	// Visible to booker and owner, hidden from anyone else
	w := ExecuteRequest(t, router, http.MethodGet, "/bookings/"+bookingID, bookerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = ExecuteRequest(t, router, http.MethodGet, "/bookings/"+bookingID, ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = ExecuteRequest(t, router, http.MethodGet, "/bookings/"+bookingID, thirdID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "IdNotFound error", ParseMap(t, w)["error"])

	// Only the owner can decide
	w = ExecuteRequest(t, router, http.MethodPatch, "/bookings/"+bookingID+"?approved=true", bookerID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = ExecuteRequest(t, router, http.MethodPatch, "/bookings/"+bookingID+"?approved=true", ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "APPROVED", ParseMap(t, w)["status"])

	// A second decision is refused
	w = ExecuteRequest(t, router, http.MethodPatch, "/bookings/"+bookingID+"?approved=false", ownerID, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Unavailable error", ParseMap(t, w)["error"])

	// Listings see the decided booking
	w = ExecuteRequest(t, router, http.MethodGet, "/bookings?state=FUTURE", bookerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ParseList(t, w), 1)

	w = ExecuteRequest(t, router, http.MethodGet, "/bookings/owner?state=ALL", ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ParseList(t, w), 1)

	w = ExecuteRequest(t, router, http.MethodGet, "/bookings/owner", bookerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, ParseList(t, w))
}

func TestBookingRejectFlow(t *testing.T) {
	router, _ := SetupTestRouter()

	ownerID := createUser(t, router, "Owner", "owner@example.com")
	bookerID := createUser(t, router, "Booker", "booker@example.com")
	itemID := createItem(t, router, ownerID, "Tent", true)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	booking := createBooking(t, router, bookerID, itemID, start, start.Add(24*time.Hour))
	bookingID := booking["id"].(string)

	w := ExecuteRequest(t, router, http.MethodPatch, "/bookings/"+bookingID+"?approved=false", ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "REJECTED", ParseMap(t, w)["status"])

	// Rejected bookings cannot be re-decided either
	w = ExecuteRequest(t, router, http.MethodPatch, "/bookings/"+bookingID+"?approved=true", ownerID, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Unavailable error", ParseMap(t, w)["error"])

	w = ExecuteRequest(t, router, http.MethodGet, "/bookings?state=REJECTED", bookerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ParseList(t, w), 1)
}

func TestBookingPreconditions(t *testing.T) {
	router, _ := SetupTestRouter()

	ownerID := createUser(t, router, "Owner", "owner@example.com")
	bookerID := createUser(t, router, "Booker", "booker@example.com")
	availableID := createItem(t, router, ownerID, "Kayak", true)
	unavailableID := createItem(t, router, ownerID, "Broken Kayak", false)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	end := start.Add(24 * time.Hour)

	// Bad time windows
	for name, window := range map[string][2]time.Time{
		"start_after_end":  {end, start},
		"start_equals_end": {start, start},
		"start_in_past":    {start.Add(-72 * time.Hour), end},
	} {
		w := ExecuteRequest(t, router, http.MethodPost, "/bookings", bookerID, map[string]any{
			"itemId": availableID,
			"start":  window[0].Format(time.RFC3339),
			"end":    window[1].Format(time.RFC3339),
		})
		require.Equal(t, http.StatusBadRequest, w.Code, name)
		require.Equal(t, "Validation error", ParseMap(t, w)["error"], name)
	}

	// Unknown item
	w := ExecuteRequest(t, router, http.MethodPost, "/bookings", bookerID, map[string]any{
		"itemId": "missing",
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Booking your own item is hidden behind not-found
	w = ExecuteRequest(t, router, http.MethodPost, "/bookings", ownerID, map[string]any{
		"itemId": availableID,
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "IdNotFound error", ParseMap(t, w)["error"])

	// Unavailable item
	w = ExecuteRequest(t, router, http.MethodPost, "/bookings", bookerID, map[string]any{
		"itemId": unavailableID,
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Unavailable error", ParseMap(t, w)["error"])
}

func TestBookingListUnknownState(t *testing.T) {
	router, _ := SetupTestRouter()
	userID := createUser(t, router, "Alice", "alice@example.com")

	w := ExecuteRequest(t, router, http.MethodGet, "/bookings?state=SOMETIMES", userID, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Unknown state: SOMETIMES", ParseMap(t, w)["error"])
}

func TestItemProjections(t *testing.T) {
	router, repo := SetupTestRouter()

	ownerID := createUser(t, router, "Owner", "owner@example.com")
	bookerID := createUser(t, router, "Booker", "booker@example.com")
	itemID := createItem(t, router, ownerID, "Kayak", true)

	now := time.Now().UTC()
	seedBooking(t, repo, "finished", itemID, bookerID, now.Add(-72*time.Hour), now.Add(-48*time.Hour), model.StatusApproved)
	seedBooking(t, repo, "ongoing", itemID, bookerID, now.Add(-time.Hour), now.Add(time.Hour), model.StatusApproved)
	seedBooking(t, repo, "upcoming", itemID, bookerID, now.Add(24*time.Hour), now.Add(48*time.Hour), model.StatusApproved)
	seedBooking(t, repo, "pending", itemID, bookerID, now.Add(2*time.Hour), now.Add(3*time.Hour), model.StatusWaiting)

	// The owner sees the projections: the started-but-unfinished booking is
	// the last one, and the WAITING booking never shows up.
	w := ExecuteRequest(t, router, http.MethodGet, "/items/"+itemID, ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := ParseMap(t, w)
	require.Equal(t, "ongoing", body["lastBooking"].(map[string]any)["id"])
	require.Equal(t, "upcoming", body["nextBooking"].(map[string]any)["id"])

	// A non-owner gets nulls
	w = ExecuteRequest(t, router, http.MethodGet, "/items/"+itemID, bookerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body = ParseMap(t, w)
	require.Nil(t, body["lastBooking"])
	require.Nil(t, body["nextBooking"])

	// The owner listing carries the same projections
	w = ExecuteRequest(t, router, http.MethodGet, "/items", ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := ParseList(t, w)
	require.Len(t, items, 1)
	require.Equal(t, "ongoing", items[0].(map[string]any)["lastBooking"].(map[string]any)["id"])
}

func TestCommentGating(t *testing.T) {
	router, repo := SetupTestRouter()

	ownerID := createUser(t, router, "Owner", "owner@example.com")
	bookerID := createUser(t, router, "Booker", "booker@example.com")
	strangerID := createUser(t, router, "Stranger", "stranger@example.com")
	itemID := createItem(t, router, ownerID, "Kayak", true)

	now := time.Now().UTC()
	seedBooking(t, repo, "finished", itemID, bookerID, now.Add(-72*time.Hour), now.Add(-48*time.Hour), model.StatusApproved)
	seedBooking(t, repo, "ongoing", itemID, strangerID, now.Add(-time.Hour), now.Add(time.Hour), model.StatusApproved)

	// A finished booking unlocks commenting
	w := ExecuteRequest(t, router, http.MethodPost, "/items/"+itemID+"/comment", bookerID, map[string]any{
		"text": "paddled all weekend, great kayak",
	})
	require.Equal(t, http.StatusOK, w.Code)
	comment := ParseMap(t, w)
	require.Equal(t, "Booker", comment["authorName"])

	// An in-progress booking does not
	w = ExecuteRequest(t, router, http.MethodPost, "/items/"+itemID+"/comment", strangerID, map[string]any{
		"text": "still using it",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Unavailable error", ParseMap(t, w)["error"])

	// No booking at all does not either
	w = ExecuteRequest(t, router, http.MethodPost, "/items/"+itemID+"/comment", ownerID, map[string]any{
		"text": "my own item is great",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	// Everyone sees the comment on the item view
	w = ExecuteRequest(t, router, http.MethodGet, "/items/"+itemID, strangerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	comments := ParseMap(t, w)["comments"].([]any)
	require.Len(t, comments, 1)
}

func TestRequestBoard(t *testing.T) {
	router, _ := SetupTestRouter()

	requesterID := createUser(t, router, "Requester", "requester@example.com")
	ownerID := createUser(t, router, "Owner", "owner@example.com")

	w := ExecuteRequest(t, router, http.MethodPost, "/requests", requesterID, map[string]any{
		"description": "need a kayak for the weekend",
	})
	require.Equal(t, http.StatusOK, w.Code)
	requestID := ParseMap(t, w)["id"].(string)

	// Another user answers the request with an item
	w = ExecuteRequest(t, router, http.MethodPost, "/items", ownerID, map[string]any{
		"name":        "Kayak",
		"description": "two-seater",
		"available":   true,
		"requestId":   requestID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Own requests carry their answers
	w = ExecuteRequest(t, router, http.MethodGet, "/requests", requesterID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	own := ParseList(t, w)
	require.Len(t, own, 1)
	answers := own[0].(map[string]any)["items"].([]any)
	require.Len(t, answers, 1)
	require.Equal(t, "Kayak", answers[0].(map[string]any)["name"])

	// The requester's own requests are excluded from /requests/all
	w = ExecuteRequest(t, router, http.MethodGet, "/requests/all", requesterID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, ParseList(t, w))

	w = ExecuteRequest(t, router, http.MethodGet, "/requests/all", ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ParseList(t, w), 1)

	w = ExecuteRequest(t, router, http.MethodGet, "/requests/"+requestID, ownerID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "need a kayak for the weekend", ParseMap(t, w)["description"])

	w = ExecuteRequest(t, router, http.MethodGet, "/requests/missing", ownerID, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
