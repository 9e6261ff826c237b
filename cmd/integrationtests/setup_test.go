package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gearshare/internal/bookingservice"
	"gearshare/internal/itemservice"
	model "gearshare/internal/models"
	"gearshare/internal/repository"
	"gearshare/internal/requestservice"
	"gearshare/internal/server"
	"gearshare/internal/userservice"
	"gearshare/services/sharing/helpers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupTestRouter initializes the router with in-memory repository for
// integration testing. The repo is returned so tests can seed state that
// the public API refuses to create, like bookings in the past.
func SetupTestRouter() (*gin.Engine, *repository.MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepo()
	router := server.SetupRouter(
		bookingservice.NewBookingService(repo),
		itemservice.NewItemService(repo),
		userservice.NewUserService(repo),
		requestservice.NewRequestService(repo),
	)
	return router, repo
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		var err error
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(helpers.IdentityHeader, userID)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ParseMap decodes a JSON object response body.
func ParseMap(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return resp
}

// ParseList decodes a JSON array response body.
func ParseList(t *testing.T, w *httptest.ResponseRecorder) []any {
	t.Helper()
	var resp []any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
	return resp
}

// createUser registers a user through the API and returns its id.
func createUser(t *testing.T, router *gin.Engine, name, email string) string {
	t.Helper()
	w := ExecuteRequest(t, router, "POST", "/users", "", map[string]any{
		"name":  name,
		"email": email,
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	return ParseMap(t, w)["id"].(string)
}

// createItem registers an item through the API and returns its id.
func createItem(t *testing.T, router *gin.Engine, ownerID, name string, available bool) string {
	t.Helper()
	w := ExecuteRequest(t, router, "POST", "/items", ownerID, map[string]any{
		"name":        name,
		"description": name + " description",
		"available":   available,
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	return ParseMap(t, w)["id"].(string)
}

// createBooking books an item through the API and returns the response body.
func createBooking(t *testing.T, router *gin.Engine, bookerID, itemID string, start, end time.Time) map[string]any {
	t.Helper()
	w := ExecuteRequest(t, router, "POST", "/bookings", bookerID, map[string]any{
		"itemId": itemID,
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
	})
	require.Equal(t, 200, w.Code, w.Body.String())
	return ParseMap(t, w)
}

// seedBooking writes a booking straight into storage, bypassing the API's
// time-window validation.
func seedBooking(t *testing.T, repo *repository.MemoryRepo, id, itemID, bookerID string, start, end time.Time, status model.BookingStatus) {
	t.Helper()
	_, err := repo.SaveBooking(model.Booking{
		ID:       id,
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   status,
	})
	require.NoError(t, err)
}
