package helpers

import (
	"time"

	"gearshare/internal/itemservice"
	model "gearshare/internal/models"
	"gearshare/internal/requestservice"
)

// Request DTOs
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateBookingRequest struct {
	ItemID string    `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required,max=512"`
}

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// Response DTOs
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
	RequestID   *string `json:"requestId,omitempty"`
}

type UserShort struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type ItemShort struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     string    `json:"id"`
	Start  string    `json:"start"`
	End    string    `json:"end"`
	Status string    `json:"status"`
	Booker UserShort `json:"booker"`
	Item   ItemShort `json:"item"`
}

// BookingRef is the compact projection attached to an item view.
type BookingRef struct {
	ID       string `json:"id"`
	BookerID string `json:"bookerId"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

type CommentResponse struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	AuthorName string `json:"authorName"`
	Created    string `json:"created"`
}

type ItemDetailsResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	RequestID   *string           `json:"requestId,omitempty"`
	LastBooking *BookingRef       `json:"lastBooking"`
	NextBooking *BookingRef       `json:"nextBooking"`
	Comments    []CommentResponse `json:"comments"`
}

type RequestResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Created     string `json:"created"`
}

type RequestWithAnswersResponse struct {
	ID          string         `json:"id"`
	Description string         `json:"description"`
	Created     string         `json:"created"`
	Items       []ItemResponse `json:"items"`
}

// Converters are hand-written per type pair; no reflective mapping.

func ToUserResponse(u model.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToItemResponse(it model.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Available:   it.Available,
		RequestID:   it.RequestID,
	}
}

func ToBookingResponse(b model.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start.UTC().Format(time.RFC3339),
		End:    b.End.UTC().Format(time.RFC3339),
		Status: string(b.Status),
		Booker: UserShort{ID: b.BookerID},
		Item:   ItemShort{ID: b.ItemID},
	}
	if b.Booker != nil {
		resp.Booker.Name = b.Booker.Name
	}
	if b.Item != nil {
		resp.Item.Name = b.Item.Name
	}
	return resp
}

func ToBookingRef(b *model.Booking) *BookingRef {
	if b == nil {
		return nil
	}
	return &BookingRef{
		ID:       b.ID,
		BookerID: b.BookerID,
		Start:    b.Start.UTC().Format(time.RFC3339),
		End:      b.End.UTC().Format(time.RFC3339),
	}
}

func ToCommentResponse(c model.Comment) CommentResponse {
	resp := CommentResponse{
		ID:      c.ID,
		Text:    c.Text,
		Created: c.Created.UTC().Format(time.RFC3339),
	}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToItemDetailsResponse(d itemservice.ItemDetails) ItemDetailsResponse {
	comments := make([]CommentResponse, 0, len(d.Comments))
	for _, c := range d.Comments {
		comments = append(comments, ToCommentResponse(c))
	}
	return ItemDetailsResponse{
		ID:          d.Item.ID,
		Name:        d.Item.Name,
		Description: d.Item.Description,
		Available:   d.Item.Available,
		RequestID:   d.Item.RequestID,
		LastBooking: ToBookingRef(d.LastBooking),
		NextBooking: ToBookingRef(d.NextBooking),
		Comments:    comments,
	}
}

func ToRequestResponse(r model.ItemRequest) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created.UTC().Format(time.RFC3339),
	}
}

func ToRequestWithAnswersResponse(r requestservice.RequestWithAnswers) RequestWithAnswersResponse {
	items := make([]ItemResponse, 0, len(r.Answers))
	for _, it := range r.Answers {
		items = append(items, ToItemResponse(it))
	}
	return RequestWithAnswersResponse{
		ID:          r.Request.ID,
		Description: r.Request.Description,
		Created:     r.Request.Created.UTC().Format(time.RFC3339),
		Items:       items,
	}
}
