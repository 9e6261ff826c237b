package itemservice

import (
	"fmt"
	"strings"
	"time"

	model "gearshare/internal/models"
	"gearshare/internal/repository"
	"gearshare/internal/sharingerrors"
	"gearshare/utils"
)

// maxCommentLen bounds comment text, matching the column width.
const maxCommentLen = 512

// ItemDetails is an item view with its comment history and, for the
// owner only, the last/next approved booking projections.
type ItemDetails struct {
	Item        model.Item
	LastBooking *model.Booking
	NextBooking *model.Booking
	Comments    []model.Comment
}

// ItemService is the item catalog plus the item-booking projector and
// comment gatekeeping.
type ItemService struct {
	repo repository.SharingDB
}

// NewItemService creates a new ItemService instance
func NewItemService(repo repository.SharingDB) *ItemService {
	return &ItemService{
		repo: repo,
	}
}

// CreateItem registers a new item for an existing owner. When requestID is
// set the item becomes an answer to that request.
func (s *ItemService) CreateItem(ownerID, name, description string, available bool, requestID *string) (model.Item, error) {
	if name == "" || description == "" {
		return model.Item{}, fmt.Errorf("service: %w - name and description are required", sharingerrors.ErrValidation)
	}
	if _, err := s.repo.GetUserByID(ownerID); err != nil {
		return model.Item{}, fmt.Errorf("service: owner lookup failed: %w", err)
	}
	if requestID != nil {
		if _, err := s.repo.GetRequestByID(*requestID); err != nil {
			return model.Item{}, fmt.Errorf("service: request lookup failed: %w", err)
		}
	}

	item := model.Item{
		ID:          utils.GenerateID(),
		Name:        name,
		Description: description,
		Available:   available,
		OwnerID:     ownerID,
		RequestID:   requestID,
	}
	saved, err := s.repo.SaveItem(item)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to save item for user %s: %w", ownerID, err)
	}
	return saved, nil
}

// UpdateItem applies a partial update. Only the owner may mutate the item;
// anyone else gets not-found, hiding the item's ownership.
func (s *ItemService) UpdateItem(userID, itemID string, name, description *string, available *bool) (model.Item, error) {
	item, err := s.repo.GetItemByID(itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: item lookup failed: %w", err)
	}
	if _, err := s.repo.GetUserByID(userID); err != nil {
		return model.Item{}, fmt.Errorf("service: user lookup failed: %w", err)
	}
	if item.OwnerID != userID {
		return model.Item{}, fmt.Errorf("service: item %s does not belong to user %s: %w", itemID, userID, sharingerrors.ErrNotFound)
	}
	if name != nil {
		item.Name = *name
	}
	if description != nil {
		item.Description = *description
	}
	if available != nil {
		item.Available = *available
	}
	updated, err := s.repo.UpdateItem(item)
	if err != nil {
		return model.Item{}, fmt.Errorf("service: failed to update item %s: %w", itemID, err)
	}
	return updated, nil
}

// GetItemByID returns the item with its comments. Last/next booking
// projections are attached only when the caller owns the item.
func (s *ItemService) GetItemByID(userID, itemID string) (ItemDetails, error) {
	item, err := s.repo.GetItemByID(itemID)
	if err != nil {
		return ItemDetails{}, fmt.Errorf("service: item lookup failed: %w", err)
	}
	if _, err := s.repo.GetUserByID(userID); err != nil {
		return ItemDetails{}, fmt.Errorf("service: user lookup failed: %w", err)
	}

	details := ItemDetails{Item: item}
	if item.OwnerID == userID {
		if err := s.attachProjection(&details, time.Now().UTC()); err != nil {
			return ItemDetails{}, err
		}
	}
	comments, err := s.repo.GetCommentsByItem(itemID)
	if err != nil {
		return ItemDetails{}, fmt.Errorf("service: failed to load comments for item %s: %w", itemID, err)
	}
	details.Comments = comments
	return details, nil
}

// GetOwnerItems returns the owner's items, each with projections and
// comments attached.
func (s *ItemService) GetOwnerItems(ownerID string, from, size int) ([]ItemDetails, error) {
	if _, err := s.repo.GetUserByID(ownerID); err != nil {
		return nil, fmt.Errorf("service: owner lookup failed: %w", err)
	}
	items, err := s.repo.GetItemsByOwner(ownerID, from, size)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items for owner %s: %w", ownerID, err)
	}

	itemIDs := make([]string, 0, len(items))
	for _, it := range items {
		itemIDs = append(itemIDs, it.ID)
	}
	comments, err := s.repo.GetCommentsByItems(itemIDs)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load comments for owner %s: %w", ownerID, err)
	}
	byItem := make(map[string][]model.Comment)
	for _, c := range comments {
		byItem[c.ItemID] = append(byItem[c.ItemID], c)
	}

	now := time.Now().UTC()
	details := make([]ItemDetails, 0, len(items))
	for _, it := range items {
		d := ItemDetails{Item: it, Comments: byItem[it.ID]}
		if err := s.attachProjection(&d, now); err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

// attachProjection computes the item-booking projection at the given
// instant: last is the approved booking with the greatest end among those
// already started (an in-progress booking qualifies), next is the approved
// booking with the smallest future start.
func (s *ItemService) attachProjection(d *ItemDetails, now time.Time) error {
	last, err := s.repo.LastBookingForItem(d.Item.ID, now)
	if err != nil {
		return fmt.Errorf("service: failed to project last booking for item %s: %w", d.Item.ID, err)
	}
	next, err := s.repo.NextBookingForItem(d.Item.ID, now)
	if err != nil {
		return fmt.Errorf("service: failed to project next booking for item %s: %w", d.Item.ID, err)
	}
	d.LastBooking = last
	d.NextBooking = next
	return nil
}

// SearchItems matches available items whose name or description contains
// the text, case-insensitively. Blank text returns an empty list.
func (s *ItemService) SearchItems(text string, from, size int) ([]model.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []model.Item{}, nil
	}
	items, err := s.repo.SearchItems(text, from, size)
	if err != nil {
		return nil, fmt.Errorf("service: search failed: %w", err)
	}
	return items, nil
}

// CreateComment records feedback on an item. Only a user with a booking on
// that item whose end is already in the past may comment.
func (s *ItemService) CreateComment(authorID, itemID, text string) (model.Comment, error) {
	if text == "" {
		return model.Comment{}, fmt.Errorf("service: %w - comment text is required", sharingerrors.ErrValidation)
	}
	if len(text) > maxCommentLen {
		return model.Comment{}, fmt.Errorf("service: %w - comment text exceeds %d characters", sharingerrors.ErrValidation, maxCommentLen)
	}
	if _, err := s.repo.GetItemByID(itemID); err != nil {
		return model.Comment{}, fmt.Errorf("service: item lookup failed: %w", err)
	}
	if _, err := s.repo.GetUserByID(authorID); err != nil {
		return model.Comment{}, fmt.Errorf("service: author lookup failed: %w", err)
	}
	finished, err := s.repo.HasFinishedBooking(authorID, itemID, time.Now().UTC())
	if err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to check bookings for comment: %w", err)
	}
	if !finished {
		return model.Comment{}, fmt.Errorf("service: only users who completed a booking can comment: %w", sharingerrors.ErrUnavailable)
	}

	comment := model.Comment{
		ID:       utils.GenerateID(),
		Text:     text,
		ItemID:   itemID,
		AuthorID: authorID,
		Created:  time.Now().UTC(),
	}
	saved, err := s.repo.SaveComment(comment)
	if err != nil {
		return model.Comment{}, fmt.Errorf("service: failed to save comment on item %s: %w", itemID, err)
	}
	return saved, nil
}
