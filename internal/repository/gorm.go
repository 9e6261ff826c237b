package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	model "gearshare/internal/models"
	"gearshare/internal/sharingerrors"
)

// GormRepo is a gorm-backed implementation of SharingDB.
type GormRepo struct {
	db *gorm.DB
}

// NewGormRepo wraps an open gorm handle and migrates the schema.
func NewGormRepo(db *gorm.DB) (*GormRepo, error) {
	if err := model.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}
	return &GormRepo{db: db}, nil
}

// OpenPostgres opens a postgres-backed gorm handle from a DSN.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}
	db, err := gorm.Open(postgres.Open(dsn), cfg)
	if err != nil {
		return nil, fmt.Errorf("gorm open: %w", err)
	}
	return db, nil
}

// mapNotFound converts gorm's record-not-found into the shared sentinel.
func mapNotFound(err error, what, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("get %s %s: %w", what, id, sharingerrors.ErrNotFound)
	}
	return fmt.Errorf("get %s %s: %w", what, id, err)
}

// ---- users ----

func (r *GormRepo) SaveUser(user model.User) (model.User, error) {
	if err := r.db.Create(&user).Error; err != nil {
		return model.User{}, fmt.Errorf("save user: %w", err)
	}
	return user, nil
}

func (r *GormRepo) UpdateUser(user model.User) (model.User, error) {
	tx := r.db.Model(&model.User{}).Where("id = ?", user.ID).
		Updates(map[string]any{"name": user.Name, "email": user.Email})
	if tx.Error != nil {
		return model.User{}, fmt.Errorf("update user: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return model.User{}, fmt.Errorf("update user %s: %w", user.ID, sharingerrors.ErrNotFound)
	}
	return user, nil
}

func (r *GormRepo) GetUserByID(id string) (model.User, error) {
	var user model.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return model.User{}, mapNotFound(err, "user", id)
	}
	return user, nil
}

func (r *GormRepo) GetAllUsers() ([]model.User, error) {
	var users []model.User
	if err := r.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("get all users: %w", err)
	}
	return users, nil
}

func (r *GormRepo) DeleteUser(id string) error {
	tx := r.db.Delete(&model.User{}, "id = ?", id)
	if tx.Error != nil {
		return fmt.Errorf("delete user: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("delete user %s: %w", id, sharingerrors.ErrNotFound)
	}
	return nil
}

func (r *GormRepo) EmailTaken(email, excludeID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).
		Where("LOWER(email) = LOWER(?) AND id <> ?", email, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// ---- items ----

func (r *GormRepo) SaveItem(item model.Item) (model.Item, error) {
	item.Owner = nil
	if err := r.db.Create(&item).Error; err != nil {
		return model.Item{}, fmt.Errorf("save item: %w", err)
	}
	return item, nil
}

func (r *GormRepo) UpdateItem(item model.Item) (model.Item, error) {
	tx := r.db.Model(&model.Item{}).Where("id = ?", item.ID).Updates(map[string]any{
		"name":        item.Name,
		"description": item.Description,
		"available":   item.Available,
	})
	if tx.Error != nil {
		return model.Item{}, fmt.Errorf("update item: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return model.Item{}, fmt.Errorf("update item %s: %w", item.ID, sharingerrors.ErrNotFound)
	}
	return item, nil
}

func (r *GormRepo) GetItemByID(id string) (model.Item, error) {
	var item model.Item
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		return model.Item{}, mapNotFound(err, "item", id)
	}
	return item, nil
}

func (r *GormRepo) GetItemsByOwner(ownerID string, offset, limit int) ([]model.Item, error) {
	var items []model.Item
	err := r.db.Where("owner_id = ?", ownerID).
		Order("id").Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("get items for owner %s: %w", ownerID, err)
	}
	return items, nil
}

func (r *GormRepo) SearchItems(text string, offset, limit int) ([]model.Item, error) {
	pattern := "%" + text + "%"
	var items []model.Item
	err := r.db.Where("available = ? AND (LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))",
		true, pattern, pattern).
		Order("id").Offset(offset).Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return items, nil
}

func (r *GormRepo) GetItemsByRequests(requestIDs []string) ([]model.Item, error) {
	if len(requestIDs) == 0 {
		return []model.Item{}, nil
	}
	var items []model.Item
	if err := r.db.Where("request_id IN ?", requestIDs).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("get items by requests: %w", err)
	}
	return items, nil
}

// ---- bookings ----

func (r *GormRepo) SaveBooking(booking model.Booking) (model.Booking, error) {
	booking.Item = nil
	booking.Booker = nil
	if err := r.db.Create(&booking).Error; err != nil {
		return model.Booking{}, fmt.Errorf("save booking: %w", err)
	}
	return r.GetBookingByID(booking.ID)
}

func (r *GormRepo) GetBookingByID(id string) (model.Booking, error) {
	var booking model.Booking
	err := r.db.Preload("Item").Preload("Booker").First(&booking, "id = ?", id).Error
	if err != nil {
		return model.Booking{}, mapNotFound(err, "booking", id)
	}
	return booking, nil
}

// DecideBooking flips a WAITING booking to the given status. The WHERE on
// status makes the update a compare-and-swap, so concurrent decisions on
// the same booking admit exactly one winner.
func (r *GormRepo) DecideBooking(id string, status model.BookingStatus) (model.Booking, error) {
	tx := r.db.Model(&model.Booking{}).
		Where("id = ? AND status = ?", id, model.StatusWaiting).
		Update("status", status)
	if tx.Error != nil {
		return model.Booking{}, fmt.Errorf("decide booking: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		if _, err := r.GetBookingByID(id); err != nil {
			return model.Booking{}, err
		}
		return model.Booking{}, fmt.Errorf("decide booking %s: %w", id, sharingerrors.ErrAlreadyDecided)
	}
	return r.GetBookingByID(id)
}

func (r *GormRepo) ListForBooker(bookerID string, state model.BookingState, now time.Time, offset, limit int) ([]model.Booking, error) {
	q := r.db.Preload("Item").Preload("Booker").
		Where("booker_id = ?", bookerID)
	q = applyStateFilter(q, state, now)
	var bookings []model.Booking
	err := q.Order("start_date DESC").Offset(offset).Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings for booker %s: %w", bookerID, err)
	}
	return bookings, nil
}

func (r *GormRepo) ListForOwner(ownerID string, state model.BookingState, now time.Time, offset, limit int) ([]model.Booking, error) {
	q := r.db.Preload("Item").Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	q = applyStateFilter(q, state, now)
	var bookings []model.Booking
	err := q.Order("bookings.start_date DESC").Offset(offset).Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings for owner %s: %w", ownerID, err)
	}
	return bookings, nil
}

func applyStateFilter(q *gorm.DB, state model.BookingState, now time.Time) *gorm.DB {
	switch state {
	case model.StateCurrent:
		return q.Where("bookings.start_date < ? AND bookings.end_date > ?", now, now)
	case model.StatePast:
		return q.Where("bookings.end_date < ?", now)
	case model.StateFuture:
		return q.Where("bookings.start_date > ?", now)
	case model.StateWaiting:
		return q.Where("bookings.status = ?", model.StatusWaiting)
	case model.StateRejected:
		return q.Where("bookings.status = ?", model.StatusRejected)
	default:
		return q
	}
}

func (r *GormRepo) LastBookingForItem(itemID string, now time.Time) (*model.Booking, error) {
	var bookings []model.Booking
	err := r.db.Preload("Item").Preload("Booker").
		Where("item_id = ? AND status = ? AND start_date < ?", itemID, model.StatusApproved, now).
		Order("end_date DESC").Limit(1).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("last booking for item %s: %w", itemID, err)
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return &bookings[0], nil
}

func (r *GormRepo) NextBookingForItem(itemID string, now time.Time) (*model.Booking, error) {
	var bookings []model.Booking
	err := r.db.Preload("Item").Preload("Booker").
		Where("item_id = ? AND status = ? AND start_date > ?", itemID, model.StatusApproved, now).
		Order("start_date ASC").Limit(1).
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("next booking for item %s: %w", itemID, err)
	}
	if len(bookings) == 0 {
		return nil, nil
	}
	return &bookings[0], nil
}

func (r *GormRepo) HasFinishedBooking(bookerID, itemID string, now time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&model.Booking{}).
		Where("booker_id = ? AND item_id = ? AND end_date < ?", bookerID, itemID, now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check finished booking: %w", err)
	}
	return count > 0, nil
}

// ---- comments ----

func (r *GormRepo) SaveComment(comment model.Comment) (model.Comment, error) {
	comment.Author = nil
	if err := r.db.Create(&comment).Error; err != nil {
		return model.Comment{}, fmt.Errorf("save comment: %w", err)
	}
	var saved model.Comment
	if err := r.db.Preload("Author").First(&saved, "id = ?", comment.ID).Error; err != nil {
		return model.Comment{}, fmt.Errorf("reload comment: %w", err)
	}
	return saved, nil
}

func (r *GormRepo) GetCommentsByItem(itemID string) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.Preload("Author").Where("item_id = ?", itemID).Order("created").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("get comments for item %s: %w", itemID, err)
	}
	return comments, nil
}

func (r *GormRepo) GetCommentsByItems(itemIDs []string) ([]model.Comment, error) {
	if len(itemIDs) == 0 {
		return []model.Comment{}, nil
	}
	var comments []model.Comment
	err := r.db.Preload("Author").Where("item_id IN ?", itemIDs).Order("created").Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("get comments by items: %w", err)
	}
	return comments, nil
}

// ---- requests ----

func (r *GormRepo) SaveRequest(request model.ItemRequest) (model.ItemRequest, error) {
	if err := r.db.Create(&request).Error; err != nil {
		return model.ItemRequest{}, fmt.Errorf("save request: %w", err)
	}
	return request, nil
}

func (r *GormRepo) GetRequestByID(id string) (model.ItemRequest, error) {
	var request model.ItemRequest
	if err := r.db.First(&request, "id = ?", id).Error; err != nil {
		return model.ItemRequest{}, mapNotFound(err, "request", id)
	}
	return request, nil
}

func (r *GormRepo) GetRequestsByRequester(requesterID string) ([]model.ItemRequest, error) {
	var requests []model.ItemRequest
	err := r.db.Where("requester_id = ?", requesterID).Order("created DESC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("get requests for %s: %w", requesterID, err)
	}
	return requests, nil
}

func (r *GormRepo) GetRequestsFromOthers(requesterID string, offset, limit int) ([]model.ItemRequest, error) {
	var requests []model.ItemRequest
	err := r.db.Where("requester_id <> ?", requesterID).
		Order("created DESC").Offset(offset).Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("get requests from others: %w", err)
	}
	return requests, nil
}
