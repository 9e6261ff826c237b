package handler

import (
	"net/http"

	"gearshare/internal/itemservice"
	model "gearshare/internal/models"
	"gearshare/services/sharing/helpers"

	"github.com/gin-gonic/gin"
)

type ItemServiceInterface interface {
	CreateItem(ownerID, name, description string, available bool, requestID *string) (model.Item, error)
	UpdateItem(userID, itemID string, name, description *string, available *bool) (model.Item, error)
	GetItemByID(userID, itemID string) (itemservice.ItemDetails, error)
	GetOwnerItems(ownerID string, from, size int) ([]itemservice.ItemDetails, error)
	SearchItems(text string, from, size int) ([]model.Item, error)
	CreateComment(authorID, itemID, text string) (model.Comment, error)
}

type ItemHandler struct {
	service ItemServiceInterface
}

func NewItemHandler(service ItemServiceInterface) *ItemHandler {
	return &ItemHandler{service: service}
}

// CreateItemHandler handles POST /items
func (h *ItemHandler) CreateItemHandler(c *gin.Context) {
	var req helpers.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateItemHandler", err)
		return
	}
	ownerID := helpers.CallerID(c)

	item, err := h.service.CreateItem(ownerID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		helpers.RespondError(c, "CreateItemHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemResponse(item))
	helpers.LogSuccess("CreateItemHandler", "item created", map[string]any{
		"item_id":  item.ID,
		"owner_id": ownerID,
	})
}

// UpdateItemHandler handles PATCH /items/:item_id
func (h *ItemHandler) UpdateItemHandler(c *gin.Context) {
	var req helpers.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateItemHandler", err)
		return
	}
	itemID := c.Param("item_id")
	userID := helpers.CallerID(c)

	item, err := h.service.UpdateItem(userID, itemID, req.Name, req.Description, req.Available)
	if err != nil {
		helpers.RespondError(c, "UpdateItemHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemResponse(item))
	helpers.LogSuccess("UpdateItemHandler", "item updated", map[string]any{"item_id": itemID})
}

// GetItemHandler handles GET /items/:item_id
func (h *ItemHandler) GetItemHandler(c *gin.Context) {
	itemID := c.Param("item_id")
	userID := helpers.CallerID(c)

	details, err := h.service.GetItemByID(userID, itemID)
	if err != nil {
		helpers.RespondError(c, "GetItemHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToItemDetailsResponse(details))
}

// ListOwnerItemsHandler handles GET /items?from=&size=
func (h *ItemHandler) ListOwnerItemsHandler(c *gin.Context) {
	ownerID := helpers.CallerID(c)
	from, size, err := helpers.ParsePaging(c)
	if err != nil {
		helpers.RespondError(c, "ListOwnerItemsHandler", err)
		return
	}

	details, err := h.service.GetOwnerItems(ownerID, from, size)
	if err != nil {
		helpers.RespondError(c, "ListOwnerItemsHandler", err)
		return
	}

	resp := make([]helpers.ItemDetailsResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, helpers.ToItemDetailsResponse(d))
	}
	c.JSON(http.StatusOK, resp)
	helpers.LogSuccess("ListOwnerItemsHandler", "items listed", map[string]any{
		"owner_id": ownerID,
		"count":    len(resp),
	})
}

// SearchItemsHandler handles GET /items/search?text=&from=&size=
func (h *ItemHandler) SearchItemsHandler(c *gin.Context) {
	text := c.Query("text")
	from, size, err := helpers.ParsePaging(c)
	if err != nil {
		helpers.RespondError(c, "SearchItemsHandler", err)
		return
	}

	items, err := h.service.SearchItems(text, from, size)
	if err != nil {
		helpers.RespondError(c, "SearchItemsHandler", err)
		return
	}

	resp := make([]helpers.ItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, helpers.ToItemResponse(it))
	}
	c.JSON(http.StatusOK, resp)
}

// CreateCommentHandler handles POST /items/:item_id/comment
func (h *ItemHandler) CreateCommentHandler(c *gin.Context) {
	var req helpers.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCommentHandler", err)
		return
	}
	itemID := c.Param("item_id")
	authorID := helpers.CallerID(c)

	comment, err := h.service.CreateComment(authorID, itemID, req.Text)
	if err != nil {
		helpers.RespondError(c, "CreateCommentHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToCommentResponse(comment))
	helpers.LogSuccess("CreateCommentHandler", "comment created", map[string]any{
		"comment_id": comment.ID,
		"item_id":    itemID,
		"author_id":  authorID,
	})
}
