package handler

import (
	"net/http"

	model "gearshare/internal/models"
	"gearshare/internal/requestservice"
	"gearshare/services/sharing/helpers"

	"github.com/gin-gonic/gin"
)

type RequestServiceInterface interface {
	CreateRequest(requesterID, description string) (model.ItemRequest, error)
	GetOwnRequests(requesterID string) ([]requestservice.RequestWithAnswers, error)
	GetAllRequests(callerID string, from, size int) ([]requestservice.RequestWithAnswers, error)
	GetRequestByID(callerID, requestID string) (requestservice.RequestWithAnswers, error)
}

type RequestHandler struct {
	service RequestServiceInterface
}

func NewRequestHandler(service RequestServiceInterface) *RequestHandler {
	return &RequestHandler{service: service}
}

// CreateRequestHandler handles POST /requests
func (h *RequestHandler) CreateRequestHandler(c *gin.Context) {
	var req helpers.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateRequestHandler", err)
		return
	}
	requesterID := helpers.CallerID(c)

	request, err := h.service.CreateRequest(requesterID, req.Description)
	if err != nil {
		helpers.RespondError(c, "CreateRequestHandler", err)
		return
	}

	c.JSON(http.StatusOK, helpers.ToRequestResponse(request))
	helpers.LogSuccess("CreateRequestHandler", "request created", map[string]any{
		"request_id":   request.ID,
		"requester_id": requesterID,
	})
}

// ListOwnRequestsHandler handles GET /requests
func (h *RequestHandler) ListOwnRequestsHandler(c *gin.Context) {
	requesterID := helpers.CallerID(c)

	requests, err := h.service.GetOwnRequests(requesterID)
	if err != nil {
		helpers.RespondError(c, "ListOwnRequestsHandler", err)
		return
	}
	c.JSON(http.StatusOK, toRequestList(requests))
}

// ListAllRequestsHandler handles GET /requests/all?from=&size=
func (h *RequestHandler) ListAllRequestsHandler(c *gin.Context) {
	callerID := helpers.CallerID(c)
	from, size, err := helpers.ParsePaging(c)
	if err != nil {
		helpers.RespondError(c, "ListAllRequestsHandler", err)
		return
	}

	requests, err := h.service.GetAllRequests(callerID, from, size)
	if err != nil {
		helpers.RespondError(c, "ListAllRequestsHandler", err)
		return
	}
	c.JSON(http.StatusOK, toRequestList(requests))
}

// GetRequestHandler handles GET /requests/:request_id
func (h *RequestHandler) GetRequestHandler(c *gin.Context) {
	callerID := helpers.CallerID(c)

	request, err := h.service.GetRequestByID(callerID, c.Param("request_id"))
	if err != nil {
		helpers.RespondError(c, "GetRequestHandler", err)
		return
	}
	c.JSON(http.StatusOK, helpers.ToRequestWithAnswersResponse(request))
}

func toRequestList(requests []requestservice.RequestWithAnswers) []helpers.RequestWithAnswersResponse {
	resp := make([]helpers.RequestWithAnswersResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, helpers.ToRequestWithAnswersResponse(r))
	}
	return resp
}
