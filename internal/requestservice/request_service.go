package requestservice

import (
	"fmt"
	"time"

	model "gearshare/internal/models"
	"gearshare/internal/repository"
	"gearshare/internal/sharingerrors"
	"gearshare/utils"
)

// RequestWithAnswers is a request view with the items offered for it.
type RequestWithAnswers struct {
	Request model.ItemRequest
	Answers []model.Item
}

// RequestService is the request board: wishes for items that do not exist
// yet, with answer aggregation on the read side.
type RequestService struct {
	repo repository.SharingDB
}

// NewRequestService creates a new RequestService instance
func NewRequestService(repo repository.SharingDB) *RequestService {
	return &RequestService{
		repo: repo,
	}
}

// CreateRequest records a new item request for an existing user.
func (s *RequestService) CreateRequest(requesterID, description string) (model.ItemRequest, error) {
	if description == "" {
		return model.ItemRequest{}, fmt.Errorf("service: %w - description is required", sharingerrors.ErrValidation)
	}
	if _, err := s.repo.GetUserByID(requesterID); err != nil {
		return model.ItemRequest{}, fmt.Errorf("service: requester lookup failed: %w", err)
	}

	request := model.ItemRequest{
		ID:          utils.GenerateID(),
		Description: description,
		RequesterID: requesterID,
		Created:     time.Now().UTC(),
	}
	saved, err := s.repo.SaveRequest(request)
	if err != nil {
		return model.ItemRequest{}, fmt.Errorf("service: failed to save request: %w", err)
	}
	return saved, nil
}

// GetOwnRequests returns the user's requests, newest first, each with its
// answers attached.
func (s *RequestService) GetOwnRequests(requesterID string) ([]RequestWithAnswers, error) {
	if _, err := s.repo.GetUserByID(requesterID); err != nil {
		return nil, fmt.Errorf("service: requester lookup failed: %w", err)
	}
	requests, err := s.repo.GetRequestsByRequester(requesterID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests for %s: %w", requesterID, err)
	}
	return s.withAnswers(requests)
}

// GetAllRequests returns other users' requests, newest first, paginated.
func (s *RequestService) GetAllRequests(callerID string, from, size int) ([]RequestWithAnswers, error) {
	if _, err := s.repo.GetUserByID(callerID); err != nil {
		return nil, fmt.Errorf("service: user lookup failed: %w", err)
	}
	requests, err := s.repo.GetRequestsFromOthers(callerID, from, size)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list requests: %w", err)
	}
	return s.withAnswers(requests)
}

// GetRequestByID returns one request with its answers; any existing user
// may read it.
func (s *RequestService) GetRequestByID(callerID, requestID string) (RequestWithAnswers, error) {
	if _, err := s.repo.GetUserByID(callerID); err != nil {
		return RequestWithAnswers{}, fmt.Errorf("service: user lookup failed: %w", err)
	}
	request, err := s.repo.GetRequestByID(requestID)
	if err != nil {
		return RequestWithAnswers{}, fmt.Errorf("service: request lookup failed: %w", err)
	}
	result, err := s.withAnswers([]model.ItemRequest{request})
	if err != nil {
		return RequestWithAnswers{}, err
	}
	return result[0], nil
}

// withAnswers joins items onto their requests in one storage round-trip.
func (s *RequestService) withAnswers(requests []model.ItemRequest) ([]RequestWithAnswers, error) {
	ids := make([]string, 0, len(requests))
	for _, req := range requests {
		ids = append(ids, req.ID)
	}
	items, err := s.repo.GetItemsByRequests(ids)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load answers: %w", err)
	}
	byRequest := make(map[string][]model.Item)
	for _, it := range items {
		if it.RequestID != nil {
			byRequest[*it.RequestID] = append(byRequest[*it.RequestID], it)
		}
	}

	result := make([]RequestWithAnswers, 0, len(requests))
	for _, req := range requests {
		answers := byRequest[req.ID]
		if answers == nil {
			answers = []model.Item{}
		}
		result = append(result, RequestWithAnswers{Request: req, Answers: answers})
	}
	return result, nil
}
