package gateway

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"gearshare/services/sharing/helpers"
	"gearshare/utils"

	"github.com/gin-gonic/gin"
)

// Client forwards validated requests to the backend server and relays the
// response verbatim.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a forwarding client for the given backend base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// Proxy sends the request to the backend, keeping method, path, query,
// identity header and body, and writes the backend's status and body back
// to the caller. A nil body forwards without a payload.
func (g *Client) Proxy(c *gin.Context, path string, body any) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Internal error", "failed to encode request")
			return
		}
		reader = bytes.NewReader(payload)
	}

	url := g.baseURL + path
	if raw := c.Request.URL.RawQuery; raw != "" {
		url += "?" + raw
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), c.Request.Method, url, reader)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Internal error", "failed to build request")
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if id := helpers.CallerID(c); id != "" {
		req.Header.Set(helpers.IdentityHeader, id)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Internal error", "sharing server unreachable")
		utils.Error("gateway: forward failed", map[string]any{
			"method": c.Request.Method,
			"path":   path,
			"error":  err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Internal error", "failed to read server response")
		return
	}
	c.Data(resp.StatusCode, "application/json", data)
}
