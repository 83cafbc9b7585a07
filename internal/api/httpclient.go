package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ebalashova/healthapp-cli/internal/common"
	"github.com/ebalashova/healthapp-cli/internal/logging"
	"github.com/ebalashova/healthapp-cli/internal/models"
)

// HTTPClient talks JSON over HTTP to the Health App backend. A successful
// Login stores the access token; subsequent requests carry it as a bearer
// Authorization header.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu          sync.RWMutex
	accessToken string
}

func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", baseURL)
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}, nil
}

func (c *HTTPClient) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *HTTPClient) SetAccessToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

// doRequest performs a single round trip: encodes body (if any), sends the
// request, maps failures to sentinel errors and decodes a 2xx response into
// out (if non-nil).
func (c *HTTPClient) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.AccessToken(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	}

	c.log.Debug(ctx, "api request", "method", method, "path", path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug(ctx, "api transport error", "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	c.log.Debug(ctx, "api response", "path", path, "request_id", requestID, "status", resp.StatusCode)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: %w", method, path, mapStatusError(resp.StatusCode, respBody))
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// mapStatusError turns an error response into a sentinel-wrapped error,
// preserving the backend's human-readable detail.
func mapStatusError(status int, body []byte) error {
	var sentinel error
	switch {
	case status == http.StatusUnauthorized:
		sentinel = ErrUnauthorized
	case status == http.StatusForbidden:
		sentinel = ErrForbidden
	case status == http.StatusNotFound:
		sentinel = ErrNotFound
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		sentinel = ErrValidation
	case status >= http.StatusInternalServerError:
		sentinel = ErrServer
	default:
		return fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, status, errorDetail(body))
	}
	return fmt.Errorf("%w: %s", sentinel, errorDetail(body))
}

// errorDetail extracts the backend's {"detail": ...} message. The detail is
// usually a string but validation errors carry structured payloads.
func errorDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var s string
		if json.Unmarshal(envelope.Detail, &s) == nil {
			return s
		}
		return string(envelope.Detail)
	}
	return strings.TrimSpace(string(body))
}

func (c *HTTPClient) Login(ctx context.Context, username, password string) (*models.Token, error) {
	var token models.Token
	creds := models.Credentials{Username: username, Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", &creds, &token); err != nil {
		return nil, err
	}
	c.SetAccessToken(token.AccessToken)
	return &token, nil
}

func (c *HTTPClient) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", req, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Ping checks server liveness. The backend has no dedicated health route, so
// any HTTP response (including 401 for a missing token) counts as reachable;
// only transport failures count as down.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func (c *HTTPClient) GetCurrentUser(ctx context.Context) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.doRequest(ctx, http.MethodGet, "/api/auth/me", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) UpdateUserProfile(ctx context.Context, userID int64, upd *models.ProfileUpdate) (*models.UserProfile, error) {
	var profile models.UserProfile
	path := "/api/users/" + strconv.FormatInt(userID, 10)
	if err := c.doRequest(ctx, http.MethodPatch, path, upd, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if err := c.doRequest(ctx, http.MethodGet, "/api/courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

func (c *HTTPClient) GetCourse(ctx context.Context, courseID int64) (*models.CourseDetail, error) {
	var course models.CourseDetail
	path := "/api/courses/" + strconv.FormatInt(courseID, 10)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

func (c *HTTPClient) ListModules(ctx context.Context) ([]models.Module, error) {
	var modules []models.Module
	if err := c.doRequest(ctx, http.MethodGet, "/api/modules", nil, &modules); err != nil {
		return nil, err
	}
	return modules, nil
}

func (c *HTTPClient) GetModule(ctx context.Context, moduleID int64) (*models.ModuleDetail, error) {
	var module models.ModuleDetail
	path := "/api/modules/" + strconv.FormatInt(moduleID, 10)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &module); err != nil {
		return nil, err
	}
	return &module, nil
}

func (c *HTTPClient) ListGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	if err := c.doRequest(ctx, http.MethodGet, "/api/groups", nil, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (c *HTTPClient) GetGroup(ctx context.Context, groupID int64) (*models.GroupDetail, error) {
	var group models.GroupDetail
	path := "/api/groups/" + strconv.FormatInt(groupID, 10)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
