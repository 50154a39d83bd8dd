// Package client is a typed client for the records API. It keeps the session
// token in memory and, when a token file is configured, on disk between runs.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// ErrNotLoggedIn is returned before a request that needs a token is sent.
var ErrNotLoggedIn = errors.New("not logged in")

// APIError carries the server's error string verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

type Options struct {
	BaseURL   string
	TokenFile string
	Timeout   time.Duration
}

type Client struct {
	http      *resty.Client
	token     string
	tokenFile string
}

// New never retries: every mutation is sent exactly once.
func New(opts Options) (*Client, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
			SetTimeout(opts.Timeout).
			SetRetryCount(0).
			SetHeader("Accept", "application/json"),
		tokenFile: opts.TokenFile,
	}
	if opts.TokenFile != "" {
		data, err := os.ReadFile(opts.TokenFile)
		switch {
		case err == nil:
			c.token = strings.TrimSpace(string(data))
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("read token file: %w", err)
		}
	}
	return c, nil
}

func (c *Client) Token() string {
	return c.token
}

func (c *Client) LoggedIn() bool {
	return c.token != ""
}

func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	var out LoginResult
	body := map[string]string{"username": username, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out, false); err != nil {
		return nil, err
	}
	c.token = out.Token
	if c.tokenFile != "" {
		if err := os.WriteFile(c.tokenFile, []byte(out.Token), 0o600); err != nil {
			return &out, fmt.Errorf("save token: %w", err)
		}
	}
	return &out, nil
}

// Logout asks the server to revoke the token, then forgets it locally even if
// the server call failed.
func (c *Client) Logout(ctx context.Context) error {
	var serverErr error
	if c.token != "" {
		serverErr = c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil, true)
	}
	c.token = ""
	if c.tokenFile != "" {
		if err := os.Remove(c.tokenFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove token file: %w", err)
		}
	}
	return serverErr
}

func (c *Client) Me(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Permissions fetches the role to permission table used by Navigation.
func (c *Client) Permissions(ctx context.Context) (map[string][]string, error) {
	var out struct {
		Roles map[string][]string `json:"roles"`
	}
	if err := c.get(ctx, "/permissions", nil, &out); err != nil {
		return nil, err
	}
	return out.Roles, nil
}

func (c *Client) Stats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.get(ctx, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Cases(ctx context.Context, search, status string) ([]Case, error) {
	q := url.Values{}
	if search != "" {
		q.Set("search", search)
	}
	if status != "" {
		q.Set("status", status)
	}
	var out []Case
	if err := c.get(ctx, "/cases", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Case(ctx context.Context, id int64) (*Case, error) {
	var out Case
	if err := c.get(ctx, fmt.Sprintf("/cases/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActiveCases(ctx context.Context) ([]ActiveCase, error) {
	var out []ActiveCase
	if err := c.get(ctx, "/cases/active", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateCase(ctx context.Context, id int64, upd CaseUpdate) (string, error) {
	body := map[string]interface{}{}
	if upd.Status != "" {
		body["status"] = upd.Status
	}
	switch {
	case upd.ClearDescription:
		body["description"] = nil
	case upd.Description != nil:
		body["description"] = *upd.Description
	}
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/cases/%d", id), body)
}

func (c *Client) CrimeCategories(ctx context.Context) ([]Category, error) {
	var out []Category
	if err := c.get(ctx, "/crime-categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Criminals(ctx context.Context) ([]Criminal, error) {
	var out []Criminal
	if err := c.get(ctx, "/criminals", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCriminal(ctx context.Context, req CriminalRequest) (int64, error) {
	var out struct {
		CriminalID int64 `json:"criminal_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/criminals", nil, req, &out, true); err != nil {
		return 0, err
	}
	return out.CriminalID, nil
}

func (c *Client) UpdateCriminalWanted(ctx context.Context, id int64, wanted bool, reason string) (string, error) {
	body := map[string]interface{}{"is_wanted": wanted, "wanted_reason": reason}
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/criminals/%d", id), body)
}

func (c *Client) Investigations(ctx context.Context) ([]Investigation, error) {
	var out []Investigation
	if err := c.get(ctx, "/investigations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateInvestigation(ctx context.Context, req InvestigationRequest) (int64, error) {
	var out struct {
		InvestigationID int64 `json:"investigation_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/investigations", nil, req, &out, true); err != nil {
		return 0, err
	}
	return out.InvestigationID, nil
}

func (c *Client) UpdateInvestigation(ctx context.Context, id int64, upd InvestigationUpdate) (string, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/investigations/%d", id), upd)
}

func (c *Client) Staff(ctx context.Context) ([]Staff, error) {
	var out []Staff
	if err := c.get(ctx, "/staff", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateStaff(ctx context.Context, req StaffRequest) (int64, error) {
	var out struct {
		StaffID int64 `json:"staff_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/staff", nil, req, &out, true); err != nil {
		return 0, err
	}
	return out.StaffID, nil
}

func (c *Client) Users(ctx context.Context) ([]User, error) {
	var out []User
	if err := c.get(ctx, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, req UserRequest) (int64, error) {
	var out struct {
		UserID int64 `json:"user_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/users", nil, req, &out, true); err != nil {
		return 0, err
	}
	return out.UserID, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, upd UserUpdate) (string, error) {
	return c.send(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), upd)
}

func (c *Client) DeactivateUser(ctx context.Context, id int64) (string, error) {
	return c.send(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
}

func (c *Client) Roles(ctx context.Context) ([]Role, error) {
	var out []Role
	if err := c.get(ctx, "/roles", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AuditLogs returns the most recent entries, newest first.
func (c *Client) AuditLogs(ctx context.Context) ([]AuditLog, error) {
	var out []AuditLog
	if err := c.get(ctx, "/audit-logs", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterFIR returns the id of the case created alongside the FIR.
func (c *Client) RegisterFIR(ctx context.Context, req FIRRequest) (int64, error) {
	var out struct {
		CaseID int64 `json:"case_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/fir", nil, req, &out, true); err != nil {
		return 0, err
	}
	return out.CaseID, nil
}

// ExportCases streams the case workbook into w.
func (c *Client) ExportCases(ctx context.Context, search, status string, w io.Writer) (int64, error) {
	if c.token == "" {
		return 0, ErrNotLoggedIn
	}
	req := c.http.R().SetContext(ctx).SetAuthToken(c.token).SetDoNotParseResponse(true)
	if search != "" {
		req.SetQueryParam("search", search)
	}
	if status != "" {
		req.SetQueryParam("status", status)
	}
	resp, err := req.Get("/reports/cases")
	if err != nil {
		return 0, fmt.Errorf("request failed: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()
	if resp.StatusCode() >= http.StatusBadRequest {
		data, _ := io.ReadAll(body)
		return 0, decodeAPIError(resp.StatusCode(), data)
	}
	return io.Copy(w, body)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

// send issues an authenticated mutation and returns the server's message.
func (c *Client) send(ctx context.Context, method, path string, body interface{}) (string, error) {
	var out messageBody
	if err := c.do(ctx, method, path, nil, body, &out, true); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, auth bool) error {
	req := c.http.R().SetContext(ctx)
	if auth {
		if c.token == "" {
			return ErrNotLoggedIn
		}
		req.SetAuthToken(c.token)
	}
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return decodeAPIError(resp.StatusCode(), resp.Body())
	}
	return nil
}
