package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type HTTPClient struct {
	baseURL      string
	http         *http.Client
	accessToken  string
	refreshToken string
}

func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type loginResponse struct {
	User   UserInfo      `json:"user"`
	Tokens tokenResponse `json:"tokens"`
}

type checkoutRequest struct {
	Domain string `json:"domain"`
	PlanID string `json:"planId"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	err := c.doOnce(ctx, method, path, body, out, authed)
	if err == nil || !authed || c.refreshToken == "" {
		return err
	}
	if !errors.Is(err, ErrUnauthorized) {
		return err
	}

	// Access token may have expired mid-session. Refresh once and retry.
	var tokens tokenResponse
	if rerr := c.doOnce(ctx, http.MethodPost, "/api/refresh",
		refreshRequest{RefreshToken: c.refreshToken}, &tokens, false); rerr != nil {
		return err
	}
	c.accessToken = tokens.AccessToken
	c.refreshToken = tokens.RefreshToken

	return c.doOnce(ctx, method, path, body, out, authed)
}

func (c *HTTPClient) doOnce(ctx context.Context, method, path string, body, out any, authed bool) error {
	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return ErrUnavailable
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode >= 400 {
		var er errorResponse
		if jerr := json.NewDecoder(resp.Body).Decode(&er); jerr == nil && er.Error != "" {
			return fmt.Errorf("server error: %s", er.Error)
		}
		return fmt.Errorf("server error: %s", resp.Status)
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, email, name string, password []byte) (*UserInfo, error) {
	var user UserInfo
	err := c.do(ctx, http.MethodPost, "/api/register",
		registerRequest{Email: email, Name: name, Password: string(password)}, &user, false)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*UserInfo, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "/api/login",
		loginRequest{Email: email, Password: string(password)}, &resp, false)
	if err != nil {
		return nil, err
	}

	c.accessToken = resp.Tokens.AccessToken
	c.refreshToken = resp.Tokens.RefreshToken
	return &resp.User, nil
}

// Logout drops the in-memory token pair.
func (c *HTTPClient) Logout() {
	c.accessToken = ""
	c.refreshToken = ""
}

func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, domain, planID string) (*CheckoutSession, error) {
	var session CheckoutSession
	err := c.do(ctx, http.MethodPost, "/api/checkout/session",
		checkoutRequest{Domain: domain, PlanID: planID}, &session, true)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *HTTPClient) BackupUploadURL(ctx context.Context, domain string) (*PresignedURL, error) {
	var p PresignedURL
	err := c.do(ctx, http.MethodGet, "/api/backups/upload-url?domain="+url.QueryEscape(domain), nil, &p, true)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) BackupDownloadURL(ctx context.Context, key string) (*PresignedURL, error) {
	var p PresignedURL
	err := c.do(ctx, http.MethodGet, "/api/backups/download-url?key="+url.QueryEscape(key), nil, &p, true)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, false)
}
