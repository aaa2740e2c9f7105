package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/wpsaas/wpcloud/internal/common"
	"github.com/wpsaas/wpcloud/internal/server/checkout"
	"github.com/wpsaas/wpcloud/internal/server/users"
)

// signatureHeader carries the hex HMAC of the webhook body.
const signatureHeader = "X-Webhook-Signature"

type ctxKey int

const userKey ctxKey = 0

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

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginResponse struct {
	User   userResponse  `json:"user"`
	Tokens tokenResponse `json:"tokens"`
}

type checkoutRequest struct {
	Domain string `json:"domain"`
	PlanID string `json:"planId"`
}

type presignResponse struct {
	Key string `json:"key,omitempty"`
	URL string `json:"url"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, common.ErrorAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired),
		errors.Is(err, common.ErrInvalidSignature):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// requireAuth validates the bearer token and stores the resolved user in the
// request context.
func (s *HTTPServer) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			writeError(w, common.ErrorUnauthorized)
			return
		}

		user, err := s.users.Authenticate(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), userKey, user)))
	}
}

func userFromContext(ctx context.Context) *users.User {
	u, _ := ctx.Value(userKey).(*users.User)
	return u
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}

	user, err := s.users.Register(r.Context(), req.Email, req.Name, []byte(req.Password))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Email: user.Email, Name: user.Name})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	user, tokens, err := s.users.Login(r.Context(), req.Email, []byte(req.Password))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		User:   userResponse{ID: user.ID, Email: user.Email, Name: user.Name},
		Tokens: tokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken},
	})
}

func (s *HTTPServer) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	tokens, err := s.users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken,
	})
}

func (s *HTTPServer) handleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	user := userFromContext(r.Context())

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	session, err := s.checkout.CreateSession(r.Context(), user.ID, user.Email, req.Domain, req.PlanID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (s *HTTPServer) handleBackupUploadURL(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "domain is required"})
		return
	}

	key, url, err := s.backups.GetPresignedPutUrl(r.Context(), domain)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{Key: key, URL: url})
}

func (s *HTTPServer) handleBackupDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "key is required"})
		return
	}

	url, err := s.backups.GetPresignedGetUrl(r.Context(), key)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, presignResponse{URL: url})
}

func (s *HTTPServer) handleWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable body"})
		return
	}

	if err := checkout.VerifySignature(payload, r.Header.Get(signatureHeader), s.webhookSecret); err != nil {
		writeError(w, err)
		return
	}

	var evt checkout.Event
	if err := json.Unmarshal(payload, &evt); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid event"})
		return
	}

	if err := s.checkout.HandleEvent(r.Context(), evt); err != nil {
		s.logger.Error(r.Context(), "Error handling webhook event", "type", evt.Type, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
