package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/apperr"
	"github.com/Ripeplantain/Twitter-Backend-Api/internal/shared/jwt"
)

type HandlerFunc func(http.ResponseWriter, *http.Request) error

type APIError struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Status int    `json:"status"`
}

// Response is the success envelope every endpoint returns.
type Response struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	Data    any    `json:"data,omitempty"`
}

func Wrap(fn HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			WriteJSON(w, APIError{Error: err.Error(), Status: statusOf(err)}, statusOf(err))
		}
	})
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindAlreadyExists, apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindInvalid:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func Decode[T any](r *http.Request) (T, error) {
	var t T
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		return t, apperr.Invalid("invalid request body")
	}
	return t, nil
}

func WriteJSON(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type ctxKey string

const accountKey ctxKey = "httpx.account_id"

// AuthMiddleware is the AuthProvider boundary: it extracts the principal's
// account id from the bearer token and nothing downstream re-validates it.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			WriteJSON(w, APIError{Error: "unauthorized", Reason: "missing bearer", Status: http.StatusUnauthorized}, http.StatusUnauthorized)
			return
		}
		uid, err := jwt.Parse(strings.TrimSpace(h[7:]))
		if err != nil {
			WriteJSON(w, APIError{Error: "unauthorized", Reason: "bad token", Status: http.StatusUnauthorized}, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), accountKey, uid)))
	})
}

func UserFromCtx(r *http.Request) (string, error) {
	uid, _ := r.Context().Value(accountKey).(string)
	if uid == "" {
		return "", apperr.Unauthorized("unauthorized")
	}
	return uid, nil
}

func QueryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
