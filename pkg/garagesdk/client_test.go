package garagesdk

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAPIErrorIs(t *testing.T) {
	err := ErrVehicleNotFound.WithDescription("no such plate")
	require.ErrorIs(t, err, ErrVehicleNotFound)
	require.NotErrorIs(t, err, ErrPlateTaken)
	require.Equal(t, "vehicle_not_found: no such plate", err.Error())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	ErrPlateTaken.WriteError(rec)

	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, ErrorCodePlateTaken, body.Code)
}

func TestClientLogin(t *testing.T) {
	expires := time.Now().Add(time.Hour).UTC().Truncate(time.Second)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/auth/login":
			var req LoginRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				ErrInvalidRequest.WriteError(w)
				return
			}
			if req.TOTPCode == "" {
				ErrMFARequired.WriteError(w)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(LoginResponse{AccessToken: "tok", TokenType: "Bearer", ExpiresAt: expires})
		case "/v1/vehicles":
			if r.Header.Get("Authorization") != "Bearer tok" {
				ErrUnauthorized.WriteError(w)
				return
			}
			_ = json.NewEncoder(w).Encode([]VehicleResponse{{ID: "v1", Plate: "ABC123"}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	ctx := context.Background()

	_, err := c.Login(ctx, "a@example.com", "pw", "")
	require.ErrorIs(t, err, ErrMFARequired)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	s, err := c.Login(ctx, "a@example.com", "pw", "123456")
	require.NoError(t, err)
	require.Equal(t, "tok", s.AccessToken())
	require.False(t, s.Expired())

	vs, err := s.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Equal(t, "ABC123", vs[0].Plate)

	_, err = c.NewSession("bad", expires).ListVehicles(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.GetLiveness(ctx)
	require.ErrorIs(t, err, ErrServerError)
}
