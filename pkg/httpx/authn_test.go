package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/pkg/httpx"
	"github.com/aussiebroadwan/garage/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestAuthn(t *testing.T) {
	hs, err := jwtx.NewHS256([]byte(strings.Repeat("s", 32)), "garage")
	require.NoError(t, err)

	var seen string
	h := httpx.Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = httpx.OwnerID(r.Context())
		_, ok := httpx.ClaimsFrom(r.Context())
		require.True(t, ok)
		w.WriteHeader(http.StatusNoContent)
	}), httpx.Authn(hs))

	t.Run("valid token", func(t *testing.T) {
		tok, err := hs.Sign(jwtx.NewOwnerClaims("owner-1", "", "garage", nil, time.Hour, time.Now()))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "owner-1", seen)
	})

	for name, header := range map[string]string{
		"missing":      "",
		"wrong scheme": "Basic abc",
		"empty token":  "Bearer ",
		"garbage":      "Bearer abc.def.ghi",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
			require.Contains(t, rec.Header().Get("WWW-Authenticate"), "invalid_token")

			var body httpx.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.Equal(t, "unauthorized", body.Error)
		})
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := httpx.Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mw("a"), mw("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"a", "b", "handler"}, order)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Plate string `json:"plate"`
	}

	decode := func(body string) (payload, error) {
		var p payload
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		err := httpx.DecodeJSON(httptest.NewRecorder(), req, &p)
		return p, err
	}

	p, err := decode(`{"plate":"ABC123"}`)
	require.NoError(t, err)
	require.Equal(t, "ABC123", p.Plate)

	_, err = decode(``)
	require.Error(t, err)

	_, err = decode(`{"plate":"A","extra":1}`)
	require.Error(t, err)

	_, err = decode(`{"plate":"A"}{"plate":"B"}`)
	require.Error(t, err)
}
