package garage_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/app"
	"github.com/aussiebroadwan/garage/pkg/garagesdk"
	"github.com/stretchr/testify/require"
)

/*
 * Helpers for the garage end-to-end tests. Each test gets a fully wired
 * application on a fresh database behind a real listener and talks to it
 * through the SDK.
 */

const ownerPassword = "correct horse battery"

// startGarage boots the application on a loopback listener.
func startGarage(t *testing.T) (*garagesdk.Client, string) {
	t.Helper()

	srv := httptest.NewUnstartedServer(nil)
	baseURL := "http://" + srv.Listener.Addr().String()

	dir := t.TempDir()
	t.Setenv("JWT_SECRET", "")
	cfg := app.LoadConfig()
	cfg.LogLevel = "error"
	cfg.DatabaseFile = filepath.Join(dir, "garage.db")
	cfg.PepperFile = filepath.Join(dir, "pepper")
	cfg.UploadsDir = filepath.Join(dir, "uploads")
	cfg.WorkshopBaseURL = baseURL + "/v1/maintenance"

	a, err := app.New(cfg)
	require.NoError(t, err)

	srv.Config.Handler = a.Handler()
	srv.Start()
	t.Cleanup(func() {
		srv.Close()
		_ = a.Close()
	})

	client := garagesdk.NewClient(baseURL)
	client.HTTPClient = srv.Client()
	return client, baseURL
}

// signUp registers an owner and logs them in.
func signUp(t *testing.T, c *garagesdk.Client, email string) *garagesdk.Session {
	t.Helper()

	_, err := c.Register(t.Context(), garagesdk.RegisterRequest{
		Name:       "Owner " + email,
		NationalID: "NID-" + email,
		Email:      email,
		Password:   ownerPassword,
	})
	require.NoError(t, err)

	sess, err := c.Login(t.Context(), email, ownerPassword, "")
	require.NoError(t, err)
	require.False(t, sess.Expired())
	return sess
}

// submitWorkshopForm posts a maintenance form to a submission link.
func submitWorkshopForm(t *testing.T, c *http.Client, link string, fields map[string]string) *http.Response {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(garagesdk.FieldInvoice, "invoice.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4\n%%EOF\n"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, err := http.NewRequestWithContext(t.Context(), http.MethodPost, link, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func tomorrow() string {
	return time.Now().UTC().Add(24 * time.Hour).Format(garagesdk.DateLayout)
}
