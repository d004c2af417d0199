package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/store/drivers/sqlite"
	"github.com/aussiebroadwan/garage/pkg/cryptox"
	"github.com/aussiebroadwan/garage/pkg/jwtx"
	"github.com/aussiebroadwan/garage/pkg/qrx"
	"github.com/stretchr/testify/require"
)

const testIssuer = "https://garage.test"

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "garage-service")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// fixture wires every service against one in-memory database.
type fixture struct {
	store  *sqlite.Store
	files  *attachments.Storage
	clock  *testClock
	tokens *qraccess.Manager
	signer *jwtx.HS256

	owners      *OwnerService
	mfa         *MFAService
	vehicles    *VehicleService
	maintenance *MaintenanceService
	obligations *ObligationService
	qr          *QRService
	workshop    *WorkshopService
	reports     *ReportService
	reminders   *ReminderService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	files, err := attachments.New(t.TempDir(), 1<<20)
	require.NoError(t, err)

	clock := &testClock{now: time.Now().UTC()}
	tokens, err := qraccess.NewManager(qraccess.Config{
		TTL: qraccess.DefaultTTL,
		Now: clock.Now,
	})
	require.NoError(t, err)

	signer, err := jwtx.NewHS256(bytes.Repeat([]byte("k"), jwtx.MinSecretLength), testIssuer)
	require.NoError(t, err)

	renderer := qrx.Renderer{Size: qrx.MinSize}
	maint := &MaintenanceService{Store: st, Files: files}

	return &fixture{
		store:  st,
		files:  files,
		clock:  clock,
		tokens: tokens,
		signer: signer,

		owners:      &OwnerService{Store: st, Files: files, Signer: signer, Issuer: testIssuer, AccessTTL: time.Hour},
		mfa:         &MFAService{Store: st, Issuer: "Garage", QR: renderer},
		vehicles:    &VehicleService{Store: st, Files: files},
		maintenance: maint,
		obligations: &ObligationService{Store: st, Files: files},
		qr:          &QRService{Store: st, Tokens: tokens, Renderer: renderer, BaseURL: "https://garage.test/v1/maintenance"},
		workshop:    &WorkshopService{Store: st, Tokens: tokens, Maintenance: maint},
		reports:     &ReportService{Store: st},
		reminders:   &ReminderService{Store: st},
	}
}

func (f *fixture) owner(t *testing.T, email string) domain.Owner {
	t.Helper()
	o, err := f.owners.Register(context.Background(), RegisterOwner{
		Name:       "Owner " + email,
		NationalID: "NID-" + email,
		Email:      email,
		Password:   "correct horse",
	})
	require.NoError(t, err)
	return o
}

func (f *fixture) vehicle(t *testing.T, ownerID, plate string) domain.Vehicle {
	t.Helper()
	v, err := f.vehicles.Register(context.Background(), ownerID, VehicleInput{
		Plate: plate,
		Make:  "Toyota",
		Model: "Corolla",
		Year:  2018,
		Color: "white",
	})
	require.NoError(t, err)
	return v
}

func pdfUpload() *domain.Upload {
	body := []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF\n")
	return &domain.Upload{Filename: "invoice.pdf", Size: int64(len(body)), Content: bytes.NewReader(body)}
}

func ptr[T any](v T) *T { return &v }
