package attachments_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/stretchr/testify/require"
)

var pdf = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n%%EOF\n")

func upload(b []byte) domain.Upload {
	return domain.Upload{Filename: "f", Size: int64(len(b)), Content: bytes.NewReader(b)}
}

func TestSaveOpenRemove(t *testing.T) {
	s, err := attachments.New(t.TempDir(), 1024)
	require.NoError(t, err)

	rel, err := s.Save(attachments.KindInvoice, "veh-1", upload(pdf))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rel, "invoices/veh_1-"), rel)
	require.True(t, strings.HasSuffix(rel, ".pdf"), rel)

	f, ctype, err := s.Open(rel)
	require.NoError(t, err)
	got, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, pdf, got)
	require.Equal(t, "application/pdf", ctype)

	require.NoError(t, s.Remove(rel))
	require.NoError(t, s.Remove(rel), "idempotent")

	_, _, err = s.Open(rel)
	require.ErrorIs(t, err, attachments.ErrNotFound)
}

func TestSave_PNG(t *testing.T) {
	s, err := attachments.New(t.TempDir(), 0)
	require.NoError(t, err)
	require.EqualValues(t, attachments.DefaultMaxBytes, s.MaxBytes)

	png := append([]byte("\x89PNG\x0D\x0A\x1A\x0A"), make([]byte, 32)...)
	rel, err := s.Save(attachments.KindObligation, "v", upload(png))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rel, "obligations/"))
	require.Equal(t, ".png", filepath.Ext(rel))
}

func TestSave_Rejects(t *testing.T) {
	root := t.TempDir()
	s, err := attachments.New(root, 64)
	require.NoError(t, err)

	t.Run("text", func(t *testing.T) {
		_, err := s.Save(attachments.KindInvoice, "v", upload([]byte("just some notes")))
		require.ErrorIs(t, err, attachments.ErrUnsupported)
	})

	t.Run("declared too large", func(t *testing.T) {
		up := upload(pdf)
		up.Size = 65
		_, err := s.Save(attachments.KindInvoice, "v", up)
		require.ErrorIs(t, err, attachments.ErrTooLarge)
	})

	t.Run("actual too large", func(t *testing.T) {
		big := append(append([]byte{}, pdf...), make([]byte, 100)...)
		up := upload(big)
		up.Size = 0
		_, err := s.Save(attachments.KindInvoice, "v", up)
		require.ErrorIs(t, err, attachments.ErrTooLarge)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := s.Save(attachments.KindInvoice, "v", upload(nil))
		require.ErrorIs(t, err, attachments.ErrEmpty)
	})

	entries, err := os.ReadDir(filepath.Join(root, "invoices"))
	require.NoError(t, err)
	require.Empty(t, entries, "rejected uploads leave nothing behind")
}

func TestPathsStayInsideRoot(t *testing.T) {
	s, err := attachments.New(t.TempDir(), 0)
	require.NoError(t, err)

	for _, p := range []string{"../etc/passwd", "/etc/passwd", "invoices/../../x", ""} {
		_, _, err := s.Open(p)
		require.ErrorIs(t, err, attachments.ErrBadPath, p)
	}
	require.ErrorIs(t, s.Remove("../x"), attachments.ErrBadPath)
	require.NoError(t, s.Remove(""))
}
