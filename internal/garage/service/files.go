package service

import (
	"context"
	"os"

	"github.com/aussiebroadwan/garage/internal/garage/attachments"
	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

// Files stores uploaded attachments. *attachments.Storage implements it.
type Files interface {
	Save(kind attachments.Kind, vehicleID string, up domain.Upload) (string, error)
	Open(rel string) (*os.File, string, error)
	Remove(rel string) error
}

// removeFiles deletes stored files after their rows are gone. Failures only
// leave orphans behind, so they are logged and not returned.
func removeFiles(ctx context.Context, files Files, paths ...string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := files.Remove(p); err != nil {
			slogx.FromContext(ctx).Warn("failed to remove attachment", "path", p, "error", err)
		}
	}
}
