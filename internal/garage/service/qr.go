package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/qraccess"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/qrx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
)

// SubmitPath is appended to the workshop base URL.
const SubmitPath = "workshop-submit"

// QRRenderer turns text into a PNG. qrx.Renderer implements it.
type QRRenderer interface {
	Render(content string) ([]byte, error)
}

// QRService issues workshop access codes to vehicle owners.
type QRService struct {
	Store    store.Store
	Tokens   *qraccess.Manager
	Renderer QRRenderer

	// BaseURL is the public prefix of the submission endpoint, for example
	// https://garage.example/v1/maintenance.
	BaseURL string
}

// SubmissionURL builds <base>/workshop-submit?token=<code>.
func SubmissionURL(base, code string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	u = u.JoinPath(SubmitPath)
	u.RawQuery = url.Values{"token": {code}}.Encode()
	return u.String(), nil
}

// IssueMaintenanceQR checks that ownerID holds vehicleID, then issues a new
// code for it and renders the submission link as a QR image. Nothing is
// issued when the ownership check fails.
func (s *QRService) IssueMaintenanceQR(ctx context.Context, ownerID, vehicleID string) (domain.QRGrant, error) {
	log := slogx.FromContext(ctx)

	v, err := s.Store.Vehicles().GetVehicleOwnedBy(ctx, vehicleID, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.QRGrant{}, ErrOwnershipDenied
	}
	if err != nil {
		return domain.QRGrant{}, fmt.Errorf("ownership lookup: %w", err)
	}

	tok, err := s.Tokens.Issue(v.ID)
	if err != nil {
		log.Error("access code issuance failed", "vehicle_id", v.ID, "error", err)
		return domain.QRGrant{}, fmt.Errorf("issue access code: %w", err)
	}

	link, err := SubmissionURL(s.BaseURL, tok.Code)
	if err != nil {
		s.Tokens.Store().Delete(tok.Code)
		return domain.QRGrant{}, err
	}

	img, err := s.Renderer.Render(link)
	if err != nil {
		s.Tokens.Store().Delete(tok.Code)
		return domain.QRGrant{}, fmt.Errorf("render QR: %w", err)
	}

	log.Info("workshop access code issued",
		"vehicle_id", v.ID,
		"code", qraccess.Redact(tok.Code),
		"expires_at", tok.ExpiresAt,
	)

	return domain.QRGrant{
		Code:          tok.Code,
		SubmissionURL: link,
		Image:         img,
		ImageDataURL:  qrx.DataURL(img),
		ExpiresAt:     tok.ExpiresAt,
		TTL:           s.Tokens.TTL(),
	}, nil
}
