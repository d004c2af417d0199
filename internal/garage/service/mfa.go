package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/qrx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

type MFAService struct {
	Store  store.Store
	Issuer string // shown in authenticator apps
	QR     QRRenderer
}

func (s *MFAService) owner(ctx context.Context, ownerID string) (domain.Owner, error) {
	o, err := s.Store.Owners().GetOwnerByID(ctx, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Owner{}, ErrOwnerNotFound
	}
	return o, err
}

// EnrollTOTP creates a new secret for the owner. TOTP is not enforced until
// VerifyTOTP confirms the owner can produce codes. Enrolling again before
// verification replaces the pending secret.
func (s *MFAService) EnrollTOTP(ctx context.Context, ownerID string) (domain.TOTPEnrollment, error) {
	o, err := s.owner(ctx, ownerID)
	if err != nil {
		return domain.TOTPEnrollment{}, err
	}
	if o.TOTPEnabled {
		return domain.TOTPEnrollment{}, ErrMFAAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.Issuer,
		AccountName: o.Email,
		Period:      30,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("generate TOTP key: %w", err)
	}

	img, err := s.QR.Render(key.URL())
	if err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("render TOTP QR: %w", err)
	}

	if err := s.Store.Owners().SetTOTPSecret(ctx, ownerID, key.Secret()); err != nil {
		return domain.TOTPEnrollment{}, fmt.Errorf("store TOTP secret: %w", err)
	}

	return domain.TOTPEnrollment{
		Secret:     key.Secret(),
		URL:        key.URL(),
		QRImageURL: qrx.DataURL(img),
	}, nil
}

// VerifyTOTP enables TOTP once the owner proves a working authenticator.
func (s *MFAService) VerifyTOTP(ctx context.Context, ownerID, code string) error {
	o, err := s.owner(ctx, ownerID)
	if err != nil {
		return err
	}
	if o.TOTPEnabled {
		return ErrMFAAlreadyEnabled
	}
	if o.TOTPSecret == "" {
		return ErrMFANotEnrolled
	}
	if !totp.Validate(code, o.TOTPSecret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Store.Owners().EnableTOTP(ctx, ownerID); err != nil {
		return fmt.Errorf("enable TOTP: %w", err)
	}
	slogx.FromContext(ctx).Info("TOTP enabled", "owner_id", ownerID)
	return nil
}

// DisableTOTP turns TOTP off after checking a current code.
func (s *MFAService) DisableTOTP(ctx context.Context, ownerID, code string) error {
	o, err := s.owner(ctx, ownerID)
	if err != nil {
		return err
	}
	if !o.TOTPEnabled {
		return ErrMFANotEnabled
	}
	if !totp.Validate(code, o.TOTPSecret) {
		return ErrInvalidTOTPCode
	}

	if err := s.Store.Owners().DisableTOTP(ctx, ownerID); err != nil {
		return fmt.Errorf("disable TOTP: %w", err)
	}
	slogx.FromContext(ctx).Info("TOTP disabled", "owner_id", ownerID)
	return nil
}
