package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/garage/internal/garage/domain"
	"github.com/aussiebroadwan/garage/internal/garage/store"
	"github.com/aussiebroadwan/garage/pkg/cryptox"
	"github.com/aussiebroadwan/garage/pkg/idx"
	"github.com/aussiebroadwan/garage/pkg/jwtx"
	"github.com/aussiebroadwan/garage/pkg/slogx"
	"github.com/pquerna/otp/totp"
)

const minPasswordLength = 8

type RegisterOwner struct {
	Name       string
	NationalID string
	Email      string
	Phone      string
	Password   string
}

// UpdateOwner carries profile changes. Empty fields are left unchanged.
type UpdateOwner struct {
	Name       string
	NationalID string
	Email      string
	Phone      string
	Password   string
}

type OwnerService struct {
	Store     store.Store
	Files     Files
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: malformed email", ErrInvalidOwner)
	}
	return nil
}

func validatePassword(pw string) error {
	if len(pw) < minPasswordLength {
		return fmt.Errorf("%w: password must have at least %d characters", ErrInvalidOwner, minPasswordLength)
	}
	return nil
}

// Register creates an owner account.
func (s *OwnerService) Register(ctx context.Context, in RegisterOwner) (domain.Owner, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.NationalID = strings.TrimSpace(in.NationalID)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.NationalID == "" {
		return domain.Owner{}, fmt.Errorf("%w: name and national ID are required", ErrInvalidOwner)
	}
	if err := validateEmail(in.Email); err != nil {
		return domain.Owner{}, err
	}
	if err := validatePassword(in.Password); err != nil {
		return domain.Owner{}, err
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return domain.Owner{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	owner := domain.Owner{
		ID:           idx.New().String(),
		Name:         in.Name,
		NationalID:   in.NationalID,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := checkOwnerUnique(ctx, tx, owner); err != nil {
			return err
		}
		return tx.Owners().CreateOwner(ctx, owner)
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.Owner{}, ErrEmailTaken
	}
	if err != nil {
		return domain.Owner{}, err
	}

	slogx.FromContext(ctx).Info("owner registered", "owner_id", owner.ID)
	return owner, nil
}

// checkOwnerUnique reports which unique field clashes with another owner.
func checkOwnerUnique(ctx context.Context, tx store.Tx, o domain.Owner) error {
	if other, err := tx.Owners().GetOwnerByNationalID(ctx, o.NationalID); err == nil && other.ID != o.ID {
		return ErrNationalIDTaken
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	if other, err := tx.Owners().GetOwnerByEmail(ctx, o.Email); err == nil && other.ID != o.ID {
		return ErrEmailTaken
	} else if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

// Login checks credentials and, when TOTP is enabled, the one-time code,
// then mints an access token.
func (s *OwnerService) Login(ctx context.Context, email, password, totpCode string) (domain.Owner, domain.Session, error) {
	log := slogx.FromContext(ctx)

	owner, err := s.Store.Owners().GetOwnerByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return domain.Owner{}, domain.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.Owner{}, domain.Session{}, err
	}

	if err := cryptox.VerifyPassword(password, owner.PasswordHash); err != nil {
		log.Warn("login failed", "owner_id", owner.ID, "error", err)
		return domain.Owner{}, domain.Session{}, ErrInvalidCredentials
	}

	amr := []string{jwtx.AMRPassword}
	if owner.TOTPEnabled {
		if totpCode == "" {
			return domain.Owner{}, domain.Session{}, ErrMFARequired
		}
		if !totp.Validate(totpCode, owner.TOTPSecret) {
			log.Warn("login TOTP rejected", "owner_id", owner.ID)
			return domain.Owner{}, domain.Session{}, ErrInvalidTOTPCode
		}
		amr = append(amr, jwtx.AMROTP)
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewOwnerClaims(owner.ID, owner.Email, s.Issuer, amr, ttl, time.Now().UTC())
	tok, err := s.Signer.Sign(claims)
	if err != nil {
		return domain.Owner{}, domain.Session{}, fmt.Errorf("sign access token: %w", err)
	}

	log.Info("owner logged in", "owner_id", owner.ID, "amr", amr)
	return owner, domain.Session{
		AccessToken: tok,
		TokenType:   "Bearer",
		ExpiresAt:   claims.ExpiresAt.Time,
	}, nil
}

func (s *OwnerService) Get(ctx context.Context, ownerID string) (domain.Owner, error) {
	o, err := s.Store.Owners().GetOwnerByID(ctx, ownerID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Owner{}, ErrOwnerNotFound
	}
	return o, err
}

// Update applies profile changes, re-checking uniqueness and re-hashing the
// password when one is given.
func (s *OwnerService) Update(ctx context.Context, ownerID string, in UpdateOwner) (domain.Owner, error) {
	var updated domain.Owner
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		o, err := tx.Owners().GetOwnerByID(ctx, ownerID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrOwnerNotFound
		}
		if err != nil {
			return err
		}

		if v := strings.TrimSpace(in.Name); v != "" {
			o.Name = v
		}
		if v := strings.TrimSpace(in.NationalID); v != "" {
			o.NationalID = v
		}
		if v := normalizeEmail(in.Email); v != "" {
			if err := validateEmail(v); err != nil {
				return err
			}
			o.Email = v
		}
		if v := strings.TrimSpace(in.Phone); v != "" {
			o.Phone = v
		}
		if in.Password != "" {
			if err := validatePassword(in.Password); err != nil {
				return err
			}
			hash, err := cryptox.HashPassword(in.Password)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			o.PasswordHash = hash
		}

		if err := checkOwnerUnique(ctx, tx, o); err != nil {
			return err
		}
		if err := tx.Owners().UpdateOwner(ctx, o); err != nil {
			return err
		}
		updated = o
		return nil
	})
	if err != nil {
		return domain.Owner{}, err
	}
	return updated, nil
}

// Delete removes the owner, their vehicles and every stored attachment.
func (s *OwnerService) Delete(ctx context.Context, ownerID string) error {
	var paths []string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		records, err := tx.Maintenance().ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		for _, r := range records {
			paths = append(paths, r.InvoicePath)
		}

		obligations, err := tx.Obligations().ListByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		for _, o := range obligations {
			paths = append(paths, o.DocumentPath)
		}

		err = tx.Owners().DeleteOwner(ctx, ownerID)
		if errors.Is(err, store.ErrNotFound) {
			return ErrOwnerNotFound
		}
		return err
	})
	if err != nil {
		return err
	}

	removeFiles(ctx, s.Files, paths...)
	slogx.FromContext(ctx).Info("owner deleted", "owner_id", ownerID, "files_removed", len(paths))
	return nil
}
