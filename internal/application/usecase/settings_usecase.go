// internal/application/usecase/settings_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"

	settingsdom "storefront/internal/domain/settings"
)

// PasswordHasher hashes and verifies the console password.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash, plain string) bool
}

// SettingsUpdate is the settings form. Password is optional.
type SettingsUpdate struct {
	Profile       settingsdom.Profile           `json:"profile"`
	Notifications settingsdom.NotificationPrefs `json:"notifications"`
	System        settingsdom.System            `json:"system"`
	Password      settingsdom.PasswordChange    `json:"password"`
}

type SettingsUsecase struct {
	repo   settingsdom.Repository
	hasher PasswordHasher
	clock  Clock
}

func NewSettingsUsecase(repo settingsdom.Repository, hasher PasswordHasher) *SettingsUsecase {
	return NewSettingsUsecaseWithClock(repo, hasher, systemClock{})
}

func NewSettingsUsecaseWithClock(repo settingsdom.Repository, hasher PasswordHasher, clock Clock) *SettingsUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &SettingsUsecase{repo: repo, hasher: hasher, clock: clock}
}

func (uc *SettingsUsecase) Get(ctx context.Context) (settingsdom.Settings, error) {
	return uc.repo.Get(ctx)
}

// Update replaces the three sections and, if requested, changes the password.
// Nothing is saved when any part is invalid.
func (uc *SettingsUsecase) Update(ctx context.Context, in SettingsUpdate) (settingsdom.Settings, error) {
	cur, err := uc.repo.Get(ctx)
	if err != nil {
		return settingsdom.Settings{}, err
	}

	next := cur
	next.Profile = in.Profile
	next.Notifications = in.Notifications
	next.System = in.System
	next.Normalize()
	if err := next.Validate(); err != nil {
		return settingsdom.Settings{}, err
	}

	now := uc.clock.Now().UTC()
	if in.Password.Requested() {
		if err := in.Password.Validate(); err != nil {
			return settingsdom.Settings{}, err
		}
		if uc.hasher == nil {
			return settingsdom.Settings{}, errors.New("settings_usecase: password hasher not configured")
		}
		if cur.PasswordHash != "" && !uc.hasher.Verify(cur.PasswordHash, in.Password.Current) {
			return settingsdom.Settings{}, settingsdom.ErrCurrentPasswordInvalid
		}
		h, err := uc.hasher.Hash(in.Password.New)
		if err != nil {
			return settingsdom.Settings{}, fmt.Errorf("settings_usecase: hash password: %w", err)
		}
		next.PasswordHash = h
		next.PasswordChangedAt = &now
	}

	next.UpdatedAt = now
	if err := uc.repo.Save(ctx, next); err != nil {
		return settingsdom.Settings{}, err
	}
	return next, nil
}
