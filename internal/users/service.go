// Package users implements the account core: registration, activation,
// credential verification, and password reset over a users table.
//
// Each user moves through the states unregistered -> registered(inactive) ->
// active; there is no transition back. Business outcomes are reported as
// Result values with stable messages, storage failures as plain errors.
package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/accountkeeper/internal/common"
)

// nowFn is a seam for tests that need a fixed clock.
var nowFn = time.Now

// Service orchestrates account operations by composing the validators, the
// password hasher, and a Repository. It adds no locking of its own: a race
// between two concurrent Register calls for one email is resolved by the
// storage engine's unique constraint, and the loser sees the duplicate-email
// result.
type Service struct {
	repo   Repository
	hasher PasswordHasher
}

func NewService(repo Repository, hasher PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// Register creates a new inactive account. Checks run in a fixed order that
// callers observe through the returned message: email format, then password
// complexity, then uniqueness.
func (s *Service) Register(ctx context.Context, email, password string) (Result, error) {
	if !IsValidEmail(email) {
		return failure(CodeInvalidEmail), nil
	}
	if !IsValidPassword(password) {
		return failure(CodeWeakPassword), nil
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return failure(CodeDuplicateEmail), nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return Result{}, fmt.Errorf("error checking email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return Result{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Email:            email,
		PasswordHash:     hash,
		IsActive:         false,
		RegistrationDate: nowFn().UTC(),
	}
	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			// lost the insert race to a concurrent registration
			return failure(CodeDuplicateEmail), nil
		}
		return Result{}, fmt.Errorf("error creating user: %w", err)
	}

	return success(MsgRegistrationSuccessful), nil
}

// Activate marks the account active and stamps the activation date. Calling
// it again re-stamps the date and still succeeds.
func (s *Service) Activate(ctx context.Context, email string) (Result, error) {
	if err := s.repo.Activate(ctx, email, nowFn().UTC()); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return failure(CodeNotFound), nil
		}
		return Result{}, fmt.Errorf("error activating user: %w", err)
	}
	return success(MsgUserActivated), nil
}

// Authenticate verifies credentials for an active account. An unknown email,
// a wrong password, and an inactive account all produce the same message so
// the response does not leak which factor failed.
func (s *Service) Authenticate(ctx context.Context, email, password string) (Result, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return failure(CodeInvalidCredentials), nil
		}
		return Result{}, fmt.Errorf("error fetching user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) || !user.IsActive {
		return failure(CodeInvalidCredentials), nil
	}

	return success(MsgAuthenticationSuccessful), nil
}

// ResetPassword replaces the stored credential without asking for the old
// one. Complexity is checked before existence, so an invalid new password on
// an unknown email reports the password problem, not "User not found".
func (s *Service) ResetPassword(ctx context.Context, email, newPassword string) (Result, error) {
	if !IsValidPassword(newPassword) {
		return failure(CodeWeakPassword), nil
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return Result{}, fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, email, hash); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return failure(CodeNotFound), nil
		}
		return Result{}, fmt.Errorf("error updating password: %w", err)
	}

	return success(MsgPasswordReset), nil
}
