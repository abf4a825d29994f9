package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/logger"
	"roboadvisor/internal/repository"
)

type InvestmentService interface {
	Add(ctx context.Context, username string, principal float64, durationYears int, portfolioID string) (*model.Investment, error)
	List(ctx context.Context, username string) ([]model.Investment, error)
}

type investmentServiceHandler struct {
	Db                   *sql.DB
	UserRepository       repository.UserRepository
	InvestmentRepository repository.InvestmentRepository
}

func NewInvestmentService(
	db *sql.DB,
	userRepository repository.UserRepository,
	investmentRepository repository.InvestmentRepository,
) InvestmentService {
	return investmentServiceHandler{
		Db:                   db,
		UserRepository:       userRepository,
		InvestmentRepository: investmentRepository,
	}
}

// Add records an investment for a registered user. An unknown username is a
// NotFoundError and leaves no row behind.
func (h investmentServiceHandler) Add(ctx context.Context, username string, principal float64, durationYears int, portfolioID string) (*model.Investment, error) {
	// Durations are stored as int32; an out-of-range value must never reach
	// the cast below, where it would wrap silently.
	if durationYears < 0 || durationYears > math.MaxInt32 {
		return nil, apperrors.ValidationError{Reason: "years out of range"}
	}

	exists, err := h.UserRepository.Exists(h.Db, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user before investing: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFoundError{Resource: "user", ID: username}
	}

	out, err := h.InvestmentRepository.Add(h.Db, model.Investment{
		Username:  username,
		Portfolio: portfolioID,
		Duration:  int32(durationYears),
		Principal: principal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record investment: %w", err)
	}

	logger.FromContext(ctx).Infof("recorded investment %d for %s", out.ID, username)

	return out, nil
}

// List returns the user's investments ascending by id. The user must already
// be registered; a registered user with no investments gets an empty slice.
func (h investmentServiceHandler) List(ctx context.Context, username string) ([]model.Investment, error) {
	exists, err := h.UserRepository.Exists(h.Db, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check user before listing investments: %w", err)
	}
	if !exists {
		return nil, apperrors.NotFoundError{Resource: "user", ID: username}
	}

	out, err := h.InvestmentRepository.List(h.Db, username)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}

	return out, nil
}
