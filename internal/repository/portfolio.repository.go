package repository

import (
	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
)

type PortfolioRepository interface {
	List(db qrm.Queryable) ([]model.Portfolio, error)
	Add(db qrm.Queryable, p model.Portfolio) (*model.Portfolio, error)
}

type portfolioRepositoryHandler struct{}

func NewPortfolioRepository() PortfolioRepository {
	return portfolioRepositoryHandler{}
}

// List returns every portfolio in the catalog, ascending by id. An empty
// catalog yields an empty slice, not an error.
func (h portfolioRepositoryHandler) List(db qrm.Queryable) ([]model.Portfolio, error) {
	t := table.Portfolio

	query := t.SELECT(t.AllColumns).ORDER_BY(t.ID.ASC())

	out := []model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, apperrors.StorageError{Op: "list portfolios", Err: err}
	}

	return out, nil
}

// Add provisions a catalog row. Only the seed tooling writes portfolios; the
// request path treats the catalog as read-only.
func (h portfolioRepositoryHandler) Add(db qrm.Queryable, p model.Portfolio) (*model.Portfolio, error) {
	t := table.Portfolio

	query := t.INSERT(t.ID, t.MaxInterest, t.MinInterest, t.RiskLevel).
		MODEL(p).
		RETURNING(t.AllColumns)

	out := model.Portfolio{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, apperrors.StorageError{Op: "insert portfolio", Err: err}
	}

	return &out, nil
}
