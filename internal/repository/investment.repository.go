package repository

import (
	"time"

	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type InvestmentRepository interface {
	Add(db qrm.Queryable, i model.Investment) (*model.Investment, error)
	List(db qrm.Queryable, username string) ([]model.Investment, error)
}

type investmentRepositoryHandler struct{}

func NewInvestmentRepository() InvestmentRepository {
	return investmentRepositoryHandler{}
}

// Add appends an investment row; storage assigns the id. The caller is
// responsible for having confirmed the owning user exists.
func (h investmentRepositoryHandler) Add(db qrm.Queryable, i model.Investment) (*model.Investment, error) {
	i.CreatedAt = time.Now().UTC()

	t := table.Investment
	query := t.INSERT(t.MutableColumns).
		MODEL(i).
		RETURNING(t.AllColumns)

	out := model.Investment{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, apperrors.StorageError{Op: "insert investment", Err: err}
	}

	return &out, nil
}

// List returns the user's investments ascending by id. A user with no
// investments yields an empty slice.
func (h investmentRepositoryHandler) List(db qrm.Queryable, username string) ([]model.Investment, error) {
	t := table.Investment

	query := t.SELECT(t.AllColumns).
		WHERE(t.Username.EQ(postgres.String(username))).
		ORDER_BY(t.ID.ASC())

	out := []model.Investment{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, apperrors.StorageError{Op: "list investments", Err: err}
	}

	return out, nil
}
