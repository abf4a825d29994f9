package repository

import (
	"errors"
	"time"

	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type UserRepository interface {
	Exists(db qrm.Queryable, username string) (bool, error)
	EnsureExists(db qrm.Queryable, username string) (alreadyExisted bool, err error)
}

type userRepositoryHandler struct{}

func NewUserRepository() UserRepository {
	return userRepositoryHandler{}
}

func (h userRepositoryHandler) Exists(db qrm.Queryable, username string) (bool, error) {
	t := table.User

	query := t.SELECT(t.Username).WHERE(t.Username.EQ(postgres.String(username)))

	out := model.User{}
	err := query.Query(db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	} else if err != nil {
		return false, apperrors.StorageError{Op: "check user exists", Err: err}
	}

	return true, nil
}

// EnsureExists creates the user row on first reference. Repeated calls with
// the same username leave exactly one row behind.
func (h userRepositoryHandler) EnsureExists(db qrm.Queryable, username string) (bool, error) {
	exists, err := h.Exists(db, username)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}

	t := table.User
	query := t.INSERT(t.Username, t.CreatedAt).
		MODEL(model.User{
			Username:  username,
			CreatedAt: time.Now().UTC(),
		}).
		RETURNING(t.AllColumns)

	out := model.User{}
	err = query.Query(db, &out)
	if err != nil {
		return false, apperrors.StorageError{Op: "create user", Err: err}
	}

	return false, nil
}
