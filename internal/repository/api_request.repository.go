package repository

import (
	"roboadvisor/internal/apperrors"
	"roboadvisor/internal/db/models/postgres/public/model"
	. "roboadvisor/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type APIRequestRepository interface {
	Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error)
	Update(db qrm.Executable, ar model.APIRequest) error
}

type APIRequestRepositoryHandler struct{}

func (h APIRequestRepositoryHandler) Add(db qrm.Queryable, ar model.APIRequest) (*model.APIRequest, error) {
	ar.RequestID = uuid.New()

	query := APIRequest.
		INSERT(APIRequest.AllColumns).
		MODEL(ar).
		RETURNING(APIRequest.AllColumns)

	out := &model.APIRequest{}
	err := query.Query(db, out)
	if err != nil {
		return nil, apperrors.StorageError{Op: "insert api request", Err: err}
	}

	return out, nil
}

func (h APIRequestRepositoryHandler) Update(db qrm.Executable, ar model.APIRequest) error {
	query := APIRequest.
		UPDATE(APIRequest.DurationMs, APIRequest.StatusCode, APIRequest.ResponseBody).
		MODEL(ar).
		WHERE(APIRequest.RequestID.EQ(postgres.UUID(ar.RequestID)))

	_, err := query.Exec(db)
	if err != nil {
		return apperrors.StorageError{Op: "update api request", Err: err}
	}

	return nil
}
