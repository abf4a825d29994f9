package repository

import (
	"database/sql"
	"testing"

	"roboadvisor/internal/db/models/postgres/public/model"
	"roboadvisor/internal/db/models/postgres/public/table"
	"roboadvisor/internal/util"

	"github.com/go-jet/jet/v2/postgres"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func newTestTx(t *testing.T) *sql.Tx {
	db, err := util.NewTestDb()
	require.NoError(t, err)
	if err := db.Ping(); err != nil {
		t.Skipf("test database unavailable: %v", err)
	}

	tx, err := db.Begin()
	require.NoError(t, err)
	t.Cleanup(func() {
		tx.Rollback()
		db.Close()
	})

	return tx
}

// clearTables empties all advisor tables inside the test transaction so each
// test starts from a known state. The rollback in newTestTx undoes everything.
func clearTables(t *testing.T, tx *sql.Tx) {
	_, err := table.Investment.DELETE().WHERE(postgres.Bool(true)).Exec(tx)
	require.NoError(t, err)
	_, err = table.User.DELETE().WHERE(postgres.Bool(true)).Exec(tx)
	require.NoError(t, err)
	_, err = table.Portfolio.DELETE().WHERE(postgres.Bool(true)).Exec(tx)
	require.NoError(t, err)
}

func seedCatalog(t *testing.T, tx *sql.Tx) {
	h := portfolioRepositoryHandler{}
	for _, p := range []model.Portfolio{
		{ID: "A", MinInterest: 0.1, MaxInterest: 0.2, RiskLevel: 1},
		{ID: "B", MinInterest: -0.05, MaxInterest: 0.05, RiskLevel: 3},
		{ID: "C", MinInterest: 0, MaxInterest: 0.045, RiskLevel: 2},
	} {
		_, err := h.Add(tx, p)
		require.NoError(t, err)
	}
}
