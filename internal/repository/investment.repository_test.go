package repository

import (
	"testing"

	"roboadvisor/internal/db/models/postgres/public/model"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func Test_investmentRepository_AddAndList(t *testing.T) {
	t.Run("rows come back ascending by id", func(t *testing.T) {
		tx := newTestTx(t)
		clearTables(t, tx)
		seedCatalog(t, tx)

		users := userRepositoryHandler{}
		_, err := users.EnsureExists(tx, "ada")
		require.NoError(t, err)

		h := investmentRepositoryHandler{}

		first, err := h.Add(tx, model.Investment{
			Username:  "ada",
			Portfolio: "A",
			Duration:  10,
			Principal: 100,
		})
		require.NoError(t, err)

		second, err := h.Add(tx, model.Investment{
			Username:  "ada",
			Portfolio: "A",
			Duration:  3,
			Principal: 50,
		})
		require.NoError(t, err)
		require.Greater(t, second.ID, first.ID)

		out, err := h.List(tx, "ada")
		require.NoError(t, err)
		require.Len(t, out, 2)
		require.Equal(t, first.ID, out[0].ID)
		require.Equal(t, second.ID, out[1].ID)
		require.Equal(t, "A", out[0].Portfolio)
		require.Equal(t, int32(10), out[0].Duration)
		require.Equal(t, float64(100), out[0].Principal)
	})

	t.Run("user with no investments gets an empty list", func(t *testing.T) {
		tx := newTestTx(t)
		clearTables(t, tx)
		seedCatalog(t, tx)

		users := userRepositoryHandler{}
		_, err := users.EnsureExists(tx, "ada")
		require.NoError(t, err)

		h := investmentRepositoryHandler{}
		out, err := h.List(tx, "ada")
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("only the owner's rows are listed", func(t *testing.T) {
		tx := newTestTx(t)
		clearTables(t, tx)
		seedCatalog(t, tx)

		users := userRepositoryHandler{}
		_, err := users.EnsureExists(tx, "ada")
		require.NoError(t, err)
		_, err = users.EnsureExists(tx, "bob")
		require.NoError(t, err)

		h := investmentRepositoryHandler{}
		_, err = h.Add(tx, model.Investment{Username: "ada", Portfolio: "B", Duration: 1, Principal: 10})
		require.NoError(t, err)
		_, err = h.Add(tx, model.Investment{Username: "bob", Portfolio: "C", Duration: 2, Principal: 20})
		require.NoError(t, err)

		out, err := h.List(tx, "bob")
		require.NoError(t, err)
		require.Len(t, out, 1)
		require.Equal(t, "bob", out[0].Username)
	})
}
