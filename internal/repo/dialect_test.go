package repo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectFor(t *testing.T) {
	tests := map[string]string{
		"mysql":      "mysql",
		"MySQL":      "mysql",
		"postgres":   "postgres",
		"pgx":        "postgres",
		"postgresql": "postgres",
		"sqlite3":    "sqlite3",
		"sqlite":     "sqlite3",
	}
	for driver, want := range tests {
		d, err := DialectFor(driver)
		require.NoError(t, err, driver)
		assert.Equal(t, want, d.Name, driver)
	}

	_, err := DialectFor("oracle")
	assert.Error(t, err)
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%%", likePattern(""))
	assert.Equal(t, "%acme%", likePattern("acme"))
	assert.Equal(t, "%100!%%", likePattern("100%"))
	assert.Equal(t, "%a!_b%", likePattern("a_b"))
	assert.Equal(t, "%wow!!%", likePattern("wow!"))
	assert.Equal(t, "%O'Brien%", likePattern("O'Brien"))
}

func TestProductsQuery_BindsTermAsArguments(t *testing.T) {
	term := "'; DROP TABLE Products; --"

	for _, d := range []Dialect{MySQL, Postgres, SQLite} {
		t.Run(d.Name, func(t *testing.T) {
			query, args := d.productsQuery(term)

			assert.NotContains(t, query, "DROP")
			assert.Contains(t, query, "ORDER BY ProductID")
			assert.Equal(t, term, args[0])
			for _, a := range args[1:] {
				assert.True(t, strings.EqualFold(likePattern(term), a.(string)), "pattern %v", a)
			}
		})
	}
}

func TestProductsQuery_Placeholders(t *testing.T) {
	query, args := MySQL.productsQuery("x")
	assert.Equal(t, 4, strings.Count(query, "?"))
	assert.Len(t, args, 4)
	assert.Contains(t, query, "LIKE ? ESCAPE '!'")

	query, args = Postgres.productsQuery("x")
	assert.Len(t, args, 2)
	assert.Contains(t, query, "LENGTH($1::text) = 0")
	assert.Equal(t, 3, strings.Count(query, "ILIKE $2 ESCAPE '!'"))
	assert.NotContains(t, query, "?")

	query, args = SQLite.productsQuery("ÉCLAIR")
	assert.Equal(t, "%éclair%", args[1])
	assert.Equal(t, 3, strings.Count(query, "casefold("))
}
