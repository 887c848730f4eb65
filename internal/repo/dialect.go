package repo

import (
	"fmt"
	"strings"
)

// likeEscape is the escape character declared on every LIKE comparison.
const likeEscape = "!"

var likeEscaper = strings.NewReplacer(
	likeEscape, likeEscape+likeEscape,
	"%", likeEscape+"%",
	"_", likeEscape+"_",
)

// Dialect captures the differences between the supported SQL drivers.
type Dialect struct {
	Name       string
	DriverName string

	like     string
	numbered bool
	schema   string
	// fold, when set, is the SQL function applied to the columns before
	// matching; the pattern is folded the same way before binding.
	fold     string
}

var (
	MySQL = Dialect{
		Name:       "mysql",
		DriverName: "mysql",
		like:       "LIKE",
		schema: `CREATE TABLE IF NOT EXISTS Products (
			ProductID INT AUTO_INCREMENT PRIMARY KEY,
			ProductName VARCHAR(200) NOT NULL,
			Category VARCHAR(100) NOT NULL,
			Price DECIMAL(10,2) NOT NULL,
			Stock INT NOT NULL DEFAULT 0,
			Supplier VARCHAR(200) NOT NULL,
			CreatedDate DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	Postgres = Dialect{
		Name:       "postgres",
		DriverName: "pgx",
		like:       "ILIKE",
		numbered:   true,
		schema: `CREATE TABLE IF NOT EXISTS Products (
			ProductID SERIAL PRIMARY KEY,
			ProductName TEXT NOT NULL,
			Category TEXT NOT NULL,
			Price NUMERIC(10,2) NOT NULL,
			Stock INTEGER NOT NULL DEFAULT 0,
			Supplier TEXT NOT NULL,
			CreatedDate TIMESTAMP NOT NULL DEFAULT now()
		)`,
	}

	SQLite = Dialect{
		Name:       "sqlite3",
		DriverName: SQLiteDriverName,
		like:       "LIKE",
		fold:       "casefold",
		schema: `CREATE TABLE IF NOT EXISTS Products (
			ProductID INTEGER PRIMARY KEY AUTOINCREMENT,
			ProductName TEXT NOT NULL,
			Category TEXT NOT NULL,
			Price NUMERIC(10,2) NOT NULL,
			Stock INTEGER NOT NULL DEFAULT 0,
			Supplier TEXT NOT NULL,
			CreatedDate TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}
)

// DialectFor maps a configured driver name to its dialect.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "mysql":
		return MySQL, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	case "sqlite", "sqlite3":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported database driver %q", driver)
}

// Placeholder returns the bind marker for the n-th (1-based) argument.
func (d Dialect) Placeholder(n int) string {
	if d.numbered {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// likePattern turns a search term into a substring pattern matching the
// term literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// productsQuery builds the filtered listing. The SQL text is assembled
// from constants only; the term and its pattern travel as arguments.
func (d Dialect) productsQuery(term string) (string, []any) {
	pattern := likePattern(term)
	if d.fold != "" {
		pattern = strings.ToLower(pattern)
	}

	termParam, patternParam := d.Placeholder(1), d.Placeholder(2)
	args := []any{term, pattern, pattern, pattern}
	if d.numbered {
		termParam += "::text"
		args = []any{term, pattern}
	}

	match := func(column string) string {
		if d.fold != "" {
			column = fmt.Sprintf("%s(%s)", d.fold, column)
		}
		return fmt.Sprintf("%s %s %s ESCAPE '%s'", column, d.like, patternParam, likeEscape)
	}
	query := fmt.Sprintf(`SELECT ProductID, ProductName, Category, Price, Stock, Supplier, CreatedDate
		FROM Products
		WHERE (LENGTH(%s) = 0 OR %s OR %s OR %s)
		ORDER BY ProductID`, termParam, match("ProductName"), match("Category"), match("Supplier"))

	return query, args
}

const countQuery = `SELECT COUNT(*) FROM Products`
