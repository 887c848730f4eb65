package repo

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteDriverName is go-sqlite3 with a casefold() SQL function on every
// connection. SQLite's own LIKE and lower() only fold ASCII letters.
const SQLiteDriverName = "sqlite3_catalog"

func init() {
	sql.Register(SQLiteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("casefold", casefold, true)
		},
	})
}

// casefold lower-cases text using Unicode rules. NULL stays NULL and other
// values pass through unchanged.
func casefold(v any) any {
	switch s := v.(type) {
	case string:
		return strings.ToLower(s)
	case []byte:
		if s == nil {
			return nil
		}
		return strings.ToLower(string(s))
	}
	return v
}
