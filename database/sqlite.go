package database

import (
	"database/sql"
	"strings"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqliteDriverName is go-sqlite3 with lower() replaced by a Unicode aware
// version. The built-in one folds ASCII only, so "ÉCOLE" would never match
// "école" in the case-insensitive filters.
const sqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("lower", unicodeLower, true)
		},
	})
}

// unicodeLower keeps NULL as NULL and passes numbers through unchanged.
func unicodeLower(v any) any {
	switch value := v.(type) {
	case string:
		return strings.ToLower(value)
	case []byte:
		if value == nil {
			return nil
		}
		return strings.ToLower(string(value))
	default:
		return value
	}
}

// OpenSQLite returns a dialector for dsn on the Unicode aware driver.
func OpenSQLite(dsn string) gorm.Dialector {
	return sqlite.New(sqlite.Config{DriverName: sqliteDriverName, DSN: dsn})
}
