package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens a shared in-memory SQLite database. The name keeps
// databases from different test packages isolated while letting connections
// within one package see the same data. Foreign keys are enabled to match the
// production schema.
func NewSQLiteMemoryDB(name string) (*sql.DB, error) {
	return sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared&_fk=1")
}
