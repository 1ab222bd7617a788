package databases

import (
	"github.com/gregor-consortium/triovcf/core"
)

// Database defines the interface for a service that holds workspace data
// tables
type Database interface {
	// returns the entities in the named table of the given workspace, or an
	// empty list if they can't be retrieved
	Entities(workspace core.Workspace, table string) []core.Entity
}

// we maintain a table of database creation functions, identified by name
var createDatabaseFuncs = make(map[string]func() (Database, error))

// registers a database creation function under the given database name
// to allow for e.g. test database implementations
func RegisterDatabase(dbName string, createDb func() (Database, error)) error {
	if _, found := createDatabaseFuncs[dbName]; found {
		return &AlreadyRegisteredError{
			Database: dbName,
		}
	}
	createDatabaseFuncs[dbName] = createDb
	return nil
}

// returns true if a database has been registered with the given name, false if
// not
func HaveDatabase(dbName string) bool {
	_, found := createDatabaseFuncs[dbName]
	return found
}

// creates a database using the function registered under the given name
func NewDatabase(dbName string) (Database, error) {
	createDb, found := createDatabaseFuncs[dbName]
	if !found {
		return nil, &NotFoundError{
			Database: dbName,
		}
	}
	return createDb()
}

// removes all registered database creation functions (used by tests)
func UnregisterAll() {
	createDatabaseFuncs = make(map[string]func() (Database, error))
}
