package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the connection backing the permission store and
// the lifetime block counter. It is opened on the first DB call; commands such
// as version and check never make one.
type DatabaseProvider interface {
	// DB returns the database connection, initializing it if necessary.
	DB(ctx context.Context) (*sql.DB, error)

	// Close closes the database connection if it was initialized.
	Close() error

	// IsInitialized returns true if the database has been initialized.
	IsInitialized() bool
}
