package domain

import "context"

// Database is the process-wide storage handle opened once at startup and
// closed at shutdown. It owns the connection pool; repositories check a
// connection out of it for each operation and return it when done.
type Database interface {
	Migrate(ctx context.Context) error
	Users() UserRepository
	Close() error
}
