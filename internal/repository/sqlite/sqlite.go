package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dotpro/tutorial-web/internal/domain"
	"github.com/dotpro/tutorial-web/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// maxOpenConns bounds the pool that per-operation sessions are checked out of.
const maxOpenConns = 4

// DB owns the SQLite connection pool for the lifetime of the process.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// Every pooled connection gets WAL mode, foreign keys, a busy timeout and
// immediate transactions so concurrent writers queue inside SQLite instead
// of failing on lock upgrade.
func New(dbPath string) (*DB, error) {
	dsn := dbPath + "?_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_txlock=immediate"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate creates or upgrades the schema. It is safe to run on every start.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

// Users returns the SQLite-backed user repository.
func (d *DB) Users() domain.UserRepository {
	return NewUserRepository(d)
}

func (d *DB) Close() error {
	return d.SqlDB.Close()
}
