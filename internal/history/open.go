package history

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownDriver is returned for a storage driver name that has no backend.
var ErrUnknownDriver = errors.New("unknown storage driver")

// Options selects and configures a Store backend.
type Options struct {
	Driver     string // memory, sqlite, mysql or redis
	SQLitePath string
	MySQLDSN   string
	Redis      RedisOptions
}

// Open builds the Store named by opts.Driver. An empty driver means memory.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Driver {
	case "", "memory":
		return NewMemoryStore(), nil
	case string(DialectSQLite):
		return NewSQLiteStore(opts.SQLitePath)
	case string(DialectMySQL):
		return NewMySQLStore(ctx, opts.MySQLDSN)
	case "redis":
		return NewRedisStore(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, opts.Driver)
	}
}
