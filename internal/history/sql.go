package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"AuctionBidder/internal/model"
)

// Dialect selects the DDL flavour for SQLStore.
type Dialect string

const (
	DialectSQLite Dialect = "sqlite"
	DialectMySQL  Dialect = "mysql"
)

// SQLStore persists round histories in a relational database.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

// NewSQLiteStore opens (or creates) a SQLite database file and runs migrations.
func NewSQLiteStore(path string) (*SQLStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection serializes writers; parallel auctions would otherwise hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}
	return NewSQLStore(db, DialectSQLite)
}

// NewMySQLStore connects to MySQL with the given DSN and runs migrations.
func NewMySQLStore(ctx context.Context, dsn string) (*SQLStore, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}
	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping mysql: %w", err)
	}
	return NewSQLStore(db, DialectMySQL)
}

// NewSQLStore wraps an open database handle and creates the schema if needed.
func NewSQLStore(db *sql.DB, dialect Dialect) (*SQLStore, error) {
	s := &SQLStore{db: db, dialect: dialect}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLStore) migrate() error {
	var stmts []string
	switch s.dialect {
	case DialectSQLite:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS round_results (
				id                      INTEGER PRIMARY KEY AUTOINCREMENT,
				bidder_id               TEXT NOT NULL,
				my_bid                  INTEGER NOT NULL,
				my_won_quantity         INTEGER NOT NULL,
				opponent_bid            INTEGER NOT NULL,
				opponent_won_quantity   INTEGER NOT NULL,
				opponent_remaining_cash INTEGER NOT NULL,
				created_at              INTEGER NOT NULL DEFAULT (strftime('%s','now'))
			)`,
			`CREATE INDEX IF NOT EXISTS idx_round_results_bidder ON round_results(bidder_id, id)`,
		}
	case DialectMySQL:
		stmts = []string{
			`CREATE TABLE IF NOT EXISTS round_results (
				id                      BIGINT AUTO_INCREMENT PRIMARY KEY,
				bidder_id               VARCHAR(128) NOT NULL,
				my_bid                  INT NOT NULL,
				my_won_quantity         INT NOT NULL,
				opponent_bid            INT NOT NULL,
				opponent_won_quantity   INT NOT NULL,
				opponent_remaining_cash INT NOT NULL,
				created_at              TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				INDEX idx_round_results_bidder (bidder_id, id)
			)`,
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, s.dialect)
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:40], err)
		}
	}
	return nil
}

func (s *SQLStore) Append(ctx context.Context, bidderID string, result model.RoundResult) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO round_results
		(bidder_id, my_bid, my_won_quantity, opponent_bid, opponent_won_quantity, opponent_remaining_cash)
		VALUES (?,?,?,?,?,?)`,
		bidderID, result.MyBid, result.MyWonQuantity,
		result.OpponentBid, result.OpponentWonQuantity, result.OpponentRemainingCash,
	)
	if err != nil {
		return fmt.Errorf("insert round result: %w", err)
	}
	return nil
}

func (s *SQLStore) History(ctx context.Context, bidderID string) ([]model.RoundResult, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT my_bid, my_won_quantity, opponent_bid, opponent_won_quantity, opponent_remaining_cash
		FROM round_results
		WHERE bidder_id = ?
		ORDER BY id ASC`, bidderID)
	if err != nil {
		return nil, fmt.Errorf("query round history: %w", err)
	}
	defer rows.Close()

	out := []model.RoundResult{}
	for rows.Next() {
		var r model.RoundResult
		if err := rows.Scan(&r.MyBid, &r.MyWonQuantity, &r.OpponentBid,
			&r.OpponentWonQuantity, &r.OpponentRemainingCash); err != nil {
			return nil, fmt.Errorf("scan round result: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate round history: %w", err)
	}
	return out, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
