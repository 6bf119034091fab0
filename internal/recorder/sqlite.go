package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"AuctionBidder/internal/logger"
)

// SQLiteRecorder persists auction outcomes to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log logger.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log logger.Logger) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets report queries read while a tournament is writing.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite recorder opened", "path", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS auctions (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			tournament_id    TEXT NOT NULL,
			opponent         TEXT,
			run              INTEGER,
			seed             INTEGER,
			verdict          TEXT,
			rounds           INTEGER,
			bidder_quantity  INTEGER,
			bidder_cash      INTEGER,
			rival_quantity   INTEGER,
			rival_cash       INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_auctions_tournament ON auctions(tournament_id)`,

		`CREATE TABLE IF NOT EXISTS tournaments (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			tournament_id TEXT NOT NULL,
			opponent      TEXT,
			runs          INTEGER,
			wins          INTEGER,
			losses        INTEGER,
			draws         INTEGER,
			win_rate      REAL,
			mean_quantity REAL,
			mean_cash     REAL,
			duration_ms   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tournaments_ts ON tournaments(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAuction(evt *AuctionEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO auctions
		(timestamp, tournament_id, opponent, run, seed, verdict, rounds,
		 bidder_quantity, bidder_cash, rival_quantity, rival_cash)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.TournamentID, evt.Opponent, evt.Run, evt.Seed,
		string(evt.Verdict), evt.Rounds,
		evt.Bidder.Quantity, evt.Bidder.RemainingCash,
		evt.Rival.Quantity, evt.Rival.RemainingCash,
	)
	return err
}

func (r *SQLiteRecorder) RecordTournament(evt *TournamentEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO tournaments
		(timestamp, tournament_id, opponent, runs, wins, losses, draws,
		 win_rate, mean_quantity, mean_cash, duration_ms)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.TournamentID, evt.Opponent,
		evt.Runs, evt.Wins, evt.Losses, evt.Draws,
		evt.WinRate, evt.MeanQuantity, evt.MeanCash, evt.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
