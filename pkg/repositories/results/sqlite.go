package results

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/db/migrations"
	"github.com/fadedpez/basicstrategy/pkg/entities"
)

//go:embed migrations/sqlite/*.sql
var sqliteMigrations embed.FS

const answerColumns = `id, session_id, player_id, player_hand, dealer_card, table_index, table_type, expected, guess, correct, answered_at`

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the database at dbPath and
// applies any pending migrations
func NewSQLiteRepository(ctx context.Context, dbPath string, logger *log.Logger) (*SQLiteRepository, error) {
	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if _, err := MigrateSQLite(ctx, db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

// MigrateSQLite applies the embedded SQLite migrations to db
func MigrateSQLite(ctx context.Context, db *sql.DB, logger *log.Logger) (int, error) {
	sub, err := fs.Sub(sqliteMigrations, "migrations/sqlite")
	if err != nil {
		return 0, err
	}
	count, err := migrations.NewMigrator(db, sub, logger).MigrateUp(ctx)
	if err != nil {
		return count, types.WrapError(types.ErrDatabaseError, "error running migrations", err)
	}
	return count, nil
}

// SaveAnswer inserts one answer
func (r *SQLiteRepository) SaveAnswer(ctx context.Context, record *entities.AnswerRecord) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answers (`+answerColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.SessionID,
		record.PlayerID,
		record.PlayerHand,
		record.DealerCard,
		record.TableIndex,
		record.TableType,
		record.Expected,
		record.Guess,
		record.Correct,
		record.AnsweredAt.UTC().UnixNano(),
	)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error saving answer", err)
	}
	return nil
}

// GetSessionAnswers returns a session's answers oldest first
func (r *SQLiteRepository) GetSessionAnswers(ctx context.Context, sessionID string) ([]*entities.AnswerRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE session_id = ? ORDER BY answered_at ASC, rowid ASC`,
		sessionID,
	)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying session answers", err)
	}
	defer rows.Close()

	return scanSQLiteAnswers(rows)
}

// GetPlayerAnswers returns a player's answers newest first
func (r *SQLiteRepository) GetPlayerAnswers(ctx context.Context, playerID string, limit int) ([]*entities.AnswerRecord, error) {
	query := `SELECT ` + answerColumns + ` FROM answers WHERE player_id = ? ORDER BY answered_at DESC, rowid DESC`
	args := []any{playerID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying player answers", err)
	}
	defer rows.Close()

	return scanSQLiteAnswers(rows)
}

// GetCellStatistics groups a player's answers by table index
func (r *SQLiteRepository) GetCellStatistics(ctx context.Context, playerID string) ([]*entities.CellStatistics, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT table_index, MIN(table_type), COUNT(*), SUM(CASE WHEN correct THEN 0 ELSE 1 END)
		FROM answers
		WHERE player_id = ? AND table_index != ''
		GROUP BY table_index
		ORDER BY table_index`,
		playerID,
	)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying cell statistics", err)
	}
	defer rows.Close()

	var out []*entities.CellStatistics
	for rows.Next() {
		cell := &entities.CellStatistics{PlayerID: playerID}
		if err := rows.Scan(&cell.TableIndex, &cell.TableType, &cell.Attempts, &cell.Wrong); err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "error scanning cell statistics", err)
		}
		out = append(out, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error reading cell statistics", err)
	}
	return out, nil
}

// PruneAnswers deletes answers older than before
func (r *SQLiteRepository) PruneAnswers(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM answers WHERE answered_at < ?`, before.UTC().UnixNano())
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "error pruning answers", err)
	}
	return res.RowsAffected()
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanSQLiteAnswers(rows *sql.Rows) ([]*entities.AnswerRecord, error) {
	var out []*entities.AnswerRecord
	for rows.Next() {
		var rec entities.AnswerRecord
		var answeredAt int64
		err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.PlayerID,
			&rec.PlayerHand,
			&rec.DealerCard,
			&rec.TableIndex,
			&rec.TableType,
			&rec.Expected,
			&rec.Guess,
			&rec.Correct,
			&answeredAt,
		)
		if err != nil {
			return nil, types.WrapError(types.ErrDatabaseError, "error scanning answer", err)
		}
		rec.AnsweredAt = time.Unix(0, answeredAt).UTC()
		out = append(out, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error reading answers", err)
	}
	return out, nil
}
