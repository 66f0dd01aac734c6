package results

import (
	"context"
	"embed"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fadedpez/basicstrategy/internal/types"
	"github.com/fadedpez/basicstrategy/pkg/entities"
)

//go:embed migrations/postgres/schema.sql
var postgresSchema embed.FS

// PostgresRepository implements Repository on a pgx connection pool
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to dsn and applies the schema
func NewPostgresRepository(ctx context.Context, dsn string) (*PostgresRepository, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error connecting to postgres", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, types.WrapError(types.ErrDatabaseError, "error pinging postgres", err)
	}

	repo := &PostgresRepository{pool: pool}
	if err := repo.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return repo, nil
}

// Migrate applies the embedded schema. Every statement is idempotent.
func (r *PostgresRepository) Migrate(ctx context.Context) error {
	sqlBytes, err := postgresSchema.ReadFile("migrations/postgres/schema.sql")
	if err != nil {
		return err
	}
	if _, err := r.pool.Exec(ctx, string(sqlBytes)); err != nil {
		return types.WrapError(types.ErrDatabaseError, "error applying schema", err)
	}
	return nil
}

// SaveAnswer inserts one answer
func (r *PostgresRepository) SaveAnswer(ctx context.Context, record *entities.AnswerRecord) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	_, err := r.pool.Exec(ctx, `
		INSERT INTO answers (`+answerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
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
		record.AnsweredAt.UTC(),
	)
	if err != nil {
		return types.WrapError(types.ErrDatabaseError, "error saving answer", err)
	}
	return nil
}

// GetSessionAnswers returns a session's answers oldest first
func (r *PostgresRepository) GetSessionAnswers(ctx context.Context, sessionID string) ([]*entities.AnswerRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+answerColumns+` FROM answers WHERE session_id = $1 ORDER BY answered_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying session answers", err)
	}
	return collectAnswers(rows)
}

// GetPlayerAnswers returns a player's answers newest first
func (r *PostgresRepository) GetPlayerAnswers(ctx context.Context, playerID string, limit int) ([]*entities.AnswerRecord, error) {
	query := `SELECT ` + answerColumns + ` FROM answers WHERE player_id = $1 ORDER BY answered_at DESC`
	args := []any{playerID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying player answers", err)
	}
	return collectAnswers(rows)
}

// GetCellStatistics groups a player's answers by table index
func (r *PostgresRepository) GetCellStatistics(ctx context.Context, playerID string) ([]*entities.CellStatistics, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT table_index, MIN(table_type), COUNT(*)::int, COUNT(*) FILTER (WHERE NOT correct)::int
		FROM answers
		WHERE player_id = $1 AND table_index <> ''
		GROUP BY table_index
		ORDER BY table_index`,
		playerID,
	)
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error querying cell statistics", err)
	}

	cells, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.CellStatistics, error) {
		cell := &entities.CellStatistics{PlayerID: playerID}
		err := row.Scan(&cell.TableIndex, &cell.TableType, &cell.Attempts, &cell.Wrong)
		return cell, err
	})
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error scanning cell statistics", err)
	}
	return cells, nil
}

// PruneAnswers deletes answers older than before
func (r *PostgresRepository) PruneAnswers(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM answers WHERE answered_at < $1`, before.UTC())
	if err != nil {
		return 0, types.WrapError(types.ErrDatabaseError, "error pruning answers", err)
	}
	return tag.RowsAffected(), nil
}

// Close releases the pool
func (r *PostgresRepository) Close() error {
	r.pool.Close()
	return nil
}

func collectAnswers(rows pgx.Rows) ([]*entities.AnswerRecord, error) {
	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entities.AnswerRecord, error) {
		var rec entities.AnswerRecord
		err := row.Scan(
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
			&rec.AnsweredAt,
		)
		rec.AnsweredAt = rec.AnsweredAt.UTC()
		return &rec, err
	})
	if err != nil {
		return nil, types.WrapError(types.ErrDatabaseError, "error scanning answers", err)
	}
	return records, nil
}
