package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/compagnon-careme/backend/internal/db"
	"github.com/compagnon-careme/backend/internal/domain"
)

type userChallengeRepository struct {
	db *sqlx.DB
}

func newUserChallengeRepository(db *sqlx.DB) *userChallengeRepository {
	return &userChallengeRepository{
		db: db,
	}
}

// Create inserts a completion record. The unique (user_id, day_number) key is
// the authority on duplicates: a concurrent second insert surfaces as
// ErrDuplicateEntry instead of racing a pre-check.
func (r *userChallengeRepository) Create(ctx context.Context, userChallenge *domain.UserChallenge) error {
	const query = `
	INSERT INTO user_challenges
	(id, user_id, day_number, completed, completed_at)
	VALUES(uuid_to_bin(?), uuid_to_bin(?), ?, ?, ?);
	`

	result, err := r.db.ExecContext(ctx, query,
		userChallenge.ID,
		userChallenge.UserID,
		userChallenge.DayNumber,
		userChallenge.Completed,
		userChallenge.CompletedAt,
	)
	if err != nil {
		//nolint:errorlint
		if mysqlError, ok := err.(*mysql.MySQLError); ok && mysqlError.Number == db.DuplicateEntry {
			return domain.ErrDuplicateEntry
		}
		return fmt.Errorf("db insert user challenge failed: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrNoRowsAffected
	}

	return nil
}

func (r *userChallengeRepository) GetOne(ctx context.Context, userID uuid.UUID, dayNumber int) (*domain.UserChallenge, error) {
	const query = `
	SELECT id, user_id, day_number, completed, completed_at, created_at
	FROM user_challenges WHERE user_id = uuid_to_bin(?) AND day_number = ?;
	`
	var userChallenge domain.UserChallenge
	if err := r.db.GetContext(ctx, &userChallenge, query, userID, dayNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user challenge failed: %w", err)
	}

	return &userChallenge, nil
}

func (r *userChallengeRepository) GetAllByUser(ctx context.Context, userID uuid.UUID) ([]domain.UserChallenge, error) {
	const query = `
	SELECT id, user_id, day_number, completed, completed_at, created_at
	FROM user_challenges WHERE user_id = uuid_to_bin(?) ORDER BY day_number ASC;
	`
	var userChallenges []domain.UserChallenge
	if err := r.db.SelectContext(ctx, &userChallenges, query, userID); err != nil {
		return nil, fmt.Errorf("select user challenges failed: %w", err)
	}

	return userChallenges, nil
}

func (r *userChallengeRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM user_challenges WHERE user_id = uuid_to_bin(?);`
	var count int
	if err := r.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("count user challenges failed: %w", err)
	}

	return count, nil
}
