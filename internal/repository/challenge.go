package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/compagnon-careme/backend/internal/domain"
)

type challengeRepository struct {
	db *sqlx.DB
}

func newChallengeRepository(db *sqlx.DB) *challengeRepository {
	return &challengeRepository{
		db: db,
	}
}

func (r *challengeRepository) GetByDayNumber(ctx context.Context, dayNumber int) (*domain.Challenge, error) {
	const query = `
	SELECT id, day_number, title, description, verse FROM challenges WHERE day_number = ?;
	`
	var challenge domain.Challenge
	if err := r.db.GetContext(ctx, &challenge, query, dayNumber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select challenge by day number failed: %w", err)
	}

	return &challenge, nil
}

func (r *challengeRepository) GetAll(ctx context.Context) ([]domain.Challenge, error) {
	const query = `
	SELECT id, day_number, title, description, verse FROM challenges ORDER BY day_number ASC;
	`
	var challenges []domain.Challenge
	if err := r.db.SelectContext(ctx, &challenges, query); err != nil {
		return nil, fmt.Errorf("select all challenges failed: %w", err)
	}

	return challenges, nil
}
