package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/compagnon-careme/backend/internal/campaign"
	"github.com/compagnon-careme/backend/internal/domain"
	"github.com/compagnon-careme/backend/internal/repository"
	"github.com/compagnon-careme/backend/pkg/logger"
)

const (
	catalogCacheKey = "challenges:catalog"
	catalogCacheTTL = 12 * time.Hour
)

type challengeService struct {
	challengeRepository     repository.Challenges
	userChallengeRepository repository.UserChallenges
	calendar                *campaign.Calendar
	cache                   redis.UniversalClient
}

func newChallengeService(challengeRepository repository.Challenges,
	userChallengeRepository repository.UserChallenges,
	calendar *campaign.Calendar,
	cache redis.UniversalClient,
) *challengeService {
	return &challengeService{
		challengeRepository:     challengeRepository,
		userChallengeRepository: userChallengeRepository,
		calendar:                calendar,
		cache:                   cache,
	}
}

// CompleteToday records the completion of the current campaign day. The
// unique (user, day) key in the store decides duplicates, not a pre-check.
func (s *challengeService) CompleteToday(ctx context.Context, userID uuid.UUID, date time.Time) error {
	dayNumber, ok := s.calendar.DayNumber(date)
	if !ok {
		return ErrOutOfCampaign
	}

	userChallenge := &domain.UserChallenge{
		ID:          uuid.New(),
		UserID:      userID,
		DayNumber:   dayNumber,
		Completed:   true,
		CompletedAt: time.Now(),
	}

	if err := s.userChallengeRepository.Create(ctx, userChallenge); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return ErrChallengeAlreadyCompleted
		}
		return fmt.Errorf("create user challenge failed: %w", err)
	}

	return nil
}

func (s *challengeService) Today(ctx context.Context, userID uuid.UUID, date time.Time) (*TodayChallenge, error) {
	dayNumber, ok := s.calendar.DayNumber(date)
	if !ok {
		return nil, ErrOutOfCampaign
	}

	challenge, err := s.challengeRepository.GetByDayNumber(ctx, dayNumber)
	if err != nil {
		return nil, fmt.Errorf("get challenge for day %d failed: %w", dayNumber, err)
	}

	completed := true
	if _, err := s.userChallengeRepository.GetOne(ctx, userID, dayNumber); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get user challenge failed: %w", err)
		}
		completed = false
	}

	completedCount, err := s.userChallengeRepository.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user challenges failed: %w", err)
	}

	return &TodayChallenge{
		Day:         dayNumber,
		Progression: fmt.Sprintf("%d/%d", completedCount, s.calendar.Days()),
		Challenge:   challenge,
		Completed:   completed,
	}, nil
}

// GetAll renders the whole catalog with per-day status. The raw day offset is
// used unchecked on purpose: before the campaign every day compares as
// locked, after it every uncompleted day compares as missed.
func (s *challengeService) GetAll(ctx context.Context, userID uuid.UUID, date time.Time) ([]ChallengeStatus, error) {
	challenges, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	userChallenges, err := s.userChallengeRepository.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user challenges failed: %w", err)
	}

	completedDays := make(map[int]struct{}, len(userChallenges))
	for _, userChallenge := range userChallenges {
		completedDays[userChallenge.DayNumber] = struct{}{}
	}

	currentDay := s.calendar.Offset(date)

	statuses := make([]ChallengeStatus, 0, len(challenges))
	for _, challenge := range challenges {
		_, completed := completedDays[challenge.DayNumber]

		statuses = append(statuses, ChallengeStatus{
			ID:          challenge.ID,
			DayNumber:   challenge.DayNumber,
			Title:       challenge.Title,
			Description: challenge.Description,
			Verse:       challenge.Verse,
			Completed:   completed,
			IsCurrent:   challenge.DayNumber == currentDay,
			IsLocked:    challenge.DayNumber > currentDay,
			IsMissed:    challenge.DayNumber < currentDay && !completed,
		})
	}

	return statuses, nil
}

// catalog serves the static challenge list cache-aside: redis first, MySQL on
// miss. Cache failures only cost the round trip, never the request.
func (s *challengeService) catalog(ctx context.Context) ([]domain.Challenge, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, catalogCacheKey).Bytes()
		if err == nil {
			var challenges []domain.Challenge
			if err := json.Unmarshal(cached, &challenges); err == nil {
				return challenges, nil
			}
			logger.Error("corrupted challenge catalog in cache", zap.Error(err))
		} else if !errors.Is(err, redis.Nil) {
			logger.Error("challenge catalog cache read failed", zap.Error(err))
		}
	}

	challenges, err := s.challengeRepository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all challenges failed: %w", err)
	}

	if s.cache != nil {
		if encoded, err := json.Marshal(challenges); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, encoded, catalogCacheTTL).Err(); err != nil {
				logger.Error("challenge catalog cache write failed", zap.Error(err))
			}
		}
	}

	return challenges, nil
}
