package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/compagnon-careme/backend/internal/campaign"
	"github.com/compagnon-careme/backend/internal/domain"
)

func testCalendar() *campaign.Calendar {
	return campaign.NewCalendar(time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC), 40)
}

func campaignDay(day int) time.Time {
	return time.Date(2026, time.February, 18, 9, 0, 0, 0, time.UTC).AddDate(0, 0, day-1)
}

func testCatalog(days int) []domain.Challenge {
	challenges := make([]domain.Challenge, 0, days)
	for day := 1; day <= days; day++ {
		challenges = append(challenges, domain.Challenge{
			ID:        uuid.New(),
			DayNumber: day,
			Title:     "Défi",
			Verse:     "Jean 3:16",
		})
	}
	return challenges
}

func TestChallengeService_CompleteToday(t *testing.T) {
	userID := uuid.New()

	t.Run("out of campaign", func(t *testing.T) {
		userChallenges := new(userChallengesRepoMock)
		s := newChallengeService(new(challengesRepoMock), userChallenges, testCalendar(), nil)

		err := s.CompleteToday(context.Background(), userID, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrOutOfCampaign)
		userChallenges.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("before campaign", func(t *testing.T) {
		s := newChallengeService(new(challengesRepoMock), new(userChallengesRepoMock), testCalendar(), nil)

		err := s.CompleteToday(context.Background(), userID, time.Date(2026, time.February, 17, 23, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrOutOfCampaign)
	})

	t.Run("success records the resolved day", func(t *testing.T) {
		var created *domain.UserChallenge
		userChallenges := new(userChallengesRepoMock)
		userChallenges.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.UserChallenge)
		}).Return(nil)

		s := newChallengeService(new(challengesRepoMock), userChallenges, testCalendar(), nil)

		require.NoError(t, s.CompleteToday(context.Background(), userID, campaignDay(5)))
		require.NotNil(t, created)
		assert.Equal(t, userID, created.UserID)
		assert.Equal(t, 5, created.DayNumber)
		assert.True(t, created.Completed)
	})

	t.Run("second completion of the same day", func(t *testing.T) {
		userChallenges := new(userChallengesRepoMock)
		userChallenges.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry)

		s := newChallengeService(new(challengesRepoMock), userChallenges, testCalendar(), nil)

		err := s.CompleteToday(context.Background(), userID, campaignDay(5))
		assert.ErrorIs(t, err, ErrChallengeAlreadyCompleted)
	})
}

func TestChallengeService_Today(t *testing.T) {
	userID := uuid.New()

	t.Run("out of campaign", func(t *testing.T) {
		s := newChallengeService(new(challengesRepoMock), new(userChallengesRepoMock), testCalendar(), nil)

		_, err := s.Today(context.Background(), userID, time.Date(2026, time.March, 30, 0, 0, 0, 0, time.UTC))
		assert.ErrorIs(t, err, ErrOutOfCampaign)
	})

	t.Run("not yet completed", func(t *testing.T) {
		challenge := &domain.Challenge{ID: uuid.New(), DayNumber: 12, Title: "Défi", Verse: "Psaume 23:1"}

		challenges := new(challengesRepoMock)
		challenges.On("GetByDayNumber", mock.Anything, 12).Return(challenge, nil)

		userChallenges := new(userChallengesRepoMock)
		userChallenges.On("GetOne", mock.Anything, userID, 12).Return(nil, domain.ErrNotFound)
		userChallenges.On("CountByUser", mock.Anything, userID).Return(3, nil)

		s := newChallengeService(challenges, userChallenges, testCalendar(), nil)

		today, err := s.Today(context.Background(), userID, campaignDay(12))
		require.NoError(t, err)
		assert.Equal(t, 12, today.Day)
		assert.Equal(t, "3/40", today.Progression)
		assert.Equal(t, challenge, today.Challenge)
		assert.False(t, today.Completed)
	})

	t.Run("already completed", func(t *testing.T) {
		challenge := &domain.Challenge{ID: uuid.New(), DayNumber: 1, Title: "Défi"}

		challenges := new(challengesRepoMock)
		challenges.On("GetByDayNumber", mock.Anything, 1).Return(challenge, nil)

		userChallenges := new(userChallengesRepoMock)
		userChallenges.On("GetOne", mock.Anything, userID, 1).Return(&domain.UserChallenge{UserID: userID, DayNumber: 1}, nil)
		userChallenges.On("CountByUser", mock.Anything, userID).Return(1, nil)

		s := newChallengeService(challenges, userChallenges, testCalendar(), nil)

		today, err := s.Today(context.Background(), userID, campaignDay(1))
		require.NoError(t, err)
		assert.True(t, today.Completed)
		assert.Equal(t, "1/40", today.Progression)
	})
}

func TestChallengeService_GetAll_OnDayFive(t *testing.T) {
	userID := uuid.New()

	challenges := new(challengesRepoMock)
	challenges.On("GetAll", mock.Anything).Return(testCatalog(40), nil)

	// days 1 and 3 completed, 2 and 4 skipped
	userChallenges := new(userChallengesRepoMock)
	userChallenges.On("GetAllByUser", mock.Anything, userID).Return([]domain.UserChallenge{
		{UserID: userID, DayNumber: 1},
		{UserID: userID, DayNumber: 3},
	}, nil)

	s := newChallengeService(challenges, userChallenges, testCalendar(), nil)

	statuses, err := s.GetAll(context.Background(), userID, campaignDay(5))
	require.NoError(t, err)
	require.Len(t, statuses, 40)

	for _, status := range statuses {
		switch {
		case status.DayNumber < 5:
			completed := status.DayNumber == 1 || status.DayNumber == 3
			assert.Equal(t, completed, status.Completed, "day %d", status.DayNumber)
			assert.Equal(t, !completed, status.IsMissed, "day %d", status.DayNumber)
			assert.False(t, status.IsCurrent, "day %d", status.DayNumber)
			assert.False(t, status.IsLocked, "day %d", status.DayNumber)
		case status.DayNumber == 5:
			assert.True(t, status.IsCurrent)
			assert.False(t, status.IsLocked)
			assert.False(t, status.IsMissed)
		default:
			assert.True(t, status.IsLocked, "day %d", status.DayNumber)
			assert.False(t, status.IsCurrent, "day %d", status.DayNumber)
			assert.False(t, status.IsMissed, "day %d", status.DayNumber)
		}
	}
}

func TestChallengeService_GetAll_BeforeCampaign(t *testing.T) {
	userID := uuid.New()

	challenges := new(challengesRepoMock)
	challenges.On("GetAll", mock.Anything).Return(testCatalog(40), nil)

	userChallenges := new(userChallengesRepoMock)
	userChallenges.On("GetAllByUser", mock.Anything, userID).Return([]domain.UserChallenge{}, nil)

	s := newChallengeService(challenges, userChallenges, testCalendar(), nil)

	statuses, err := s.GetAll(context.Background(), userID, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	for _, status := range statuses {
		assert.True(t, status.IsLocked, "day %d", status.DayNumber)
		assert.False(t, status.IsCurrent, "day %d", status.DayNumber)
		assert.False(t, status.IsMissed, "day %d", status.DayNumber)
	}
}

func TestChallengeService_GetAll_AfterCampaign(t *testing.T) {
	userID := uuid.New()

	challenges := new(challengesRepoMock)
	challenges.On("GetAll", mock.Anything).Return(testCatalog(40), nil)

	userChallenges := new(userChallengesRepoMock)
	userChallenges.On("GetAllByUser", mock.Anything, userID).Return([]domain.UserChallenge{
		{UserID: userID, DayNumber: 40},
	}, nil)

	s := newChallengeService(challenges, userChallenges, testCalendar(), nil)

	statuses, err := s.GetAll(context.Background(), userID, time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	for _, status := range statuses {
		assert.False(t, status.IsLocked, "day %d", status.DayNumber)
		assert.False(t, status.IsCurrent, "day %d", status.DayNumber)
		if status.DayNumber == 40 {
			assert.True(t, status.Completed)
			assert.False(t, status.IsMissed)
		} else {
			assert.True(t, status.IsMissed, "day %d", status.DayNumber)
		}
	}
}
