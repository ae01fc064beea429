package service

import (
	"context"
	"testing"
	"time"

	"levelup_backend/internal/model"
	"levelup_backend/internal/questpool"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func floatPtr(v float64) *float64 { return &v }

func TestQuestService_Refresh(t *testing.T) {
	mockRepo := &mocks.MockQuestRepository{}
	service := NewQuestService(mockRepo)

	tests := []struct {
		name          string
		userID        int64
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "User not found",
			userID: 123,
			mockSetup: func() {
				mockRepo.On("GetUserByID", mock.Anything, int64(123)).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:   "Fresh user generates all periods",
			userID: 124,
			mockSetup: func() {
				mockRepo.On("GetUserByID", mock.Anything, int64(124)).
					Return(&model.User{ID: 124}, nil)

				mockRepo.On("RegenerateQuests", mock.Anything, int64(124), mock.Anything,
					mock.MatchedBy(func(batches []model.QuestBatch) bool {
						if len(batches) != 3 {
							return false
						}
						byPeriod := make(map[model.Period]model.QuestBatch)
						ids := make(map[uuid.UUID]bool)
						for _, b := range batches {
							byPeriod[b.Period] = b
							ids[b.BatchID] = true
						}
						return len(ids) == 3 &&
							len(byPeriod[model.PeriodDaily].Quests) == questpool.DailyCount &&
							len(byPeriod[model.PeriodWeekly].Quests) == questpool.WeeklyCount &&
							len(byPeriod[model.PeriodMonthly].Quests) == questpool.MonthlyCount
					})).Return(nil)
			},
		},
		{
			name:   "Biometrics add the personalized daily quest",
			userID: 125,
			mockSetup: func() {
				mockRepo.On("GetUserByID", mock.Anything, int64(125)).
					Return(&model.User{
						ID:       125,
						HeightCm: floatPtr(170),
						WeightKg: floatPtr(50),
					}, nil)

				mockRepo.On("RegenerateQuests", mock.Anything, int64(125), mock.Anything,
					mock.MatchedBy(func(batches []model.QuestBatch) bool {
						for _, b := range batches {
							if b.Period != model.PeriodDaily {
								continue
							}
							if len(b.Quests) != questpool.DailyCount+1 {
								return false
							}
							for _, q := range b.Quests {
								if q.Title == "Light Workout" && q.XP == 15 && q.BatchID == b.BatchID {
									return true
								}
							}
						}
						return false
					})).Return(nil)
			},
		},
		{
			name:   "All periods within window is a no-op",
			userID: 126,
			mockSetup: func() {
				recent := time.Now().UTC().Add(-time.Hour)
				mockRepo.On("GetUserByID", mock.Anything, int64(126)).
					Return(&model.User{
						ID:               126,
						LastDailyQuest:   &recent,
						LastWeeklyQuest:  &recent,
						LastMonthlyQuest: &recent,
					}, nil)
			},
		},
		{
			name:   "Only elapsed periods regenerate",
			userID: 127,
			mockSetup: func() {
				dayAgo := time.Now().UTC().Add(-25 * time.Hour)
				recent := time.Now().UTC().Add(-time.Hour)
				mockRepo.On("GetUserByID", mock.Anything, int64(127)).
					Return(&model.User{
						ID:               127,
						LastDailyQuest:   &dayAgo,
						LastWeeklyQuest:  &recent,
						LastMonthlyQuest: &recent,
					}, nil)

				mockRepo.On("RegenerateQuests", mock.Anything, int64(127), mock.Anything,
					mock.MatchedBy(func(batches []model.QuestBatch) bool {
						return len(batches) == 1 && batches[0].Period == model.PeriodDaily
					})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			mockRepo.Calls = nil

			tt.mockSetup()

			err := service.Refresh(context.Background(), tt.userID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestQuestService_List(t *testing.T) {
	mockRepo := &mocks.MockQuestRepository{}
	service := NewQuestService(mockRepo)

	t.Run("Unknown period rejected", func(t *testing.T) {
		_, err := service.List(context.Background(), 1, "yearly")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Empty period lists everything", func(t *testing.T) {
		mockRepo.On("ListQuests", mock.Anything, int64(1), model.Period("")).
			Return([]*model.Quest{{ID: 10, Title: "Read 10 pages"}}, nil)

		quests, err := service.List(context.Background(), 1, "")
		assert.NoError(t, err)
		assert.Len(t, quests, 1)

		mockRepo.AssertExpectations(t)
	})
}

func TestQuestService_Complete(t *testing.T) {
	mockRepo := &mocks.MockQuestRepository{}
	service := NewQuestService(mockRepo)

	tests := []struct {
		name          string
		questID       int64
		mockSetup     func()
		expectedError error
	}{
		{
			name:    "Success",
			questID: 10,
			mockSetup: func() {
				mockRepo.On("CompleteQuest", mock.Anything, int64(1), int64(10)).
					Return(&model.QuestCompletion{QuestID: 10, Points: 60, Level: 2, Rank: "E"}, nil)
			},
		},
		{
			name:    "Quest not found",
			questID: 11,
			mockSetup: func() {
				mockRepo.On("CompleteQuest", mock.Anything, int64(1), int64(11)).
					Return(nil, repository.ErrNotFound)
			},
			expectedError: ErrQuestNotFound,
		},
		{
			name:    "Already completed",
			questID: 12,
			mockSetup: func() {
				mockRepo.On("CompleteQuest", mock.Anything, int64(1), int64(12)).
					Return(nil, repository.ErrAlreadyCompleted)
			},
			expectedError: ErrQuestAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			mockRepo.Calls = nil

			tt.mockSetup()

			completion, err := service.Complete(context.Background(), 1, tt.questID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, completion)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.questID, completion.QuestID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPersonalizedDaily(t *testing.T) {
	tests := []struct {
		name          string
		heightCm      *float64
		weightKg      *float64
		expectedTitle string
		expectedXP    int
		expectedOK    bool
	}{
		{"Underweight", floatPtr(170), floatPtr(50), "Light Workout", 15, true},
		{"Overweight", floatPtr(170), floatPtr(85), "Moderate Cardio", 20, true},
		{"Normal range", floatPtr(175), floatPtr(65), "Standard Exercise", 10, true},
		{"Missing height", nil, floatPtr(65), "", 0, false},
		{"Missing weight", floatPtr(175), nil, "", 0, false},
		{"Zero height", floatPtr(0), floatPtr(65), "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, ok := personalizedDaily(&model.User{
				HeightCm: tt.heightCm,
				WeightKg: tt.weightKg,
			})

			assert.Equal(t, tt.expectedOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.expectedTitle, tmpl.Title)
			assert.Equal(t, tt.expectedXP, tmpl.XP)
			assert.Equal(t, "Physical", tmpl.Category)
			assert.Equal(t, "Medium", tmpl.Difficulty)
		})
	}
}
