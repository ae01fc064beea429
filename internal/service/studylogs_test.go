package service

import (
	"context"
	"testing"

	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStudyLogService_Add(t *testing.T) {
	mockRepo := &mocks.MockStudyLogRepository{}
	service := NewStudyLogService(mockRepo)

	tests := []struct {
		name           string
		subject        string
		duration       int
		mockSetup      func()
		expectedError  error
		expectedEarned int
	}{
		{
			name:          "Negative duration rejected",
			subject:       "Math",
			duration:      -5,
			mockSetup:     func() {},
			expectedError: ErrValidation,
		},
		{
			name:     "Points scale with duration",
			subject:  "Math",
			duration: 25,
			mockSetup: func() {
				mockRepo.On("CreateStudyLog", mock.Anything, mock.MatchedBy(func(log *model.StudyLog) bool {
					return log.Subject == "Math" && log.Duration == 25
				}), 5, 2).Return(105, nil)
			},
			expectedEarned: 5,
		},
		{
			name:     "Short session earns the minimum",
			subject:  "Math",
			duration: 3,
			mockSetup: func() {
				mockRepo.On("CreateStudyLog", mock.Anything, mock.Anything, 1, 0).
					Return(101, nil)
			},
			expectedEarned: 1,
		},
		{
			name:     "Zero duration earns the minimum",
			subject:  "Math",
			duration: 0,
			mockSetup: func() {
				mockRepo.On("CreateStudyLog", mock.Anything, mock.Anything, 1, 0).
					Return(101, nil)
			},
			expectedEarned: 1,
		},
		{
			name:     "Blank subject defaults",
			subject:  "  ",
			duration: 10,
			mockSetup: func() {
				mockRepo.On("CreateStudyLog", mock.Anything, mock.MatchedBy(func(log *model.StudyLog) bool {
					return log.Subject == "Study"
				}), 2, 1).Return(102, nil)
			},
			expectedEarned: 2,
		},
		{
			name:     "User missing",
			subject:  "Math",
			duration: 10,
			mockSetup: func() {
				mockRepo.On("CreateStudyLog", mock.Anything, mock.Anything, 2, 1).
					Return(0, repository.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			mockRepo.Calls = nil

			tt.mockSetup()

			entry, earned, total, err := service.Add(context.Background(), 1, tt.subject, tt.duration, "", "", "")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, entry)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedEarned, earned)
			assert.Greater(t, total, 0)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStudyLogService_Delete(t *testing.T) {
	mockRepo := &mocks.MockStudyLogRepository{}
	service := NewStudyLogService(mockRepo)

	t.Run("Unknown log", func(t *testing.T) {
		mockRepo.On("DeleteStudyLog", mock.Anything, int64(1), int64(99)).
			Return(repository.ErrNotFound).Once()

		err := service.Delete(context.Background(), 1, 99)
		assert.ErrorIs(t, err, ErrStudyLogNotFound)
	})
}
