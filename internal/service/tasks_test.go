package service

import (
	"context"
	"strings"
	"testing"

	"levelup_backend/internal/model"
	"levelup_backend/internal/repository"
	"levelup_backend/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestTaskService_Create(t *testing.T) {
	mockRepo := &mocks.MockTaskRepository{}
	service := NewTaskService(mockRepo)

	t.Run("Empty title rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), 1, "  ", "", nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Overlong title rejected", func(t *testing.T) {
		_, err := service.Create(context.Background(), 1, strings.Repeat("x", maxTaskTitleLength+1), "", nil)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Title trimmed on create", func(t *testing.T) {
		mockRepo.On("CreateTask", mock.Anything, mock.MatchedBy(func(task *model.Task) bool {
			return task.UserID == 1 && task.Title == "Morning run"
		})).Return(nil).Once()

		task, err := service.Create(context.Background(), 1, "  Morning run  ", "5km", nil)
		assert.NoError(t, err)
		assert.Equal(t, "Morning run", task.Title)

		mockRepo.AssertExpectations(t)
	})
}

func TestTaskService_Complete(t *testing.T) {
	mockRepo := &mocks.MockTaskRepository{}
	service := NewTaskService(mockRepo)

	tests := []struct {
		name          string
		taskID        int64
		mockSetup     func()
		expectedError error
		expectedTotal int
	}{
		{
			name:   "Awards the flat reward",
			taskID: 10,
			mockSetup: func() {
				mockRepo.On("CompleteTask", mock.Anything, int64(1), int64(10), TaskCompletionXP, TaskStrengthBonus).
					Return(110, nil)
			},
			expectedTotal: 110,
		},
		{
			name:   "Task not found",
			taskID: 11,
			mockSetup: func() {
				mockRepo.On("CompleteTask", mock.Anything, int64(1), int64(11), TaskCompletionXP, TaskStrengthBonus).
					Return(0, repository.ErrNotFound)
			},
			expectedError: ErrTaskNotFound,
		},
		{
			name:   "Already completed",
			taskID: 12,
			mockSetup: func() {
				mockRepo.On("CompleteTask", mock.Anything, int64(1), int64(12), TaskCompletionXP, TaskStrengthBonus).
					Return(0, repository.ErrAlreadyCompleted)
			},
			expectedError: ErrTaskAlreadyCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.ExpectedCalls = nil
			mockRepo.Calls = nil

			tt.mockSetup()

			total, err := service.Complete(context.Background(), 1, tt.taskID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedTotal, total)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Rename(t *testing.T) {
	mockRepo := &mocks.MockTaskRepository{}
	service := NewTaskService(mockRepo)

	t.Run("Empty title rejected", func(t *testing.T) {
		err := service.Rename(context.Background(), 1, 10, "")
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Foreign task looks absent", func(t *testing.T) {
		mockRepo.On("UpdateTaskTitle", mock.Anything, int64(1), int64(10), "New title").
			Return(repository.ErrNotFound).Once()

		err := service.Rename(context.Background(), 1, 10, "New title")
		assert.ErrorIs(t, err, ErrTaskNotFound)
	})
}
