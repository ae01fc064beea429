package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssistantService_Respond(t *testing.T) {
	service := NewAssistantService()
	now := time.Date(2025, time.March, 14, 15, 4, 0, 0, time.UTC)

	tests := []struct {
		name     string
		command  string
		expected string
	}{
		{
			name:     "Greeting uses the username",
			command:  "Hello there",
			expected: "Hi hunter, how can I assist you today?",
		},
		{
			name:     "Matching is case insensitive",
			command:  "  GOOD MORNING  ",
			expected: "Good morning! Let's start your day strong.",
		},
		{
			name:     "Add task beats plain tasks navigation",
			command:  "please add task for me",
			expected: "Sure! Please enter the task title in your dashboard to add it.",
		},
		{
			name:     "Plain tasks opens the dashboard",
			command:  "open my tasks",
			expected: "Opening your tasks dashboard.",
		},
		{
			name:     "Daily quest beats quests navigation",
			command:  "show my daily quest",
			expected: "Today's daily quest is waiting for you in the dashboard.",
		},
		{
			name:     "Time command formats the clock",
			command:  "what time is it",
			expected: "The current time is 3:04 PM.",
		},
		{
			name:     "Date command formats the day",
			command:  "what's the date",
			expected: "Today is Friday, March 14, 2025.",
		},
		{
			name:     "Unknown command falls through",
			command:  "juggle flaming swords",
			expected: "Sorry, I did not understand that command.",
		},
		{
			name:     "Empty command falls through",
			command:  "   ",
			expected: "Sorry, I did not understand that command.",
		},
		{
			name:     "Terminate",
			command:  "stop listening",
			expected: "Voice assistant closed. Say 'Arise' to wake me up again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.Respond(tt.command, "hunter", now))
		})
	}
}

func TestAssistantService_RuleOrder(t *testing.T) {
	service := NewAssistantService()
	now := time.Now()

	// Commands containing both a specific action and a navigation keyword
	// must resolve to the action rule.
	assert.Equal(t,
		"Marking your selected task as complete.",
		service.Respond("complete task from my tasks list", "hunter", now))
	assert.Equal(t,
		"Please select a quest to mark it as completed.",
		service.Respond("complete quest in quests", "hunter", now))
}
