package service

import (
	"fmt"
	"strings"
	"time"
)

// AssistantService answers short text commands from the dashboard
// assistant. Rules are an ordered table evaluated top to bottom; the first
// matching rule wins, so broader keywords sit below narrower ones.
type AssistantService struct {
	rules []assistantRule
}

type assistantRule struct {
	keywords []string
	respond  func(username string, now time.Time) string
}

func static(text string) func(string, time.Time) string {
	return func(string, time.Time) string { return text }
}

func NewAssistantService() *AssistantService {
	return &AssistantService{rules: assistantRules}
}

// Respond dispatches a command through the rule table. Unknown commands get
// the fallback answer.
func (s *AssistantService) Respond(command, username string, now time.Time) string {
	cmd := strings.ToLower(strings.TrimSpace(command))
	if cmd == "" {
		return "Sorry, I did not understand that command."
	}

	for _, rule := range s.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(cmd, keyword) {
				return rule.respond(username, now)
			}
		}
	}

	return "Sorry, I did not understand that command."
}

var assistantRules = []assistantRule{
	// Greetings
	{[]string{"hello", "hi", "hey", "what's up"}, func(username string, _ time.Time) string {
		return fmt.Sprintf("Hi %s, how can I assist you today?", username)
	}},
	{[]string{"how are you"}, static("I'm doing great! Ready to help you with your productivity and growth.")},
	{[]string{"good morning"}, static("Good morning! Let's start your day strong.")},
	{[]string{"good night"}, static("Good night! Rest well and recharge for tomorrow.")},

	// Task management (before navigation so "add task" beats "tasks")
	{[]string{"add task"}, static("Sure! Please enter the task title in your dashboard to add it.")},
	{[]string{"complete task"}, static("Marking your selected task as complete.")},
	{[]string{"delete task", "remove task"}, static("Select a task in the dashboard to delete it.")},
	{[]string{"list tasks", "show tasks"}, static("Here are your current tasks on the dashboard.")},
	{[]string{"next task"}, static("Your next pending task is highlighted on the dashboard.")},

	// Quests
	{[]string{"add quest"}, static("To add a new quest, please go to the quests dashboard.")},
	{[]string{"complete quest"}, static("Please select a quest to mark it as completed.")},
	{[]string{"list quests", "show quests"}, static("Here are your active quests.")},
	{[]string{"daily quest"}, static("Today's daily quest is waiting for you in the dashboard.")},

	// Academics
	{[]string{"next exam"}, static("Fetching your next exam details from the academics dashboard.")},
	{[]string{"study session"}, static("Starting a Pomodoro study session timer.")},
	{[]string{"revision", "revise"}, static("Reminder: It's time for a quick revision session.")},
	{[]string{"add subject"}, static("Please enter the new subject name in your academics dashboard.")},

	// Navigation
	{[]string{"tasks"}, static("Opening your tasks dashboard.")},
	{[]string{"academics", "study"}, static("Opening your academics dashboard.")},
	{[]string{"quests"}, static("Opening your quests dashboard.")},
	{[]string{"profile", "my account"}, static("Opening your profile page.")},
	{[]string{"developers", "team"}, static("Opening the developers page.")},

	// Motivation & feedback
	{[]string{"motivate me", "i'm tired"}, static("Stay strong! Remember why you started, success is on its way.")},
	{[]string{"give me advice"}, static("Focus on one thing at a time. Consistency beats intensity.")},
	{[]string{"congratulations", "i finished"}, static("Great job! You're one step closer to your goals.")},

	// Utility
	{[]string{"time"}, func(_ string, now time.Time) string {
		return fmt.Sprintf("The current time is %s.", now.Format("3:04 PM"))
	}},
	{[]string{"date", "today"}, func(_ string, now time.Time) string {
		return fmt.Sprintf("Today is %s.", now.Format("Monday, January 2, 2006"))
	}},
	{[]string{"help", "commands"}, static("You can ask me to manage tasks, academics, quests, or motivate you.")},

	// Terminate
	{[]string{"terminate", "close assistant", "stop listening"}, static("Voice assistant closed. Say 'Arise' to wake me up again.")},
}
