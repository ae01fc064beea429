package questpool

import (
	"fmt"

	"levelup_backend/internal/model"
)

// poolSize is the size every catalog is padded to with generated filler
// templates so each period samples from an equally sized pool.
const poolSize = 50

var dailyPool = padPool(model.PeriodDaily, []Template{
	{Title: "Read 20 pages of a book", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Practice coding for 30 minutes", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Meditate for 10 minutes", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
	{Title: "Do 20 push-ups", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Perform 10 pull-ups", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Medium", XP: 25},
	{Title: "Solve 3 logic puzzles", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Spend 20 minutes learning finance basics", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Write down 3 business ideas", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Stretch for 10 minutes", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
	{Title: "Do 30 squats", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Practice shadow boxing for 15 minutes", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Medium", XP: 25},
	{Title: "Run 2 km", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Try 5 new yoga poses", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Solve 5 Sudoku puzzles", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Complete a brain teaser", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Practice memory exercise for 10 minutes", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Write a journal entry", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
	{Title: "Learn 5 new vocabulary words", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Review 10 math problems", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Read an article on finance", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
	{Title: "Track your daily expenses", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Medium", XP: 15},
	{Title: "Plan tomorrow's budget", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Do 15 lunges per leg", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Meditate using guided audio", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Solve 2 logic grid puzzles", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Medium", XP: 25},
	{Title: "Learn a new programming concept", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Medium", XP: 25},
	{Title: "Watch an educational video", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Practice 5 minutes of mindfulness breathing", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
	{Title: "Do 50 jumping jacks", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Perform 20 sit-ups", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Learn about investing basics", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Research 1 small business idea", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Solve a daily crossword", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
	{Title: "Read a news article and summarize it", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Walk 3 km", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Practice MMA combinations for 10 minutes", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Hard", XP: 30},
	{Title: "Complete a small coding challenge", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Medium", XP: 25},
	{Title: "Track your daily water intake", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
	{Title: "Spend 15 minutes learning a new language", Category: "Academics", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Solve a math puzzle", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Medium", XP: 20},
	{Title: "Check your savings progress", Category: "Financial", Period: model.PeriodDaily, Difficulty: "Easy", XP: 15},
	{Title: "Practice 10 burpees", Category: "Physical", Period: model.PeriodDaily, Difficulty: "Medium", XP: 25},
	{Title: "Write down 3 things you are grateful for", Category: "Mental", Period: model.PeriodDaily, Difficulty: "Easy", XP: 10},
})

var weeklyPool = padPool(model.PeriodWeekly, []Template{
	{Title: "Finish one small project", Category: "Project", Period: model.PeriodWeekly, Difficulty: "Hard", XP: 80},
	{Title: "Workout 4 times this week", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Hard", XP: 70},
	{Title: "Solve 10 logic problems", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Research 3 side hustles", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 40},
	{Title: "Read 1 chapter of a book daily", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Complete 3 coding exercises", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Meditate for 20 minutes total this week", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Easy", XP: 40},
	{Title: "Do 100 push-ups total this week", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Attend 1 online workshop", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Run or walk 10 km total this week", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Track all expenses for the week", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Plan next week's schedule", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Easy", XP: 40},
	{Title: "Learn 5 new logical reasoning techniques", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Practice MMA or self-defense 2 times", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Read an article on financial education", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Easy", XP: 40},
	{Title: "Complete a mini coding project", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Hard", XP: 70},
	{Title: "Do 50 burpees total this week", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Solve a weekly crossword puzzle", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Write a reflection journal for 3 days", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Easy", XP: 40},
	{Title: "Try 1 new side hustle idea", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Do 3 strength training workouts", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Read 1 technical article", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Solve 10 brain teasers", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Complete 2 high-intensity cardio sessions", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Hard", XP: 70},
	{Title: "Research 1 small business opportunity", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Learn a new concept in your study field", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Plan 1 healthy meal plan for the week", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Easy", XP: 40},
	{Title: "Do 3 flexibility exercises sessions", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Track your net worth weekly", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Solve 1 logic grid puzzle", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Complete 1 online quiz", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Easy", XP: 40},
	{Title: "Do 3 sets of MMA drills", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Hard", XP: 70},
	{Title: "Write 1 financial reflection journal", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Practice mindfulness daily for a week", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Complete 1 mini research project", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Run 5 km in a single session", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Complete 2 coding challenges", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Plan a budget for next week", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Do 3 full-body workouts", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Hard", XP: 70},
	{Title: "Read 1 book summary", Category: "Academics", Period: model.PeriodWeekly, Difficulty: "Easy", XP: 40},
	{Title: "Practice visualization and mental focus exercises", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Complete 1 side hustle task", Category: "Financial", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
	{Title: "Do 50 lunges per leg", Category: "Physical", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 60},
	{Title: "Learn and apply 1 new problem-solving strategy", Category: "Mental", Period: model.PeriodWeekly, Difficulty: "Medium", XP: 50},
})

var monthlyPool = padPool(model.PeriodMonthly, []Template{
	{Title: "Complete a mini-course", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Read a full book", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Complete a financial plan for the month", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 180},
	{Title: "Achieve a fitness milestone", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 170},
	{Title: "Solve 50 logic puzzles", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 160},
	{Title: "Complete a 30-day workout challenge", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 180},
	{Title: "Learn a new programming language basics", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Meditate 15 minutes daily for a month", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Read 2 books", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 180},
	{Title: "Track all monthly expenses", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Research and start one side hustle", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Complete 4 long-distance runs", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 160},
	{Title: "Solve 100 logic puzzles", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 180},
	{Title: "Complete one advanced coding project", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 220},
	{Title: "Create a monthly investment plan", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Practice MMA or self-defense 8 times", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 180},
	{Title: "Complete one online course", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Track 30 days of mindfulness or journaling", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Create a small business prototype", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 220},
	{Title: "Read financial news daily", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Achieve a personal best in running or cycling", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Solve a complex puzzle game", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 180},
	{Title: "Plan and follow a healthy meal plan", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Write a monthly reflection journal", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Easy", XP: 120},
	{Title: "Learn investment strategies for beginners", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Attend a workshop or webinar", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 160},
	{Title: "Complete 20 home workouts", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Read a book on entrepreneurship", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Complete a 30-day flexibility challenge", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 160},
	{Title: "Complete a 30-day coding challenge", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 220},
	{Title: "Plan and execute one mini-project", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 160},
	{Title: "Write a 5-page essay on a chosen topic", Category: "Academics", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 160},
	{Title: "Complete a 30-day strength training challenge", Category: "Physical", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Solve 50 advanced brain teasers", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Read one personal development book", Category: "Mental", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 150},
	{Title: "Complete a finance-related online course", Category: "Financial", Period: model.PeriodMonthly, Difficulty: "Hard", XP: 200},
	{Title: "Complete a personal 30-day challenge of your choice", Category: "Mixed", Period: model.PeriodMonthly, Difficulty: "Medium", XP: 160},
})

// padPool tops a catalog up to poolSize with generated filler templates so
// every period samples from the same sized pool.
func padPool(period model.Period, pool []Template) []Template {
	label := "Daily"
	baseXP := 10
	difficulty := "Easy"
	switch period {
	case model.PeriodWeekly:
		label = "Weekly"
		baseXP = 40
		difficulty = "Medium"
	case model.PeriodMonthly:
		label = "Monthly"
		baseXP = 150
		difficulty = "Medium"
	}

	for i := len(pool) + 1; len(pool) < poolSize; i++ {
		pool = append(pool, Template{
			Title:      fmt.Sprintf("%s Quest #%d", label, i),
			Category:   "Mixed",
			Period:     period,
			Difficulty: difficulty,
			XP:         baseXP + i,
		})
	}
	return pool
}
