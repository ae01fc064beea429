package game

// Stats are the derived secondary attributes shown on the profile page.
// They are recomputed from current counts on every read and never stored.
type Stats struct {
	Strength int
	Finance  int
	Wisdom   int
	Growth   int
	Mental   int
}

// ActivityCounts are the cumulative completed-activity counts a user has
// accrued, the inputs to stat derivation besides the raw point total.
type ActivityCounts struct {
	CompletedTasks  int
	StudyLogs       int
	CompletedQuests int
}

// DeriveStats computes the secondary attributes from the point total and
// activity counts.
func DeriveStats(points int, counts ActivityCounts) Stats {
	return Stats{
		Strength: points/10 + counts.CompletedTasks*5,
		Finance:  points/20 + counts.StudyLogs*3,
		Wisdom:   points/15 + counts.CompletedQuests*4,
		Growth:   (counts.CompletedTasks + counts.StudyLogs + counts.CompletedQuests) * 7,
		Mental:   50 + points/30,
	}
}
