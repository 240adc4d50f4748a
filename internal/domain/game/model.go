package game

// Game is one scoreboard entry for a single day. Scores are zero until the
// provider reports a line score for both sides.
type Game struct {
	ID           string
	HomeTeamID   int64
	AwayTeamID   int64
	HomeScore    int
	AwayScore    int
	StatusText   string
	StartTimeEST string
}
