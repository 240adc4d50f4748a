package team

// Standing is one row of the league table as reported by the stats
// provider. Ranks are 1-based within conference and division.
type Standing struct {
	TeamID         int64
	TeamName       string
	Wins           int
	Losses         int
	WinPct         float64
	ConferenceRank int
	DivisionRank   int
	Conference     string
}
