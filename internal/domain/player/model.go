package player

import "github.com/hooplabs/courtside/internal/domain/stats"

// Player is one roster slot: biographical fields straight from the roster
// feed plus optional per-game averages fetched separately per player.
// Averages stays nil when the caller did not ask for player stats.
type Player struct {
	ID           int64
	Name         string
	JerseyNumber string
	Position     string
	Height       string
	Weight       string
	BirthDate    string
	Age          int
	Experience   string
	School       string

	Averages *stats.PlayerAverages
}

// Profile is the standalone player-detail record served by the player
// endpoint. Bio fields are mandatory; CurrentSeason degrades with a note
// when the stats fetch fails.
type Profile struct {
	ID            int64
	Name          string
	TeamName      string
	Position      string
	Height        string
	Weight        string
	Experience    int
	CurrentSeason *stats.PlayerAverages
	StatsNote     string
}
