package team

import "fmt"

const (
	ConferenceEastern = "Eastern"
	ConferenceWestern = "Western"
)

// Performance tiers rank franchises for scouting summaries.
const (
	TierChampionship = "championship"
	TierElite        = "elite"
	TierPlayoff      = "playoff"
	TierDeveloping   = "developing"
	TierRebuilding   = "rebuilding"
)

// Team is the static identity and scouting metadata for one NBA franchise.
// Identity fields come from the league-wide lookup table and never change
// during the process lifetime; metadata is used for display enrichment only,
// never for numeric computation.
type Team struct {
	ID           int64
	FullName     string
	Abbreviation string
	City         string
	Nickname     string

	Conference      string
	Division        string
	PerformanceTier string
	Championships   int
	RivalTeamIDs    []int64
	Strengths       []string
	Weaknesses      []string
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.FullName == "" {
		return fmt.Errorf("team full name is required")
	}
	if t.Abbreviation == "" {
		return fmt.Errorf("team abbreviation is required")
	}

	return nil
}
