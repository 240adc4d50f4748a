package memory

import "github.com/hooplabs/courtside/internal/domain/team"

// Franchise IDs follow the league's own numbering so identifiers line up
// with what the stats provider returns.
const (
	TeamIDHawks        int64 = 1610612737
	TeamIDCeltics      int64 = 1610612738
	TeamIDCavaliers    int64 = 1610612739
	TeamIDPelicans     int64 = 1610612740
	TeamIDBulls        int64 = 1610612741
	TeamIDMavericks    int64 = 1610612742
	TeamIDNuggets      int64 = 1610612743
	TeamIDWarriors     int64 = 1610612744
	TeamIDRockets      int64 = 1610612745
	TeamIDClippers     int64 = 1610612746
	TeamIDLakers       int64 = 1610612747
	TeamIDHeat         int64 = 1610612748
	TeamIDBucks        int64 = 1610612749
	TeamIDTimberwolves int64 = 1610612750
	TeamIDNets         int64 = 1610612751
	TeamIDKnicks       int64 = 1610612752
	TeamIDMagic        int64 = 1610612753
	TeamIDPacers       int64 = 1610612754
	TeamIDSixers       int64 = 1610612755
	TeamIDSuns         int64 = 1610612756
	TeamIDTrailBlazers int64 = 1610612757
	TeamIDKings        int64 = 1610612758
	TeamIDSpurs        int64 = 1610612759
	TeamIDThunder      int64 = 1610612760
	TeamIDRaptors      int64 = 1610612761
	TeamIDJazz         int64 = 1610612762
	TeamIDGrizzlies    int64 = 1610612763
	TeamIDWizards      int64 = 1610612764
	TeamIDPistons      int64 = 1610612765
	TeamIDHornets      int64 = 1610612766
)

// SeedTeams returns the full 30-franchise catalog with scouting metadata.
func SeedTeams() []team.Team {
	return []team.Team{
		{
			ID: TeamIDCeltics, FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Nickname: "Celtics",
			Conference: team.ConferenceEastern, Division: "Atlantic", PerformanceTier: team.TierChampionship, Championships: 17,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDKnicks, TeamIDSixers},
			Strengths:    []string{"Championship experience", "Two-way play"},
			Weaknesses:   []string{"Depth concerns", "Interior presence"},
		},
		{
			ID: TeamIDNets, FullName: "Brooklyn Nets", Abbreviation: "BRK", City: "Brooklyn", Nickname: "Nets",
			Conference: team.ConferenceEastern, Division: "Atlantic", PerformanceTier: team.TierDeveloping, Championships: 0,
			RivalTeamIDs: []int64{TeamIDKnicks, TeamIDCeltics, TeamIDSixers},
			Strengths:    []string{"Young talent", "Modern facility"},
			Weaknesses:   []string{"Rebuilding phase", "Chemistry building"},
		},
		{
			ID: TeamIDKnicks, FullName: "New York Knicks", Abbreviation: "NYK", City: "New York", Nickname: "Knicks",
			Conference: team.ConferenceEastern, Division: "Atlantic", PerformanceTier: team.TierPlayoff, Championships: 2,
			RivalTeamIDs: []int64{TeamIDCeltics, TeamIDNets, TeamIDHeat},
			Strengths:    []string{"Home court advantage", "Defensive identity"},
			Weaknesses:   []string{"Offensive consistency", "Star power"},
		},
		{
			ID: TeamIDSixers, FullName: "Philadelphia 76ers", Abbreviation: "PHI", City: "Philadelphia", Nickname: "76ers",
			Conference: team.ConferenceEastern, Division: "Atlantic", PerformanceTier: team.TierPlayoff, Championships: 3,
			RivalTeamIDs: []int64{TeamIDCeltics, TeamIDKnicks, TeamIDNets},
			Strengths:    []string{"Elite center", "Playoff experience"},
			Weaknesses:   []string{"Health concerns", "Depth"},
		},
		{
			ID: TeamIDRaptors, FullName: "Toronto Raptors", Abbreviation: "TOR", City: "Toronto", Nickname: "Raptors",
			Conference: team.ConferenceEastern, Division: "Atlantic", PerformanceTier: team.TierDeveloping, Championships: 1,
			RivalTeamIDs: []int64{TeamIDCeltics, TeamIDSixers, TeamIDBucks},
			Strengths:    []string{"Length", "Development"},
			Weaknesses:   []string{"Offensive creation", "Star power"},
		},
		{
			ID: TeamIDBulls, FullName: "Chicago Bulls", Abbreviation: "CHI", City: "Chicago", Nickname: "Bulls",
			Conference: team.ConferenceEastern, Division: "Central", PerformanceTier: team.TierDeveloping, Championships: 6,
			RivalTeamIDs: []int64{TeamIDPistons, TeamIDKnicks, TeamIDHeat},
			Strengths:    []string{"Scoring ability", "Veteran leadership"},
			Weaknesses:   []string{"Three-point shooting", "Defensive rebounding"},
		},
		{
			ID: TeamIDCavaliers, FullName: "Cleveland Cavaliers", Abbreviation: "CLE", City: "Cleveland", Nickname: "Cavaliers",
			Conference: team.ConferenceEastern, Division: "Central", PerformanceTier: team.TierPlayoff, Championships: 1,
			RivalTeamIDs: []int64{TeamIDWarriors, TeamIDCeltics, TeamIDPistons},
			Strengths:    []string{"Backcourt scoring", "Young core"},
			Weaknesses:   []string{"Frontcourt depth", "Playoff experience"},
		},
		{
			ID: TeamIDPistons, FullName: "Detroit Pistons", Abbreviation: "DET", City: "Detroit", Nickname: "Pistons",
			Conference: team.ConferenceEastern, Division: "Central", PerformanceTier: team.TierRebuilding, Championships: 3,
			RivalTeamIDs: []int64{TeamIDBulls, TeamIDPacers, TeamIDCavaliers},
			Strengths:    []string{"Young talent", "Rebuild potential"},
			Weaknesses:   []string{"Experience", "Shooting consistency"},
		},
		{
			ID: TeamIDPacers, FullName: "Indiana Pacers", Abbreviation: "IND", City: "Indianapolis", Nickname: "Pacers",
			Conference: team.ConferenceEastern, Division: "Central", PerformanceTier: team.TierPlayoff, Championships: 0,
			RivalTeamIDs: []int64{TeamIDPistons, TeamIDBulls, TeamIDHeat},
			Strengths:    []string{"Balanced roster", "Team chemistry"},
			Weaknesses:   []string{"Star power", "Playoff experience"},
		},
		{
			ID: TeamIDBucks, FullName: "Milwaukee Bucks", Abbreviation: "MIL", City: "Milwaukee", Nickname: "Bucks",
			Conference: team.ConferenceEastern, Division: "Central", PerformanceTier: team.TierElite, Championships: 2,
			RivalTeamIDs: []int64{TeamIDBulls, TeamIDCeltics, TeamIDHeat},
			Strengths:    []string{"MVP talent", "Length"},
			Weaknesses:   []string{"Playoff consistency", "Bench scoring"},
		},
		{
			ID: TeamIDHawks, FullName: "Atlanta Hawks", Abbreviation: "ATL", City: "Atlanta", Nickname: "Hawks",
			Conference: team.ConferenceEastern, Division: "Southeast", PerformanceTier: team.TierDeveloping, Championships: 1,
			RivalTeamIDs: []int64{TeamIDCeltics, TeamIDHeat, TeamIDBulls},
			Strengths:    []string{"Young core", "High-scoring offense"},
			Weaknesses:   []string{"Defensive consistency", "Rebounding"},
		},
		{
			ID: TeamIDHornets, FullName: "Charlotte Hornets", Abbreviation: "CHA", City: "Charlotte", Nickname: "Hornets",
			Conference: team.ConferenceEastern, Division: "Southeast", PerformanceTier: team.TierDeveloping, Championships: 0,
			RivalTeamIDs: []int64{TeamIDHawks, TeamIDHeat, TeamIDWizards},
			Strengths:    []string{"Athletic wings", "Fast-paced offense"},
			Weaknesses:   []string{"Defensive identity", "Veteran leadership"},
		},
		{
			ID: TeamIDHeat, FullName: "Miami Heat", Abbreviation: "MIA", City: "Miami", Nickname: "Heat",
			Conference: team.ConferenceEastern, Division: "Southeast", PerformanceTier: team.TierPlayoff, Championships: 3,
			RivalTeamIDs: []int64{TeamIDCeltics, TeamIDKnicks, TeamIDBulls},
			Strengths:    []string{"Culture", "Playoff experience"},
			Weaknesses:   []string{"Offensive consistency", "Aging stars"},
		},
		{
			ID: TeamIDMagic, FullName: "Orlando Magic", Abbreviation: "ORL", City: "Orlando", Nickname: "Magic",
			Conference: team.ConferenceEastern, Division: "Southeast", PerformanceTier: team.TierDeveloping, Championships: 0,
			RivalTeamIDs: []int64{TeamIDHeat, TeamIDHawks, TeamIDHornets},
			Strengths:    []string{"Young core", "Length"},
			Weaknesses:   []string{"Shooting", "Experience"},
		},
		{
			ID: TeamIDWizards, FullName: "Washington Wizards", Abbreviation: "WAS", City: "Washington", Nickname: "Wizards",
			Conference: team.ConferenceEastern, Division: "Southeast", PerformanceTier: team.TierRebuilding, Championships: 1,
			RivalTeamIDs: []int64{TeamIDBulls, TeamIDCavaliers, TeamIDHawks},
			Strengths:    []string{"Veteran presence", "Scoring ability"},
			Weaknesses:   []string{"Defense", "Consistency"},
		},
		{
			ID: TeamIDNuggets, FullName: "Denver Nuggets", Abbreviation: "DEN", City: "Denver", Nickname: "Nuggets",
			Conference: team.ConferenceWestern, Division: "Northwest", PerformanceTier: team.TierChampionship, Championships: 1,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDWarriors, TeamIDJazz},
			Strengths:    []string{"Championship experience", "Elite center play"},
			Weaknesses:   []string{"Perimeter defense", "Depth concerns"},
		},
		{
			ID: TeamIDTimberwolves, FullName: "Minnesota Timberwolves", Abbreviation: "MIN", City: "Minneapolis", Nickname: "Timberwolves",
			Conference: team.ConferenceWestern, Division: "Northwest", PerformanceTier: team.TierDeveloping, Championships: 0,
			RivalTeamIDs: []int64{TeamIDNuggets, TeamIDJazz, TeamIDTrailBlazers},
			Strengths:    []string{"Young athleticism", "Offensive potential"},
			Weaknesses:   []string{"Defensive consistency", "Experience"},
		},
		{
			ID: TeamIDThunder, FullName: "Oklahoma City Thunder", Abbreviation: "OKC", City: "Oklahoma City", Nickname: "Thunder",
			Conference: team.ConferenceWestern, Division: "Northwest", PerformanceTier: team.TierDeveloping, Championships: 1,
			RivalTeamIDs: []int64{TeamIDWarriors, TeamIDRockets, TeamIDLakers},
			Strengths:    []string{"Young talent", "Draft capital"},
			Weaknesses:   []string{"Experience", "Veteran leadership"},
		},
		{
			ID: TeamIDTrailBlazers, FullName: "Portland Trail Blazers", Abbreviation: "POR", City: "Portland", Nickname: "Trail Blazers",
			Conference: team.ConferenceWestern, Division: "Northwest", PerformanceTier: team.TierRebuilding, Championships: 1,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDWarriors},
			Strengths:    []string{"Three-point shooting", "Loyalty"},
			Weaknesses:   []string{"Defense", "Frontcourt"},
		},
		{
			ID: TeamIDJazz, FullName: "Utah Jazz", Abbreviation: "UTA", City: "Salt Lake City", Nickname: "Jazz",
			Conference: team.ConferenceWestern, Division: "Northwest", PerformanceTier: team.TierRebuilding, Championships: 0,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDRockets, TeamIDNuggets},
			Strengths:    []string{"Shooting", "Team play"},
			Weaknesses:   []string{"Star power", "Athleticism"},
		},
		{
			ID: TeamIDWarriors, FullName: "Golden State Warriors", Abbreviation: "GSW", City: "Golden State", Nickname: "Warriors",
			Conference: team.ConferenceWestern, Division: "Pacific", PerformanceTier: team.TierElite, Championships: 7,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDCavaliers, TeamIDClippers},
			Strengths:    []string{"Three-point shooting", "Championship DNA"},
			Weaknesses:   []string{"Aging core", "Bench depth"},
		},
		{
			ID: TeamIDClippers, FullName: "LA Clippers", Abbreviation: "LAC", City: "Los Angeles", Nickname: "Clippers",
			Conference: team.ConferenceWestern, Division: "Pacific", PerformanceTier: team.TierPlayoff, Championships: 0,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDWarriors, TeamIDSuns},
			Strengths:    []string{"Two-way wings", "Depth"},
			Weaknesses:   []string{"Health concerns", "Chemistry"},
		},
		{
			ID: TeamIDLakers, FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Nickname: "Lakers",
			Conference: team.ConferenceWestern, Division: "Pacific", PerformanceTier: team.TierElite, Championships: 17,
			RivalTeamIDs: []int64{TeamIDCeltics, TeamIDWarriors, TeamIDClippers},
			Strengths:    []string{"Superstar talent", "Championship experience"},
			Weaknesses:   []string{"Age concerns", "Depth"},
		},
		{
			ID: TeamIDSuns, FullName: "Phoenix Suns", Abbreviation: "PHX", City: "Phoenix", Nickname: "Suns",
			Conference: team.ConferenceWestern, Division: "Pacific", PerformanceTier: team.TierPlayoff, Championships: 0,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDSpurs, TeamIDWarriors},
			Strengths:    []string{"Veteran experience", "Offensive firepower"},
			Weaknesses:   []string{"Age concerns", "Depth"},
		},
		{
			ID: TeamIDKings, FullName: "Sacramento Kings", Abbreviation: "SAC", City: "Sacramento", Nickname: "Kings",
			Conference: team.ConferenceWestern, Division: "Pacific", PerformanceTier: team.TierDeveloping, Championships: 1,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDWarriors, TeamIDClippers},
			Strengths:    []string{"Fast pace", "Team chemistry"},
			Weaknesses:   []string{"Defense", "Playoff experience"},
		},
		{
			ID: TeamIDMavericks, FullName: "Dallas Mavericks", Abbreviation: "DAL", City: "Dallas", Nickname: "Mavericks",
			Conference: team.ConferenceWestern, Division: "Southwest", PerformanceTier: team.TierPlayoff, Championships: 1,
			RivalTeamIDs: []int64{TeamIDSpurs, TeamIDRockets, TeamIDHeat},
			Strengths:    []string{"Elite playmaking", "Clutch performance"},
			Weaknesses:   []string{"Defensive consistency", "Frontcourt depth"},
		},
		{
			ID: TeamIDRockets, FullName: "Houston Rockets", Abbreviation: "HOU", City: "Houston", Nickname: "Rockets",
			Conference: team.ConferenceWestern, Division: "Southwest", PerformanceTier: team.TierRebuilding, Championships: 2,
			RivalTeamIDs: []int64{TeamIDSpurs, TeamIDMavericks, TeamIDWarriors},
			Strengths:    []string{"Young core", "Athletic ability"},
			Weaknesses:   []string{"Experience", "Consistency"},
		},
		{
			ID: TeamIDGrizzlies, FullName: "Memphis Grizzlies", Abbreviation: "MEM", City: "Memphis", Nickname: "Grizzlies",
			Conference: team.ConferenceWestern, Division: "Southwest", PerformanceTier: team.TierDeveloping, Championships: 0,
			RivalTeamIDs: []int64{TeamIDSpurs, TeamIDLakers, TeamIDWarriors},
			Strengths:    []string{"Athletic youth", "Fast pace"},
			Weaknesses:   []string{"Three-point shooting", "Experience"},
		},
		{
			ID: TeamIDPelicans, FullName: "New Orleans Pelicans", Abbreviation: "NOP", City: "New Orleans", Nickname: "Pelicans",
			Conference: team.ConferenceWestern, Division: "Southwest", PerformanceTier: team.TierDeveloping, Championships: 0,
			RivalTeamIDs: []int64{TeamIDLakers, TeamIDRockets, TeamIDSpurs},
			Strengths:    []string{"Athletic frontcourt", "Scoring ability"},
			Weaknesses:   []string{"Health concerns", "Depth"},
		},
		{
			ID: TeamIDSpurs, FullName: "San Antonio Spurs", Abbreviation: "SAS", City: "San Antonio", Nickname: "Spurs",
			Conference: team.ConferenceWestern, Division: "Southwest", PerformanceTier: team.TierRebuilding, Championships: 5,
			RivalTeamIDs: []int64{TeamIDMavericks, TeamIDRockets, TeamIDLakers},
			Strengths:    []string{"Coaching", "Development"},
			Weaknesses:   []string{"Youth", "Talent level"},
		},
	}
}
