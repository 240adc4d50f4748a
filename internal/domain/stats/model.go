package stats

// TeamTotals is the raw season aggregate for one team as reported by the
// provider. Every counting stat is a season total, not a per-game value.
// Nil means the provider omitted the field; absence must propagate through
// the calculator, never collapse to zero.
type TeamTotals struct {
	GamesPlayed int
	Wins        int
	Losses      int
	WinPct      *float64

	Points         *float64
	FGMade         *float64
	FGAttempted    *float64
	FGPct          *float64
	ThreeMade      *float64
	ThreeAttempted *float64
	ThreePct       *float64
	FTMade         *float64
	FTAttempted    *float64
	FTPct          *float64
	Assists        *float64
	Turnovers      *float64
	OffRebounds    *float64
	DefRebounds    *float64
	TotalRebounds  *float64
	Steals         *float64
	Blocks         *float64
	PersonalFouls  *float64
	PlusMinus      *float64
}

// PlayerTotals is the raw current-season aggregate for one player.
type PlayerTotals struct {
	GamesPlayed int
	Points      *float64
	Rebounds    *float64
	Assists     *float64
	FGPct       *float64
	ThreePct    *float64
}

// SeasonStats is the derived team record: per-game averages plus advanced
// efficiency metrics. Nil fields mean the underlying totals were missing or
// the metric is undefined (zero games, zero denominator); they serialize as
// JSON null, never zero.
type SeasonStats struct {
	GamesPlayed int
	Wins        int
	Losses      int
	WinPct      *float64

	Offense  OffenseStats
	Defense  DefenseStats
	Advanced AdvancedStats
}

type OffenseStats struct {
	AvgPoints      *float64
	FGMade         *float64
	FGAttempted    *float64
	FGPct          *float64
	ThreeMade      *float64
	ThreeAttempted *float64
	ThreePct       *float64
	FTMade         *float64
	FTAttempted    *float64
	FTPct          *float64
	Assists        *float64
	Turnovers      *float64
	OffRebounds    *float64
}

type DefenseStats struct {
	DefRebounds   *float64
	TotalRebounds *float64
	Steals        *float64
	Blocks        *float64
	PersonalFouls *float64
}

type AdvancedStats struct {
	PlusMinus           *float64
	TrueShootingPct     *float64
	EffectiveFGPct      *float64
	AssistTurnoverRatio *float64
}

// PlayerAverages is the roster-table stats subset. Unlike SeasonStats it
// uses plain zero-defaulted values: the roster table in the consuming client
// indexes into always-present numeric columns, so a failed or empty player
// fetch yields visible zeros rather than an absence marker.
type PlayerAverages struct {
	Games           int
	PointsPerGame   float64
	ReboundsPerGame float64
	AssistsPerGame  float64
	FGPct           float64
	ThreePct        float64
}
