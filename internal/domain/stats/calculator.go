package stats

import "math"

// Rounding contract: counting-stat per-game values carry 1 decimal,
// percentages and ratios carry 3, the assist/turnover ratio carries 2.

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

func ptr(v float64) *float64 { return &v }

// PerGame converts a season total into a per-game average. Nil when the
// total is missing or no games were played.
func PerGame(total *float64, games int) *float64 {
	if total == nil || games <= 0 {
		return nil
	}
	return ptr(round1(*total / float64(games)))
}

// Pct passes through an already-normalized ratio from the provider.
func Pct(p *float64) *float64 {
	if p == nil {
		return nil
	}
	return ptr(round3(*p))
}

// Ratio derives a percentage from makes and attempts. Only used when the
// provider did not supply the normalized ratio itself.
func Ratio(made, attempted *float64) *float64 {
	if made == nil || attempted == nil || *attempted == 0 {
		return nil
	}
	return ptr(round3(*made / *attempted))
}

// TrueShooting is points / (2 * (FGA + 0.44*FTA)).
func TrueShooting(points, fgAttempted, ftAttempted *float64) *float64 {
	if points == nil || fgAttempted == nil || ftAttempted == nil {
		return nil
	}
	denom := 2 * (*fgAttempted + 0.44**ftAttempted)
	if denom == 0 {
		return nil
	}
	return ptr(round3(*points / denom))
}

// EffectiveFG is (FGM + 0.5*FG3M) / FGA.
func EffectiveFG(fgMade, threeMade, fgAttempted *float64) *float64 {
	if fgMade == nil || threeMade == nil || fgAttempted == nil || *fgAttempted == 0 {
		return nil
	}
	return ptr(round3((*fgMade + 0.5**threeMade) / *fgAttempted))
}

// AssistTurnoverRatio is undefined for zero or negative turnovers.
func AssistTurnoverRatio(assists, turnovers *float64) *float64 {
	if assists == nil || turnovers == nil || *turnovers <= 0 {
		return nil
	}
	return ptr(round2(*assists / *turnovers))
}

func roundPtr1(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return ptr(round1(*v))
}

// TeamSeasonStats derives the full per-game record from season totals.
// A zero games-played season leaves every per-game field nil.
func TeamSeasonStats(t TeamTotals) SeasonStats {
	g := t.GamesPlayed

	fgPct := Pct(t.FGPct)
	if fgPct == nil {
		fgPct = Ratio(t.FGMade, t.FGAttempted)
	}
	threePct := Pct(t.ThreePct)
	if threePct == nil {
		threePct = Ratio(t.ThreeMade, t.ThreeAttempted)
	}
	ftPct := Pct(t.FTPct)
	if ftPct == nil {
		ftPct = Ratio(t.FTMade, t.FTAttempted)
	}

	return SeasonStats{
		GamesPlayed: g,
		Wins:        t.Wins,
		Losses:      t.Losses,
		WinPct:      Pct(t.WinPct),
		Offense: OffenseStats{
			AvgPoints:      PerGame(t.Points, g),
			FGMade:         PerGame(t.FGMade, g),
			FGAttempted:    PerGame(t.FGAttempted, g),
			FGPct:          fgPct,
			ThreeMade:      PerGame(t.ThreeMade, g),
			ThreeAttempted: PerGame(t.ThreeAttempted, g),
			ThreePct:       threePct,
			FTMade:         PerGame(t.FTMade, g),
			FTAttempted:    PerGame(t.FTAttempted, g),
			FTPct:          ftPct,
			Assists:        PerGame(t.Assists, g),
			Turnovers:      PerGame(t.Turnovers, g),
			OffRebounds:    PerGame(t.OffRebounds, g),
		},
		Defense: DefenseStats{
			DefRebounds:   PerGame(t.DefRebounds, g),
			TotalRebounds: PerGame(t.TotalRebounds, g),
			Steals:        PerGame(t.Steals, g),
			Blocks:        PerGame(t.Blocks, g),
			PersonalFouls: PerGame(t.PersonalFouls, g),
		},
		Advanced: AdvancedStats{
			PlusMinus:           roundPtr1(t.PlusMinus),
			TrueShootingPct:     TrueShooting(t.Points, t.FGAttempted, t.FTAttempted),
			EffectiveFGPct:      EffectiveFG(t.FGMade, t.ThreeMade, t.FGAttempted),
			AssistTurnoverRatio: AssistTurnoverRatio(t.Assists, t.Turnovers),
		},
	}
}

// PlayerAveragesFromTotals derives the roster-table subset with the
// zero-default policy: missing fields become 0, and the per-game divisor is
// clamped to 1 so a zero-game season yields zeros instead of dividing by
// zero.
func PlayerAveragesFromTotals(t PlayerTotals) PlayerAverages {
	games := t.GamesPlayed
	divisor := games
	if divisor < 1 {
		divisor = 1
	}

	perGame := func(total *float64) float64 {
		if total == nil {
			return 0
		}
		return round1(*total / float64(divisor))
	}
	pct := func(p *float64) float64 {
		if p == nil {
			return 0
		}
		return round3(*p)
	}

	return PlayerAverages{
		Games:           games,
		PointsPerGame:   perGame(t.Points),
		ReboundsPerGame: perGame(t.Rebounds),
		AssistsPerGame:  perGame(t.Assists),
		FGPct:           pct(t.FGPct),
		ThreePct:        pct(t.ThreePct),
	}
}
