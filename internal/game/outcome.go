package game

import "fmt"

// MatchOutcome is how a match ended.
type MatchOutcome int

const (
	OutcomeInconclusive MatchOutcome = iota // still running when observed
	OutcomeVictory                          // every opponent destroyed
	OutcomeDefeat                           // player destroyed
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeInconclusive:
		return "inconclusive"
	default:
		return "unknown"
	}
}

// MatchResult summarises the state of a match for reports.
type MatchResult struct {
	Outcome        MatchOutcome
	Tick           int
	PlayerHP       int
	PlayerMaxHP    int
	OpponentsLeft  int
	OpponentsTotal int
	PlayerShots    int
	PlayerHits     int
	Description    string
}

// DetermineOutcome reads the arena lifecycle and the survivors.
func DetermineOutcome(a *Arena, opponentsTotal int) MatchResult {
	r := MatchResult{
		Tick:           a.Tick(),
		OpponentsLeft:  a.LivingOpponents(),
		OpponentsTotal: opponentsTotal,
	}
	if p, ok := a.Record(a.PlayerID()); ok {
		r.PlayerHP, r.PlayerMaxHP = p.hp, p.maxHP
		r.PlayerShots, r.PlayerHits = p.shots, p.hits
	}

	life := a.Lifecycle()
	switch {
	case life.State == StateRunning:
		r.Outcome = OutcomeInconclusive
		r.Description = fmt.Sprintf("still running: %d/%d opponents left, player hp %d",
			r.OpponentsLeft, r.OpponentsTotal, r.PlayerHP)
	case life.Overlay == WinColor && r.OpponentsLeft == 0:
		r.Outcome = OutcomeVictory
		r.Description = fmt.Sprintf("all %d opponents destroyed, player hp %d/%d",
			r.OpponentsTotal, r.PlayerHP, r.PlayerMaxHP)
	default:
		r.Outcome = OutcomeDefeat
		r.Description = fmt.Sprintf("player destroyed with %d/%d opponents left",
			r.OpponentsLeft, r.OpponentsTotal)
	}
	return r
}
