package display

import (
	"fmt"

	"github.com/Garsondee/Tank-Arena/internal/game"
)

func speedLabel(speed float64) string {
	switch speed {
	case 0:
		return "PAUSED"
	case 1, 2, 4:
		return fmt.Sprintf("%.0fx", speed)
	default:
		return fmt.Sprintf("%.1fx", speed)
	}
}

// hudLines builds the HUD text for a frame.
func hudLines(v game.View, speed float64, autopilot, help bool) []string {
	lines := []string{fmt.Sprintf("T=%d  SIM: %s  opponents: %d", v.Tick, speedLabel(speed), v.LivingOpponents)}
	if p, ok := v.Player(); ok {
		lines = append(lines, fmt.Sprintf("HP %3.0f%%  reload %3.0f%%", p.HPRatio*100, p.ReloadRatio*100))
	}
	if autopilot {
		lines = append(lines, "AUTOPILOT")
	}
	if help {
		lines = append(lines,
			"WASD/arrows=move  click/space=fire",
			"P=pause  ,/. speed  C=copy  H=help",
		)
	}
	return lines
}

// bannerText is the message painted over a finished match.
func bannerText(v game.View) string {
	if v.LivingOpponents == 0 {
		return "VICTORY"
	}
	return "GAME OVER"
}
