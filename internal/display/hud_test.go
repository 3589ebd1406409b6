package display

import (
	"strings"
	"testing"

	"github.com/Garsondee/Tank-Arena/internal/game"
)

func TestSpeedLabel(t *testing.T) {
	cases := map[float64]string{0: "PAUSED", 0.5: "0.5x", 1: "1x", 2: "2x", 4: "4x"}
	for in, want := range cases {
		if got := speedLabel(in); got != want {
			t.Fatalf("speedLabel(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestHUDLines_PlayerAndHelp(t *testing.T) {
	v := game.View{
		Tick:            42,
		LivingOpponents: 2,
		Entities: []game.EntityView{
			{Kind: game.KindCombatant, Player: true, HPRatio: 0.7, ReloadRatio: 0.25},
		},
	}
	lines := hudLines(v, 1, true, true)
	if lines[0] != "T=42  SIM: 1x  opponents: 2" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if lines[1] != "HP  70%  reload  25%" {
		t.Fatalf("unexpected player line %q", lines[1])
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "AUTOPILOT") || !strings.Contains(joined, "C=copy") {
		t.Fatalf("missing autopilot or help:\n%s", joined)
	}
}

func TestHUDLines_NoPlayerNoHelp(t *testing.T) {
	lines := hudLines(game.View{}, 0, false, false)
	if len(lines) != 1 || !strings.Contains(lines[0], "PAUSED") {
		t.Fatalf("unexpected lines %v", lines)
	}
}

func TestBannerText(t *testing.T) {
	if bannerText(game.View{LivingOpponents: 0}) != "VICTORY" {
		t.Fatal("no opponents left should read as a win")
	}
	if bannerText(game.View{LivingOpponents: 2}) != "GAME OVER" {
		t.Fatal("opponents left should read as a loss")
	}
}
