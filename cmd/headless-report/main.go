package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Tank-Arena/internal/config"
	"github.com/Garsondee/Tank-Arena/internal/game"
	"github.com/Garsondee/Tank-Arena/internal/logging"
	"github.com/rs/zerolog"
)

type runStats struct {
	runIndex int
	seed     int64
	result   game.MatchResult

	firstFireTick   int
	firstHitTick    int
	firstPickupTick int
	firstDeathTick  int

	shots        int
	hits         int
	playerShots  int
	playerHits   int
	hitsTaken    int
	pickupsSpawn int
	pickupsTaken int
	deaths       int
	collectors   map[string]struct{}
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var standoff float64
	var opponents int
	var cfgPath string
	var logLevel string

	flag.IntVar(&runs, "runs", 5, "number of headless matches")
	flag.IntVar(&ticks, "ticks", 3600, "tick limit per match")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&standoff, "standoff", 150, "distance the autopilot holds from its target")
	flag.IntVar(&opponents, "opponents", -1, "opponent count (default from config)")
	flag.StringVar(&cfgPath, "config", "", "config file (json, yaml or toml)")
	flag.StringVar(&logLevel, "log-level", "warn", "stderr log level")
	flag.Parse()

	log, _, err := logging.Setup(logging.Options{Level: logLevel, Console: os.Stderr})
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	settings, err := config.Load(cfgPath)
	if err != nil {
		log.Error().Err(err).Msg("load config")
		return
	}
	if opponents < 0 {
		opponents = settings.Game.OpponentCount
	}

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if opponents <= 0 {
		fmt.Println("error: -opponents must be > 0")
		return
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d opponents=%d standoff=%.0f\n\n",
		runs, ticks, seedBase, seedStep, opponents, standoff)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats, err := runMatch(i+1, seed, ticks, settings.Game, opponents, standoff, log)
		if err != nil {
			log.Error().Err(err).Int64("seed", seed).Msg("run failed")
			return
		}
		all = append(all, stats)
		printRun(stats)
	}

	printAggregate(all)
}

// runMatch plays one autopiloted match against randomly placed opponents.
func runMatch(runIndex int, seed int64, ticks int, cfg game.Config, opponents int, standoff float64, log zerolog.Logger) (runStats, error) {
	ts, err := game.NewTestSim(
		game.WithConfig(func(c *game.Config) {
			*c = cfg
			c.OpponentCount = 0
		}),
		game.WithSimSeed(seed),
		game.WithArenaOption(game.WithLogger(log.With().Int64("seed", seed).Logger())),
		game.WithAutopilot(standoff),
		game.WithRandomOpponents(opponents),
	)
	if err != nil {
		return runStats{}, err
	}
	result := ts.RunMatch(ticks)
	return collectStats(runIndex, seed, result, ts.SimLog), nil
}

// collectStats reads the per-run counters out of a match log.
func collectStats(runIndex int, seed int64, result game.MatchResult, sl *game.SimLog) runStats {
	entries := sl.Entries()
	rs := runStats{
		runIndex:        runIndex,
		seed:            seed,
		result:          result,
		firstFireTick:   sl.FirstTick("combat", "fire", ""),
		firstHitTick:    sl.FirstTick("combat", "hit", ""),
		firstPickupTick: sl.FirstTick("pickup", "consume", ""),
		firstDeathTick:  sl.FirstTick("state", "death", ""),
		shots:           sl.CountCategory("combat", "fire"),
		hits:            sl.CountCategory("combat", "hit"),
		playerShots:     result.PlayerShots,
		playerHits:      result.PlayerHits,
		pickupsSpawn:    sl.CountCategory("pickup", "spawn"),
		pickupsTaken:    sl.CountCategory("pickup", "consume"),
		deaths:          sl.CountCategory("state", "death"),
		collectors:      map[string]struct{}{},
	}
	for _, e := range entries {
		switch {
		case e.Category == "combat" && e.Key == "hit" && e.Entity == "P":
			rs.hitsTaken++
		case e.Category == "pickup" && e.Key == "consume":
			rs.collectors[e.Entity] = struct{}{}
		}
	}
	return rs
}

// detectStalemate classifies a run that hit the tick limit.
func detectStalemate(rs runStats) (bool, string) {
	if rs.result.Outcome != game.OutcomeInconclusive {
		return false, "decided"
	}
	if rs.hits == 0 {
		return true, "no_hits_landed"
	}
	if rs.result.OpponentsLeft == rs.result.OpponentsTotal && rs.hitsTaken == 0 {
		return true, "no_attrition"
	}
	return false, "tick_limit_with_attrition"
}

func accuracy(hits, shots int) float64 {
	if shots <= 0 {
		return 0
	}
	return float64(hits) / float64(shots) * 100
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s end_tick=%d %s\n", rs.result.Outcome, rs.result.Tick, rs.result.Description)
	fmt.Printf("phase_markers: first_fire=%d first_hit=%d first_pickup=%d first_death=%d\n",
		rs.firstFireTick, rs.firstHitTick, rs.firstPickupTick, rs.firstDeathTick)
	fmt.Printf("event_totals: fire=%d hit=%d pickup_spawn=%d pickup_consume=%d death=%d\n",
		rs.shots, rs.hits, rs.pickupsSpawn, rs.pickupsTaken, rs.deaths)
	fmt.Printf("player: shots=%d hits=%d accuracy=%.0f%% hits_taken=%d hp=%d/%d\n",
		rs.playerShots, rs.playerHits, accuracy(rs.playerHits, rs.playerShots), rs.hitsTaken,
		rs.result.PlayerHP, rs.result.PlayerMaxHP)
	fmt.Printf("pickup_collectors: %s\n", joinSet(rs.collectors))
	if stale, reason := detectStalemate(rs); stale {
		fmt.Printf("stalemate: %s\n", reason)
	}
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[game.MatchOutcome]int{}
	stalemates := map[string]int{}
	totalShots := 0
	totalHits := 0
	totalPlayerShots := 0
	totalPlayerHits := 0
	totalHitsTaken := 0
	totalPickups := 0

	endTicks := make([]int, 0, len(all))
	hitTicks := make([]int, 0, len(all))
	pickupTicks := make([]int, 0, len(all))
	deathTicks := make([]int, 0, len(all))
	collectors := map[string]struct{}{}

	for _, rs := range all {
		outcomes[rs.result.Outcome]++
		if stale, reason := detectStalemate(rs); stale {
			stalemates[reason]++
		}
		totalShots += rs.shots
		totalHits += rs.hits
		totalPlayerShots += rs.playerShots
		totalPlayerHits += rs.playerHits
		totalHitsTaken += rs.hitsTaken
		totalPickups += rs.pickupsTaken
		if rs.result.Outcome != game.OutcomeInconclusive {
			endTicks = append(endTicks, rs.result.Tick)
		}
		if rs.firstHitTick >= 0 {
			hitTicks = append(hitTicks, rs.firstHitTick)
		}
		if rs.firstPickupTick >= 0 {
			pickupTicks = append(pickupTicks, rs.firstPickupTick)
		}
		if rs.firstDeathTick >= 0 {
			deathTicks = append(deathTicks, rs.firstDeathTick)
		}
		for label := range rs.collectors {
			collectors[label] = struct{}{}
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d victory=%d defeat=%d inconclusive=%d\n", len(all),
		outcomes[game.OutcomeVictory], outcomes[game.OutcomeDefeat], outcomes[game.OutcomeInconclusive])
	fmt.Printf("avg_events_per_run: fire=%.1f hit=%.1f pickup_consume=%.1f player_hits_taken=%.1f\n",
		avg(totalShots, len(all)), avg(totalHits, len(all)), avg(totalPickups, len(all)), avg(totalHitsTaken, len(all)))
	fmt.Printf("player_accuracy=%.1f%% (%d/%d)\n",
		accuracy(totalPlayerHits, totalPlayerShots), totalPlayerHits, totalPlayerShots)
	fmt.Printf("phase_marker_avg_ticks: decided_end=%s first_hit=%s first_pickup=%s first_death=%s\n",
		avgTickString(endTicks), avgTickString(hitTicks), avgTickString(pickupTicks), avgTickString(deathTicks))
	fmt.Printf("pickup_collectors=%d [%s]\n", len(collectors), joinSet(collectors))
	fmt.Printf("stalemates: %s\n", formatCounts(stalemates))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func formatCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s(%d)", k, counts[k]))
	}
	return strings.Join(parts, ",")
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
