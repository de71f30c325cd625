package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/Garsondee/bounce-paint/internal/sim"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	whiteScore int
	blackScore int
	whiteCells int
	blackCells int
	leader     sim.Leader

	firstPaintTick      int
	firstWhitePaintTick int
	firstBlackPaintTick int
	lastPaintTick       int
	latePaints          int
	cornerSeen          bool
	wallBounces         int
	cornerBounces       int
	verticalHits        int
	horizontalHits      int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	cfg := sim.DefaultConfig()

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&cfg.ArenaSize, "size", sim.DefaultArenaSize, "arena side length in pixels")
	flag.IntVar(&cfg.CellSize, "cell", sim.DefaultCellSize, "cell side length in pixels")
	flag.Parse()

	if runs <= 0 {
		log.Fatal("error: -runs must be > 0")
	}
	if ticks <= 0 {
		log.Fatal("error: -ticks must be > 0")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("error: %v", err)
	}

	fmt.Printf("=== Headless Paint Report ===\n")
	fmt.Printf("arena=%d cell=%d runs=%d ticks=%d seed_base=%d seed_step=%d\n\n",
		cfg.ArenaSize, cfg.CellSize, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runSession(cfg, i+1, seed, ticks)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runSession(cfg sim.Config, runIndex int, seed int64, ticks int) runStats {
	sl := sim.NewSimLog(false)
	s := sim.NewSession(cfg, sim.WithSeed(seed), sim.WithSimLog(sl))
	s.RunTicks(ticks)
	return collectStats(s, sl, runIndex, seed)
}

// collectStats summarises a finished session and its log.
func collectStats(s *sim.Session, sl *sim.SimLog, runIndex int, seed int64) runStats {
	rs := runStats{
		runIndex:            runIndex,
		seed:                seed,
		ticks:               s.Tick(),
		whiteScore:          s.White().Score,
		blackScore:          s.Black().Score,
		whiteCells:          s.Arena().Count(sim.White),
		blackCells:          s.Arena().Count(sim.Black),
		leader:              s.Leader(),
		firstPaintTick:      firstTick(sl.Entries(), "", "paint"),
		firstWhitePaintTick: firstTick(sl.Entries(), "white", "paint"),
		firstBlackPaintTick: firstTick(sl.Entries(), "black", "paint"),
	}
	if last, ok := sl.LastOf("paint", "cell"); ok {
		rs.lastPaintTick = last.Tick
	} else {
		rs.lastPaintTick = -1
	}
	rs.latePaints = countCategory(sl.FilterTickRange(lateWindowStart(rs.ticks), rs.ticks), "paint")
	rs.cornerSeen = sl.HasEntry("wall", "bounce", "xy")
	for _, e := range sl.Filter("wall", "bounce") {
		rs.wallBounces++
		if e.Value == "xy" {
			rs.cornerBounces++
		}
	}
	for _, e := range sl.Filter("paint", "cell") {
		switch {
		case strings.HasSuffix(e.Value, "vertical"):
			rs.verticalHits++
		case strings.HasSuffix(e.Value, "horizontal"):
			rs.horizontalHits++
		}
	}
	return rs
}

// lateWindowStart is the first tick of the final quarter of a run.
func lateWindowStart(ticks int) int {
	return ticks - ticks/4 + 1
}

func countCategory(entries []sim.SimLogEntry, category string) int {
	n := 0
	for _, e := range entries {
		if e.Category == category {
			n++
		}
	}
	return n
}

// firstTick returns the tick of the first entry in category for ball (any
// ball when empty), or -1.
func firstTick(entries []sim.SimLogEntry, ball, category string) int {
	for _, e := range entries {
		if e.Category != category {
			continue
		}
		if ball == "" || e.Ball == ball {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("scores: white=%d black=%d leader=%s\n", rs.whiteScore, rs.blackScore, rs.leader)
	fmt.Printf("cells: white=%d black=%d\n", rs.whiteCells, rs.blackCells)
	fmt.Printf("phase_markers: first_paint=%d first_white=%d first_black=%d\n",
		rs.firstPaintTick, rs.firstWhitePaintTick, rs.firstBlackPaintTick)
	fmt.Printf("late_phase: last_paint=%d paints_last_quarter=%d corner_seen=%t\n",
		rs.lastPaintTick, rs.latePaints, rs.cornerSeen)
	fmt.Printf("event_totals: wall_bounce=%d corner=%d vertical_hit=%d horizontal_hit=%d\n",
		rs.wallBounces, rs.cornerBounces, rs.verticalHits, rs.horizontalHits)
	fmt.Println()
}

// winCounts tallies leaders across runs.
func winCounts(all []runStats) (white, black, ties int) {
	for _, rs := range all {
		switch rs.leader {
		case sim.LeaderWhite:
			white++
		case sim.LeaderBlack:
			black++
		default:
			ties++
		}
	}
	return white, black, ties
}

func printAggregate(all []runStats) {
	totalWhite := 0
	totalBlack := 0
	totalWalls := 0
	totalVertical := 0
	totalHorizontal := 0
	firstPaints := make([]int, 0, len(all))

	for _, rs := range all {
		totalWhite += rs.whiteScore
		totalBlack += rs.blackScore
		totalWalls += rs.wallBounces
		totalVertical += rs.verticalHits
		totalHorizontal += rs.horizontalHits
		if rs.firstPaintTick >= 0 {
			firstPaints = append(firstPaints, rs.firstPaintTick)
		}
	}
	whiteWins, blackWins, ties := winCounts(all)

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("wins: white=%d black=%d tie=%d\n", whiteWins, blackWins, ties)
	fmt.Printf("avg_score_per_run: white=%.1f black=%.1f\n", avg(totalWhite, len(all)), avg(totalBlack, len(all)))
	fmt.Printf("avg_events_per_run: wall_bounce=%.1f vertical_hit=%.1f horizontal_hit=%.1f\n",
		avg(totalWalls, len(all)), avg(totalVertical, len(all)), avg(totalHorizontal, len(all)))
	fmt.Printf("first_paint_avg_tick=%s\n", avgTickString(firstPaints))
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
