package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/replay"
	"github.com/FrancescoBalzan/pymdp/internal/worlds"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to beliefs.db (DB mode)")
	episode := flag.String("episode", "", "episode ID to replay (DB mode)")
	fixturePath := flag.String("fixture", "", "path to fixture JSON (fixture mode)")
	modelPath := flag.String("model", "", "fixture JSON whose model section to use in DB mode (default: epistemic bandit)")
	horizon := flag.Int("horizon", 1, "planning horizon (DB mode)")
	precision := flag.Float64("precision", 16, "policy precision gamma (DB mode)")
	seed := flag.Uint64("seed", 0, "RNG seed (DB mode)")
	deterministic := flag.Bool("deterministic", true, "argmax selection instead of sampling (DB mode)")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		fmt.Fprintln(os.Stderr, "       replay --db path/to/beliefs.db --episode id [--model fixture.json] [--horizon N] [--precision G] [--seed S] [--deterministic]")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath)
	} else {
		cfg := replay.FixtureAgent{
			Horizon:       *horizon,
			Precision:     *precision,
			Seed:          *seed,
			Deterministic: *deterministic,
		}
		exitCode = runDBMode(*dbPath, *episode, *modelPath, cfg)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region fixture-mode

func runFixtureMode(path string) int {
	f, err := replay.LoadFixture(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		return 2
	}

	results, summary, err := replay.Replay(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	return printResults(results, summary)
}

// #endregion fixture-mode

// #region db-mode

func runDBMode(dbPath, episode, modelPath string, cfg replay.FixtureAgent) int {
	if episode == "" {
		fmt.Fprintln(os.Stderr, "--episode is required in DB mode")
		return 2
	}

	store, err := belief.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	decisions, err := store.ListDecisions(episode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list decisions: %v\n", err)
		return 2
	}
	if len(decisions) == 0 {
		fmt.Fprintf(os.Stderr, "no decisions found for episode %s\n", episode)
		return 2
	}

	fm, err := loadModel(modelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load model: %v\n", err)
		return 2
	}

	fx := &replay.Fixture{
		Description: fmt.Sprintf("episode %s replayed from %s", episode, dbPath),
		Model:       fm,
		Agent:       cfg,
	}
	for _, d := range decisions {
		step, err := toStep(d)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decision at step %d: %v\n", d.Step, err)
			return 2
		}
		fx.Steps = append(fx.Steps, step)
	}

	results, summary, err := replay.Replay(fx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		return 2
	}

	return printResults(results, summary)
}

// loadModel reads the model section of a fixture file, or falls back to the
// epistemic bandit that agentd and the demo tooling default to.
func loadModel(path string) (replay.FixtureModel, error) {
	if path == "" {
		return replay.FromSpec(worlds.EpistemicBanditSpec()), nil
	}
	f, err := replay.LoadFixture(path)
	if err != nil {
		return replay.FixtureModel{}, err
	}
	return f.Model, nil
}

// toStep rebuilds a fixture step from a logged decision, using the logged
// action as the expectation.
func toStep(d belief.DecisionEntry) (replay.FixtureStep, error) {
	var step replay.FixtureStep
	if err := json.Unmarshal([]byte(d.ObservationJSON), &step.Observation); err != nil {
		return step, fmt.Errorf("parse observation %q: %w", d.ObservationJSON, err)
	}
	if d.ActionJSON != "" {
		if err := json.Unmarshal([]byte(d.ActionJSON), &step.ExpectedAction); err != nil {
			return step, fmt.Errorf("parse action %q: %w", d.ActionJSON, err)
		}
	}
	return step, nil
}

// #endregion db-mode

// #region output

func printResults(results []replay.StepResult, summary replay.Summary) int {
	fmt.Printf("%-6s| %-15s| %s\n", "Step", "Action", "Match")
	fmt.Printf("%-6s+%-16s+%s\n", "------", "----------------", "------")

	for _, r := range results {
		match := "OK"
		if !r.Matched() {
			match = "DIFF"
		}
		fmt.Printf("%-6d| %-15s| %s\n", r.Step, fmt.Sprint(r.Action), match)
		for _, m := range r.Mismatches {
			fmt.Printf("       %s\n", m)
		}
	}

	fmt.Printf("\nSummary: %d steps, %d match, %d diverge\n", summary.TotalSteps, summary.Matched, summary.Mismatched)

	if !summary.Passed() {
		return 1
	}
	return 0
}

// #endregion output
