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
	dbPath := flag.String("db", "", "path to beliefs.db")
	episode := flag.String("episode", "", "episode ID to export")
	outPath := flag.String("out", "", "output fixture JSON path")
	modelPath := flag.String("model", "", "fixture JSON whose model section to embed (default: epistemic bandit)")
	horizon := flag.Int("horizon", 1, "planning horizon to embed")
	precision := flag.Float64("precision", 16, "policy precision to embed")
	seed := flag.Uint64("seed", 0, "RNG seed to embed")
	deterministic := flag.Bool("deterministic", true, "argmax selection to embed")
	flag.Parse()

	if *dbPath == "" || *episode == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/beliefs.db --episode id --out path/to/fixture.json [--model fixture.json]")
		os.Exit(2)
	}

	cfg := replay.FixtureAgent{
		Horizon:       *horizon,
		Precision:     *precision,
		Seed:          *seed,
		Deterministic: *deterministic,
	}
	if err := run(*dbPath, *episode, *outPath, *modelPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region export

func run(dbPath, episode, outPath, modelPath string, cfg replay.FixtureAgent) error {
	store, err := belief.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer store.Close()

	decisions, err := store.ListDecisions(episode)
	if err != nil {
		return fmt.Errorf("list decisions: %w", err)
	}
	if len(decisions) == 0 {
		return fmt.Errorf("no decisions found for episode %s", episode)
	}

	snaps, err := store.ListEpisode(episode)
	if err != nil {
		return fmt.Errorf("list episode: %w", err)
	}
	beliefsByStep := make(map[int]belief.BeliefState, len(snaps))
	for _, s := range snaps {
		beliefsByStep[s.Step] = s.Beliefs
	}

	fm, err := loadModel(modelPath)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	fixture := &replay.Fixture{
		Description: fmt.Sprintf("Episode export: %d decisions from %s", len(decisions), dbPath),
		Model:       fm,
		Agent:       cfg,
	}
	for _, d := range decisions {
		step, err := toStep(d, beliefsByStep)
		if err != nil {
			return fmt.Errorf("decision at step %d: %w", d.Step, err)
		}
		fixture.Steps = append(fixture.Steps, step)
	}

	if err := replay.SaveFixture(outPath, fixture); err != nil {
		return err
	}
	fmt.Printf("Wrote fixture to %s (%d steps)\n", outPath, len(fixture.Steps))
	return nil
}

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

// toStep rebuilds a fixture step from a logged decision. The logged action
// becomes the expectation; the snapshot at the same step, if present,
// becomes the belief expectation.
func toStep(d belief.DecisionEntry, beliefsByStep map[int]belief.BeliefState) (replay.FixtureStep, error) {
	var step replay.FixtureStep
	if err := json.Unmarshal([]byte(d.ObservationJSON), &step.Observation); err != nil {
		return step, fmt.Errorf("parse observation %q: %w", d.ObservationJSON, err)
	}
	if d.ActionJSON != "" {
		if err := json.Unmarshal([]byte(d.ActionJSON), &step.ExpectedAction); err != nil {
			return step, fmt.Errorf("parse action %q: %w", d.ActionJSON, err)
		}
	}
	if bs, ok := beliefsByStep[d.Step]; ok {
		step.ExpectedBeliefs = bs
		step.BeliefTolerance = replay.DefaultBeliefTolerance
	}
	return step, nil
}

// #endregion export
