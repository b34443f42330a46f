package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/FrancescoBalzan/pymdp/internal/belief"
	"github.com/FrancescoBalzan/pymdp/internal/numeric"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to beliefs.db")
	last := flag.Int("last", 20, "show N most recent snapshots")
	version := flag.String("version", "", "show single snapshot detail")
	episode := flag.String("episode", "", "list snapshots and decisions for one episode")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/beliefs.db [--last N] [--version id] [--episode id] [--json]")
		os.Exit(2)
	}

	store, err := belief.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case *version != "":
		err = runDetailMode(store, *version, *jsonOut)
	case *episode != "":
		err = runEpisodeMode(store, *episode, *jsonOut)
	default:
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	VersionID string    `json:"version_id"`
	EpisodeID string    `json:"episode_id"`
	Step      int       `json:"step"`
	Entropies []float64 `json:"entropies"`
	MAPStates []int     `json:"map_states"`
	CreatedAt string    `json:"created_at"`
}

func toListRow(s belief.Snapshot) listRow {
	lr := listRow{
		VersionID: s.VersionID,
		EpisodeID: s.EpisodeID,
		Step:      s.Step,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, dist := range s.Beliefs {
		lr.Entropies = append(lr.Entropies, numeric.Entropy(dist))
		lr.MAPStates = append(lr.MAPStates, numeric.ArgMax(dist))
	}
	return lr
}

func runListMode(store *belief.Store, last int, jsonOut bool) error {
	snaps, err := store.ListVersions(last)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Fprintln(os.Stderr, "no snapshots found")
		return nil
	}

	// store returns DESC, reverse for chronological
	rows := make([]listRow, len(snaps))
	for i, s := range snaps {
		rows[len(snaps)-1-i] = toListRow(s)
	}

	if jsonOut {
		return printJSON(rows)
	}
	printListTable(rows)
	return nil
}

func printListTable(rows []listRow) {
	fmt.Printf("%-10s  %-10s  %4s  %-20s  %-12s  %s\n",
		"Version", "Episode", "Step", "Entropy", "MAP", "Time")
	fmt.Printf("%-10s+-%-10s+-%4s+-%-20s+-%-12s+-%s\n",
		"----------", "----------", "----", "--------------------", "------------", "--------------------")

	for _, r := range rows {
		fmt.Printf("%-10s  %-10s  %4d  %-20s  %-12s  %s\n",
			shortID(r.VersionID), shortID(r.EpisodeID), r.Step,
			formatFloats(r.Entropies), fmt.Sprint(r.MAPStates), r.CreatedAt)
	}
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	VersionID string      `json:"version_id"`
	ParentID  string      `json:"parent_id,omitempty"`
	EpisodeID string      `json:"episode_id"`
	Step      int         `json:"step"`
	CreatedAt string      `json:"created_at"`
	Beliefs   [][]float64 `json:"beliefs"`
	Entropies []float64   `json:"entropies"`
	Metrics   interface{} `json:"metrics,omitempty"`
}

func runDetailMode(store *belief.Store, versionID string, jsonOut bool) error {
	s, err := store.GetVersion(versionID)
	if err != nil {
		return err
	}

	out := detailOutput{
		VersionID: s.VersionID,
		ParentID:  s.ParentID,
		EpisodeID: s.EpisodeID,
		Step:      s.Step,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Beliefs:   s.Beliefs,
	}
	for _, dist := range s.Beliefs {
		out.Entropies = append(out.Entropies, numeric.Entropy(dist))
	}
	if s.MetricsJSON != "" {
		var m interface{}
		if err := json.Unmarshal([]byte(s.MetricsJSON), &m); err == nil {
			out.Metrics = m
		}
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Version:  %s\n", out.VersionID)
	fmt.Printf("Parent:   %s\n", out.ParentID)
	fmt.Printf("Episode:  %s\n", out.EpisodeID)
	fmt.Printf("Step:     %d\n", out.Step)
	fmt.Printf("Created:  %s\n", out.CreatedAt)

	fmt.Printf("\nBeliefs:\n")
	for f, dist := range out.Beliefs {
		fmt.Printf("  factor %d: %s  (H=%.4f)\n", f, formatFloats(dist), out.Entropies[f])
	}

	if s.MetricsJSON != "" {
		fmt.Printf("\nMetrics: %s\n", s.MetricsJSON)
	}
	return nil
}

// #endregion detail-mode

// #region episode-mode

type episodeOutput struct {
	Snapshots []listRow     `json:"snapshots"`
	Decisions []decisionRow `json:"decisions"`
}

type decisionRow struct {
	Step        int    `json:"step"`
	Observation string `json:"observation"`
	Action      string `json:"action"`
	Reason      string `json:"reason"`
	CreatedAt   string `json:"created_at"`
}

func runEpisodeMode(store *belief.Store, episodeID string, jsonOut bool) error {
	snaps, err := store.ListEpisode(episodeID)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Fprintf(os.Stderr, "no snapshots found for episode %s\n", episodeID)
		return nil
	}
	decisions, err := store.ListDecisions(episodeID)
	if err != nil {
		return err
	}

	out := episodeOutput{}
	for _, s := range snaps {
		out.Snapshots = append(out.Snapshots, toListRow(s))
	}
	for _, d := range decisions {
		out.Decisions = append(out.Decisions, decisionRow{
			Step:        d.Step,
			Observation: d.ObservationJSON,
			Action:      d.ActionJSON,
			Reason:      d.Reason,
			CreatedAt:   d.CreatedAt.Format("2006-01-02T15:04:05Z"),
		})
	}

	if jsonOut {
		return printJSON(out)
	}

	printListTable(out.Snapshots)

	fmt.Printf("\nDecisions:\n")
	fmt.Printf("%4s  %-16s  %-12s  %-8s  %s\n", "Step", "Observation", "Action", "Reason", "Time")
	for _, d := range out.Decisions {
		fmt.Printf("%4d  %-16s  %-12s  %-8s  %s\n", d.Step, d.Observation, d.Action, d.Reason, d.CreatedAt)
	}
	return nil
}

// #endregion episode-mode

// #region output

func formatFloats(v []float64) string {
	out := "["
	for i, x := range v {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%.4f", x)
	}
	return out + "]"
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
