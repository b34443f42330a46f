package belief

import (
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS belief_versions (
	version_id    TEXT PRIMARY KEY,
	parent_id     TEXT,
	episode_id    TEXT NOT NULL,
	step          INTEGER NOT NULL,
	beliefs       BLOB NOT NULL,
	created_at    TEXT NOT NULL,
	metrics_json  TEXT,
	FOREIGN KEY (parent_id) REFERENCES belief_versions(version_id)
);

CREATE TABLE IF NOT EXISTS decision_log (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	version_id       TEXT NOT NULL,
	episode_id       TEXT NOT NULL,
	step             INTEGER NOT NULL,
	observation_json TEXT,
	action_json      TEXT,
	efe_json         TEXT,
	posterior_json   TEXT,
	reason           TEXT,
	created_at       TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES belief_versions(version_id)
);

CREATE TABLE IF NOT EXISTS active_belief (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	version_id    TEXT NOT NULL,
	FOREIGN KEY (version_id) REFERENCES belief_versions(version_id)
);
`
// #endregion schema

// #region store-struct
// Store persists versioned belief snapshots and the per-cycle decision log
// in SQLite. Durability is optional for an agent; the store exists so that
// an episode can survive a process restart and be inspected or re-exported
// as a replay fixture afterwards.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for read-only consumers (inspect,
// fixture export).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion constructor

// #region new-snapshot
// NewSnapshot builds an unsaved snapshot with a fresh version ID.
func NewSnapshot(episodeID string, step int, parentID string, bs BeliefState) Snapshot {
	return Snapshot{
		VersionID: uuid.New().String(),
		ParentID:  parentID,
		EpisodeID: episodeID,
		Step:      step,
		Beliefs:   bs.Clone(),
		CreatedAt: time.Now().UTC(),
	}
}
// #endregion new-snapshot

// #region create-initial
// CreateInitial stores the time-0 belief for an episode and marks it active.
func (s *Store) CreateInitial(episodeID string, bs BeliefState) (Snapshot, error) {
	rec := NewSnapshot(episodeID, 0, "", bs)

	tx, err := s.db.Begin()
	if err != nil {
		return Snapshot{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO belief_versions (version_id, parent_id, episode_id, step, beliefs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.VersionID, nil, rec.EpisodeID, rec.Step, encodeBeliefs(rec.Beliefs),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO active_belief (id, version_id) VALUES (1, ?)
		 ON CONFLICT(id) DO UPDATE SET version_id = excluded.version_id`,
		rec.VersionID,
	)
	if err != nil {
		return Snapshot{}, fmt.Errorf("set active: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Snapshot{}, fmt.Errorf("commit: %w", err)
	}
	return rec, nil
}
// #endregion create-initial

// #region commit
// Commit stores a snapshot and advances the active pointer to it.
func (s *Store) Commit(rec Snapshot) error {
	if rec.VersionID == "" {
		return fmt.Errorf("commit: snapshot has no version id")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var parentPtr interface{}
	if rec.ParentID != "" {
		parentPtr = rec.ParentID
	}
	var metricsPtr interface{}
	if rec.MetricsJSON != "" {
		metricsPtr = rec.MetricsJSON
	}

	_, err = tx.Exec(
		`INSERT INTO belief_versions (version_id, parent_id, episode_id, step, beliefs, created_at, metrics_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.VersionID, parentPtr, rec.EpisodeID, rec.Step, encodeBeliefs(rec.Beliefs),
		rec.CreatedAt.Format(time.RFC3339Nano), metricsPtr,
	)
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}

	_, err = tx.Exec(`UPDATE active_belief SET version_id = ? WHERE id = 1`, rec.VersionID)
	if err != nil {
		return fmt.Errorf("update active: %w", err)
	}

	return tx.Commit()
}
// #endregion commit

// #region get-current
// GetCurrent returns the snapshot the active pointer references.
func (s *Store) GetCurrent() (Snapshot, error) {
	var versionID string
	err := s.db.QueryRow(`SELECT version_id FROM active_belief WHERE id = 1`).Scan(&versionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("no active belief: %w", err)
	}
	return s.GetVersion(versionID)
}

// GetVersion returns a single snapshot by version ID.
func (s *Store) GetVersion(versionID string) (Snapshot, error) {
	row := s.db.QueryRow(
		`SELECT version_id, parent_id, episode_id, step, beliefs, created_at, metrics_json
		 FROM belief_versions WHERE version_id = ?`, versionID,
	)
	rec, err := scanSnapshot(row)
	if err != nil {
		return Snapshot{}, fmt.Errorf("get version %s: %w", versionID, err)
	}
	return rec, nil
}
// #endregion get-current

// #region rollback
// Rollback sets the active pointer to a previous version.
func (s *Store) Rollback(targetVersionID string) error {
	var exists int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM belief_versions WHERE version_id = ?`, targetVersionID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check version: %w", err)
	}
	if exists == 0 {
		return fmt.Errorf("version %s not found", targetVersionID)
	}
	_, err = s.db.Exec(`UPDATE active_belief SET version_id = ? WHERE id = 1`, targetVersionID)
	if err != nil {
		return fmt.Errorf("rollback: %w", err)
	}
	return nil
}
// #endregion rollback

// #region list-versions
// ListVersions returns the most recent snapshots, newest first.
func (s *Store) ListVersions(limit int) ([]Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, episode_id, step, beliefs, created_at, metrics_json
		 FROM belief_versions ORDER BY created_at DESC, step DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var records []Snapshot
	for rows.Next() {
		rec, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// ListEpisode returns an episode's snapshots in step order.
func (s *Store) ListEpisode(episodeID string) ([]Snapshot, error) {
	rows, err := s.db.Query(
		`SELECT version_id, parent_id, episode_id, step, beliefs, created_at, metrics_json
		 FROM belief_versions WHERE episode_id = ? ORDER BY step ASC`, episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list episode: %w", err)
	}
	defer rows.Close()

	var records []Snapshot
	for rows.Next() {
		rec, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSnapshot(row rowScanner) (Snapshot, error) {
	var rec Snapshot
	var parentID sql.NullString
	var blob []byte
	var createdStr string
	var metricsJSON sql.NullString

	if err := row.Scan(&rec.VersionID, &parentID, &rec.EpisodeID, &rec.Step, &blob, &createdStr, &metricsJSON); err != nil {
		return Snapshot{}, fmt.Errorf("scan row: %w", err)
	}
	if parentID.Valid {
		rec.ParentID = parentID.String
	}
	beliefs, err := decodeBeliefs(blob)
	if err != nil {
		return Snapshot{}, fmt.Errorf("decode beliefs: %w", err)
	}
	rec.Beliefs = beliefs
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	if metricsJSON.Valid {
		rec.MetricsJSON = metricsJSON.String
	}
	return rec, nil
}
// #endregion list-versions

// #region decision-log
// LogDecision appends a decision-cycle entry to the decision log.
func (s *Store) LogDecision(entry DecisionEntry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(
		`INSERT INTO decision_log (version_id, episode_id, step, observation_json, action_json, efe_json, posterior_json, reason, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.VersionID,
		entry.EpisodeID,
		entry.Step,
		nullIfEmpty(entry.ObservationJSON),
		nullIfEmpty(entry.ActionJSON),
		nullIfEmpty(entry.EFEJSON),
		nullIfEmpty(entry.PosteriorJSON),
		nullIfEmpty(entry.Reason),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log decision: %w", err)
	}
	return nil
}

// ListDecisions returns an episode's decision entries in step order.
func (s *Store) ListDecisions(episodeID string) ([]DecisionEntry, error) {
	rows, err := s.db.Query(
		`SELECT version_id, episode_id, step, observation_json, action_json, efe_json, posterior_json, reason, created_at
		 FROM decision_log WHERE episode_id = ? ORDER BY step ASC`, episodeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	var entries []DecisionEntry
	for rows.Next() {
		var e DecisionEntry
		var obs, act, efe, post, reason sql.NullString
		var createdStr string
		if err := rows.Scan(&e.VersionID, &e.EpisodeID, &e.Step, &obs, &act, &efe, &post, &reason, &createdStr); err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		e.ObservationJSON = obs.String
		e.ActionJSON = act.String
		e.EFEJSON = efe.String
		e.PosteriorJSON = post.String
		e.Reason = reason.String
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion decision-log

// #region belief-encoding
// Beliefs are ragged (per-factor cardinalities differ), so the BLOB carries
// explicit lengths: u32 factor count, then per factor a u32 length followed
// by float64 little-endian entries.
func encodeBeliefs(bs BeliefState) []byte {
	size := 4
	for _, dist := range bs {
		size += 4 + 8*len(dist)
	}
	buf := make([]byte, size)
	binary.LittleEndian.PutUint32(buf, uint32(len(bs)))
	off := 4
	for _, dist := range bs {
		binary.LittleEndian.PutUint32(buf[off:], uint32(len(dist)))
		off += 4
		for _, v := range dist {
			binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(v))
			off += 8
		}
	}
	return buf
}

func decodeBeliefs(b []byte) (BeliefState, error) {
	if len(b) < 4 {
		return nil, fmt.Errorf("blob too short: %d bytes", len(b))
	}
	numFactors := int(binary.LittleEndian.Uint32(b))
	off := 4
	bs := make(BeliefState, numFactors)
	for f := 0; f < numFactors; f++ {
		if off+4 > len(b) {
			return nil, fmt.Errorf("truncated blob at factor %d", f)
		}
		n := int(binary.LittleEndian.Uint32(b[off:]))
		off += 4
		if off+8*n > len(b) {
			return nil, fmt.Errorf("truncated blob at factor %d", f)
		}
		dist := make([]float64, n)
		for i := range dist {
			dist[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[off:]))
			off += 8
		}
		bs[f] = dist
	}
	return bs, nil
}
// #endregion belief-encoding
