package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS assessments (
		id                TEXT PRIMARY KEY,
		user_id           TEXT NOT NULL,
		answers           TEXT NOT NULL,
		imposter_syndrome INTEGER NOT NULL CHECK(imposter_syndrome BETWEEN 0 AND 100),
		founder_doubt     INTEGER NOT NULL CHECK(founder_doubt BETWEEN 0 AND 100),
		identity_fusion   INTEGER NOT NULL CHECK(identity_fusion BETWEEN 0 AND 100),
		fear_of_rejection INTEGER NOT NULL CHECK(fear_of_rejection BETWEEN 0 AND 100),
		risk_tolerance    INTEGER NOT NULL CHECK(risk_tolerance BETWEEN 0 AND 100),
		isolation_level   INTEGER NOT NULL CHECK(isolation_level BETWEEN 0 AND 100),
		motivation_type   TEXT NOT NULL
		                  CHECK(motivation_type IN ('intrinsic','extrinsic','mixed')),
		archetype         TEXT NOT NULL,
		created_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_assessments_user_created ON assessments(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS check_ins (
		user_id    TEXT NOT NULL,
		entry_date TEXT NOT NULL,
		mood       INTEGER NOT NULL CHECK(mood BETWEEN 0 AND 100),
		energy     INTEGER NOT NULL CHECK(energy BETWEEN 0 AND 100),
		stress     INTEGER NOT NULL CHECK(stress BETWEEN 0 AND 100),
		notes      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (user_id, entry_date)
	)`,

	`CREATE TABLE IF NOT EXISTS burnout_scores (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL,
		score_date TEXT NOT NULL,
		score      INTEGER NOT NULL CHECK(score BETWEEN 0 AND 100),
		risk_level TEXT NOT NULL CHECK(risk_level IN ('low','caution','high','critical')),
		factors    TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_burnout_user_date ON burnout_scores(user_id, score_date)`,

	`CREATE TABLE IF NOT EXISTS action_batches (
		user_id       TEXT NOT NULL,
		assigned_date TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		PRIMARY KEY (user_id, assigned_date)
	)`,
	`CREATE TABLE IF NOT EXISTS action_items (
		id               TEXT PRIMARY KEY,
		user_id          TEXT NOT NULL,
		assigned_date    TEXT NOT NULL,
		text             TEXT NOT NULL,
		category         TEXT NOT NULL
		                 CHECK(category IN ('mindset','connection','recovery','reflection','momentum')),
		target_dimension TEXT,
		completed        INTEGER NOT NULL DEFAULT 0,
		completed_at     TEXT,
		created_at       TEXT NOT NULL,
		FOREIGN KEY (user_id, assigned_date)
			REFERENCES action_batches(user_id, assigned_date) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_action_items_user_date ON action_items(user_id, assigned_date)`,

	// Insight text arrived after the first release.
	`ALTER TABLE burnout_scores ADD COLUMN insight TEXT NOT NULL DEFAULT ''`,
}
