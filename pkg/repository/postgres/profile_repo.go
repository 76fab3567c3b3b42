package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillmentor/backend/pkg/profile"
)

// ProfileRepository implements profile.Repository backed by PostgreSQL (pgx).
// One row per user, replaced wholesale on every save.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS user_profiles (
	user_id TEXT PRIMARY KEY,
	email TEXT NOT NULL,
	resume_text TEXT NOT NULL DEFAULT '',
	interests JSONB NOT NULL DEFAULT '[]',
	career_goal TEXT NOT NULL DEFAULT '',
	analysis JSONB,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *ProfileRepository) Upsert(ctx context.Context, rec profile.Record) error {
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}
	if rec.Interests == nil {
		rec.Interests = []string{}
	}
	interestsJSON, err := json.Marshal(rec.Interests)
	if err != nil {
		return err
	}
	var analysisJSON []byte
	if rec.Analysis != nil {
		analysisJSON, err = json.Marshal(rec.Analysis)
		if err != nil {
			return err
		}
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO user_profiles (user_id, email, resume_text, interests, career_goal, analysis, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE SET
	email = EXCLUDED.email,
	resume_text = EXCLUDED.resume_text,
	interests = EXCLUDED.interests,
	career_goal = EXCLUDED.career_goal,
	analysis = EXCLUDED.analysis,
	updated_at = EXCLUDED.updated_at
`, rec.UserID, rec.Email, rec.ResumeText, interestsJSON, rec.CareerGoal, analysisJSON, rec.UpdatedAt)
	return err
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (profile.Record, error) {
	row := r.pool.QueryRow(ctx, `
SELECT user_id, email, resume_text, interests, career_goal, analysis, updated_at
FROM user_profiles WHERE user_id = $1
`, userID)
	var rec profile.Record
	var interestsJSON []byte
	var analysisJSON []byte
	var updated time.Time
	if err := row.Scan(&rec.UserID, &rec.Email, &rec.ResumeText, &interestsJSON, &rec.CareerGoal, &analysisJSON, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return profile.Record{}, profile.ErrNotFound
		}
		return profile.Record{}, err
	}
	if err := json.Unmarshal(interestsJSON, &rec.Interests); err != nil {
		return profile.Record{}, err
	}
	if len(analysisJSON) > 0 {
		var a profile.AnalysisRecord
		if err := json.Unmarshal(analysisJSON, &a); err != nil {
			return profile.Record{}, err
		}
		rec.Analysis = &a
	}
	rec.UpdatedAt = updated.UTC()
	return rec, nil
}
