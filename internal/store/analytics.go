package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
)

const dateLayout = "2006-01-02"

// KeywordFrequencies returns every cumulative keyword record, highest
// count first.
func (s *Store) KeywordFrequencies(ctx context.Context) ([]types.KeywordStat, error) {
	return s.keywordStats(ctx,
		`SELECT keyword, jd_count, first_seen, last_seen
		 FROM keyword_frequency ORDER BY jd_count DESC, keyword`)
}

// KeywordsSince returns keyword records last seen on or after cutoff,
// highest count first. The cutoff is supplied by the caller so the store
// never decides window boundaries itself.
func (s *Store) KeywordsSince(ctx context.Context, cutoff time.Time) ([]types.KeywordStat, error) {
	return s.keywordStats(ctx,
		`SELECT keyword, jd_count, first_seen, last_seen
		 FROM keyword_frequency WHERE last_seen >= ? ORDER BY jd_count DESC, keyword`,
		cutoff.Format(dateLayout))
}

// KeywordsBefore returns keyword records first seen before cutoff, highest
// count first.
func (s *Store) KeywordsBefore(ctx context.Context, cutoff time.Time) ([]types.KeywordStat, error) {
	return s.keywordStats(ctx,
		`SELECT keyword, jd_count, first_seen, last_seen
		 FROM keyword_frequency WHERE first_seen < ? ORDER BY jd_count DESC, keyword`,
		cutoff.Format(dateLayout))
}

func (s *Store) keywordStats(ctx context.Context, query string, args ...any) ([]types.KeywordStat, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load keyword stats: %w", err)
	}
	defer rows.Close()

	var stats []types.KeywordStat
	for rows.Next() {
		var stat types.KeywordStat
		if err := rows.Scan(&stat.Term, &stat.Count, &stat.FirstSeen, &stat.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan keyword stat: %w", err)
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}

// TotalDocuments returns how many job descriptions have been ingested.
func (s *Store) TotalDocuments(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingestions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ingestions: %w", err)
	}
	return count, nil
}

// RoleKeywordCounts returns the keyword occurrence counts recorded for one
// role label.
func (s *Store) RoleKeywordCounts(ctx context.Context, role string) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT keyword, jd_count FROM role_keywords WHERE role = ?`, role)
	if err != nil {
		return nil, fmt.Errorf("failed to load role keywords: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var keyword string
		var count int
		if err := rows.Scan(&keyword, &count); err != nil {
			return nil, fmt.Errorf("failed to scan role keyword: %w", err)
		}
		counts[keyword] = count
	}
	return counts, rows.Err()
}

// BulletPerformance returns the performance counters for every tracked bullet.
func (s *Store) BulletPerformance(ctx context.Context) (map[int64]types.PerformanceRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT bullet_id, times_selected, times_high_score, times_interview, times_offer
		 FROM bullet_performance`)
	if err != nil {
		return nil, fmt.Errorf("failed to load bullet performance: %w", err)
	}
	defer rows.Close()

	perf := make(map[int64]types.PerformanceRecord)
	for rows.Next() {
		var id int64
		var rec types.PerformanceRecord
		if err := rows.Scan(&id, &rec.TimesSelected, &rec.TimesHighScore, &rec.TimesInterview, &rec.TimesOffer); err != nil {
			return nil, fmt.Errorf("failed to scan bullet performance: %w", err)
		}
		perf[id] = rec
	}
	return perf, rows.Err()
}

// RecordIngestion increments the keyword-frequency counter for each term,
// the role-keyword counters for the classified role, and the total
// document count. Counts are monotonically non-decreasing.
func (s *Store) RecordIngestion(ctx context.Context, terms []string, role string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin ingestion transaction: %w", err)
	}
	defer tx.Rollback()

	today := s.now().Format(dateLayout)
	for _, term := range terms {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO keyword_frequency (keyword, jd_count, first_seen, last_seen)
			 VALUES (?, 1, ?, ?)
			 ON CONFLICT(keyword) DO UPDATE SET
				jd_count = jd_count + 1, last_seen = excluded.last_seen`,
			term, today, today,
		); err != nil {
			return fmt.Errorf("failed to record keyword %q: %w", term, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO role_keywords (role, keyword, jd_count) VALUES (?, ?, 1)
			 ON CONFLICT(role, keyword) DO UPDATE SET jd_count = jd_count + 1`,
			role, term,
		); err != nil {
			return fmt.Errorf("failed to record role keyword %q: %w", term, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO ingestions (ingested_at) VALUES (?)`, today,
	); err != nil {
		return fmt.Errorf("failed to record ingestion: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit ingestion: %w", err)
	}
	return nil
}

// RecordSelection increments times_selected for every selected bullet, and
// times_high_score when the document scored at or above the threshold.
func (s *Store) RecordSelection(ctx context.Context, bulletIDs []int64, atsPercentage float64) error {
	if len(bulletIDs) == 0 {
		return nil
	}

	highScore := 0
	if atsPercentage >= HighScoreThreshold {
		highScore = 1
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin selection transaction: %w", err)
	}
	defer tx.Rollback()

	for _, id := range bulletIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO bullet_performance (bullet_id, times_selected, times_high_score)
			 VALUES (?, 1, ?)
			 ON CONFLICT(bullet_id) DO UPDATE SET
				times_selected = times_selected + 1,
				times_high_score = times_high_score + excluded.times_high_score`,
			id, highScore,
		); err != nil {
			return fmt.Errorf("failed to record selection for bullet %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit selection: %w", err)
	}
	return nil
}

// TrackApplication records a tracked job application and returns its id.
func (s *Store) TrackApplication(ctx context.Context, company, title, jobDescription, role string, atsScore float64, bulletIDs []int64) (int64, error) {
	used := make([]string, len(bulletIDs))
	for i, id := range bulletIDs {
		used[i] = strconv.FormatInt(id, 10)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO applications (company, title, job_description, role, ats_score, bullets_used, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		company, title, jobDescription, role, atsScore, strings.Join(used, ","),
		s.now().Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to track application: %w", err)
	}
	return res.LastInsertId()
}

// Outcome labels for tracked applications.
const (
	OutcomeInterview = "interview"
	OutcomeOffer     = "offer"
	OutcomeRejected  = "rejected"
)

// UpdateApplicationOutcome sets a tracked application's outcome and, for
// interview and offer outcomes, boosts the performance counters of every
// bullet that appeared in that application's document.
func (s *Store) UpdateApplicationOutcome(ctx context.Context, appID int64, outcome string) error {
	var bulletsUsed string
	err := s.db.QueryRowContext(ctx,
		`SELECT bullets_used FROM applications WHERE id = ?`, appID,
	).Scan(&bulletsUsed)
	if err == sql.ErrNoRows {
		return fmt.Errorf("application %d not found", appID)
	}
	if err != nil {
		return fmt.Errorf("failed to load application %d: %w", appID, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin outcome transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE applications SET outcome = ? WHERE id = ?`, outcome, appID,
	); err != nil {
		return fmt.Errorf("failed to update outcome: %w", err)
	}

	var column string
	switch outcome {
	case OutcomeInterview:
		column = "times_interview"
	case OutcomeOffer:
		column = "times_offer"
	}
	if column != "" && bulletsUsed != "" {
		for _, raw := range strings.Split(bulletsUsed, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				continue
			}
			query := fmt.Sprintf(
				`INSERT INTO bullet_performance (bullet_id, %s) VALUES (?, 1)
				 ON CONFLICT(bullet_id) DO UPDATE SET %s = %s + 1`,
				column, column, column)
			if _, err := tx.ExecContext(ctx, query, id); err != nil {
				return fmt.Errorf("failed to boost bullet %d: %w", id, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit outcome: %w", err)
	}
	return nil
}

// Applications returns tracked applications, newest first.
func (s *Store) Applications(ctx context.Context) ([]Application, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company, title, role, ats_score, outcome, created_at
		 FROM applications ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to load applications: %w", err)
	}
	defer rows.Close()

	var apps []Application
	for rows.Next() {
		var a Application
		if err := rows.Scan(&a.ID, &a.Company, &a.Title, &a.Role, &a.ATSScore, &a.Outcome, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

// Application is one tracked job application.
type Application struct {
	ID        int64   `json:"id"`
	Company   string  `json:"company"`
	Title     string  `json:"title"`
	Role      string  `json:"role"`
	ATSScore  float64 `json:"ats_score"`
	Outcome   string  `json:"outcome,omitempty"`
	CreatedAt string  `json:"created_at"`
}
