package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/GOPIVARDHAN1965/resumes/internal/types"
)

// PersonalInfo returns the single contact record.
func (s *Store) PersonalInfo(ctx context.Context) (types.PersonalInfo, error) {
	var p types.PersonalInfo
	err := s.db.QueryRowContext(ctx,
		`SELECT name, email, phone, linkedin, github, location, summary FROM personal_info WHERE id = 1`,
	).Scan(&p.Name, &p.Email, &p.Phone, &p.LinkedIn, &p.GitHub, &p.Location, &p.Summary)
	if err == sql.ErrNoRows {
		return types.PersonalInfo{}, nil
	}
	if err != nil {
		return types.PersonalInfo{}, fmt.Errorf("failed to load personal info: %w", err)
	}
	return p, nil
}

// UpsertPersonalInfo replaces the contact record.
func (s *Store) UpsertPersonalInfo(ctx context.Context, p types.PersonalInfo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO personal_info (id, name, email, phone, linkedin, github, location, summary)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, email = excluded.email, phone = excluded.phone,
			linkedin = excluded.linkedin, github = excluded.github,
			location = excluded.location, summary = excluded.summary`,
		p.Name, p.Email, p.Phone, p.LinkedIn, p.GitHub, p.Location, p.Summary,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert personal info: %w", err)
	}
	return nil
}

// WorkExperience returns all jobs in position order (0 = most recent),
// each with its bullets in authored order.
func (s *Store) WorkExperience(ctx context.Context) ([]types.Entity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, company, title, location, start_date, end_date
		 FROM work_experience ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load work experience: %w", err)
	}
	defer rows.Close()

	var entities []types.Entity
	for rows.Next() {
		e := types.Entity{Kind: types.KindJob}
		if err := rows.Scan(&e.ID, &e.Company, &e.Title, &e.Location, &e.StartDate, &e.EndDate); err != nil {
			return nil, fmt.Errorf("failed to scan work experience: %w", err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work experience: %w", err)
	}

	for i := range entities {
		bullets, err := s.bulletsFor(ctx, "work_experience_id", entities[i].ID)
		if err != nil {
			return nil, err
		}
		entities[i].Bullets = bullets
	}
	return entities, nil
}

// Projects returns all projects in position order with their bullets.
func (s *Store) Projects(ctx context.Context) ([]types.Entity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, url FROM projects ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	defer rows.Close()

	var entities []types.Entity
	for rows.Next() {
		e := types.Entity{Kind: types.KindProject}
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.URL); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		entities = append(entities, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	for i := range entities {
		bullets, err := s.bulletsFor(ctx, "project_id", entities[i].ID)
		if err != nil {
			return nil, err
		}
		entities[i].Bullets = bullets
	}
	return entities, nil
}

func (s *Store) bulletsFor(ctx context.Context, column string, ownerID int64) ([]types.Bullet, error) {
	query := fmt.Sprintf(
		`SELECT id, text, keywords FROM bullets WHERE %s = ? ORDER BY position, id`, column)
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bullets: %w", err)
	}
	defer rows.Close()

	var bullets []types.Bullet
	for rows.Next() {
		var b types.Bullet
		if err := rows.Scan(&b.ID, &b.Text, &b.Keywords); err != nil {
			return nil, fmt.Errorf("failed to scan bullet: %w", err)
		}
		bullets = append(bullets, b)
	}
	return bullets, rows.Err()
}

// Skills returns all skills.
func (s *Store) Skills(ctx context.Context) ([]types.Skill, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category, proficiency FROM skills ORDER BY category, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	defer rows.Close()

	var skills []types.Skill
	for rows.Next() {
		var sk types.Skill
		if err := rows.Scan(&sk.ID, &sk.Name, &sk.Category, &sk.Proficiency); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, sk)
	}
	return skills, rows.Err()
}

// AddWorkExperience inserts a job and returns its id.
func (s *Store) AddWorkExperience(ctx context.Context, e types.Entity) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO work_experience (company, title, location, start_date, end_date, position)
		 VALUES (?, ?, ?, ?, ?, (SELECT COUNT(*) FROM work_experience))`,
		e.Company, e.Title, e.Location, e.StartDate, e.EndDate,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add work experience: %w", err)
	}
	return res.LastInsertId()
}

// AddProject inserts a project and returns its id.
func (s *Store) AddProject(ctx context.Context, e types.Entity) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, url, position)
		 VALUES (?, ?, ?, (SELECT COUNT(*) FROM projects))`,
		e.Name, e.Description, e.URL,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add project: %w", err)
	}
	return res.LastInsertId()
}

// AddJobBullet appends a bullet to a job.
func (s *Store) AddJobBullet(ctx context.Context, jobID int64, b types.Bullet) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bullets (text, keywords, work_experience_id, position)
		 VALUES (?, ?, ?, (SELECT COUNT(*) FROM bullets WHERE work_experience_id = ?))`,
		b.Text, b.Keywords, jobID, jobID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add bullet: %w", err)
	}
	return res.LastInsertId()
}

// AddProjectBullet appends a bullet to a project.
func (s *Store) AddProjectBullet(ctx context.Context, projectID int64, b types.Bullet) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO bullets (text, keywords, project_id, position)
		 VALUES (?, ?, ?, (SELECT COUNT(*) FROM bullets WHERE project_id = ?))`,
		b.Text, b.Keywords, projectID, projectID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add bullet: %w", err)
	}
	return res.LastInsertId()
}

// AddSkill inserts a skill and returns its id.
func (s *Store) AddSkill(ctx context.Context, sk types.Skill) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO skills (name, category, proficiency) VALUES (?, ?, ?)`,
		sk.Name, sk.Category, sk.Proficiency,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add skill: %w", err)
	}
	return res.LastInsertId()
}
