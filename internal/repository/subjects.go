package repository

import (
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (r *Repository) CreateSubject(subject *domain.Subject) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO subjects (subject_name, weekly_hours, total_hours, month_period, educational_program_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, version
	`

	args := []any{subject.SubjectName, subject.WeeklyHours, subject.TotalHours, subject.MonthPeriod, subject.EducationalProgramID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&subject.ID, &subject.Version); err != nil {
		return err
	}

	return nil
}

// CreateSubjects inserta varias materias en una sola transacción: o se
// registran todas o ninguna.
func (r *Repository) CreateSubjects(subjects []*domain.Subject) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO subjects (subject_name, weekly_hours, total_hours, month_period, educational_program_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, version
	`

	for _, subject := range subjects {
		args := []any{subject.SubjectName, subject.WeeklyHours, subject.TotalHours, subject.MonthPeriod, subject.EducationalProgramID}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&subject.ID, &subject.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllSubjects() ([]*domain.Subject, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, subject_name, weekly_hours, total_hours, month_period, educational_program_id, version
		FROM subjects
		ORDER BY educational_program_id, month_period, subject_name
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*domain.Subject, 0)
	for rows.Next() {
		subject := &domain.Subject{}
		dst := []any{&subject.ID, &subject.SubjectName, &subject.WeeklyHours, &subject.TotalHours, &subject.MonthPeriod, &subject.EducationalProgramID, &subject.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *Repository) GetSubjectsByProgram(programID int64) ([]*domain.Subject, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, subject_name, weekly_hours, total_hours, month_period, educational_program_id, version
		FROM subjects
		WHERE educational_program_id = $1
		ORDER BY month_period, subject_name
	`

	rows, err := r.dbpool.QueryContext(ctx, query, programID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]*domain.Subject, 0)
	for rows.Next() {
		subject := &domain.Subject{}
		dst := []any{&subject.ID, &subject.SubjectName, &subject.WeeklyHours, &subject.TotalHours, &subject.MonthPeriod, &subject.EducationalProgramID, &subject.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		subjects = append(subjects, subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

func (r *Repository) GetSubjectByID(id int64) (*domain.Subject, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT subject_name, weekly_hours, total_hours, month_period, educational_program_id, version
		FROM subjects WHERE id = $1
	`

	subject := &domain.Subject{
		ID: id,
	}

	dst := []any{&subject.SubjectName, &subject.WeeklyHours, &subject.TotalHours, &subject.MonthPeriod, &subject.EducationalProgramID, &subject.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return subject, nil
}

func (r *Repository) UpdateSubject(subject *domain.Subject) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE subjects
		SET
			subject_name = $1,
			weekly_hours = $2,
			total_hours = $3,
			month_period = $4,
			educational_program_id = $5,
			version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING version
	`

	args := []any{subject.SubjectName, subject.WeeklyHours, subject.TotalHours, subject.MonthPeriod, subject.EducationalProgramID, subject.ID, subject.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&subject.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteSubject(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM subjects WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
