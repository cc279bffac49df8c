package repository

import (
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (r *Repository) CreateEducationalProgram(program *domain.EducationalProgram) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO educational_programs (abbreviation, description, area_id)
		VALUES ($1, $2, $3)
		RETURNING id, version
	`

	args := []any{program.Abbreviation, program.Description, program.AreaID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&program.ID, &program.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllEducationalPrograms() ([]*domain.EducationalProgram, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, abbreviation, description, area_id, version
		FROM educational_programs
		ORDER BY abbreviation
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := make([]*domain.EducationalProgram, 0)
	for rows.Next() {
		program := &domain.EducationalProgram{}
		dst := []any{&program.ID, &program.Abbreviation, &program.Description, &program.AreaID, &program.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return programs, nil
}

func (r *Repository) GetEducationalProgramByID(id int64) (*domain.EducationalProgram, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT abbreviation, description, area_id, version
		FROM educational_programs WHERE id = $1
	`

	program := &domain.EducationalProgram{
		ID: id,
	}

	dst := []any{&program.Abbreviation, &program.Description, &program.AreaID, &program.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return program, nil
}

func (r *Repository) UpdateEducationalProgram(program *domain.EducationalProgram) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE educational_programs
		SET
			abbreviation = $1,
			description = $2,
			area_id = $3,
			version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version
	`

	args := []any{program.Abbreviation, program.Description, program.AreaID, program.ID, program.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&program.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEducationalProgram(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM educational_programs WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) ExistsEducationalProgram(id int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM educational_programs WHERE id = $1)`, id)
}
