package repository

import (
	"database/sql"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (r *Repository) CreateArea(area *domain.Area) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO areas (name)
		VALUES ($1)
		RETURNING id, version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, area.Name).Scan(&area.ID, &area.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllAreas() ([]*domain.Area, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, name, version FROM areas ORDER BY name
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]*domain.Area, 0)
	for rows.Next() {
		area := &domain.Area{}
		if err := rows.Scan(&area.ID, &area.Name, &area.Version); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

func (r *Repository) GetAreaByID(id int64) (*domain.Area, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT name, version FROM areas WHERE id = $1
	`

	area := &domain.Area{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&area.Name, &area.Version); err != nil {
		return nil, err
	}

	return area, nil
}

// SearchAreasByName busca áreas cuyo nombre contenga el texto dado, sin
// distinguir mayúsculas de minúsculas.
func (r *Repository) SearchAreasByName(name string) ([]*domain.Area, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, name, version FROM areas
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name
	`

	rows, err := r.dbpool.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]*domain.Area, 0)
	for rows.Next() {
		area := &domain.Area{}
		if err := rows.Scan(&area.ID, &area.Name, &area.Version); err != nil {
			return nil, err
		}
		areas = append(areas, area)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

func (r *Repository) GetAllAreasWithPrograms() ([]*domain.Area, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT
			a.id,
			a.name,
			a.version,
			ep.id,
			ep.abbreviation,
			ep.description
		FROM areas a
		LEFT JOIN educational_programs ep ON a.id = ep.area_id
		ORDER BY a.name, ep.abbreviation
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	areas := make([]*domain.Area, 0)
	areasMap := make(map[int64]*domain.Area)

	for rows.Next() {
		var row struct {
			ID      int64
			Name    string
			Version int32

			ProgramID    sql.NullInt64
			Abbreviation sql.NullString
			Description  sql.NullString
		}

		dst := []any{&row.ID, &row.Name, &row.Version, &row.ProgramID, &row.Abbreviation, &row.Description}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		area, ok := areasMap[row.ID]
		if !ok {
			// Primera vez que aparece esta área en el resultado
			area = &domain.Area{
				ID:                  row.ID,
				Name:                row.Name,
				Version:             row.Version,
				EducationalPrograms: make([]domain.EducationalProgram, 0),
			}
			areasMap[row.ID] = area
			areas = append(areas, area)
		}

		// Si el id del programa es nulo, el área no tiene programas
		if !row.ProgramID.Valid {
			continue
		}

		area.EducationalPrograms = append(area.EducationalPrograms, domain.EducationalProgram{
			ID:           row.ProgramID.Int64,
			Abbreviation: row.Abbreviation.String,
			Description:  row.Description.String,
			AreaID:       row.ID,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return areas, nil
}

func (r *Repository) UpdateArea(area *domain.Area) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE areas
		SET
			name = $1,
			version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	if err := r.dbpool.QueryRowContext(ctx, query, area.Name, area.ID, area.Version).Scan(&area.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteArea(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM areas WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) ExistsArea(id int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM areas WHERE id = $1)`, id)
}
