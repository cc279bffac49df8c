package repository

import (
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (r *Repository) CreateTemplate(t *domain.Template) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO templates (state, area_id, period, responsible_id, revised_by_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	args := []any{t.State, t.AreaID, t.Period, t.ResponsibleID, t.RevisedByID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&t.ID, &t.CreatedAt, &t.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllTemplates() ([]*domain.Template, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, state, area_id, period, responsible_id, revised_by_id, created_at, version
		FROM templates
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.Template, 0)
	for rows.Next() {
		t := &domain.Template{}
		dst := []any{&t.ID, &t.State, &t.AreaID, &t.Period, &t.ResponsibleID, &t.RevisedByID, &t.CreatedAt, &t.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) GetTemplateByID(id int64) (*domain.Template, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT state, area_id, period, responsible_id, revised_by_id, created_at, version
		FROM templates WHERE id = $1
	`

	t := &domain.Template{
		ID: id,
	}

	dst := []any{&t.State, &t.AreaID, &t.Period, &t.ResponsibleID, &t.RevisedByID, &t.CreatedAt, &t.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return t, nil
}

func (r *Repository) GetTemplatesByArea(areaID int64) ([]*domain.Template, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, state, area_id, period, responsible_id, revised_by_id, created_at, version
		FROM templates
		WHERE area_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, areaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.Template, 0)
	for rows.Next() {
		t := &domain.Template{}
		dst := []any{&t.ID, &t.State, &t.AreaID, &t.Period, &t.ResponsibleID, &t.RevisedByID, &t.CreatedAt, &t.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

func (r *Repository) GetAllTemplatesWithPartials() ([]*domain.Template, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT
			t.id,
			t.state,
			t.area_id,
			t.period,
			t.responsible_id,
			t.revised_by_id,
			t.created_at,
			t.version,
			pt.id,
			pt.nt,
			pt.name,
			COALESCE(pt.gender, ''),
			pt.position,
			pt.total,
			pt.status,
			pt.year,
			pt.period
		FROM templates t
		LEFT JOIN partial_templates pt ON t.id = pt.template_id
		ORDER BY t.id, pt.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.Template, 0)
	templatesMap := make(map[int64]*domain.Template)

	for rows.Next() {
		t := &domain.Template{}
		var partial partialTemplateRow

		dst := []any{&t.ID, &t.State, &t.AreaID, &t.Period, &t.ResponsibleID, &t.RevisedByID, &t.CreatedAt, &t.Version}
		dst = append(dst, partial.dst()...)
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		template, ok := templatesMap[t.ID]
		if !ok {
			// Primera fila de esta plantilla
			t.PartialTemplates = make([]domain.PartialTemplate, 0)
			templatesMap[t.ID] = t
			templates = append(templates, t)
			template = t
		}

		// Si el id de la parcial es nulo, la plantilla no tiene parciales
		if !partial.ID.Valid {
			continue
		}

		template.PartialTemplates = append(template.PartialTemplates, partial.toDomain(template.ID))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return templates, nil
}

// UpdateTemplateInPeriod aplica la actualización solo si la plantilla
// almacenada sigue dentro de alguno de los periodos vigentes. El filtro
// por periodo en el WHERE hace que la comparación y la escritura sean
// una sola operación, igual que el candado optimista por versión.
func (r *Repository) UpdateTemplateInPeriod(t *domain.Template, currentPeriods []string) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE templates
		SET
			state = $1,
			area_id = $2,
			period = $3,
			responsible_id = $4,
			revised_by_id = $5,
			version = version + 1
		WHERE id = $6 AND version = $7 AND period = ANY($8)
		RETURNING version
	`

	args := []any{t.State, t.AreaID, t.Period, t.ResponsibleID, t.RevisedByID, t.ID, t.Version, currentPeriods}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&t.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteTemplate(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM templates WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) ExistsTemplate(id int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM templates WHERE id = $1)`, id)
}
