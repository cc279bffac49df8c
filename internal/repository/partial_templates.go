package repository

import (
	"database/sql"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

// partialTemplateRow recoge las columnas de una plantilla parcial en un
// LEFT JOIN, donde todas pueden venir nulas.
type partialTemplateRow struct {
	ID       sql.NullInt64
	NT       sql.NullInt64
	Name     sql.NullString
	Gender   sql.NullString
	Position sql.NullString
	Total    sql.NullInt32
	Status   sql.NullString
	Year     sql.NullString
	Period   sql.NullString
}

func (row *partialTemplateRow) dst() []any {
	return []any{&row.ID, &row.NT, &row.Name, &row.Gender, &row.Position, &row.Total, &row.Status, &row.Year, &row.Period}
}

func (row *partialTemplateRow) toDomain(templateID int64) domain.PartialTemplate {
	return domain.PartialTemplate{
		ID:         row.ID.Int64,
		NT:         row.NT.Int64,
		Name:       row.Name.String,
		Gender:     row.Gender.String,
		Position:   row.Position.String,
		Total:      row.Total.Int32,
		Status:     row.Status.String,
		Year:       row.Year.String,
		Period:     row.Period.String,
		TemplateID: templateID,
	}
}

func (r *Repository) CreatePartialTemplate(pt *domain.PartialTemplate) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO partial_templates (nt, name, gender, position, total, status, year, period, template_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
		RETURNING id, version
	`

	args := []any{pt.NT, pt.Name, pt.Gender, pt.Position, pt.Total, pt.Status, pt.Year, pt.Period, pt.TemplateID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&pt.ID, &pt.Version); err != nil {
		return err
	}

	return nil
}

// CreatePartialTemplates inserta varias plantillas parciales en una sola
// transacción: o se registran todas o ninguna.
func (r *Repository) CreatePartialTemplates(pts []*domain.PartialTemplate) error {
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
		INSERT INTO partial_templates (nt, name, gender, position, total, status, year, period, template_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
		RETURNING id, version
	`

	for _, pt := range pts {
		args := []any{pt.NT, pt.Name, pt.Gender, pt.Position, pt.Total, pt.Status, pt.Year, pt.Period, pt.TemplateID}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&pt.ID, &pt.Version); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// CreatePartialTemplateWithActivities registra la plantilla parcial y sus
// actividades en una sola transacción.
func (r *Repository) CreatePartialTemplateWithActivities(pt *domain.PartialTemplate, activities []*domain.Activity) error {
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
		INSERT INTO partial_templates (nt, name, gender, position, total, status, year, period, template_id)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9)
		RETURNING id, version
	`

	args := []any{pt.NT, pt.Name, pt.Gender, pt.Position, pt.Total, pt.Status, pt.Year, pt.Period, pt.TemplateID}
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&pt.ID, &pt.Version); err != nil {
		return err
	}

	for _, activity := range activities {
		activity.PartialTemplateID = pt.ID
		if err := insertActivity(ctx, tx, activity); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllPartialTemplates(status string) ([]*domain.PartialTemplate, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	// Con status vacío el filtro no aplica
	query := `
		SELECT id, nt, name, COALESCE(gender, ''), position, total, status, year, period, template_id, version
		FROM partial_templates
		WHERE $1 = '' OR status = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pts := make([]*domain.PartialTemplate, 0)
	for rows.Next() {
		pt := &domain.PartialTemplate{}
		dst := []any{&pt.ID, &pt.NT, &pt.Name, &pt.Gender, &pt.Position, &pt.Total, &pt.Status, &pt.Year, &pt.Period, &pt.TemplateID, &pt.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		pts = append(pts, pt)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pts, nil
}

func (r *Repository) GetPartialTemplateByID(id int64) (*domain.PartialTemplate, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nt, name, COALESCE(gender, ''), position, total, status, year, period, template_id, version
		FROM partial_templates WHERE id = $1
	`

	pt := &domain.PartialTemplate{
		ID: id,
	}

	dst := []any{&pt.NT, &pt.Name, &pt.Gender, &pt.Position, &pt.Total, &pt.Status, &pt.Year, &pt.Period, &pt.TemplateID, &pt.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return pt, nil
}

func (r *Repository) GetPartialTemplateWithActivities(id int64) (*domain.PartialTemplate, error) {
	pt, err := r.GetPartialTemplateByID(id)
	if err != nil {
		return nil, err
	}

	activities, err := r.GetActivitiesByPartialTemplate(id)
	if err != nil {
		return nil, err
	}

	pt.Activities = make([]domain.Activity, 0, len(activities))
	for _, activity := range activities {
		pt.Activities = append(pt.Activities, *activity)
	}

	return pt, nil
}

func (r *Repository) GetAllPartialTemplatesWithActivities(status string) ([]*domain.PartialTemplate, error) {
	pts, err := r.GetAllPartialTemplates(status)
	if err != nil {
		return nil, err
	}

	for _, pt := range pts {
		activities, err := r.GetActivitiesByPartialTemplate(pt.ID)
		if err != nil {
			return nil, err
		}

		pt.Activities = make([]domain.Activity, 0, len(activities))
		for _, activity := range activities {
			pt.Activities = append(pt.Activities, *activity)
		}
	}

	return pts, nil
}

func (r *Repository) GetPartialTemplateWithComments(id int64) (*domain.PartialTemplate, error) {
	pt, err := r.GetPartialTemplateByID(id)
	if err != nil {
		return nil, err
	}

	comments, err := r.GetCommentsByPartialTemplate(id)
	if err != nil {
		return nil, err
	}

	pt.Comments = make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		pt.Comments = append(pt.Comments, *comment)
	}

	return pt, nil
}

func (r *Repository) GetAllPartialTemplatesWithComments(status string) ([]*domain.PartialTemplate, error) {
	pts, err := r.GetAllPartialTemplates(status)
	if err != nil {
		return nil, err
	}

	for _, pt := range pts {
		comments, err := r.GetCommentsByPartialTemplate(pt.ID)
		if err != nil {
			return nil, err
		}

		pt.Comments = make([]domain.Comment, 0, len(comments))
		for _, comment := range comments {
			pt.Comments = append(pt.Comments, *comment)
		}
	}

	return pts, nil
}

func (r *Repository) UpdatePartialTemplate(pt *domain.PartialTemplate) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE partial_templates
		SET
			nt = $1,
			name = $2,
			gender = NULLIF($3, ''),
			position = $4,
			total = $5,
			status = $6,
			year = $7,
			period = $8,
			template_id = $9,
			version = version + 1
		WHERE id = $10 AND version = $11
		RETURNING version
	`

	args := []any{pt.NT, pt.Name, pt.Gender, pt.Position, pt.Total, pt.Status, pt.Year, pt.Period, pt.TemplateID, pt.ID, pt.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&pt.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeletePartialTemplate(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM partial_templates WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) ExistsPartialTemplate(id int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM partial_templates WHERE id = $1)`, id)
}
