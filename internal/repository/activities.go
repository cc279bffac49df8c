package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

// Los grupos se guardan como texto separado por comas para no depender
// de arreglos de postgres en el escaneo.
func joinGradeGroups(groups []string) string {
	return strings.Join(groups, ",")
}

func splitGradeGroups(joined string) []string {
	if joined == "" {
		return nil
	}
	return strings.Split(joined, ",")
}

func insertActivity(ctx context.Context, tx *sql.Tx, activity *domain.Activity) error {
	query := `
		INSERT INTO activities (
			partial_template_id, educational_program_id, activity_distribution,
			management_type, stay_type, activity_name, grade_groups,
			weekly_hours, subtotal_classification, number_students
		)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10)
		RETURNING id
	`

	args := []any{
		activity.PartialTemplateID,
		activity.EducationalProgramID,
		activity.ActivityDistribution,
		activity.ManagementType,
		activity.StayType,
		activity.ActivityName,
		joinGradeGroups(activity.GradeGroups),
		activity.WeeklyHours,
		activity.SubtotalClassification,
		activity.NumberStudents,
	}
	return tx.QueryRowContext(ctx, query, args...).Scan(&activity.ID)
}

func (r *Repository) CreateActivity(activity *domain.Activity) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := insertActivity(ctx, tx, activity); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *Repository) GetActivitiesByPartialTemplate(partialTemplateID int64) ([]*domain.Activity, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT
			id, educational_program_id, activity_distribution,
			COALESCE(management_type, ''), COALESCE(stay_type, ''), COALESCE(activity_name, ''),
			grade_groups, weekly_hours, subtotal_classification, number_students
		FROM activities
		WHERE partial_template_id = $1
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, partialTemplateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity := &domain.Activity{
			PartialTemplateID: partialTemplateID,
		}
		var gradeGroups string

		dst := []any{
			&activity.ID, &activity.EducationalProgramID, &activity.ActivityDistribution,
			&activity.ManagementType, &activity.StayType, &activity.ActivityName,
			&gradeGroups, &activity.WeeklyHours, &activity.SubtotalClassification, &activity.NumberStudents,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		activity.GradeGroups = splitGradeGroups(gradeGroups)
		activities = append(activities, activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

func (r *Repository) GetActivityByID(id int64) (*domain.Activity, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT
			partial_template_id, educational_program_id, activity_distribution,
			COALESCE(management_type, ''), COALESCE(stay_type, ''), COALESCE(activity_name, ''),
			grade_groups, weekly_hours, subtotal_classification, number_students
		FROM activities WHERE id = $1
	`

	activity := &domain.Activity{
		ID: id,
	}
	var gradeGroups string

	dst := []any{
		&activity.PartialTemplateID, &activity.EducationalProgramID, &activity.ActivityDistribution,
		&activity.ManagementType, &activity.StayType, &activity.ActivityName,
		&gradeGroups, &activity.WeeklyHours, &activity.SubtotalClassification, &activity.NumberStudents,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	activity.GradeGroups = splitGradeGroups(gradeGroups)
	return activity, nil
}

func (r *Repository) UpdateActivity(activity *domain.Activity) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE activities
		SET
			partial_template_id = $1,
			educational_program_id = $2,
			activity_distribution = $3,
			management_type = NULLIF($4, ''),
			stay_type = NULLIF($5, ''),
			activity_name = NULLIF($6, ''),
			grade_groups = $7,
			weekly_hours = $8,
			subtotal_classification = $9,
			number_students = $10
		WHERE id = $11
		RETURNING id
	`

	args := []any{
		activity.PartialTemplateID,
		activity.EducationalProgramID,
		activity.ActivityDistribution,
		activity.ManagementType,
		activity.StayType,
		activity.ActivityName,
		joinGradeGroups(activity.GradeGroups),
		activity.WeeklyHours,
		activity.SubtotalClassification,
		activity.NumberStudents,
		activity.ID,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&activity.ID); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteActivity(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM activities WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
