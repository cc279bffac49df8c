package repository

import (
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (r *Repository) CreateStaff(staff *domain.PersonalData) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO personal_data (nt, name, active, position, area, gender, email, institutional_mail, degree)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), NULLIF($9, ''))
		RETURNING version
	`

	args := []any{staff.NT, staff.Name, staff.Active, staff.Position, staff.Area, staff.Gender, staff.Email, staff.InstitutionalMail, staff.Degree}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetStaffByNT(nt int64) (*domain.PersonalData, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT name, active, COALESCE(position, ''), COALESCE(area, ''), COALESCE(gender, ''),
			COALESCE(email, ''), COALESCE(institutional_mail, ''), COALESCE(degree, ''), version
		FROM personal_data WHERE nt = $1
	`

	staff := &domain.PersonalData{
		NT: nt,
	}

	dst := []any{&staff.Name, &staff.Active, &staff.Position, &staff.Area, &staff.Gender, &staff.Email, &staff.InstitutionalMail, &staff.Degree, &staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, nt).Scan(dst...); err != nil {
		return nil, err
	}

	return staff, nil
}

func (r *Repository) GetAllStaff() ([]*domain.PersonalData, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT nt, name, active, COALESCE(position, ''), COALESCE(area, ''), COALESCE(gender, ''),
			COALESCE(email, ''), COALESCE(institutional_mail, ''), COALESCE(degree, ''), version
		FROM personal_data
		ORDER BY name
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	staffList := make([]*domain.PersonalData, 0)
	for rows.Next() {
		staff := &domain.PersonalData{}
		dst := []any{&staff.NT, &staff.Name, &staff.Active, &staff.Position, &staff.Area, &staff.Gender, &staff.Email, &staff.InstitutionalMail, &staff.Degree, &staff.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		staffList = append(staffList, staff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return staffList, nil
}

func (r *Repository) UpdateStaff(staff *domain.PersonalData) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE personal_data
		SET
			name = $1,
			active = $2,
			position = NULLIF($3, ''),
			area = NULLIF($4, ''),
			gender = NULLIF($5, ''),
			email = NULLIF($6, ''),
			institutional_mail = NULLIF($7, ''),
			degree = NULLIF($8, ''),
			version = version + 1
		WHERE nt = $9 AND version = $10
		RETURNING version
	`

	args := []any{staff.Name, staff.Active, staff.Position, staff.Area, staff.Gender, staff.Email, staff.InstitutionalMail, staff.Degree, staff.NT, staff.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&staff.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteStaff(nt int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM personal_data WHERE nt = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, nt)
	if err != nil {
		return err
	}

	return nil
}

// ExistsStaff verifica la existencia de un trabajador por su número de
// trabajador, sin importar si sigue activo: las plantillas históricas
// conservan responsables y revisores dados de baja.
func (r *Repository) ExistsStaff(nt int64) (bool, error) {
	return r.exists(`SELECT EXISTS (SELECT 1 FROM personal_data WHERE nt = $1)`, nt)
}
