package repository

import (
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (r *Repository) CreateUser(user *domain.User) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO users (email, password_hash, full_name, role, nt)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, is_active, created_at, version
	`

	args := []any{user.Email, user.PasswordHash, user.FullName, user.Role, user.NT}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&user.ID, &user.IsActive, &user.CreatedAt, &user.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetUserByID(id int64) (*domain.User, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT email, password_hash, full_name, role, nt, is_active, created_at, version
		FROM users WHERE id = $1
	`

	user := &domain.User{
		ID: id,
	}

	dst := []any{&user.Email, &user.PasswordHash, &user.FullName, &user.Role, &user.NT, &user.IsActive, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetUserByEmail(email string) (*domain.User, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, password_hash, full_name, role, nt, is_active, created_at, version
		FROM users WHERE email = $1
	`

	user := &domain.User{
		Email: email,
	}

	dst := []any{&user.ID, &user.PasswordHash, &user.FullName, &user.Role, &user.NT, &user.IsActive, &user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, email).Scan(dst...); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) GetAllUsers() ([]*domain.User, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, email, password_hash, full_name, role, nt, is_active, created_at, version FROM users
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user := &domain.User{}
		dst := []any{&user.ID, &user.Email, &user.PasswordHash, &user.FullName, &user.Role, &user.NT, &user.IsActive, &user.CreatedAt, &user.Version}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *Repository) UpdateUser(user *domain.User) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE users
		SET
			email = $1,
			password_hash = $2,
			full_name = $3,
			role = $4,
			nt = $5,
			is_active = $6,
			version = version + 1
		WHERE id = $7 AND version = $8
		RETURNING created_at, version
	`

	args := []any{user.Email, user.PasswordHash, user.FullName, user.Role, user.NT, user.IsActive, user.ID, user.Version}
	dst := []any{&user.CreatedAt, &user.Version}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(dst...); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteUser(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM users WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
