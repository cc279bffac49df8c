package repository

import (
	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

func (r *Repository) CreateComment(comment *domain.Comment) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		INSERT INTO comments (comment, partial_template_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, comment.Comment, comment.PartialTemplateID).Scan(&comment.ID, &comment.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetCommentsByPartialTemplate(partialTemplateID int64) ([]*domain.Comment, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT id, comment, created_at
		FROM comments
		WHERE partial_template_id = $1
		ORDER BY created_at
	`

	rows, err := r.dbpool.QueryContext(ctx, query, partialTemplateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*domain.Comment, 0)
	for rows.Next() {
		comment := &domain.Comment{
			PartialTemplateID: partialTemplateID,
		}
		if err := rows.Scan(&comment.ID, &comment.Comment, &comment.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *Repository) GetCommentByID(id int64) (*domain.Comment, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		SELECT comment, partial_template_id, created_at
		FROM comments WHERE id = $1
	`

	comment := &domain.Comment{
		ID: id,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(&comment.Comment, &comment.PartialTemplateID, &comment.CreatedAt); err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *Repository) UpdateComment(comment *domain.Comment) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		UPDATE comments
		SET comment = $1
		WHERE id = $2
		RETURNING created_at
	`

	if err := r.dbpool.QueryRowContext(ctx, query, comment.Comment, comment.ID).Scan(&comment.CreatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteComment(id int64) error {
	ctx, cancel := r.queryContext()
	defer cancel()

	query := `
		DELETE FROM comments WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}
