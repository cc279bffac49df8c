package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/utim-dev/workload-manager/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

// queryContext crea el contexto con el timeout de consulta configurado.
func (r *Repository) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}

// exists ejecuta una consulta EXISTS con un solo parámetro.
func (r *Repository) exists(query string, arg any) (bool, error) {
	ctx, cancel := r.queryContext()
	defer cancel()

	isExists := false
	if err := r.dbpool.QueryRowContext(ctx, query, arg).Scan(&isExists); err != nil {
		return false, err
	}

	return isExists, nil
}
