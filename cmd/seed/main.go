package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/utim-dev/workload-manager/backend/internal/config"
	"github.com/utim-dev/workload-manager/backend/internal/repository"
	"github.com/utim-dev/workload-manager/backend/internal/seed"
	"github.com/utim-dev/workload-manager/backend/internal/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: insertar usuarios aleatorios, 2: insertar trabajadores aleatorios, 3: insertar catálogo de demostración)")
	flag.IntVar(&n, "n", 5, "cantidad de registros a insertar")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no se pudo crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open no abre conexiones por sí mismo, hay que hacer ping
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no se pudo conectar a la base de datos", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Migrate(); err != nil {
		logger.Error("no se pudieron aplicar las migraciones", "error", err)
		return
	}

	switch op {
	case 0:
		slog.Error("no se indicó ninguna operación")
	case 1:
		if n <= 0 {
			slog.Error("la cantidad de usuarios debe ser positiva")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			user, err := utils.GenerateRandomUser(cfg.Seed.UserPassword, cfg.Email.UserDomain)
			if err != nil {
				slog.Error("no se pudo generar el usuario aleatorio", slog.String("error", err.Error()))
				continue
			}

			if err := repo.CreateUser(user); err != nil {
				slog.Error("no se pudo insertar el usuario", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("usuarios insertados", slog.Int("count", cnt))
	case 2:
		if n <= 0 {
			slog.Error("la cantidad de trabajadores debe ser positiva")
			return
		}

		cnt := 0
		for i := 0; i < n; i++ {
			staff := utils.GenerateRandomStaff(cfg.Email.UserDomain)
			if err := repo.CreateStaff(staff); err != nil {
				slog.Error("no se pudo insertar al trabajador", slog.String("error", err.Error()))
				continue
			}

			cnt++
		}

		slog.Info("trabajadores insertados", slog.Int("count", cnt))
	case 3:
		seed.SeedDemoData(cfg, repo)
	default:
		slog.Error("la operación indicada no existe")
	}
}
