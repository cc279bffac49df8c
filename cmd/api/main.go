package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/utim-dev/workload-manager/backend/internal/config"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
	"github.com/utim-dev/workload-manager/backend/internal/handler"
	"github.com/utim-dev/workload-manager/backend/internal/repository"
	"golang.org/x/crypto/bcrypt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	/**********************************************
	 * Logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * Configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", "error", err)
		return
	}

	/**********************************************
	 * Base de datos
	 **********************************************/
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

	/**********************************************
	 * Repository y migraciones
	 **********************************************/
	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.Migrate(); err != nil {
		logger.Error("no se pudieron aplicar las migraciones", "error", err)
		return
	}

	/**********************************************
	 * Administrador inicial
	 **********************************************/
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.InitialAdmin.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("no se pudo generar el hash del administrador inicial", "error", err)
		return
	}
	initialAdmin := &domain.User{
		Email:        cfg.InitialAdmin.Email,
		PasswordHash: string(passwordHash),
		FullName:     cfg.InitialAdmin.FullName,
		Role:         domain.RoleAdmin,
	}
	if err := repo.CreateUser(initialAdmin); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "users_email_key":
				// El administrador inicial ya existe
			default:
				logger.Error("no se pudo crear el administrador inicial", "error", err)
				return
			}
		default:
			logger.Error("no se pudo crear el administrador inicial", "error", err)
			return
		}
	}

	/**********************************************
	 * RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no se pudo conectar a rabbitmq", "error", err)
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no se pudo abrir el canal", "error", err)
		return
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no se pudo declarar la cola", "error", err)
		return
	}

	/**********************************************
	 * Redis
	 **********************************************/
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	/**********************************************
	 * Handler
	 **********************************************/
	handler, err := handler.NewHandler(cfg, repo, ch, rdb)
	if err != nil {
		logger.Error("no se pudo crear el handler", "error", err)
		return
	}
	handler.RegisterRoutes()

	/**********************************************
	 * Servidor HTTP
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      handler.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("iniciando el servidor...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("no se pudo iniciar el servidor", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("apagando el servidor...")

	ctx, cancel = context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("no se pudo apagar el servidor", slog.String("error", err.Error()))
	}
	logger.Info("servidor apagado correctamente")
}
