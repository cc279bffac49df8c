package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/utim-dev/workload-manager/backend/internal/config"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
	"github.com/utim-dev/workload-manager/backend/internal/repository"
	"github.com/utim-dev/workload-manager/backend/internal/service"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	templates *service.TemplateService
	partials  *service.PartialTemplateService
	subjects  *service.SubjectService

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		templates: service.NewTemplateService(repo),
		partials:  service.NewPartialTemplateService(repo),
		subjects:  service.NewSubjectService(repo),

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// Autenticación
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// Todo lo demás exige sesión iniciada
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/areas", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateArea)
			r.Get("/", h.GetAllAreas)
			r.Get("/with-programs", h.GetAreasWithPrograms)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetArea)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateArea)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteArea)
			})
		})

		r.Route("/educational-programs", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateEducationalProgram)
			r.Get("/", h.GetAllEducationalPrograms)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetEducationalProgram)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateEducationalProgram)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteEducationalProgram)
				r.Get("/subjects", h.GetSubjectsByProgram)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/subjects", h.CreateManySubjects)
			})
		})

		r.Route("/subjects", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateSubject)
			r.Get("/", h.GetAllSubjects)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetSubject)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateSubject)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteSubject)
			})
		})

		r.Route("/staff", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateStaff)
			r.Get("/", h.GetAllStaff)
			r.Route("/{nt}", func(r chi.Router) {
				r.Get("/", h.GetStaff)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateStaff)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteStaff)
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleCapturist, domain.RoleAdmin})).Post("/", h.CreateTemplate)
			r.Get("/", h.GetAllTemplates)
			r.Get("/with-partials", h.GetAllTemplatesWithPartials)
			r.Get("/area/{areaId}", h.GetTemplatesByArea)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleReviewer, domain.RoleAdmin})).Patch("/", h.UpdateTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteTemplate)
			})
		})

		r.Route("/partial-templates", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleCapturist, domain.RoleAdmin})).Post("/", h.CreatePartialTemplate)
			r.With(h.RequiredRole([]domain.Role{domain.RoleCapturist, domain.RoleAdmin})).Post("/many", h.CreateManyPartialTemplates)
			r.Get("/", h.GetAllPartialTemplates)
			r.Get("/with-activities", h.GetAllPartialTemplatesWithActivities)
			r.Get("/with-comments", h.GetAllPartialTemplatesWithComments)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetPartialTemplate)
				r.Get("/activities", h.GetPartialTemplateActivities)
				r.Get("/comments", h.GetPartialTemplateComments)
				r.Patch("/", h.UpdatePartialTemplate)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeletePartialTemplate)
			})
		})

		r.Route("/activities", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleCapturist, domain.RoleAdmin})).Post("/", h.CreateActivity)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetActivity)
				r.Patch("/", h.UpdateActivity)
				r.With(h.RequiredRole([]domain.Role{domain.RoleCapturist, domain.RoleAdmin})).Delete("/", h.DeleteActivity)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleReviewer, domain.RoleAdmin})).Post("/", h.CreateComment)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.GetComment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleReviewer, domain.RoleAdmin})).Patch("/", h.UpdateComment)
				r.With(h.RequiredRole([]domain.Role{domain.RoleReviewer, domain.RoleAdmin})).Delete("/", h.DeleteComment)
			})
		})
	})
}
