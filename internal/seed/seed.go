// Package seed genera datos de demostración: áreas, programas, materias,
// directorio de personal y plantillas del periodo vigente.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"time"

	"github.com/utim-dev/workload-manager/backend/internal/config"
	"github.com/utim-dev/workload-manager/backend/internal/domain"
	"github.com/utim-dev/workload-manager/backend/internal/repository"
	"github.com/utim-dev/workload-manager/backend/internal/service"
	"github.com/utim-dev/workload-manager/backend/internal/utils"
)

var areaCatalog = map[string][]domain.EducationalProgram{
	"Tecnologías de la Información": {
		{Abbreviation: "TI-DSM", Description: "Desarrollo de Software Multiplataforma"},
		{Abbreviation: "TI-IRDT", Description: "Infraestructura de Redes Digitales"},
	},
	"Mecatrónica": {
		{Abbreviation: "MEC-AUT", Description: "Automatización"},
		{Abbreviation: "MEC-SM", Description: "Sistemas de Manufactura"},
	},
	"Procesos Alimentarios": {
		{Abbreviation: "PA", Description: "Procesos Alimentarios"},
	},
	"Administración": {
		{Abbreviation: "ADM-CH", Description: "Capital Humano"},
		{Abbreviation: "ADM-FN", Description: "Formulación de Negocios"},
	},
	"Lengua Inglesa": {
		{Abbreviation: "LI", Description: "Lengua Inglesa"},
	},
}

// SeedDemoData inserta un catálogo completo de demostración. Los
// errores por registros duplicados se registran y no detienen la carga.
func SeedDemoData(cfg *config.Config, r *repository.Repository) {
	now := time.Now()
	period := service.CurrentPeriod(now, false)
	year := strconv.Itoa(now.Year())

	// Directorio de personal
	staff := make([]*domain.PersonalData, 0, 20)
	for i := 0; i < 20; i++ {
		member := utils.GenerateRandomStaff(cfg.Email.UserDomain)
		if err := r.CreateStaff(member); err != nil {
			slog.Error("no se pudo insertar al trabajador", "nt", member.NT, "error", err)
			continue
		}
		staff = append(staff, member)
	}
	if len(staff) < 2 {
		slog.Error("directorio de personal insuficiente para continuar")
		return
	}
	slog.Info("directorio de personal insertado", "count", len(staff))

	// Áreas, programas y una plantilla del periodo vigente por área
	templateCnt := 0
	partialCnt := 0
	for name, programs := range areaCatalog {
		area := &domain.Area{Name: name}
		if err := r.CreateArea(area); err != nil {
			slog.Error("no se pudo insertar el área", "name", name, "error", err)
			continue
		}

		for i := range programs {
			program := programs[i]
			program.AreaID = area.ID
			if err := r.CreateEducationalProgram(&program); err != nil {
				slog.Error("no se pudo insertar el programa", "abbreviation", program.Abbreviation, "error", err)
				continue
			}

			subjects := []*domain.Subject{
				{SubjectName: fmt.Sprintf("Fundamentos de %s", program.Description), WeeklyHours: 4, TotalHours: 64, MonthPeriod: "enero - abril", EducationalProgramID: program.ID},
				{SubjectName: fmt.Sprintf("Proyecto integrador de %s", program.Description), WeeklyHours: 5, TotalHours: 80, MonthPeriod: "mayo - agosto", EducationalProgramID: program.ID},
			}
			if err := r.CreateSubjects(subjects); err != nil {
				slog.Error("no se pudieron insertar las materias", "abbreviation", program.Abbreviation, "error", err)
			}
		}

		responsible := staff[rand.Intn(len(staff))]
		reviewer := staff[rand.Intn(len(staff))]

		template := &domain.Template{
			State:         domain.StatePending,
			AreaID:        area.ID,
			Period:        period,
			ResponsibleID: responsible.NT,
			RevisedByID:   reviewer.NT,
		}
		if err := r.CreateTemplate(template); err != nil {
			slog.Error("no se pudo insertar la plantilla", "area", name, "error", err)
			continue
		}
		templateCnt++

		// Carga parcial de algunos trabajadores del directorio
		for i := 0; i < 3; i++ {
			member := staff[rand.Intn(len(staff))]
			pt := &domain.PartialTemplate{
				NT:         member.NT,
				Name:       member.Name,
				Gender:     member.Gender,
				Position:   member.Position,
				Total:      utils.GenerateRandomTotal(member.Position),
				Status:     domain.StatePending,
				Year:       year,
				Period:     period,
				TemplateID: template.ID,
			}

			activities := []*domain.Activity{
				{
					ActivityDistribution: "Docencia",
					ActivityName:         fmt.Sprintf("Asignatura %s-%d", name, i+1),
					GradeGroups:          []string{"A", "B"},
					WeeklyHours:          pt.Total - 5,
					NumberStudents:       int32(rand.Intn(25) + 15),
				},
				{
					ActivityDistribution: "Tutorías",
					WeeklyHours:          5,
				},
			}

			if err := r.CreatePartialTemplateWithActivities(pt, activities); err != nil {
				slog.Error("no se pudo insertar la plantilla parcial", "nt", member.NT, "error", err)
				continue
			}
			partialCnt++
		}
	}

	slog.Info("datos de demostración insertados", "templates", templateCnt, "partialTemplates", partialCnt)
}
