package service

import (
	"database/sql"
	"slices"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
)

// ── Mock TemplateStore ──

type mockTemplateStore struct {
	areas     map[int64]bool
	staff     map[int64]bool
	templates map[int64]*domain.Template
	nextID    int64

	// si failWith no es nulo, toda operación lo devuelve
	failWith    error
	existsCalls int
}

func newMockTemplateStore() *mockTemplateStore {
	return &mockTemplateStore{
		areas:     make(map[int64]bool),
		staff:     make(map[int64]bool),
		templates: make(map[int64]*domain.Template),
	}
}

func (m *mockTemplateStore) ExistsArea(id int64) (bool, error) {
	m.existsCalls++
	if m.failWith != nil {
		return false, m.failWith
	}
	return m.areas[id], nil
}

func (m *mockTemplateStore) ExistsStaff(nt int64) (bool, error) {
	m.existsCalls++
	if m.failWith != nil {
		return false, m.failWith
	}
	return m.staff[nt], nil
}

func (m *mockTemplateStore) ExistsTemplate(id int64) (bool, error) {
	m.existsCalls++
	if m.failWith != nil {
		return false, m.failWith
	}
	_, exists := m.templates[id]
	return exists, nil
}

func (m *mockTemplateStore) CreateTemplate(t *domain.Template) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	t.ID = m.nextID
	t.Version = 1
	stored := *t
	m.templates[t.ID] = &stored
	return nil
}

func (m *mockTemplateStore) GetAllTemplates() ([]*domain.Template, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	templates := make([]*domain.Template, 0, len(m.templates))
	for _, t := range m.templates {
		copied := *t
		templates = append(templates, &copied)
	}
	return templates, nil
}

func (m *mockTemplateStore) GetTemplateByID(id int64) (*domain.Template, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	t, exists := m.templates[id]
	if !exists {
		return nil, sql.ErrNoRows
	}
	copied := *t
	return &copied, nil
}

func (m *mockTemplateStore) GetTemplatesByArea(areaID int64) ([]*domain.Template, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	templates := make([]*domain.Template, 0)
	for _, t := range m.templates {
		if t.AreaID == areaID {
			copied := *t
			templates = append(templates, &copied)
		}
	}
	return templates, nil
}

func (m *mockTemplateStore) GetAllTemplatesWithPartials() ([]*domain.Template, error) {
	return m.GetAllTemplates()
}

func (m *mockTemplateStore) UpdateTemplateInPeriod(t *domain.Template, currentPeriods []string) error {
	if m.failWith != nil {
		return m.failWith
	}
	row, exists := m.templates[t.ID]
	// Misma semántica que el UPDATE condicionado: sin fila coincidente
	// no hay escritura
	if !exists || row.Version != t.Version || !slices.Contains(currentPeriods, row.Period) {
		return sql.ErrNoRows
	}
	t.Version++
	stored := *t
	m.templates[t.ID] = &stored
	return nil
}

func (m *mockTemplateStore) DeleteTemplate(id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.templates, id)
	return nil
}

// ── Mock PartialTemplateStore ──

type mockPartialTemplateStore struct {
	templates map[int64]bool
	partials  map[int64]*domain.PartialTemplate
	nextID    int64

	failWith   error
	lastStatus string
}

func newMockPartialTemplateStore() *mockPartialTemplateStore {
	return &mockPartialTemplateStore{
		templates: make(map[int64]bool),
		partials:  make(map[int64]*domain.PartialTemplate),
	}
}

func (m *mockPartialTemplateStore) ExistsTemplate(id int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	return m.templates[id], nil
}

func (m *mockPartialTemplateStore) CreatePartialTemplate(pt *domain.PartialTemplate) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	pt.ID = m.nextID
	pt.Version = 1
	stored := *pt
	m.partials[pt.ID] = &stored
	return nil
}

func (m *mockPartialTemplateStore) CreatePartialTemplates(pts []*domain.PartialTemplate) error {
	if m.failWith != nil {
		return m.failWith
	}
	for _, pt := range pts {
		if err := m.CreatePartialTemplate(pt); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockPartialTemplateStore) CreatePartialTemplateWithActivities(pt *domain.PartialTemplate, activities []*domain.Activity) error {
	if err := m.CreatePartialTemplate(pt); err != nil {
		return err
	}
	for _, activity := range activities {
		activity.PartialTemplateID = pt.ID
	}
	return nil
}

func (m *mockPartialTemplateStore) GetAllPartialTemplates(status string) ([]*domain.PartialTemplate, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	m.lastStatus = status
	pts := make([]*domain.PartialTemplate, 0)
	for _, pt := range m.partials {
		if status == "" || pt.Status == status {
			copied := *pt
			pts = append(pts, &copied)
		}
	}
	return pts, nil
}

func (m *mockPartialTemplateStore) GetPartialTemplateByID(id int64) (*domain.PartialTemplate, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	pt, exists := m.partials[id]
	if !exists {
		return nil, sql.ErrNoRows
	}
	copied := *pt
	return &copied, nil
}

func (m *mockPartialTemplateStore) GetPartialTemplateWithActivities(id int64) (*domain.PartialTemplate, error) {
	return m.GetPartialTemplateByID(id)
}

func (m *mockPartialTemplateStore) GetAllPartialTemplatesWithActivities(status string) ([]*domain.PartialTemplate, error) {
	return m.GetAllPartialTemplates(status)
}

func (m *mockPartialTemplateStore) GetPartialTemplateWithComments(id int64) (*domain.PartialTemplate, error) {
	return m.GetPartialTemplateByID(id)
}

func (m *mockPartialTemplateStore) GetAllPartialTemplatesWithComments(status string) ([]*domain.PartialTemplate, error) {
	return m.GetAllPartialTemplates(status)
}

func (m *mockPartialTemplateStore) UpdatePartialTemplate(pt *domain.PartialTemplate) error {
	if m.failWith != nil {
		return m.failWith
	}
	row, exists := m.partials[pt.ID]
	if !exists || row.Version != pt.Version {
		return sql.ErrNoRows
	}
	pt.Version++
	stored := *pt
	m.partials[pt.ID] = &stored
	return nil
}

func (m *mockPartialTemplateStore) DeletePartialTemplate(id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.partials, id)
	return nil
}

// ── Mock SubjectStore ──

type mockSubjectStore struct {
	programs map[int64]bool
	subjects map[int64]*domain.Subject
	nextID   int64

	failWith error
}

func newMockSubjectStore() *mockSubjectStore {
	return &mockSubjectStore{
		programs: make(map[int64]bool),
		subjects: make(map[int64]*domain.Subject),
	}
}

func (m *mockSubjectStore) ExistsEducationalProgram(id int64) (bool, error) {
	if m.failWith != nil {
		return false, m.failWith
	}
	return m.programs[id], nil
}

func (m *mockSubjectStore) CreateSubject(subject *domain.Subject) error {
	if m.failWith != nil {
		return m.failWith
	}
	m.nextID++
	subject.ID = m.nextID
	subject.Version = 1
	stored := *subject
	m.subjects[subject.ID] = &stored
	return nil
}

func (m *mockSubjectStore) CreateSubjects(subjects []*domain.Subject) error {
	if m.failWith != nil {
		return m.failWith
	}
	for _, subject := range subjects {
		if err := m.CreateSubject(subject); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockSubjectStore) GetAllSubjects() ([]*domain.Subject, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	subjects := make([]*domain.Subject, 0, len(m.subjects))
	for _, subject := range m.subjects {
		copied := *subject
		subjects = append(subjects, &copied)
	}
	return subjects, nil
}

func (m *mockSubjectStore) GetSubjectsByProgram(programID int64) ([]*domain.Subject, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	subjects := make([]*domain.Subject, 0)
	for _, subject := range m.subjects {
		if subject.EducationalProgramID == programID {
			copied := *subject
			subjects = append(subjects, &copied)
		}
	}
	return subjects, nil
}

func (m *mockSubjectStore) GetSubjectByID(id int64) (*domain.Subject, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	subject, exists := m.subjects[id]
	if !exists {
		return nil, sql.ErrNoRows
	}
	copied := *subject
	return &copied, nil
}

func (m *mockSubjectStore) UpdateSubject(subject *domain.Subject) error {
	if m.failWith != nil {
		return m.failWith
	}
	row, exists := m.subjects[subject.ID]
	if !exists || row.Version != subject.Version {
		return sql.ErrNoRows
	}
	subject.Version++
	stored := *subject
	m.subjects[subject.ID] = &stored
	return nil
}

func (m *mockSubjectStore) DeleteSubject(id int64) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.subjects, id)
	return nil
}
