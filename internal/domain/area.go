package domain

// Area es la unidad organizacional raíz: es dueña de los programas
// educativos y de las plantillas de carga académica.
type Area struct {
	ID                  int64                `json:"id"`
	Name                string               `json:"name"`
	EducationalPrograms []EducationalProgram `json:"educationalPrograms,omitempty"`
	Version             int32                `json:"-"`
}
