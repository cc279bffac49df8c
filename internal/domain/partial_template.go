package domain

// PartialTemplate es la carga académica individual de un trabajador
// dentro de una plantilla. NT es el número de trabajador.
type PartialTemplate struct {
	ID         int64      `json:"id"`
	NT         int64      `json:"nt"`
	Name       string     `json:"name"`
	Gender     string     `json:"gender,omitempty"`
	Position   string     `json:"position"`
	Total      int32      `json:"total"`
	Status     string     `json:"status"`
	Year       string     `json:"year"`
	Period     string     `json:"period"`
	TemplateID int64      `json:"templateId"`
	Activities []Activity `json:"activities,omitempty"`
	Comments   []Comment  `json:"comments,omitempty"`
	Version    int32      `json:"-"`
}
