package domain

import (
	"time"
)

// Estados permitidos para una plantilla y sus plantillas parciales.
const (
	StatePending   = "pendiente"
	StateApproved  = "aprobado"
	StateCorrected = "corrección"
)

// AllowedStates en el orden en el que se muestran al usuario.
var AllowedStates = []string{StatePending, StateApproved, StateCorrected}

// Template es un ciclo de revisión de carga académica de un área en un
// periodo cuatrimestral. ResponsibleID y RevisedByID referencian al
// número de trabajador (nt) del directorio de personal.
type Template struct {
	ID               int64             `json:"id"`
	State            string            `json:"state"`
	AreaID           int64             `json:"areaId"`
	Period           string            `json:"period"`
	ResponsibleID    int64             `json:"responsibleId"`
	RevisedByID      int64             `json:"revisedById"`
	PartialTemplates []PartialTemplate `json:"partialTemplates,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
	Version          int32             `json:"-"`
}
