package domain

import (
	"time"
)

// Comment es una observación de un revisor sobre una plantilla parcial.
type Comment struct {
	ID                int64     `json:"id"`
	Comment           string    `json:"comment"`
	PartialTemplateID int64     `json:"partialTemplateId"`
	CreatedAt         time.Time `json:"createdAt"`
}
