package domain

// PersonalData es el directorio de personal. NT (número de trabajador)
// es la clave con la que las plantillas referencian a responsables y
// revisores.
type PersonalData struct {
	NT                int64  `json:"ide"`
	Name              string `json:"name"`
	Active            bool   `json:"active"`
	Position          string `json:"position,omitempty"`
	Area              string `json:"area,omitempty"`
	Gender            string `json:"gender,omitempty"`
	Email             string `json:"email,omitempty"`
	InstitutionalMail string `json:"institutionalMail,omitempty"`
	Degree            string `json:"degree,omitempty"`
	Version           int32  `json:"-"`
}
