package domain

import (
	"time"
)

type Role string

const (
	RoleCapturist Role = "capturista"
	RoleReviewer  Role = "revisor"
	RoleAdmin     Role = "administrador"
)

// User es una identidad de acceso. NT enlaza, cuando aplica, con el
// directorio de personal.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         Role      `json:"role"`
	NT           *int64    `json:"nt,omitempty"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
