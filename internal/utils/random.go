package utils

import (
	"fmt"
	"math/rand"

	"github.com/utim-dev/workload-manager/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"María", "José", "Juan", "Ana", "Luis", "Carmen", "Carlos", "Laura",
	"Miguel", "Sofía", "Jorge", "Elena", "Pedro", "Lucía", "Fernando",
	"Gabriela", "Ricardo", "Patricia", "Alejandro", "Verónica",
}

var commonSurnames = []string{
	"García", "Hernández", "Martínez", "López", "González", "Pérez",
	"Rodríguez", "Sánchez", "Ramírez", "Cruz", "Flores", "Gómez",
	"Morales", "Vázquez", "Reyes", "Jiménez", "Torres", "Díaz",
	"Gutiérrez", "Mendoza",
}

func GenerateRandomFullName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	paternal := commonSurnames[rand.Intn(len(commonSurnames))]
	maternal := commonSurnames[rand.Intn(len(commonSurnames))]
	return fmt.Sprintf("%s %s %s", first, paternal, maternal)
}

var roles = []domain.Role{
	domain.RoleCapturist,
	domain.RoleReviewer,
	domain.RoleAdmin,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

var accents = map[rune]rune{
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u', 'ñ': 'n', 'ü': 'u',
	'Á': 'a', 'É': 'e', 'Í': 'i', 'Ó': 'o', 'Ú': 'u', 'Ñ': 'n', 'Ü': 'u',
}

var digits = "0123456789"

// GenerateEmailLocalPart deriva un identificador de correo a partir del
// nombre completo, sin acentos y con un sufijo numérico.
func GenerateEmailLocalPart(fullName string) string {
	local := make([]rune, 0, len(fullName))
	for _, r := range fullName {
		if plain, ok := accents[r]; ok {
			r = plain
		}
		switch {
		case r >= 'a' && r <= 'z':
			local = append(local, r)
		case r >= 'A' && r <= 'Z':
			local = append(local, r+('a'-'A'))
		case r == ' ':
			if len(local) > 0 && local[len(local)-1] != '.' {
				local = append(local, '.')
			}
		}
	}

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local = append(local, rune(digits[rand.Intn(len(digits))]))
	}

	return string(local)
}

func GenerateRandomUser(password string, emailDomainName string) (*domain.User, error) {
	fullName := GenerateRandomFullName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        GenerateEmailLocalPart(fullName) + "@" + emailDomainName,
		PasswordHash: string(passwordHash),
		FullName:     fullName,
		Role:         GenerateRandomRole(),
	}

	return user, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	random_password := make([]rune, length)
	for i := range random_password {
		random_password[i] = letters[rand.Intn(len(letters))]
	}
	return string(random_password)
}

var positions = []string{
	"Docente de asignatura",
	"Docente de tiempo completo",
	"Técnico académico",
}

func GenerateRandomPosition() string {
	return positions[rand.Intn(len(positions))]
}

// GenerateRandomTotal devuelve un total de horas válido para el puesto.
func GenerateRandomTotal(position string) int32 {
	switch position {
	case "Docente de asignatura":
		return int32(rand.Intn(16) + 17) // 17..32
	case "Docente de tiempo completo":
		return 40
	default:
		return int32(rand.Intn(30) + 10)
	}
}

var genders = []string{"Femenino", "Masculino"}

func GenerateRandomGender() string {
	return genders[rand.Intn(len(genders))]
}

func GenerateRandomStaff(emailDomainName string) *domain.PersonalData {
	fullName := GenerateRandomFullName()
	local := GenerateEmailLocalPart(fullName)

	return &domain.PersonalData{
		NT:                int64(rand.Intn(900000) + 100000),
		Name:              fullName,
		Active:            true,
		Position:          GenerateRandomPosition(),
		Gender:            GenerateRandomGender(),
		Email:             local + "@" + emailDomainName,
		InstitutionalMail: local + "@utim.edu.mx",
		Degree:            "Maestría",
	}
}
