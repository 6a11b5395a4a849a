package entity

import (
	"github.com/jhoicas/topup-report/internal/domain/schema"
)

// User representa un usuario del sistema (pertenece a una Company vía CompanyID).
// Tokens es el único campo mutable: lo incrementa exactamente una vez el paso de
// recarga, y solo para usuarios activos.
type User struct {
	ID           int
	FirstName    string
	LastName     string
	Email        string
	CompanyID    int
	EmailStatus  bool // si el usuario acepta recibir email
	ActiveStatus bool // si el usuario cuenta para el procesamiento
	Tokens       int
}

// NewUser construye un usuario desde un registro crudo ya deserializado,
// revalidando contra el esquema base igual que NewCompany.
func NewUser(index int, rec map[string]any) (*User, error) {
	if err := schema.User().Validate(index, rec); err != nil {
		return nil, err
	}
	return &User{
		ID:           schema.Int(rec, "id"),
		FirstName:    schema.Text(rec, "first_name"),
		LastName:     schema.Text(rec, "last_name"),
		Email:        schema.Text(rec, "email"),
		CompanyID:    schema.Int(rec, "company_id"),
		EmailStatus:  schema.Bool(rec, "email_status"),
		ActiveStatus: schema.Bool(rec, "active_status"),
		Tokens:       schema.Int(rec, "tokens"),
	}, nil
}
