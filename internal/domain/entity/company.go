package entity

import (
	"errors"
	"fmt"

	"github.com/jhoicas/topup-report/internal/domain"
	"github.com/jhoicas/topup-report/internal/domain/schema"
)

// Company representa una empresa dueña de usuarios y de una regla de recarga.
// Users, UsersEmailed y UsersNotEmailed son campos derivados: los pobla el
// pipeline (enlace y categorización) y después se tratan como solo lectura.
type Company struct {
	ID          int
	Name        string
	TopUp       int  // tokens acreditados por evento de recarga
	EmailStatus bool // si la empresa permite enviar email a sus usuarios

	Users           []*User // usuarios activos de la empresa, en orden global
	UsersEmailed    []*User
	UsersNotEmailed []*User
}

// NewCompany construye una empresa desde un registro crudo ya deserializado.
// Revalida los campos contra el esquema base: los constructores no confían en
// que todos los llamadores entreguen datos pre-chequeados.
func NewCompany(index int, rec map[string]any) (*Company, error) {
	if err := schema.Company().Validate(index, rec); err != nil {
		return nil, err
	}
	return &Company{
		ID:          schema.Int(rec, "id"),
		Name:        schema.Text(rec, "name"),
		TopUp:       schema.Int(rec, "top_up"),
		EmailStatus: schema.Bool(rec, "email_status"),
	}, nil
}

// ActiveUsers filtra, sin mutar la entrada, los usuarios activos que referencian
// esta empresa. Preserva el orden del llamador.
func (c *Company) ActiveUsers(users []*User) []*User {
	out := make([]*User, 0)
	for _, u := range users {
		if u.CompanyID == c.ID && u.ActiveStatus {
			out = append(out, u)
		}
	}
	return out
}

// ValidateLinked chequeo estricto post-enlace: detecta corrupción introducida
// por el propio pipeline sobre los campos derivados.
func (c *Company) ValidateLinked() error {
	var errs []error
	for _, u := range c.Users {
		if u.CompanyID != c.ID {
			errs = append(errs, fmt.Errorf("usuario %d enlazado a empresa %d pero referencia %d", u.ID, c.ID, u.CompanyID))
		}
		if !u.ActiveStatus {
			errs = append(errs, fmt.Errorf("usuario %d inactivo presente en users de empresa %d", u.ID, c.ID))
		}
		if u.Tokens < 0 {
			errs = append(errs, fmt.Errorf("usuario %d con balance negativo (%d)", u.ID, u.Tokens))
		}
	}
	if len(c.UsersEmailed)+len(c.UsersNotEmailed) != len(c.Users) {
		errs = append(errs, fmt.Errorf("particiones de empresa %d no cubren users: %d+%d != %d",
			c.ID, len(c.UsersEmailed), len(c.UsersNotEmailed), len(c.Users)))
	}
	seen := make(map[int]bool, len(c.UsersEmailed))
	for _, u := range c.UsersEmailed {
		seen[u.ID] = true
	}
	for _, u := range c.UsersNotEmailed {
		if seen[u.ID] {
			errs = append(errs, fmt.Errorf("usuario %d presente en ambas particiones de empresa %d", u.ID, c.ID))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	head := fmt.Errorf("%w: company[id=%d] post-enlace", domain.ErrSchemaViolation, c.ID)
	return errors.Join(append([]error{head}, errs...)...)
}
