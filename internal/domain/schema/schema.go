// Package schema implementa la validación declarativa de registros crudos
// (mapas clave/valor ya deserializados) antes de construir entidades de dominio.
// Cada entidad tiene un esquema base con reglas de presencia, tipo, rango
// numérico y formato de email. Cualquier incumplimiento es fatal para la corrida.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/asaskevich/govalidator"

	"github.com/jhoicas/topup-report/internal/domain"
)

// Kind tipo esperado de un campo del registro crudo.
type Kind int

const (
	KindInt Kind = iota
	KindText
	KindBool
	KindEmail
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "entero"
	case KindText:
		return "texto"
	case KindBool:
		return "booleano"
	case KindEmail:
		return "email"
	default:
		return "desconocido"
	}
}

// Rule regla de validación para un campo: presencia, tipo y rango mínimo.
// Min solo aplica a KindInt; nil = sin cota inferior.
type Rule struct {
	Field    string
	Required bool
	Kind     Kind
	Min      *int64
}

// Schema conjunto de reglas para una clase de entidad (company, user).
type Schema struct {
	Entity string
	Rules  []Rule
}

func minInt(n int64) *int64 { return &n }

// Company esquema base de un registro crudo de empresa.
func Company() Schema {
	return Schema{
		Entity: "company",
		Rules: []Rule{
			{Field: "id", Required: true, Kind: KindInt, Min: minInt(1)},
			{Field: "name", Required: true, Kind: KindText},
			{Field: "top_up", Required: true, Kind: KindInt, Min: minInt(0)},
			{Field: "email_status", Required: true, Kind: KindBool},
		},
	}
}

// User esquema base de un registro crudo de usuario.
func User() Schema {
	return Schema{
		Entity: "user",
		Rules: []Rule{
			{Field: "id", Required: true, Kind: KindInt, Min: minInt(1)},
			{Field: "first_name", Required: true, Kind: KindText},
			{Field: "last_name", Required: true, Kind: KindText},
			{Field: "email", Required: true, Kind: KindEmail},
			{Field: "company_id", Required: true, Kind: KindInt, Min: minInt(1)},
			{Field: "email_status", Required: true, Kind: KindBool},
			{Field: "active_status", Required: true, Kind: KindBool},
			{Field: "tokens", Required: true, Kind: KindInt, Min: minInt(0)},
		},
	}
}

// Validate valida un registro crudo contra el esquema. Acumula todos los campos
// ofensores en un solo error que envuelve domain.ErrSchemaViolation, con
// entidad, índice del registro, campo, valor y motivo.
func (s Schema) Validate(index int, rec map[string]any) error {
	var errs []error
	for _, r := range s.Rules {
		raw, ok := rec[r.Field]
		if !ok || raw == nil {
			if r.Required {
				errs = append(errs, fmt.Errorf("campo %q requerido y ausente", r.Field))
			}
			continue
		}
		if err := r.check(raw); err != nil {
			errs = append(errs, fmt.Errorf("campo %q: %w", r.Field, err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	head := fmt.Errorf("%w: %s[%d]", domain.ErrSchemaViolation, s.Entity, index)
	return errors.Join(append([]error{head}, errs...)...)
}

func (r Rule) check(raw any) error {
	switch r.Kind {
	case KindInt:
		n, ok := asInt(raw)
		if !ok {
			return fmt.Errorf("se esperaba %s, se recibió %T (%v)", r.Kind, raw, raw)
		}
		if r.Min != nil && n < *r.Min {
			return fmt.Errorf("valor %d fuera de rango (mínimo %d)", n, *r.Min)
		}
	case KindText:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("se esperaba %s, se recibió %T (%v)", r.Kind, raw, raw)
		}
		if s == "" {
			return errors.New("texto vacío")
		}
	case KindBool:
		if _, ok := raw.(bool); !ok {
			return fmt.Errorf("se esperaba %s, se recibió %T (%v)", r.Kind, raw, raw)
		}
	case KindEmail:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("se esperaba %s, se recibió %T (%v)", r.Kind, raw, raw)
		}
		if !govalidator.IsEmail(s) {
			return fmt.Errorf("dirección de email inválida: %q", s)
		}
	}
	return nil
}

// Int extrae el valor entero de un campo ya validado según su esquema.
// Sobre un campo no validado devuelve 0 si el valor no es representable.
func Int(rec map[string]any, field string) int {
	n, _ := asInt(rec[field])
	return int(n)
}

// Text extrae el valor de texto de un campo ya validado.
func Text(rec map[string]any, field string) string {
	s, _ := rec[field].(string)
	return s
}

// Bool extrae el valor booleano de un campo ya validado.
func Bool(rec map[string]any, field string) bool {
	b, _ := rec[field].(bool)
	return b
}

// asInt acepta las representaciones enteras que produce la deserialización JSON:
// json.Number integral, int, int64 y float64 sin parte fraccionaria.
func asInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int64(v), true
	default:
		return 0, false
	}
}
