package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/topup-report/internal/domain"
	"github.com/jhoicas/topup-report/internal/domain/schema"
)

func validCompanyRec() map[string]any {
	return map[string]any{
		"id":           json.Number("1"),
		"name":         "Acme",
		"top_up":       json.Number("10"),
		"email_status": true,
	}
}

func validUserRec() map[string]any {
	return map[string]any{
		"id":            json.Number("1"),
		"first_name":    "Jane",
		"last_name":     "Doe",
		"email":         "jane@x.com",
		"company_id":    json.Number("1"),
		"email_status":  true,
		"active_status": true,
		"tokens":        json.Number("5"),
	}
}

func TestCompanySchema_RegistroValido(t *testing.T) {
	err := schema.Company().Validate(0, validCompanyRec())
	require.NoError(t, err, "un registro válido no debe producir error")
}

func TestUserSchema_RegistroValido(t *testing.T) {
	err := schema.User().Validate(0, validUserRec())
	require.NoError(t, err)
}

func TestCompanySchema_CampoRequeridoAusente(t *testing.T) {
	rec := validCompanyRec()
	delete(rec, "name")

	err := schema.Company().Validate(3, rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchemaViolation), "debe envolver ErrSchemaViolation")
	assert.Contains(t, err.Error(), "company[3]", "el error debe ubicar el registro ofensor")
	assert.Contains(t, err.Error(), `"name"`, "el error debe nombrar el campo ofensor")
}

func TestCompanySchema_TipoIncorrecto(t *testing.T) {
	rec := validCompanyRec()
	rec["top_up"] = "diez"

	err := schema.Company().Validate(0, rec)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrSchemaViolation))
	assert.Contains(t, err.Error(), `"top_up"`)
}

func TestCompanySchema_RangoNumerico(t *testing.T) {
	casos := []struct {
		nombre string
		campo  string
		valor  any
	}{
		{"id cero", "id", json.Number("0")},
		{"id negativo", "id", json.Number("-4")},
		{"top_up negativo", "top_up", json.Number("-1")},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			rec := validCompanyRec()
			rec[c.campo] = c.valor
			err := schema.Company().Validate(0, rec)
			require.Error(t, err, "valor fuera de rango debe rechazarse")
			assert.True(t, errors.Is(err, domain.ErrSchemaViolation))
		})
	}
}

func TestUserSchema_EmailInvalido(t *testing.T) {
	rec := validUserRec()
	rec["email"] = "no-es-un-email"

	err := schema.User().Validate(0, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"email"`)
}

func TestUserSchema_FloatNoIntegral(t *testing.T) {
	rec := validUserRec()
	rec["tokens"] = 5.5

	err := schema.User().Validate(0, rec)
	require.Error(t, err, "un float con parte fraccionaria no es un entero válido")
}

func TestUserSchema_FloatIntegralAceptado(t *testing.T) {
	// encoding/json sin UseNumber entrega float64; un valor integral es válido.
	rec := validUserRec()
	rec["tokens"] = float64(5)

	err := schema.User().Validate(0, rec)
	require.NoError(t, err)
}

func TestSchema_AcumulaTodosLosCamposOfensores(t *testing.T) {
	rec := validUserRec()
	rec["email"] = "basura"
	rec["tokens"] = json.Number("-3")
	delete(rec, "last_name")

	err := schema.User().Validate(0, rec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"email"`)
	assert.Contains(t, err.Error(), `"tokens"`)
	assert.Contains(t, err.Error(), `"last_name"`, "el error debe acumular todos los campos, no solo el primero")
}

func TestSchema_TextoVacioRechazado(t *testing.T) {
	rec := validUserRec()
	rec["first_name"] = ""

	err := schema.User().Validate(0, rec)
	require.Error(t, err)
}

func TestAccessors_SobreRegistroValidado(t *testing.T) {
	rec := validUserRec()
	require.NoError(t, schema.User().Validate(0, rec))

	assert.Equal(t, 1, schema.Int(rec, "id"))
	assert.Equal(t, "Doe", schema.Text(rec, "last_name"))
	assert.True(t, schema.Bool(rec, "active_status"))
}
