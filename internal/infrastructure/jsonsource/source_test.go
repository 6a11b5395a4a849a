package jsonsource_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/topup-report/internal/domain"
	"github.com/jhoicas/topup-report/internal/infrastructure/jsonsource"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCompanyFileSource_LecturaValida(t *testing.T) {
	path := writeFixture(t, "companies.json", `[
		{"id": 1, "name": "Blue Cat Inc.", "top_up": 71, "email_status": false},
		{"id": 2, "name": "Yellow Mouse Inc.", "top_up": 37, "email_status": true}
	]`)

	recs, err := jsonsource.NewCompanyFileSource(path).FetchAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "Blue Cat Inc.", recs[0]["name"])
	assert.Equal(t, json.Number("71"), recs[0]["top_up"],
		"los números llegan como json.Number, no float64")
}

func TestUserFileSource_LecturaValida(t *testing.T) {
	path := writeFixture(t, "users.json", `[
		{"id": 1, "first_name": "Tanya", "last_name": "Simpson",
		 "email": "tanya.simpson@test.com", "company_id": 2,
		 "email_status": true, "active_status": true, "tokens": 55}
	]`)

	recs, err := jsonsource.NewUserFileSource(path).FetchAll()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, json.Number("55"), recs[0]["tokens"])
}

func TestFetchAll_FuenteAusente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-existe.json")

	_, err := jsonsource.NewCompanyFileSource(path).FetchAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMissingSource))
	assert.Contains(t, err.Error(), path, "el error debe nombrar el artefacto ausente")
}

func TestFetchAll_FuenteMalformada(t *testing.T) {
	path := writeFixture(t, "companies.json", `{"esto": "no es un arreglo"`)

	_, err := jsonsource.NewCompanyFileSource(path).FetchAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedSource))
}

func TestFetchAll_ElementoNoObjeto(t *testing.T) {
	path := writeFixture(t, "users.json", `[{"id": 1}, "cadena suelta"]`)

	_, err := jsonsource.NewUserFileSource(path).FetchAll()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedSource))
	assert.Contains(t, err.Error(), "users[1]", "el error debe ubicar el elemento ofensor")
}

func TestFetchAll_ArregloVacio(t *testing.T) {
	path := writeFixture(t, "companies.json", `[]`)

	recs, err := jsonsource.NewCompanyFileSource(path).FetchAll()
	require.NoError(t, err)
	assert.Empty(t, recs)
}
