// Package jsonsource implementa los puertos de entrada sobre archivos JSON.
// Cada archivo debe contener un arreglo de objetos; los números se decodifican
// como json.Number para no perder la distinción entero/fraccionario que el
// esquema necesita.
package jsonsource

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jhoicas/topup-report/internal/domain"
	"github.com/jhoicas/topup-report/internal/domain/repository"
)

// Asegura que los adaptadores implementan los puertos de dominio.
var (
	_ repository.CompanySource = (*CompanyFileSource)(nil)
	_ repository.UserSource    = (*UserFileSource)(nil)
)

// CompanyFileSource lee registros crudos de empresas desde un archivo JSON.
type CompanyFileSource struct {
	path string
}

// NewCompanyFileSource construye el adaptador para la ruta dada.
func NewCompanyFileSource(path string) *CompanyFileSource {
	return &CompanyFileSource{path: path}
}

// FetchAll lee y deserializa la colección completa.
func (s *CompanyFileSource) FetchAll() ([]map[string]any, error) {
	return readRecords(s.path, "companies")
}

// UserFileSource lee registros crudos de usuarios desde un archivo JSON.
type UserFileSource struct {
	path string
}

// NewUserFileSource construye el adaptador para la ruta dada.
func NewUserFileSource(path string) *UserFileSource {
	return &UserFileSource{path: path}
}

// FetchAll lee y deserializa la colección completa.
func (s *UserFileSource) FetchAll() ([]map[string]any, error) {
	return readRecords(s.path, "users")
}

func readRecords(path, artifact string) ([]map[string]any, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (%s)", domain.ErrMissingSource, artifact, path)
		}
		return nil, fmt.Errorf("abrir %s (%s): %w", artifact, path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var raw []json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %s (%s): %v", domain.ErrMalformedSource, artifact, path, err)
	}

	out := make([]map[string]any, 0, len(raw))
	for i, msg := range raw {
		var rec map[string]any
		d := json.NewDecoder(bytes.NewReader(msg))
		d.UseNumber()
		if err := d.Decode(&rec); err != nil {
			return nil, fmt.Errorf("%w: %s[%d] (%s): no es un objeto", domain.ErrMalformedSource, artifact, i, path)
		}
		out = append(out, rec)
	}
	return out, nil
}
