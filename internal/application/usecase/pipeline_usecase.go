package usecase

import (
	"fmt"
	"sort"

	"github.com/jhoicas/topup-report/internal/domain"
	"github.com/jhoicas/topup-report/internal/domain/entity"
)

// PipelineUseCase aplica las reglas de negocio del reporte de recargas:
// ordenamiento, enlace usuario→empresa, recarga de tokens y categorización por
// elegibilidad de email.
//
// El pipeline es de una sola pasada y no reentrante por invocación: Run muta
// los balances en sitio y el balance previo se reconstruye después como
// Tokens - TopUp. Ejecutar Run dos veces sobre las mismas entidades corrompe
// esa reconstrucción; el comportamiento en ese caso es indefinido.
type PipelineUseCase struct{}

// NewPipelineUseCase construye el caso de uso.
func NewPipelineUseCase() *PipelineUseCase { return &PipelineUseCase{} }

// BuildCompanies valida cada registro crudo y construye las entidades.
// Primera violación de esquema o de unicidad de id aborta la corrida.
func (uc *PipelineUseCase) BuildCompanies(recs []map[string]any) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(recs))
	seen := make(map[int]bool, len(recs))
	for i, rec := range recs {
		c, err := entity.NewCompany(i, rec)
		if err != nil {
			return nil, err
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: company[%d] id %d duplicado", domain.ErrSchemaViolation, i, c.ID)
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}

// BuildUsers valida cada registro crudo y construye las entidades.
func (uc *PipelineUseCase) BuildUsers(recs []map[string]any) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(recs))
	seen := make(map[int]bool, len(recs))
	for i, rec := range recs {
		u, err := entity.NewUser(i, rec)
		if err != nil {
			return nil, err
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("%w: user[%d] id %d duplicado", domain.ErrSchemaViolation, i, u.ID)
		}
		seen[u.ID] = true
		out = append(out, u)
	}
	return out, nil
}

// Run ejecuta las etapas en orden sobre las entidades ya construidas:
//  1. ordenar empresas por id y usuarios por apellido (orden visible en el reporte);
//  2. verificar integridad referencial usuario→empresa;
//  3. enlazar a cada empresa sus usuarios activos;
//  4. acreditar company.TopUp a cada usuario enlazado, exactamente una vez;
//  5. particionar por elegibilidad de email;
//  6. chequeo estricto post-enlace de los campos derivados.
//
// Devuelve las empresas ordenadas, listas para renderizar.
func (uc *PipelineUseCase) Run(companies []*entity.Company, users []*entity.User) ([]*entity.Company, error) {
	SortCompanies(companies)
	SortUsers(users)

	byID := make(map[int]*entity.Company, len(companies))
	for _, c := range companies {
		byID[c.ID] = c
	}
	for _, u := range users {
		if _, ok := byID[u.CompanyID]; !ok {
			return nil, fmt.Errorf("%w: user[id=%d] referencia company_id %d", domain.ErrReferentialViolation, u.ID, u.CompanyID)
		}
	}

	for _, c := range companies {
		c.Users = c.ActiveUsers(users)
	}

	for _, c := range companies {
		for _, u := range c.Users {
			u.Tokens += c.TopUp
		}
	}

	// Orden global de usuarios preservado por empresa: se itera la colección
	// completa ya ordenada, no las listas por empresa.
	for _, u := range users {
		if !u.ActiveStatus {
			continue
		}
		c, ok := byID[u.CompanyID]
		if !ok {
			// Ya verificado arriba; el categorizador no omite en silencio.
			return nil, fmt.Errorf("%w: user[id=%d] referencia company_id %d", domain.ErrReferentialViolation, u.ID, u.CompanyID)
		}
		if c.EmailStatus && u.EmailStatus {
			c.UsersEmailed = append(c.UsersEmailed, u)
		} else {
			c.UsersNotEmailed = append(c.UsersNotEmailed, u)
		}
	}

	for _, c := range companies {
		if err := c.ValidateLinked(); err != nil {
			return nil, err
		}
	}
	return companies, nil
}

// SortCompanies ordena ascendente por id numérico.
func SortCompanies(companies []*entity.Company) {
	sort.SliceStable(companies, func(i, j int) bool {
		return companies[i].ID < companies[j].ID
	})
}

// SortUsers ordena ascendente por apellido, sensible a mayúsculas. El orden es
// estable: sin clave secundaria, los empates conservan el orden relativo original.
func SortUsers(users []*entity.User) {
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].LastName < users[j].LastName
	})
}
