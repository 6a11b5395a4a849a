// Package pdf implementa la representación gráfica del reporte de recargas
// usando Maroto v2. Es una salida suplementaria: el artefacto canónico sigue
// siendo el reporte de texto plano comparable byte a byte.
//
// Layout de la página A4, una sección por empresa incluida:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de recargas de tokens                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  EMPRESA: Id + Nombre                                       │
//	│  TABLA: Apellido | Nombre | Email | Saldo ant. | Saldo nuevo│
//	│  TOTAL: top_up × usuarios activos                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/topup-report/internal/application/ports"
	"github.com/jhoicas/topup-report/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Asegura que MarotoReportGenerator implementa ports.ReportPDFGenerator.
var _ ports.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes. Espera las
// empresas ya ordenadas y categorizadas; omite, igual que el renderer de texto,
// las empresas con ambas particiones vacías.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, companies []*entity.Company) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de recargas de tokens", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, c := range companies {
		if len(c.UsersEmailed) == 0 && len(c.UsersNotEmailed) == 0 {
			continue
		}
		m.AddRows(companyHeaderRow(c))
		m.AddRows(sectionRow("Usuarios con email enviado"))
		m.AddRows(tableHeaderRow())
		for _, r := range userRows(c, c.UsersEmailed) {
			m.AddRows(r)
		}
		m.AddRows(sectionRow("Usuarios sin email enviado"))
		for _, r := range userRows(c, c.UsersNotEmailed) {
			m.AddRows(r)
		}
		m.AddRows(totalRow(c))
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow() core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("REPORTE DE RECARGAS DE TOKENS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
	)
}

// companyHeaderRow: Id + Nombre de la empresa.
func companyHeaderRow(c *entity.Company) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New(c.Name, props.Text{
				Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Company Id: %d", c.ID), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Top: 1}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de usuarios.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Apellido", 2, align.Left),
		h("Nombre", 2, align.Left),
		h("Email", 4, align.Left),
		h("Saldo anterior", 2, align.Right),
		h("Saldo nuevo", 2, align.Right),
	)
}

// userRows: una fila por usuario, con el saldo previo reconstruido.
func userRows(c *entity.Company, users []*entity.User) []core.Row {
	result := make([]core.Row, 0, len(users))
	for _, u := range users {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(u.LastName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(u.FirstName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(u.Email, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", u.Tokens-c.TopUp),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", u.Tokens),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de recargas de la empresa (top_up × usuarios activos enlazados).
func totalRow(c *entity.Company) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de recargas para %s: %d", c.Name, c.TopUp*len(c.Users)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Right: 1,
			}),
		),
	)
}
