// Package report genera el reporte de recargas en texto plano, determinista y
// comparable byte a byte contra una referencia. La indentación (un tab para
// líneas de empresa, dos tabs para detalle de usuario) y la puntuación de cada
// plantilla son parte del contrato de salida.
package report

import (
	"fmt"
	"strings"

	"github.com/jhoicas/topup-report/internal/domain/entity"
)

// Plantillas del reporte. El balance previo se reconstruye como Tokens - TopUp,
// válido únicamente bajo la ejecución de una sola pasada (ver usecase.Pipeline).
const (
	lineCompanyID   = "\tCompany Id: %d\n"
	lineCompanyName = "\tCompany Name: %s\n"
	lineEmailed     = "\tUsers Emailed:\n"
	lineNotEmailed  = "\tUsers Not Emailed:\n"
	lineUser        = "\t\t%s, %s, %s\n"
	linePrevBalance = "\t\t  Previous Token Balance, %d\n"
	lineNewBalance  = "\t\t  New Token Balance %d\n"
	lineTotal       = "\tTotal amount of top ups for %s: %d\n"
)

// Render produce el reporte sobre las empresas ya ordenadas y categorizadas.
// Omite empresas con ambas particiones vacías. Sin empresas incluidas, la
// salida es exactamente la línea en blanco inicial.
func Render(companies []*entity.Company) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, c := range companies {
		if len(c.UsersEmailed) == 0 && len(c.UsersNotEmailed) == 0 {
			continue
		}
		fmt.Fprintf(&b, lineCompanyID, c.ID)
		fmt.Fprintf(&b, lineCompanyName, c.Name)
		b.WriteString(lineEmailed)
		for _, u := range c.UsersEmailed {
			writeUser(&b, c, u)
		}
		b.WriteString(lineNotEmailed)
		for _, u := range c.UsersNotEmailed {
			writeUser(&b, c, u)
		}
		// El total usa todos los usuarios activos enlazados, calculado de forma
		// independiente de las particiones.
		fmt.Fprintf(&b, lineTotal, c.Name, c.TopUp*len(c.Users))
		b.WriteString("\n")
	}
	return b.String()
}

func writeUser(b *strings.Builder, c *entity.Company, u *entity.User) {
	fmt.Fprintf(b, lineUser, u.LastName, u.FirstName, u.Email)
	fmt.Fprintf(b, linePrevBalance, u.Tokens-c.TopUp)
	fmt.Fprintf(b, lineNewBalance, u.Tokens)
}
