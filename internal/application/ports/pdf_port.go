package ports

import (
	"context"

	"github.com/jhoicas/topup-report/internal/domain/entity"
)

// ReportPDFGenerator define el puerto de salida para la representación gráfica
// del reporte de recargas. Cualquier adaptador (Maroto, mock) debe implementar
// esta interfaz; la aplicación solo conoce este contrato, no la implementación.
// El reporte de texto sigue siendo el artefacto canónico comparable byte a byte;
// el PDF es una salida suplementaria.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, companies []*entity.Company) ([]byte, error)
}
