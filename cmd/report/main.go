// report genera el reporte de recargas de tokens a partir de dos colecciones
// JSON (companies, users): valida la forma de cada registro, enlaza usuarios
// activos con su empresa, acredita la recarga, particiona por elegibilidad de
// email y escribe el reporte de texto determinista.
//
// Uso: go run ./cmd/report
// Rutas configurables vía env (COMPANIES_PATH, USERS_PATH, REPORT_PATH,
// REFERENCE_PATH, REPORT_PDF_PATH) o archivo .env; ver pkg/config.
// Cualquier fallo de validación aborta la corrida sin producir salida.
package main

import (
	"context"
	"os"

	"github.com/google/uuid"

	"github.com/jhoicas/topup-report/internal/application/usecase"
	"github.com/jhoicas/topup-report/internal/domain/report"
	"github.com/jhoicas/topup-report/internal/infrastructure/jsonsource"
	"github.com/jhoicas/topup-report/internal/infrastructure/pdf"
	"github.com/jhoicas/topup-report/pkg/config"
	"github.com/jhoicas/topup-report/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("cargar configuración: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).
		WithRunID(uuid.New().String())

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("corrida abortada")
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	companySource := jsonsource.NewCompanyFileSource(cfg.Input.CompaniesPath)
	userSource := jsonsource.NewUserFileSource(cfg.Input.UsersPath)

	// Lectura completa de ambas colecciones antes de procesar nada.
	companyRecs, err := companySource.FetchAll()
	if err != nil {
		return err
	}
	userRecs, err := userSource.FetchAll()
	if err != nil {
		return err
	}
	log.Info().
		Int("companies", len(companyRecs)).
		Int("users", len(userRecs)).
		Msg("colecciones de entrada leídas")

	uc := usecase.NewPipelineUseCase()
	companies, err := uc.BuildCompanies(companyRecs)
	if err != nil {
		return err
	}
	users, err := uc.BuildUsers(userRecs)
	if err != nil {
		return err
	}

	companies, err = uc.Run(companies, users)
	if err != nil {
		return err
	}

	out := report.Render(companies)
	// Trunca/sobrescribe cualquier artefacto previo en la misma ruta.
	if err := os.WriteFile(cfg.Output.ReportPath, []byte(out), 0o644); err != nil {
		return err
	}
	log.Info().Str("path", cfg.Output.ReportPath).Msg("reporte generado")

	if cfg.Output.PDFPath != "" {
		gen := pdf.NewMarotoReportGenerator()
		doc, err := gen.GenerateReportPDF(context.Background(), companies)
		if err != nil {
			return err
		}
		if err := os.WriteFile(cfg.Output.PDFPath, doc, 0o644); err != nil {
			return err
		}
		log.Info().Str("path", cfg.Output.PDFPath).Msg("reporte PDF generado")
	}

	if cfg.Output.ReferencePath != "" {
		ref, err := os.ReadFile(cfg.Output.ReferencePath)
		if err != nil {
			return err
		}
		if err := report.Verify(out, string(ref)); err != nil {
			return err
		}
		log.Info().Str("reference", cfg.Output.ReferencePath).Msg("reporte verificado contra la referencia")
	}

	return nil
}
