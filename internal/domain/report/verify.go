package report

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Verify compara byte a byte el reporte generado contra un texto de referencia.
// Es una ayuda de desarrollo, no un requisito del pipeline. Ante divergencia
// reporta el índice de la primera línea distinta con el contenido de ambas,
// más un diff compacto de caracteres para legibilidad.
func Verify(got, want string) error {
	if got == want {
		return nil
	}
	gotLines := strings.Split(got, "\n")
	wantLines := strings.Split(want, "\n")
	n := len(gotLines)
	if len(wantLines) < n {
		n = len(wantLines)
	}
	for i := 0; i < n; i++ {
		if gotLines[i] != wantLines[i] {
			return fmt.Errorf("línea %d difiere:\n  generado:   %q\n  referencia: %q\n  diff: %s",
				i, gotLines[i], wantLines[i], charDiff(gotLines[i], wantLines[i]))
		}
	}
	// Prefijo común: difieren en longitud.
	return fmt.Errorf("línea %d difiere: generado tiene %d líneas, referencia %d",
		n, len(gotLines), len(wantLines))
}

func charDiff(got, want string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(want, got, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			fmt.Fprintf(&b, "[+%s]", d.Text)
		case diffmatchpatch.DiffDelete:
			fmt.Fprintf(&b, "[-%s]", d.Text)
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
