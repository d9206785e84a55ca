package campaign

import (
	"regexp"
	"strings"
	"time"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

// MasividadColumns is the fixed mass-mailing load layout
var MasividadColumns = []string{
	"INSTITUCIÓN", "SEGMENTOINSTITUCIÓN", "message_id", "NOMBRE", "RUT", "OPERACION",
	"FECHA_VENCIMIENTO_CUOTA", "MONTO_CUOTA", "FECHA_ARCHIVO", "FONO_EJECUTIVA",
	"FECHA_ENTREGA", "dest_email", "name_from", "mail_from", "CORREO_EJECUTIVA",
}

// masividadRequired are the exact source headers, trailing spaces included.
// The GM extract really does ship them like this, so no normalization: a
// layout change upstream must fail loudly here.
var masividadRequired = []string{
	"National Id ", "Customer Name ", "Agreement Number ", "Due Date", "EMI", "Email ",
}

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// dueDateLayouts are tried in order when reformatting the due date
var dueDateLayouts = []string{
	"2006-01-02", "2006-01-02 15:04:05", "02-01-2006", "01/02/06", "1/2/06", "01-02-06",
}

// BuildMasividad derives the mass-mailing load from a GM collection extract.
// Rows without a syntactically valid destination email are dropped, as are
// rows whose digit-only RUT is shorter than seven digits; surviving rows are
// de-duplicated by RUT keeping the first occurrence. Every surviving row is
// stamped with the institutional constants and a round-robin executive.
func BuildMasividad(t *tabular.Table, now time.Time) (*tabular.Table, error) {
	var missing []string
	for _, col := range masividadRequired {
		if !t.HasHeader(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingColumns("Faltan columnas para masividades", missing)
	}

	hoy := now.Format("02-01-2006")
	out := tabular.New(MasividadColumns...)
	seen := make(map[string]bool)
	for i := range t.Rows {
		email := strings.TrimSpace(t.Cell(i, "Email "))
		if email == "" || !emailRE.MatchString(email) {
			continue
		}
		rut := IDDigits(t.Cell(i, "National Id "))
		if len(rut) < 7 {
			continue
		}
		if seen[rut] {
			continue
		}
		seen[rut] = true

		exec := ExecutiveFor(out.Len())
		out.Append(tabular.Row{
			"INSTITUCIÓN":             "GENERAL MOTORS",
			"SEGMENTOINSTITUCIÓN":     "GENERAL MOTORS",
			"message_id":              "84995",
			"NOMBRE":                  strings.TrimSpace(t.Cell(i, "Customer Name ")),
			"RUT":                     rut,
			"OPERACION":               strings.TrimSpace(t.Cell(i, "Agreement Number ")),
			"FECHA_VENCIMIENTO_CUOTA": reformatDueDate(t.Cell(i, "Due Date")),
			"MONTO_CUOTA":             t.Cell(i, "EMI"),
			"FECHA_ARCHIVO":           hoy,
			"FONO_EJECUTIVA":          "228400433",
			"FECHA_ENTREGA":           hoy,
			"dest_email":              email,
			"name_from":               exec.NameFrom,
			"mail_from":               exec.MailFrom,
			"CORREO_EJECUTIVA":        exec.CorreoEjecutiva,
		})
	}
	return out, nil
}

// reformatDueDate renders the due date as dd-mm-yyyy. Unparsable cells come
// back empty rather than failing the build, matching the coerce semantics
// the downstream mailer tolerates.
func reformatDueDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dueDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("02-01-2006")
		}
	}
	return ""
}
