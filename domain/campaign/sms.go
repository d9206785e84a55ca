package campaign

import (
	"sort"
	"time"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

// CRMColumns is the fixed CRM load layout; order is part of the contract
var CRMColumns = []string{
	"RUT", "NRO_DOCUMENTO", "FECHA_GESTION", "TELEFONO",
	"OBSERVACION", "USUARIO", "CORREO",
}

// AthenasColumns is the fixed dialer load layout consumed by Athenas
var AthenasColumns = []string{
	"TELEFONO", "MENSAJE", "ID_CLIENTE (RUT)", "OPCIONAL",
	"CAMPO1", "CAMPO2", "CAMPO3",
}

// smsRequired is the strict legacy header set for the SMS flow. No synonym
// tolerance here: the feeding report has carried these exact headers for
// years and a rename should be caught loudly.
var smsRequired = []string{"RUT", "OP", "FONO"}

// BuildSMS produces the CRM load and the Athenas dialer load for the SMS
// campaign flow. The CRM side logs the contact attempt at today 10:00:00
// with the fixed "ACCIONES COMERCIALES" observation; the dialer side carries
// the caller-supplied message and the phone prefixed with the country code.
func BuildSMS(t *tabular.Table, mensaje, usuario string, today time.Time) (*tabular.Table, *tabular.Table, error) {
	var missing []string
	for _, col := range smsRequired {
		if !t.HasHeader(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, nil, apperrors.MissingColumns("Faltan columnas en el Excel", missing)
	}

	fechaGestion := time.Date(today.Year(), today.Month(), today.Day(), 10, 0, 0, 0, today.Location()).
		Format(TimestampLayout)

	crm := tabular.New(CRMColumns...)
	dialer := tabular.New(AthenasColumns...)
	for i := range t.Rows {
		rut := CellText(t.Cell(i, "RUT"))
		op := CellText(t.Cell(i, "OP"))
		fono := CellText(t.Cell(i, "FONO"))

		crm.Append(tabular.Row{
			"RUT":            rut,
			"NRO_DOCUMENTO":  op,
			"FECHA_GESTION":  fechaGestion,
			"TELEFONO":       fono,
			"OBSERVACION":    "ACCIONES COMERCIALES",
			"USUARIO":        usuario,
			"CORREO":         " ",
		})
		dialer.Append(tabular.Row{
			"TELEFONO":         "56" + fono,
			"MENSAJE":          mensaje,
			"ID_CLIENTE (RUT)": rut,
			"OPCIONAL":         " ",
			"CAMPO1":           " ",
			"CAMPO2":           " ",
			"CAMPO3":           " ",
		})
	}
	return crm, dialer, nil
}
