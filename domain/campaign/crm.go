package campaign

import (
	"time"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

// BuildScheduledCRM assembles a CRM load whose FECHA_GESTION column comes
// from the schedule generator over the caller-supplied window. Resolution is
// synonym tolerant but RUT, operation and phone are all mandatory; every
// missing field is reported in one error. The phone goes out exactly as it
// came in; unlike the dialer loads, the CRM does not want the country code.
func BuildScheduledCRM(t *tabular.Table, day time.Time, startClock, endClock string, intervalSeconds int, usuario string) (*tabular.Table, error) {
	telCol, telOK := Resolve(t, FieldTelefono)
	rutCol, rutOK := Resolve(t, FieldRUT)
	opCol, opOK := Resolve(t, FieldOP)

	var missing []string
	if !rutOK {
		missing = append(missing, "RUT")
	}
	if !opOK {
		missing = append(missing, "NRO_DOCUMENTO/OP")
	}
	if !telOK {
		missing = append(missing, "TELEFONO")
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingColumns("Faltan columnas requeridas en el Excel base", missing)
	}

	rut := TextColumn(t, rutCol)
	nroDoc := TextColumn(t, opCol)
	telefono := TextColumn(t, telCol)

	fechas, err := GenerateSchedule(t.Len(), day, startClock, endClock, intervalSeconds)
	if err != nil {
		return nil, err
	}

	out := tabular.New(CRMColumns...)
	for i := range t.Rows {
		out.Append(tabular.Row{
			"RUT":           rut[i],
			"NRO_DOCUMENTO": nroDoc[i],
			"FECHA_GESTION": fechas[i],
			"TELEFONO":      telefono[i],
			"OBSERVACION":   "IVR",
			"USUARIO":       usuario,
			"CORREO":        " ",
		})
	}
	return out, nil
}
