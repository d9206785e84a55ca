package campaign

import (
	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

// IVRColumns is the fixed IVR load layout. The fourth column is deliberately
// unnamed and kept blank: the destination format has a fixed column count.
var IVRColumns = []string{"TELEFONO", "MENSAJE", "ID_CLIENTE", "", "OPCIONAL", "CAMPO1", "CAMPO2"}

// BuildIVR assembles the Athenas IVR load. Field resolution is synonym
// tolerant; only the phone is mandatory. MENSAJE is the client name, falling
// back to the RUT for a row whose name cell is empty, or entirely when no
// name column resolves.
func BuildIVR(t *tabular.Table, campo1 string) (*tabular.Table, error) {
	telCol, telOK := Resolve(t, FieldTelefono)
	rutCol, _ := Resolve(t, FieldRUT)
	opCol, _ := Resolve(t, FieldOP)
	nomCol, nomOK := Resolve(t, FieldNombre)
	if !telOK {
		return nil, apperrors.MissingColumns("Faltan columnas en el Excel",
			[]string{"TELEFONO (acepta: Telefono, Teléfono, Fono, Celular, Móvil)"})
	}

	telefono := TextColumn(t, telCol)
	rut := TextColumn(t, rutCol)
	oper := TextColumn(t, opCol)

	mensaje := make([]string, t.Len())
	if nomOK {
		nombre := TextColumn(t, nomCol)
		for i := range mensaje {
			if nombre[i] != "" {
				mensaje[i] = nombre[i]
			} else {
				// Row-local fallback: a present but empty name cell uses the RUT
				mensaje[i] = rut[i]
			}
		}
	} else {
		copy(mensaje, rut)
	}

	out := tabular.New(IVRColumns...)
	for i := range t.Rows {
		out.Append(tabular.Row{
			"TELEFONO":   "56" + telefono[i],
			"MENSAJE":    mensaje[i],
			"ID_CLIENTE": rut[i],
			"":           "",
			"OPCIONAL":   oper[i],
			"CAMPO1":     campo1,
			"CAMPO2":     "",
		})
	}
	return out, nil
}
