package campaign

import (
	"strings"

	"cargas/domain/tabular"
)

// Field is one of the logical column names the resolver understands
type Field string

const (
	FieldTelefono Field = "TELEFONO"
	FieldRUT      Field = "RUT"
	FieldOP       Field = "OP"
	FieldNombre   Field = "NOMBRE"
)

// synonyms maps each logical field to the header spellings the upstream
// exports are known to use. Matching is case-insensitive on trimmed headers;
// the sets themselves are already lower-cased and trimmed. Kept as data so
// new spellings are a one-line change.
var synonyms = map[Field][]string{
	FieldTelefono: {"telefono", "teléfono", "fono", "celular", "movil", "móvil", "telefono1"},
	FieldRUT:      {"rut", "id_cliente", "id cliente", "id_cliente (rut)", "id cliente (rut)"},
	FieldOP:       {"op", "operacion", "operación", "nro_documento", "nro documento", "documento", "operacion1"},
	FieldNombre:   {"nombre", "name", "cliente", "contacto"},
}

// Resolve returns the actual header of the table that matches the logical
// field, comparing case-insensitively with surrounding whitespace trimmed.
// The first match in header order wins. The returned header is the original
// spelling, so it can be used to index the table directly. The second result
// is false when no synonym matches; absence is not an error here, the caller
// decides whether the field was mandatory.
func Resolve(t *tabular.Table, field Field) (string, bool) {
	targets := synonyms[field]
	for _, header := range t.Headers {
		key := strings.ToLower(strings.TrimSpace(header))
		for _, s := range targets {
			if key == s {
				return header, true
			}
		}
	}
	return "", false
}
