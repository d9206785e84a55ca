package campaign

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

func TestBuildScheduledCRM(t *testing.T) {
	table := tabular.New("Rut", "Nro_Documento", "Fono")
	table.Append(tabular.Row{"Rut": "11111111.0", "Nro_Documento": "5001", "Fono": " 912345678 "})
	table.Append(tabular.Row{"Rut": "22222222", "Nro_Documento": "5002", "Fono": "987654321"})

	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	out, err := BuildScheduledCRM(table, day, "09:00", "10:00", 0, "jriveros")
	require.NoError(t, err)
	require.Equal(t, 2, out.Len())
	assert.Equal(t, CRMColumns, out.Headers)

	assert.Equal(t, "2026-05-04 09:00:00", out.Cell(0, "FECHA_GESTION"))
	assert.Equal(t, "2026-05-04 10:00:00", out.Cell(1, "FECHA_GESTION"))
	assert.Equal(t, "IVR", out.Cell(0, "OBSERVACION"))
	assert.Equal(t, "jriveros", out.Cell(0, "USUARIO"))
	assert.Equal(t, " ", out.Cell(0, "CORREO"))
	// no country-code prefix on the CRM side
	assert.Equal(t, "912345678", out.Cell(0, "TELEFONO"))
}

// Re-extracting the identifying columns from the output must reproduce the
// text-normalized input values.
func TestBuildScheduledCRMRoundTrip(t *testing.T) {
	table := tabular.New("rut", "operacion", "telefono")
	table.Append(tabular.Row{"rut": "11111111-1", "operacion": "7001.0", "telefono": "911111111.0"})
	table.Append(tabular.Row{"rut": " 22222222-2 ", "operacion": "7002", "telefono": "922222222"})

	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	out, err := BuildScheduledCRM(table, day, "09:00", "18:00", 60, "VDAD")
	require.NoError(t, err)

	assert.Equal(t, TextColumn(table, "rut"), out.Column("RUT"))
	assert.Equal(t, TextColumn(table, "operacion"), out.Column("NRO_DOCUMENTO"))
	assert.Equal(t, TextColumn(table, "telefono"), out.Column("TELEFONO"))
}

func TestBuildScheduledCRMMissingFields(t *testing.T) {
	table := tabular.New("algo")
	_, err := BuildScheduledCRM(table, time.Now(), "09:00", "10:00", 0, "u")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeMissingColumns, apperrors.GetCode(err))
	// all three logical fields are enumerated, not just the first
	assert.Contains(t, err.Error(), "RUT")
	assert.Contains(t, err.Error(), "NRO_DOCUMENTO/OP")
	assert.Contains(t, err.Error(), "TELEFONO")
}

func TestBuildScheduledCRMPropagatesScheduleError(t *testing.T) {
	table := tabular.New("rut", "op", "fono")
	for i := 0; i < 100; i++ {
		table.Append(tabular.Row{"rut": "1", "op": "2", "fono": "3"})
	}
	_, err := BuildScheduledCRM(table, time.Now(), "09:00", "09:01", 60, "u")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeCapacityExceeded, apperrors.GetCode(err))
}
