package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableBasics(t *testing.T) {
	table := New("RUT", "TELEFONO ")
	assert.Equal(t, 0, table.Len())
	assert.True(t, table.HasHeader("RUT"))
	// headers match verbatim, trailing spaces included
	assert.True(t, table.HasHeader("TELEFONO "))
	assert.False(t, table.HasHeader("TELEFONO"))

	table.Append(Row{"RUT": "12345678", "TELEFONO ": "912345678"})
	assert.Equal(t, 1, table.Len())
	assert.Equal(t, "12345678", table.Cell(0, "RUT"))
	assert.Equal(t, "", table.Cell(0, "desconocida"))
	assert.Equal(t, "", table.Cell(5, "RUT"))
	assert.Equal(t, "", table.Cell(-1, "RUT"))
}

func TestAddHeader(t *testing.T) {
	table := New("RUT")
	table.Append(Row{"RUT": "1"})
	table.AddHeader("campana_1")
	require.Equal(t, []string{"RUT", "campana_1"}, table.Headers)
	assert.Equal(t, "", table.Cell(0, "campana_1"))

	// re-adding must not duplicate nor blank existing values
	table.Rows[0]["campana_1"] = "JUDICIAL"
	table.AddHeader("campana_1")
	assert.Equal(t, []string{"RUT", "campana_1"}, table.Headers)
	assert.Equal(t, "JUDICIAL", table.Cell(0, "campana_1"))
}

func TestColumn(t *testing.T) {
	table := New("RUT", "OP")
	table.Append(Row{"RUT": "1", "OP": "a"})
	table.Append(Row{"RUT": "2"})
	assert.Equal(t, []string{"1", "2"}, table.Column("RUT"))
	// rows without the cell still contribute an entry
	assert.Equal(t, []string{"a", ""}, table.Column("OP"))
}

func TestClone(t *testing.T) {
	table := New("RUT")
	table.Append(Row{"RUT": "1"})

	copia := table.Clone()
	copia.AddHeader("campana_1")
	copia.Rows[0]["RUT"] = "2"

	assert.Equal(t, []string{"RUT"}, table.Headers)
	assert.Equal(t, "1", table.Cell(0, "RUT"))
	assert.Equal(t, "2", copia.Cell(0, "RUT"))
}
