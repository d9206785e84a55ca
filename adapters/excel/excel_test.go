package excel

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cargas/domain/campaign"
	"cargas/domain/tabular"
)

// workbookBytes builds an in-memory xlsx for reader tests
func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadWorkbook(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"RUT", "Teléfono", "Agreement Number "},
		{"12345678", "912345678", "900001"},
		{"87654321", "", "900002"},
	})

	table, err := NewReader().Read(bytes.NewReader(data), "carga.xlsx")
	require.NoError(t, err)

	// headers land verbatim, trailing space included
	assert.Equal(t, []string{"RUT", "Teléfono", "Agreement Number "}, table.Headers)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "912345678", table.Cell(0, "Teléfono"))
	assert.Equal(t, "900002", table.Cell(1, "Agreement Number "))
}

func TestReadCSVSemicolon(t *testing.T) {
	src := strings.NewReader("numero_operacion;rut;dv_cliente\n45871236;12345678;9\n77;1;K\n")
	table, err := NewCSVReader(';').Read(src, "asignacion.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"numero_operacion", "rut", "dv_cliente"}, table.Headers)
	require.Equal(t, 2, table.Len())
	assert.Equal(t, "12345678", table.Cell(0, "rut"))
	assert.Equal(t, "K", table.Cell(1, "dv_cliente"))
}

func TestReadCSVRaggedRows(t *testing.T) {
	src := strings.NewReader("a,b,c\n1,2\n")
	table, err := NewReader().Read(src, "corto.csv")
	require.NoError(t, err)
	assert.Equal(t, "", table.Cell(0, "c"))
}

func TestReadRejectsUnknownExtension(t *testing.T) {
	_, err := NewReader().Read(strings.NewReader("x"), "datos.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".txt")
}

func TestReadRejectsCorruptWorkbook(t *testing.T) {
	_, err := NewReader().Read(strings.NewReader("no es un zip"), "roto.xlsx")
	require.Error(t, err)
}

func TestWriteTableRoundTrip(t *testing.T) {
	src := tabular.New("RUT", "TELEFONO")
	src.Append(tabular.Row{"RUT": "12345678", "TELEFONO": "56912345678"})
	src.Append(tabular.Row{"RUT": "87654321", "TELEFONO": ""})

	data, err := WriteTable(src, "cargaCRM")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"cargaCRM"}, f.GetSheetList())

	table, err := NewReader().Read(bytes.NewReader(data), "salida.xlsx")
	require.NoError(t, err)
	assert.Equal(t, src.Headers, table.Headers)
	assert.Equal(t, src.Column("RUT"), table.Column("RUT"))
	assert.Equal(t, src.Column("TELEFONO"), table.Column("TELEFONO"))
}

func TestWriteTableDefaultSheet(t *testing.T) {
	data, err := WriteTable(tabular.New("A"), "")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Hoja1"}, f.GetSheetList())
}

func TestArchive(t *testing.T) {
	uno := tabular.New("RUT")
	uno.Append(tabular.Row{"RUT": "1"})
	dos := tabular.New("OP")

	data, err := Archive([]campaign.Output{
		{Name: "ARCHIVO_COLLECTION_04-05.xlsx", Sheet: "Hoja1", Table: uno},
		{Name: "MASIVIDADES_GM_04-05.xlsx", Sheet: "Hoja1", Table: dos},
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, "ARCHIVO_COLLECTION_04-05.xlsx", zr.File[0].Name)
	assert.Equal(t, "MASIVIDADES_GM_04-05.xlsx", zr.File[1].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	table, err := NewReader().Read(rc, zr.File[0].Name)
	require.NoError(t, err)
	assert.Equal(t, "1", table.Cell(0, "RUT"))
}
