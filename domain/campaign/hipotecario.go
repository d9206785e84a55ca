package campaign

import (
	"strconv"
	"strings"
	"time"

	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

// HipotecarioCRMColumns is the Santander mortgage assignment layout. The
// bulk of it travels empty; only the mapped positions below are populated.
var HipotecarioCRMColumns = []string{
	"Nro_Documento", "RUT - DV", "NOMBRE", "AD1", "NombreProducto", "AD2", "AD3",
	"AD4", "AD5", "AD6", "AD7", "DEUDA TOTAL", "AD11", "AD8", "AD9", "AD10",
	"DIRECCION", "COMUNA", "CIUDAD", "REGION", "DIRECCION_COMERCIAL",
	"COMUNA_COMERCIAL", "CIUDAD_COMERCIAL", "REGION_COMERCIAL", "EMAIL1",
	"AD13", "FONO1", "FONO2", "FONO3", "FONO4", "FONO5", "FONO6", "AD14",
	"AD15", "TIPO_DEUDOR", "TIPO_PRODUCTO 1", "AFINIDAD_1", "NRO_PRODUCTO 1",
	"FECHA_VEN_1", "COD_SEG_1", "ID_BANCO_1", "TIPO_PRODUCTO_2", "AFINIDAD_2",
	"NRO_PRODUCTO_2", "FECHA_VEN_2", "COD_SEG_2", "ID_BANCO_2",
	"TIPO_PRODUCTO_3", "AFINIDAD_3", "NRO_PRODUCTO_3", "FECHA_VEN_3",
	"COD_SEG_3", "ID_BANCO_3", "TIPO_PRODUCTO_4", "AFINIDAD_4",
	"NRO_PRODUCTO_4", "FECHA_VEN_4", "COD_SEG_4", "ID_BANCO_4",
	"TIPO_PRODUCTO_5", "AFINIDAD_5", "NRO_PRODUCTO_5", "FECHA_VEN_5",
	"COD_SEG_5", "ID_BANCO_5", "PRIMER_NOMBRE", "SEGUNDO_NOMBRE",
	"APE_PATERNO", "APE_MATERNO", "EDAD", "SEXO", "FECHA_NAC", "NUMERO",
	"DEPARTAMENTO", "POBLACION",
}

// HipotecarioMasividadColumns is the Santander mass-mailing layout
var HipotecarioMasividadColumns = []string{
	"INSTITUCIÓN", "SEGMENTOINSTITUCIÓN", "message_id", "PLANTILLA", "RUT",
	"NRO_OPERACION", "CLIENTE", "dest_email", "name_from", "mail_from", "CORREO",
	"EJECUTIVO2", "CELULAR", "DIA", "MES", "ANHO",
}

var hipotecarioRequired = []string{
	"numero_operacion", "rut", "dv_cliente", "nombre_cliente",
	"nombre_producto", "perfil_riesgo", "ciclo", "dias_atraso",
}

// Santander executive catalogues, cycled over masividad rows in order
var (
	hipotecarioEjecutivos = []string{
		"Olga Arenas", "Ana Leal", "Melanie Ortiz", "Francisca Huerta", "Claudia Apablaza",
		"Maria Gomez", "Maria Cristina Chavarria", "Lorena Fuentes", "Pablo Rivas",
		"Claudia Paola Hasbun Estolaza", "Claudia Alejandra Aravena Quinteros",
		"Jesús Manuel Olivares Peña", "Andrea Lorena Perez Brito", "Marcela Roca", "Pilar Gonzales",
	}
	hipotecarioCorreos = []string{
		"oarenas@phoenixservice.cl", "aleal@phoenixservice.cl", "mmondiglio@phoenixservice.cl",
		"fhuerta@phoenixservice.cl", "capablaza@phoenixservice.cl", "mgomez@phoenixservice.cl",
		"mchavarria@phoenixservice.cl", "lofuentes@phoenixservice.cl", "privas@phoenixservice.cl",
		"chasbun@phoenixservice.cl", "caravena@phoenixservice.cl", "jolivares@phoenixservice.cl",
		"aperez@phoenixservice.cl", "mroca@phoenixservice.cl", "pgonzales@phoenixservice.cl",
	}
	hipotecarioMasivos = []string{
		"oarenas@info.phoenixserviceinfo.cl", "aleal@info.phoenixserviceinfo.cl", "mmondiglio@info.phoenixserviceinfo.cl",
		"ghuerta@estandar.phoenixserviceinfo.cl", "capablaza@estandar.phoenixserviceinfo.cl", "mgomez@info.phoenixserviceinfo.cl",
		"mchavarria@info.phoenixserviceinfo.cl", "lfuentes@info.phoenixserviceinfo.cl", "privas@info.phoenixserviceinfo.cl",
		"chasbun@info.phoenixserviceinfo.cl", "caravena@info.phoenixserviceinfo.cl", "jolivares@info.phoenixserviceinfo.cl",
		"aperez@info.phoenixserviceinfo.cl", "mroca@info.phoenixserviceinfo.cl", "pgonzales@info.phoenixserviceinfo.cl",
	}
)

var spanishMonths = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// BuildHipotecarioCRM maps the semicolon-separated Santander mortgage
// extract onto the assignment layout. Operation numbers are zero-padded to
// twelve digits, the RUT is re-joined with its check digit, and amounts are
// truncated to integers with zero for unparsable cells.
func BuildHipotecarioCRM(t *tabular.Table) (*tabular.Table, error) {
	var missing []string
	for _, col := range hipotecarioRequired {
		if !t.HasHeader(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingColumns("Faltan columnas en el CSV hipotecario", missing)
	}

	out := tabular.New(HipotecarioCRMColumns...)
	for i := range t.Rows {
		row := make(tabular.Row, len(HipotecarioCRMColumns))
		for _, col := range HipotecarioCRMColumns {
			row[col] = ""
		}
		row["Nro_Documento"] = padOperation(t.Cell(i, "numero_operacion"))
		row["RUT - DV"] = t.Cell(i, "rut") + "-" + t.Cell(i, "dv_cliente")
		row["NOMBRE"] = t.Cell(i, "nombre_cliente")
		row["NombreProducto"] = t.Cell(i, "nombre_producto")
		row["AD1"] = t.Cell(i, "ciclo")
		row["AD2"] = t.Cell(i, "perfil_riesgo")
		row["AD3"] = t.Cell(i, "dias_atraso")
		row["AD5"] = t.Cell(i, "estrategia_1")
		row["AD6"] = coerceInt(t.Cell(i, "monto_cuota"))
		row["AD7"] = reformatCompactDate(t.Cell(i, "fecha_vcto_cuota"))
		row["AD8"] = t.Cell(i, "total_cuotas")
		row["AD9"] = t.Cell(i, "nro_cuotas_en_mora")
		row["AD10"] = t.Cell(i, "tipo_campana")
		row["AD11"] = t.Cell(i, "nro_cuotas_pagadas")
		row["DEUDA TOTAL"] = coerceInt(t.Cell(i, "total_arrastre"))
		row["DIRECCION"] = t.Cell(i, "direccion")
		row["EMAIL1"] = t.Cell(i, "mail")
		row["FONO1"] = t.Cell(i, "telefono_1")
		row["FONO2"] = t.Cell(i, "telefono_2")
		row["FONO3"] = t.Cell(i, "telefono_3")
		row["FONO4"] = t.Cell(i, "telefono_4")
		row["FONO5"] = t.Cell(i, "telefono_5")
		out.Append(row)
	}
	return out, nil
}

// BuildHipotecarioMasividad derives the Santander mass-mailing load: rows
// without a destination email are dropped, survivors are de-duplicated by
// RUT, and the three executive catalogues are cycled over the result.
func BuildHipotecarioMasividad(t *tabular.Table, now time.Time) (*tabular.Table, error) {
	var missing []string
	for _, col := range []string{"rut", "nombre_cliente", "numero_operacion", "mail"} {
		if !t.HasHeader(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.MissingColumns("Faltan columnas en el CSV hipotecario", missing)
	}

	out := tabular.New(HipotecarioMasividadColumns...)
	seen := make(map[string]bool)
	for i := range t.Rows {
		email := strings.TrimSpace(t.Cell(i, "mail"))
		if email == "" || strings.EqualFold(email, "nan") {
			continue
		}
		rut := t.Cell(i, "rut")
		if seen[rut] {
			continue
		}
		seen[rut] = true

		idx := out.Len()
		out.Append(tabular.Row{
			"INSTITUCIÓN":         "BANCO SANTANDER",
			"SEGMENTOINSTITUCIÓN": "BANCO SANTANDER",
			"message_id":          "91785",
			"PLANTILLA":           "HIPOTECARIO",
			"RUT":                 rut,
			"NRO_OPERACION":       padOperation(t.Cell(i, "numero_operacion")),
			"CLIENTE":             t.Cell(i, "nombre_cliente"),
			"dest_email":          email,
			"name_from":           "Atencion Cliente Banco Santander",
			"mail_from":           hipotecarioMasivos[idx%len(hipotecarioMasivos)],
			"CORREO":              hipotecarioCorreos[idx%len(hipotecarioCorreos)],
			"EJECUTIVO2":          hipotecarioEjecutivos[idx%len(hipotecarioEjecutivos)],
			"CELULAR":             "225830435",
			"DIA":                 now.Format("02"),
			"MES":                 spanishMonths[int(now.Month())-1],
			"ANHO":                now.Format("2006"),
		})
	}
	return out, nil
}

// padOperation left-pads an operation number with zeros to twelve characters
func padOperation(s string) string {
	s = strings.TrimSpace(s)
	for len(s) < 12 {
		s = "0" + s
	}
	return s
}

// coerceInt truncates a numeric-like cell to its integer part, yielding "0"
// for anything unparsable.
func coerceInt(s string) string {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "0"
	}
	return strconv.FormatInt(int64(f), 10)
}

// reformatCompactDate turns a yyyymmdd cell into dd-mm-yyyy, empty on failure
func reformatCompactDate(s string) string {
	d, err := time.Parse("20060102", strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	return d.Format("02-01-2006")
}
