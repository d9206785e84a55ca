package ui

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cargas/adapters/excel"
	"cargas/domain/campaign"
	"cargas/domain/tabular"
	apperrors "cargas/internal/errors"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimeZIP  = "application/zip"
)

// handleCatalog serves the fixed catalogues the upload forms render
func (s *Server) handleCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"campo1_options": campaign.Campo1Choices,
		"usuarios":       campaign.Usuarios,
	})
}

// handleSMSProcess builds the dual CRM + Athenas load from an SMS campaign
// upload and responds with a zip of both workbooks.
func (s *Server) handleSMSProcess(c *gin.Context) {
	uploadID := uuid.NewString()
	log.Printf("[handleSMSProcess] %s starting", uploadID)

	mensaje := strings.TrimSpace(c.PostForm("mensaje"))
	usuario := strings.TrimSpace(c.PostForm("usuario"))
	if mensaje == "" {
		s.respondError(c, apperrors.InvalidInput("Debes ingresar un Mensaje."))
		return
	}
	if usuario == "" {
		s.respondError(c, apperrors.InvalidInput("Debes ingresar un Usuario."))
		return
	}

	table, err := s.readUpload(c, "file", excel.NewReader())
	if err != nil {
		s.respondError(c, err)
		return
	}

	now := time.Now()
	crm, dialer, err := campaign.BuildSMS(table, mensaje, usuario, now)
	if err != nil {
		log.Printf("[handleSMSProcess] %s FAILED: %v", uploadID, err)
		s.respondError(c, err)
		return
	}

	fecha := now.Format("02-01")
	archive, err := excel.Archive([]campaign.Output{
		{Name: fmt.Sprintf("cargaCRM_%s_.xlsx", fecha), Sheet: "cargaCRM", Table: crm},
		{Name: fmt.Sprintf("cargaAthenas_%s_.xlsx", fecha), Sheet: "cargaAthenas", Table: dialer},
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	log.Printf("[handleSMSProcess] %s done (%d rows)", uploadID, crm.Len())
	s.attachment(c, fmt.Sprintf("salidas_%s.zip", fecha), mimeZIP, archive)
}

// handleIVRProcess builds the Athenas IVR load
func (s *Server) handleIVRProcess(c *gin.Context) {
	uploadID := uuid.NewString()
	log.Printf("[handleIVRProcess] %s starting", uploadID)

	campo1 := strings.TrimSpace(c.PostForm("campo1"))
	if campo1 == "" {
		s.respondError(c, apperrors.InvalidInput("Debes seleccionar un valor para CAMPO1."))
		return
	}

	table, err := s.readUpload(c, "file", excel.NewReader())
	if err != nil {
		s.respondError(c, err)
		return
	}

	out, err := campaign.BuildIVR(table, campo1)
	if err != nil {
		log.Printf("[handleIVRProcess] %s FAILED: %v", uploadID, err)
		s.respondError(c, err)
		return
	}

	data, err := excel.WriteTable(out, "Hoja1")
	if err != nil {
		s.respondError(c, err)
		return
	}

	log.Printf("[handleIVRProcess] %s done (%d rows)", uploadID, out.Len())
	s.attachment(c, fmt.Sprintf("cargaIVR_%s_.xlsx", time.Now().Format("02-01")), mimeXLSX, data)
}

// handleCRMProcess builds the CRM load with a generated management schedule
func (s *Server) handleCRMProcess(c *gin.Context) {
	uploadID := uuid.NewString()
	log.Printf("[handleCRMProcess] %s starting", uploadID)

	usuario := strings.TrimSpace(c.PostForm("usuario"))
	fechaStr := strings.TrimSpace(c.PostForm("fecha"))
	horaInicio := strings.TrimSpace(c.PostForm("hora_inicio"))
	horaFin := strings.TrimSpace(c.PostForm("hora_fin"))
	intervaloStr := strings.TrimSpace(c.PostForm("intervalo"))

	if usuario == "" {
		s.respondError(c, apperrors.InvalidInput("Debes seleccionar un USUARIO."))
		return
	}
	if fechaStr == "" || horaInicio == "" || horaFin == "" {
		s.respondError(c, apperrors.InvalidInput("Debes indicar FECHA DE GESTIÓN y el RANGO HORARIO."))
		return
	}

	fecha, err := time.Parse("2006-01-02", fechaStr)
	if err != nil {
		s.respondError(c, apperrors.InvalidInput("Formato de fecha inválido (usa AAAA-MM-DD)."))
		return
	}

	intervalo := 0
	if intervaloStr != "" {
		intervalo, err = strconv.Atoi(intervaloStr)
		if err != nil || intervalo <= 0 {
			s.respondError(c, apperrors.InvalidInput("El intervalo debe ser un entero positivo en segundos."))
			return
		}
	}

	table, err := s.readUpload(c, "file", excel.NewReader())
	if err != nil {
		s.respondError(c, err)
		return
	}

	out, err := campaign.BuildScheduledCRM(table, fecha, horaInicio, horaFin, intervalo, usuario)
	if err != nil {
		log.Printf("[handleCRMProcess] %s FAILED: %v", uploadID, err)
		s.respondError(c, err)
		return
	}

	data, err := excel.WriteTable(out, "Hoja1")
	if err != nil {
		s.respondError(c, err)
		return
	}

	log.Printf("[handleCRMProcess] %s done (%d rows)", uploadID, out.Len())
	s.attachment(c, fmt.Sprintf("cargaIVR_CRM_%s.xlsx", time.Now().Format("02-01")), mimeXLSX, data)
}

// handleCollectionProcess runs the GM collections flow and returns the
// generated workbooks as a zip.
func (s *Server) handleCollectionProcess(c *gin.Context) {
	uploadID := uuid.NewString()
	log.Printf("[handleCollectionProcess] %s starting", uploadID)

	comparar := c.PostForm("habilitar_comparacion") == "on"
	masividades := c.PostForm("habilitar_masividades") == "on"

	nuevo, err := s.readUpload(c, "archivo", excel.NewReader())
	if err != nil {
		s.respondError(c, err)
		return
	}

	var anterior *tabular.Table
	if comparar {
		anterior, err = s.readUpload(c, "archivo_anterior", excel.NewReader())
		if err != nil {
			// Absent file and unreadable file are different user mistakes
			if prev, _, ferr := c.Request.FormFile("archivo_anterior"); ferr == nil {
				prev.Close()
			} else {
				err = apperrors.InvalidInput("Activaste comparación, pero no subiste archivo anterior.")
			}
			s.respondError(c, err)
			return
		}
	}

	now := time.Now()
	outputs, err := campaign.ProcessCollection(nuevo, anterior, comparar, masividades, now)
	if err != nil {
		log.Printf("[handleCollectionProcess] %s FAILED: %v", uploadID, err)
		s.respondError(c, err)
		return
	}

	archive, err := excel.Archive(outputs)
	if err != nil {
		s.respondError(c, err)
		return
	}

	log.Printf("[handleCollectionProcess] %s done (%d files)", uploadID, len(outputs))
	s.attachment(c, fmt.Sprintf("Procesamiento_GM_%s.zip", now.Format("02-01")), mimeZIP, archive)
}

// handleHipotecarioProcess ingests the semicolon-separated Santander
// mortgage extract, generates the CRM (and optionally the masividad) and
// parks them behind a download token.
func (s *Server) handleHipotecarioProcess(c *gin.Context) {
	uploadID := uuid.NewString()
	log.Printf("[handleHipotecarioProcess] %s starting", uploadID)

	masividades := c.PostForm("habilitar_masividades") == "on"

	table, err := s.readUpload(c, "archivo", excel.NewCSVReader(';'))
	if err != nil {
		s.respondError(c, err)
		return
	}

	now := time.Now()
	fecha := now.Format("02-01")

	crm, err := campaign.BuildHipotecarioCRM(table)
	if err != nil {
		log.Printf("[handleHipotecarioProcess] %s FAILED: %v", uploadID, err)
		s.respondError(c, err)
		return
	}
	outputs := map[string]campaign.Output{
		"crm": {
			Name:  fmt.Sprintf("ARCHIVO DE CARGA ASIGNACION HIPOTECARIO %s.xlsx", fecha),
			Sheet: "Hoja1",
			Table: crm,
		},
	}

	resp := gin.H{"crm_name": outputs["crm"].Name}
	if masividades {
		masividad, err := campaign.BuildHipotecarioMasividad(table, now)
		if err != nil {
			log.Printf("[handleHipotecarioProcess] %s FAILED: %v", uploadID, err)
			s.respondError(c, err)
			return
		}
		outputs["masividad"] = campaign.Output{
			Name:  fmt.Sprintf("Masividad Hipotecario %s.xlsx", fecha),
			Sheet: "Hoja1",
			Table: masividad,
		}
		resp["masiv_name"] = outputs["masividad"].Name
	}

	resp["token"] = s.downloads.put(outputs)
	log.Printf("[handleHipotecarioProcess] %s done", uploadID)
	c.JSON(http.StatusOK, resp)
}

// handleHipotecarioDownload serves one previously generated workbook
func (s *Server) handleHipotecarioDownload(c *gin.Context) {
	token := c.Param("token")
	kind := c.Param("kind")

	out, ok := s.downloads.get(token, kind)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontró el archivo para descargar."})
		return
	}

	data, err := excel.WriteTable(out.Table, out.Sheet)
	if err != nil {
		s.respondError(c, err)
		return
	}
	s.attachment(c, out.Name, mimeXLSX, data)
}

// readUpload pulls one multipart file, enforces the size cap and the
// spreadsheet extensions, and parses it into a table.
func (s *Server) readUpload(c *gin.Context, field string, reader *excel.Reader) (*tabular.Table, error) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		return nil, apperrors.InvalidInput("Debes subir un archivo Excel.")
	}
	defer file.Close()

	maxBytes := s.cfg.Upload.MaxFileSizeMB * 1024 * 1024
	if header.Size > maxBytes {
		return nil, apperrors.InvalidInput(fmt.Sprintf(
			"El archivo supera el límite de %d MB.", s.cfg.Upload.MaxFileSizeMB))
	}

	name := strings.ToLower(header.Filename)
	valid := false
	for _, ext := range []string{".xlsx", ".xls", ".xlsm", ".csv"} {
		if strings.HasSuffix(name, ext) {
			valid = true
			break
		}
	}
	if !valid {
		return nil, apperrors.InvalidInput("Solo se aceptan archivos Excel (.xlsx, .xls) o CSV (.csv).")
	}

	table, err := reader.Read(file, header.Filename)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Ocurrió un error procesando el archivo: %v", err))
	}
	return table, nil
}

// attachment streams generated bytes as a file download
func (s *Server) attachment(c *gin.Context, filename, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// respondError maps the error taxonomy onto HTTP statuses. Every core
// failure is recoverable and user-displayable; only unknown causes become a
// 500.
func (s *Server) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.CodeInvalidInput:
		status = http.StatusBadRequest
	case apperrors.CodeMissingColumns,
		apperrors.CodeMissingKeyColumn,
		apperrors.CodeFormatError,
		apperrors.CodeInvalidTimeFormat,
		apperrors.CodeInvalidRange,
		apperrors.CodeCapacityExceeded:
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
