package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/application/usecase"
	"github.com/ceasahub/intake-api/internal/domain"
)

// ReportHandler reporte de divergencia y sus exportaciones (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Divergences godoc
// @Summary      Reporte de divergencia (solo registros auditados)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "categoría o 'Todas'"
// @Param        user      query  string  false  "usuario registrador o 'Todos'"
// @Param        start     query  string  false  "fecha inicial YYYY-MM-DD (inclusiva)"
// @Param        end       query  string  false  "fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {object}  dto.DivergenceReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/divergences [get]
func (h *ReportHandler) Divergences(c *fiber.Ctx) error {
	var q dto.DivergenceQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.Divergent(q)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas en formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ExportPDF godoc
// @Summary      Descargar el reporte de divergencia en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        category  query  string  false  "categoría o 'Todas'"
// @Param        user      query  string  false  "usuario registrador o 'Todos'"
// @Param        start     query  string  false  "fecha inicial YYYY-MM-DD (inclusiva)"
// @Param        end       query  string  false  "fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/divergences/pdf [get]
func (h *ReportHandler) ExportPDF(c *fiber.Ctx) error {
	var q dto.DivergenceQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.ExportPDF(q)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas en formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("divergencias_%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// ExportXML godoc
// @Summary      Descargar el reporte de divergencia en XML
// @Tags         reports
// @Security     Bearer
// @Produce      application/xml
// @Param        category  query  string  false  "categoría o 'Todas'"
// @Param        user      query  string  false  "usuario registrador o 'Todos'"
// @Param        start     query  string  false  "fecha inicial YYYY-MM-DD (inclusiva)"
// @Param        end       query  string  false  "fecha final YYYY-MM-DD (inclusiva)"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/divergences/xml [get]
func (h *ReportHandler) ExportXML(c *fiber.Ctx) error {
	var q dto.DivergenceQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	data, err := h.uc.ExportXML(q)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fechas en formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("divergencias_%s.xml", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/xml")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}

// Filters godoc
// @Summary      Opciones de filtro del reporte (categorías y usuarios)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ReportFiltersResponse
// @Router       /api/reports/filters [get]
func (h *ReportHandler) Filters(c *fiber.Ctx) error {
	out, err := h.uc.FilterOptions()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
