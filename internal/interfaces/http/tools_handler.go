package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/pkg/calc"
)

// ToolsHandler utilidades auxiliares de la UI (calculadora rápida).
type ToolsHandler struct{}

// NewToolsHandler construye el handler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// Calc godoc
// @Summary      Evaluar una expresión aritmética (+ - * / y paréntesis)
// @Tags         tools
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CalcRequest  true  "expresión"
// @Success      200   {object}  dto.CalcResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/tools/calc [post]
func (h *ToolsHandler) Calc(c *fiber.Ctx) error {
	var in dto.CalcRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := calc.Eval(in.Expression)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_EXPRESSION", Message: err.Error()})
	}
	return c.JSON(dto.CalcResponse{Result: result})
}
