package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ceasahub/intake-api/internal/application/dto"
	"github.com/ceasahub/intake-api/internal/application/usecase"
	"github.com/ceasahub/intake-api/internal/domain"
)

// RegistrationHandler maneja el registro a ciegas y sus listados (protegido).
type RegistrationHandler struct {
	uc *usecase.RegistrationUseCase
}

// NewRegistrationHandler construye el handler.
func NewRegistrationHandler(uc *usecase.RegistrationUseCase) *RegistrationHandler {
	return &RegistrationHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar recibimiento a ciegas
// @Tags         registrations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterBlindRequest  true  "producto, loja, cantidad"
// @Success      201   {object}  dto.RegistrationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/registrations [post]
func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterBlindRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegisterBlind(GetUserID(c), GetUsername(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad >= 0 y producto/loja son requeridos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o loja no existen"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListUnaudited godoc
// @Summary      Listar registros pendientes de auditoría
// @Tags         registrations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UnauditedListResponse
// @Router       /api/registrations/unaudited [get]
func (h *RegistrationHandler) ListUnaudited(c *fiber.Ctx) error {
	out, err := h.uc.ListUnaudited()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Stores godoc
// @Summary      Listar lojas (datos de referencia para el formulario de registro)
// @Tags         registrations
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreListResponse
// @Router       /api/stores [get]
func (h *RegistrationHandler) Stores(c *fiber.Ctx) error {
	out, err := h.uc.ListStores()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
