package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/atelier-soft/joyeria-api/internal/application/dto"
	"github.com/atelier-soft/joyeria-api/internal/application/usecase"
)

// ProcedureHandler maneja las peticiones HTTP para procedimientos (protegido).
type ProcedureHandler struct {
	uc *usecase.ProcedureUseCase
}

// NewProcedureHandler construye el handler.
func NewProcedureHandler(uc *usecase.ProcedureUseCase) *ProcedureHandler {
	return &ProcedureHandler{uc: uc}
}

// Create godoc
// @Summary      Crear procedimiento
// @Tags         procedures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProcedureRequest  true  "Nombre del procedimiento"
// @Success      201   {object}  dto.ProcedureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/procedures [post]
func (h *ProcedureHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProcedureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar procedimientos
// @Tags         procedures
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ProcedureResponse
// @Router       /api/procedures [get]
func (h *ProcedureHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar procedimiento
// @Tags         procedures
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del procedimiento"
// @Param        body  body  dto.CreateProcedureRequest  true  "Nuevo nombre"
// @Success      200   {object}  dto.ProcedureResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/procedures/{id} [put]
func (h *ProcedureHandler) Update(c *fiber.Ctx) error {
	var in dto.CreateProcedureRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in.Name)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "procedimiento no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar procedimiento
// @Tags         procedures
// @Security     Bearer
// @Param        id  path  string  true  "ID del procedimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/procedures/{id} [delete]
func (h *ProcedureHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
