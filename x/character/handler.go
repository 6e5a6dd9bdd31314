// Package character implements the roster: the character store and the
// operations the chat and HTTP surfaces invoke against it.
package character

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"

	"github.com/JayByRP/shield/core"
)

var tracer = otel.Tracer("character")

// Handler is the interface for handling HTTP requests
type Handler interface {
	Get(c echo.Context) error
	List(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type handler struct {
	service core.CharacterService
}

// NewHandler creates a new handler
func NewHandler(service core.CharacterService) Handler {
	return &handler{service: service}
}

// Get returns a character by exact name or unique prefix
func (h handler) Get(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Get")
	defer span.End()

	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "name is required"})
	}

	character, err := h.service.Show(ctx, name)
	if err != nil {
		var ambiguous core.ErrorAmbiguous
		if errors.As(err, &ambiguous) {
			return c.JSON(http.StatusMultipleChoices, echo.Map{"error": "Ambiguous name", "candidates": ambiguous.Candidates})
		}
		if errors.Is(err, core.ErrorNotFound{}) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
		}
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": character})
}

// List returns all characters
func (h handler) List(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.List")
	defer span.End()

	characters, err := h.service.List(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": characters})
}

// Create registers a new character
func (h handler) Create(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Create")
	defer span.End()

	var request createRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	created, err := h.service.Create(ctx, request.NewCharacter)
	if err != nil {
		if errors.Is(err, core.ErrorAlreadyExists{}) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "Character already exists"})
		}
		if errors.Is(err, core.ErrorInvalidImage{}) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid image URL", "message": "provide an https URL ending with .jpg, .jpeg, or .png"})
		}
		var invalid core.ErrorInvalidRequest
		if errors.As(err, &invalid) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": invalid.Message})
		}
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{"status": "ok", "content": created})
}

// Update edits an existing character
func (h handler) Update(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Update")
	defer span.End()

	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "name is required"})
	}

	var request updateRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	updated, err := h.service.Edit(ctx, name, request.Secret, request.CharacterPatch)
	if err != nil {
		return h.mutationError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": updated})
}

// Delete removes a character
func (h handler) Delete(c echo.Context) error {
	ctx, span := tracer.Start(c.Request().Context(), "Character.Handler.Delete")
	defer span.End()

	name := c.Param("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": "name is required"})
	}

	var request deleteRequest
	err := c.Bind(&request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": err.Error()})
	}

	deleted, err := h.service.Delete(ctx, name, request.Secret)
	if err != nil {
		return h.mutationError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "content": deleted})
}

func (h handler) mutationError(c echo.Context, err error) error {
	if errors.Is(err, core.ErrorPermissionDenied{}) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "Invalid character name or secret"})
	}
	if errors.Is(err, core.ErrorNotFound{}) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Character not found"})
	}
	if errors.Is(err, core.ErrorInvalidImage{}) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid image URL", "message": "provide an https URL ending with .jpg, .jpeg, or .png"})
	}
	var invalid core.ErrorInvalidRequest
	if errors.As(err, &invalid) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request", "message": invalid.Message})
	}
	return err
}
