package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/paws/shelter-backend/internal/api/metrics"
	"github.com/paws/shelter-backend/internal/core/ports"
)

// AnimalHandler handles the animal lifecycle endpoints.
type AnimalHandler struct {
	service ports.AnimalService
}

func NewAnimalHandler(service ports.AnimalService) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// Available lists all animals with status AVAILABLE.
//
// @Summary      List available animals
// @Tags         animals
// @Produce      json
// @Success      200  {array}  domain.Animal
// @Router       /animals/available [get]
func (h *AnimalHandler) Available(c echo.Context) error {
	animals, err := h.service.ListAvailable(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// All lists every animal, including adopted ones.
//
// @Summary      List all animals
// @Tags         animals
// @Produce      json
// @Success      200  {array}  domain.Animal
// @Router       /animals/all [get]
func (h *AnimalHandler) All(c echo.Context) error {
	animals, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// Get returns a single animal by id.
//
// @Summary      Get an animal
// @Tags         animals
// @Produce      json
// @Param        id   path      string  true  "Animal id"
// @Success      200  {object}  domain.Animal
// @Failure      404  {object}  messageResponse
// @Router       /animals/{id} [get]
func (h *AnimalHandler) Get(c echo.Context) error {
	animal, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animal)
}

// Search returns matching animals. The query is currently ignored and the
// AVAILABLE set returned.
//
// @Summary      Search animals
// @Tags         animals
// @Produce      json
// @Param        q    query    string  false  "Keyword"
// @Success      200  {array}  domain.Animal
// @Router       /animals/search [get]
func (h *AnimalHandler) Search(c echo.Context) error {
	animals, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, animals)
}

// Add creates an animal record. Status defaults to AVAILABLE when omitted.
//
// @Summary      Add an animal
// @Tags         animals
// @Accept       json
// @Produce      json
// @Param        body  body      animalRequest  true  "Animal details"
// @Success      200   {object}  domain.Animal
// @Failure      400   {object}  messageResponse
// @Router       /animals/add [post]
func (h *AnimalHandler) Add(c echo.Context) error {
	var req animalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.service.Add(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	metrics.AnimalsCreatedTotal.WithLabelValues(animal.Type).Inc()
	return c.JSON(http.StatusOK, animal)
}

// Update replaces an animal record wholesale. The route is admin-gated by
// the Auth and RequireRole middlewares.
//
// @Summary      Update an animal (admin)
// @Tags         animals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Animal id"
// @Param        body  body      animalRequest  true  "Complete replacement record"
// @Success      200   {object}  updateAnimalResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /animals/{id} [put]
func (h *AnimalHandler) Update(c echo.Context) error {
	var req animalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	animal, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}

	metrics.AnimalUpdatesTotal.WithLabelValues(string(animal.Status)).Inc()
	return c.JSON(http.StatusOK, updateAnimalResponse{
		Message: "Animal updated successfully",
		Animal:  animal,
	})
}
