package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/khamsone/bizbooks_backend/internal/apperrors"
	"github.com/khamsone/bizbooks_backend/internal/core/domain"
	portssvc "github.com/khamsone/bizbooks_backend/internal/core/ports/services"
	"github.com/khamsone/bizbooks_backend/internal/dto"
	"github.com/khamsone/bizbooks_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tourHandler handles HTTP requests for tour programs and their cost and
// income rows.
type tourHandler struct {
	tourService portssvc.TourSvcFacade
}

func newTourHandler(ts portssvc.TourSvcFacade) *tourHandler {
	return &tourHandler{tourService: ts}
}

// registerTourRoutes registers routes for tour programs.
func registerTourRoutes(rg *gin.RouterGroup, tourService portssvc.TourSvcFacade) {
	h := newTourHandler(tourService)

	programs := rg.Group("/tours/programs")
	{
		programs.POST("", h.createProgram)
		programs.GET("", h.listPrograms)
		programs.GET("/:programID", h.getProgram)
		programs.PUT("/:programID", h.updateProgram)
		programs.DELETE("/:programID", h.deleteProgram)
		programs.GET("/:programID/summary", h.programSummary)

		programs.POST("/:programID/costs", h.addCost)
		programs.GET("/:programID/costs", h.listCosts)
		programs.POST("/:programID/incomes", h.addIncome)
		programs.GET("/:programID/incomes", h.listIncomes)
		programs.PUT("/:programID/items/:itemID", h.updateItem)
		programs.DELETE("/:programID/items/:itemID", h.deleteItem)
	}
}

// createProgram godoc
// @Summary Open a tour program
// @Tags tours
// @Accept  json
// @Produce  json
// @Param   program body dto.CreateTourProgramRequest true "Program details"
// @Success 201 {object} dto.TourProgramResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create program"
// @Router /tours/programs [post]
func (h *tourHandler) createProgram(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTourProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTourProgram", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	program, err := h.tourService.CreateProgram(c.Request.Context(), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create tour program", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create tour program"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTourProgramResponse(program))
}

// listPrograms godoc
// @Summary List tour programs
// @Tags tours
// @Produce  json
// @Success 200 {array} dto.TourProgramResponse
// @Failure 500 {object} map[string]string "Failed to list programs"
// @Router /tours/programs [get]
func (h *tourHandler) listPrograms(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	programs, err := h.tourService.ListPrograms(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tour programs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tour programs"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTourProgramResponse(programs))
}

// getProgram godoc
// @Summary Get a tour program
// @Tags tours
// @Produce  json
// @Param   programID path string true "Program ID"
// @Success 200 {object} dto.TourProgramResponse
// @Failure 404 {object} map[string]string "Program not found"
// @Failure 500 {object} map[string]string "Failed to retrieve program"
// @Router /tours/programs/{programID} [get]
func (h *tourHandler) getProgram(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	program, err := h.tourService.GetProgram(c.Request.Context(), c.Param("programID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour program not found"})
		} else {
			logger.Error("Failed to get tour program", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tour program"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTourProgramResponse(program))
}

// updateProgram godoc
// @Summary Edit a tour program
// @Tags tours
// @Accept  json
// @Produce  json
// @Param   programID path string true "Program ID"
// @Param   program body dto.UpdateTourProgramRequest true "Fields to change"
// @Success 200 {object} dto.TourProgramResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Program not found"
// @Failure 500 {object} map[string]string "Failed to update program"
// @Router /tours/programs/{programID} [put]
func (h *tourHandler) updateProgram(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTourProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTourProgram", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	program, err := h.tourService.UpdateProgram(c.Request.Context(), c.Param("programID"), req, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour program not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update tour program", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tour program"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTourProgramResponse(program))
}

// deleteProgram godoc
// @Summary Delete a tour program
// @Description Removes a program together with its cost and income rows
// @Tags tours
// @Produce  json
// @Param   programID path string true "Program ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Program not found"
// @Failure 500 {object} map[string]string "Failed to delete program"
// @Router /tours/programs/{programID} [delete]
func (h *tourHandler) deleteProgram(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.tourService.DeleteProgram(c.Request.Context(), c.Param("programID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour program not found"})
		} else {
			logger.Error("Failed to delete tour program", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tour program"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// programSummary godoc
// @Summary Per-currency rollup of a program
// @Description Sums the program's cost and income rows per currency and nets them
// @Tags tours
// @Produce  json
// @Param   programID path string true "Program ID"
// @Success 200 {object} dto.TourProgramSummaryResponse
// @Failure 404 {object} map[string]string "Program not found"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /tours/programs/{programID}/summary [get]
func (h *tourHandler) programSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	programID := c.Param("programID")

	summary, err := h.tourService.ProgramSummary(c.Request.Context(), programID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour program not found"})
		} else {
			logger.Error("Failed to compute program summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute program summary"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTourProgramSummaryResponse(programID, *summary))
}

func (h *tourHandler) addCost(c *gin.Context)   { h.addItem(c, domain.TourCost) }
func (h *tourHandler) addIncome(c *gin.Context) { h.addItem(c, domain.TourIncome) }

func (h *tourHandler) listCosts(c *gin.Context)   { h.listItems(c, domain.TourCost) }
func (h *tourHandler) listIncomes(c *gin.Context) { h.listItems(c, domain.TourIncome) }

// addItem godoc
// @Summary Append a cost or income row
// @Tags tours
// @Accept  json
// @Produce  json
// @Param   programID path string true "Program ID"
// @Param   item body dto.CreateTourItemRequest true "Row details"
// @Success 201 {object} dto.TourItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Program not found"
// @Failure 500 {object} map[string]string "Failed to add row"
// @Router /tours/programs/{programID}/costs [post]
func (h *tourHandler) addItem(c *gin.Context, kind domain.TourItemKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTourItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTourItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	item, err := h.tourService.AddItem(c.Request.Context(), c.Param("programID"), kind, req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour program not found"})
		} else {
			logger.Error("Failed to add tour item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add tour item"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTourItemResponse(item))
}

// listItems godoc
// @Summary List a program's cost or income rows
// @Tags tours
// @Produce  json
// @Param   programID path string true "Program ID"
// @Success 200 {array} dto.TourItemResponse
// @Failure 404 {object} map[string]string "Program not found"
// @Failure 500 {object} map[string]string "Failed to list rows"
// @Router /tours/programs/{programID}/costs [get]
func (h *tourHandler) listItems(c *gin.Context, kind domain.TourItemKind) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.tourService.ListItems(c.Request.Context(), c.Param("programID"), kind)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour program not found"})
		} else {
			logger.Error("Failed to list tour items", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tour items"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListTourItemResponse(items))
}

// updateItem godoc
// @Summary Edit a cost or income row
// @Tags tours
// @Accept  json
// @Produce  json
// @Param   programID path string true "Program ID"
// @Param   itemID path string true "Row ID"
// @Param   item body dto.UpdateTourItemRequest true "Fields to change"
// @Success 200 {object} dto.TourItemResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Row not found"
// @Failure 500 {object} map[string]string "Failed to update row"
// @Router /tours/programs/{programID}/items/{itemID} [put]
func (h *tourHandler) updateItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTourItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTourItem", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actorID := middleware.GetActorFromContext(c)

	item, err := h.tourService.UpdateItem(c.Request.Context(), c.Param("programID"), c.Param("itemID"), req, actorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour item not found"})
		} else {
			logger.Error("Failed to update tour item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update tour item"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTourItemResponse(item))
}

// deleteItem godoc
// @Summary Delete a cost or income row
// @Tags tours
// @Produce  json
// @Param   programID path string true "Program ID"
// @Param   itemID path string true "Row ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]string "Row not found"
// @Failure 500 {object} map[string]string "Failed to delete row"
// @Router /tours/programs/{programID}/items/{itemID} [delete]
func (h *tourHandler) deleteItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.tourService.DeleteItem(c.Request.Context(), c.Param("programID"), c.Param("itemID")); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tour item not found"})
		} else {
			logger.Error("Failed to delete tour item", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete tour item"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
