package handler

import (
	"errors"
	"strconv"

	"recruiter-pro/internal/delivery/http/dto"
	"recruiter-pro/internal/delivery/http/middleware"
	"recruiter-pro/internal/pkg/response"
	"recruiter-pro/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	catalog usecase.JobCatalogUsecase
}

func NewJobsHandler(catalog usecase.JobCatalogUsecase) *JobsHandler {
	return &JobsHandler{catalog: catalog}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/", h.List)
	grp.Get("/:job_id", h.Get)
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "100"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	rows, err := h.catalog.List(c.Context(), limit, offset)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.JobListResponse{Jobs: make([]dto.JobResponse, 0, len(rows))}
	for _, row := range rows {
		out.Jobs = append(out.Jobs, jobResponseFromRow(row))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	row, err := h.catalog.Get(c.Context(), c.Params("job_id"))
	if err != nil {
		if errors.Is(err, usecase.ErrJobNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, jobResponseFromRow(row))
}
