package handler

import (
	"errors"

	"recruiter-pro/internal/delivery/http/dto"
	"recruiter-pro/internal/delivery/http/middleware"
	"recruiter-pro/internal/pkg/response"
	"recruiter-pro/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	matcher usecase.MatchUsecase
	batch   usecase.BatchUsecase
}

func NewMatchHandler(matcher usecase.MatchUsecase, batch usecase.BatchUsecase) *MatchHandler {
	return &MatchHandler{matcher: matcher, batch: batch}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches")
	grp.Post("/", h.Match)
	grp.Post("/batch", h.MatchBatch)
}

func (h *MatchHandler) Match(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := dto.Validate(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", nil, err)
	}

	out, err := h.matcher.MatchPair(c.Context(), candidateInputFromRequest(req.Candidate), req.JobID)
	if err != nil {
		return mapMatchError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, matchResponseFromOutcome(out))
}

func (h *MatchHandler) MatchBatch(c fiber.Ctx) error {
	var req dto.BatchMatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := dto.Validate(req); err != nil {
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Validation failed", nil, err)
	}

	res, err := h.batch.MatchCatalog(c.Context(), candidateInputFromRequest(req.Candidate), req.TopK)
	if err != nil {
		return mapMatchError(err)
	}

	out := dto.BatchMatchResponse{
		CandidateRef: res.CandidateRef,
		TotalJobs:    res.TotalJobs,
		Matches:      make([]dto.MatchResponse, 0, len(res.Records)),
	}
	for _, rec := range res.Records {
		out.Matches = append(out.Matches, matchResponseFromRecord(rec))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrEmptyProfile):
		return middleware.NewAppError(fiber.StatusBadRequest, "Candidate profile empty", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
