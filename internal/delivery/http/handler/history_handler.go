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

type HistoryHandler struct {
	history usecase.HistoryUsecase
}

func NewHistoryHandler(history usecase.HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{history: history}
}

func (h *HistoryHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/candidates/:candidate_ref/history", h.List)
}

func (h *HistoryHandler) List(c fiber.Ctx) error {
	candidateRef := c.Params("candidate_ref")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	rows, err := h.history.ListByCandidate(c.Context(), candidateRef, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.HistoryResponse{
		CandidateRef: candidateRef,
		Entries:      make([]dto.HistoryEntryResponse, 0, len(rows)),
	}
	for _, row := range rows {
		out.Entries = append(out.Entries, historyEntryFromRow(row))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
