package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/softhouse-dev/backoffice-backend-go/internal/domain/salary"
	"github.com/softhouse-dev/backoffice-backend-go/internal/handler/http/response"
)

type SalaryHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
}

type SalaryHandlerImpl struct {
	salaryService salary.SalaryService
}

func NewSalaryHandler(salaryService salary.SalaryService) SalaryHandler {
	return &SalaryHandlerImpl{salaryService: salaryService}
}

// Calculate implements SalaryHandler.
func (s *SalaryHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var calcReq salary.CalculateRequest

	if err := json.NewDecoder(r.Body).Decode(&calcReq); err != nil {
		slog.Error("Calculate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	breakdown, err := s.salaryService.Calculate(r.Context(), calcReq)
	if err != nil {
		slog.Error("Calculate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}
