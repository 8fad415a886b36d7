package http

import (
	"encoding/json"
	"net/http"

	"github.com/kalea-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/kalea-hr/payroll-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payroll.PayslipService
}

func NewPayslipHandler(payslipService payroll.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

// Generate computes a payslip for one employee and one salary period.
func (h *payslipHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payslipService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Preview is the query-parameter variant of Generate, convenient for the
// admin UI's dry-run view. The computation is identical and side-effect free.
func (h *payslipHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	req := payroll.GeneratePayslipRequest{
		EmployeeID: r.URL.Query().Get("employee_id"),
		Period:     r.URL.Query().Get("period"),
	}

	result, err := h.payslipService.GeneratePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
