package handler

import (
	"net/http"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/query"
	"hospital-management-api/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// List returns recorded audit entries, newest first
// @Summary List audit logs
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param action query string false "Filter by action"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	params := query.Parse(r.URL.Query())
	action := r.URL.Query().Get("action")

	logs, total, err := h.auditLogUsecase.List(r.Context(), action, params)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", logs, response.NewMeta(params.Page, params.Limit, total))
}
