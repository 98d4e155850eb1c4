package converter

import (
	"strconv"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	resp := &dto.AuditLogResponse{
		ID:        strconv.FormatInt(log.ID, 10),
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt.Format(time.RFC3339),
	}
	if log.UserID != nil {
		resp.UserID = log.UserID.String()
	}
	if log.User != nil {
		resp.UserName = log.User.FullName
	}
	return resp
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
