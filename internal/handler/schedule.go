// Package handler 提供HTTP请求处理器
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/zhipai/zhipai/internal/service"
	"github.com/zhipai/zhipai/pkg/errors"
	"github.com/zhipai/zhipai/pkg/model"
)

// ScheduleHandler 排班处理器
type ScheduleHandler struct {
	svc *service.ScheduleService
}

// NewScheduleHandler 创建排班处理器
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// GenerateRequest 排班生成请求
type GenerateRequest struct {
	StartDate   string                        `json:"start_date"`
	EndDate     string                        `json:"end_date"`
	Constraints []*model.SchedulingConstraint `json:"constraints,omitempty"`
}

// Generate 生成排班
// POST /api/v1/schedule/generate
func (h *ScheduleHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}
	if req.StartDate == "" || req.EndDate == "" {
		respondError(w, errors.New(errors.CodeInvalidInput, "start_date 与 end_date 必填"))
		return
	}
	for _, c := range req.Constraints {
		if !c.Valid() {
			respondError(w, errors.New(errors.CodeInvalidInput, "附加约束非法：类型与变体字段不一致"))
			return
		}
	}

	result := h.svc.GenerateSchedule(r.Context(), req.StartDate, req.EndDate, req.Constraints)
	status := http.StatusOK
	if result.Status == service.StatusError {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, result)
}

// Conflicts 冲突检查
// GET /api/v1/schedule/conflicts?start_date=...&end_date=...
func (h *ScheduleHandler) Conflicts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		respondError(w, errors.New(errors.CodeInvalidInput, "start_date 与 end_date 必填"))
		return
	}

	report, err := h.svc.CheckConflicts(r.Context(), startDate, endDate)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidTimeRange, "冲突检查失败"))
		return
	}
	respondJSON(w, http.StatusOK, report)
}

// OptimizeRequest 重排请求
type OptimizeRequest struct {
	ScheduleIDs []string `json:"schedule_ids"`
}

// Optimize 对既有排班重新求解
// POST /api/v1/schedule/optimize
func (h *ScheduleHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持POST方法"))
		return
	}

	var req OptimizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidInput, "解析请求失败"))
		return
	}
	if len(req.ScheduleIDs) == 0 {
		respondError(w, errors.New(errors.CodeInvalidInput, "schedule_ids 必填"))
		return
	}

	result := h.svc.OptimizeSchedule(r.Context(), req.ScheduleIDs)
	status := http.StatusOK
	if result.Status == service.StatusError {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, result)
}
