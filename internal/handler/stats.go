// Package handler 提供HTTP请求处理器
package handler

import (
	"net/http"

	"github.com/zhipai/zhipai/internal/service"
	"github.com/zhipai/zhipai/pkg/errors"
)

// StatsHandler 统计处理器
type StatsHandler struct {
	svc *service.ScheduleService
}

// NewStatsHandler 创建统计处理器
func NewStatsHandler(svc *service.ScheduleService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Coverage 覆盖率统计
// GET /api/v1/stats/coverage?start_date=...&end_date=...
func (h *StatsHandler) Coverage(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := statsRange(w, r)
	if !ok {
		return
	}

	metrics, err := h.svc.CoverageStats(r.Context(), startDate, endDate)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidTimeRange, "覆盖率统计失败"))
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

// Fairness 公平性统计
// GET /api/v1/stats/fairness?start_date=...&end_date=...
func (h *StatsHandler) Fairness(w http.ResponseWriter, r *http.Request) {
	startDate, endDate, ok := statsRange(w, r)
	if !ok {
		return
	}

	metrics, err := h.svc.FairnessStats(r.Context(), startDate, endDate)
	if err != nil {
		respondError(w, errors.Wrap(err, errors.CodeInvalidTimeRange, "公平性统计失败"))
		return
	}
	respondJSON(w, http.StatusOK, metrics)
}

// statsRange 解析统计接口的公共参数
func statsRange(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	if r.Method != http.MethodGet {
		respondError(w, errors.New(errors.CodeInvalidInput, "仅支持GET方法"))
		return "", "", false
	}
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		respondError(w, errors.New(errors.CodeInvalidInput, "start_date 与 end_date 必填"))
		return "", "", false
	}
	return startDate, endDate, true
}
