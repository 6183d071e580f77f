package service

import (
	"context"

	"github.com/zhipai/zhipai/pkg/logger"
	"github.com/zhipai/zhipai/pkg/model"
)

// OptimizeResult 重排结果
type OptimizeResult struct {
	Status          string  `json:"status"`
	Message         string  `json:"message,omitempty"`
	ScheduleID      string  `json:"schedule_id,omitempty"`
	StartDate       string  `json:"start_date,omitempty"`
	EndDate         string  `json:"end_date,omitempty"`
	Assignments     int     `json:"assignments"`
	CoverageBefore  float64 `json:"coverage_before"`  // 重排前覆盖率 (%)
	CoverageAfter   float64 `json:"coverage_after"`   // 重排后覆盖率 (%)
	CoverageImprove float64 `json:"coverage_improve"` // 覆盖率提升 (百分点)
}

// OptimizeSchedule 对既有排班窗口重新求解
//
// 从指定的运行记录推导覆盖日期范围，重新生成排班，
// 幂等写入保证已有分配不会重复；以覆盖率前后对比报告改善。
func (s *ScheduleService) OptimizeSchedule(ctx context.Context, scheduleIDs []string) *OptimizeResult {
	if len(scheduleIDs) == 0 {
		return &OptimizeResult{Status: StatusError, Message: "未指定排班记录"}
	}

	runs, err := s.store.ListSchedules(ctx, scheduleIDs)
	if err != nil {
		return &OptimizeResult{Status: StatusError, Message: "加载排班记录失败: " + err.Error()}
	}
	if len(runs) == 0 {
		return &OptimizeResult{Status: StatusError, Message: "排班记录不存在"}
	}

	startDate, endDate := coveringRange(runs)
	before := s.currentCoverage(ctx, startDate, endDate)

	result := s.GenerateSchedule(ctx, startDate, endDate, nil)
	if result.Status == StatusError {
		return &OptimizeResult{
			Status:    StatusError,
			Message:   result.Message,
			StartDate: startDate,
			EndDate:   endDate,
		}
	}

	// 旧运行记录标记为已替代，避免后续统计重复计入
	for _, r := range runs {
		r.Status = StatusSuperseded
		if err := s.store.UpdateScheduleRun(ctx, r); err != nil {
			logger.WithContext(ctx).Warn().
				Str("schedule_id", r.ID).
				Err(err).
				Msg("更新排班记录状态失败")
		}
	}

	after := s.currentCoverage(ctx, startDate, endDate)
	logger.WithContext(ctx).Info().
		Str("schedule_id", result.ScheduleID).
		Float64("coverage_before", before).
		Float64("coverage_after", after).
		Msg("排班重排完成")

	return &OptimizeResult{
		Status:          result.Status,
		ScheduleID:      result.ScheduleID,
		StartDate:       startDate,
		EndDate:         endDate,
		Assignments:     len(result.Assignments),
		CoverageBefore:  before,
		CoverageAfter:   after,
		CoverageImprove: after - before,
	}
}

// coveringRange 取所有运行记录的最小覆盖日期范围
func coveringRange(runs []*model.ScheduleRun) (string, string) {
	start, end := runs[0].StartDate, runs[0].EndDate
	for _, r := range runs[1:] {
		if r.StartDate < start {
			start = r.StartDate
		}
		if r.EndDate > end {
			end = r.EndDate
		}
	}
	return start, end
}

// currentCoverage 计算当前落库分配在日期范围内的覆盖率 (%)
func (s *ScheduleService) currentCoverage(ctx context.Context, startDate, endDate string) float64 {
	templates, err := s.store.FetchActiveShiftTemplates(ctx)
	if err != nil {
		return 0
	}
	assignments, err := s.store.ListAssignments(ctx, startDate, endDate)
	if err != nil {
		return 0
	}
	dates := model.DateRange{StartDate: startDate, EndDate: endDate}.Days()
	shifts := expandShifts(templates, dates)
	return s.coverage.Analyze(shifts, assignments).OverallCoverage
}
