package service

import (
	"context"
	"fmt"

	"github.com/zhipai/zhipai/pkg/model"
	"github.com/zhipai/zhipai/pkg/stats"
)

// CoverageStats 统计日期范围内落库排班的覆盖情况
func (s *ScheduleService) CoverageStats(ctx context.Context, startDate, endDate string) (*stats.CoverageMetrics, error) {
	dates := model.DateRange{StartDate: startDate, EndDate: endDate}.Days()
	if len(dates) == 0 {
		return nil, fmt.Errorf("日期范围非法: %s ~ %s", startDate, endDate)
	}

	templates, err := s.store.FetchActiveShiftTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载班次模板失败: %w", err)
	}
	assignments, err := s.store.ListAssignments(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("加载排班分配失败: %w", err)
	}

	return s.coverage.Analyze(expandShifts(templates, dates), assignments), nil
}

// FairnessStats 统计日期范围内排班分配的公平性
func (s *ScheduleService) FairnessStats(ctx context.Context, startDate, endDate string) (*stats.FairnessMetrics, error) {
	if len((model.DateRange{StartDate: startDate, EndDate: endDate}).Days()) == 0 {
		return nil, fmt.Errorf("日期范围非法: %s ~ %s", startDate, endDate)
	}

	employees, err := s.store.FetchActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载员工失败: %w", err)
	}
	assignments, err := s.store.ListAssignments(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("加载排班分配失败: %w", err)
	}

	return stats.NewFairnessAnalyzer().Analyze(assignments, employees), nil
}
