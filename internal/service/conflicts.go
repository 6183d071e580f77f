package service

import (
	"context"
	"fmt"

	"github.com/zhipai/zhipai/pkg/logger"
	"github.com/zhipai/zhipai/pkg/model"
	"github.com/zhipai/zhipai/pkg/validator"
)

// ConflictReport 冲突检查结果
type ConflictReport struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Checked   int                  `json:"checked"`
	Conflicts []validator.Conflict `json:"conflicts"`
}

// CheckConflicts 对已落库的分配行做事后校验
//
// 只报告 double_booking 与 qualification_mismatch，不做修复。
func (s *ScheduleService) CheckConflicts(ctx context.Context, startDate, endDate string) (*ConflictReport, error) {
	if len((model.DateRange{StartDate: startDate, EndDate: endDate}).Days()) == 0 {
		return nil, fmt.Errorf("日期范围非法: %s ~ %s", startDate, endDate)
	}

	assignments, err := s.store.ListAssignments(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("加载排班分配失败: %w", err)
	}
	employees, err := s.store.FetchActiveEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载员工失败: %w", err)
	}
	templates, err := s.store.FetchActiveShiftTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("加载班次模板失败: %w", err)
	}

	empByID := make(map[string]*model.Employee, len(employees))
	for _, e := range employees {
		empByID[e.ID] = e
	}
	tplByID := make(map[string]*model.ShiftTemplate, len(templates))
	for _, t := range templates {
		tplByID[t.ID] = t
	}

	conflicts := s.detector.DetectAll(assignments, empByID, tplByID)
	if len(conflicts) > 0 {
		logger.WithContext(ctx).Warn().
			Int("conflicts", len(conflicts)).
			Str("start_date", startDate).
			Str("end_date", endDate).
			Msg("检测到排班冲突")
	}

	return &ConflictReport{
		StartDate: startDate,
		EndDate:   endDate,
		Checked:   len(assignments),
		Conflicts: conflicts,
	}, nil
}
