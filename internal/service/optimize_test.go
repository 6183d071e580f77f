package service

import (
	"context"
	"testing"

	"github.com/zhipai/zhipai/pkg/model"
	"github.com/zhipai/zhipai/pkg/solver"
)

func TestOptimizeScheduleEmptyIDs(t *testing.T) {
	svc := NewScheduleService(&stubStore{}, &stubOptimizer{}, nil)
	result := svc.OptimizeSchedule(context.Background(), nil)
	if result.Status != StatusError {
		t.Errorf("状态 = %s, want error", result.Status)
	}
}

func TestOptimizeScheduleMissingRuns(t *testing.T) {
	svc := NewScheduleService(&stubStore{}, &stubOptimizer{}, nil)
	result := svc.OptimizeSchedule(context.Background(), []string{"missing"})
	if result.Status != StatusError {
		t.Errorf("状态 = %s, want error", result.Status)
	}
}

func TestOptimizeScheduleDerivesCoveringRange(t *testing.T) {
	store := &stubStore{
		employees: testEmployees(),
		templates: testTemplates(),
		runs: []*model.ScheduleRun{
			{ID: "r1", StartDate: "2024-01-15", EndDate: "2024-01-17"},
			{ID: "r2", StartDate: "2024-01-16", EndDate: "2024-01-21"},
		},
	}

	var captured *solver.Input
	opt := &captureOptimizer{result: &solver.Result{
		Status: solver.StatusOptimal,
		Assignments: []*model.Assignment{
			{EmployeeID: "e1", ShiftID: "early_2024-01-15", TemplateID: "early",
				Date: "2024-01-15", StartTime: "09:00", EndTime: "17:00", Hours: 8},
		},
		EmployeeHours: map[string]float64{"e1": 8},
	}, captured: &captured}
	svc := NewScheduleService(store, opt, nil)

	result := svc.OptimizeSchedule(context.Background(), []string{"r1", "r2"})
	if result.Status != "optimal" {
		t.Fatalf("状态 = %s, want optimal", result.Status)
	}
	if result.StartDate != "2024-01-15" || result.EndDate != "2024-01-21" {
		t.Errorf("覆盖范围 = %s ~ %s, want 2024-01-15 ~ 2024-01-21", result.StartDate, result.EndDate)
	}
	if captured == nil {
		t.Fatal("优化器未被调用")
	}
	// 7 天 × 1 个模板
	if len(captured.Shifts) != 7 {
		t.Errorf("班次实例数 = %d, want 7", len(captured.Shifts))
	}
	if result.Assignments != 1 {
		t.Errorf("Assignments = %d, want 1", result.Assignments)
	}
	// 旧记录全部标记为已替代
	if len(store.updatedRuns) != 2 {
		t.Fatalf("更新的运行记录数 = %d, want 2", len(store.updatedRuns))
	}
	for _, r := range store.updatedRuns {
		if r.Status != StatusSuperseded {
			t.Errorf("运行记录 %s 状态 = %s, want superseded", r.ID, r.Status)
		}
	}
}

func TestOptimizeScheduleKeepsRunsOnError(t *testing.T) {
	store := &stubStore{
		runs: []*model.ScheduleRun{
			{ID: "r1", StartDate: "2024-01-15", EndDate: "2024-01-17"},
		},
	}
	svc := NewScheduleService(store, &stubOptimizer{}, nil)

	result := svc.OptimizeSchedule(context.Background(), []string{"r1"})
	if result.Status != StatusError {
		t.Fatalf("状态 = %s, want error", result.Status)
	}
	if len(store.updatedRuns) != 0 {
		t.Errorf("重排失败不应改动旧运行记录, 更新了 %d 条", len(store.updatedRuns))
	}
}
