package service

import (
	"context"
	"testing"

	"github.com/zhipai/zhipai/pkg/model"
	"github.com/zhipai/zhipai/pkg/validator"
)

func TestCheckConflictsDoubleBooking(t *testing.T) {
	store := &stubStore{
		employees: testEmployees(),
		templates: testTemplates(),
		persisted: []*model.PersistedAssignment{
			{ID: "a1", EmployeeID: "e1", TemplateID: "early", Date: "2024-01-15", StartHour: 9, EndHour: 17},
			{ID: "a2", EmployeeID: "e1", TemplateID: "late", Date: "2024-01-15", StartHour: 17, EndHour: 22},
		},
	}
	svc := NewScheduleService(store, &stubOptimizer{}, nil)

	report, err := svc.CheckConflicts(context.Background(), "2024-01-15", "2024-01-21")
	if err != nil {
		t.Fatalf("CheckConflicts() error = %v", err)
	}
	if report.Checked != 2 {
		t.Errorf("Checked = %d, want 2", report.Checked)
	}
	if len(report.Conflicts) != 1 {
		t.Fatalf("冲突数 = %d, want 1", len(report.Conflicts))
	}
	if report.Conflicts[0].Type != validator.ConflictDoubleBooking {
		t.Errorf("冲突类型 = %s, want double_booking", report.Conflicts[0].Type)
	}
}

func TestCheckConflictsQualification(t *testing.T) {
	store := &stubStore{
		employees: []*model.Employee{
			{ID: "e1", Name: "甲", Skills: []string{"pos"}},
		},
		templates: []*model.ShiftTemplate{
			{ID: "icu", Name: "重症监护", RequiredSkills: []string{"rn_license"}, IsActive: true},
		},
		persisted: []*model.PersistedAssignment{
			{ID: "a1", EmployeeID: "e1", TemplateID: "icu", Date: "2024-01-15", StartHour: 9, EndHour: 17},
		},
	}
	svc := NewScheduleService(store, &stubOptimizer{}, nil)

	report, err := svc.CheckConflicts(context.Background(), "2024-01-15", "2024-01-21")
	if err != nil {
		t.Fatalf("CheckConflicts() error = %v", err)
	}
	if len(report.Conflicts) != 1 {
		t.Fatalf("冲突数 = %d, want 1", len(report.Conflicts))
	}
	if report.Conflicts[0].Type != validator.ConflictQualification {
		t.Errorf("冲突类型 = %s, want qualification_mismatch", report.Conflicts[0].Type)
	}
}

func TestCheckConflictsBadRange(t *testing.T) {
	svc := NewScheduleService(&stubStore{}, &stubOptimizer{}, nil)
	if _, err := svc.CheckConflicts(context.Background(), "2024-01-21", "2024-01-15"); err == nil {
		t.Error("非法日期范围应报错")
	}
}
