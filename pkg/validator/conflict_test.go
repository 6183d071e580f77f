package validator

import (
	"testing"

	"github.com/zhipai/zhipai/pkg/model"
)

func TestDetectDoubleBookings(t *testing.T) {
	employees := map[string]*model.Employee{
		"e1": {ID: "e1", Name: "甲"},
	}
	assignments := []*model.PersistedAssignment{
		{ID: "a1", EmployeeID: "e1", TemplateID: "early", Date: "2024-01-15"},
		{ID: "a2", EmployeeID: "e1", TemplateID: "late", Date: "2024-01-15"},
		{ID: "a3", EmployeeID: "e1", TemplateID: "early", Date: "2024-01-16"},
	}

	conflicts := NewConflictDetector().DetectAll(assignments, employees, nil)
	if len(conflicts) != 1 {
		t.Fatalf("冲突数 = %d, want 1", len(conflicts))
	}
	c := conflicts[0]
	if c.Type != ConflictDoubleBooking {
		t.Errorf("冲突类型 = %s, want double_booking", c.Type)
	}
	if c.Date != "2024-01-15" || c.EmployeeID != "e1" {
		t.Errorf("冲突定位有误: %+v", c)
	}
	if len(c.AssignmentIDs) != 2 {
		t.Errorf("关联分配数 = %d, want 2", len(c.AssignmentIDs))
	}
}

func TestDetectQualificationMismatches(t *testing.T) {
	employees := map[string]*model.Employee{
		"e1": {ID: "e1", Name: "甲", Role: "cashier", Skills: []string{"pos"}},
		"e2": {ID: "e2", Name: "乙", Role: "nurse", Skills: []string{"rn_license"}},
	}
	templates := map[string]*model.ShiftTemplate{
		"icu": {ID: "icu", Name: "重症监护", RequiredRole: "nurse", RequiredSkills: []string{"rn_license", "icu"}},
	}
	assignments := []*model.PersistedAssignment{
		{ID: "a1", EmployeeID: "e1", TemplateID: "icu", Date: "2024-01-15"}, // 角色不符
		{ID: "a2", EmployeeID: "e2", TemplateID: "icu", Date: "2024-01-16"}, // 缺 icu 技能
	}

	conflicts := NewConflictDetector().DetectAll(assignments, employees, templates)
	if len(conflicts) != 2 {
		t.Fatalf("冲突数 = %d, want 2", len(conflicts))
	}
	for _, c := range conflicts {
		if c.Type != ConflictQualification {
			t.Errorf("冲突类型 = %s, want qualification_mismatch", c.Type)
		}
	}
}

func TestDetectAllClean(t *testing.T) {
	employees := map[string]*model.Employee{
		"e1": {ID: "e1", Name: "甲", Skills: []string{"pos"}},
	}
	templates := map[string]*model.ShiftTemplate{
		"early": {ID: "early", Name: "早班", RequiredSkills: []string{"pos"}},
	}
	assignments := []*model.PersistedAssignment{
		{ID: "a1", EmployeeID: "e1", TemplateID: "early", Date: "2024-01-15"},
		{ID: "a2", EmployeeID: "e1", TemplateID: "early", Date: "2024-01-16"},
	}

	if got := NewConflictDetector().DetectAll(assignments, employees, templates); len(got) != 0 {
		t.Errorf("无冲突数据不应报告问题: %+v", got)
	}
}
