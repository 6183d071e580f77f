package model

import (
	"testing"
)

func intPtr(v int) *int { return &v }

func TestUnavailableWindowMatches(t *testing.T) {
	tests := []struct {
		name    string
		window  UnavailableWindow
		weekday int
		start   int
		end     int
		want    bool
	}{
		{
			name:    "指定星期命中且时段相交",
			window:  UnavailableWindow{Day: intPtr(0), StartHour: intPtr(9), EndHour: intPtr(12)},
			weekday: 0, start: 10, end: 18,
			want: true,
		},
		{
			name:    "星期不同不命中",
			window:  UnavailableWindow{Day: intPtr(0), StartHour: intPtr(9), EndHour: intPtr(12)},
			weekday: 1, start: 10, end: 18,
			want: false,
		},
		{
			name:    "时段无交集不命中",
			window:  UnavailableWindow{Day: intPtr(0), StartHour: intPtr(9), EndHour: intPtr(12)},
			weekday: 0, start: 12, end: 18,
			want: false,
		},
		{
			name:    "缺省小时表示整天",
			window:  UnavailableWindow{Day: intPtr(3)},
			weekday: 3, start: 6, end: 8,
			want: true,
		},
		{
			name:    "缺省星期表示每天",
			window:  UnavailableWindow{StartHour: intPtr(22), EndHour: intPtr(23)},
			weekday: 5, start: 22, end: 23,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.window.Matches(tt.weekday, tt.start, tt.end); got != tt.want {
				t.Errorf("Matches(%d, %d, %d) = %v, want %v",
					tt.weekday, tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestSchedulingConstraintValid(t *testing.T) {
	ok := &SchedulingConstraint{
		Type:      ConstraintPreference,
		Priority:  5,
		Preferred: &PreferredHours{StartHour: 9, EndHour: 17},
	}
	if !ok.Valid() {
		t.Error("完整的偏好约束应通过校验")
	}

	badPriority := &SchedulingConstraint{
		Type:      ConstraintPreference,
		Priority:  0,
		Preferred: &PreferredHours{StartHour: 9, EndHour: 17},
	}
	if badPriority.Valid() {
		t.Error("优先级越界应校验失败")
	}

	missingVariant := &SchedulingConstraint{Type: ConstraintAvailability}
	if missingVariant.Valid() {
		t.Error("缺少变体字段应校验失败")
	}

	requirement := &SchedulingConstraint{
		Type:     ConstraintRequirement,
		Requires: &SkillRequirement{Skills: []string{"rn_license"}},
	}
	if !requirement.Valid() {
		t.Error("资质约束应通过校验")
	}
}

func TestTargetsEmployee(t *testing.T) {
	global := &SchedulingConstraint{}
	if !global.TargetsEmployee("e1") {
		t.Error("全局约束应作用于任意员工")
	}

	scoped := &SchedulingConstraint{EmployeeID: "e2"}
	if scoped.TargetsEmployee("e1") {
		t.Error("定向约束不应作用于其他员工")
	}
	if !scoped.TargetsEmployee("e2") {
		t.Error("定向约束应作用于目标员工")
	}
}
