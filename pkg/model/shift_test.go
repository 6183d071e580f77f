package model

import (
	"testing"
)

func TestShiftDurationHours(t *testing.T) {
	tests := []struct {
		name      string
		startHour int
		endHour   int
		want      int
	}{
		{"普通白班", 9, 17, 8},
		{"跨夜班次", 22, 6, 8},
		{"深夜到清晨", 23, 5, 6},
		{"一小时短班", 12, 13, 1},
		{"起止相同视为整日", 8, 8, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Shift{StartHour: tt.startHour, EndHour: tt.endHour}
			if got := s.DurationHours(); got != tt.want {
				t.Errorf("DurationHours() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestShiftIsOvernight(t *testing.T) {
	day := &Shift{StartHour: 9, EndHour: 17}
	if day.IsOvernight() {
		t.Error("白班不应判定为跨夜")
	}
	night := &Shift{StartHour: 22, EndHour: 6}
	if !night.IsOvernight() {
		t.Error("22:00-06:00 应判定为跨夜")
	}
}

func TestShiftWeekdayAndWeekend(t *testing.T) {
	// 2024-01-15 是周一，2024-01-20 是周六
	mon := &Shift{Date: "2024-01-15"}
	if got := mon.Weekday(); got != 0 {
		t.Errorf("周一下标 = %d, want 0", got)
	}
	if mon.IsWeekend() {
		t.Error("周一不应判定为周末")
	}

	sat := &Shift{Date: "2024-01-20"}
	if got := sat.Weekday(); got != 5 {
		t.Errorf("周六下标 = %d, want 5", got)
	}
	if !sat.IsWeekend() {
		t.Error("周六应判定为周末")
	}
}

func TestTemplateInstantiate(t *testing.T) {
	tpl := &ShiftTemplate{
		ID:        "early",
		Name:      "早班",
		StartHour: 9,
		EndHour:   17,
		MinStaff:  2,
		MaxStaff:  3,
	}

	s := tpl.Instantiate("2024-01-16", 1)
	if s.ID != "early_2024-01-16" {
		t.Errorf("实例ID = %s, want early_2024-01-16", s.ID)
	}
	if s.TemplateID != "early" || s.Day != 1 || s.Date != "2024-01-16" {
		t.Errorf("实例字段不完整: %+v", s)
	}
	if s.MinStaff != 2 || s.MaxStaff != 3 {
		t.Error("人数上下限应从模板继承")
	}
}

func TestKindForStartHour(t *testing.T) {
	if KindForStartHour(9) != KindMorning {
		t.Error("9点开班应标记为早班")
	}
	if KindForStartHour(14) != KindAfternoon {
		t.Error("14点开班应标记为午后班")
	}
	if KindForStartHour(22) != KindNight {
		t.Error("22点开班应标记为夜班")
	}
}
