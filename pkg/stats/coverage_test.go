package stats

import (
	"testing"

	"github.com/zhipai/zhipai/pkg/model"
)

func TestCoverageAnalyzeEmpty(t *testing.T) {
	m := NewCoverageAnalyzer().Analyze(nil, nil)
	if m.OverallCoverage != 100 {
		t.Errorf("空输入覆盖率 = %v, want 100", m.OverallCoverage)
	}
	if m.TotalSlots != 0 || m.FilledSlots != 0 {
		t.Errorf("空输入槽位统计应为零: %+v", m)
	}
}

func TestCoverageAnalyze(t *testing.T) {
	shifts := []*model.Shift{
		{ID: "early_2024-01-15", TemplateID: "early", Date: "2024-01-15",
			StartHour: 9, EndHour: 17, MinStaff: 2, MaxStaff: 3},
		{ID: "late_2024-01-15", TemplateID: "late", Date: "2024-01-15",
			StartHour: 17, EndHour: 22, MinStaff: 1, MaxStaff: 2},
	}
	assignments := []*model.PersistedAssignment{
		{EmployeeID: "e1", TemplateID: "early", Date: "2024-01-15", StartHour: 9, EndHour: 17},
		{EmployeeID: "e2", TemplateID: "early", Date: "2024-01-15", StartHour: 9, EndHour: 17},
	}

	m := NewCoverageAnalyzer().Analyze(shifts, assignments)

	if m.TotalSlots != 3 {
		t.Errorf("TotalSlots = %d, want 3", m.TotalSlots)
	}
	if m.FilledSlots != 2 {
		t.Errorf("FilledSlots = %d, want 2", m.FilledSlots)
	}
	if got := m.OverallCoverage; got < 66 || got > 67 {
		t.Errorf("OverallCoverage = %v, want ≈66.7", got)
	}

	if len(m.Understaffed) != 1 {
		t.Fatalf("人手不足班次数 = %d, want 1", len(m.Understaffed))
	}
	u := m.Understaffed[0]
	if u.ShiftID != "late_2024-01-15" || u.Shortage != 1 {
		t.Errorf("人手不足识别有误: %+v", u)
	}

	day, ok := m.DailyCoverage["2024-01-15"]
	if !ok {
		t.Fatal("缺少当日覆盖统计")
	}
	if day.RequiredSlot != 3 || day.Filled != 2 {
		t.Errorf("当日槽位统计 = %+v", day)
	}
	if day.TotalHours != 16 {
		t.Errorf("当日总工时 = %v, want 16", day.TotalHours)
	}
}

func TestCoverageOverfillDoesNotInflate(t *testing.T) {
	shifts := []*model.Shift{
		{ID: "s_2024-01-15", TemplateID: "s", Date: "2024-01-15",
			StartHour: 9, EndHour: 17, MinStaff: 1, MaxStaff: 3},
	}
	assignments := []*model.PersistedAssignment{
		{EmployeeID: "e1", TemplateID: "s", Date: "2024-01-15", StartHour: 9, EndHour: 17},
		{EmployeeID: "e2", TemplateID: "s", Date: "2024-01-15", StartHour: 9, EndHour: 17},
	}

	m := NewCoverageAnalyzer().Analyze(shifts, assignments)
	if m.FilledSlots != 1 {
		t.Errorf("超配不应抬高已填充槽位数, got %d", m.FilledSlots)
	}
	if m.OverallCoverage != 100 {
		t.Errorf("OverallCoverage = %v, want 100", m.OverallCoverage)
	}
}

func TestCoverageHourly(t *testing.T) {
	shifts := []*model.Shift{
		{ID: "n_2024-01-15", TemplateID: "n", Date: "2024-01-15",
			StartHour: 22, EndHour: 2, MinStaff: 1, MaxStaff: 1},
	}

	m := NewCoverageAnalyzer().Analyze(shifts, nil)
	// 跨夜班次回绕到次日凌晨
	for _, hour := range []int{22, 23, 0, 1} {
		if m.HourlyCoverage[hour] != 0 {
			t.Errorf("小时 %d 覆盖率 = %v, want 0", hour, m.HourlyCoverage[hour])
		}
	}
	if m.HourlyCoverage[12] != 100 {
		t.Errorf("无需求小时覆盖率 = %v, want 100", m.HourlyCoverage[12])
	}
}
