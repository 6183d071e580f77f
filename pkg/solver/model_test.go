package solver

import (
	"fmt"
	"testing"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/zhipai/zhipai/pkg/model"
)

// buildModelProto 构建模型并编译为 proto，便于直接检查约束编码
func buildModelProto(t *testing.T, in *Input, cfg Config) *cmpb.CpModelProto {
	t.Helper()
	sm := buildScheduleModel(in, cfg)
	m, err := sm.builder.Model()
	if err != nil {
		t.Fatalf("模型编译失败: %v", err)
	}
	return m
}

// protoVarIndex 按名称查找 proto 中的变量下标
func protoVarIndex(t *testing.T, m *cmpb.CpModelProto, name string) int32 {
	t.Helper()
	for i, v := range m.GetVariables() {
		if v.GetName() == name {
			return int32(i)
		}
	}
	t.Fatalf("模型中找不到变量 %s", name)
	return -1
}

// hasAtMostOnePair 检查 proto 中是否存在同时覆盖两个变量的至多一约束
func hasAtMostOnePair(m *cmpb.CpModelProto, a, b int32) bool {
	for _, c := range m.GetConstraints() {
		amo := c.GetAtMostOne()
		if amo == nil {
			continue
		}
		hitA, hitB := false, false
		for _, lit := range amo.GetLiterals() {
			if lit == a {
				hitA = true
			}
			if lit == b {
				hitB = true
			}
		}
		if hitA && hitB {
			return true
		}
	}
	return false
}

func TestModelForcesUnavailablePairFalse(t *testing.T) {
	// 仅周一 9-17 可用
	emp := &model.Employee{
		ID: "e1", Name: "甲", MaxHoursWeek: 40, HourlyRate: 20,
		Availability: map[int][]model.HourRange{0: {{StartHour: 9, EndHour: 17}}},
	}
	in := &Input{
		Employees: []*model.Employee{emp},
		Shifts: []*model.Shift{
			{ID: "s1", Date: "2024-01-15", Day: 0, StartHour: 9, EndHour: 17, MinStaff: 1, MaxStaff: 1},
			{ID: "s2", Date: "2024-01-15", Day: 0, StartHour: 18, EndHour: 22, MinStaff: 1, MaxStaff: 1},
		},
		StartDate: "2024-01-15",
		NumWeeks:  1,
	}

	m := buildModelProto(t, in, DefaultConfig())
	okIdx := protoVarIndex(t, m, "assign_e1_s1")
	badIdx := protoVarIndex(t, m, "assign_e1_s2")

	// 不可用组合的变量必须以否定字面量出现在单字面量 bool_or 里（强制为假）
	forced := make(map[int32]bool)
	for _, c := range m.GetConstraints() {
		bo := c.GetBoolOr()
		if bo == nil || len(bo.GetLiterals()) != 1 {
			continue
		}
		lit := bo.GetLiterals()[0]
		if lit < 0 {
			forced[-lit-1] = true
		}
	}
	if !forced[badIdx] {
		t.Error("不可用的员工×班次组合未被强制为假")
	}
	if forced[okIdx] {
		t.Error("可用组合不应被强制为假")
	}
}

func TestModelRestPairAtMostOne(t *testing.T) {
	emp := &model.Employee{
		ID: "e1", Name: "甲", MaxHoursWeek: 60, HourlyRate: 20,
		Availability: fullWeekAvailability(),
	}
	in := &Input{
		Employees: []*model.Employee{emp},
		Shifts: []*model.Shift{
			// 23:00→06:00 收尾在次日 06:00，距次日 09:00 只有 3 小时
			{ID: "n", Date: "2024-01-15", Day: 0, StartHour: 23, EndHour: 6, MinStaff: 0, MaxStaff: 1},
			{ID: "m", Date: "2024-01-16", Day: 1, StartHour: 9, EndHour: 17, MinStaff: 0, MaxStaff: 1},
			{ID: "f", Date: "2024-01-17", Day: 2, StartHour: 9, EndHour: 17, MinStaff: 0, MaxStaff: 1},
		},
		StartDate: "2024-01-15",
		NumWeeks:  1,
	}

	m := buildModelProto(t, in, DefaultConfig())
	nIdx := protoVarIndex(t, m, "assign_e1_n")
	mIdx := protoVarIndex(t, m, "assign_e1_m")
	fIdx := protoVarIndex(t, m, "assign_e1_f")

	if !hasAtMostOnePair(m, nIdx, mIdx) {
		t.Error("休息不足的跨夜班次对未生成至多一约束")
	}
	// 隔天 16 小时休息充足，不应被约束
	if hasAtMostOnePair(m, mIdx, fIdx) {
		t.Error("休息充足的班次对不应生成至多一约束")
	}
	if hasAtMostOnePair(m, nIdx, fIdx) {
		t.Error("相隔两天的班次对不应生成至多一约束")
	}
}

func TestModelWeeklyHoursDomain(t *testing.T) {
	tests := []struct {
		name   string
		weeks  int
		wantLo int64
		wantHi int64
	}{
		{"单周", 1, 0, 8},
		{"双周线性放大", 2, 0, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emp := &model.Employee{
				ID: "e1", Name: "甲", MinHoursWeek: 0, MaxHoursWeek: 8, HourlyRate: 20,
				Availability: fullWeekAvailability(),
			}
			shifts := make([]*model.Shift, 0, tt.weeks*7)
			for d := 0; d < tt.weeks*7; d++ {
				shifts = append(shifts, &model.Shift{
					ID: fmt.Sprintf("s%d", d), Date: "2024-01-15", Day: d,
					StartHour: 9, EndHour: 17, MinStaff: 0, MaxStaff: 1,
				})
			}
			in := &Input{
				Employees: []*model.Employee{emp},
				Shifts:    shifts,
				StartDate: "2024-01-15",
				NumWeeks:  tt.weeks,
			}

			m := buildModelProto(t, in, DefaultConfig())
			idx := protoVarIndex(t, m, "hours_e1")
			domain := m.GetVariables()[idx].GetDomain()
			if len(domain) != 2 || domain[0] != tt.wantLo || domain[1] != tt.wantHi {
				t.Errorf("工时变量取值域 = %v, want [%d %d]", domain, tt.wantLo, tt.wantHi)
			}
		})
	}
}
