package solver

import (
	"testing"
	"time"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/zhipai/zhipai/pkg/model"
)

func TestBuildScheduleModelVariableSpace(t *testing.T) {
	in := &Input{
		Employees: []*model.Employee{
			testEmployee("e1", 20),
			testEmployee("e2", 25),
			testEmployee("e3", 30),
		},
		Shifts: []*model.Shift{
			{ID: "s1", Date: "2024-01-15", Day: 0, StartHour: 9, EndHour: 17, MinStaff: 1, MaxStaff: 2},
			{ID: "s2", Date: "2024-01-15", Day: 0, StartHour: 22, EndHour: 6, MinStaff: 1, MaxStaff: 1},
		},
		StartDate: "2024-01-15",
		NumWeeks:  1,
	}

	sm := buildScheduleModel(in, DefaultConfig())

	// 变量空间统一：不可行组合也有变量，由约束强制为假
	if got := len(sm.assign); got != 6 {
		t.Errorf("指派变量数 = %d, want 6", got)
	}
	if got := len(sm.hours); got != 3 {
		t.Errorf("工时变量数 = %d, want 3", got)
	}
	if sm.durations["s1"] != 8 || sm.durations["s2"] != 8 {
		t.Errorf("班次时长 = %v", sm.durations)
	}

	if _, err := sm.builder.Model(); err != nil {
		t.Fatalf("模型编译失败: %v", err)
	}
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name   string
		in     cmpb.CpSolverStatus
		want   Status
		wantOK bool
	}{
		{"最优解", cmpb.CpSolverStatus_OPTIMAL, StatusOptimal, true},
		{"可行解", cmpb.CpSolverStatus_FEASIBLE, StatusFeasible, true},
		{"无解降级", cmpb.CpSolverStatus_INFEASIBLE, StatusFallback, false},
		{"未知状态降级", cmpb.CpSolverStatus_UNKNOWN, StatusFallback, false},
		{"模型非法降级", cmpb.CpSolverStatus_MODEL_INVALID, StatusFallback, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mapStatus(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("mapStatus(%v) = (%s, %v), want (%s, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	o := New(Config{})
	if o.cfg.TimeBudget != 30*time.Second {
		t.Errorf("TimeBudget = %v, want 30s", o.cfg.TimeBudget)
	}
	if o.cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", o.cfg.Workers)
	}
	if o.cfg.MinRestHours != 8 {
		t.Errorf("MinRestHours = %d, want 8", o.cfg.MinRestHours)
	}
}

func TestCoverageRate(t *testing.T) {
	if got := coverageRate(6, 2, 3); got != 1.0 {
		t.Errorf("coverageRate(6,2,3) = %v, want 1.0", got)
	}
	if got := coverageRate(3, 2, 3); got != 0.5 {
		t.Errorf("coverageRate(3,2,3) = %v, want 0.5", got)
	}
	if got := coverageRate(0, 0, 0); got != 0 {
		t.Errorf("空输入覆盖率 = %v, want 0", got)
	}
}
