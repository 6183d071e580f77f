package solver

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/zhipai/zhipai/pkg/model"
)

// pairKey 员工×班次指派变量的键
type pairKey struct {
	emp   string
	shift string
}

// scheduleModel 一次求解的模型上下文
//
// 变量空间是统一的：每个员工×班次都有一个布尔变量，
// 不可行组合通过约束强制为假，而不是从空间中剔除。
type scheduleModel struct {
	builder *cpmodel.Builder
	input   *Input
	cfg     Config

	assign    map[pairKey]cpmodel.BoolVar // 指派变量
	hours     map[string]cpmodel.IntVar   // 员工窗口工时变量
	durations map[string]int64            // 班次时长（小时）
}

// buildScheduleModel 构建完整的 CP 模型：变量、硬约束、目标函数
func buildScheduleModel(in *Input, cfg Config) *scheduleModel {
	sm := &scheduleModel{
		builder:   cpmodel.NewCpModelBuilder(),
		input:     in,
		cfg:       cfg,
		assign:    make(map[pairKey]cpmodel.BoolVar),
		hours:     make(map[string]cpmodel.IntVar),
		durations: make(map[string]int64),
	}
	sm.addVariables()
	sm.addHardConstraints()
	sm.addObjective()
	return sm
}

// addVariables 创建指派变量与工时变量
func (sm *scheduleModel) addVariables() {
	for _, s := range sm.input.Shifts {
		sm.durations[s.ID] = int64(s.DurationHours())
	}

	for _, e := range sm.input.Employees {
		for _, s := range sm.input.Shifts {
			v := sm.builder.NewBoolVar().WithName(fmt.Sprintf("assign_%s_%s", e.ID, s.ID))
			sm.assign[pairKey{emp: e.ID, shift: s.ID}] = v
		}
	}

	// 每位员工一个有界工时变量，与指派变量的加权和等价
	weeks := sm.input.NumWeeks
	if weeks < 1 {
		weeks = 1
	}
	for _, e := range sm.input.Employees {
		lo := int64(e.MinHoursWeek * weeks)
		hi := int64(e.MaxHoursWeek * weeks)
		hv := sm.builder.NewIntVarFromDomain(cpmodel.NewDomain(lo, hi)).
			WithName(fmt.Sprintf("hours_%s", e.ID))
		sm.hours[e.ID] = hv

		worked := cpmodel.NewLinearExpr()
		for _, s := range sm.input.Shifts {
			worked.AddTerm(sm.assign[pairKey{emp: e.ID, shift: s.ID}], sm.durations[s.ID])
		}
		sm.builder.AddEquality(hv, worked)
	}
}

// forceFalse 将指派变量强制为假
func (sm *scheduleModel) forceFalse(e *model.Employee, s *model.Shift) {
	sm.builder.AddBoolOr(sm.assign[pairKey{emp: e.ID, shift: s.ID}].Not())
}
