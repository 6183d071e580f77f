package solver

import (
	"context"
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	"google.golang.org/protobuf/proto"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
)

// solve 编译模型并同步调用 CP-SAT 求解
//
// 时间预算与并行度通过求解参数下发，预算到期返回当前最好的解。
func (o *Optimizer) solve(ctx context.Context, sm *scheduleModel) (*cmpb.CpSolverResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("求解前上下文已取消: %w", err)
	}

	m, err := sm.builder.Model()
	if err != nil {
		return nil, fmt.Errorf("编译排班模型失败: %w", err)
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(o.cfg.TimeBudget.Seconds()),
		NumSearchWorkers: proto.Int32(int32(o.cfg.Workers)),
	}
	resp, err := cpmodel.SolveCpModelWithParameters(m, params)
	if err != nil {
		return nil, fmt.Errorf("CP-SAT 求解失败: %w", err)
	}
	return resp, nil
}

// mapStatus 将求解器状态映射为结果状态
//
// 仅 OPTIMAL/FEASIBLE 可提取解，其余状态走降级路径。
func mapStatus(s cmpb.CpSolverStatus) (Status, bool) {
	switch s {
	case cmpb.CpSolverStatus_OPTIMAL:
		return StatusOptimal, true
	case cmpb.CpSolverStatus_FEASIBLE:
		return StatusFeasible, true
	default:
		return StatusFallback, false
	}
}
