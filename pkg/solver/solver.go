// Package solver 实现基于 CP-SAT 的排班优化引擎
//
// 每次求解构建一个全新的约束模型：员工×班次的布尔指派变量、
// 七类硬约束、以及人力成本+软约束惩罚的最小化目标。
// 求解失败时降级为轮转启发式分配，降级是一等结果而非错误。
package solver

import (
	"context"
	"time"

	"github.com/zhipai/zhipai/pkg/logger"
	"github.com/zhipai/zhipai/pkg/model"
)

// Status 求解结果状态
type Status string

const (
	StatusOptimal  Status = "optimal"  // 证明最优
	StatusFeasible Status = "feasible" // 时间预算内的可行解
	StatusFallback Status = "fallback" // 启发式降级结果
)

// Config 求解器配置
type Config struct {
	TimeBudget   time.Duration `json:"time_budget"`    // 求解时间预算
	Workers      int           `json:"workers"`        // 并行搜索线程数
	MinRestHours int           `json:"min_rest_hours"` // 相邻班次最小休息小时数

	// 软约束惩罚权重（目标函数以美分为单位，权重需与其量级匹配）
	PreferenceWeight      int64 `json:"preference_weight"`
	WeekendFairnessWeight int64 `json:"weekend_fairness_weight"`
	BalanceWeight         int64 `json:"balance_weight"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		TimeBudget:            30 * time.Second,
		Workers:               8,
		MinRestHours:          8,
		PreferenceWeight:      200,
		WeekendFairnessWeight: 500,
		BalanceWeight:         50,
	}
}

// Input 一次优化运行的完整输入
type Input struct {
	Employees   []*model.Employee
	Shifts      []*model.Shift
	Constraints []*model.SchedulingConstraint
	StartDate   string
	NumWeeks    int // 排班窗口覆盖的周数（不足一周按一周计）
}

// Metrics 求解指标
type Metrics struct {
	TotalAssignments    int     `json:"total_assignments"`
	TotalHours          float64 `json:"total_hours"`
	AvgHoursPerEmployee float64 `json:"avg_hours_per_employee"`
	CoverageRate        float64 `json:"coverage_rate"`
	OptimizationTime    float64 `json:"optimization_time_seconds"`
	ObjectiveValue      float64 `json:"objective_value"`
}

// Result 求解结果，三种状态共用同一结构
type Result struct {
	Status        Status              `json:"status"`
	StartDate     string              `json:"start_date"`
	Assignments   []*model.Assignment `json:"assignments"`
	EmployeeHours map[string]float64  `json:"employee_hours"`
	TotalCost     float64             `json:"total_cost"`
	Metrics       Metrics             `json:"metrics"`
}

// Optimizer 排班优化器
type Optimizer struct {
	cfg Config
	log *logger.SolverLogger
}

// New 创建优化器
func New(cfg Config) *Optimizer {
	if cfg.TimeBudget <= 0 {
		cfg.TimeBudget = DefaultConfig().TimeBudget
	}
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.MinRestHours <= 0 {
		cfg.MinRestHours = DefaultConfig().MinRestHours
	}
	return &Optimizer{cfg: cfg, log: logger.NewSolverLogger()}
}

// GenerateSchedule 执行一次完整的排班优化
//
// 构建 CP 模型并求解；OPTIMAL/FEASIBLE 时从解中提取分配，
// 其余状态（含求解调用出错）降级为轮转启发式。
func (o *Optimizer) GenerateSchedule(ctx context.Context, in *Input) *Result {
	start := time.Now()
	o.log.StartSolve(len(in.Employees), len(in.Shifts), len(in.Constraints))

	sm := buildScheduleModel(in, o.cfg)
	o.log.ModelBuilt(len(sm.assign), len(sm.hours))

	resp, err := o.solve(ctx, sm)
	if err != nil {
		o.log.FallbackTriggered(err.Error())
		return o.runFallback(in, start)
	}

	status, ok := mapStatus(resp.GetStatus())
	o.log.SolveFinished(string(status), resp.GetObjectiveValue(), time.Since(start))
	if !ok {
		o.log.FallbackTriggered("求解状态 " + resp.GetStatus().String())
		return o.runFallback(in, start)
	}

	result := sm.extract(resp, status, time.Since(start))
	o.log.SolveComplete(string(result.Status), len(result.Assignments),
		result.Metrics.CoverageRate, time.Since(start))
	return result
}

// runFallback 执行启发式降级并补齐指标
func (o *Optimizer) runFallback(in *Input, start time.Time) *Result {
	result := fallbackAssign(in)
	result.Metrics.OptimizationTime = time.Since(start).Seconds()
	o.log.SolveComplete(string(result.Status), len(result.Assignments),
		result.Metrics.CoverageRate, time.Since(start))
	return result
}
