package record

import (
	"fmt"
	"strings"
)

// The enum parsers accept any casing but always return the canonical
// spelling, so cells written by hand survive a round trip normalized.

func matchEnum(raw string, values []string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, v := range values {
		if strings.EqualFold(raw, v) {
			return v, true
		}
	}
	return "", false
}

func enumError(name, raw string, values []string) error {
	return fmt.Errorf("invalid %s %q: must be one of %s", name, raw, strings.Join(values, ", "))
}

// Priority ranks tasks and goals.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func PriorityValues() []string { return []string{"high", "medium", "low"} }

func ParsePriority(s string) (Priority, error) {
	v, ok := matchEnum(s, PriorityValues())
	if !ok {
		return "", enumError("priority", s, PriorityValues())
	}
	return Priority(v), nil
}

// TaskStatus tracks a task through its lifecycle.
type TaskStatus string

const (
	TaskStatusToDo       TaskStatus = "toDo"
	TaskStatusInProgress TaskStatus = "inProgress"
	TaskStatusBlocked    TaskStatus = "blocked"
	TaskStatusDone       TaskStatus = "done"
)

func TaskStatusValues() []string { return []string{"toDo", "inProgress", "blocked", "done"} }

func ParseTaskStatus(s string) (TaskStatus, error) {
	v, ok := matchEnum(s, TaskStatusValues())
	if !ok {
		return "", enumError("task status", s, TaskStatusValues())
	}
	return TaskStatus(v), nil
}

// GoalStatus tracks a goal from idea to achievement.
type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "notStarted"
	GoalStatusPlanning   GoalStatus = "planning"
	GoalStatusInProgress GoalStatus = "inProgress"
	GoalStatusAchieved   GoalStatus = "achieved"
)

func GoalStatusValues() []string { return []string{"notStarted", "planning", "inProgress", "achieved"} }

func ParseGoalStatus(s string) (GoalStatus, error) {
	v, ok := matchEnum(s, GoalStatusValues())
	if !ok {
		return "", enumError("goal status", s, GoalStatusValues())
	}
	return GoalStatus(v), nil
}

// PlanType classifies the horizon a plan operates on.
type PlanType string

const (
	PlanTypeStrategic   PlanType = "strategic"
	PlanTypeTactical    PlanType = "tactical"
	PlanTypeOperational PlanType = "operational"
)

func PlanTypeValues() []string { return []string{"strategic", "tactical", "operational"} }

func ParsePlanType(s string) (PlanType, error) {
	v, ok := matchEnum(s, PlanTypeValues())
	if !ok {
		return "", enumError("plan type", s, PlanTypeValues())
	}
	return PlanType(v), nil
}

// Likelihood estimates how probable an obstacle is.
type Likelihood string

const (
	LikelihoodHigh   Likelihood = "high"
	LikelihoodMedium Likelihood = "medium"
	LikelihoodLow    Likelihood = "low"
)

func LikelihoodValues() []string { return []string{"high", "medium", "low"} }

func ParseLikelihood(s string) (Likelihood, error) {
	v, ok := matchEnum(s, LikelihoodValues())
	if !ok {
		return "", enumError("likelihood", s, LikelihoodValues())
	}
	return Likelihood(v), nil
}

// Impact estimates how damaging an obstacle would be.
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

func ImpactValues() []string { return []string{"high", "medium", "low"} }

func ParseImpact(s string) (Impact, error) {
	v, ok := matchEnum(s, ImpactValues())
	if !ok {
		return "", enumError("impact", s, ImpactValues())
	}
	return Impact(v), nil
}

// ObstacleCategory names the domain an obstacle belongs to.
type ObstacleCategory string

const (
	CategoryTechnical     ObstacleCategory = "technical"
	CategoryResource      ObstacleCategory = "resource"
	CategoryMarket        ObstacleCategory = "market"
	CategoryBehavioral    ObstacleCategory = "behavioral"
	CategoryCommunication ObstacleCategory = "communication"
	CategoryFinancial     ObstacleCategory = "financial"
)

func ObstacleCategoryValues() []string {
	return []string{"technical", "resource", "market", "behavioral", "communication", "financial"}
}

func ParseObstacleCategory(s string) (ObstacleCategory, error) {
	v, ok := matchEnum(s, ObstacleCategoryValues())
	if !ok {
		return "", enumError("obstacle category", s, ObstacleCategoryValues())
	}
	return ObstacleCategory(v), nil
}
