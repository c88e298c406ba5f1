package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hyperengineering/stride/internal/record"
	"github.com/hyperengineering/stride/internal/validation"
	"github.com/spf13/pflag"
)

// Flag bundles for the four record kinds, shared by add and update. Every
// field is a raw string; parsing and validation happen in the runners.

type taskFlags struct {
	title        string
	description  string
	priority     string
	effort       string
	status       string
	dueDate      string
	tags         string
	dependencies string
	reasoning    string
	resolution   string
}

func bindTaskFlags(fs *pflag.FlagSet, v *taskFlags) {
	fs.StringVar(&v.title, "title", "", "Task title")
	fs.StringVar(&v.description, "description", "", "Longer description")
	fs.StringVar(&v.priority, "priority", "", "Priority: high, medium or low")
	fs.StringVar(&v.effort, "effort", "", "Estimated effort (free text)")
	fs.StringVar(&v.status, "status", "", "Status: toDo, inProgress, blocked or done")
	fs.StringVar(&v.dueDate, "due-date", "", "Due date (2025-06-15 or RFC 3339)")
	fs.StringVar(&v.tags, "tags", "", "Tags or categories")
	fs.StringVar(&v.dependencies, "dependencies", "", "What this task depends on")
	fs.StringVar(&v.reasoning, "reasoning", "", "Why this task exists")
	fs.StringVar(&v.resolution, "resolution", "", "How the task was resolved")
}

type goalFlags struct {
	title      string
	targetDate string
	priority   string
	kpis       string
	resources  string
	status     string
	motivation string
	firstStep  string
	challenges string
	contacts   string
}

func bindGoalFlags(fs *pflag.FlagSet, v *goalFlags) {
	fs.StringVar(&v.title, "title", "", "Goal title")
	fs.StringVar(&v.targetDate, "target-date", "", "Target completion date (2025-06-15 or RFC 3339)")
	fs.StringVar(&v.priority, "priority", "", "Priority: high, medium or low (optional)")
	fs.StringVar(&v.kpis, "kpis", "", "How success is measured")
	fs.StringVar(&v.resources, "resources", "", "Resources required")
	fs.StringVar(&v.status, "status", "", "Status: notStarted, planning, inProgress or achieved")
	fs.StringVar(&v.motivation, "motivation", "", "Why this goal matters")
	fs.StringVar(&v.firstStep, "first-step", "", "The very first step")
	fs.StringVar(&v.challenges, "challenges", "", "Potential challenges")
	fs.StringVar(&v.contacts, "contacts", "", "Support contacts")
}

type planFlags struct {
	title        string
	planType     string
	startDate    string
	endDate      string
	dependencies string
	progress     string
	status       string
	relatedGoal  string
	milestones   string
	resources    string
}

func bindPlanFlags(fs *pflag.FlagSet, v *planFlags) {
	fs.StringVar(&v.title, "title", "", "Plan title")
	fs.StringVar(&v.planType, "type", "", "Type of plan: strategic, tactical or operational")
	fs.StringVar(&v.startDate, "start-date", "", "Start date (2025-06-15 or RFC 3339)")
	fs.StringVar(&v.endDate, "end-date", "", "End date (2025-06-15 or RFC 3339)")
	fs.StringVar(&v.dependencies, "dependencies", "", "What this plan depends on")
	fs.StringVar(&v.progress, "progress", "", "Progress so far (free text)")
	fs.StringVar(&v.status, "status", "", "Status (free text)")
	fs.StringVar(&v.relatedGoal, "related-goal", "", "Goal this plan works toward")
	fs.StringVar(&v.milestones, "milestones", "", "Key milestones")
	fs.StringVar(&v.resources, "resources", "", "Allocated resources")
}

type obstacleFlags struct {
	title       string
	likelihood  string
	impact      string
	mitigation  string
	contingency string
	category    string
	status      string
	relatedItem string
	assignedTo  string
	identified  string
}

func bindObstacleFlags(fs *pflag.FlagSet, v *obstacleFlags) {
	fs.StringVar(&v.title, "title", "", "Obstacle title")
	fs.StringVar(&v.likelihood, "likelihood", "", "Likelihood: high, medium or low")
	fs.StringVar(&v.impact, "impact", "", "Impact: high, medium or low")
	fs.StringVar(&v.mitigation, "mitigation", "", "Mitigation strategies")
	fs.StringVar(&v.contingency, "contingency", "", "Contingency plans")
	fs.StringVar(&v.category, "category", "",
		"Category: technical, resource, market, behavioral, communication or financial")
	fs.StringVar(&v.status, "status", "", "Status (free text)")
	fs.StringVar(&v.relatedItem, "related-item", "", "Record this obstacle blocks")
	fs.StringVar(&v.assignedTo, "assigned-to", "", "Who owns the response")
	fs.StringVar(&v.identified, "identified", "", "Date identified (defaults to today)")
}

// Excel cells hold at most 32767 characters, and the workbook's XML encoding
// cannot carry null bytes or invalid UTF-8.
const maxCellLength = 32767

// validateCell runs the checks every free-text cell value must pass.
func validateCell(v *validation.Collector, field, value string) {
	v.Add(validation.ValidateUTF8(field, value))
	v.Add(validation.ValidateNoNullBytes(field, value))
	v.Add(validation.ValidateMaxLength(field, value, maxCellLength))
}

// validationErr flattens collected field errors into a single CLI error.
func validationErr(errs []validation.ValidationError) error {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = fmt.Sprintf("%s %s", e.Field, e.Message)
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, "; "))
}

// dateOrNil parses an already-validated date flag into a nullable time.
func dateOrNil(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	t, ok := record.ParseDate(raw)
	if !ok {
		return nil
	}
	return &t
}
