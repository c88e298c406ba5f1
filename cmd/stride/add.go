package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hyperengineering/stride/internal/record"
	"github.com/hyperengineering/stride/internal/validation"
	"github.com/spf13/cobra"
)

var addJSONOutput bool

var addCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Add a new record",
	Long:  "Add a task, goal, plan, or obstacle to the workbook. A fresh id and timestamps are assigned on insert.",
}

var (
	addTaskValues     taskFlags
	addGoalValues     goalFlags
	addPlanValues     planFlags
	addObstacleValues obstacleFlags
)

var addTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Add a task",
	Args:  cobra.NoArgs,
	RunE:  runAddTask,
}

var addGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Add a goal",
	Args:  cobra.NoArgs,
	RunE:  runAddGoal,
}

var addPlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Add a plan",
	Args:  cobra.NoArgs,
	RunE:  runAddPlan,
}

var addObstacleCmd = &cobra.Command{
	Use:   "obstacle",
	Short: "Add an obstacle",
	Args:  cobra.NoArgs,
	RunE:  runAddObstacle,
}

func init() {
	addCmd.PersistentFlags().BoolVar(&addJSONOutput, "json", false,
		"Output the created record as JSON")

	bindTaskFlags(addTaskCmd.Flags(), &addTaskValues)
	bindGoalFlags(addGoalCmd.Flags(), &addGoalValues)
	bindPlanFlags(addPlanCmd.Flags(), &addPlanValues)
	bindObstacleFlags(addObstacleCmd.Flags(), &addObstacleValues)

	addCmd.AddCommand(addTaskCmd)
	addCmd.AddCommand(addGoalCmd)
	addCmd.AddCommand(addPlanCmd)
	addCmd.AddCommand(addObstacleCmd)
}

func runAddTask(cmd *cobra.Command, args []string) error {
	f := addTaskValues
	if f.status == "" {
		f.status = string(record.TaskStatusToDo)
	}

	var v validation.Collector
	v.Add(validation.ValidateRequired("title", f.title))
	validateCell(&v, "title", f.title)
	v.Add(validation.ValidateRequired("priority", f.priority))
	if f.priority != "" {
		v.Add(validation.ValidateEnum("priority", f.priority, record.PriorityValues()))
	}
	v.Add(validation.ValidateEnum("status", f.status, record.TaskStatusValues()))
	if f.dueDate != "" {
		v.Add(validation.ValidateDate("due-date", f.dueDate))
	}
	validateCell(&v, "description", f.description)
	validateCell(&v, "effort", f.effort)
	validateCell(&v, "tags", f.tags)
	validateCell(&v, "dependencies", f.dependencies)
	validateCell(&v, "reasoning", f.reasoning)
	validateCell(&v, "resolution", f.resolution)
	if v.HasErrors() {
		return validationErr(v.Errors())
	}

	priority, _ := record.ParsePriority(f.priority)
	status, _ := record.ParseTaskStatus(f.status)

	task := &record.Task{
		Title:        f.title,
		Description:  f.description,
		Priority:     priority,
		Effort:       f.effort,
		Status:       status,
		DueDate:      dateOrNil(f.dueDate),
		Tags:         f.tags,
		Dependencies: f.dependencies,
		Reasoning:    f.reasoning,
		Resolution:   f.resolution,
	}

	if err := resolveStore().Add(context.Background(), task); err != nil {
		return err
	}

	if addJSONOutput {
		return printJSON(cmd.OutOrStdout(), task)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added task %q (id: %s)\n", task.Title, task.ID)
	return nil
}

func runAddGoal(cmd *cobra.Command, args []string) error {
	f := addGoalValues
	if f.status == "" {
		f.status = string(record.GoalStatusNotStarted)
	}

	var v validation.Collector
	v.Add(validation.ValidateRequired("title", f.title))
	validateCell(&v, "title", f.title)
	if f.priority != "" {
		v.Add(validation.ValidateEnum("priority", f.priority, record.PriorityValues()))
	}
	v.Add(validation.ValidateEnum("status", f.status, record.GoalStatusValues()))
	if f.targetDate != "" {
		v.Add(validation.ValidateDate("target-date", f.targetDate))
	}
	validateCell(&v, "kpis", f.kpis)
	validateCell(&v, "resources", f.resources)
	validateCell(&v, "motivation", f.motivation)
	validateCell(&v, "first-step", f.firstStep)
	validateCell(&v, "challenges", f.challenges)
	validateCell(&v, "contacts", f.contacts)
	if v.HasErrors() {
		return validationErr(v.Errors())
	}

	status, _ := record.ParseGoalStatus(f.status)
	goal := &record.Goal{
		Title:      f.title,
		TargetDate: dateOrNil(f.targetDate),
		KPIs:       f.kpis,
		Resources:  f.resources,
		Status:     status,
		Motivation: f.motivation,
		FirstStep:  f.firstStep,
		Challenges: f.challenges,
		Contacts:   f.contacts,
	}
	if f.priority != "" {
		goal.Priority, _ = record.ParsePriority(f.priority)
	}

	if err := resolveStore().Add(context.Background(), goal); err != nil {
		return err
	}

	if addJSONOutput {
		return printJSON(cmd.OutOrStdout(), goal)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added goal %q (id: %s)\n", goal.Title, goal.ID)
	return nil
}

func runAddPlan(cmd *cobra.Command, args []string) error {
	f := addPlanValues

	var v validation.Collector
	v.Add(validation.ValidateRequired("title", f.title))
	validateCell(&v, "title", f.title)
	v.Add(validation.ValidateRequired("type", f.planType))
	if f.planType != "" {
		v.Add(validation.ValidateEnum("type", f.planType, record.PlanTypeValues()))
	}
	if f.startDate != "" {
		v.Add(validation.ValidateDate("start-date", f.startDate))
	}
	if f.endDate != "" {
		v.Add(validation.ValidateDate("end-date", f.endDate))
	}
	validateCell(&v, "dependencies", f.dependencies)
	validateCell(&v, "progress", f.progress)
	validateCell(&v, "status", f.status)
	validateCell(&v, "related-goal", f.relatedGoal)
	validateCell(&v, "milestones", f.milestones)
	validateCell(&v, "resources", f.resources)
	if v.HasErrors() {
		return validationErr(v.Errors())
	}

	planType, _ := record.ParsePlanType(f.planType)
	plan := &record.Plan{
		Title:        f.title,
		Type:         planType,
		StartDate:    dateOrNil(f.startDate),
		EndDate:      dateOrNil(f.endDate),
		Dependencies: f.dependencies,
		Progress:     f.progress,
		Status:       f.status,
		RelatedGoal:  f.relatedGoal,
		Milestones:   f.milestones,
		Resources:    f.resources,
	}

	if err := resolveStore().Add(context.Background(), plan); err != nil {
		return err
	}

	if addJSONOutput {
		return printJSON(cmd.OutOrStdout(), plan)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added plan %q (id: %s)\n", plan.Title, plan.ID)
	return nil
}

func runAddObstacle(cmd *cobra.Command, args []string) error {
	f := addObstacleValues

	var v validation.Collector
	v.Add(validation.ValidateRequired("title", f.title))
	validateCell(&v, "title", f.title)
	v.Add(validation.ValidateRequired("likelihood", f.likelihood))
	if f.likelihood != "" {
		v.Add(validation.ValidateEnum("likelihood", f.likelihood, record.LikelihoodValues()))
	}
	v.Add(validation.ValidateRequired("impact", f.impact))
	if f.impact != "" {
		v.Add(validation.ValidateEnum("impact", f.impact, record.ImpactValues()))
	}
	v.Add(validation.ValidateRequired("category", f.category))
	if f.category != "" {
		v.Add(validation.ValidateEnum("category", f.category, record.ObstacleCategoryValues()))
	}
	if f.identified != "" {
		v.Add(validation.ValidateDate("identified", f.identified))
	}
	validateCell(&v, "mitigation", f.mitigation)
	validateCell(&v, "contingency", f.contingency)
	validateCell(&v, "status", f.status)
	validateCell(&v, "related-item", f.relatedItem)
	validateCell(&v, "assigned-to", f.assignedTo)
	if v.HasErrors() {
		return validationErr(v.Errors())
	}

	identified := time.Now().UTC()
	if t, ok := record.ParseDate(f.identified); ok {
		identified = t
	}

	likelihood, _ := record.ParseLikelihood(f.likelihood)
	impact, _ := record.ParseImpact(f.impact)
	category, _ := record.ParseObstacleCategory(f.category)

	obstacle := &record.Obstacle{
		Title:        f.title,
		Likelihood:   likelihood,
		Impact:       impact,
		Mitigation:   f.mitigation,
		Contingency:  f.contingency,
		Category:     category,
		Status:       f.status,
		RelatedItem:  f.relatedItem,
		AssignedTo:   f.assignedTo,
		IdentifiedAt: identified,
	}

	if err := resolveStore().Add(context.Background(), obstacle); err != nil {
		return err
	}

	if addJSONOutput {
		return printJSON(cmd.OutOrStdout(), obstacle)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added obstacle %q (id: %s)\n", obstacle.Title, obstacle.ID)
	return nil
}
