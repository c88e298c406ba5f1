package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/hyperengineering/stride/internal/record"
	"github.com/hyperengineering/stride/internal/store"
	"github.com/hyperengineering/stride/internal/validation"
	"github.com/spf13/cobra"
)

var updateJSONOutput bool

var updateCmd = &cobra.Command{
	Use:   "update <type>",
	Short: "Update an existing record",
	Long: "Update fields on an existing record by id. Only flags you pass change;\n" +
		"passing an empty value clears that field where the field is optional.",
}

var (
	updateTaskID     string
	updateGoalID     string
	updatePlanID     string
	updateObstacleID string

	updateTaskValues     taskFlags
	updateGoalValues     goalFlags
	updatePlanValues     planFlags
	updateObstacleValues obstacleFlags
)

var updateTaskCmd = &cobra.Command{
	Use:   "task",
	Short: "Update a task",
	Args:  cobra.NoArgs,
	RunE:  runUpdateTask,
}

var updateGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Update a goal",
	Args:  cobra.NoArgs,
	RunE:  runUpdateGoal,
}

var updatePlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Update a plan",
	Args:  cobra.NoArgs,
	RunE:  runUpdatePlan,
}

var updateObstacleCmd = &cobra.Command{
	Use:   "obstacle",
	Short: "Update an obstacle",
	Args:  cobra.NoArgs,
	RunE:  runUpdateObstacle,
}

func init() {
	updateCmd.PersistentFlags().BoolVar(&updateJSONOutput, "json", false,
		"Output the updated record as JSON")

	updateTaskCmd.Flags().StringVar(&updateTaskID, "id", "", "Record id (required)")
	bindTaskFlags(updateTaskCmd.Flags(), &updateTaskValues)

	updateGoalCmd.Flags().StringVar(&updateGoalID, "id", "", "Record id (required)")
	bindGoalFlags(updateGoalCmd.Flags(), &updateGoalValues)

	updatePlanCmd.Flags().StringVar(&updatePlanID, "id", "", "Record id (required)")
	bindPlanFlags(updatePlanCmd.Flags(), &updatePlanValues)

	updateObstacleCmd.Flags().StringVar(&updateObstacleID, "id", "", "Record id (required)")
	bindObstacleFlags(updateObstacleCmd.Flags(), &updateObstacleValues)

	updateCmd.AddCommand(updateTaskCmd)
	updateCmd.AddCommand(updateGoalCmd)
	updateCmd.AddCommand(updatePlanCmd)
	updateCmd.AddCommand(updateObstacleCmd)
}

// validateID checks the --id flag every update subcommand requires.
func validateID(v *validation.Collector, id string) {
	v.Add(validation.ValidateRequired("id", id))
	if id != "" {
		v.Add(validation.ValidateUUID("id", id))
	}
}

func runUpdateTask(cmd *cobra.Command, args []string) error {
	f := updateTaskValues
	flags := cmd.Flags()

	var v validation.Collector
	validateID(&v, updateTaskID)
	if flags.Changed("title") {
		v.Add(validation.ValidateRequired("title", f.title))
		validateCell(&v, "title", f.title)
	}
	if flags.Changed("priority") {
		v.Add(validation.ValidateEnum("priority", f.priority, record.PriorityValues()))
	}
	if flags.Changed("status") {
		v.Add(validation.ValidateEnum("status", f.status, record.TaskStatusValues()))
	}
	if flags.Changed("due-date") && f.dueDate != "" {
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

	st := resolveStore()
	ctx := context.Background()

	rec, err := st.Get(ctx, record.KindTask, updateTaskID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("task not found: %s", updateTaskID)
		}
		return err
	}
	task := rec.(*record.Task)

	if flags.Changed("title") {
		task.Title = f.title
	}
	if flags.Changed("description") {
		task.Description = f.description
	}
	if flags.Changed("priority") {
		task.Priority, _ = record.ParsePriority(f.priority)
	}
	if flags.Changed("effort") {
		task.Effort = f.effort
	}
	if flags.Changed("status") {
		task.Status, _ = record.ParseTaskStatus(f.status)
	}
	if flags.Changed("due-date") {
		task.DueDate = dateOrNil(f.dueDate)
	}
	if flags.Changed("tags") {
		task.Tags = f.tags
	}
	if flags.Changed("dependencies") {
		task.Dependencies = f.dependencies
	}
	if flags.Changed("reasoning") {
		task.Reasoning = f.reasoning
	}
	if flags.Changed("resolution") {
		task.Resolution = f.resolution
	}

	ok, err := st.Update(ctx, task)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("task not found: %s", updateTaskID)
	}

	if updateJSONOutput {
		return printJSON(cmd.OutOrStdout(), task)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated task %s\n", updateTaskID)
	return nil
}

func runUpdateGoal(cmd *cobra.Command, args []string) error {
	f := updateGoalValues
	flags := cmd.Flags()

	var v validation.Collector
	validateID(&v, updateGoalID)
	if flags.Changed("title") {
		v.Add(validation.ValidateRequired("title", f.title))
		validateCell(&v, "title", f.title)
	}
	// Priority is optional on goals; an empty value clears it.
	if flags.Changed("priority") && f.priority != "" {
		v.Add(validation.ValidateEnum("priority", f.priority, record.PriorityValues()))
	}
	if flags.Changed("status") {
		v.Add(validation.ValidateEnum("status", f.status, record.GoalStatusValues()))
	}
	if flags.Changed("target-date") && f.targetDate != "" {
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

	st := resolveStore()
	ctx := context.Background()

	rec, err := st.Get(ctx, record.KindGoal, updateGoalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("goal not found: %s", updateGoalID)
		}
		return err
	}
	goal := rec.(*record.Goal)

	if flags.Changed("title") {
		goal.Title = f.title
	}
	if flags.Changed("target-date") {
		goal.TargetDate = dateOrNil(f.targetDate)
	}
	if flags.Changed("priority") {
		if f.priority == "" {
			goal.Priority = ""
		} else {
			goal.Priority, _ = record.ParsePriority(f.priority)
		}
	}
	if flags.Changed("kpis") {
		goal.KPIs = f.kpis
	}
	if flags.Changed("resources") {
		goal.Resources = f.resources
	}
	if flags.Changed("status") {
		goal.Status, _ = record.ParseGoalStatus(f.status)
	}
	if flags.Changed("motivation") {
		goal.Motivation = f.motivation
	}
	if flags.Changed("first-step") {
		goal.FirstStep = f.firstStep
	}
	if flags.Changed("challenges") {
		goal.Challenges = f.challenges
	}
	if flags.Changed("contacts") {
		goal.Contacts = f.contacts
	}

	ok, err := st.Update(ctx, goal)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("goal not found: %s", updateGoalID)
	}

	if updateJSONOutput {
		return printJSON(cmd.OutOrStdout(), goal)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated goal %s\n", updateGoalID)
	return nil
}

func runUpdatePlan(cmd *cobra.Command, args []string) error {
	f := updatePlanValues
	flags := cmd.Flags()

	var v validation.Collector
	validateID(&v, updatePlanID)
	if flags.Changed("title") {
		v.Add(validation.ValidateRequired("title", f.title))
		validateCell(&v, "title", f.title)
	}
	if flags.Changed("type") {
		v.Add(validation.ValidateEnum("type", f.planType, record.PlanTypeValues()))
	}
	if flags.Changed("start-date") && f.startDate != "" {
		v.Add(validation.ValidateDate("start-date", f.startDate))
	}
	if flags.Changed("end-date") && f.endDate != "" {
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

	st := resolveStore()
	ctx := context.Background()

	rec, err := st.Get(ctx, record.KindPlan, updatePlanID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("plan not found: %s", updatePlanID)
		}
		return err
	}
	plan := rec.(*record.Plan)

	if flags.Changed("title") {
		plan.Title = f.title
	}
	if flags.Changed("type") {
		plan.Type, _ = record.ParsePlanType(f.planType)
	}
	if flags.Changed("start-date") {
		plan.StartDate = dateOrNil(f.startDate)
	}
	if flags.Changed("end-date") {
		plan.EndDate = dateOrNil(f.endDate)
	}
	if flags.Changed("dependencies") {
		plan.Dependencies = f.dependencies
	}
	if flags.Changed("progress") {
		plan.Progress = f.progress
	}
	if flags.Changed("status") {
		plan.Status = f.status
	}
	if flags.Changed("related-goal") {
		plan.RelatedGoal = f.relatedGoal
	}
	if flags.Changed("milestones") {
		plan.Milestones = f.milestones
	}
	if flags.Changed("resources") {
		plan.Resources = f.resources
	}

	ok, err := st.Update(ctx, plan)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("plan not found: %s", updatePlanID)
	}

	if updateJSONOutput {
		return printJSON(cmd.OutOrStdout(), plan)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated plan %s\n", updatePlanID)
	return nil
}

func runUpdateObstacle(cmd *cobra.Command, args []string) error {
	f := updateObstacleValues
	flags := cmd.Flags()

	var v validation.Collector
	validateID(&v, updateObstacleID)
	if flags.Changed("title") {
		v.Add(validation.ValidateRequired("title", f.title))
		validateCell(&v, "title", f.title)
	}
	if flags.Changed("likelihood") {
		v.Add(validation.ValidateEnum("likelihood", f.likelihood, record.LikelihoodValues()))
	}
	if flags.Changed("impact") {
		v.Add(validation.ValidateEnum("impact", f.impact, record.ImpactValues()))
	}
	if flags.Changed("category") {
		v.Add(validation.ValidateEnum("category", f.category, record.ObstacleCategoryValues()))
	}
	if flags.Changed("identified") {
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

	st := resolveStore()
	ctx := context.Background()

	rec, err := st.Get(ctx, record.KindObstacle, updateObstacleID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("obstacle not found: %s", updateObstacleID)
		}
		return err
	}
	obstacle := rec.(*record.Obstacle)

	if flags.Changed("title") {
		obstacle.Title = f.title
	}
	if flags.Changed("likelihood") {
		obstacle.Likelihood, _ = record.ParseLikelihood(f.likelihood)
	}
	if flags.Changed("impact") {
		obstacle.Impact, _ = record.ParseImpact(f.impact)
	}
	if flags.Changed("mitigation") {
		obstacle.Mitigation = f.mitigation
	}
	if flags.Changed("contingency") {
		obstacle.Contingency = f.contingency
	}
	if flags.Changed("category") {
		obstacle.Category, _ = record.ParseObstacleCategory(f.category)
	}
	if flags.Changed("status") {
		obstacle.Status = f.status
	}
	if flags.Changed("related-item") {
		obstacle.RelatedItem = f.relatedItem
	}
	if flags.Changed("assigned-to") {
		obstacle.AssignedTo = f.assignedTo
	}
	if flags.Changed("identified") {
		if t, ok := record.ParseDate(f.identified); ok {
			obstacle.IdentifiedAt = t
		}
	}

	ok, err := st.Update(ctx, obstacle)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("obstacle not found: %s", updateObstacleID)
	}

	if updateJSONOutput {
		return printJSON(cmd.OutOrStdout(), obstacle)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated obstacle %s\n", updateObstacleID)
	return nil
}
