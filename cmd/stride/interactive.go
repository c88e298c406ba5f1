package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/hyperengineering/stride/internal/record"
	"github.com/hyperengineering/stride/internal/store"
	"github.com/hyperengineering/stride/internal/tui"
	"github.com/hyperengineering/stride/internal/validation"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"repl"},
	Short:   "Browse and edit records through guided prompts",
	Args:    cobra.NoArgs,
	RunE:    runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !tui.ShouldPrompt() {
		return errors.New("interactive mode needs a terminal; use add, list, show or update instead")
	}

	st := resolveStore()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, tui.TitleStyle.Render("stride"))
	fmt.Fprintln(out, tui.LabelStyle.Render("workbook: ")+tui.ValueStyle.Render(st.Path()))
	fmt.Fprintln(out, tui.HelpStyle.Render("esc or ctrl+c to quit"))

	for {
		action, err := tui.SelectString("What would you like to do?",
			[]string{"add", "list", "show", "update", "quit"}, "")
		if err != nil {
			if tui.IsAborted(err) {
				return nil
			}
			return err
		}
		if action == "quit" {
			return nil
		}

		if err := runInteractiveAction(out, st, action); err != nil {
			// Aborting a prompt returns to the menu instead of exiting.
			if tui.IsAborted(err) {
				continue
			}
			fmt.Fprintln(out, tui.ErrorStyle.Render("Error: ")+err.Error())
		}
	}
}

func runInteractiveAction(out io.Writer, st *store.WorkbookStore, action string) error {
	kindName, err := tui.SelectString("Which record type?",
		[]string{"task", "goal", "plan", "obstacle"}, "")
	if err != nil {
		return err
	}
	kind, err := record.ParseKind(kindName)
	if err != nil {
		return err
	}

	ctx := context.Background()

	switch action {
	case "add":
		rec, err := newRecordForKind(kind)
		if err != nil {
			return err
		}
		if err := promptRecord(rec); err != nil {
			return err
		}
		if err := st.Add(ctx, rec); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s %s\n", tui.SuccessStyle.Render("Added"), kind, record.ID(rec))
		return nil

	case "list":
		records, err := st.List(ctx, kind)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Fprintf(out, "No %ss found.\n", kind)
			return nil
		}
		renderList(out, kind, records)
		return nil

	case "show":
		rec, err := promptForRecord(ctx, st, kind)
		if err != nil {
			return err
		}
		renderRecord(out, rec)
		return nil

	case "update":
		rec, err := promptForRecord(ctx, st, kind)
		if err != nil {
			return err
		}
		if err := promptRecord(rec); err != nil {
			return err
		}
		confirmed, err := tui.Confirm("Save changes?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
		ok, err := st.Update(ctx, rec)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s not found: %s", kind, record.ID(rec))
		}
		fmt.Fprintf(out, "%s %s %s\n", tui.SuccessStyle.Render("Updated"), kind, record.ID(rec))
		return nil
	}

	return fmt.Errorf("unknown action %q", action)
}

func newRecordForKind(kind record.Kind) (record.Record, error) {
	switch kind {
	case record.KindTask:
		return &record.Task{}, nil
	case record.KindGoal:
		return &record.Goal{}, nil
	case record.KindPlan:
		return &record.Plan{}, nil
	case record.KindObstacle:
		return &record.Obstacle{}, nil
	}
	return nil, fmt.Errorf("unknown record kind %q", kind)
}

// promptForRecord asks for an id and loads that record.
func promptForRecord(ctx context.Context, st *store.WorkbookStore, kind record.Kind) (record.Record, error) {
	id, err := tui.Input(tui.Prompt{
		Title:       fmt.Sprintf("Which %s? (id)", kind),
		Description: "Ids are shown by list and add.",
		Placeholder: "a2d9c1e4-...",
		Required:    true,
		Validate: func(s string) error {
			if verr := validation.ValidateUUID("id", strings.TrimSpace(s)); verr != nil {
				return errors.New(verr.Message)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	id = strings.TrimSpace(id)

	rec, err := st.Get(ctx, kind, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("%s not found: %s", kind, id)
	}
	return rec, err
}

// promptRecord walks the user through every field of the record, with
// current values as defaults. Used for both add and update.
func promptRecord(rec record.Record) error {
	switch r := rec.(type) {
	case *record.Task:
		return promptTask(r)
	case *record.Goal:
		return promptGoal(r)
	case *record.Plan:
		return promptPlan(r)
	case *record.Obstacle:
		return promptObstacle(r)
	}
	return fmt.Errorf("unknown record kind %q", rec.Kind())
}

// cellCheck builds a prompt validator enforcing what a workbook cell can hold.
func cellCheck(field string) func(string) error {
	return func(s string) error {
		var v validation.Collector
		validateCell(&v, field, s)
		if v.HasErrors() {
			return errors.New(v.Errors()[0].Message)
		}
		return nil
	}
}

// dateCheck builds a prompt validator for optional date inputs.
func dateCheck(field string) func(string) error {
	return func(s string) error {
		if verr := validation.ValidateDate(field, s); verr != nil {
			return errors.New(verr.Message)
		}
		return nil
	}
}

func dateValue(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func promptTask(t *record.Task) error {
	title, err := tui.Input(tui.Prompt{
		Title: "Task title", Default: t.Title, Required: true, Validate: cellCheck("title"),
	})
	if err != nil {
		return err
	}
	t.Title = title

	description, err := tui.Text(tui.Prompt{
		Title: "Description", Default: t.Description, Validate: cellCheck("description"),
	})
	if err != nil {
		return err
	}
	t.Description = description

	priority, err := tui.SelectString("Priority", record.PriorityValues(), string(t.Priority))
	if err != nil {
		return err
	}
	t.Priority, _ = record.ParsePriority(priority)

	effort, err := tui.Input(tui.Prompt{
		Title: "Estimated effort", Default: t.Effort, Validate: cellCheck("effort"),
	})
	if err != nil {
		return err
	}
	t.Effort = effort

	status, err := tui.SelectString("Status", record.TaskStatusValues(), string(t.Status))
	if err != nil {
		return err
	}
	t.Status, _ = record.ParseTaskStatus(status)

	due, err := tui.Input(tui.Prompt{
		Title: "Due date", Placeholder: "2025-09-30", Default: dateValue(t.DueDate),
		Validate: dateCheck("due date"),
	})
	if err != nil {
		return err
	}
	t.DueDate = dateOrNil(due)

	tags, err := tui.Input(tui.Prompt{
		Title: "Tags/categories", Default: t.Tags, Validate: cellCheck("tags"),
	})
	if err != nil {
		return err
	}
	t.Tags = tags

	dependencies, err := tui.Input(tui.Prompt{
		Title: "Dependencies", Default: t.Dependencies, Validate: cellCheck("dependencies"),
	})
	if err != nil {
		return err
	}
	t.Dependencies = dependencies

	reasoning, err := tui.Text(tui.Prompt{
		Title: "Reasoning", Default: t.Reasoning, Validate: cellCheck("reasoning"),
	})
	if err != nil {
		return err
	}
	t.Reasoning = reasoning

	resolution, err := tui.Input(tui.Prompt{
		Title: "Resolution", Default: t.Resolution, Validate: cellCheck("resolution"),
	})
	if err != nil {
		return err
	}
	t.Resolution = resolution

	return nil
}

func promptGoal(g *record.Goal) error {
	title, err := tui.Input(tui.Prompt{
		Title: "Goal title", Default: g.Title, Required: true, Validate: cellCheck("title"),
	})
	if err != nil {
		return err
	}
	g.Title = title

	target, err := tui.Input(tui.Prompt{
		Title: "Target completion date", Placeholder: "2026-01-31", Default: dateValue(g.TargetDate),
		Validate: dateCheck("target date"),
	})
	if err != nil {
		return err
	}
	g.TargetDate = dateOrNil(target)

	priority, err := tui.SelectOptional("Priority", record.PriorityValues(), string(g.Priority))
	if err != nil {
		return err
	}
	if priority == "" {
		g.Priority = ""
	} else {
		g.Priority, _ = record.ParsePriority(priority)
	}

	kpis, err := tui.Input(tui.Prompt{
		Title: "KPIs", Default: g.KPIs, Validate: cellCheck("kpis"),
	})
	if err != nil {
		return err
	}
	g.KPIs = kpis

	resources, err := tui.Input(tui.Prompt{
		Title: "Resources required", Default: g.Resources, Validate: cellCheck("resources"),
	})
	if err != nil {
		return err
	}
	g.Resources = resources

	status, err := tui.SelectString("Current status", record.GoalStatusValues(), string(g.Status))
	if err != nil {
		return err
	}
	g.Status, _ = record.ParseGoalStatus(status)

	motivation, err := tui.Text(tui.Prompt{
		Title: "Motivation", Default: g.Motivation, Validate: cellCheck("motivation"),
	})
	if err != nil {
		return err
	}
	g.Motivation = motivation

	firstStep, err := tui.Input(tui.Prompt{
		Title: "First step", Default: g.FirstStep, Validate: cellCheck("first step"),
	})
	if err != nil {
		return err
	}
	g.FirstStep = firstStep

	challenges, err := tui.Text(tui.Prompt{
		Title: "Potential challenges", Default: g.Challenges, Validate: cellCheck("challenges"),
	})
	if err != nil {
		return err
	}
	g.Challenges = challenges

	contacts, err := tui.Input(tui.Prompt{
		Title: "Support contacts", Default: g.Contacts, Validate: cellCheck("contacts"),
	})
	if err != nil {
		return err
	}
	g.Contacts = contacts

	return nil
}

func promptPlan(p *record.Plan) error {
	title, err := tui.Input(tui.Prompt{
		Title: "Plan title", Default: p.Title, Required: true, Validate: cellCheck("title"),
	})
	if err != nil {
		return err
	}
	p.Title = title

	planType, err := tui.SelectString("Type of plan", record.PlanTypeValues(), string(p.Type))
	if err != nil {
		return err
	}
	p.Type, _ = record.ParsePlanType(planType)

	start, err := tui.Input(tui.Prompt{
		Title: "Start date", Placeholder: "2025-09-01", Default: dateValue(p.StartDate),
		Validate: dateCheck("start date"),
	})
	if err != nil {
		return err
	}
	p.StartDate = dateOrNil(start)

	end, err := tui.Input(tui.Prompt{
		Title: "End date", Placeholder: "2025-12-19", Default: dateValue(p.EndDate),
		Validate: dateCheck("end date"),
	})
	if err != nil {
		return err
	}
	p.EndDate = dateOrNil(end)

	dependencies, err := tui.Input(tui.Prompt{
		Title: "Dependencies", Default: p.Dependencies, Validate: cellCheck("dependencies"),
	})
	if err != nil {
		return err
	}
	p.Dependencies = dependencies

	progress, err := tui.Input(tui.Prompt{
		Title: "Progress", Default: p.Progress, Validate: cellCheck("progress"),
	})
	if err != nil {
		return err
	}
	p.Progress = progress

	status, err := tui.Input(tui.Prompt{
		Title: "Status", Default: p.Status, Validate: cellCheck("status"),
	})
	if err != nil {
		return err
	}
	p.Status = status

	relatedGoal, err := tui.Input(tui.Prompt{
		Title: "Related goal", Default: p.RelatedGoal, Validate: cellCheck("related goal"),
	})
	if err != nil {
		return err
	}
	p.RelatedGoal = relatedGoal

	milestones, err := tui.Text(tui.Prompt{
		Title: "Key milestones", Default: p.Milestones, Validate: cellCheck("milestones"),
	})
	if err != nil {
		return err
	}
	p.Milestones = milestones

	resources, err := tui.Input(tui.Prompt{
		Title: "Allocated resources", Default: p.Resources, Validate: cellCheck("resources"),
	})
	if err != nil {
		return err
	}
	p.Resources = resources

	return nil
}

func promptObstacle(o *record.Obstacle) error {
	title, err := tui.Input(tui.Prompt{
		Title: "Obstacle title", Default: o.Title, Required: true, Validate: cellCheck("title"),
	})
	if err != nil {
		return err
	}
	o.Title = title

	likelihood, err := tui.SelectString("Likelihood", record.LikelihoodValues(), string(o.Likelihood))
	if err != nil {
		return err
	}
	o.Likelihood, _ = record.ParseLikelihood(likelihood)

	impact, err := tui.SelectString("Impact", record.ImpactValues(), string(o.Impact))
	if err != nil {
		return err
	}
	o.Impact, _ = record.ParseImpact(impact)

	category, err := tui.SelectString("Category", record.ObstacleCategoryValues(), string(o.Category))
	if err != nil {
		return err
	}
	o.Category, _ = record.ParseObstacleCategory(category)

	mitigation, err := tui.Text(tui.Prompt{
		Title: "Mitigation strategies", Default: o.Mitigation, Validate: cellCheck("mitigation"),
	})
	if err != nil {
		return err
	}
	o.Mitigation = mitigation

	contingency, err := tui.Text(tui.Prompt{
		Title: "Contingency plans", Default: o.Contingency, Validate: cellCheck("contingency"),
	})
	if err != nil {
		return err
	}
	o.Contingency = contingency

	status, err := tui.Input(tui.Prompt{
		Title: "Status", Default: o.Status, Validate: cellCheck("status"),
	})
	if err != nil {
		return err
	}
	o.Status = status

	relatedItem, err := tui.Input(tui.Prompt{
		Title: "Related item", Default: o.RelatedItem, Validate: cellCheck("related item"),
	})
	if err != nil {
		return err
	}
	o.RelatedItem = relatedItem

	assignedTo, err := tui.Input(tui.Prompt{
		Title: "Assigned to", Default: o.AssignedTo, Validate: cellCheck("assigned to"),
	})
	if err != nil {
		return err
	}
	o.AssignedTo = assignedTo

	identifiedDefault := ""
	if !o.IdentifiedAt.IsZero() {
		identifiedDefault = o.IdentifiedAt.Format("2006-01-02")
	}
	identified, err := tui.Input(tui.Prompt{
		Title: "Date identified", Placeholder: "2025-08-25", Default: identifiedDefault,
		Validate: dateCheck("date identified"),
	})
	if err != nil {
		return err
	}
	if t, ok := record.ParseDate(identified); ok {
		o.IdentifiedAt = t
	} else if o.IdentifiedAt.IsZero() {
		o.IdentifiedAt = time.Now().UTC()
	}

	return nil
}
