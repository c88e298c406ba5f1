package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/hyperengineering/stride/internal/record"
	"github.com/hyperengineering/stride/internal/store"
)

// resolveStore opens the workbook store for the configured path. The store
// is lazy: no file I/O happens until the first operation.
func resolveStore() *store.WorkbookStore {
	return store.NewWorkbookStore(cfg.Workbook.Path)
}

// printJSON marshals v to JSON and writes to the given writer.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTabWriter returns a configured tabwriter for aligned columns.
func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

const stampFormat = "2006-01-02 15:04:05 MST"

// renderList writes a table of the columns worth scanning for each kind.
// The full record is always available via show or --json.
func renderList(w io.Writer, kind record.Kind, records []record.Record) {
	tw := newTabWriter(w)
	defer tw.Flush()

	switch kind {
	case record.KindTask:
		fmt.Fprintln(tw, "ID\tTITLE\tPRIORITY\tSTATUS\tDUE")
		for _, r := range records {
			t := r.(*record.Task)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				t.ID, t.Title, t.Priority, t.Status, dateOrDash(t.DueDate))
		}
	case record.KindGoal:
		fmt.Fprintln(tw, "ID\tTITLE\tPRIORITY\tSTATUS\tTARGET")
		for _, r := range records {
			g := r.(*record.Goal)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				g.ID, g.Title, dash(string(g.Priority)), g.Status, dateOrDash(g.TargetDate))
		}
	case record.KindPlan:
		fmt.Fprintln(tw, "ID\tTITLE\tTYPE\tSTATUS\tSTART\tEND")
		for _, r := range records {
			p := r.(*record.Plan)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.Title, p.Type, dash(p.Status), dateOrDash(p.StartDate), dateOrDash(p.EndDate))
		}
	case record.KindObstacle:
		fmt.Fprintln(tw, "ID\tTITLE\tLIKELIHOOD\tIMPACT\tCATEGORY\tSTATUS")
		for _, r := range records {
			o := r.(*record.Obstacle)
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				o.ID, o.Title, o.Likelihood, o.Impact, o.Category, dash(o.Status))
		}
	}
}

// renderRecord writes the full field dump for a single record. Optional
// fields are printed only when set.
func renderRecord(w io.Writer, rec record.Record) {
	switch r := rec.(type) {
	case *record.Task:
		fmt.Fprintf(w, "Task:          %s\n", r.Title)
		fmt.Fprintf(w, "ID:            %s\n", r.ID)
		fmt.Fprintf(w, "Priority:      %s\n", r.Priority)
		fmt.Fprintf(w, "Status:        %s\n", r.Status)
		if r.Description != "" {
			fmt.Fprintf(w, "Description:   %s\n", r.Description)
		}
		if r.Effort != "" {
			fmt.Fprintf(w, "Effort:        %s\n", r.Effort)
		}
		if r.DueDate != nil {
			fmt.Fprintf(w, "Due:           %s\n", r.DueDate.Format("2006-01-02"))
		}
		if r.Tags != "" {
			fmt.Fprintf(w, "Tags:          %s\n", r.Tags)
		}
		if r.Dependencies != "" {
			fmt.Fprintf(w, "Dependencies:  %s\n", r.Dependencies)
		}
		if r.Reasoning != "" {
			fmt.Fprintf(w, "Reasoning:     %s\n", r.Reasoning)
		}
		if r.Resolution != "" {
			fmt.Fprintf(w, "Resolution:    %s\n", r.Resolution)
		}
		fmt.Fprintf(w, "Created:       %s\n", r.CreatedAt.Format(stampFormat))
		fmt.Fprintf(w, "Updated:       %s\n", r.UpdatedAt.Format(stampFormat))

	case *record.Goal:
		fmt.Fprintf(w, "Goal:          %s\n", r.Title)
		fmt.Fprintf(w, "ID:            %s\n", r.ID)
		fmt.Fprintf(w, "Status:        %s\n", r.Status)
		if r.Priority != "" {
			fmt.Fprintf(w, "Priority:      %s\n", r.Priority)
		}
		if r.TargetDate != nil {
			fmt.Fprintf(w, "Target:        %s\n", r.TargetDate.Format("2006-01-02"))
		}
		if r.KPIs != "" {
			fmt.Fprintf(w, "KPIs:          %s\n", r.KPIs)
		}
		if r.Resources != "" {
			fmt.Fprintf(w, "Resources:     %s\n", r.Resources)
		}
		if r.Motivation != "" {
			fmt.Fprintf(w, "Motivation:    %s\n", r.Motivation)
		}
		if r.FirstStep != "" {
			fmt.Fprintf(w, "First Step:    %s\n", r.FirstStep)
		}
		if r.Challenges != "" {
			fmt.Fprintf(w, "Challenges:    %s\n", r.Challenges)
		}
		if r.Contacts != "" {
			fmt.Fprintf(w, "Contacts:      %s\n", r.Contacts)
		}
		fmt.Fprintf(w, "Created:       %s\n", r.CreatedAt.Format(stampFormat))
		fmt.Fprintf(w, "Updated:       %s\n", r.UpdatedAt.Format(stampFormat))

	case *record.Plan:
		fmt.Fprintf(w, "Plan:          %s\n", r.Title)
		fmt.Fprintf(w, "ID:            %s\n", r.ID)
		fmt.Fprintf(w, "Type:          %s\n", r.Type)
		if r.Status != "" {
			fmt.Fprintf(w, "Status:        %s\n", r.Status)
		}
		if r.StartDate != nil {
			fmt.Fprintf(w, "Start:         %s\n", r.StartDate.Format("2006-01-02"))
		}
		if r.EndDate != nil {
			fmt.Fprintf(w, "End:           %s\n", r.EndDate.Format("2006-01-02"))
		}
		if r.Progress != "" {
			fmt.Fprintf(w, "Progress:      %s\n", r.Progress)
		}
		if r.RelatedGoal != "" {
			fmt.Fprintf(w, "Related Goal:  %s\n", r.RelatedGoal)
		}
		if r.Milestones != "" {
			fmt.Fprintf(w, "Milestones:    %s\n", r.Milestones)
		}
		if r.Dependencies != "" {
			fmt.Fprintf(w, "Dependencies:  %s\n", r.Dependencies)
		}
		if r.Resources != "" {
			fmt.Fprintf(w, "Resources:     %s\n", r.Resources)
		}
		fmt.Fprintf(w, "Created:       %s\n", r.CreatedAt.Format(stampFormat))
		fmt.Fprintf(w, "Updated:       %s\n", r.UpdatedAt.Format(stampFormat))

	case *record.Obstacle:
		fmt.Fprintf(w, "Obstacle:      %s\n", r.Title)
		fmt.Fprintf(w, "ID:            %s\n", r.ID)
		fmt.Fprintf(w, "Likelihood:    %s\n", r.Likelihood)
		fmt.Fprintf(w, "Impact:        %s\n", r.Impact)
		fmt.Fprintf(w, "Category:      %s\n", r.Category)
		if r.Status != "" {
			fmt.Fprintf(w, "Status:        %s\n", r.Status)
		}
		if r.Mitigation != "" {
			fmt.Fprintf(w, "Mitigation:    %s\n", r.Mitigation)
		}
		if r.Contingency != "" {
			fmt.Fprintf(w, "Contingency:   %s\n", r.Contingency)
		}
		if r.RelatedItem != "" {
			fmt.Fprintf(w, "Related Item:  %s\n", r.RelatedItem)
		}
		if r.AssignedTo != "" {
			fmt.Fprintf(w, "Assigned To:   %s\n", r.AssignedTo)
		}
		fmt.Fprintf(w, "Identified:    %s\n", r.IdentifiedAt.Format("2006-01-02"))
		fmt.Fprintf(w, "Created:       %s\n", r.CreatedAt.Format(stampFormat))
		fmt.Fprintf(w, "Updated:       %s\n", r.UpdatedAt.Format(stampFormat))
	}
}
