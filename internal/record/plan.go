package record

import "time"

// Plan is a scheduled course of action, usually tied to a goal.
type Plan struct {
	Identity
	Title        string     `json:"planTitle"`
	Type         PlanType   `json:"planType"`
	StartDate    *time.Time `json:"startDate,omitempty"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Dependencies string     `json:"dependencies,omitempty"`
	Progress     string     `json:"progress,omitempty"`
	Status       string     `json:"status,omitempty"`
	RelatedGoal  string     `json:"relatedGoal,omitempty"`
	Milestones   string     `json:"keyMilestones,omitempty"`
	Resources    string     `json:"allocatedResources,omitempty"`
}

var planHeaders = []string{
	"ID",
	"Plan Title",
	"Type of Plan",
	"Start Date",
	"End Date",
	"Dependencies",
	"Progress",
	"Status",
	"Related Goal",
	"Key Milestones",
	"Allocated Resources",
	"CreatedAt",
	"UpdatedAt",
}

const (
	colPlanID = iota
	colPlanTitle
	colPlanType
	colPlanStartDate
	colPlanEndDate
	colPlanDependencies
	colPlanProgress
	colPlanStatus
	colPlanRelatedGoal
	colPlanMilestones
	colPlanResources
	colPlanCreatedAt
	colPlanUpdatedAt
)

func (p *Plan) Kind() Kind { return KindPlan }

func (p *Plan) fields() []any {
	return []any{
		p.Title,
		optCell(string(p.Type)),
		timeCell(p.StartDate),
		timeCell(p.EndDate),
		optCell(p.Dependencies),
		optCell(p.Progress),
		optCell(p.Status),
		optCell(p.RelatedGoal),
		optCell(p.Milestones),
		optCell(p.Resources),
	}
}

func decodePlan(row []string) (Record, error) {
	row = padRow(row, len(planHeaders))

	p := &Plan{
		StartDate:    optTime(row, colPlanStartDate),
		EndDate:      optTime(row, colPlanEndDate),
		Dependencies: cell(row, colPlanDependencies),
		Progress:     cell(row, colPlanProgress),
		Status:       cell(row, colPlanStatus),
		RelatedGoal:  cell(row, colPlanRelatedGoal),
		Milestones:   cell(row, colPlanMilestones),
		Resources:    cell(row, colPlanResources),
	}
	p.ID = cell(row, colPlanID)
	if p.ID == "" {
		return nil, missingField("ID")
	}
	p.Title = cell(row, colPlanTitle)
	if p.Title == "" {
		return nil, missingField("Plan Title")
	}

	rawType := cell(row, colPlanType)
	if rawType == "" {
		return nil, missingField("Type of Plan")
	}
	planType, err := ParsePlanType(rawType)
	if err != nil {
		return nil, invalidField("Type of Plan", rawType)
	}
	p.Type = planType

	p.CreatedAt = timeOrNow(row, colPlanCreatedAt)
	p.UpdatedAt = timeOrNow(row, colPlanUpdatedAt)
	return p, nil
}
