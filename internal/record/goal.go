package record

import "time"

// Goal is an outcome being worked toward. Priority is optional here, unlike
// on tasks: an unreadable priority cell simply leaves the field unset.
type Goal struct {
	Identity
	Title      string     `json:"goalTitle"`
	TargetDate *time.Time `json:"targetCompletionDate,omitempty"`
	Priority   Priority   `json:"priority,omitempty"`
	KPIs       string     `json:"kpis,omitempty"`
	Resources  string     `json:"resourcesRequired,omitempty"`
	Status     GoalStatus `json:"currentStatus"`
	Motivation string     `json:"motivation,omitempty"`
	FirstStep  string     `json:"firstStep,omitempty"`
	Challenges string     `json:"potentialChallenges,omitempty"`
	Contacts   string     `json:"supportContacts,omitempty"`
}

var goalHeaders = []string{
	"ID",
	"Goal Title",
	"Target Completion Date",
	"Priority",
	"KPIs",
	"Resources Required",
	"Current Status",
	"Motivation",
	"First Step",
	"Potential Challenges",
	"Support Contacts",
	"CreatedAt",
	"UpdatedAt",
}

const (
	colGoalID = iota
	colGoalTitle
	colGoalTargetDate
	colGoalPriority
	colGoalKPIs
	colGoalResources
	colGoalStatus
	colGoalMotivation
	colGoalFirstStep
	colGoalChallenges
	colGoalContacts
	colGoalCreatedAt
	colGoalUpdatedAt
)

func (g *Goal) Kind() Kind { return KindGoal }

func (g *Goal) fields() []any {
	return []any{
		g.Title,
		timeCell(g.TargetDate),
		optCell(string(g.Priority)),
		optCell(g.KPIs),
		optCell(g.Resources),
		optCell(string(g.Status)),
		optCell(g.Motivation),
		optCell(g.FirstStep),
		optCell(g.Challenges),
		optCell(g.Contacts),
	}
}

func decodeGoal(row []string) (Record, error) {
	row = padRow(row, len(goalHeaders))

	g := &Goal{
		TargetDate: optTime(row, colGoalTargetDate),
		KPIs:       cell(row, colGoalKPIs),
		Resources:  cell(row, colGoalResources),
		Motivation: cell(row, colGoalMotivation),
		FirstStep:  cell(row, colGoalFirstStep),
		Challenges: cell(row, colGoalChallenges),
		Contacts:   cell(row, colGoalContacts),
	}
	g.ID = cell(row, colGoalID)
	if g.ID == "" {
		return nil, missingField("ID")
	}
	g.Title = cell(row, colGoalTitle)
	if g.Title == "" {
		return nil, missingField("Goal Title")
	}

	if raw := cell(row, colGoalPriority); raw != "" {
		if priority, err := ParsePriority(raw); err == nil {
			g.Priority = priority
		}
	}

	rawStatus := cell(row, colGoalStatus)
	if rawStatus == "" {
		return nil, missingField("Current Status")
	}
	status, err := ParseGoalStatus(rawStatus)
	if err != nil {
		return nil, invalidField("Current Status", rawStatus)
	}
	g.Status = status

	g.CreatedAt = timeOrNow(row, colGoalCreatedAt)
	g.UpdatedAt = timeOrNow(row, colGoalUpdatedAt)
	return g, nil
}
