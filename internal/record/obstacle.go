package record

import "time"

// Obstacle is a known risk or blocker, scored by likelihood and impact.
type Obstacle struct {
	Identity
	Title        string           `json:"obstacleTitle"`
	Likelihood   Likelihood       `json:"likelihood"`
	Impact       Impact           `json:"impact"`
	Mitigation   string           `json:"mitigationStrategies,omitempty"`
	Contingency  string           `json:"contingencyPlans,omitempty"`
	Category     ObstacleCategory `json:"category"`
	Status       string           `json:"status,omitempty"`
	RelatedItem  string           `json:"relatedItem,omitempty"`
	AssignedTo   string           `json:"assignedTo,omitempty"`
	IdentifiedAt time.Time        `json:"dateIdentified"`
}

var obstacleHeaders = []string{
	"ID",
	"Obstacle Title",
	"Likelihood",
	"Impact",
	"Mitigation Strategies",
	"Contingency Plans",
	"Category",
	"Status",
	"Related Item",
	"Assigned To",
	"Date Identified",
	"CreatedAt",
	"UpdatedAt",
}

const (
	colObstacleID = iota
	colObstacleTitle
	colObstacleLikelihood
	colObstacleImpact
	colObstacleMitigation
	colObstacleContingency
	colObstacleCategory
	colObstacleStatus
	colObstacleRelatedItem
	colObstacleAssignedTo
	colObstacleIdentifiedAt
	colObstacleCreatedAt
	colObstacleUpdatedAt
)

func (o *Obstacle) Kind() Kind { return KindObstacle }

func (o *Obstacle) fields() []any {
	return []any{
		o.Title,
		optCell(string(o.Likelihood)),
		optCell(string(o.Impact)),
		optCell(o.Mitigation),
		optCell(o.Contingency),
		optCell(string(o.Category)),
		optCell(o.Status),
		optCell(o.RelatedItem),
		optCell(o.AssignedTo),
		stampCell(o.IdentifiedAt),
	}
}

func decodeObstacle(row []string) (Record, error) {
	row = padRow(row, len(obstacleHeaders))

	o := &Obstacle{
		Mitigation:  cell(row, colObstacleMitigation),
		Contingency: cell(row, colObstacleContingency),
		Status:      cell(row, colObstacleStatus),
		RelatedItem: cell(row, colObstacleRelatedItem),
		AssignedTo:  cell(row, colObstacleAssignedTo),
	}
	o.ID = cell(row, colObstacleID)
	if o.ID == "" {
		return nil, missingField("ID")
	}
	o.Title = cell(row, colObstacleTitle)
	if o.Title == "" {
		return nil, missingField("Obstacle Title")
	}

	rawLikelihood := cell(row, colObstacleLikelihood)
	if rawLikelihood == "" {
		return nil, missingField("Likelihood")
	}
	likelihood, err := ParseLikelihood(rawLikelihood)
	if err != nil {
		return nil, invalidField("Likelihood", rawLikelihood)
	}
	o.Likelihood = likelihood

	rawImpact := cell(row, colObstacleImpact)
	if rawImpact == "" {
		return nil, missingField("Impact")
	}
	impact, err := ParseImpact(rawImpact)
	if err != nil {
		return nil, invalidField("Impact", rawImpact)
	}
	o.Impact = impact

	rawCategory := cell(row, colObstacleCategory)
	if rawCategory == "" {
		return nil, missingField("Category")
	}
	category, err := ParseObstacleCategory(rawCategory)
	if err != nil {
		return nil, invalidField("Category", rawCategory)
	}
	o.Category = category

	o.IdentifiedAt = timeOrNow(row, colObstacleIdentifiedAt)
	o.CreatedAt = timeOrNow(row, colObstacleCreatedAt)
	o.UpdatedAt = timeOrNow(row, colObstacleUpdatedAt)
	return o, nil
}
