package record

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four record kinds.
type Kind string

const (
	KindTask     Kind = "task"
	KindGoal     Kind = "goal"
	KindPlan     Kind = "plan"
	KindObstacle Kind = "obstacle"
)

// ParseKind resolves a user-supplied kind name, accepting any case and the
// plural form.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "task", "tasks":
		return KindTask, nil
	case "goal", "goals":
		return KindGoal, nil
	case "plan", "plans":
		return KindPlan, nil
	case "obstacle", "obstacles":
		return KindObstacle, nil
	}
	return "", fmt.Errorf("unknown record type %q: must be one of task, goal, plan, obstacle", s)
}

// Definition binds a record kind to its sheet name, column headers, and row
// decoder. The header slice fixes both the sheet's first row and the cell
// order produced by EncodeRow.
type Definition struct {
	Kind    Kind
	Sheet   string
	Headers []string
	Decode  func(row []string) (Record, error)
}

var definitions = []Definition{
	{Kind: KindTask, Sheet: "Tasks", Headers: taskHeaders, Decode: decodeTask},
	{Kind: KindGoal, Sheet: "Goals", Headers: goalHeaders, Decode: decodeGoal},
	{Kind: KindPlan, Sheet: "Plans", Headers: planHeaders, Decode: decodePlan},
	{Kind: KindObstacle, Sheet: "Obstacles", Headers: obstacleHeaders, Decode: decodeObstacle},
}

// Definitions returns every kind's definition in fixed workbook order.
func Definitions() []Definition {
	return definitions
}

// DefinitionFor returns the definition for kind, reporting false when the
// kind is unknown.
func DefinitionFor(kind Kind) (Definition, bool) {
	for _, def := range definitions {
		if def.Kind == kind {
			return def, true
		}
	}
	return Definition{}, false
}
