package record

import "time"

// Task is an actionable backlog item.
type Task struct {
	Identity
	Title        string     `json:"taskTitle"`
	Description  string     `json:"description,omitempty"`
	Priority     Priority   `json:"priority"`
	Effort       string     `json:"estimatedEffort,omitempty"`
	Status       TaskStatus `json:"status"`
	DueDate      *time.Time `json:"dueDate,omitempty"`
	Tags         string     `json:"tags,omitempty"`
	Dependencies string     `json:"dependencies,omitempty"`
	Reasoning    string     `json:"reasoning,omitempty"`
	Resolution   string     `json:"resolution,omitempty"`
}

var taskHeaders = []string{
	"ID",
	"Task Title",
	"Description",
	"Priority",
	"Estimated Effort",
	"Status",
	"Due Date",
	"Tags/Categories",
	"Dependencies",
	"Reasoning",
	"Resolution",
	"CreatedAt",
	"UpdatedAt",
}

const (
	colTaskID = iota
	colTaskTitle
	colTaskDescription
	colTaskPriority
	colTaskEffort
	colTaskStatus
	colTaskDueDate
	colTaskTags
	colTaskDependencies
	colTaskReasoning
	colTaskResolution
	colTaskCreatedAt
	colTaskUpdatedAt
)

func (t *Task) Kind() Kind { return KindTask }

func (t *Task) fields() []any {
	return []any{
		t.Title,
		optCell(t.Description),
		optCell(string(t.Priority)),
		optCell(t.Effort),
		optCell(string(t.Status)),
		timeCell(t.DueDate),
		optCell(t.Tags),
		optCell(t.Dependencies),
		optCell(t.Reasoning),
		optCell(t.Resolution),
	}
}

func decodeTask(row []string) (Record, error) {
	row = padRow(row, len(taskHeaders))

	t := &Task{
		Description:  cell(row, colTaskDescription),
		Effort:       cell(row, colTaskEffort),
		DueDate:      optTime(row, colTaskDueDate),
		Tags:         cell(row, colTaskTags),
		Dependencies: cell(row, colTaskDependencies),
		Reasoning:    cell(row, colTaskReasoning),
		Resolution:   cell(row, colTaskResolution),
	}
	t.ID = cell(row, colTaskID)
	if t.ID == "" {
		return nil, missingField("ID")
	}
	t.Title = cell(row, colTaskTitle)
	if t.Title == "" {
		return nil, missingField("Task Title")
	}

	rawPriority := cell(row, colTaskPriority)
	if rawPriority == "" {
		return nil, missingField("Priority")
	}
	priority, err := ParsePriority(rawPriority)
	if err != nil {
		return nil, invalidField("Priority", rawPriority)
	}
	t.Priority = priority

	rawStatus := cell(row, colTaskStatus)
	if rawStatus == "" {
		return nil, missingField("Status")
	}
	status, err := ParseTaskStatus(rawStatus)
	if err != nil {
		return nil, invalidField("Status", rawStatus)
	}
	t.Status = status

	t.CreatedAt = timeOrNow(row, colTaskCreatedAt)
	t.UpdatedAt = timeOrNow(row, colTaskUpdatedAt)
	return t, nil
}
