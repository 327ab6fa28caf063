package dto

import (
	"time"
	"tripdesk/internal/domains/task/model"
	"tripdesk/shared"
	gDto "tripdesk/shared/dto"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"dueDate" validate:"omitempty,datetime=2006-01-02"`
	BookingID   string `json:"bookingId" validate:"omitempty,uuid"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	priority := c.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	var dueDate *time.Time

	if c.DueDate != "" {
		if parsed, err := timezone.Parse("2006-01-02", c.DueDate); err == nil {
			dueDate = &parsed
		}
	}

	return model.Task{
		ID:          uuid.NewString(),
		Title:       c.Title,
		Description: c.Description,
		Priority:    priority,
		Completed:   false,
		DueDate:     dueDate,
		BookingID:   c.BookingID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTaskRequest struct {
	Title       string `db:"title" json:"title" validate:"omitempty,max=255"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Priority    string `db:"priority" json:"priority" validate:"omitempty,oneof=low medium high"`
	Completed   *bool  `db:"completed" json:"completed" validate:"omitempty"`
}

type TaskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    string     `json:"priority"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	BookingID   string     `json:"bookingId,omitempty"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(task model.Task) {
	r.ID = task.ID
	r.Title = task.Title
	r.Description = task.Description
	r.Priority = task.Priority
	r.Completed = task.Completed
	r.DueDate = task.DueDate
	r.BookingID = task.BookingID
	r.Metadata.FromModel(task.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}
