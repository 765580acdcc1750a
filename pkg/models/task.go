package model

import (
	"time"

	"todolist-api.com/todolist-api/pkg/constants"
)

type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	UserID      string               `gorm:"size:36;not null;index" json:"userId"`
	Title       string               `gorm:"size:200;not null" json:"title"`
	Description string               `gorm:"size:1000" json:"description"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   *time.Time           `json:"updatedAt,omitempty"`
	CompletedAt *time.Time           `json:"completedAt,omitempty"`
}

// MarkCompleted and MarkPending are the only writers of CompletedAt, which
// keeps it in lockstep with Status.
func (t *Task) MarkCompleted() {
	now := time.Now().UTC()
	t.Status = constants.StatusCompleted
	t.CompletedAt = &now
	t.UpdatedAt = &now
}

func (t *Task) MarkPending() {
	now := time.Now().UTC()
	t.Status = constants.StatusPending
	t.CompletedAt = nil
	t.UpdatedAt = &now
}
