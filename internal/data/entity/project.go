package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProjectCompleted is the progress value of a finished project.
const ProjectCompleted = 100

type Project struct {
	BaseSimple
	UserID           uuid.UUID  `db:"user_id"`
	ProjectName      string     `db:"project_name"`
	ProjectImageLink *string    `db:"project_image_link"`
	ProjectStartDate *time.Time `db:"project_start_date"`
	ProjectEndDate   *time.Time `db:"project_end_date"`
	Status           string     `db:"status"`
	Identifier       string     `db:"identifier"`
	Progress         int        `db:"progress"`
}
