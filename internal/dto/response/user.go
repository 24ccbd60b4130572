package response

import (
	"time"

	"project-portal/internal/data/entity"
)

type UserResponse struct {
	IdentityResponse
	Identifier     string     `json:"identifier"`
	CreditsLeft    int        `json:"credits_left"`
	MyReferralCode string     `json:"my_referral_code"`
	Address        *string    `json:"address,omitempty"`
	ProfilePic     *string    `json:"profile_pic,omitempty"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

type UserDetailResponse struct {
	UserResponse
	Projects []ProjectResponse `json:"projects"`
}

type DeletedUserResponse struct {
	User            UserResponse `json:"user"`
	ProjectsDeleted int64        `json:"projects_deleted"`
}

type ProjectResponse struct {
	ID               string     `json:"id"`
	UserID           string     `json:"user_id"`
	ProjectName      string     `json:"project_name"`
	ProjectImageLink *string    `json:"project_image_link,omitempty"`
	ProjectStartDate *time.Time `json:"project_start_date,omitempty"`
	ProjectEndDate   *time.Time `json:"project_end_date,omitempty"`
	Status           string     `json:"status"`
	Identifier       string     `json:"identifier"`
	Progress         int        `json:"progress"`
	CreatedAt        time.Time  `json:"created_at"`
}

func UserToResponse(user *entity.User) UserResponse {
	resp := UserResponse{
		IdentityResponse: IdentityToResponse(&user.Identity),
		Identifier:       user.Identifier,
		CreditsLeft:      user.CreditsLeft,
		MyReferralCode:   user.MyReferralCode,
		Address:          user.Address,
		ProfilePic:       user.ProfilePic,
	}
	if !user.UpdatedAt.IsZero() {
		resp.UpdatedAt = &user.UpdatedAt
	}
	return resp
}

func UsersToResponse(users []*entity.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, UserToResponse(u))
	}
	return result
}

func ProjectToResponse(project *entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:               project.ID.String(),
		UserID:           project.UserID.String(),
		ProjectName:      project.ProjectName,
		ProjectImageLink: project.ProjectImageLink,
		ProjectStartDate: project.ProjectStartDate,
		ProjectEndDate:   project.ProjectEndDate,
		Status:           project.Status,
		Identifier:       project.Identifier,
		Progress:         project.Progress,
		CreatedAt:        project.CreatedAt,
	}
}

func ProjectsToResponse(projects []*entity.Project) []ProjectResponse {
	result := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, ProjectToResponse(p))
	}
	return result
}
