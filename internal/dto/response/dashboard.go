package response

type DashboardResponse struct {
	OngoingProjectCount   int64             `json:"ongoing_project_count"`
	CompletedProjectCount int64             `json:"completed_project_count"`
	WorkingProjects       []ProjectResponse `json:"working_projects"`
	// RecentProjects is only filled for the admin dashboard
	RecentProjects []ProjectResponse `json:"recent_projects,omitempty"`
}
