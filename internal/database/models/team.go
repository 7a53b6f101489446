package models

// TeamMember is a member of the advisory team who can own tasks
type TeamMember struct {
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}
