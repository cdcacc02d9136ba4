package domain

import (
	"errors"
	"slices"
)

// View is a page of the client. Which views a session may visit depends on its role.
type View string

const (
	ViewHome         View = "Home"
	ViewJobs         View = "Jobs"
	ViewPostJobs     View = "Post Jobs"
	ViewApplications View = "Applications"
	ViewAIScreening  View = "AI Screening"
)

var ErrViewNotAllowed = errors.New("view not available for this role")

var navigation = map[Role][]View{
	RoleCandidate: {ViewHome, ViewJobs},
	RoleRecruiter: {ViewHome, ViewPostJobs, ViewApplications, ViewAIScreening},
}

// NavigationFor lists the views of a role in menu order. Unknown roles get none.
func NavigationFor(role Role) []View {
	return slices.Clone(navigation[role])
}

func CanAccess(role Role, view View) bool {
	return slices.Contains(navigation[role], view)
}

// Session is the client-owned view state. The core never reads it; it only
// defines the legal transitions.
type Session struct {
	UserID        int64  `json:"user_id"`
	Username      string `json:"username"`
	Role          Role   `json:"role"`
	ActiveView    View   `json:"active_view"`
	SelectedJobID *int64 `json:"selected_job_id,omitempty"`
}

// NewSession starts a logged-in session on the home view.
func NewSession(user *User) *Session {
	return &Session{
		UserID:     user.ID,
		Username:   user.Username,
		Role:       user.Role,
		ActiveView: ViewHome,
	}
}

// Navigate moves to view. Leaving Jobs drops the selected posting.
func (s *Session) Navigate(view View) error {
	if !CanAccess(s.Role, view) {
		return ErrViewNotAllowed
	}
	if view != ViewJobs {
		s.SelectedJobID = nil
	}
	s.ActiveView = view
	return nil
}

// SelectJob opens a posting's detail inside the Jobs view.
func (s *Session) SelectJob(jobID int64) error {
	if s.ActiveView != ViewJobs {
		return ErrViewNotAllowed
	}
	s.SelectedJobID = &jobID
	return nil
}

// ClearJob returns from a posting's detail to the Jobs dashboard.
func (s *Session) ClearJob() {
	s.SelectedJobID = nil
}
