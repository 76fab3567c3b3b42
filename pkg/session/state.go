package session

import "github.com/skillmentor/backend/pkg/profile"

type Page string

const (
	PageUpload    Page = "upload"
	PageDashboard Page = "dashboard"
)

// State is the per-user UI state. Values are immutable: every transition
// below returns a new State and never mutates its input, so a snapshot read
// from the store stays valid.
type State struct {
	Authenticated bool                    `json:"authenticated"`
	UserID        string                  `json:"userId,omitempty"`
	Email         string                  `json:"email,omitempty"`
	Page          Page                    `json:"page"`
	ResumeText    string                  `json:"resumeText,omitempty"`
	Interests     []string                `json:"interests,omitempty"`
	CareerGoal    string                  `json:"careerGoal,omitempty"`
	Analysis      *profile.AnalysisRecord `json:"analysis,omitempty"`
	ShowProjects  bool                    `json:"showProjects"`
}

// New returns the initial state.
func New() State {
	return State{Page: PageUpload}
}

// LoggedIn records the identity established by login.
func LoggedIn(s State, userID, email string) State {
	s.Authenticated = true
	s.UserID = userID
	s.Email = email
	return s
}

// ResumeUploaded records extracted resume text and the selected interests.
func ResumeUploaded(s State, resumeText string, interests []string) State {
	s.ResumeText = resumeText
	s.Interests = append([]string(nil), interests...)
	return s
}

// GoalChosen records the selected or suggested career goal.
func GoalChosen(s State, careerGoal string) State {
	s.CareerGoal = careerGoal
	return s
}

// Analyzed stores the analysis outcome and moves the user to the dashboard.
func Analyzed(s State, rec profile.AnalysisRecord) State {
	s.Analysis = &rec
	s.Page = PageDashboard
	return s
}

// ProjectsToggled records whether project suggestions are shown.
func ProjectsToggled(s State, want bool) State {
	s.ShowProjects = want
	return s
}

// Reset is the "start fresh" action: identity survives, everything the
// upload flow produced is cleared.
func Reset(s State) State {
	return State{
		Authenticated: s.Authenticated,
		UserID:        s.UserID,
		Email:         s.Email,
		Page:          PageUpload,
	}
}

// LoggedOut clears the whole state.
func LoggedOut(State) State {
	return New()
}
