package dto

// ActivityResponse carries recent activity-log lines as opaque text.
type ActivityResponse struct {
	Entries []string `json:"entries"`
}

// RegistrationHistoryResponse carries registration-event lines as opaque text.
type RegistrationHistoryResponse struct {
	Events []string `json:"events"`
}
