package domain

import "time"

// OperatorStatus represents the publishing lifecycle state of an operator page
type OperatorStatus string

const (
	StatusDraft     OperatorStatus = "draft"
	StatusScheduled OperatorStatus = "scheduled"
	StatusPublished OperatorStatus = "published"
	StatusArchived  OperatorStatus = "archived"
)

// validStatusTransitions maps each status to the states it may move into.
// Archived pages can be restored to draft for re-editing.
var validStatusTransitions = map[OperatorStatus][]OperatorStatus{
	StatusDraft:     {StatusScheduled, StatusPublished, StatusArchived},
	StatusScheduled: {StatusDraft, StatusPublished, StatusArchived},
	StatusPublished: {StatusArchived},
	StatusArchived:  {StatusDraft},
}

// CanTransitionTo reports whether a status change is allowed
func (s OperatorStatus) CanTransitionTo(target OperatorStatus) bool {
	for _, allowed := range validStatusTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsValidOperatorStatus checks if a status string is a known lifecycle state
func IsValidOperatorStatus(status string) bool {
	switch OperatorStatus(status) {
	case StatusDraft, StatusScheduled, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Operator is a reviewed mystery-box site with a public-facing page
type Operator struct {
	ID             string         `json:"operator_id" db:"operator_id"`
	Name           string         `json:"name" db:"operator_name"`
	Slug           string         `json:"slug" db:"slug"`
	SiteURL        string         `json:"site_url,omitempty" db:"site_url"`
	Status         OperatorStatus `json:"status" db:"status"`
	Rating         float64        `json:"rating" db:"rating"` // 0-10 editorial score
	VerdictSummary string         `json:"verdict_summary,omitempty" db:"verdict_summary"`
	PublishAt      *time.Time     `json:"publish_at,omitempty" db:"publish_at"`
	CreatedAt      time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" db:"updated_at"`
}

// IsPublished reports whether the operator page is publicly visible
func (o *Operator) IsPublished() bool {
	return o.Status == StatusPublished
}
