package project

import "time"

// Status is a workflow status drawn from a category's enumerated set.
// There are no transition rules; status changes are user-directed writes.
type Status string

// Record is a client project in one of the tracked categories. The
// extension payload E carries the category-specific fields and is passed
// through to the store unvalidated.
type Record[E any] struct {
	// ID is assigned by the store on creation and immutable thereafter.
	ID             string `json:"id,omitempty"`
	OrganisationID string `json:"organisationId,omitempty"`
	Name           string `json:"name"`
	Status         Status `json:"status,omitempty"`

	// StartDate and DueDate are ISO-8601 date strings. No ordering between
	// them is enforced.
	StartDate string `json:"startDate,omitempty"`
	DueDate   string `json:"dueDate,omitempty"`

	AssignedTo string `json:"assignedTo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Tasks holds weak references to task ids; task lifecycle is owned
	// elsewhere.
	Tasks []string `json:"tasks,omitempty"`

	Extension E `json:"extension,omitzero"`
}
