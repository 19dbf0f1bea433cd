package models

// Collaborator holds the structure for the collaborators resource in the CMS.
// Notifications and push tokens are scoped to a collaborator's numeric id,
// while clients identify themselves by the stable documentId.
type Collaborator struct {
	ID         int    `json:"id"`
	DocumentID string `json:"documentId"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
}
