package cms

// go generate: mockery --name CollaboratorAPI

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/net-studio/intranet-sub001/models"
)

// CollaboratorAPI contains the methods to use with the collaborators resource
type CollaboratorAPI interface {
	FindByDocumentID(ctx context.Context, documentID string) (*models.Collaborator, error)
}

type collaboratorAPI struct {
	client *Client
}

// NewCollaboratorAPI initializes a new instance of the collaborator API with the provided client
func NewCollaboratorAPI(client *Client) CollaboratorAPI {
	return &collaboratorAPI{
		client: client,
	}
}

// FindByDocumentID looks up the collaborator record for a documentId. Exactly
// one match is expected; zero or more than one is an error.
func (a *collaboratorAPI) FindByDocumentID(ctx context.Context, documentID string) (*models.Collaborator, error) {
	q := url.Values{}
	q.Set("filter", "documentId:"+documentID)

	var env collaboratorList
	if err := a.client.do(ctx, http.MethodGet, "/collaborators", q, nil, &env); err != nil {
		return nil, err
	}
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("no collaborator found for documentId %q", documentID)
	}
	if len(env.Data) > 1 {
		return nil, fmt.Errorf("ambiguous collaborator lookup for documentId %q: %d matches", documentID, len(env.Data))
	}
	return &env.Data[0], nil
}
