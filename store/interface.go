package store

import (
	"context"

	models "luxe-living/model"
)

// Store is the contact-intake collaborator: it records leads submitted
// through the storefront forms.
type Store interface {
	SaveContact(ctx context.Context, id string, req models.ContactRequest) (LeadRow, error)
	SaveCustomRequest(ctx context.Context, id string, req models.CustomRequest) (LeadRow, error)

	// Subscribe is idempotent per email: a repeat signup returns the
	// original row.
	Subscribe(ctx context.Context, id string, sub models.Subscription) (LeadRow, error)

	Close() error
}
