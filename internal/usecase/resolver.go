package usecase

import (
	"context"

	"project-portal/internal/data/entity"
	"project-portal/internal/data/repository"

	"go.uber.org/zap"
)

// IdentityResolver finds the identity behind a contact across the role stores.
type IdentityResolver interface {
	Resolve(ctx context.Context, contact entity.Contact) (*entity.Identity, error)
	StoreFor(role entity.Role) (repository.IdentityRepository, bool)
}

type identityResolver struct {
	stores []repository.IdentityRepository
	log    *zap.Logger
}

// NewIdentityResolver probes stores in the order given and stops at the
// first hit. Stores that cannot look up phone numbers are skipped for
// phone contacts.
func NewIdentityResolver(log *zap.Logger, stores ...repository.IdentityRepository) IdentityResolver {
	return &identityResolver{
		stores: stores,
		log:    log.With(zap.String("component", "identity_resolver")),
	}
}

func (r *identityResolver) Resolve(ctx context.Context, contact entity.Contact) (*entity.Identity, error) {
	if contact.Value == "" {
		return nil, validationFailed("Username is required")
	}

	for _, store := range r.stores {
		if contact.IsPhone() && !store.SupportsPhone() {
			continue
		}

		identity, err := store.FindByContact(ctx, contact)
		if err != nil {
			return nil, internal("Failed to look up user", err)
		}
		if identity == nil {
			continue
		}

		if identity.Role != store.Role() {
			r.log.Warn("Role column disagrees with store",
				zap.String("store", store.Role().String()),
				zap.String("role", identity.Role.String()),
				zap.String("identity_id", identity.ID.String()),
			)
		}
		return identity, nil
	}

	return nil, notFound("User not found")
}

func (r *identityResolver) StoreFor(role entity.Role) (repository.IdentityRepository, bool) {
	for _, store := range r.stores {
		if store.Role() == role {
			return store, true
		}
	}
	return nil, false
}
