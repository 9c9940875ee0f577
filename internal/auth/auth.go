package auth

import (
	"context"

	"shophub_back_end/internal/models"
)

// RegisterInput : données d'inscription (le mot de passe arrive en clair,
// il est hashé avant persistance)
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// ProfileUpdate : champs modifiables du profil ; nil = inchangé
type ProfileUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

// CredentialStore est le point de substitution de l'authentification.
// L'implémentation locale (LocalCredentialStore) vit au-dessus du store
// clé/valeur ; un vrai fournisseur d'identité se branche ici sans toucher
// au reste du backend.
type CredentialStore interface {
	Register(ctx context.Context, input RegisterInput) (models.User, error)
	Login(ctx context.Context, email, password string) (models.Session, error)
	ChangePassword(ctx context.Context, userID, current, newPassword string) error
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.User, error)
	Deactivate(ctx context.Context, userID, password string) error
}
