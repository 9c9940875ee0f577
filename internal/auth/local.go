package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"shophub_back_end/internal/models"
	"shophub_back_end/internal/store"
	"shophub_back_end/internal/utils"

	"github.com/google/uuid"
)

const usersKey = "users"

// LocalCredentialStore garde les comptes dans la liste "users" du store.
// Les mots de passe sont hashés en Argon2id : jamais en clair.
type LocalCredentialStore struct {
	store store.Store
}

func NewLocalCredentialStore(s store.Store) *LocalCredentialStore {
	return &LocalCredentialStore{store: s}
}

func (l *LocalCredentialStore) users(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := store.GetJSON(ctx, l.store, usersKey, &users)
	if errors.Is(err, store.ErrNotFound) {
		return []models.User{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lecture utilisateurs: %w", err)
	}
	return users, nil
}

func (l *LocalCredentialStore) save(ctx context.Context, users []models.User) error {
	return store.SetJSON(ctx, l.store, usersKey, users)
}

// Register crée le compte si l'email est libre
func (l *LocalCredentialStore) Register(ctx context.Context, input RegisterInput) (models.User, error) {
	users, err := l.users(ctx)
	if err != nil {
		return models.User{}, err
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return models.User{}, ErrDuplicateEmail
		}
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash mot de passe: %w", err)
	}

	user := models.User{
		ID:        uuid.NewString(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     email,
		Phone:     input.Phone,
		Password:  hashed,
		IsActive:  true,
		CreatedAt: time.Now(),
	}

	users = append(users, user)
	if err := l.save(ctx, users); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login vérifie les identifiants puis l'état du compte : un compte
// désactivé avec le bon mot de passe renvoie ErrAccountDeactivated,
// pas ErrInvalidCredentials
func (l *LocalCredentialStore) Login(ctx context.Context, email, password string) (models.Session, error) {
	users, err := l.users(ctx)
	if err != nil {
		return models.Session{}, err
	}

	for _, u := range users {
		if !strings.EqualFold(u.Email, email) {
			continue
		}
		ok, err := utils.VerifyPassword(password, u.Password)
		if err != nil || !ok {
			return models.Session{}, ErrInvalidCredentials
		}
		if !u.IsActive {
			return models.Session{}, ErrAccountDeactivated
		}
		return models.Session{
			UserID:    u.ID,
			Name:      u.DisplayName(),
			Email:     u.Email,
			Phone:     u.Phone,
			LoginTime: time.Now(),
		}, nil
	}

	return models.Session{}, ErrInvalidCredentials
}

// ChangePassword exige l'ancien mot de passe
func (l *LocalCredentialStore) ChangePassword(ctx context.Context, userID, current, newPassword string) error {
	users, err := l.users(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		ok, err := utils.VerifyPassword(current, users[i].Password)
		if err != nil || !ok {
			return ErrWrongCurrentPassword
		}
		hashed, err := utils.HashPassword(newPassword)
		if err != nil {
			return fmt.Errorf("hash mot de passe: %w", err)
		}
		users[i].Password = hashed
		return l.save(ctx, users)
	}

	return ErrUserNotFound
}

// UpdateProfile fusionne les champs fournis et renvoie le compte à jour
func (l *LocalCredentialStore) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (models.User, error) {
	users, err := l.users(ctx)
	if err != nil {
		return models.User{}, err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		if update.FirstName != nil {
			users[i].FirstName = *update.FirstName
		}
		if update.LastName != nil {
			users[i].LastName = *update.LastName
		}
		if update.Email != nil {
			users[i].Email = strings.ToLower(strings.TrimSpace(*update.Email))
		}
		if update.Phone != nil {
			users[i].Phone = *update.Phone
		}
		if err := l.save(ctx, users); err != nil {
			return models.User{}, err
		}
		return users[i], nil
	}

	return models.User{}, ErrUserNotFound
}

// Deactivate passe le compte en inactif après confirmation du mot de passe.
// Désactivation douce : les commandes de l'utilisateur restent dans le registre.
func (l *LocalCredentialStore) Deactivate(ctx context.Context, userID, password string) error {
	users, err := l.users(ctx)
	if err != nil {
		return err
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		ok, err := utils.VerifyPassword(password, users[i].Password)
		if err != nil || !ok {
			return ErrWrongCurrentPassword
		}
		users[i].IsActive = false
		return l.save(ctx, users)
	}

	return ErrUserNotFound
}
