package models

import "time"

// User est un compte enregistré, persisté dans la liste "users" du store.
// Le mot de passe est stocké hashé (Argon2id), jamais renvoyé par l'API.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Password  string    `json:"password,omitempty"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName reconstruit le nom affiché comme le fait le front
func (u User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
