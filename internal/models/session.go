package models

import "time"

// Session représente l'utilisateur actuellement connecté.
// Absente (clé supprimée) quand personne n'est connecté.
type Session struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	LoginTime time.Time `json:"loginTime"`
}

// UserInfo est le brouillon de profil/livraison pré-rempli au checkout.
// Indépendant de la session : peut exister avant connexion.
type UserInfo struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
}
