package auth

import "errors"

// Erreurs métier de l'authentification : toutes récupérables côté client
var (
	ErrDuplicateEmail       = errors.New("un compte avec cet email existe déjà")
	ErrInvalidCredentials   = errors.New("email ou mot de passe incorrect")
	ErrAccountDeactivated   = errors.New("ce compte est désactivé")
	ErrWrongCurrentPassword = errors.New("mot de passe actuel incorrect")
	ErrPasswordMismatch     = errors.New("les mots de passe ne correspondent pas")
	ErrUserNotFound         = errors.New("utilisateur introuvable")
)
