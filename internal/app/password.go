package app

import "github.com/playforge/starquest/internal/infrastructure/password"

func (a *application) InitPasswordHasher() password.Hasher {
	return password.NewHasher()
}
