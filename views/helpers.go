package views

import (
	"context"

	"github.com/mvidaller/padel-league/internal/middleware"
	users "github.com/mvidaller/padel-league/internal/user"
)

func GetUser(ctx context.Context) *users.User {
	return middleware.GetAuthenticatedUser(ctx)
}
