package logout

import "context"

type AuthService interface {
	Logout(ctx context.Context)
}
