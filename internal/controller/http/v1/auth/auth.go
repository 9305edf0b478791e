package auth

import (
	"net/http"

	"bizops/backend/foundation/web"
	"bizops/backend/internal/auth"
	"bizops/backend/internal/repository/postgres/user"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Controller struct {
	user User
	auth *auth.Auth
}

func NewController(user User, auth *auth.Auth) *Controller {
	return &Controller{user: user, auth: auth}
}

func (uc Controller) SignIn(c *web.Context) error {
	var data user.SignInRequest

	err := c.BindFunc(&data, "Email", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil {
		return c.RespondError(web.NewRequestError(errors.New("account not found"), http.StatusUnauthorized))
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("incorrect password"), http.StatusUnauthorized))
	}

	if detail.Status != nil && *detail.Status != user.StatusActive {
		return c.RespondError(web.NewRequestError(errors.New("account is not active"), http.StatusForbidden))
	}

	role := ""
	if detail.Role != nil {
		role = *detail.Role
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(detail.ID, role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	err := c.BindFunc(&data, "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	claims, err := uc.auth.ValidateRefreshToken(data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(claims.UserId, claims.Role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"status": true,
		"data": map[string]string{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	}, http.StatusOK)
}
