package api

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/pkg/utils"
)

// AuthMiddleware достаёт auth-токен из cookie (или из Authorization: Bearer)
// и кладёт id пользователя в контекст запроса.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var raw string
		if cookie, err := ctx.Cookie(constants.CookieKeyAuthToken); err == nil {
			raw = cookie.Value
		} else if header := ctx.Request().Header.Get(echo.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
			raw = strings.TrimPrefix(header, "Bearer ")
		}

		if raw == "" {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(raw)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}
