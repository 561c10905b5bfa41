package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staynest/staynest/internal/api/middleware"
	"github.com/staynest/staynest/internal/core/domain"
)

// ctxIdentity extracts the auth claims injected by the Auth middleware.
// An empty user ID or role means the middleware did not run or the token was
// malformed; handlers fail fast with a 401 rather than reaching the service.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	roleStr, _ := c.Get(middleware.CtxRole).(string)
	role = domain.Role(roleStr)
	if userID == "" || !role.Valid() {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
