package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxCaller extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a zero user_id means the middleware
// did not run or the token carried no usable identity.
func ctxCaller(c echo.Context) (userID int64, role string, err error) {
	userID, _ = c.Get("user_id").(int64)
	if userID == 0 {
		return 0, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return userID, role, nil
}

// ctxCallerID is the anonymous-tolerant variant for routes behind
// OptionalAuth: it returns 0 when no identity is present.
func ctxCallerID(c echo.Context) int64 {
	userID, _ := c.Get("user_id").(int64)
	return userID
}
