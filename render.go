package tourweb

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// redirectWithFlash finishes a form POST: it queues msg and sends the
// browser to location with 303 See Other.
func redirectWithFlash(c echo.Context, location, msg string) error {
	if err := AddFlash(c, msg); err != nil {
		c.Logger().Errorf("session: add flash: %v", err)
	}
	return c.Redirect(http.StatusSeeOther, location)
}
