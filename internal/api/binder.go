package api

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// Binder — json через sonic, остальное через дефолтный биндер echo.
type Binder struct {
	fallback echo.DefaultBinder
}

func NewBinder() *Binder {
	return &Binder{}
}

func (b *Binder) Bind(i interface{}, c echo.Context) error {
	req := c.Request()
	contentType := req.Header.Get(echo.HeaderContentType)

	if req.ContentLength != 0 && strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		if err := sonic.Unmarshal(body, i); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return b.fallback.BindPathParams(c, i)
	}

	return b.fallback.Bind(i, c)
}
