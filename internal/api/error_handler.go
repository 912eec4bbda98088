package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/equipviz/internal/domain"
)

// httpErrorHandler разворачивает цепочку ошибок до первой, знающей свой
// HTTP-код; всё остальное отдаётся как 500.
func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	var coded interface{ Code() int }
	var httpErr *echo.HTTPError
	if errors.As(err, &coded) {
		code = coded.Code()
	} else if errors.As(err, &httpErr) {
		code = httpErr.Code
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
