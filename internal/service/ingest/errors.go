package ingest

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ougirez/equipviz/internal/pkg/constants"
)

// SchemaError — в заголовках не нашлось синонимов для обязательных колонок.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

func (e *SchemaError) Code() int {
	return http.StatusBadRequest
}

// ParseError — числовая ячейка не распарсилась; загрузка прерывается целиком.
type ParseError struct {
	Row    int
	Column string
	Value  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("row %d, column %s: cannot parse %q as a number", e.Row, e.Column, e.Value)
}

func (e *ParseError) Code() int {
	return http.StatusBadRequest
}

var ErrEmptyInput = constants.NewCodedError(http.StatusBadRequest, "uploaded table has no rows")
