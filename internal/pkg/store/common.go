package store

import (
	"errors"

	"github.com/ougirez/equipviz/internal/pkg/constants"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/dbscan"
	"github.com/jackc/pgx/v5"
)

const (
	tableUsers     = "users"
	tableDatasets  = "datasets"
	tableEquipment = "equipment"
)

var mapping = map[error]error{
	pgx.ErrNoRows:      constants.ErrDBNotFound,
	dbscan.ErrNotFound: constants.ErrDBNotFound,
}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
