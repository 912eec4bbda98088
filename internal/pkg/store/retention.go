package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/equipviz/internal/pkg/logger"
	"github.com/ougirez/equipviz/internal/pkg/store/xpgx"
)

const DefaultRetentionKeep = 5

// RetentionPolicy ограничивает историю загрузок: у владельца остаются только
// Keep самых свежих датасетов. Применяется в той же транзакции, что и
// создание нового датасета. При равных created_at новее считается больший id.
type RetentionPolicy struct {
	Keep int
}

func (p RetentionPolicy) apply(ctx context.Context, q xpgx.Queryer, ownerID int64) error {
	keep := p.Keep
	if keep <= 0 {
		keep = DefaultRetentionKeep
	}

	var expired []int64
	if err := q.Selectx(ctx, &expired, expiredDatasetsQuery(ownerID, keep)); err != nil {
		return fmt.Errorf("select expired datasets: %w", err)
	}
	if len(expired) == 0 {
		return nil
	}

	deleteQuery := builder().Delete(tableDatasets).
		Where(sq.Eq{"id": expired})
	if _, err := q.Execx(ctx, deleteQuery); err != nil {
		return fmt.Errorf("delete expired datasets: %w", err)
	}

	logger.Infof(ctx, "retention: removed %d datasets for owner %d", len(expired), ownerID)
	return nil
}

// expiredDatasetsQuery выбирает id датасетов владельца за пределами окна
// удержания: сортировка created_at desc с тай-брейком по id desc, первые
// keep строк пропускаются.
func expiredDatasetsQuery(ownerID int64, keep int) sq.SelectBuilder {
	return builder().Select("id").
		From(tableDatasets).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at desc, id desc").
		Offset(uint64(keep))
}
