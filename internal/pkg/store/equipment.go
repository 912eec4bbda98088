package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/pkg/logger"
	"github.com/ougirez/equipviz/internal/pkg/store/xpgx"
)

func (s *store) ListEquipment(ctx context.Context, ownerID, datasetID int64) ([]*domain.Equipment, error) {
	if _, err := getDatasetForOwner(ctx, s.pool, ownerID, datasetID); err != nil {
		return nil, err
	}

	return listEquipmentRows(ctx, s.pool, datasetID)
}

// ListEquipmentInRange возвращает строки с recorded_at в пределах [start, end]
// включительно. Только чтение: сохранённые агрегаты не трогаются.
func (s *store) ListEquipmentInRange(ctx context.Context, ownerID, datasetID int64, start, end time.Time) ([]*domain.Equipment, error) {
	if _, err := getDatasetForOwner(ctx, s.pool, ownerID, datasetID); err != nil {
		return nil, err
	}

	query := builder().Select(equipmentColumns...).
		From(tableEquipment).
		Where(sq.Eq{"dataset_id": datasetID}).
		Where(sq.GtOrEq{"recorded_at": start}).
		Where(sq.LtOrEq{"recorded_at": end}).
		OrderBy("recorded_at desc, name")

	var selected []*domain.Equipment
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}

	return selected, nil
}

// AddEquipment добавляет строку и в той же транзакции пересчитывает агрегаты
// датасета по полному набору строк.
func (s *store) AddEquipment(ctx context.Context, ownerID, datasetID int64, record *dto.EquipmentRecord) (*domain.Equipment, *domain.Dataset, error) {
	var (
		added   domain.Equipment
		updated *domain.Dataset
	)

	err := s.pool.InTx(ctx, func(ctx context.Context, q xpgx.Queryer) error {
		if _, err := getDatasetForOwner(ctx, q, ownerID, datasetID); err != nil {
			return err
		}

		insert := builder().Insert(tableEquipment).
			Columns("dataset_id", "name", "equipment_type", "flowrate", "pressure", "temperature").
			Values(datasetID, record.Name, record.Type, record.Flowrate, record.Pressure, record.Temperature).
			Suffix("RETURNING " + strings.Join(equipmentColumns, ", "))

		if err := q.Getx(ctx, &added, insert); err != nil {
			return fmt.Errorf("insert equipment row: %w", err)
		}

		var err error
		updated, err = recomputeAggregates(ctx, q, datasetID)
		return err
	})
	if err != nil {
		logger.Errorf(ctx, "AddEquipment: %s", err.Error())
		return nil, nil, err
	}

	return &added, updated, nil
}

// UpdateEquipment заменяет изменяемые поля строки, затем пересчитывает
// агрегаты по полному набору.
func (s *store) UpdateEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64, record *dto.EquipmentRecord) (*domain.Equipment, *domain.Dataset, error) {
	var (
		changed domain.Equipment
		updated *domain.Dataset
	)

	err := s.pool.InTx(ctx, func(ctx context.Context, q xpgx.Queryer) error {
		if _, err := getDatasetForOwner(ctx, q, ownerID, datasetID); err != nil {
			return err
		}

		update := builder().Update(tableEquipment).
			Set("name", record.Name).
			Set("equipment_type", record.Type).
			Set("flowrate", record.Flowrate).
			Set("pressure", record.Pressure).
			Set("temperature", record.Temperature).
			Where(sq.Eq{"id": equipmentID, "dataset_id": datasetID}).
			Suffix("RETURNING " + strings.Join(equipmentColumns, ", "))

		if err := q.Getx(ctx, &changed, update); err != nil {
			return wrapErr(err)
		}

		var err error
		updated, err = recomputeAggregates(ctx, q, datasetID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return &changed, updated, nil
}

// DeleteEquipment удаляет строку и пересчитывает агрегаты по оставшимся;
// для последней строки датасета агрегаты обнуляются.
func (s *store) DeleteEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64) (*domain.Dataset, error) {
	var updated *domain.Dataset

	err := s.pool.InTx(ctx, func(ctx context.Context, q xpgx.Queryer) error {
		if _, err := getDatasetForOwner(ctx, q, ownerID, datasetID); err != nil {
			return err
		}

		del := builder().Delete(tableEquipment).
			Where(sq.Eq{"id": equipmentID, "dataset_id": datasetID})

		tag, err := q.Execx(ctx, del)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return constants.ErrDBNotFound
		}

		updated, err = recomputeAggregates(ctx, q, datasetID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func listEquipmentRows(ctx context.Context, q xpgx.Queryer, datasetID int64) ([]*domain.Equipment, error) {
	query := builder().Select(equipmentColumns...).
		From(tableEquipment).
		Where(sq.Eq{"dataset_id": datasetID}).
		OrderBy("recorded_at desc, name")

	var selected []*domain.Equipment
	if err := q.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}

	return selected, nil
}
