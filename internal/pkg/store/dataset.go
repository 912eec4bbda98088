package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/pkg/logger"
	"github.com/ougirez/equipviz/internal/pkg/store/xpgx"
	"github.com/ougirez/equipviz/internal/service/ingest"
)

var (
	datasetColumns = []string{
		"id", "owner_id", "upload_uid", "filename", "row_count",
		"avg_flowrate", "avg_pressure", "avg_temperature",
		"type_distribution", "raw_data", "created_at", "updated_at",
	}
	equipmentColumns = []string{
		"id", "dataset_id", "name", "equipment_type",
		"flowrate", "pressure", "temperature", "recorded_at",
	}
)

type CreateDatasetOpts struct {
	OwnerID  int64
	Filename string
	Records  []*dto.EquipmentRecord
	Summary  domain.Summary
	RawData  []byte
}

// CreateDataset атомарно сохраняет датасет вместе со всеми строками
// оборудования и применяет политику удержания для владельца. Либо
// фиксируется всё, либо ничего. Вставленные строки возвращаются из той же
// транзакции, отдельное перечитывание после коммита не требуется.
func (s *store) CreateDataset(ctx context.Context, opts CreateDatasetOpts) (*domain.Dataset, []*domain.Equipment, error) {
	var (
		created  domain.Dataset
		inserted []*domain.Equipment
	)

	err := s.pool.InTx(ctx, func(ctx context.Context, q xpgx.Queryer) error {
		distJSON, err := sonic.Marshal(opts.Summary.TypeDistribution)
		if err != nil {
			return fmt.Errorf("failed to marshal type distribution: %w", err)
		}

		insert := builder().Insert(tableDatasets).
			Columns("owner_id", "upload_uid", "filename", "row_count",
				"avg_flowrate", "avg_pressure", "avg_temperature",
				"type_distribution", "raw_data").
			Values(opts.OwnerID, uuid.NewString(), opts.Filename, opts.Summary.TotalEquipment,
				opts.Summary.AvgFlowrate, opts.Summary.AvgPressure, opts.Summary.AvgTemperature,
				distJSON, opts.RawData).
			Suffix("RETURNING " + strings.Join(datasetColumns, ", "))

		if err = q.Getx(ctx, &created, insert); err != nil {
			return fmt.Errorf("insert dataset: %w", err)
		}

		if len(opts.Records) > 0 {
			rows := builder().Insert(tableEquipment).
				Columns("dataset_id", "name", "equipment_type", "flowrate", "pressure", "temperature").
				Suffix("RETURNING " + strings.Join(equipmentColumns, ", "))
			for _, r := range opts.Records {
				rows = rows.Values(created.ID, r.Name, r.Type, r.Flowrate, r.Pressure, r.Temperature)
			}
			if err = q.Selectx(ctx, &inserted, rows); err != nil {
				return fmt.Errorf("insert equipment rows: %w", err)
			}
		}

		return s.retention.apply(ctx, q, opts.OwnerID)
	})
	if err != nil {
		logger.Errorf(ctx, "CreateDataset: %s", err.Error())
		return nil, nil, err
	}

	return &created, inserted, nil
}

func (s *store) GetDataset(ctx context.Context, ownerID, datasetID int64) (*domain.Dataset, error) {
	return getDatasetForOwner(ctx, s.pool, ownerID, datasetID)
}

func (s *store) ListDatasets(ctx context.Context, ownerID int64) ([]*domain.Dataset, error) {
	query := builder().Select(datasetColumns...).
		From(tableDatasets).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at desc, id desc")

	var selected []*domain.Dataset
	if err := s.pool.Selectx(ctx, &selected, query); err != nil {
		return nil, err
	}

	return selected, nil
}

func (s *store) DeleteDataset(ctx context.Context, ownerID, datasetID int64) error {
	query := builder().Delete(tableDatasets).
		Where(sq.Eq{"id": datasetID, "owner_id": ownerID})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}

	return nil
}

// getDatasetForOwner — единая точка проверки владения: датасет чужого
// пользователя неотличим от несуществующего.
func getDatasetForOwner(ctx context.Context, q xpgx.Queryer, ownerID, datasetID int64) (*domain.Dataset, error) {
	query := builder().Select(datasetColumns...).
		From(tableDatasets).
		Where(sq.Eq{"id": datasetID, "owner_id": ownerID})

	var selected domain.Dataset
	if err := q.Getx(ctx, &selected, query); err != nil {
		return nil, wrapErr(err)
	}

	return &selected, nil
}

// recomputeAggregates перечитывает полный набор строк датасета и записывает
// агрегаты заново. Пересчёт всегда от полного набора, не инкрементальный,
// чтобы округление не накапливало расхождение.
func recomputeAggregates(ctx context.Context, q xpgx.Queryer, datasetID int64) (*domain.Dataset, error) {
	items, err := listEquipmentRows(ctx, q, datasetID)
	if err != nil {
		return nil, fmt.Errorf("list equipment rows: %w", err)
	}

	summary := ingest.Compute(ingest.EquipmentRecords(items))

	distJSON, err := sonic.Marshal(summary.TypeDistribution)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal type distribution: %w", err)
	}

	update := builder().Update(tableDatasets).
		Set("row_count", summary.TotalEquipment).
		Set("avg_flowrate", summary.AvgFlowrate).
		Set("avg_pressure", summary.AvgPressure).
		Set("avg_temperature", summary.AvgTemperature).
		Set("type_distribution", distJSON).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": datasetID}).
		Suffix("RETURNING " + strings.Join(datasetColumns, ", "))

	var updated domain.Dataset
	if err := q.Getx(ctx, &updated, update); err != nil {
		return nil, wrapErr(err)
	}

	return &updated, nil
}
