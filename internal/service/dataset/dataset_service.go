package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/ougirez/equipviz/internal/pkg/logger"
	"github.com/ougirez/equipviz/internal/pkg/store"
	"github.com/ougirez/equipviz/internal/service/ingest"
)

type Service struct {
	store store.Store
}

func NewDatasetService(store store.Store) *Service {
	return &Service{store: store}
}

// Ingest проводит загруженную таблицу через весь конвейер: сопоставление
// колонок, нормализация строк, агрегация, атомарное сохранение с политикой
// удержания. Любая ошибка прерывает загрузку целиком — частично сохранённого
// датасета не бывает.
func (s *Service) Ingest(ctx context.Context, ownerID int64, filename string, headers []string, rows []dto.SourceRow) (*domain.Dataset, []*domain.Equipment, error) {
	cols, missing := ingest.ResolveColumns(headers)
	if len(missing) > 0 {
		return nil, nil, &ingest.SchemaError{Missing: missing}
	}

	if len(rows) == 0 {
		return nil, nil, ingest.ErrEmptyInput
	}

	records := make([]*dto.EquipmentRecord, 0, len(rows))
	for i, row := range rows {
		record, err := ingest.NormalizeRow(cols, row, i+1)
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)
	}

	summary := ingest.Compute(records)

	// Сырой снимок — разовый артефакт загрузки, после мутаций строк он не
	// обновляется.
	rawData, err := sonic.Marshal(records)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal raw snapshot: %w", err)
	}

	created, equipment, err := s.store.CreateDataset(ctx, store.CreateDatasetOpts{
		OwnerID:  ownerID,
		Filename: filename,
		Records:  records,
		Summary:  summary,
		RawData:  rawData,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("store.CreateDataset: %w", err)
	}

	logger.Infof(ctx, "ingested dataset %d (%s): %d rows for owner %d",
		created.ID, filename, summary.TotalEquipment, ownerID)

	return created, equipment, nil
}

// History возвращает сохранённые датасеты владельца, новые первыми. Политика
// удержания гарантирует, что их не больше N.
func (s *Service) History(ctx context.Context, ownerID int64) ([]*domain.Dataset, error) {
	return s.store.ListDatasets(ctx, ownerID)
}

func (s *Service) Detail(ctx context.Context, ownerID, datasetID int64) (*domain.Dataset, []*domain.Equipment, error) {
	ds, err := s.store.GetDataset(ctx, ownerID, datasetID)
	if err != nil {
		return nil, nil, err
	}

	equipment, err := s.store.ListEquipment(ctx, ownerID, datasetID)
	if err != nil {
		return nil, nil, err
	}

	return ds, equipment, nil
}

func (s *Service) Delete(ctx context.Context, ownerID, datasetID int64) error {
	return s.store.DeleteDataset(ctx, ownerID, datasetID)
}

// FilterEquipment возвращает строки с recorded_at в [start, end] включительно
// и свежепосчитанную по этому подмножеству сводку. Сохранённые агрегаты
// датасета не изменяются. start позже end — пустой диапазон, не ошибка.
func (s *Service) FilterEquipment(ctx context.Context, ownerID, datasetID int64, start, end time.Time) ([]*domain.Equipment, domain.Summary, error) {
	if start.After(end) {
		if _, err := s.store.GetDataset(ctx, ownerID, datasetID); err != nil {
			return nil, domain.Summary{}, err
		}
		return []*domain.Equipment{}, ingest.Compute(nil), nil
	}

	equipment, err := s.store.ListEquipmentInRange(ctx, ownerID, datasetID, start, end)
	if err != nil {
		return nil, domain.Summary{}, err
	}

	return equipment, ingest.Compute(ingest.EquipmentRecords(equipment)), nil
}

func (s *Service) AddEquipment(ctx context.Context, ownerID, datasetID int64, req *domain.EquipmentRequest) (*domain.Equipment, domain.Summary, error) {
	added, ds, err := s.store.AddEquipment(ctx, ownerID, datasetID, recordFromRequest(req))
	if err != nil {
		return nil, domain.Summary{}, err
	}

	return added, ds.Summary(), nil
}

func (s *Service) UpdateEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64, req *domain.EquipmentRequest) (*domain.Equipment, domain.Summary, error) {
	changed, ds, err := s.store.UpdateEquipment(ctx, ownerID, datasetID, equipmentID, recordFromRequest(req))
	if err != nil {
		return nil, domain.Summary{}, err
	}

	return changed, ds.Summary(), nil
}

func (s *Service) DeleteEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64) (domain.Summary, error) {
	ds, err := s.store.DeleteEquipment(ctx, ownerID, datasetID, equipmentID)
	if err != nil {
		return domain.Summary{}, err
	}

	return ds.Summary(), nil
}

func recordFromRequest(req *domain.EquipmentRequest) *dto.EquipmentRecord {
	return &dto.EquipmentRecord{
		Name:        req.Name,
		Type:        req.Type,
		Flowrate:    req.Flowrate,
		Pressure:    req.Pressure,
		Temperature: req.Temperature,
	}
}
