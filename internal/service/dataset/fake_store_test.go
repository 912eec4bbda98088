package dataset

import (
	"context"
	"sort"
	"time"

	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/ougirez/equipviz/internal/pkg/constants"
	"github.com/ougirez/equipviz/internal/pkg/store"
	"github.com/ougirez/equipviz/internal/service/ingest"
)

// fakeStore — in-memory реализация store.Store с теми же гарантиями:
// проверка владения, удержание последних N, пересчёт агрегатов от полного
// набора строк.
type fakeStore struct {
	keep int
	now  time.Time

	users     map[int64]*domain.User
	datasets  map[int64]*domain.Dataset
	equipment map[int64][]*domain.Equipment

	nextUserID      int64
	nextDatasetID   int64
	nextEquipmentID int64
}

func newFakeStore(keep int) *fakeStore {
	return &fakeStore{
		keep:      keep,
		now:       time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		users:     make(map[int64]*domain.User),
		datasets:  make(map[int64]*domain.Dataset),
		equipment: make(map[int64][]*domain.Equipment),
	}
}

// tick сдвигает часы фейка; каждая запись получает своё recorded_at.
func (f *fakeStore) tick() time.Time {
	f.now = f.now.Add(time.Minute)
	return f.now
}

func (f *fakeStore) CreateUser(_ context.Context, user *domain.User) error {
	f.nextUserID++
	user.ID = f.nextUserID
	user.CreatedAt = f.tick()
	f.users[user.ID] = user
	return nil
}

func (f *fakeStore) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) GetUserByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, constants.ErrDBNotFound
	}
	return u, nil
}

func (f *fakeStore) CreateDataset(_ context.Context, opts store.CreateDatasetOpts) (*domain.Dataset, []*domain.Equipment, error) {
	f.nextDatasetID++
	created := &domain.Dataset{
		ID:               f.nextDatasetID,
		OwnerID:          opts.OwnerID,
		Filename:         opts.Filename,
		RowCount:         opts.Summary.TotalEquipment,
		AvgFlowrate:      opts.Summary.AvgFlowrate,
		AvgPressure:      opts.Summary.AvgPressure,
		AvgTemperature:   opts.Summary.AvgTemperature,
		TypeDistribution: opts.Summary.TypeDistribution,
		RawData:          opts.RawData,
		CreatedAt:        f.tick(),
	}
	f.datasets[created.ID] = created

	rows := make([]*domain.Equipment, 0, len(opts.Records))
	for _, r := range opts.Records {
		f.nextEquipmentID++
		rows = append(rows, &domain.Equipment{
			ID:            f.nextEquipmentID,
			DatasetID:     created.ID,
			Name:          r.Name,
			EquipmentType: r.Type,
			Flowrate:      r.Flowrate,
			Pressure:      r.Pressure,
			Temperature:   r.Temperature,
			RecordedAt:    f.tick(),
		})
	}
	f.equipment[created.ID] = rows

	f.applyRetention(opts.OwnerID)

	return created, rows, nil
}

func (f *fakeStore) applyRetention(ownerID int64) {
	owned := f.ownedDatasets(ownerID)
	if len(owned) <= f.keep {
		return
	}
	for _, ds := range owned[f.keep:] {
		delete(f.datasets, ds.ID)
		delete(f.equipment, ds.ID)
	}
}

// ownedDatasets — новые первыми, при равном created_at новее больший id.
func (f *fakeStore) ownedDatasets(ownerID int64) []*domain.Dataset {
	var owned []*domain.Dataset
	for _, ds := range f.datasets {
		if ds.OwnerID == ownerID {
			owned = append(owned, ds)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})
	return owned
}

func (f *fakeStore) GetDataset(_ context.Context, ownerID, datasetID int64) (*domain.Dataset, error) {
	ds, ok := f.datasets[datasetID]
	if !ok || ds.OwnerID != ownerID {
		return nil, constants.ErrDBNotFound
	}
	return ds, nil
}

func (f *fakeStore) ListDatasets(_ context.Context, ownerID int64) ([]*domain.Dataset, error) {
	return f.ownedDatasets(ownerID), nil
}

func (f *fakeStore) DeleteDataset(ctx context.Context, ownerID, datasetID int64) error {
	if _, err := f.GetDataset(ctx, ownerID, datasetID); err != nil {
		return err
	}
	delete(f.datasets, datasetID)
	delete(f.equipment, datasetID)
	return nil
}

func (f *fakeStore) ListEquipment(ctx context.Context, ownerID, datasetID int64) ([]*domain.Equipment, error) {
	if _, err := f.GetDataset(ctx, ownerID, datasetID); err != nil {
		return nil, err
	}
	return append([]*domain.Equipment{}, f.equipment[datasetID]...), nil
}

func (f *fakeStore) ListEquipmentInRange(ctx context.Context, ownerID, datasetID int64, start, end time.Time) ([]*domain.Equipment, error) {
	if _, err := f.GetDataset(ctx, ownerID, datasetID); err != nil {
		return nil, err
	}
	var selected []*domain.Equipment
	for _, item := range f.equipment[datasetID] {
		if !item.RecordedAt.Before(start) && !item.RecordedAt.After(end) {
			selected = append(selected, item)
		}
	}
	return selected, nil
}

func (f *fakeStore) AddEquipment(ctx context.Context, ownerID, datasetID int64, record *dto.EquipmentRecord) (*domain.Equipment, *domain.Dataset, error) {
	if _, err := f.GetDataset(ctx, ownerID, datasetID); err != nil {
		return nil, nil, err
	}

	f.nextEquipmentID++
	added := &domain.Equipment{
		ID:            f.nextEquipmentID,
		DatasetID:     datasetID,
		Name:          record.Name,
		EquipmentType: record.Type,
		Flowrate:      record.Flowrate,
		Pressure:      record.Pressure,
		Temperature:   record.Temperature,
		RecordedAt:    f.tick(),
	}
	f.equipment[datasetID] = append(f.equipment[datasetID], added)

	return added, f.recompute(datasetID), nil
}

func (f *fakeStore) UpdateEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64, record *dto.EquipmentRecord) (*domain.Equipment, *domain.Dataset, error) {
	if _, err := f.GetDataset(ctx, ownerID, datasetID); err != nil {
		return nil, nil, err
	}

	for _, item := range f.equipment[datasetID] {
		if item.ID == equipmentID {
			item.Name = record.Name
			item.EquipmentType = record.Type
			item.Flowrate = record.Flowrate
			item.Pressure = record.Pressure
			item.Temperature = record.Temperature
			return item, f.recompute(datasetID), nil
		}
	}

	return nil, nil, constants.ErrDBNotFound
}

func (f *fakeStore) DeleteEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64) (*domain.Dataset, error) {
	if _, err := f.GetDataset(ctx, ownerID, datasetID); err != nil {
		return nil, err
	}

	rows := f.equipment[datasetID]
	for i, item := range rows {
		if item.ID == equipmentID {
			f.equipment[datasetID] = append(rows[:i:i], rows[i+1:]...)
			return f.recompute(datasetID), nil
		}
	}

	return nil, constants.ErrDBNotFound
}

func (f *fakeStore) recompute(datasetID int64) *domain.Dataset {
	ds := f.datasets[datasetID]
	summary := ingest.Compute(ingest.EquipmentRecords(f.equipment[datasetID]))
	ds.RowCount = summary.TotalEquipment
	ds.AvgFlowrate = summary.AvgFlowrate
	ds.AvgPressure = summary.AvgPressure
	ds.AvgTemperature = summary.AvgTemperature
	ds.TypeDistribution = summary.TypeDistribution
	ds.UpdatedAt = f.now
	return ds
}
