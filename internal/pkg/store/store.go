package store

import (
	"context"
	"time"

	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/ougirez/equipviz/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

type Store interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)

	CreateDataset(ctx context.Context, opts CreateDatasetOpts) (*domain.Dataset, []*domain.Equipment, error)
	GetDataset(ctx context.Context, ownerID, datasetID int64) (*domain.Dataset, error)
	ListDatasets(ctx context.Context, ownerID int64) ([]*domain.Dataset, error)
	DeleteDataset(ctx context.Context, ownerID, datasetID int64) error

	ListEquipment(ctx context.Context, ownerID, datasetID int64) ([]*domain.Equipment, error)
	ListEquipmentInRange(ctx context.Context, ownerID, datasetID int64, start, end time.Time) ([]*domain.Equipment, error)
	AddEquipment(ctx context.Context, ownerID, datasetID int64, record *dto.EquipmentRecord) (*domain.Equipment, *domain.Dataset, error)
	UpdateEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64, record *dto.EquipmentRecord) (*domain.Equipment, *domain.Dataset, error)
	DeleteEquipment(ctx context.Context, ownerID, datasetID, equipmentID int64) (*domain.Dataset, error)
}

type store struct {
	pool      Pool
	retention RetentionPolicy
}

func NewStore(pool Pool, retention RetentionPolicy) Store {
	return &store{pool: pool, retention: retention}
}
