package domain

import (
	"encoding/json"
	"time"
)

// TypeDistribution — количество единиц оборудования по типам.
type TypeDistribution = map[string]int

type Dataset struct {
	ID               int64            `db:"id" json:"id"`
	OwnerID          int64            `db:"owner_id" json:"-"`
	UploadUID        string           `db:"upload_uid" json:"upload_uid"`
	Filename         string           `db:"filename" json:"filename"`
	RowCount         int              `db:"row_count" json:"row_count"`
	AvgFlowrate      float64          `db:"avg_flowrate" json:"avg_flowrate"`
	AvgPressure      float64          `db:"avg_pressure" json:"avg_pressure"`
	AvgTemperature   float64          `db:"avg_temperature" json:"avg_temperature"`
	TypeDistribution TypeDistribution `db:"type_distribution" json:"type_distribution"`
	RawData          json.RawMessage  `db:"raw_data" json:"-"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
}

// Summary — агрегаты по набору строк оборудования.
type Summary struct {
	TotalEquipment   int              `json:"total_equipment"`
	AvgFlowrate      float64          `json:"avg_flowrate"`
	AvgPressure      float64          `json:"avg_pressure"`
	AvgTemperature   float64          `json:"avg_temperature"`
	TypeDistribution TypeDistribution `json:"type_distribution"`
}

func (d *Dataset) Summary() Summary {
	return Summary{
		TotalEquipment:   d.RowCount,
		AvgFlowrate:      d.AvgFlowrate,
		AvgPressure:      d.AvgPressure,
		AvgTemperature:   d.AvgTemperature,
		TypeDistribution: d.TypeDistribution,
	}
}
