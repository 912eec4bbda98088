package domain

import "time"

type Equipment struct {
	ID            int64     `db:"id" json:"id"`
	DatasetID     int64     `db:"dataset_id" json:"-"`
	Name          string    `db:"name" json:"name"`
	EquipmentType string    `db:"equipment_type" json:"type"`
	Flowrate      float64   `db:"flowrate" json:"flowrate"`
	Pressure      float64   `db:"pressure" json:"pressure"`
	Temperature   float64   `db:"temperature" json:"temperature"`
	RecordedAt    time.Time `db:"recorded_at" json:"recorded_at"`
}
