package ingest

import (
	"github.com/ougirez/equipviz/internal/domain"
	"github.com/ougirez/equipviz/internal/domain/dto"
	"github.com/shopspring/decimal"
)

// Compute считает агрегаты по набору записей: количество, средние по трём
// числовым полям (2 знака, округление half-up) и распределение по типам.
// Чистая функция; на одном и том же наборе всегда даёт одинаковый результат,
// поэтому вызывается и при загрузке, и после каждой мутации строк.
func Compute(records []*dto.EquipmentRecord) domain.Summary {
	summary := domain.Summary{
		TotalEquipment:   len(records),
		TypeDistribution: make(domain.TypeDistribution),
	}

	if len(records) == 0 {
		return summary
	}

	var flowrate, pressure, temperature decimal.Decimal
	for _, r := range records {
		flowrate = flowrate.Add(decimal.NewFromFloat(r.Flowrate))
		pressure = pressure.Add(decimal.NewFromFloat(r.Pressure))
		temperature = temperature.Add(decimal.NewFromFloat(r.Temperature))
		summary.TypeDistribution[r.Type]++
	}

	count := decimal.NewFromInt(int64(len(records)))
	summary.AvgFlowrate = flowrate.Div(count).Round(2).InexactFloat64()
	summary.AvgPressure = pressure.Div(count).Round(2).InexactFloat64()
	summary.AvgTemperature = temperature.Div(count).Round(2).InexactFloat64()

	return summary
}

// EquipmentRecords приводит сохранённые строки оборудования к записям для
// пересчёта агрегатов.
func EquipmentRecords(items []*domain.Equipment) []*dto.EquipmentRecord {
	records := make([]*dto.EquipmentRecord, 0, len(items))
	for _, item := range items {
		records = append(records, &dto.EquipmentRecord{
			Name:        item.Name,
			Type:        item.EquipmentType,
			Flowrate:    item.Flowrate,
			Pressure:    item.Pressure,
			Temperature: item.Temperature,
		})
	}
	return records
}
