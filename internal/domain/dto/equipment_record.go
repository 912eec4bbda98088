package dto

// SourceRow — одна строка загруженной таблицы: заголовок колонки -> сырое значение.
type SourceRow = map[string]string

// EquipmentRecord — типизированная строка после нормализации.
type EquipmentRecord struct {
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Flowrate    float64 `json:"flowrate"`
	Pressure    float64 `json:"pressure"`
	Temperature float64 `json:"temperature"`
}
