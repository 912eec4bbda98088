package ingest

import "strings"

const (
	ColumnName        = "Name"
	ColumnType        = "Type"
	ColumnFlowrate    = "Flowrate"
	ColumnPressure    = "Pressure"
	ColumnTemperature = "Temperature"
)

// CanonicalColumns — пять обязательных полей в порядке экспорта.
var CanonicalColumns = []string{
	ColumnName,
	ColumnType,
	ColumnFlowrate,
	ColumnPressure,
	ColumnTemperature,
}

// Списки синонимов упорядочены по приоритету: берётся первый найденный.
var columnSynonyms = map[string][]string{
	ColumnName:        {"Equipment Name", "equipment_name", "equip_name", "Name", "name"},
	ColumnType:        {"Type", "type", "Equipment Type", "equipment_type"},
	ColumnFlowrate:    {"Flowrate", "flowrate", "Flow Rate", "flow_rate"},
	ColumnPressure:    {"Pressure", "pressure"},
	ColumnTemperature: {"Temperature", "temperature", "Temp", "temp"},
}

// ColumnMap — каноническое имя поля -> фактический заголовок таблицы.
type ColumnMap map[string]string

// ResolveColumns сопоставляет заголовки загруженной таблицы с каноническими
// полями. Заголовки сравниваются после TrimSpace, с учётом регистра.
// Возвращает список канонических полей, для которых синоним не нашёлся;
// решение о фатальности принимает вызывающая сторона.
func ResolveColumns(headers []string) (ColumnMap, []string) {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[strings.TrimSpace(h)] = struct{}{}
	}

	resolved := make(ColumnMap, len(CanonicalColumns))
	var missing []string
	for _, canonical := range CanonicalColumns {
		found := false
		for _, synonym := range columnSynonyms[canonical] {
			if _, ok := present[synonym]; ok {
				resolved[canonical] = synonym
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, canonical)
		}
	}

	return resolved, missing
}
