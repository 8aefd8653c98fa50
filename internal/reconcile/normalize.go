package reconcile

import "strings"

// Normalize обрезает пробелы; для пустых значений возвращает "".
func Normalize(value string) string {
	return strings.TrimSpace(value)
}

// NormalizeForCompare дополнительно приводит к нижнему регистру.
// Все четыре ключевых поля проходят через неё перед любым сравнением,
// чтобы " C1 " и "c1" считались одним и тем же ключом.
func NormalizeForCompare(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
