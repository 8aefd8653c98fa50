package reconcile

import "math"

// ResolveFee возвращает авторитетную плату для результата сопоставления.
//
// Плата берётся ТОЛЬКО из точного тройного совпадения. При NO_MATCH и на
// диагностических ярусах — ноль. "Угадывание" цены по ключевым словам в
// названии курса (в легаси-маршрутах встречалось "contains 'art' →
// 15000") исключено сознательно: финансовая сумма не выводится из
// подстроки свободного текста.
func ResolveFee(outcome MatchOutcome) float64 {
	if outcome.MatchType != MatchExactTriple || outcome.Course == nil {
		return 0
	}
	price := outcome.Course.PriceINR
	if math.IsNaN(price) || price < 0 {
		return 0
	}
	return price
}
