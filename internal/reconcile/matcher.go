package reconcile

// MatchOutcome is the result of running the rule cascade for one student.
type MatchOutcome struct {
	// Course — выбранная запись каталога, nil при NO_MATCH.
	Course    *Course
	MatchType MatchType
	// DuplicateCandidates — сколько ещё записей каталога удовлетворяли
	// тому же правилу. Больше нуля означает дубли в каталоге; выбор
	// между ними детерминирован (см. pickCandidate), но это повод для
	// предупреждения в логе.
	DuplicateCandidates int
}

// normalizedKeys — ключи студента после нормализации. Пустой ключ
// означает, что сопоставление запрещено целиком.
type normalizedKeys struct {
	activity string
	program  string
	category string
}

func studentKeys(s Student) (normalizedKeys, bool) {
	k := normalizedKeys{
		activity: NormalizeForCompare(s.Activity),
		program:  NormalizeForCompare(s.Program),
		category: NormalizeForCompare(s.Category),
	}
	// Неполная запись не должна тихо дать неверную сумму: частичные
	// совпадения по неполным данным запрещены.
	if k.activity == "" || k.program == "" || k.category == "" {
		return k, false
	}
	return k, true
}

// candidateCourses отбрасывает записи каталога без courseId/name/level —
// такие записи не участвуют в сопоставлении вообще.
func candidateCourses(courses []Course) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if NormalizeForCompare(c.CourseID) == "" ||
			NormalizeForCompare(c.Name) == "" ||
			NormalizeForCompare(c.Level) == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// pickCandidate выбирает одну запись из совпавших: сначала по возрастанию
// courseId (после нормализации), при равенстве — по порядку во входном
// массиве. Молчаливый недетерминизм здесь менял бы финансовый результат
// от запуска к запуску.
func pickCandidate(matched []Course) (*Course, int) {
	if len(matched) == 0 {
		return nil, 0
	}
	best := 0
	for i := 1; i < len(matched); i++ {
		if NormalizeForCompare(matched[i].CourseID) < NormalizeForCompare(matched[best].CourseID) {
			best = i
		}
	}
	c := matched[best]
	return &c, len(matched) - 1
}

// Match применяет каноническое правило: только точное тройное совпадение.
// Всё, что слабее, — NO_MATCH. Это единственный путь, которому разрешено
// назначать плату.
func Match(student Student, courses []Course) MatchOutcome {
	keys, ok := studentKeys(student)
	if !ok {
		return MatchOutcome{MatchType: MatchNone}
	}

	var matched []Course
	for _, c := range candidateCourses(courses) {
		if keys.activity == NormalizeForCompare(c.CourseID) &&
			keys.program == NormalizeForCompare(c.Name) &&
			keys.category == NormalizeForCompare(c.Level) {
			matched = append(matched, c)
		}
	}

	course, dups := pickCandidate(matched)
	if course == nil {
		return MatchOutcome{MatchType: MatchNone}
	}
	return MatchOutcome{Course: course, MatchType: MatchExactTriple, DuplicateCandidates: dups}
}

// InspectMatch прогоняет полный каскад, включая диагностические ярусы.
// Первый сработавший ярус побеждает, дальше не сканируем. Результат с
// MatchType != EXACT_TRIPLE_MATCH никогда не попадает в расчёт баланса —
// он нужен inspect-эндпоинтам, чтобы показать, ПОЧЕМУ студент не
// сматчился строго.
func InspectMatch(student Student, courses []Course) MatchOutcome {
	keys, ok := studentKeys(student)
	if !ok {
		return MatchOutcome{MatchType: MatchNone}
	}

	candidates := candidateCourses(courses)

	tiers := []struct {
		matchType MatchType
		rule      func(Course) bool
	}{
		{MatchExactTriple, func(c Course) bool {
			return keys.activity == NormalizeForCompare(c.CourseID) &&
				keys.program == NormalizeForCompare(c.Name) &&
				keys.category == NormalizeForCompare(c.Level)
		}},
		{MatchActivityLevel, func(c Course) bool {
			return keys.activity == NormalizeForCompare(c.CourseID) &&
				keys.category == NormalizeForCompare(c.Level)
		}},
		{MatchProgramLevel, func(c Course) bool {
			return keys.program == NormalizeForCompare(c.Name) &&
				keys.category == NormalizeForCompare(c.Level)
		}},
		{MatchActivityOnly, func(c Course) bool {
			return keys.activity == NormalizeForCompare(c.CourseID)
		}},
		{MatchProgramOnly, func(c Course) bool {
			return keys.program == NormalizeForCompare(c.Name)
		}},
	}

	for _, tier := range tiers {
		var matched []Course
		for _, c := range candidates {
			if tier.rule(c) {
				matched = append(matched, c)
			}
		}
		if course, dups := pickCandidate(matched); course != nil {
			return MatchOutcome{Course: course, MatchType: tier.matchType, DuplicateCandidates: dups}
		}
	}
	return MatchOutcome{MatchType: MatchNone}
}
