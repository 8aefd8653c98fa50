package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogCourse(id, name, level string, price float64) Course {
	return Course{CourseID: id, Name: name, Level: level, PriceINR: price, Status: "Active"}
}

func TestMatch_ExactTriple(t *testing.T) {
	student := Student{StudentID: "S1", Activity: "C1", Program: "Intro", Category: "Beginner"}
	courses := []Course{
		catalogCourse("C2", "Intro", "Advanced", 9000),
		catalogCourse("C1", "Intro", "Beginner", 5000),
	}

	out := Match(student, courses)
	require.NotNil(t, out.Course)
	assert.Equal(t, MatchExactTriple, out.MatchType)
	assert.Equal(t, "C1", out.Course.CourseID)
	assert.Equal(t, float64(5000), out.Course.PriceINR)
}

func TestMatch_CaseAndWhitespaceInsensitive(t *testing.T) {
	student := Student{StudentID: "S1", Activity: " c1 ", Program: " INTRO ", Category: "beginner"}
	courses := []Course{catalogCourse("C1", "Intro", "Beginner", 5000)}

	out := Match(student, courses)
	require.NotNil(t, out.Course)
	assert.Equal(t, MatchExactTriple, out.MatchType)
}

func TestMatch_EmptyKeyFieldShortCircuits(t *testing.T) {
	courses := []Course{catalogCourse("C1", "Intro", "Beginner", 5000)}

	// Неполная запись студента не должна матчиться ни при каком каталоге.
	tests := []struct {
		name    string
		student Student
	}{
		{"missing activity", Student{StudentID: "S1", Program: "Intro", Category: "Beginner"}},
		{"missing program", Student{StudentID: "S1", Activity: "C1", Category: "Beginner"}},
		{"missing category", Student{StudentID: "S1", Activity: "C1", Program: "Intro"}},
		{"whitespace-only category", Student{StudentID: "S1", Activity: "C1", Program: "Intro", Category: "   "}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := Match(tc.student, courses)
			assert.Equal(t, MatchNone, out.MatchType)
			assert.Nil(t, out.Course)

			// И диагностический каскад подчиняется тому же предусловию.
			inspect := InspectMatch(tc.student, courses)
			assert.Equal(t, MatchNone, inspect.MatchType)
		})
	}
}

func TestMatch_EmptyCatalog(t *testing.T) {
	student := Student{StudentID: "S1", Activity: "C1", Program: "Intro", Category: "Beginner"}
	assert.Equal(t, MatchNone, Match(student, nil).MatchType)
	assert.Equal(t, MatchNone, Match(student, []Course{}).MatchType)
}

func TestMatch_IncompleteCourseExcluded(t *testing.T) {
	student := Student{StudentID: "S1", Activity: "C1", Program: "Intro", Category: "Beginner"}
	courses := []Course{
		{CourseID: "C1", Name: "Intro", Level: "", PriceINR: 5000},  // без уровня
		{CourseID: "", Name: "Intro", Level: "Beginner"},            // без id
		{CourseID: "C1", Name: "  ", Level: "Beginner"},             // имя из пробелов
	}
	assert.Equal(t, MatchNone, Match(student, courses).MatchType)
}

func TestMatch_DuplicateTieBreakIsDeterministic(t *testing.T) {
	student := Student{StudentID: "S1", Activity: "B2", Program: "Vocal", Category: "Beginner"}

	// Два дубля с разными courseId не случатся для правила activity==courseId,
	// поэтому дубли здесь — записи с одинаковым нормализованным id.
	courses := []Course{
		catalogCourse(" B2 ", "Vocal", "Beginner", 7000),
		catalogCourse("B2", "Vocal", "Beginner", 8000),
	}

	out := Match(student, courses)
	require.NotNil(t, out.Course)
	assert.Equal(t, 1, out.DuplicateCandidates)
	// При равных id побеждает порядок во входном массиве.
	assert.Equal(t, float64(7000), out.Course.PriceINR)

	// Повторный прогон обязан дать тот же выбор.
	again := Match(student, courses)
	assert.Equal(t, out.Course.PriceINR, again.Course.PriceINR)
}

func TestInspectMatch_FallbackTiers(t *testing.T) {
	courses := []Course{
		catalogCourse("C1", "Intro", "Beginner", 5000),
		catalogCourse("C2", "Painting", "Advanced", 9000),
	}

	tests := []struct {
		name     string
		student  Student
		wantType MatchType
		wantID   string
	}{
		{
			"exact wins first",
			Student{Activity: "C1", Program: "Intro", Category: "Beginner"},
			MatchExactTriple, "C1",
		},
		{
			"activity+level when program is wrong",
			Student{Activity: "C1", Program: "Sculpting", Category: "Beginner"},
			MatchActivityLevel, "C1",
		},
		{
			"program+level when activity is wrong",
			Student{Activity: "X9", Program: "Painting", Category: "Advanced"},
			MatchProgramLevel, "C2",
		},
		{
			"activity only",
			Student{Activity: "C2", Program: "Sculpting", Category: "Beginner"},
			MatchActivityOnly, "C2",
		},
		{
			"program only",
			Student{Activity: "X9", Program: "Intro", Category: "Advanced"},
			MatchProgramOnly, "C1",
		},
		{
			"nothing at all",
			Student{Activity: "X9", Program: "Sculpting", Category: "Expert"},
			MatchNone, "",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := InspectMatch(tc.student, courses)
			assert.Equal(t, tc.wantType, out.MatchType)
			if tc.wantID != "" {
				require.NotNil(t, out.Course)
				assert.Equal(t, tc.wantID, out.Course.CourseID)
			} else {
				assert.Nil(t, out.Course)
			}
		})
	}
}

func TestInspectMatch_NeverAffectsFee(t *testing.T) {
	// Ярус слабее точного не должен назначать плату.
	out := InspectMatch(
		Student{Activity: "C1", Program: "Sculpting", Category: "Beginner"},
		[]Course{catalogCourse("C1", "Intro", "Beginner", 5000)},
	)
	assert.Equal(t, MatchActivityLevel, out.MatchType)
	assert.Equal(t, float64(0), ResolveFee(out))
}
