package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name         string
		fee          float64
		paid         float64
		matchType    MatchType
		wantBalance  float64
		wantStatus   string
		wantReminder bool
	}{
		{"unpaid", 5000, 0, MatchExactTriple, 5000, StatusPending, true},
		{"partially paid stays Pending", 5000, 4000, MatchExactTriple, 1000, StatusPending, true},
		{"fully paid", 5000, 5000, MatchExactTriple, 0, StatusPaid, false},
		{"overpayment floors at zero", 5000, 7000, MatchExactTriple, 0, StatusPaid, false},
		{"no match never reminds", 0, 0, MatchNone, 0, StatusPaid, false},
		{"no match with stray payments", 0, 3000, MatchNone, 0, StatusPaid, false},
		{"diagnostic tier never reminds", 0, 0, MatchActivityLevel, 0, StatusPaid, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeBalance(tc.fee, tc.paid, tc.matchType)
			assert.Equal(t, tc.wantBalance, got.Balance)
			assert.Equal(t, tc.wantStatus, got.Status)
			assert.Equal(t, tc.wantReminder, got.ReminderEligible)
		})
	}
}

func TestResolveFee(t *testing.T) {
	course := Course{CourseID: "C1", Name: "Intro", Level: "Beginner", PriceINR: 5000}

	assert.Equal(t, float64(5000), ResolveFee(MatchOutcome{Course: &course, MatchType: MatchExactTriple}))
	assert.Equal(t, float64(0), ResolveFee(MatchOutcome{MatchType: MatchNone}))
	// Диагностический ярус права на плату не имеет.
	assert.Equal(t, float64(0), ResolveFee(MatchOutcome{Course: &course, MatchType: MatchProgramOnly}))

	// Отрицательная цена в каталоге — мусор, трактуем как ноль.
	bad := course
	bad.PriceINR = -100
	assert.Equal(t, float64(0), ResolveFee(MatchOutcome{Course: &bad, MatchType: MatchExactTriple}))
}
