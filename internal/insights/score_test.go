package insights

import (
	"testing"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
	"github.com/stretchr/testify/assert"
)

func repeatInsights(typ string, n int) []Insight {
	out := make([]Insight, n)
	for i := range out {
		out[i] = Insight{Type: typ}
	}
	return out
}

func repeatRecs(n int) []Recommendation {
	out := make([]Recommendation, n)
	for i := range out {
		out[i] = Recommendation{Title: "rec"}
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		list []Insight
		recs []Recommendation
		want int
	}{
		{
			name: "three achievements two warnings four recommendations",
			list: append(repeatInsights(models.InsightAchievement, 3),
				repeatInsights(models.InsightWarning, 2)...),
			recs: repeatRecs(4),
			want: 79, // 70 + 9 - 4 + 4
		},
		{
			name: "empty input keeps the base",
			want: 70,
		},
		{
			name: "recommendations cap at five",
			recs: repeatRecs(12),
			want: 75,
		},
		{
			name: "suggestions and features do not move the score",
			list: append(repeatInsights(models.InsightSuggestion, 4),
				repeatInsights(models.InsightFeature, 2)...),
			want: 70,
		},
		{
			name: "clamped at 100",
			list: repeatInsights(models.InsightAchievement, 15),
			want: 100,
		},
		{
			name: "clamped at 0",
			list: repeatInsights(models.InsightWarning, 40),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.list, tt.recs))
		})
	}
}

func TestRecommend(t *testing.T) {
	now := time.Date(2026, time.May, 20, 0, 0, 0, 0, time.UTC)

	t.Run("expenses without a goal recommend a reserve", func(t *testing.T) {
		snap := snapshotAt(now)
		snap.Transactions = []models.Transaction{
			{Type: models.TransactionExpense, Category: "lazer", Amount: 500},
		}
		recs := Recommend(snap)
		titles := make([]string, len(recs))
		for i, r := range recs {
			titles[i] = r.Title
		}
		assert.Contains(t, titles, "Crie uma reserva de emergência")
	})

	t.Run("recurring expenses recommend a review", func(t *testing.T) {
		snap := snapshotAt(now)
		snap.Transactions = []models.Transaction{
			{Type: models.TransactionExpense, Category: "streaming", Amount: 50, IsRecurring: true},
		}
		snap.Goals = []models.FinancialGoal{{TargetAmount: 1000}}
		recs := Recommend(snap)
		found := false
		for _, r := range recs {
			if r.Title == "Revise despesas recorrentes" {
				found = true
			}
		}
		assert.True(t, found)
	})
}
