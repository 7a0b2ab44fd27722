package insights

import "github.com/mywealth360/finance-service/internal/models"

// Score weights
const (
	scoreBase                = 70
	achievementBonus         = 3
	warningPenalty           = 2
	recommendationBonus      = 1
	maxScoredRecommendations = 5
)

// Score computes the financial health score from the generated
// insights and recommendations: base 70, +3 per achievement, -2 per
// warning, +1 per recommendation capped at 5, clamped to [0, 100].
func Score(list []Insight, recs []Recommendation) int {
	score := scoreBase
	for _, in := range list {
		switch in.Type {
		case models.InsightAchievement:
			score += achievementBonus
		case models.InsightWarning:
			score -= warningPenalty
		}
	}
	recCount := len(recs)
	if recCount > maxScoredRecommendations {
		recCount = maxScoredRecommendations
	}
	score += recCount * recommendationBonus
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Recommend derives actionable recommendations from the snapshot.
// Like the rules, each check is independent and order is fixed.
func Recommend(snap *Snapshot) []Recommendation {
	var out []Recommendation

	hasExpense := false
	hasRecurringExpense := false
	for _, tx := range snap.Transactions {
		if tx.Type == models.TransactionExpense {
			hasExpense = true
			if tx.IsRecurring {
				hasRecurringExpense = true
			}
		}
	}

	hasReserveGoal := false
	for _, goal := range snap.Goals {
		if goal.Status != "completed" && goal.TargetAmount > 0 {
			hasReserveGoal = true
			break
		}
	}
	if hasExpense && !hasReserveGoal {
		out = append(out, Recommendation{
			Title:       "Crie uma reserva de emergência",
			Description: "Defina uma meta equivalente a 6 meses de despesas para imprevistos.",
		})
	}

	types := make(map[string]struct{})
	for _, inv := range snap.Investments {
		types[inv.Type] = struct{}{}
	}
	if len(types) < 3 {
		out = append(out, Recommendation{
			Title:       "Diversifique a carteira",
			Description: "Distribua os aportes entre classes de ativos diferentes para reduzir riscos.",
		})
	}

	if hasRecurringExpense {
		out = append(out, Recommendation{
			Title:       "Revise despesas recorrentes",
			Description: "Assinaturas e mensalidades acumulam: cancele o que não usa mais.",
		})
	}

	for _, bill := range snap.Bills {
		if bill.IsActive && !bill.EmailReminder {
			out = append(out, Recommendation{
				Title:       "Ative lembretes de contas",
				Description: "Receba um e-mail antes do vencimento e evite atrasos.",
			})
			break
		}
	}

	return out
}
