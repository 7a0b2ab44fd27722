// Package insights evaluates a fixed registry of advisory rules over a
// snapshot of one user's financial records. Rules are independent pure
// functions; evaluation order is the registry order and every rule
// runs unconditionally.
package insights

import (
	"fmt"
	"time"

	"github.com/mywealth360/finance-service/internal/models"
	"github.com/mywealth360/finance-service/internal/valuation"
)

// Snapshot holds everything the rules read for one user
type Snapshot struct {
	UserID       int64
	Now          time.Time
	Transactions []models.Transaction
	Investments  []models.Investment
	Bills        []models.Bill
	Goals        []models.FinancialGoal
	RealEstates  []models.RealEstate
	Vehicles     []models.Vehicle
}

// Insight is one generated advisory message
type Insight struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
}

// Recommendation is an actionable tip returned alongside insights
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Rule maps a snapshot to zero or more insights
type Rule struct {
	Name     string
	Evaluate func(*Snapshot) []Insight
}

// Registry returns the rules in evaluation order
func Registry() []Rule {
	return []Rule{
		{Name: "top-expense-category", Evaluate: topExpenseCategory},
		{Name: "investment-diversity", Evaluate: investmentDiversity},
		{Name: "low-performing-investment", Evaluate: lowPerformingInvestment},
		{Name: "overdue-bills", Evaluate: overdueBills},
		{Name: "goal-progress", Evaluate: goalProgress},
		{Name: "unrented-property", Evaluate: unrentedProperty},
		{Name: "low-rent-yield", Evaluate: lowRentYield},
		{Name: "vehicle-depreciation", Evaluate: vehicleDepreciation},
		{Name: "feature-announcements", Evaluate: featureAnnouncements},
	}
}

// Generate runs every registered rule over the snapshot and returns
// the concatenated insights in registry order.
func Generate(snap *Snapshot) []Insight {
	var out []Insight
	for _, rule := range Registry() {
		out = append(out, rule.Evaluate(snap)...)
	}
	return out
}

func topExpenseCategory(snap *Snapshot) []Insight {
	totals := make(map[string]float64)
	for _, tx := range snap.Transactions {
		if tx.Type == models.TransactionExpense {
			totals[tx.Category] += tx.Amount
		}
	}
	var topCategory string
	var topTotal float64
	for category, total := range totals {
		if total > topTotal || (total == topTotal && topCategory == "") {
			topCategory = category
			topTotal = total
		}
	}
	if topCategory == "" || topTotal <= 0 {
		return nil
	}
	savings := topTotal * 0.20
	return []Insight{{
		Type:     models.InsightWarning,
		Title:    "Maior categoria de gastos",
		Priority: models.PriorityHigh,
		Description: fmt.Sprintf(
			"Sua maior categoria de gastos é %q, com R$ %.2f. Reduzindo 20%%, você economizaria R$ %.2f por período.",
			topCategory, topTotal, savings),
	}}
}

func investmentDiversity(snap *Snapshot) []Insight {
	types := make(map[string]struct{})
	for _, inv := range snap.Investments {
		types[inv.Type] = struct{}{}
	}
	if len(snap.Investments) == 0 || len(types) >= 3 {
		return nil
	}
	return []Insight{{
		Type:     models.InsightSuggestion,
		Title:    "Diversifique seus investimentos",
		Priority: models.PriorityMedium,
		Description: fmt.Sprintf(
			"Você possui apenas %d tipo(s) de investimento. Diversificar entre renda fixa, ações e fundos imobiliários reduz riscos.",
			len(types)),
	}}
}

func lowPerformingInvestment(snap *Snapshot) []Insight {
	for _, inv := range snap.Investments {
		if inv.InterestRate < 5 || inv.DividendYield < 3 {
			return []Insight{{
				Type:     models.InsightSuggestion,
				Title:    "Reotimize seus investimentos",
				Priority: models.PriorityMedium,
				Description: fmt.Sprintf(
					"O investimento %q está com rendimento baixo. Considere realocar para opções mais rentáveis.",
					inv.Name),
			}}
		}
	}
	return nil
}

func overdueBills(snap *Snapshot) []Insight {
	count := 0
	for _, bill := range snap.Bills {
		if bill.PaymentStatus != models.BillPaid && bill.NextDue.Before(snap.Now) {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return []Insight{{
		Type:     models.InsightWarning,
		Title:    "Contas vencidas",
		Priority: models.PriorityHigh,
		Description: fmt.Sprintf(
			"Você tem %d conta(s) vencida(s) e não paga(s). Regularize para evitar juros e multas.",
			count),
	}}
}

func goalProgress(snap *Snapshot) []Insight {
	var out []Insight
	for _, goal := range snap.Goals {
		if goal.TargetAmount <= 0 {
			continue
		}
		progress := goal.CurrentAmount / goal.TargetAmount
		switch {
		case progress >= 1:
			out = append(out, Insight{
				Type:     models.InsightAchievement,
				Title:    "Meta alcançada",
				Priority: models.PriorityMedium,
				Description: fmt.Sprintf(
					"Parabéns! Você atingiu 100%% da meta %q.", goal.Name),
			})
		case progress >= 0.75:
			out = append(out, Insight{
				Type:     models.InsightAchievement,
				Title:    "Meta quase lá",
				Priority: models.PriorityMedium,
				Description: fmt.Sprintf(
					"Você já completou %.0f%% da meta %q. Falta pouco!", progress*100, goal.Name),
			})
		}
		if progress < 1 && goal.TargetDate.Before(snap.Now) {
			out = append(out, Insight{
				Type:     models.InsightWarning,
				Title:    "Meta atrasada",
				Priority: models.PriorityHigh,
				Description: fmt.Sprintf(
					"A meta %q passou da data alvo com %.0f%% concluído. Revise o prazo ou os aportes.",
					goal.Name, progress*100),
			})
		}
	}
	return out
}

func unrentedProperty(snap *Snapshot) []Insight {
	count := 0
	for _, re := range snap.RealEstates {
		if !re.IsRented {
			count++
		}
	}
	if count == 0 {
		return nil
	}
	return []Insight{{
		Type:     models.InsightSuggestion,
		Title:    "Imóvel sem renda",
		Priority: models.PriorityMedium,
		Description: fmt.Sprintf(
			"Você possui %d imóvel(is) sem aluguel. Alugar geraria renda passiva mensal.", count),
	}}
}

func lowRentYield(snap *Snapshot) []Insight {
	for _, re := range snap.RealEstates {
		if !re.IsRented {
			continue
		}
		yield := valuation.RealEstateAnnualYield(&re)
		if yield > 0 && yield < 4 {
			return []Insight{{
				Type:     models.InsightSuggestion,
				Title:    "Rentabilidade de aluguel baixa",
				Priority: models.PriorityMedium,
				Description: fmt.Sprintf(
					"O imóvel %q rende %.1f%% ao ano, abaixo dos 4%% de referência. Avalie reajustar o aluguel.",
					re.Name, yield),
			}}
		}
	}
	return nil
}

func vehicleDepreciation(snap *Snapshot) []Insight {
	for _, v := range snap.Vehicles {
		if v.DepreciationRate > 15 {
			return []Insight{{
				Type:     models.InsightWarning,
				Title:    "Depreciação acelerada",
				Priority: models.PriorityHigh,
				Description: fmt.Sprintf(
					"O veículo %q deprecia %.0f%% ao ano. Considere o impacto no seu patrimônio.",
					v.Name, v.DepreciationRate),
			}}
		}
	}
	return nil
}

func featureAnnouncements(_ *Snapshot) []Insight {
	return []Insight{
		{
			Type:        models.InsightFeature,
			Title:       "Alertas por e-mail",
			Priority:    models.PriorityLow,
			Description: "Configure alertas por e-mail e receba resumos diários ou semanais das suas finanças.",
		},
		{
			Type:        models.InsightFeature,
			Title:       "Cotação do dólar",
			Priority:    models.PriorityLow,
			Description: "Ativos em dólar agora são convertidos automaticamente pela cotação PTAX do Banco Central.",
		},
	}
}
