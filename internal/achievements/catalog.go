// Package achievements evaluates the fixed badge rule catalog after every
// completion and unlocks badges idempotently.
package achievements

// Badge ids. The catalog is closed: rules and storage only ever reference
// these.
const (
	BadgeFirstSteps      = "first_steps"
	BadgeSteadyLearner   = "steady_learner"
	BadgeFinancialMaster = "financial_master"
	BadgeDebtExpert      = "debt_expert"
	BadgeSaver           = "saver"
	BadgeStreak3         = "streak_3"
	BadgeStreak7         = "streak_7"
)

// Badge describes one badge for display.
type Badge struct {
	ID          string
	Name        string
	Description string
	Icon        string
}

// Catalog returns all badges in display order.
func Catalog() []Badge {
	return []Badge{
		{ID: BadgeFirstSteps, Name: "Primeros Brotes", Description: "Completa tu primer escenario", Icon: "Sprout"},
		{ID: BadgeSteadyLearner, Name: "Aprendiz Constante", Description: "Completa 3 escenarios", Icon: "BookOpen"},
		{ID: BadgeFinancialMaster, Name: "Maestro Financiero", Description: "Completa todos los escenarios de un curso", Icon: "Trophy"},
		{ID: BadgeDebtExpert, Name: "Experto en Poda", Description: "Completa un escenario sobre deudas", Icon: "CreditCard"},
		{ID: BadgeSaver, Name: "Sembrador de Ahorro", Description: "Completa un escenario sobre ahorro", Icon: "PiggyBank"},
		{ID: BadgeStreak3, Name: "Racha de 3 Días", Description: "3 días consecutivos de actividad", Icon: "Flame"},
		{ID: BadgeStreak7, Name: "Racha Semanal", Description: "7 días consecutivos de actividad", Icon: "Zap"},
	}
}
