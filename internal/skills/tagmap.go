package skills

// TagSkills is the fixed content-tag to skill-ids table. A scenario tag may
// touch several skills; a skill may be fed by several tags.
var TagSkills = map[string][]string{
	"presupuesto": {"control_basics", "spending_leaks", "budget_3_buckets"},
	"ahorro":      {"emergency_fund", "auto_saving"},
	"credito":     {"credit_basics", "credit_score"},
	"deuda":       {"min_payment_trap", "rate_compare", "snowball_avalanche"},
	"fraude":      {"fraud_basics", "identity_protection"},
	"inflacion":   {"inflation_basics"},
	"inversion":   {"investing_basics"},
}
