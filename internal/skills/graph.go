// Package skills holds the fixed skill graph and the mastery updater that
// nudges per-skill mastery on a scenario's first completion.
package skills

import (
	"fmt"
	"sort"
)

// Domain groups skills into one of the four learning paths.
type Domain string

const (
	DomainControl     Domain = "control"
	DomainCredito     Domain = "credito"
	DomainProteccion  Domain = "proteccion"
	DomainCrecimiento Domain = "crecimiento"
)

// Skill is one node of the fixed skill graph.
type Skill struct {
	ID            string
	Domain        Domain
	Title         string
	Prerequisites []string
}

// seedSkills is the closed skill catalog. Prerequisite edges form the
// per-domain progression paths.
var seedSkills = []Skill{
	// Control path
	{ID: "control_basics", Domain: DomainControl, Title: "Control de gastos"},
	{ID: "spending_leaks", Domain: DomainControl, Title: "Fugas de gasto", Prerequisites: []string{"control_basics"}},
	{ID: "budget_3_buckets", Domain: DomainControl, Title: "Presupuesto de 3 cubetas", Prerequisites: []string{"spending_leaks"}},
	{ID: "emergency_fund", Domain: DomainControl, Title: "Fondo de emergencia", Prerequisites: []string{"budget_3_buckets"}},
	{ID: "auto_saving", Domain: DomainControl, Title: "Ahorro automático", Prerequisites: []string{"emergency_fund"}},
	// Crédito path
	{ID: "credit_basics", Domain: DomainCredito, Title: "Crédito básico"},
	{ID: "credit_score", Domain: DomainCredito, Title: "Historial crediticio", Prerequisites: []string{"credit_basics"}},
	{ID: "min_payment_trap", Domain: DomainCredito, Title: "Trampa del pago mínimo", Prerequisites: []string{"credit_score"}},
	{ID: "rate_compare", Domain: DomainCredito, Title: "Comparar tasas", Prerequisites: []string{"min_payment_trap"}},
	{ID: "snowball_avalanche", Domain: DomainCredito, Title: "Bola de nieve y avalancha", Prerequisites: []string{"rate_compare"}},
	{ID: "debt_plan_30d", Domain: DomainCredito, Title: "Plan de deuda en 30 días", Prerequisites: []string{"snowball_avalanche"}},
	// Protección path
	{ID: "fraud_basics", Domain: DomainProteccion, Title: "Fraudes comunes"},
	{ID: "identity_protection", Domain: DomainProteccion, Title: "Protección de identidad", Prerequisites: []string{"fraud_basics"}},
	// Crecimiento path
	{ID: "inflation_basics", Domain: DomainCrecimiento, Title: "Inflación"},
	{ID: "investing_basics", Domain: DomainCrecimiento, Title: "Inversión básica", Prerequisites: []string{"inflation_basics"}},
}

// graph holds the skill DAG with precomputed indices.
type graph struct {
	skills []Skill
	byID   map[string]*Skill
}

// g is the package-level graph singleton, built at init.
var g = buildGraph(seedSkills)

// buildGraph constructs and validates the graph. The seed is fixed, so any
// failure is a programmer error.
func buildGraph(skills []Skill) *graph {
	gr := &graph{
		skills: skills,
		byID:   make(map[string]*Skill, len(skills)),
	}
	for i := range gr.skills {
		s := &gr.skills[i]
		if _, dup := gr.byID[s.ID]; dup {
			panic(fmt.Sprintf("skills: duplicate skill id %q", s.ID))
		}
		gr.byID[s.ID] = s
	}
	for i := range gr.skills {
		for _, prereq := range gr.skills[i].Prerequisites {
			if _, ok := gr.byID[prereq]; !ok {
				panic(fmt.Sprintf("skills: %q has unknown prerequisite %q", gr.skills[i].ID, prereq))
			}
		}
	}
	if err := checkAcyclic(gr); err != nil {
		panic("skills: " + err.Error())
	}
	return gr
}

// checkAcyclic runs Kahn's algorithm; leftover nodes mean a cycle.
func checkAcyclic(gr *graph) error {
	inDegree := make(map[string]int, len(gr.skills))
	dependents := make(map[string][]string)
	for i := range gr.skills {
		inDegree[gr.skills[i].ID] = len(gr.skills[i].Prerequisites)
		for _, prereq := range gr.skills[i].Prerequisites {
			dependents[prereq] = append(dependents[prereq], gr.skills[i].ID)
		}
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, dep := range dependents[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}
	if visited != len(gr.skills) {
		return fmt.Errorf("skill graph contains a cycle")
	}
	return nil
}

// AllSkills returns every skill in the catalog.
func AllSkills() []Skill {
	out := make([]Skill, len(g.skills))
	copy(out, g.skills)
	return out
}

// SkillByID returns the skill with the given id, or nil.
func SkillByID(id string) *Skill {
	return g.byID[id]
}

// SkillsForTags maps content tags to the union of their skill ids, sorted
// for deterministic iteration. Unknown tags map to nothing.
func SkillsForTags(tags []string) []string {
	set := make(map[string]bool)
	for _, tag := range tags {
		for _, id := range TagSkills[tag] {
			set[id] = true
		}
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
