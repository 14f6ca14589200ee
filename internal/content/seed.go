package content

// pilotCourse is the built-in "Fundamentos Financieros" course. Production
// content ships from the authoring pipeline; this course seeds fresh
// installs and drives the engine's own tests.
var pilotCourse = Course{
	ID:               "course-pilot-001",
	Slug:             "fundamentos-financieros",
	Title:            "Fundamentos Financieros",
	Description:      "Aprende a tomar mejores decisiones con tu dinero a través de 5 escenarios reales de la vida cotidiana.",
	Level:            "basico",
	EstimatedMinutes: 30,
	SortOrder:        1,
	Scenarios: []Scenario{
		{
			ID:         "scenario-001",
			OrderIndex: 1,
			Title:      "Aguinaldo",
			Prompt:     "Recibes tu aguinaldo, ¿qué haces?",
			Tags:       []string{"ahorro", "presupuesto"},
			Mission:    "Esta semana, aparta el 10% de cualquier ingreso extra que recibas.",
			Options: []Option{
				{ID: "opt_a", Text: "Gastar todo en algo que siempre quise", Feedback: "Darse un gusto está bien, pero sin un plan podrías terminar el mes sin ahorros. Considera reservar al menos una parte.", IsBest: false},
				{ID: "opt_b", Text: "Ahorrar el 50% e invertir el resto", Feedback: "¡Excelente! Dividir tu aguinaldo entre ahorro e inversión te da seguridad y crecimiento a largo plazo.", IsBest: true},
				{ID: "opt_c", Text: "Pagar deudas pendientes", Feedback: "Buena opción si tienes deudas con intereses altos. Liberarte de deudas es una forma de inversión en tu tranquilidad.", IsBest: false},
			},
			Recall: []RecallQuestion{
				{
					ID:       "recall-001a",
					Question: "¿Qué porcentaje del aguinaldo conviene destinar a ahorro e inversión?",
					Choices: []RecallChoice{
						{ID: "a", Text: "Nada, es para disfrutarse"},
						{ID: "b", Text: "La mitad o más"},
						{ID: "c", Text: "Solo lo que sobre al final del mes"},
					},
					CorrectChoiceID: "b",
					Explanation:     "Reservar al menos la mitad combina seguridad inmediata con crecimiento a largo plazo.",
				},
			},
		},
		{
			ID:         "scenario-002",
			OrderIndex: 2,
			Title:      "Presupuesto",
			Prompt:     "Tu ingreso mensual es $12,000, ¿cómo lo distribuyes?",
			Tags:       []string{"presupuesto"},
			Options: []Option{
				{ID: "opt_a", Text: "50% necesidades, 30% gustos, 20% ahorro", Feedback: "¡La regla 50/30/20! Es un marco probado que balancea tus necesidades actuales con tu futuro financiero.", IsBest: true},
				{ID: "opt_b", Text: "80% gastos del mes, 20% salidas", Feedback: "Sin un porcentaje dedicado al ahorro, cualquier imprevisto podría desbalancear tus finanzas.", IsBest: false},
				{ID: "opt_c", Text: "Gasto según vaya surgiendo", Feedback: "Sin plan es fácil perder el control. Un presupuesto básico te ayuda a saber a dónde va tu dinero.", IsBest: false},
			},
			Recall: []RecallQuestion{
				{
					ID:       "recall-002a",
					Question: "En la regla 50/30/20, ¿qué representa el 20%?",
					Choices: []RecallChoice{
						{ID: "a", Text: "Gustos y entretenimiento"},
						{ID: "b", Text: "Necesidades básicas"},
						{ID: "c", Text: "Ahorro"},
					},
					CorrectChoiceID: "c",
					Explanation:     "El 20% se destina al ahorro: es la parte que trabaja para tu futuro.",
				},
				{
					ID:       "recall-002b",
					Question: "¿Cuál es el mayor riesgo de gastar 'según vaya surgiendo'?",
					Choices: []RecallChoice{
						{ID: "a", Text: "Perder el control de a dónde va el dinero"},
						{ID: "b", Text: "Pagar de más en impuestos"},
						{ID: "c", Text: "Que el banco cobre comisiones"},
					},
					CorrectChoiceID: "a",
					Explanation:     "Sin presupuesto no hay visibilidad, y sin visibilidad no hay control.",
				},
			},
		},
		{
			ID:         "scenario-003",
			OrderIndex: 3,
			Title:      "Tarjeta de crédito",
			Prompt:     "Tienes una deuda de tarjeta de crédito, ¿qué estrategia sigues?",
			Tags:       []string{"deuda"},
			Mission:    "Revisa la tasa de interés de cada una de tus deudas y ordénalas de mayor a menor.",
			Options: []Option{
				{ID: "opt_a", Text: "Pagar solo el mínimo cada mes", Feedback: "Pagar el mínimo puede costarte años de intereses. Los intereses compuestos trabajan en tu contra.", IsBest: false},
				{ID: "opt_b", Text: "Pagar más del mínimo enfocándome en la deuda más cara", Feedback: "¡Correcto! Atacar primero la deuda con mayor tasa de interés (método avalancha) te ahorra más dinero.", IsBest: true},
				{ID: "opt_c", Text: "Sacar otro crédito para pagar este", Feedback: "Endeudarte para pagar deuda rara vez funciona. Puede convertirse en un ciclo peligroso.", IsBest: false},
			},
			Recall: []RecallQuestion{
				{
					ID:       "recall-003a",
					Question: "¿Qué deuda conviene atacar primero con el método avalancha?",
					Choices: []RecallChoice{
						{ID: "a", Text: "La de menor monto"},
						{ID: "b", Text: "La de mayor tasa de interés"},
						{ID: "c", Text: "La más antigua"},
					},
					CorrectChoiceID: "b",
					Explanation:     "La deuda más cara es la que más intereses genera; eliminarla primero ahorra más dinero.",
				},
			},
		},
		{
			ID:         "scenario-004",
			OrderIndex: 4,
			Title:      "Fondo de emergencia",
			Prompt:     "Se descompone tu refrigerador y reemplazarlo cuesta $8,000, ¿cómo lo pagas?",
			Tags:       []string{"ahorro"},
			Options: []Option{
				{ID: "opt_a", Text: "Usar mi fondo de emergencia", Feedback: "¡Para eso existe! Un fondo de emergencia de 3-6 meses de gastos te protege sin recurrir a deudas.", IsBest: true},
				{ID: "opt_b", Text: "Pedir prestado a familiares", Feedback: "Puede funcionar a corto plazo, pero depender de otros no es sostenible. Mejor construir tu propio colchón.", IsBest: false},
				{ID: "opt_c", Text: "Usar la tarjeta de crédito", Feedback: "Si no puedes pagar el total al corte, los intereses convertirán $8,000 en mucho más. Úsala solo como último recurso.", IsBest: false},
			},
			Recall: []RecallQuestion{
				{
					ID:       "recall-004a",
					Question: "¿De qué tamaño debería ser un fondo de emergencia?",
					Choices: []RecallChoice{
						{ID: "a", Text: "Una semana de gastos"},
						{ID: "b", Text: "3 a 6 meses de gastos"},
						{ID: "c", Text: "Un año de ingresos"},
					},
					CorrectChoiceID: "b",
					Explanation:     "Entre 3 y 6 meses de gastos cubre la mayoría de los imprevistos sin inmovilizar demasiado dinero.",
				},
			},
		},
		{
			ID:         "scenario-005",
			OrderIndex: 5,
			Title:      "CETES",
			Prompt:     "Lograste ahorrar $5,000, ¿dónde los pones?",
			Tags:       []string{"inversion", "inflacion"},
			Options: []Option{
				{ID: "opt_a", Text: "Dejarlos en la cuenta de ahorro del banco", Feedback: "Las cuentas de ahorro dan rendimientos muy bajos, a veces por debajo de la inflación. Tu dinero pierde valor.", IsBest: false},
				{ID: "opt_b", Text: "Invertir en CETES a 28 días", Feedback: "¡Buena elección! CETES es seguro (respaldado por el gobierno), accesible desde $100 y da mejores rendimientos que el banco.", IsBest: true},
				{ID: "opt_c", Text: "Comprar criptomonedas", Feedback: "Las cripto pueden dar altos rendimientos pero son muy volátiles. No es ideal para tus primeros ahorros.", IsBest: false},
			},
			Recall: []RecallQuestion{
				{
					ID:       "recall-005a",
					Question: "¿Por qué una cuenta de ahorro tradicional puede hacerte perder dinero?",
					Choices: []RecallChoice{
						{ID: "a", Text: "Por las comisiones de la tarjeta"},
						{ID: "b", Text: "Porque su rendimiento suele quedar debajo de la inflación"},
						{ID: "c", Text: "Porque el banco puede quebrar"},
					},
					CorrectChoiceID: "b",
					Explanation:     "Si la inflación supera el rendimiento, el poder de compra del ahorro se reduce cada año.",
				},
			},
		},
	},
}

// SeedCourses returns copies of the built-in published courses.
func SeedCourses() []Course {
	return []Course{pilotCourse}
}

// DefaultCatalog returns the catalog of built-in courses. The seed data is
// validated at startup; an invalid seed is a programmer error.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(SeedCourses())
	if err != nil {
		panic("content: invalid seed catalog: " + err.Error())
	}
	return c
}
