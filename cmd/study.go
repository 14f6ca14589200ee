package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Riverstargroup/cultiva-finanzas/internal/achievements"
	"github.com/Riverstargroup/cultiva-finanzas/internal/content"
	"github.com/Riverstargroup/cultiva-finanzas/internal/progress"
)

var studyCmd = &cobra.Command{
	Use:   "study [scenario-id]",
	Short: "Play the next scenario (or a specific one)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := openDeps(cmd)
		if err != nil {
			return err
		}
		defer deps.Close()

		sc, err := pickScenario(cmd, deps, args)
		if err != nil {
			return err
		}
		if sc == nil {
			fmt.Println("¡Felicidades! Ya completaste todos los escenarios.")
			return nil
		}

		session := progress.NewSession(sc, time.Now())
		in := bufio.NewReader(cmd.InOrStdin())
		out := cmd.OutOrStdout()
		if err := playSession(session, in, out); err != nil {
			return err
		}

		sum, err := deps.orch.FinishSession(cmd.Context(), deps.userID, session)
		if err != nil {
			return err
		}
		printSummary(out, sum)
		return nil
	},
}

// pickScenario resolves the scenario to play: the positional arg if given,
// otherwise the first not-yet-completed scenario in course order. Returns
// nil when everything is done.
func pickScenario(cmd *cobra.Command, deps *appDeps, args []string) (*content.Scenario, error) {
	if len(args) == 1 {
		sc := deps.catalog.Scenario(args[0])
		if sc == nil {
			return nil, fmt.Errorf("unknown scenario %q", args[0])
		}
		return sc, nil
	}

	for _, course := range deps.catalog.Courses() {
		prog, err := deps.store.Progress().Get(cmd.Context(), deps.userID, course.ID)
		if err != nil {
			return nil, fmt.Errorf("read progress: %w", err)
		}
		for i := range course.Scenarios {
			sc := &course.Scenarios[i]
			if prog == nil || !prog.Completed(sc.ID) {
				return deps.catalog.Scenario(sc.ID), nil
			}
		}
	}
	return nil, nil
}

// playSession runs the attempt loop over stdin until the session is done.
func playSession(s *progress.Session, in *bufio.Reader, out io.Writer) error {
	sc := s.Scenario()
	fmt.Fprintf(out, "\n=== %s ===\n\n%s\n\n", sc.Title, sc.Prompt)
	for i, opt := range sc.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, opt.Text)
	}

	opt, err := promptOption(s, in, out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\n%s\n", opt.Feedback)
	if err := s.Continue(); err != nil {
		return err
	}

	for s.Step() == progress.StepRecall {
		q := s.CurrentQuestion()
		fmt.Fprintf(out, "\n%s\n", q.Question)
		for i, c := range q.Choices {
			fmt.Fprintf(out, "  %d) %s\n", i+1, c.Text)
		}
		n, err := promptNumber(in, out, len(q.Choices))
		if err != nil {
			return err
		}
		correct, err := s.AnswerRecall(q.Choices[n-1].ID)
		if err != nil {
			return err
		}
		if correct {
			fmt.Fprintln(out, "✓ Correcto.")
		} else {
			fmt.Fprintf(out, "✗ Incorrecto. %s\n", q.Explanation)
		}
	}
	return nil
}

func promptOption(s *progress.Session, in *bufio.Reader, out io.Writer) (*content.Option, error) {
	sc := s.Scenario()
	n, err := promptNumber(in, out, len(sc.Options))
	if err != nil {
		return nil, err
	}
	return s.Choose(sc.Options[n-1].ID)
}

// promptNumber reads a 1-based choice from in, re-asking on bad input.
func promptNumber(in *bufio.Reader, out io.Writer, max int) (int, error) {
	for {
		fmt.Fprintf(out, "\nElige (1-%d): ", max)
		line, err := in.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= max {
			return n, nil
		}
		fmt.Fprintln(out, "Opción inválida.")
	}
}

func printSummary(out io.Writer, sum *progress.FinishSummary) {
	fmt.Fprintf(out, "\nPuntaje: %.0f%%  (calidad %d/5)\n", sum.Score*100, sum.Quality)
	fmt.Fprintf(out, "Próximo repaso: %s (en %d día(s))\n",
		sum.Review.NextDueAt.Format("2006-01-02"), sum.Review.IntervalDays)
	if sum.CourseCompleted {
		fmt.Fprintln(out, "¡Curso completado!")
	}
	if sum.Streak > 1 {
		fmt.Fprintf(out, "Racha: %d días seguidos\n", sum.Streak)
	}
	for _, id := range sum.NewBadges {
		for _, b := range achievements.Catalog() {
			if b.ID == id {
				fmt.Fprintf(out, "🏅 Nueva insignia: %s — %s\n", b.Name, b.Description)
			}
		}
	}
	for _, stepErr := range sum.StepErrors {
		fmt.Fprintln(os.Stderr, "warning:", stepErr)
	}
}
