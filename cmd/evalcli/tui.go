package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/evalsrvc"
)

var (
	passStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
	msgStyle = lipgloss.NewStyle().
			PaddingLeft(2)
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type model struct {
	spinner spinner.Model
	subm    evalsrvc.Submission
	cases   []evalsrvc.TestCase

	eval *evalsrvc.Evaluation
	err  error
}

type evalDoneMsg struct {
	eval evalsrvc.Evaluation
	err  error
}

func initialModel(subm evalsrvc.Submission, cases []evalsrvc.TestCase) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return model{spinner: s, subm: subm, cases: cases}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.runEvaluation())
}

func (m model) runEvaluation() tea.Cmd {
	return func() tea.Msg {
		srvc := evalsrvc.NewEvalSrvc()
		eval, err := srvc.Evaluate(context.Background(), m.subm, m.cases)
		return evalDoneMsg{eval: eval, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case evalDoneMsg:
		if msg.err != nil {
			m.err = msg.err
		} else {
			eval := msg.eval
			m.eval = &eval
		}
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m model) View() string {
	if m.err != nil {
		return failStyle.Render("request rejected: ") + m.err.Error() + "\n"
	}
	if m.eval == nil {
		return fmt.Sprintf("%s judging %q against %d case(s)...\n",
			m.spinner.View(), m.subm.TargetName, len(m.cases))
	}

	verdict := m.eval.Verdict
	header := failStyle.Render("FAILED")
	if verdict.Passed {
		header = passStyle.Render("PASSED")
	}
	out := fmt.Sprintf("%s %s\n", header,
		dimStyle.Render(fmt.Sprintf("(%d/%d cases, category %s)",
			m.eval.CasesPassed, m.eval.CasesTotal, verdict.Category)))
	out += msgStyle.Render(verdict.Message) + "\n"
	return out
}
