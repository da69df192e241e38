package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pelletier/go-toml/v2"

	"github.com/ANGRAJAKARNA/Build-codingLogic-AI/evalsrvc"
)

// evalcli judges a submission file locally against a TOML case file:
//
//	evalcli -src add.code -cases add.toml
//
// The case file names the target function and its (inputs, expected)
// pairs:
//
//	target = "add"
//
//	[[cases]]
//	inputs = [2, 3]
//	expected = 5
func main() {
	srcPath := flag.String("src", "", "path to the submission source file")
	casesPath := flag.String("cases", "", "path to the TOML test case file")
	target := flag.String("target", "", "target function name (overrides the case file)")
	flag.Parse()

	if *srcPath == "" || *casesPath == "" {
		fmt.Println("Usage: evalcli -src <file> -cases <file> [-target <name>]")
		os.Exit(2)
	}

	src, err := os.ReadFile(*srcPath)
	if err != nil {
		fmt.Printf("Error reading source: %v\n", err)
		os.Exit(1)
	}

	caseFile, err := readCaseFile(*casesPath)
	if err != nil {
		fmt.Printf("Error reading cases: %v\n", err)
		os.Exit(1)
	}
	if *target != "" {
		caseFile.Target = *target
	}

	subm := evalsrvc.Submission{
		SrcCode:    string(src),
		TargetName: caseFile.Target,
	}
	cases := make([]evalsrvc.TestCase, len(caseFile.Cases))
	for i, c := range caseFile.Cases {
		cases[i] = evalsrvc.TestCase{Inputs: c.Inputs, Expected: c.Expected}
	}

	p := tea.NewProgram(initialModel(subm, cases))
	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	m := final.(model)
	if m.eval == nil || !m.eval.Verdict.Passed {
		os.Exit(1)
	}
}

type caseFile struct {
	Target string `toml:"target"`
	Cases  []struct {
		Inputs   []any `toml:"inputs"`
		Expected any   `toml:"expected"`
	} `toml:"cases"`
}

func readCaseFile(path string) (*caseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf caseFile
	if err := toml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("invalid case file: %w", err)
	}
	if cf.Target == "" {
		return nil, fmt.Errorf("case file does not name a target function")
	}
	if len(cf.Cases) == 0 {
		return nil, fmt.Errorf("case file has no cases")
	}
	return &cf, nil
}
