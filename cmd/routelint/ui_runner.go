package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"routelint/internal/analysis"
	"routelint/internal/ui"
)

type scanOutcome struct {
	result *analysis.Result
	err    error
}

// runScanWithUI runs the scan in its own goroutine and feeds its progress
// events into a Bubble Tea program. Analysis stays strictly sequential;
// the UI only consumes events.
func runScanWithUI(scanner *analysis.Scanner, root string) (*analysis.Result, error) {
	events := make(chan analysis.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	scanner.Progress = analysis.ChannelSink{Ch: events}
	go func() {
		res, err := scanner.Run(root)
		outcomeCh <- scanOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("scanning route modules", nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
