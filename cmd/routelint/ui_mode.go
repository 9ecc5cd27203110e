package main

import (
	"fmt"
	"os"
	"strings"
)

// uiSetting is the parsed --ui flag. Auto keeps piped scans plain text
// and reserves the progress view for interactive terminals.
type uiSetting int

const (
	uiAuto uiSetting = iota
	uiOn
	uiOff
)

func parseUISetting(raw string) (uiSetting, error) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "", "auto":
		return uiAuto, nil
	case "on":
		return uiOn, nil
	case "off":
		return uiOff, nil
	}
	return uiAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", raw)
}

// wantProgressUI reports whether the scan should render the live
// progress view under this setting.
func (s uiSetting) wantProgressUI() bool {
	switch s {
	case uiOn:
		return true
	case uiOff:
		return false
	}
	return isTerminal(os.Stdout)
}
