package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

// Select shows a single-choice prompt and returns the chosen index
func Select(label string, items []string, defaultIndex int) (int, error) {
	if len(items) == 0 {
		return 0, fmt.Errorf("no items to select from")
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     items,
		Size:      12,
		CursorPos: defaultIndex,
		Searcher: func(input string, index int) bool {
			return strings.Contains(strings.ToLower(items[index]), strings.ToLower(input))
		},
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return 0, fmt.Errorf("prompt failed: %w", err)
	}
	return idx, nil
}

// Confirm asks a y/n question. Answering no is not an error.
func Confirm(label string, defaultYes bool) (bool, error) {
	def := "n"
	if defaultYes {
		def = "y"
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Default:   def,
	}

	answer, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// Input asks for free text, falling back to defaultValue on empty input
func Input(label, defaultValue string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Default:   defaultValue,
		AllowEdit: true,
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" && defaultValue == "" {
				return errors.New("value cannot be empty")
			}
			return nil
		},
	}

	answer, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if answer = strings.TrimSpace(answer); answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}
