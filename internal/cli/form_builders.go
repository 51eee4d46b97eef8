package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/flowtik/flowtik/internal/domain"
)

// runTaskForm prompts for the task fields interactively, pre-filling any
// values already supplied by flags.
func runTaskForm(task *domain.Task) error {
	estimate := ""
	if task.EstimatedHours > 0 {
		estimate = strconv.FormatFloat(task.EstimatedHours, 'f', -1, 64)
	}
	assignee := ""
	if task.AssignedToID > 0 {
		assignee = strconv.FormatInt(task.AssignedToID, 10)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&task.Title).
				Validate(validateNonEmpty),
			huh.NewText().
				Title("Description (optional)").
				Value(&task.Description),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Estimated hours").
				Placeholder("2.5").
				Value(&estimate).
				Validate(validatePositiveFloat),
			huh.NewInput().
				Title("Assignee user ID").
				Value(&assignee).
				Validate(validatePositiveInt),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	task.EstimatedHours, _ = strconv.ParseFloat(strings.TrimSpace(estimate), 64)
	task.AssignedToID, _ = strconv.ParseInt(strings.TrimSpace(assignee), 10, 64)
	return nil
}

func validateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validatePositiveFloat(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number of hours")
	}
	return nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive integer ID")
	}
	return nil
}
