// Package agent distributes task hours across workdays. An AI
// allocation is attempted first when a model is configured; any
// failure there degrades silently to the deterministic strategies.
package agent

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/minqi/tsgen/internal/llm"
	"github.com/minqi/tsgen/internal/models"
)

// ErrEmptyInput marks validation failures that abort a generation run
var ErrEmptyInput = errors.New("empty input")

// Agent allocates task hours to workdays and writes work descriptions
type Agent struct {
	client *llm.Client // nil when no model is configured
	rng    *rand.Rand
}

// Output is the distributor's result for one run
type Output struct {
	DailyAssignments []models.DailyAssignment
	Warnings         []string
	UsedAI           bool
}

// New creates an Agent. client may be nil (deterministic only); rng
// may be nil, in which case a time-seeded source is used.
func New(client *llm.Client, rng *rand.Rand) *Agent {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Agent{client: client, rng: rng}
}

// Process validates the inputs and produces one DailyAssignment per
// available workday. Tasks are never mutated; strategies work on a
// private copy.
func (a *Agent) Process(ctx context.Context, tasks []models.Task, workDays []models.WorkDay, mode string) (*Output, error) {
	if len(tasks) == 0 {
		return nil, fmt.Errorf("%w: add at least one task", ErrEmptyInput)
	}
	if len(workDays) == 0 {
		return nil, fmt.Errorf("%w: the workday list must not be empty", ErrEmptyInput)
	}

	out := &Output{}

	validDays := make([]models.WorkDay, 0, len(workDays))
	availableHours := 0.0
	for _, day := range workDays {
		if day.IsWorkday && !day.IsHoliday {
			validDays = append(validDays, day)
			availableHours += day.PlannedHours
		}
	}
	if len(validDays) == 0 {
		return nil, fmt.Errorf("%w: no available workdays in the selected range", ErrEmptyInput)
	}

	requestedHours := 0.0
	for _, task := range tasks {
		requestedHours += task.TotalHours
	}
	if requestedHours > availableHours {
		out.Warnings = append(out.Warnings,
			fmt.Sprintf("requested hours (%.2fh) exceed available workday hours (%.2fh); some tasks may stay unallocated", requestedHours, availableHours))
	}

	if a.client != nil {
		assignments, err := a.distributeWithAI(ctx, tasks, validDays, mode)
		if err == nil {
			out.DailyAssignments = assignments
			out.UsedAI = true
		} else {
			out.Warnings = append(out.Warnings, fmt.Sprintf("AI allocation failed, using %s strategy: %v", modeOrDefault(mode), err))
		}
	}

	if !out.UsedAI {
		allocatable := allocatableTasks(tasks)
		switch mode {
		case models.ModePriority:
			out.DailyAssignments = a.distributeByPriority(allocatable, validDays)
		case models.ModeFeature:
			out.DailyAssignments = a.distributeByFeature(allocatable, validDays)
		default:
			out.DailyAssignments = a.distributeByDaily(allocatable, validDays)
		}
	}

	if a.client != nil {
		if err := a.enhanceDescriptions(ctx, out.DailyAssignments, tasks); err != nil {
			out.Warnings = append(out.Warnings, fmt.Sprintf("AI description pass failed, keeping generated descriptions: %v", err))
		}
	}

	return out, nil
}

// allocatableTasks copies the tasks that actually consume hours.
// Reference tasks ride along only in AI prompts.
func allocatableTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.TotalHours > 0 {
			out = append(out, t)
		}
	}
	return out
}

func modeOrDefault(mode string) string {
	switch mode {
	case models.ModePriority, models.ModeFeature:
		return mode
	default:
		return models.ModeDaily
	}
}
