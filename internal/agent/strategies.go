package agent

import (
	"math"
	"sort"

	"github.com/minqi/tsgen/internal/models"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// distributeByDaily spreads the task pool evenly: each workday gets
// min(average, planned) hours, split across tasks in proportion to
// their share of the total.
func (a *Agent) distributeByDaily(tasks []models.Task, workDays []models.WorkDay) []models.DailyAssignment {
	totalTaskHours := 0.0
	for _, t := range tasks {
		totalTaskHours += t.TotalHours
	}

	assignments := make([]models.DailyAssignment, 0, len(workDays))
	for _, day := range workDays {
		assignment := models.DailyAssignment{Date: day.Date}
		if totalTaskHours > 0 {
			average := totalTaskHours / float64(len(workDays))
			dayHours := math.Min(average, day.PlannedHours)
			for _, task := range tasks {
				allocated := round2(dayHours * task.TotalHours / totalTaskHours)
				if allocated <= 0 {
					continue
				}
				assignment.Tasks = append(assignment.Tasks, models.TaskAllocation{
					TaskID:          task.TaskID,
					TaskName:        task.Name,
					AllocatedHours:  allocated,
					WorkDescription: a.describe(task),
				})
				assignment.TotalHours = round2(assignment.TotalHours + allocated)
			}
		}
		assignments = append(assignments, assignment)
	}
	return assignments
}

// distributeByPriority greedily fills each day from the highest-priority
// task still holding hours. The sort is stable so equal priorities keep
// their input order.
func (a *Agent) distributeByPriority(tasks []models.Task, workDays []models.WorkDay) []models.DailyAssignment {
	remaining := cloneTasks(tasks)
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Priority > remaining[j].Priority
	})

	assignments := make([]models.DailyAssignment, 0, len(workDays))
	for _, day := range workDays {
		assignment := models.DailyAssignment{Date: day.Date}
		dayHours := day.PlannedHours

		for i := 0; i < len(remaining) && dayHours > 0; i++ {
			task := &remaining[i]
			allocated := math.Min(task.TotalHours, dayHours)
			if allocated <= 0 {
				continue
			}
			assignment.Tasks = append(assignment.Tasks, models.TaskAllocation{
				TaskID:          task.TaskID,
				TaskName:        task.Name,
				AllocatedHours:  round2(allocated),
				WorkDescription: a.describe(*task),
			})
			assignment.TotalHours = round2(assignment.TotalHours + allocated)
			dayHours -= allocated
			task.TotalHours -= allocated

			if task.TotalHours <= 0 {
				remaining = append(remaining[:i], remaining[i+1:]...)
				i--
			}
		}
		assignments = append(assignments, assignment)
	}
	return assignments
}

// distributeByFeature drains one task at a time in input order,
// producing runs of consecutive days on the same feature.
func (a *Agent) distributeByFeature(tasks []models.Task, workDays []models.WorkDay) []models.DailyAssignment {
	queue := cloneTasks(tasks)
	taskIndex := 0

	assignments := make([]models.DailyAssignment, 0, len(workDays))
	for _, day := range workDays {
		assignment := models.DailyAssignment{Date: day.Date}
		dayHours := day.PlannedHours

		for taskIndex < len(queue) && dayHours > 0 {
			task := &queue[taskIndex]
			allocated := math.Min(task.TotalHours, dayHours)
			assignment.Tasks = append(assignment.Tasks, models.TaskAllocation{
				TaskID:          task.TaskID,
				TaskName:        task.Name,
				AllocatedHours:  round2(allocated),
				WorkDescription: a.describe(*task),
			})
			assignment.TotalHours = round2(assignment.TotalHours + allocated)
			dayHours -= allocated
			task.TotalHours -= allocated

			if task.TotalHours <= 0 {
				taskIndex++
			}
		}
		assignments = append(assignments, assignment)
	}
	return assignments
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
