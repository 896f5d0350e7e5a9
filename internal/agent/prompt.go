package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minqi/tsgen/internal/llm"
	"github.com/minqi/tsgen/internal/models"
)

const (
	distributionMaxTokens = 4000
	enhanceMaxTokens      = 20000

	// Reference material is truncated before prompting so a pasted
	// document cannot blow the context window.
	maxReferenceChars = 4000
)

const distributionSystemPrompt = `你是一个专业的工时分配助手，擅长根据任务特点和分配策略，制定合理的每日工作安排。

请根据提供的任务信息、工作日信息和分配策略，智能分配每日工时。

分配策略说明：
- 按天平均分配(daily)：将任务工时尽量均匀分布到每个工作日，保持工作负荷平衡
- 按优先级分配(priority)：优先安排高优先级任务，确保重要工作优先完成
- 按功能分配(feature)：将相关功能的任务集中安排，提高工作连贯性和效率

输出要求：
1. 每天的总工时不应超过对应工作日的plannedHours
2. 所有任务的总工时应该被合理分配完毕
3. 分配结果要符合人类工作习惯，避免频繁切换任务
4. 严格按照指定的JSON格式输出`

const enhanceSystemPrompt = `你是一个专业的工时管理助手，擅长生成简洁、专业的工作内容描述。请根据任务信息生成符合企业工时表标准的工作描述。`

var modeDescriptions = map[string]string{
	models.ModeDaily:    "按天平均分配：将任务工时尽量均匀分布到每个工作日",
	models.ModePriority: "按优先级分配：优先安排高优先级任务，确保重要工作优先完成",
	models.ModeFeature:  "按功能分配：将相关功能的任务集中安排在连续的时间内",
}

// distributeWithAI asks the model for a full allocation. Every error
// here is recoverable; the caller falls back to a deterministic
// strategy.
func (a *Agent) distributeWithAI(ctx context.Context, tasks []models.Task, workDays []models.WorkDay, mode string) ([]models.DailyAssignment, error) {
	system := distributionSystemPrompt
	if rules := strings.TrimSpace(a.client.Rules()); rules != "" {
		system += "\n\n用户自定义规则：\n" + rules
	}

	reply, err := a.client.Chat(ctx, system, buildDistributionPrompt(tasks, workDays, mode), distributionMaxTokens)
	if err != nil {
		return nil, err
	}
	return parseDistributionReply(reply)
}

func buildDistributionPrompt(tasks []models.Task, workDays []models.WorkDay, mode string) string {
	var b strings.Builder

	b.WriteString("任务列表：\n")
	b.WriteString(taskSummary(tasks))

	if refs := referenceContext(tasks); refs != "" {
		b.WriteString("\n参考资料（不占用工时，仅供理解工作内容）：\n")
		b.WriteString(refs)
	}

	b.WriteString("\n工作日列表：\n")
	for _, day := range workDays {
		fmt.Fprintf(&b, "- %s (%gh)\n", day.Date, day.PlannedHours)
	}

	desc, ok := modeDescriptions[mode]
	if !ok {
		desc = modeDescriptions[models.ModeDaily]
	}
	fmt.Fprintf(&b, "\n分配策略：%s\n", desc)

	b.WriteString(`
请根据上述信息，智能分配每日工时。要求：
1. 每个任务的总工时必须被完全分配
2. 每天的分配工时不能超过该天的plannedHours
3. 分配要符合所选策略的特点
4. 考虑实际工作习惯，避免每天任务过于分散

请按以下JSON格式返回分配结果：
{
  "dailyAssignments": [
    {
      "date": "2025-06-01",
      "tasks": [
        {
          "taskId": "task_id",
          "taskName": "任务名称",
          "allocatedHours": 4.0,
          "workDescription": "具体工作描述"
        }
      ],
      "totalHours": 8.0
    }
  ]
}
`)
	return b.String()
}

func taskSummary(tasks []models.Task) string {
	var b strings.Builder
	for _, task := range tasks {
		if task.IsReference() {
			continue
		}
		fmt.Fprintf(&b, "- %s (%gh, 优先级: %s", task.Name, task.TotalHours, models.PriorityLabel(task.Priority))
		if task.Description != "" {
			b.WriteString(", 描述: " + task.Description)
		}
		b.WriteString(")\n")
	}
	return b.String()
}

func referenceContext(tasks []models.Task) string {
	var b strings.Builder
	for _, task := range tasks {
		if !task.IsReference() || task.SourceData == "" {
			continue
		}
		data := task.SourceData
		if len(data) > maxReferenceChars {
			data = data[:maxReferenceChars]
		}
		fmt.Fprintf(&b, "[%s]\n%s\n", task.Name, data)
	}
	return b.String()
}

type aiAllocation struct {
	TaskID          string  `json:"taskId"`
	TaskName        string  `json:"taskName"`
	AllocatedHours  float64 `json:"allocatedHours"`
	WorkDescription string  `json:"workDescription"`
}

type aiDistribution struct {
	DailyAssignments []struct {
		Date  string         `json:"date"`
		Tasks []aiAllocation `json:"tasks"`
	} `json:"dailyAssignments"`
}

// parseDistributionReply locates the first JSON object in the reply and
// validates its shape. Missing fields are coerced to safe defaults; day
// totals are recomputed rather than trusted.
func parseDistributionReply(reply string) ([]models.DailyAssignment, error) {
	raw, ok := llm.ExtractJSON(reply)
	if !ok {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var payload aiDistribution
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("malformed allocation JSON: %w", err)
	}
	if payload.DailyAssignments == nil {
		return nil, fmt.Errorf("reply is missing the dailyAssignments array")
	}

	assignments := make([]models.DailyAssignment, 0, len(payload.DailyAssignments))
	for _, day := range payload.DailyAssignments {
		if day.Date == "" || day.Tasks == nil {
			return nil, fmt.Errorf("malformed daily assignment entry")
		}
		assignment := models.DailyAssignment{Date: day.Date}
		for _, t := range day.Tasks {
			desc := t.WorkDescription
			if desc == "" {
				desc = t.TaskName + "相关工作"
			}
			assignment.Tasks = append(assignment.Tasks, models.TaskAllocation{
				TaskID:          t.TaskID,
				TaskName:        t.TaskName,
				AllocatedHours:  t.AllocatedHours,
				WorkDescription: desc,
			})
			assignment.TotalHours = round2(assignment.TotalHours + t.AllocatedHours)
		}
		assignments = append(assignments, assignment)
	}
	return assignments, nil
}

// enhanceDescriptions asks the model to rewrite the per-task work
// descriptions of a finished allocation, merging matches in place.
// A failed pass leaves the existing descriptions untouched.
func (a *Agent) enhanceDescriptions(ctx context.Context, assignments []models.DailyAssignment, tasks []models.Task) error {
	system := enhanceSystemPrompt
	if rules := strings.TrimSpace(a.client.Rules()); rules != "" {
		system += "\n" + rules
	}

	reply, err := a.client.Chat(ctx, system, buildEnhancePrompt(assignments, tasks), enhanceMaxTokens)
	if err != nil {
		return err
	}

	raw, ok := llm.ExtractJSON(reply)
	if !ok {
		return fmt.Errorf("no JSON object in model reply")
	}
	var payload struct {
		Assignments []struct {
			Date  string `json:"date"`
			Tasks []struct {
				TaskName        string `json:"taskName"`
				WorkDescription string `json:"workDescription"`
			} `json:"tasks"`
		} `json:"assignments"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return fmt.Errorf("malformed enhancement JSON: %w", err)
	}
	if payload.Assignments == nil {
		return fmt.Errorf("reply is missing the assignments array")
	}

	byDate := make(map[string]map[string]string)
	for _, day := range payload.Assignments {
		if byDate[day.Date] == nil {
			byDate[day.Date] = make(map[string]string)
		}
		for _, t := range day.Tasks {
			if t.WorkDescription != "" {
				byDate[day.Date][t.TaskName] = t.WorkDescription
			}
		}
	}

	for i := range assignments {
		matches := byDate[assignments[i].Date]
		if matches == nil {
			continue
		}
		for j := range assignments[i].Tasks {
			if desc, ok := matches[assignments[i].Tasks[j].TaskName]; ok {
				assignments[i].Tasks[j].WorkDescription = desc
			}
		}
	}
	return nil
}

func buildEnhancePrompt(assignments []models.DailyAssignment, tasks []models.Task) string {
	var b strings.Builder

	b.WriteString("任务列表:\n")
	b.WriteString(taskSummary(tasks))

	if refs := referenceContext(tasks); refs != "" {
		b.WriteString("\n参考资料：\n")
		b.WriteString(refs)
	}

	b.WriteString("\n工时分配:\n")
	for _, day := range assignments {
		parts := make([]string, 0, len(day.Tasks))
		for _, t := range day.Tasks {
			parts = append(parts, fmt.Sprintf("%s(%gh)", t.TaskName, t.AllocatedHours))
		}
		fmt.Fprintf(&b, "%s: %s\n", day.Date, strings.Join(parts, ", "))
	}

	b.WriteString(`
请为每一天的每个任务生成简洁、专业的工作内容描述，要求：
1. 描述要具体且专业
2. 体现实际工作内容
3. 符合软件开发工时表标准
4. 每个描述不超过30字

请按以下JSON格式返回：
{
  "assignments": [
    {
      "date": "2024-01-01",
      "tasks": [
        {
          "taskName": "任务名称",
          "workDescription": "具体工作描述"
        }
      ]
    }
  ]
}
`)
	return b.String()
}
