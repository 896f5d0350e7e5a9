package agent

import (
	"fmt"

	"github.com/minqi/tsgen/internal/models"
)

// descriptionTemplates is the fallback phrasing pool used when no AI
// description is available. Selection is deliberately random so
// repeated days on the same task read differently.
var descriptionTemplates = []string{
	"开发%s功能模块",
	"优化%s相关逻辑",
	"实现%s核心功能",
	"调试%s模块问题",
	"完善%s功能细节",
}

func (a *Agent) describe(task models.Task) string {
	template := descriptionTemplates[a.rng.Intn(len(descriptionTemplates))]
	base := fmt.Sprintf(template, task.Name)
	if task.Description != "" {
		return base + "，" + task.Description
	}
	return base
}
