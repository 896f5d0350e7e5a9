// Package attachment turns pasted or uploaded reference documents into
// 0-hour reference tasks.
package attachment

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/minqi/tsgen/internal/models"
)

// Documents past this size add noise without adding signal to the
// distribution prompt.
const maxBytes = 256 * 1024

var textExtensions = map[string]string{
	".txt":  "文本",
	".md":   "Markdown",
	".csv":  "CSV",
	".json": "JSON",
	".yaml": "YAML",
	".yml":  "YAML",
	".log":  "日志",
}

// FromFile reads a text file into a reference task named after it.
func FromFile(path string) (models.Task, error) {
	info, err := os.Stat(path)
	if err != nil {
		return models.Task{}, fmt.Errorf("cannot read attachment: %w", err)
	}
	if info.Size() > maxBytes {
		return models.Task{}, fmt.Errorf("attachment too large: %d bytes (limit %d)", info.Size(), maxBytes)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return models.Task{}, fmt.Errorf("cannot read attachment: %w", err)
	}
	if !utf8.Valid(data) {
		return models.Task{}, fmt.Errorf("attachment %s is not UTF-8 text", filepath.Base(path))
	}

	kind, ok := textExtensions[strings.ToLower(filepath.Ext(path))]
	if !ok {
		kind = "文本"
	}
	return build(filepath.Base(path), kind, string(data)), nil
}

// FromText wraps pasted text in a reference task. label may be empty.
func FromText(label, content string) (models.Task, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.Task{}, fmt.Errorf("attachment content cannot be empty")
	}
	if len(content) > maxBytes {
		return models.Task{}, fmt.Errorf("attachment too large: %d bytes (limit %d)", len(content), maxBytes)
	}
	if label == "" {
		label = "粘贴内容"
	}
	return build(label, "文本", content), nil
}

func build(label, kind, content string) models.Task {
	return models.Task{
		Name:        fmt.Sprintf("附件参考（%s）", label),
		TotalHours:  0,
		Priority:    models.ParsePriority(""),
		Description: fmt.Sprintf("%s附件，作为工时分配的参考资料", kind),
		Source:      models.SourceAttachment,
		SourceData:  content,
	}
}
