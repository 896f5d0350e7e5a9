package attachment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/minqi/tsgen/internal/models"
)

func TestFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "需求说明.md")
	content := "# 六月迭代\n\n- 登录模块重构\n- 报表导出\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	task, err := FromFile(path)
	if err != nil {
		t.Fatalf("FromFile: %v", err)
	}
	if task.Name != "附件参考（需求说明.md）" {
		t.Errorf("Name = %q", task.Name)
	}
	if task.SourceData != content {
		t.Errorf("SourceData = %q", task.SourceData)
	}
	if task.Source != models.SourceAttachment || task.TotalHours != 0 {
		t.Errorf("task = %+v", task)
	}
	if !task.IsReference() {
		t.Error("attachment task should be a reference task")
	}
	if !strings.Contains(task.Description, "Markdown") {
		t.Errorf("Description = %q", task.Description)
	}
}

func TestFromFileErrors(t *testing.T) {
	if _, err := FromFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("missing file accepted")
	}

	binary := filepath.Join(t.TempDir(), "app.bin")
	if err := os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(binary); err == nil {
		t.Error("non-UTF-8 file accepted")
	}

	huge := filepath.Join(t.TempDir(), "huge.txt")
	if err := os.WriteFile(huge, []byte(strings.Repeat("a", maxBytes+1)), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := FromFile(huge); err == nil {
		t.Error("oversized file accepted")
	}
}

func TestFromText(t *testing.T) {
	task, err := FromText("", "  本周完成了登录模块的联调  ")
	if err != nil {
		t.Fatalf("FromText: %v", err)
	}
	if task.Name != "附件参考（粘贴内容）" {
		t.Errorf("Name = %q", task.Name)
	}
	if task.SourceData != "本周完成了登录模块的联调" {
		t.Errorf("SourceData = %q", task.SourceData)
	}

	if _, err := FromText("x", "   "); err == nil {
		t.Error("blank content accepted")
	}
}
