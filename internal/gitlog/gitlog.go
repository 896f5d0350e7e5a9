// Package gitlog pulls recent commit history out of a git repository
// and packages it as reference material for hour distribution.
package gitlog

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/minqi/tsgen/internal/models"
)

const (
	maxCommits  = 100
	historyDays = 30
	logFormat   = "%H|%an|%ad|%s"
)

// Commit is one parsed line of git log output.
type Commit struct {
	Hash    string
	Author  string
	Date    string
	Message string
}

// Options selects what to read and from where.
type Options struct {
	// RepoPath is a local working copy. Ignored when RepoURL is set.
	RepoPath string
	// RepoURL is a remote to shallow-clone into a temp dir first.
	RepoURL string
	// Token is injected into the clone URL for private HTTPS remotes.
	Token  string
	Author string
	Branch string
}

// Fetch reads the recent log per opts and returns the parsed commits.
func Fetch(ctx context.Context, opts Options) ([]Commit, error) {
	dir := opts.RepoPath
	if opts.RepoURL != "" {
		tmp, cleanup, err := clone(ctx, opts.RepoURL, opts.Token, opts.Branch)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		dir = tmp
	}
	if dir == "" {
		dir = "."
	}

	args := []string{
		"log",
		fmt.Sprintf("--since=%d days ago", historyDays),
		fmt.Sprintf("--max-count=%d", maxCommits),
		"--date=iso",
		"--pretty=format:" + logFormat,
	}
	if opts.Author != "" {
		args = append(args, "--author="+opts.Author)
	}
	if opts.Branch != "" && opts.RepoURL == "" {
		args = append(args, opts.Branch)
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("git log: %s", strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("git log: %w", err)
	}

	return ParseLog(string(out)), nil
}

// ParseLog splits raw pretty-format output into commits. Malformed
// lines are skipped.
func ParseLog(raw string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// The subject may itself contain the separator, so split only
		// the three leading fields.
		parts := strings.SplitN(line, "|", 4)
		if len(parts) != 4 {
			continue
		}
		commits = append(commits, Commit{
			Hash:    parts[0],
			Author:  parts[1],
			Date:    parts[2],
			Message: parts[3],
		})
	}
	return commits
}

// BuildReferenceTask turns the commits into a 0-hour reference task
// whose SourceData carries the formatted log.
func BuildReferenceTask(repoLabel string, commits []Commit) models.Task {
	var b strings.Builder
	fmt.Fprintf(&b, "最近%d天的Git提交记录（%d条）：\n", historyDays, len(commits))
	for _, c := range commits {
		short := c.Hash
		if len(short) > 8 {
			short = short[:8]
		}
		fmt.Fprintf(&b, "- [%s] %s (%s, %s)\n", short, c.Message, c.Author, c.Date)
	}

	name := "Git日志参考"
	if repoLabel != "" {
		name = fmt.Sprintf("Git日志参考（%s）", repoLabel)
	}
	return models.Task{
		Name:        name,
		TotalHours:  0,
		Priority:    models.ParsePriority(""),
		Description: fmt.Sprintf("来自Git提交历史的参考资料，共%d条提交", len(commits)),
		Source:      models.SourceGitLog,
		SourceData:  b.String(),
	}
}

func clone(ctx context.Context, repoURL, token, branch string) (string, func(), error) {
	cloneURL := repoURL
	if token != "" {
		u, err := url.Parse(repoURL)
		if err != nil || u.Host == "" {
			return "", nil, fmt.Errorf("invalid repository URL: %s", repoURL)
		}
		u.User = url.UserPassword("oauth2", token)
		cloneURL = u.String()
	}

	tmp, err := os.MkdirTemp("", "tsgen-gitlog-")
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { os.RemoveAll(tmp) }

	args := []string{"clone", "--quiet", "--filter=blob:none", "--single-branch"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}
	args = append(args, cloneURL, tmp)

	cloneCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()
	cmd := exec.CommandContext(cloneCtx, "git", args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		cleanup()
		msg := strings.TrimSpace(string(out))
		if token != "" {
			// The token would otherwise leak through git's error output.
			msg = strings.ReplaceAll(msg, token, "***")
		}
		return "", nil, fmt.Errorf("git clone failed: %s", msg)
	}
	return tmp, cleanup, nil
}
