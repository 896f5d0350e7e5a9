package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/minqi/tsgen/internal/db"
	"github.com/minqi/tsgen/internal/gitlog"
)

var gitlogCmd = &cobra.Command{
	Use:   "gitlog",
	Short: "Import recent git history as reference material",
	Long: `gitlog reads the last 30 days of commits from a local repository or a
remote URL and stores them as a 0-hour reference task. Reference tasks
never receive hours but give the AI model real context to write entry
descriptions from.`,
	Run: withDB(func(cmd *cobra.Command, args []string) {
		repo, _ := cmd.Flags().GetString("repo")
		remote, _ := cmd.Flags().GetString("url")
		author, _ := cmd.Flags().GetString("author")
		branch, _ := cmd.Flags().GetString("branch")
		token, _ := cmd.Flags().GetString("token")

		if repo == "" && remote == "" {
			repo = "."
		}

		label := repo
		if remote != "" {
			label = remote
			fmt.Printf("⏳ Cloning %s...\n", remote)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		commits, err := gitlog.Fetch(ctx, gitlog.Options{
			RepoPath: repo,
			RepoURL:  remote,
			Token:    token,
			Author:   author,
			Branch:   branch,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if len(commits) == 0 {
			fmt.Println("No commits found in the last 30 days.")
			return
		}

		ref := gitlog.BuildReferenceTask(label, commits)
		task, err := db.CreateTask(db.CreateTaskRequest{
			Name:        ref.Name,
			TotalHours:  ref.TotalHours,
			Description: ref.Description,
			Source:      ref.Source,
			SourceData:  ref.SourceData,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		fmt.Printf("✅ Imported %d commits as task #%d: %s\n", len(commits), task.ID, task.Name)
	}),
}

func init() {
	gitlogCmd.Flags().StringP("repo", "r", "", "Local repository path (default current directory)")
	gitlogCmd.Flags().String("url", "", "Remote repository URL to clone")
	gitlogCmd.Flags().StringP("author", "a", "", "Only commits by this author")
	gitlogCmd.Flags().StringP("branch", "b", "", "Branch to read")
	gitlogCmd.Flags().String("token", "", "Access token for private HTTPS remotes")
}
