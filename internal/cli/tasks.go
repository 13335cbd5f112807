package cli

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fastygo/todoclient/app"
	"github.com/fastygo/todoclient/domain"
)

func newTasksCmd(client *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Inspect and edit the task list",
	}
	cmd.AddCommand(
		newTasksListCmd(client),
		newTasksAddCmd(client),
		newTasksEditCmd(client),
		newTasksDoneCmd(client),
		newTasksRemoveCmd(client),
	)
	return cmd
}

func newTasksListCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Pull and print the task snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := client.Dispatcher.Dispatch(cmd.Context(), "tasks.refresh", nil); err != nil {
				return err
			}
			tasks := client.Tasks.All()
			if len(tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no tasks")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDUE\tVERSION")
			for _, t := range tasks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n", t.ID, t.Status, t.Title, t.PrettyFulfilledDate(), t.Version)
			}
			return w.Flush()
		},
	}
}

// draftFlags binds the editable task fields shared by add and edit.
func draftFlags(cmd *cobra.Command, title, description, date, timeOfDay *string, done *bool) {
	cmd.Flags().StringVar(title, "title", "", "task title")
	cmd.Flags().StringVar(description, "description", "", "task description")
	cmd.Flags().StringVar(date, "date", "", "due date (2006-01-02)")
	cmd.Flags().StringVar(timeOfDay, "time", "", "due time of day (HH:MM)")
	cmd.Flags().BoolVar(done, "done", false, "mark the task completed")
}

func newTasksAddCmd(client *app.App) *cobra.Command {
	var title, description, date, timeOfDay string
	var done bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := client.Form
			form.Reset()
			form.SetTitle(title)
			form.SetDescription(description)
			form.SetDate(date)
			form.SetTimeOfDay(timeOfDay)
			if done {
				form.SetStatus(domain.StatusCompleted)
			}
			if err := client.TaskOps.CommitDraft(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "task created")
			return nil
		},
	}
	draftFlags(cmd, &title, &description, &date, &timeOfDay, &done)
	cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksEditCmd(client *app.App) *cobra.Command {
	var title, description, date, timeOfDay string
	var done bool

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			if err := client.TaskOps.Refresh(cmd.Context()); err != nil {
				return err
			}
			current, ok := client.Tasks.Get(id)
			if !ok {
				return domain.ErrTaskNotFound
			}

			form := client.Form
			form.LoadFromTask(current)
			if cmd.Flags().Changed("title") {
				form.SetTitle(title)
			}
			if cmd.Flags().Changed("description") {
				form.SetDescription(description)
			}
			if cmd.Flags().Changed("date") {
				form.SetDate(date)
			}
			if cmd.Flags().Changed("time") {
				form.SetTimeOfDay(timeOfDay)
			}
			if cmd.Flags().Changed("done") {
				if done {
					form.SetStatus(domain.StatusCompleted)
				} else {
					form.SetStatus(domain.StatusInProgress)
				}
			}
			if err := client.TaskOps.CommitDraft(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "task updated")
			return nil
		},
	}
	draftFlags(cmd, &title, &description, &date, &timeOfDay, &done)
	return cmd
}

func newTasksDoneCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			if err := client.TaskOps.Refresh(cmd.Context()); err != nil {
				return err
			}
			if _, err := client.Dispatcher.Dispatch(cmd.Context(), "tasks.complete", id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "task completed")
			return nil
		},
	}
}

func newTasksRemoveCmd(client *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			if err := client.TaskOps.Delete(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "task deleted")
			return nil
		},
	}
}
