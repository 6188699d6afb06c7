package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/todo-lifecycle/internal/domain"
	"github.com/jsamuelsen11/todo-lifecycle/internal/domain/todo"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/health"
	"github.com/jsamuelsen11/todo-lifecycle/internal/platform/logging"
	"github.com/jsamuelsen11/todo-lifecycle/internal/ports"
)

// errUnhealthy is returned by the health command when a check fails.
var errUnhealthy = fmt.Errorf("health check failed: %w", domain.ErrUnavailable)

func (a *app) newCreateCommand() *cobra.Command {
	var (
		title       string
		description string
		dueDate     string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ToDo",
		Example: `  todoctl create --owner alice --title "Buy milk"
  todoctl create --owner alice --title "File taxes" --due-date 2026-04-15T17:00:00Z`,
		Args: noArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			in := ports.CreateToDoCommand{
				Title:       title,
				Description: optional(cmd, "description", description),
				DueDate:     optional(cmd, "due-date", dueDate),
			}

			item, err := a.rt.Service.CreateToDo(cmd.Context(), a.opts.owner, in)
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), a.format(), item)
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "ToDo title, 1 to 50 characters")
	cmd.Flags().StringVar(&description, "description", "", "optional description")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "optional RFC3339 due date; unparseable values are ignored")
	return cmd
}

func (a *app) newUpdateCommand() *cobra.Command {
	var (
		title       string
		complete    bool
		description string
		dueDate     string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update or complete a ToDo",
		Long: `Update applies the title, description and due date to an existing ToDo.
The title is kept unchanged once a ToDo is complete. Nothing is written
when the update leaves the ToDo as it was.`,
		Example: `  todoctl update 3f0c... --owner alice --title "Buy oat milk"
  todoctl update 3f0c... --owner alice --title "Buy oat milk" --complete`,
		Args: exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := a.requireOwner(); err != nil {
				return err
			}

			in := ports.UpdateToDoCommand{
				Title:         title,
				SetAsComplete: complete,
				Description:   optional(cmd, "description", description),
				DueDate:       optional(cmd, "due-date", dueDate),
			}

			item, err := a.rt.Service.UpdateToDo(cmd.Context(), a.opts.owner, args[0], in)
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), a.format(), item)
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "ToDo title, 1 to 50 characters")
	cmd.Flags().BoolVar(&complete, "complete", false, "mark the ToDo complete")
	cmd.Flags().StringVar(&description, "description", "", "replace the description")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "replace the due date (RFC3339)")
	return cmd
}

func (a *app) newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the owner's ToDos",
		Args:  noArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			if err := a.requireOwner(); err != nil {
				return err
			}

			items, err := a.rt.Service.ListToDos(cmd.Context(), a.opts.owner)
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), a.format(), items)
		}),
	}
}

func (a *app) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single ToDo",
		Args:  exactArgs(1),
		RunE: a.run(func(cmd *cobra.Command, args []string) error {
			if err := a.requireOwner(); err != nil {
				return err
			}

			item, err := a.rt.Service.GetToDo(cmd.Context(), a.opts.owner, args[0])
			if err != nil {
				return err
			}
			return Render(cmd.OutOrStdout(), a.format(), item)
		}),
	}
}

func (a *app) newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check storage and publisher health",
		Args:  noArgs,
		RunE: a.run(func(cmd *cobra.Command, _ []string) error {
			results := a.rt.Health.CheckAll(cmd.Context())

			logger := logging.FromContext(cmd.Context())
			for name, err := range results {
				if err != nil {
					logger.WarnContext(cmd.Context(), "component unhealthy",
						slog.String("component", name),
						slog.Any("error", err),
					)
				}
			}

			if err := Render(cmd.OutOrStdout(), a.format(), NewHealthReport(results)); err != nil {
				return err
			}
			if !health.Healthy(results) {
				return errUnhealthy
			}
			return nil
		}),
	}
}

// requireOwner rejects an empty --owner before reaching the service.
func (a *app) requireOwner() error {
	if a.opts.owner == "" {
		return domain.NewFieldError("owner_id", todo.MsgOwnerLength)
	}
	return nil
}

// optional returns a pointer to value only when the flag was set, so an
// explicit empty string is distinguishable from an absent flag.
func optional(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &flagError{err: err}
	}
	return nil
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &flagError{err: err}
		}
		return nil
	}
}
