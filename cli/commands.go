package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZacxDev/prereq/ui"
	"github.com/pkg/errors"

	tea "github.com/charmbracelet/bubbletea"
)

type MenuCmd struct{}

func (c *MenuCmd) Run(ctx context.Context, app *App) error {
	if err := app.Load(ctx); err != nil {
		return err
	}
	return ui.Run(app.Planner, app.Logger, tea.WithContext(ctx), tea.WithAltScreen())
}

type ScheduleCmd struct {
	Out string `help:"Also write the schedule as JSON to this path." short:"o"`
}

func (c *ScheduleCmd) Run(ctx context.Context, app *App) error {
	if err := app.Load(ctx); err != nil {
		return err
	}
	if err := ui.PrintSchedule(app.Out, app.Planner); err != nil {
		return err
	}
	if c.Out != "" {
		return app.Planner.ExportSchedule(c.Out)
	}
	return nil
}

type TermsCmd struct{}

func (c *TermsCmd) Run(ctx context.Context, app *App) error {
	if err := app.Load(ctx); err != nil {
		return err
	}
	return ui.PrintTerms(app.Out, app.Planner)
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx context.Context, app *App) error {
	if err := app.LoadTree(ctx); err != nil {
		return err
	}
	return ui.PrintCourseList(app.Out, app.Planner)
}

type CourseCmd struct {
	Numbers []string `arg:"" name:"number" help:"Course numbers to print."`
}

func (c *CourseCmd) Run(ctx context.Context, app *App) error {
	if err := app.LoadTree(ctx); err != nil {
		return err
	}
	for i, number := range c.Numbers {
		if i > 0 {
			fmt.Fprintln(app.Out)
		}
		if err := ui.PrintCourse(app.Out, app.Planner, strings.ToUpper(number)); err != nil {
			return errors.WithMessage(err, "course lookup failed")
		}
	}
	return nil
}

type TreeCmd struct{}

func (c *TreeCmd) Run(ctx context.Context, app *App) error {
	if err := app.LoadTree(ctx); err != nil {
		return err
	}
	return app.Planner.RenderTree(app.Out)
}
