package cli

import (
	"context"
	"io"

	"github.com/ZacxDev/prereq/config"
	"github.com/ZacxDev/prereq/fs"
	"github.com/ZacxDev/prereq/planner"
	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// ExitError carries the exit code the process should terminate with.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

type Globals struct {
	Catalog     []string `help:"Catalog files or glob patterns (.star, .hcl, .yaml, .csv, .html)." short:"c" default:"courses.star" sep:","`
	DatabaseURL string   `help:"Load the catalog from PostgreSQL instead of files." name:"database-url" env:"PREREQ_DATABASE_URL"`
	LogLevel    string   `help:"Log level." enum:"debug,info,warn,error" default:"warn"`
	LogFormat   string   `help:"Log format." enum:"console,json" default:"console"`
}

type Command struct {
	Globals

	Menu     MenuCmd     `cmd:"" default:"1" help:"Open the interactive course menu."`
	Schedule ScheduleCmd `cmd:"" help:"Print a course order that respects every prerequisite."`
	Terms    TermsCmd    `cmd:"" help:"Print the schedule grouped into terms."`
	List     ListCmd     `cmd:"" help:"Print every course in tree order."`
	Course   CourseCmd   `cmd:"" help:"Print a course and its prerequisites."`
	Tree     TreeCmd     `cmd:"" help:"Draw the prerequisite tree."`
}

// App is passed to every command's Run method.
type App struct {
	Globals *Globals
	Out     io.Writer
	Logger  *zap.Logger
	Planner *planner.Planner
}

// Load fills the planner from the database when one is configured and from
// the catalog files otherwise.
func (a *App) Load(ctx context.Context) error {
	if a.Globals.DatabaseURL == "" {
		return a.Planner.Load(a.Globals.Catalog...)
	}

	src, err := config.NewPostgresSource(ctx, a.Globals.DatabaseURL)
	if err != nil {
		return err
	}
	defer src.Close()

	return a.Planner.LoadFrom(ctx, src)
}

// LoadTree loads the catalog and builds the prerequisite tree.
func (a *App) LoadTree(ctx context.Context) error {
	if err := a.Load(ctx); err != nil {
		return err
	}
	return a.Planner.BuildTree()
}

// Run parses args and executes the selected command. Output goes to out,
// logs to errW.
func Run(ctx context.Context, args []string, out, errW io.Writer, fsys fs.FileSystem) error {
	var command Command
	parser, err := kong.New(&command,
		kong.Name("prereq"),
		kong.Description("Course prerequisite planner"),
		kong.Writers(out, errW),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.Exit(func(code int) { panic(exitRequest(code)) }),
	)
	if err != nil {
		return err
	}

	kctx, err := parse(parser, args)
	if err != nil {
		return err
	}

	logger, err := NewLogger(command.LogLevel, command.LogFormat, errW)
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	defer logger.Sync()

	app := &App{
		Globals: &command.Globals,
		Out:     out,
		Logger:  logger,
		Planner: planner.New(logger, fsys),
	}

	logger.Debug("running command", zap.String("command", kctx.Command()))
	return kctx.Run(app)
}

// exitRequest is raised by kong's exit hook (--help) and turned back into an
// ExitError by parse.
type exitRequest int

func parse(parser *kong.Kong, args []string) (kctx *kong.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			code, ok := r.(exitRequest)
			if !ok {
				panic(r)
			}
			kctx, err = nil, &ExitError{Code: int(code)}
		}
	}()

	kctx, err = parser.Parse(args)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return kctx, nil
}
