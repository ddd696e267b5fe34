package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-notes/internal/adapter"
	"github.com/MKhiriev/go-notes/internal/logger"
	"github.com/MKhiriev/go-notes/models"
)

const usage = `usage: notes <command> [flags]

commands:
  register -u USERNAME -p PASSWORD
  login    -u USERNAME -p PASSWORD
  create   -title TITLE [-body BODY]
  list     [-skip N] [-limit N]
  get      ID
  update   [-title TITLE] [-body BODY | -clear-body] ID
  delete   ID
  health
`

type command func(ctx context.Context, args []string) error

type App struct {
	adapter adapter.ServerAdapter

	out    io.Writer
	errOut io.Writer

	commands map[string]command
	logger   *logger.Logger
}

// NewApp builds the CLI on top of serverAdapter. Results are written to out,
// usage and flag errors to errOut.
func NewApp(serverAdapter adapter.ServerAdapter, out, errOut io.Writer, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, ErrNoAdapter
	}

	a := &App{
		adapter: serverAdapter,
		out:     out,
		errOut:  errOut,
		logger:  logger,
	}
	a.commands = map[string]command{
		"register": a.register,
		"login":    a.login,
		"create":   a.create,
		"list":     a.list,
		"get":      a.get,
		"update":   a.update,
		"delete":   a.delete,
		"health":   a.health,
	}

	return a, nil
}

// Run implements [Client]. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.errOut, usage)
		return ErrNoCommand
	}

	name := args[0]
	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprint(a.errOut, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	a.logger.Debug().Str("command", name).Msg("running command")
	if err := cmd(ctx, args[1:]); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

func (a *App) register(ctx context.Context, args []string) error {
	credentials, err := a.parseCredentials("register", args)
	if err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		return err
	}

	return a.print(user)
}

func (a *App) login(ctx context.Context, args []string) error {
	credentials, err := a.parseCredentials("login", args)
	if err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return err
	}

	a.logger.Info().Msg("logged in, export the access token as NOTES_TOKEN")
	return a.print(token)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := a.newFlagSet("create")
	title := fs.String("title", "", "note title")
	body := fs.String("body", "", "note body")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	note := models.NoteCreate{}
	set := visited(fs)
	if set["title"] {
		note.Title = title
	}
	if set["body"] {
		note.Body = body
	}

	created, err := a.adapter.CreateNote(ctx, note)
	if err != nil {
		return err
	}

	return a.print(created)
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := a.newFlagSet("list")
	skip := fs.Uint64("skip", 0, "number of notes to skip")
	limit := fs.Uint64("limit", 100, "maximum number of notes to return")
	if err := a.parseFlags(fs, args); err != nil {
		return err
	}

	notes, err := a.adapter.ListNotes(ctx, *skip, *limit)
	if err != nil {
		return err
	}

	return a.print(notes)
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := a.newFlagSet("get")
	noteID, err := a.parseNoteID(fs, args)
	if err != nil {
		return err
	}

	note, err := a.adapter.GetNote(ctx, noteID)
	if err != nil {
		return err
	}

	return a.print(note)
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := a.newFlagSet("update")
	title := fs.String("title", "", "new title")
	body := fs.String("body", "", "new body")
	clearBody := fs.Bool("clear-body", false, "set the body to null")
	noteID, err := a.parseNoteID(fs, args)
	if err != nil {
		return err
	}

	set := visited(fs)
	if set["body"] && *clearBody {
		return fmt.Errorf("%w: -body and -clear-body are mutually exclusive", ErrInvalidArgs)
	}

	update := models.NoteUpdate{}
	if set["title"] {
		update.Title = models.NewOptionalString(*title)
	}
	switch {
	case set["body"]:
		update.Body = models.NewOptionalString(*body)
	case *clearBody:
		update.Body = models.OptionalString{Set: true}
	}

	note, err := a.adapter.UpdateNote(ctx, noteID, update)
	if err != nil {
		return err
	}

	return a.print(note)
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := a.newFlagSet("delete")
	noteID, err := a.parseNoteID(fs, args)
	if err != nil {
		return err
	}

	if err = a.adapter.DeleteNote(ctx, noteID); err != nil {
		return err
	}

	a.logger.Info().Int64("note_id", noteID).Msg("note deleted")
	return nil
}

func (a *App) health(ctx context.Context, args []string) error {
	if err := a.parseFlags(a.newFlagSet("health"), args); err != nil {
		return err
	}

	if err := a.adapter.Health(ctx); err != nil {
		return err
	}

	return a.print(models.HealthResponse{Status: "ok"})
}

func (a *App) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *App) parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrInvalidArgs, fs.Arg(0))
	}
	return nil
}

func (a *App) parseCredentials(name string, args []string) (models.Credentials, error) {
	fs := a.newFlagSet(name)
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := a.parseFlags(fs, args); err != nil {
		return models.Credentials{}, err
	}

	return models.Credentials{Username: *username, Password: *password}, nil
}

// parseNoteID parses flags and then expects exactly one positional note id.
func (a *App) parseNoteID(fs *flag.FlagSet, args []string) (int64, error) {
	if err := fs.Parse(args); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	if fs.NArg() != 1 {
		return 0, fmt.Errorf("%w: expected exactly one note id", ErrInvalidArgs)
	}

	noteID, err := strconv.ParseInt(strings.TrimSpace(fs.Arg(0)), 10, 64)
	if err != nil || noteID <= 0 {
		return 0, fmt.Errorf("%w: note id must be a positive integer, got %q", ErrInvalidArgs, fs.Arg(0))
	}

	return noteID, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func visited(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}
