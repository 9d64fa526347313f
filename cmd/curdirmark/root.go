package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/curdirmark/internal/action"
	"github.com/nikbrunner/curdirmark/internal/model"
	"github.com/nikbrunner/curdirmark/internal/picker"
	"github.com/nikbrunner/curdirmark/internal/render"
	"github.com/nikbrunner/curdirmark/internal/storage"
)

// usageError marks a flag error whose message and usage were already printed.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// env holds the process collaborators the root command depends on.
type env struct {
	getwd      func() (string, error)
	configPath func() (string, error)
	copy       func(string) error
	pick       func(store *model.Store, query string) (*model.Bookmark, error)
}

func defaultEnv() env {
	return env{
		getwd:      os.Getwd,
		configPath: storage.DefaultConfigFilePath,
		copy:       clipboard.WriteAll,
		pick:       runPicker,
	}
}

// runPicker runs the interactive picker on the terminal.
// The TUI draws on stderr so stdout carries only the chosen path.
func runPicker(store *model.Store, query string) (*model.Bookmark, error) {
	program := tea.NewProgram(picker.New(store, query), tea.WithOutput(os.Stderr))
	finalModel, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run picker: %w", err)
	}
	p := finalModel.(picker.Picker)
	if p.Cancelled() {
		return nil, nil
	}
	return p.Selected(), nil
}

const longDescription = `curdirmark bookmarks the current working directory under a short name
and prints it back later, e.g. cd "$(curdirmark -o work)".

When -s, -o and -d are passed in the same command, they take precedence
-s > -o > -d. -h wins over every other flag.

The store is a text file with one name=path line per bookmark, whatever
the file is called. Setting "backend": "sqlite" in the config file stores
bookmarks in a SQLite database instead.

--remove-database is not implemented yet and aborts when used.`

func newRootCmd(e env) *cobra.Command {
	var (
		database       string
		removeDatabase string
		saveName       string
		showName       string
		deleteName     string
		listFlag       bool
		pickFlag       bool
		copyFlag       bool
		verbose        bool
	)

	cmd := &cobra.Command{
		Use:           "curdirmark [options] [QUERY]",
		Short:         "Bookmark the current directory under a short name",
		Long:          longDescription,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			flags := cmd.Flags()
			opts := action.Options{
				List: listFlag,
				Pick: pickFlag,
			}
			if flags.Changed("remove-database") {
				opts.RemoveDatabase = &removeDatabase
			}
			if flags.Changed("save") {
				opts.Save = &saveName
			}
			if flags.Changed("show") {
				opts.Show = &showName
			}
			if flags.Changed("delete") {
				opts.Delete = &deleteName
			}

			sel := action.Resolve(opts)
			if sel.Fallback {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: No valid option specified.")
			}

			// Help doesn't read settings.
			settings := storage.DefaultConfig()
			if sel.Action != action.Help {
				loaded, err := loadSettings(e)
				if err != nil {
					return err
				}
				settings = *loaded
			}

			cfg := action.Config{
				Database: settings.DatabasePath(database),
				Backend:  settings.Backend,
				Name:     sel.Name,
				Query:    strings.Join(args, " "),
			}
			if sel.Action == action.Save {
				var err error
				cfg.WorkDir, err = e.getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
			}

			result, err := action.Execute(sel.Action, cfg)
			if errors.Is(err, action.ErrNotImplemented) {
				log.Fatalf("%s is not implemented", sel.Action)
			}
			if err != nil {
				return err
			}

			p := printer{
				out:  cmd.OutOrStdout(),
				errw: cmd.ErrOrStderr(),
				copy: copyFlag || settings.CopyToClipboard,
				env:  e,
			}
			return p.print(cmd, sel.Action, cfg, result)
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln("Error:", err)
		c.PrintErr(c.UsageString())
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&database, "database", "b", "", "Use the bookmark database at `PATH` (default $HOME/.curdirmarkdb)")
	flags.StringVarP(&removeDatabase, "remove-database", "r", "", "Remove the database at `PATH` (not implemented yet)")
	flags.StringVarP(&saveName, "save", "s", "", "Save current path as `BOOKMARK_NAME`")
	flags.StringVarP(&showName, "show", "o", "", "Show the path assigned to `BOOKMARK_NAME`")
	flags.StringVarP(&deleteName, "delete", "d", "", "Delete `BOOKMARK_NAME`")
	flags.BoolVarP(&listFlag, "list", "l", false, "List all bookmarks in current DB")
	flags.BoolVarP(&pickFlag, "pick", "p", false, "Pick a bookmark interactively, filtered by QUERY")
	flags.BoolVarP(&copyFlag, "copy", "c", false, "Also copy a shown or picked path to the clipboard")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	_ = cmd.MarkFlagFilename("database")

	return cmd
}

func loadSettings(e env) (*storage.Config, error) {
	path, err := e.configPath()
	if err != nil {
		log.WithError(err).Debug("no config file location, using defaults")
		config := storage.DefaultConfig()
		return &config, nil
	}
	return storage.LoadConfig(path)
}

// printer writes action results for the user.
type printer struct {
	out  io.Writer
	errw io.Writer
	copy bool
	env  env
}

func (p printer) print(cmd *cobra.Command, a action.Action, cfg action.Config, result *action.Result) error {
	if result == nil {
		return nil
	}

	switch a {
	case action.Help:
		return cmd.Help()
	case action.List:
		return render.List(p.out, result.Store)
	case action.Show:
		return p.path(result.Path)
	case action.Pick:
		return p.pick(cfg.Query, result)
	}
	return nil
}

func (p printer) pick(query string, result *action.Result) error {
	switch {
	case len(result.Matches) == 0:
		if query == "" {
			fmt.Fprintln(p.errw, "No bookmarks saved")
		} else {
			fmt.Fprintf(p.errw, "No bookmarks found for '%s'\n", query)
		}
		return nil
	case len(result.Matches) == 1 && query != "":
		return p.path(result.Matches[0].Bookmark.Path)
	}

	selected, err := p.env.pick(result.Store, query)
	if err != nil {
		return err
	}
	if selected == nil {
		return nil
	}
	return p.path(selected.Path)
}

func (p printer) path(path string) error {
	if _, err := fmt.Fprintln(p.out, path); err != nil {
		return err
	}
	if p.copy {
		if err := p.env.copy(path); err != nil {
			log.WithError(err).Warn("could not copy path to clipboard")
		}
	}
	return nil
}
