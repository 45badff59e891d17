package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/roster/internal/logging"
	"github.com/dmitrijs2005/roster/internal/roster/config"
	"github.com/dmitrijs2005/roster/internal/roster/generator"
	"github.com/dmitrijs2005/roster/internal/roster/models"
	"github.com/dmitrijs2005/roster/internal/roster/repositories/records"
	"github.com/dmitrijs2005/roster/internal/roster/services"
	"github.com/dmitrijs2005/roster/internal/roster/validation"
	"github.com/fatih/color"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config  *config.Config
	service services.RosterService
	catalog models.Catalog
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the repository selected by cfg, the optional strict validator,
// the generator and the roster service. Prompts are read from in and output
// goes to out.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	repo, err := records.Open(ctx, cfg.Storage, cfg.DataFile, cfg.DBPath, log)
	if err != nil {
		log.Error(ctx, "error opening roster storage", "storage", cfg.Storage, "err", err)
		return nil, err
	}

	catalog := models.DefaultCatalog()

	var v services.Validator
	if cfg.StrictCategories {
		v = validation.New(catalog)
	}

	svc := services.NewRosterService(repo, generator.New(cfg.Seed, catalog), v, log)

	configureColor(cfg.Color, out)

	return newApp(cfg, svc, catalog, log, in, out), nil
}

func newApp(cfg *config.Config, svc services.RosterService, c models.Catalog, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:  cfg,
		service: svc,
		catalog: c,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// configureColor applies the colour mode; "auto" enables colour only when
// out is a terminal.
func configureColor(mode string, out io.Writer) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	default:
		f, ok := out.(*os.File)
		color.NoColor = !ok || !isTerminal(int(f.Fd()))
	}
}

// Load reads the persisted roster into memory.
func (a *App) Load(ctx context.Context) int {
	return a.service.Load(ctx)
}

// Close releases the underlying storage.
func (a *App) Close() error {
	return a.service.Close()
}

// Run loads the roster and runs the interactive menu until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "error closing storage", "err", err)
		}
	}()

	n := a.Load(ctx)
	fmt.Fprintf(a.out, "Employee roster: %d records loaded (type a number or a command word)\n", n)

	runREPL(ctx, a, a.reader, a.out)
}
