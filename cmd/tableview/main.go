// tableview renders a YAML, TOML, or JSON collection as a filtered, sorted,
// and paginated table. With --interactive it opens a terminal UI for paging
// and selecting rows
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/kode4food/tableview"
	"github.com/kode4food/tableview/config"
	"github.com/kode4food/tableview/order"
	"github.com/kode4food/tableview/present"
	"github.com/kode4food/tableview/view"
)

type options struct {
	items       string
	settings    string
	filter      string
	sortBy      []string
	page        int
	pageSet     bool
	perPage     int
	perPageSet  bool
	columns     []string
	filterable  []string
	key         string
	selected    []string
	interactive bool
	verbose     bool
}

var errItemsRequired = errors.New("an items file is required")

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	flagSet := pflag.NewFlagSet("tableview", pflag.ContinueOnError)
	flagSet.StringVarP(&opts.items, "items", "i", "", "items file (.yaml, .toml, .json)")
	flagSet.StringVarP(&opts.settings, "config", "c", "", "view settings file")
	flagSet.StringVarP(&opts.filter, "filter", "f", "", "filter text")
	flagSet.StringArrayVarP(&opts.sortBy, "sort", "s", nil, "sort by column[:asc|desc], repeatable")
	flagSet.IntVarP(&opts.page, "page", "p", 1, "page to display")
	flagSet.IntVarP(&opts.perPage, "per-page", "n", config.DefaultItemsPerPage, "items per page, -1 for no pagination")
	flagSet.StringSliceVar(&opts.columns, "columns", nil, "columns to display as field or field=Label")
	flagSet.StringSliceVar(&opts.filterable, "filterable", nil, "fields the filter applies to (default: all)")
	flagSet.StringVarP(&opts.key, "key", "k", "id", "field that identifies each item")
	flagSet.StringSliceVar(&opts.selected, "select", nil, "keys of items to select")
	flagSet.BoolVar(&opts.interactive, "interactive", false, "open the interactive viewer")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if opts.items == "" && flagSet.NArg() > 0 {
		opts.items = flagSet.Arg(0)
	}
	if opts.items == "" {
		return errItemsRequired
	}
	opts.pageSet = flagSet.Changed("page")
	opts.perPageSet = flagSet.Changed("per-page")

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{Level: level},
	))

	v, err := buildView(&opts, logger)
	if err != nil {
		return err
	}
	if opts.interactive {
		_, err = tea.NewProgram(newModel(v), tea.WithAltScreen()).Run()
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	fmt.Println(present.NewRenderer[record]().Render(v))
	return nil
}

func buildView(opts *options, logger *slog.Logger) (view.View[record], error) {
	records, err := loadRecords(opts.items)
	if err != nil {
		return nil, fmt.Errorf("cannot load items from %s: %w", opts.items, err)
	}

	o := []config.Option{config.Logger(logger)}
	if opts.settings != "" {
		s, err := config.Load(opts.settings)
		if err != nil {
			return nil, err
		}
		so, err := s.Options()
		if err != nil {
			return nil, err
		}
		o = append(o, so...)
	}
	fo, err := flagOptions(opts)
	if err != nil {
		return nil, err
	}
	o = append(o, fo...)

	specs := opts.columns
	if len(specs) == 0 {
		specs = fieldNames(records)
	}
	cols := buildColumns(specs, opts.filterable,
		columnWidth(terminalWidth(), len(specs)),
	)
	v, err := tableview.NewView(recordKey(opts.key), cols, o...)
	if err != nil {
		return nil, err
	}
	v.SetItems(records)
	for _, k := range opts.selected {
		v.Select(k)
	}
	return v, nil
}

func flagOptions(opts *options) ([]config.Option, error) {
	var res []config.Option
	if opts.filter != "" {
		res = append(res, config.Filter(opts.filter))
	}
	if len(opts.sortBy) > 0 {
		by := make([]order.By, len(opts.sortBy))
		for i, s := range opts.sortBy {
			b, err := order.Parse(s)
			if err != nil {
				return nil, err
			}
			by[i] = b
		}
		res = append(res, config.SortBy(by...))
	}
	if opts.perPageSet {
		res = append(res, config.ItemsPerPage(opts.perPage))
	}
	if opts.pageSet {
		res = append(res, config.PageIndex(opts.page))
	}
	return res, nil
}

func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `tableview renders a collection of items as a table.

Items are read from a YAML or JSON list, or from a TOML document of
[[items]] tables. View settings (items_per_page, page_index, filter,
sort_by, and friends) may be read from a settings file with --config.
Flags override settings.

Usage:
  tableview [flags] [items-file]

Examples:
  # Show the first page of desserts, highest calories first
  tableview desserts.yaml --sort calories:desc

  # Filter by name only, twenty per page
  tableview -i desserts.json --filter ice --filterable name -n 20

  # Browse and select rows interactively
  tableview desserts.toml --interactive

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
