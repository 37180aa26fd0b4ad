// Package shell drives the product service from a numbered text menu.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/abgdnv/stockroom/internal/product/chart"
	producterrors "github.com/abgdnv/stockroom/internal/product/errors"
	"github.com/abgdnv/stockroom/internal/product/service"
	"github.com/abgdnv/stockroom/pkg/logger"
)

const chartTitle = "Stock Visualization"

// Options configures the file-backed commands.
type Options struct {
	// DataFile is offered when the load or save prompt is left blank.
	DataFile string
	// ChartFile receives the rendered chart. Empty disables the file output.
	ChartFile string
	// ChartRenderer draws into ChartFile.
	ChartRenderer chart.Renderer
	// TextRenderer draws onto the terminal.
	TextRenderer chart.Renderer
}

type handlerFunc func(ctx context.Context) error

// Shell runs the numbered menu against a ProductService.
type Shell struct {
	service  service.ProductService
	opts     Options
	input    io.Reader
	in       *lineReader
	out      io.Writer
	logger   *slog.Logger
	handlers map[Command]handlerFunc
}

// New creates a Shell reading answers from in and writing prompts and results to out.
func New(svc service.ProductService, opts Options, in io.Reader, out io.Writer, logger *slog.Logger) *Shell {
	s := &Shell{
		service: svc,
		opts:    opts,
		input:   in,
		out:     out,
		logger:  logger.With("component", "shell"),
	}
	s.handlers = map[Command]handlerFunc{
		CommandAdd:        s.add,
		CommandEdit:       s.edit,
		CommandRemove:     s.remove,
		CommandSell:       s.sell,
		CommandView:       s.view,
		CommandSearch:     s.search,
		CommandSort:       s.sort,
		CommandFilter:     s.filter,
		CommandTotalValue: s.totalValue,
		CommandLoad:       s.load,
		CommandSave:       s.save,
		CommandVisualize:  s.visualize,
	}
	return s
}

// Run shows the menu and executes commands until Exit is chosen or the input ends,
// both of which return nil. It returns ctx.Err() once ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	s.in = newLineReader(s.input)
	defer s.in.Close()

	for {
		s.printMenu()
		choice, err := s.prompt(ctx, "Choose option: ")
		if err != nil {
			return s.stop(ctx, err)
		}
		cmd, err := ParseCommand(choice)
		if err != nil {
			s.logger.DebugContext(ctx, "Invalid menu option", "choice", choice)
			fmt.Fprintln(s.out, "Invalid option. Try again.")
			continue
		}
		if cmd == CommandExit {
			fmt.Fprintln(s.out, "Exiting. Thank you!")
			s.logger.InfoContext(ctx, "Exit requested")
			return nil
		}

		cmdCtx := logger.WithCommand(ctx, cmd.String())
		s.logger.DebugContext(cmdCtx, "Running command")
		if err := s.handlers[cmd](cmdCtx); err != nil {
			if isInputClosed(err) {
				return s.stop(ctx, err)
			}
			s.report(cmdCtx, err)
		}
	}
}

// stop turns the error that ended input into Run's result.
func (s *Shell) stop(ctx context.Context, err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		s.logger.InfoContext(ctx, "Input closed")
		return nil
	}
	if ctx.Err() != nil {
		s.logger.InfoContext(ctx, "Shell cancelled")
		return ctx.Err()
	}
	return fmt.Errorf("failed to read input: %w", err)
}

func isInputClosed(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (s *Shell) printMenu() {
	var b strings.Builder
	b.WriteString("\nInventory Management System\n")
	for cmd := CommandAdd; cmd <= CommandExit; cmd++ {
		fmt.Fprintf(&b, "%d. %s\n", int(cmd), cmd.Title())
	}
	io.WriteString(s.out, b.String())
}

// report prints the message for a failed command. Handlers print their own
// success output and leave every failure to report.
func (s *Shell) report(ctx context.Context, err error) {
	kind := producterrors.KindOf(err)
	s.logger.WarnContext(ctx, "Command failed", "kind", kind.String(), "error", err)

	var stockErr *producterrors.StockError
	switch {
	case errors.As(err, &stockErr):
		fmt.Fprintf(s.out, "Not enough stock. Available: %d\n", stockErr.Available)
	case errors.Is(err, producterrors.ErrInvalidSortKey):
		fmt.Fprintln(s.out, "Invalid sort criteria.")
	case errors.Is(err, producterrors.ErrNoProducts):
		fmt.Fprintln(s.out, "No products available.")
	case errors.Is(err, producterrors.ErrNoMatchingProducts):
		fmt.Fprintln(s.out, "No matching products found.")
	case errors.Is(err, producterrors.ErrNoChartData):
		fmt.Fprintln(s.out, "No data to visualize.")
	case errors.Is(err, producterrors.ErrFileNotFound):
		fmt.Fprintln(s.out, "File not found.")
	case kind == producterrors.KindInvalidInput:
		fmt.Fprintf(s.out, "Invalid input: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

// notFound reports a lookup miss by product name.
func (s *Shell) notFound(ctx context.Context, name string, err error) error {
	if producterrors.KindOf(err) != producterrors.KindNotFound {
		return err
	}
	s.logger.InfoContext(ctx, "Product not found", "name", name)
	fmt.Fprintf(s.out, "Product '%s' not found.\n", name)
	return nil
}

func (s *Shell) add(ctx context.Context) error {
	name, err := s.prompt(ctx, "Product Name: ")
	if err != nil {
		return err
	}
	quantity, err := s.promptInt(ctx, "Quantity: ")
	if err != nil {
		return err
	}
	price, err := s.promptFloat(ctx, "Price: ")
	if err != nil {
		return err
	}
	category, err := s.prompt(ctx, "Category: ")
	if err != nil {
		return err
	}
	created, err := s.service.Create(ctx, service.ProductDto{
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Category: category,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Product '%s' added successfully.\n", created.Name)
	return nil
}

func (s *Shell) edit(ctx context.Context) error {
	name, err := s.prompt(ctx, "Product Name to Edit: ")
	if err != nil {
		return err
	}
	// Check first so a missing product does not cost three more prompts.
	if _, err := s.service.FindByName(ctx, name); err != nil {
		return s.notFound(ctx, name, err)
	}
	quantity, err := s.promptInt(ctx, "New Quantity: ")
	if err != nil {
		return err
	}
	price, err := s.promptFloat(ctx, "New Price: ")
	if err != nil {
		return err
	}
	category, err := s.prompt(ctx, "New Category: ")
	if err != nil {
		return err
	}
	updated, err := s.service.Update(ctx, service.ProductDto{
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Category: category,
	})
	if err != nil {
		return s.notFound(ctx, name, err)
	}
	fmt.Fprintf(s.out, "Product '%s' updated successfully.\n", updated.Name)
	return nil
}

func (s *Shell) remove(ctx context.Context) error {
	name, err := s.prompt(ctx, "Product Name to Remove: ")
	if err != nil {
		return err
	}
	if err := s.service.DeleteByName(ctx, name); err != nil {
		return s.notFound(ctx, name, err)
	}
	fmt.Fprintf(s.out, "Product '%s' removed.\n", name)
	return nil
}

func (s *Shell) sell(ctx context.Context) error {
	name, err := s.prompt(ctx, "Product Name to Sell: ")
	if err != nil {
		return err
	}
	quantity, err := s.promptInt(ctx, "Quantity to Sell: ")
	if err != nil {
		return err
	}
	sold, err := s.service.Sell(ctx, name, quantity)
	if err != nil {
		return s.notFound(ctx, name, err)
	}
	fmt.Fprintf(s.out, "Sold %d of '%s'. Remaining: %d\n", quantity, sold.Name, sold.Quantity)
	return nil
}

func (s *Shell) view(ctx context.Context) error {
	products, err := s.service.FindAll(ctx)
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) search(ctx context.Context) error {
	name, err := s.prompt(ctx, "Search Product Name: ")
	if err != nil {
		return err
	}
	found, err := s.service.FindByName(ctx, name)
	if err != nil {
		return s.notFound(ctx, name, err)
	}
	fmt.Fprintf(s.out, "Found: %s\n", found)
	return nil
}

func (s *Shell) sort(ctx context.Context) error {
	answer, err := s.prompt(ctx, "Sort by (name/price/quantity): ")
	if err != nil {
		return err
	}
	key := strings.ToLower(strings.TrimSpace(answer))
	if err := s.service.Sort(ctx, key); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Products sorted by %s.\n", key)
	return nil
}

func (s *Shell) filter(ctx context.Context) error {
	category, err := s.prompt(ctx, "Category to Filter: ")
	if err != nil {
		return err
	}
	minPrice, err := s.promptOptionalFloat(ctx, "Minimum Price (blank for none): ")
	if err != nil {
		return err
	}
	maxPrice, err := s.promptOptionalFloat(ctx, "Maximum Price (blank for none): ")
	if err != nil {
		return err
	}
	products, err := s.service.Filter(ctx, category, minPrice, maxPrice)
	if err != nil {
		return err
	}
	s.printProducts(products)
	return nil
}

func (s *Shell) totalValue(ctx context.Context) error {
	total := s.service.TotalValue(ctx)
	fmt.Fprintf(s.out, "Total Inventory Value: %s\n", total.StringFixed(2))
	return nil
}

func (s *Shell) load(ctx context.Context) error {
	path, err := s.promptPath(ctx, "Filename to Load From")
	if err != nil {
		return err
	}
	n, err := s.service.Load(ctx, path)
	if err != nil {
		if errors.Is(err, producterrors.ErrFileNotFound) {
			return err
		}
		fmt.Fprintf(s.out, "Error loading data: %v\n", err)
		if n > 0 {
			fmt.Fprintf(s.out, "%d product(s) were added before the error.\n", n)
		}
		s.logger.WarnContext(ctx, "Load aborted", "path", path, "loaded", n, "error", err)
		return nil
	}
	fmt.Fprintf(s.out, "Data loaded successfully (%d product(s)).\n", n)
	return nil
}

func (s *Shell) save(ctx context.Context) error {
	path, err := s.promptPath(ctx, "Filename to Save To")
	if err != nil {
		return err
	}
	n, err := s.service.Save(ctx, path)
	if err != nil {
		fmt.Fprintf(s.out, "Error saving data: %v\n", err)
		s.logger.WarnContext(ctx, "Save aborted", "path", path, "error", err)
		return nil
	}
	fmt.Fprintf(s.out, "Data saved successfully (%d product(s)).\n", n)
	return nil
}

func (s *Shell) visualize(ctx context.Context) error {
	bars, err := s.service.StockLevels(ctx)
	if err != nil {
		return err
	}
	if s.opts.TextRenderer != nil {
		if err := s.opts.TextRenderer.Render(s.out, chartTitle, bars); err != nil {
			return fmt.Errorf("failed to draw chart: %w", err)
		}
	}
	if s.opts.ChartFile == "" || s.opts.ChartRenderer == nil {
		return nil
	}
	if err := s.writeChart(bars); err != nil {
		fmt.Fprintf(s.out, "Error writing chart: %v\n", err)
		s.logger.WarnContext(ctx, "Chart not written", "path", s.opts.ChartFile, "error", err)
		return nil
	}
	s.logger.InfoContext(ctx, "Chart written", "path", s.opts.ChartFile, "bars", len(bars))
	fmt.Fprintf(s.out, "Chart saved to %s.\n", s.opts.ChartFile)
	return nil
}

func (s *Shell) writeChart(bars []chart.Bar) (err error) {
	f, err := os.Create(s.opts.ChartFile)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()
	return s.opts.ChartRenderer.Render(f, chartTitle, bars)
}

// promptPath asks for a file name and falls back to the configured data file.
func (s *Shell) promptPath(ctx context.Context, label string) (string, error) {
	if s.opts.DataFile != "" {
		label = fmt.Sprintf("%s [%s]", label, s.opts.DataFile)
	}
	answer, err := s.prompt(ctx, label+": ")
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(answer)
	if path == "" {
		path = s.opts.DataFile
	}
	if path == "" {
		return "", fmt.Errorf("%w: file name is required", producterrors.ErrInvalidInput)
	}
	return path, nil
}

func (s *Shell) printProducts(products []service.ProductDto) {
	var b strings.Builder
	for _, p := range products {
		b.WriteString(p.String())
		b.WriteString("\n")
	}
	io.WriteString(s.out, b.String())
}
