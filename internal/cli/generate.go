package cli

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/hightemp/ccgen/internal/config"
	"github.com/hightemp/ccgen/internal/countries"
	"github.com/hightemp/ccgen/internal/fetch"
	"github.com/hightemp/ccgen/internal/output"
	"github.com/hightemp/ccgen/internal/table"
	"github.com/spf13/cobra"
)

func runGenerate(cmd *cobra.Command, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return generate(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// generate runs fetch, extraction, pairing and rendering. stdout receives
// the document only when every stage has succeeded.
func generate(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	mode, err := countries.ParseMode(cfg.Mode)
	if err != nil {
		return &exitError{code: ExitInvalidInput, err: err}
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return &exitError{code: ExitInvalidInput, err: err}
	}
	formatter, err := output.New(format, cfg.Reference)
	if err != nil {
		return &exitError{code: ExitInvalidInput, err: err}
	}

	logger := newLogger(stderr, cfg.Verbose)

	client := fetch.NewClientWithTimeout(cfg.URL, cfg.Timeout)
	client.SetUserAgent(config.UserAgent(Version))

	logger.Printf("fetching %s", client.URL())
	body, err := client.Get(ctx)
	if err != nil {
		return &exitError{code: ExitFetchFailed, err: fmt.Errorf("fetch %s: %w", client.URL(), err)}
	}
	logger.Printf("fetched %d bytes", len(body))

	set, err := extract(body, mode)
	if err != nil {
		return err
	}
	logger.Printf("extracted %d countries (mode %s)", len(set), mode)

	if cfg.Dump {
		spew.Fdump(stderr, set)
	}

	if cfg.Check {
		for _, p := range countries.Unknown(set) {
			fmt.Fprintf(stderr, "Warning: %s (%s) is not an ISO-3166-1 alpha-2 code\n", p.Code, p.Name)
		}
	}

	data, err := formatter.Format(set)
	if err != nil {
		return fmt.Errorf("render %s: %w", format, err)
	}

	if cfg.Out != "" {
		if err := writeFile(cfg.Out, data); err != nil {
			return fmt.Errorf("write %s: %w", cfg.Out, err)
		}
		logger.Printf("wrote %s (%d bytes)", cfg.Out, len(data))
		return nil
	}

	_, err = stdout.Write(data)
	return err
}

// extract reads the pair set from the first table of the page.
func extract(body string, mode countries.Mode) (countries.Set, error) {
	doc, err := table.ParseString(body)
	if err != nil {
		return nil, &exitError{code: ExitNoTable, err: err}
	}

	tbody, err := doc.FirstBody()
	if err != nil {
		return nil, &exitError{code: ExitNoTable, err: err}
	}

	var set countries.Set
	switch mode {
	case countries.ModeLines:
		set, err = countries.FromLines(countries.Normalize(table.Text(tbody)))
	default:
		set, err = countries.FromRows(table.Rows(tbody))
	}
	if err != nil {
		return nil, &exitError{code: ExitBadData, err: err}
	}

	return set, nil
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		w = io.Discard
	}
	return log.New(w, config.AppName+": ", 0)
}

// writeFile replaces path with data through a temporary file in the same
// directory, so readers never observe a partial document.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := config.EnsureDir(dir); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+config.AppName+"-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(config.OutputFileMode); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
