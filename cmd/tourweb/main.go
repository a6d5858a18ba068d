package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/spf13/pflag"

	"github.com/eringen/tourweb"
	"github.com/eringen/tourweb/storage"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(os.Args[2:])
	case "export":
		err = runExport(os.Args[2:], os.Stdout)
	case "reset":
		err = runReset(os.Args[2:])
	case "version":
		fmt.Printf("tourweb %s\n", version)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `tourweb - marketing site, blog and pricing admin for a virtual-tour product

Usage:
  tourweb <command> [flags]

Commands:
  serve         Start the web server
  export        Print the stored blog and pricing documents as JSON
  reset         Delete the stored documents; defaults are seeded on next start
  version       Print the tourweb version
  help          Show this help message

Configuration is read from TOURWEB_* environment variables and an
optional .env file. Common flags:
  --env-file    dotenv file to load (default ".env")
  --store       substrate DSN, overrides TOURWEB_STORE

Examples:
  tourweb serve --addr :8080
  tourweb export --key pricingData
  tourweb reset --store redis://localhost:6379/0`)
}

// commonFlags registers the flags every command shares and returns a
// loader for the resulting configuration.
func commonFlags(fs *pflag.FlagSet) func() (tourweb.SiteConfig, error) {
	envFile := fs.String("env-file", ".env", "dotenv file to load")
	store := fs.String("store", "", "substrate DSN (memory:, sqlite:<path>, redis://...)")
	return func() (tourweb.SiteConfig, error) {
		cfg, err := tourweb.LoadConfig(*envFile)
		if err != nil {
			return cfg, err
		}
		if *store != "" {
			cfg.Store = *store
		}
		return cfg, nil
	}
}

func newLogger() *log.Logger {
	l := log.New("tourweb")
	l.SetHeader("${time_rfc3339} ${level} ${prefix}")
	l.SetLevel(log.INFO)
	return l
}

func runServe(args []string) error {
	fs := pflag.NewFlagSet("serve", pflag.ContinueOnError)
	load := commonFlags(fs)
	addr := fs.String("addr", "", "listen address, overrides TOURWEB_ADDR")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := load()
	if err != nil {
		return err
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	app := tourweb.New(cfg, tourweb.DefaultViews())
	app.Echo.Logger.SetLevel(log.INFO)
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- app.Start() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func openAdapter(cfg tourweb.SiteConfig) (*storage.Adapter, func() error, error) {
	sub, err := storage.Open(cfg.Store, cfg.RedisPrefix)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return storage.NewAdapter(sub, newLogger()), sub.Close, nil
}

func runExport(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("export", pflag.ContinueOnError)
	load := commonFlags(fs)
	key := fs.String("key", "", "export only this key ("+storage.BlogKey+" or "+storage.PricingKey+")")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := load()
	if err != nil {
		return err
	}
	adapter, closeStore, err := openAdapter(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	snap := adapter.Export(context.Background())
	var v any
	switch *key {
	case "":
		v = snap
	case storage.BlogKey:
		v = snap.BlogData
	case storage.PricingKey:
		v = snap.PricingData
	default:
		return fmt.Errorf("unknown key %q", *key)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runReset(args []string) error {
	fs := pflag.NewFlagSet("reset", pflag.ContinueOnError)
	load := commonFlags(fs)
	yes := fs.BoolP("yes", "y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if !*yes {
		return errors.New("reset deletes all blog posts and pricing plans; rerun with --yes")
	}
	cfg, err := load()
	if err != nil {
		return err
	}
	adapter, closeStore, err := openAdapter(cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := adapter.Reset(context.Background()); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Println("Store reset. Defaults will be seeded on next start.")
	return nil
}
