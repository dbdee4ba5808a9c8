package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasnullable/internal/cliutil"
	"github.com/erraggy/oasnullable/internal/mcpserver"
	"github.com/erraggy/oasnullable/oaserrors"
	"github.com/joho/godotenv"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	EnvFile string
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// Returns the FlagSet and an MCPFlags struct with bound flag variables.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.StringVar(&flags.EnvFile, "env-file", "", "load OASNULLABLE_* settings from a .env file before starting")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: oasnullable mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Run a Model Context Protocol server over stdio exposing the convert_nullable tool.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  OASNULLABLE_INCLUDE_INFO    report every conversion (default: true)\n")
		cliutil.Writef(fs.Output(), "  OASNULLABLE_CHECK           verify converted output is well-formed YAML (default: false)\n")
		cliutil.Writef(fs.Output(), "  OASNULLABLE_MAX_INPUT_SIZE  maximum input size in bytes (default: 10485760)\n")
		cliutil.Writef(fs.Output(), "\nVariables already set in the environment take precedence over the env file.\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command accepts no arguments")
	}

	if err := LoadEnvFile(flags.EnvFile); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}

// LoadEnvFile loads variables from path into the process environment without
// overriding variables that are already set. An empty path is a no-op.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return &oaserrors.ConfigError{Option: "env-file", Value: path, Message: "cannot load env file", Cause: err}
	}
	return nil
}
