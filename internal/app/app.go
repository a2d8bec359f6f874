// Package app wires global-option parsing, configuration, the argument
// translator, and the API client into the single-call execution flow.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gitlab-cli/internal/cliargs"
	"gitlab-cli/internal/config"
	"gitlab-cli/internal/configure"
	"gitlab-cli/internal/gitlab"
	"gitlab-cli/internal/logging"
	"gitlab-cli/internal/output"
	"gitlab-cli/internal/registry"
	"gitlab-cli/internal/util"
)

// EnvPrettyJSON forces indented JSON output when set to a truthy value.
const EnvPrettyJSON = "GITLAB_PRETTY_JSON"

// Sentinel errors for the application layer.
var (
	ErrUsage = errors.New("usage error")
)

// --- Interfaces for Testability ---

// configLoader defines the interface for loading configuration.
type configLoader interface {
	Load(filename string) (*config.Config, error)
}

// apiClient is the surface of the GitLab client the runner uses.
type apiClient interface {
	Call(ctx context.Context, cmd registry.Command, desc *cliargs.Descriptor) ([]byte, error)
	FetchAll(ctx context.Context, cmd registry.Command, desc *cliargs.Descriptor) ([]byte, error)
}

// clientFactory builds an apiClient from configuration.
type clientFactory interface {
	New(cfg *config.Config) (apiClient, error)
}

// wizardRunner runs the interactive configuration flow.
type wizardRunner interface {
	Run(path string) error
}

// --- Default Implementations ---

type defaultConfigLoader struct{}

func (l *defaultConfigLoader) Load(filename string) (*config.Config, error) {
	return config.Load(filename)
}

type defaultClientFactory struct{}

func (f *defaultClientFactory) New(cfg *config.Config) (apiClient, error) {
	return gitlab.NewClient(cfg)
}

// --- AppRunner ---

// AppRunner encapsulates the application's execution logic and dependencies.
type AppRunner struct {
	configLoader  configLoader
	clientFactory clientFactory
	wizard        wizardRunner
	registry      *registry.Registry
	stdout        io.Writer
}

// AppRunnerOpts allows configuring the AppRunner's dependencies.
type AppRunnerOpts struct {
	ConfigLoader  configLoader
	ClientFactory clientFactory
	Wizard        wizardRunner
	Registry      *registry.Registry
	Stdout        io.Writer
}

// NewAppRunner creates a new instance of the application runner with default
// dependencies.
func NewAppRunner() *AppRunner {
	return NewAppRunnerWithOpts(AppRunnerOpts{})
}

// NewAppRunnerWithOpts creates a new AppRunner allowing dependency injection.
func NewAppRunnerWithOpts(opts AppRunnerOpts) *AppRunner {
	runner := &AppRunner{
		configLoader:  opts.ConfigLoader,
		clientFactory: opts.ClientFactory,
		wizard:        opts.Wizard,
		registry:      opts.Registry,
		stdout:        opts.Stdout,
	}
	if runner.configLoader == nil {
		runner.configLoader = &defaultConfigLoader{}
	}
	if runner.clientFactory == nil {
		runner.clientFactory = &defaultClientFactory{}
	}
	if runner.wizard == nil {
		runner.wizard = configure.NewWizard()
	}
	if runner.registry == nil {
		runner.registry = registry.Default()
	}
	if runner.stdout == nil {
		runner.stdout = os.Stdout
	}
	return runner
}

// usageText defines the command-line help information.
const usageText = `Usage:
  gitlab-cli [options] <method> [<arg> ...] [--<param>=<value> ...]

Options:
  -a, --all
        Fetch all pages of a listing and print one merged array
  -p, --pretty
        Pretty-print the JSON output (also via GITLAB_PRETTY_JSON)
  -v, --verbose
        Debug logging
  -q, --quiet
        Only log errors
  -f string
        Config file path (default "~/` + config.DefaultFileName + `")
  -h, --help
        Show help

Parameters:
  --key=value      string parameter (hyphens in key become underscores)
  --flag           boolean true
  --no-flag        boolean false
  --guest --reporter --developer --master --owner
                   set access_level to 10/20/30/40/50

Examples:
  gitlab-cli project 42 --per-page=10
  gitlab-cli -a groups
  gitlab-cli add_project_member 42 --user-id=7 --developer
  gitlab-cli configure
`

// Usage prints the command-line help information to the specified writer.
func (a *AppRunner) Usage(writer io.Writer) {
	fmt.Fprint(writer, usageText)
}

// Run parses global options and executes one API call.
func (a *AppRunner) Run(args []string) error {
	fs := flag.NewFlagSet("gitlab-cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		allFlag     bool
		prettyFlag  bool
		verboseFlag bool
		quietFlag   bool
		helpFlag    bool
		configPath  string
	)
	fs.BoolVar(&allFlag, "a", false, "Fetch all pages")
	fs.BoolVar(&allFlag, "all", false, "Fetch all pages")
	fs.BoolVar(&prettyFlag, "p", false, "Pretty-print JSON output")
	fs.BoolVar(&prettyFlag, "pretty", false, "Pretty-print JSON output")
	fs.BoolVar(&verboseFlag, "v", false, "Debug logging")
	fs.BoolVar(&verboseFlag, "verbose", false, "Debug logging")
	fs.BoolVar(&quietFlag, "q", false, "Only log errors")
	fs.BoolVar(&quietFlag, "quiet", false, "Only log errors")
	fs.BoolVar(&helpFlag, "help", false, "Show help")
	fs.StringVar(&configPath, "f", "", "Config file path")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			a.Usage(os.Stderr)
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if helpFlag {
		a.Usage(os.Stderr)
		return nil
	}

	if configPath == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return err
		}
		configPath = path
	}

	desc, err := cliargs.Parse(fs.Args(), allFlag)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	// The configure pseudo-method never builds a call descriptor; it hands
	// off to the interactive wizard and the process exits afterwards.
	if desc.Method == cliargs.ConfigureMethod {
		return a.wizard.Run(configPath)
	}

	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return err
	}
	logging.SetLevel(logging.FromFlags(verboseFlag, quietFlag, cfg.Logging.Level))

	client, err := a.clientFactory.New(cfg)
	if err != nil {
		return err
	}

	ctx := context.Background()
	body, err := a.dispatch(ctx, client, desc)
	if err != nil {
		return err
	}

	pretty := prettyFlag || util.Truthy(os.Getenv(EnvPrettyJSON))
	return output.Print(a.stdout, body, pretty)
}

// dispatch resolves the descriptor against the registry and executes it,
// routing the pagination helper to FetchAll.
func (a *AppRunner) dispatch(ctx context.Context, client apiClient, desc *cliargs.Descriptor) ([]byte, error) {
	if desc.Method == cliargs.PaginatorMethod {
		if len(desc.Args) == 0 {
			return nil, fmt.Errorf("%w: %s requires a method name argument", ErrUsage, cliargs.PaginatorMethod)
		}
		name := cliargs.Normalize(desc.Args[0])
		cmd, err := a.registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		target := &cliargs.Descriptor{
			Method: name,
			Args:   desc.Args[1:],
			Params: desc.Params,
		}
		logging.Logf(logging.Debug, "Dispatching paginated %s %s", cmd.HTTPMethod, cmd.Path)
		return client.FetchAll(ctx, cmd, target)
	}

	cmd, err := a.registry.Lookup(desc.Method)
	if err != nil {
		return nil, err
	}
	logging.Logf(logging.Debug, "Dispatching %s %s", cmd.HTTPMethod, cmd.Path)
	return client.Call(ctx, cmd, desc)
}
