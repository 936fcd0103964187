package main

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/informasjonsforvaltning/locale-contract-tests/framework"
	"github.com/informasjonsforvaltning/locale-contract-tests/servicedef"

	"github.com/caarlos0/env/v11"
)

// envConfig holds the defaults that can be set from the environment. Command line flags
// override them.
type envConfig struct {
	URL      string        `env:"CONTRACT_TEST_URL"`
	Browser  bool          `env:"CONTRACT_TEST_BROWSER" envDefault:"false"`
	Headless bool          `env:"CONTRACT_TEST_HEADLESS" envDefault:"true"`
	Timeout  time.Duration `env:"CONTRACT_TEST_TIMEOUT" envDefault:"60s"`
	Await    time.Duration `env:"CONTRACT_TEST_AWAIT" envDefault:"0s"`
}

type commandParams struct {
	targetURL            string
	filters              framework.RegexFilters
	browser              bool
	headless             bool
	timeout              time.Duration
	await                time.Duration
	checkContentLanguage bool
	debug                bool
	debugAll             bool
}

func parseEnvConfig() (envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.URL == "" {
		cfg.URL = servicedef.DefaultTargetURL
	}
	return cfg, nil
}

// Read parses the command line, using cfg for the default values. It returns false, after
// printing the problem to errOut, if the parameters are not usable.
func (c *commandParams) Read(args []string, cfg envConfig, errOut io.Writer) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&c.targetURL, "url", cfg.URL, "URL of the contract-test page")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.browser, "browser", cfg.Browser,
		"visit pages in a Chromium browser instead of plain HTTP; the browser always sends its own Accept-Language, so the default case cannot omit it")
	fs.BoolVar(&c.headless, "headless", cfg.Headless, "run the browser without a window (only with -browser)")
	fs.DurationVar(&c.timeout, "timeout", cfg.Timeout, "maximum time for a single page visit")
	fs.DurationVar(&c.await, "await", cfg.Await, "wait up to this long for the service to respond before running tests")
	fs.BoolVar(&c.checkContentLanguage, "check-content-language", false,
		"also check that Content-Language matches the negotiated language")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if c.targetURL == "" {
		fmt.Fprintln(errOut, "-url must not be empty")
		fs.Usage()
		return false
	}
	if c.timeout <= 0 {
		fmt.Fprintln(errOut, "-timeout must be positive")
		fs.Usage()
		return false
	}
	return true
}
