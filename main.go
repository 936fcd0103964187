package main

import (
	"fmt"
	"log"
	"os"

	"github.com/informasjonsforvaltning/locale-contract-tests/framework"
	"github.com/informasjonsforvaltning/locale-contract-tests/localetests"

	"github.com/fatih/color"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	cfg, err := parseEnvConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid environment: %s\n", err)
		return 1
	}
	var params commandParams
	if !params.Read(args, cfg, os.Stderr) {
		return 1
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	if err := framework.AwaitTarget(params.targetURL, params.await, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Service error: %s\n", err)
		return 1
	}

	target := localetests.Target{
		URL:                  params.targetURL,
		CheckContentLanguage: params.checkContentLanguage,
	}
	if params.browser {
		mainDebugLogger.Printf("Launching browser (headless: %t)", params.headless)
		fetcher, err := localetests.NewBrowserFetcher(params.headless, params.timeout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Browser error: %s\n", err)
			return 1
		}
		defer func() {
			if err := fetcher.Close(); err != nil {
				mainDebugLogger.Printf("Error shutting down browser: %s", err)
			}
		}()
		target.Fetcher = fetcher
	} else {
		target.Fetcher = localetests.NewHTTPFetcher(params.timeout)
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running locale contract tests against %s\n", params.targetURL)

	testLogger := &ConsoleTestLogger{
		Out:                  color.Output,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := localetests.RunTestSuite(target, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)
	if !results.OK() {
		return 1
	}
	return 0
}
