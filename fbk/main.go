package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/finbook/cmd"
	"github.com/etnz/finbook/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Run
// 'COMP_INSTALL=1 fbk' once to install it.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"book": predict.Dirs("*"),
	},
	Sub: map[string]*complete.Command{
		"add-account":   {Flags: map[string]complete.Predictor{"type": predict.Set{"Bank", "Wallet"}}},
		"accounts":      {},
		"add":           {Flags: map[string]complete.Predictor{"type": predict.Set{"income", "expense"}, "via": predict.Set{"UPI", "Cash", "Card", "Bank"}}},
		"del-tx":        {},
		"tx":            {},
		"auto-add":      {Flags: map[string]complete.Predictor{"freq": predict.Set{"Monthly", "Quarterly", "Yearly", "One-Time"}}},
		"auto-del":      {},
		"schedule":      {},
		"loan":          {},
		"del-loan":      {},
		"insurance":     {Flags: map[string]complete.Predictor{"kind": predict.Set{"Life", "Health", "Vehicle"}, "freq": predict.Set{"Monthly", "Quarterly", "Yearly", "One-Time"}}},
		"del-insurance": {},
		"lend":          {},
		"repaid":        {},
		"bullion":       {Flags: map[string]complete.Predictor{"metal": predict.Set{"Gold", "Silver"}}},
		"fd":            {},
		"estate":        {},
		"summary":       {},
		"networth":      {},
		"query":         {},
		"assist":        {},
		"topic":         {Args: predict.Set{"readme", "accounts", "catchup", "loans", "lending"}},
	},
}

func main() {
	completion.Complete("fbk")

	// Best effort, the .env file is optional.
	godotenv.Load()

	if err := logger.Setup(logger.FromEnv()); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: bad logging configuration:", err)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	status := commander.Execute(context.Background())

	// Unknown subcommands may be provided by fbk-<name> extensions on PATH.
	if status == subcommands.ExitUsageError && flag.NArg() > 0 {
		if ran, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}
	os.Exit(int(status))
}
