package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Scusemua/go-utils/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

var (
	options = Options{
		Variant: AllVariants,
		Keys:    10000,
		KeyKind: KeyKindInt,
		Hasher:  HasherDefault,
	}
)

func init() {
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func main() {
	flags, err := config.ValidateOptions(&options)
	if errors.Is(err, config.ErrPrintUsage) {
		flags.PrintDefaults()
		os.Exit(0)
	} else if err != nil {
		log.Fatal(err)
	}

	// the level is only final once the options are validated
	globalLogger := config.GetLogger("")
	globalLogger.Debug("Started with options: %+v", options)

	results, err := run(&options, globalLogger)
	if err != nil {
		globalLogger.Error("Workload could not run: %v", err)
		os.Exit(2)
	}
	fmt.Println(render(results))
	if failed(results) {
		os.Exit(1)
	}
}
