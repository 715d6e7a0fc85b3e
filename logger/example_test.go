package logger_test

import (
	"fmt"
	"io"
	"os"

	"github.com/logportdev/logport/formatter"
	"github.com/logportdev/logport/handler/consolehandler"
	"github.com/logportdev/logport/logger"
)

func stdoutConfigurator() logger.Configurator {
	return logger.ConfiguratorFunc(func(category string) *logger.Logger {
		return logger.NewBuilder().
			WithName(category).
			WithHandler(consolehandler.New(consolehandler.Config{
				Writer:    os.Stdout,
				Formatter: &formatter.TextFormatter{DisableTimestamp: true},
			})).
			WithLevel(logger.InfoLevel).
			Build()
	})
}

func ExampleFactory() {
	f := logger.NewFactory(logger.FactoryConfig{
		Configurator: stdoutConfigurator(),
		Diagnostic:   io.Discard,
	})

	log := f.GetLogger("payments")
	log.Info("charge accepted", logger.Int("cents", 1250))
	log.Debug("below the configured level")

	// Output: [INFO] payments: charge accepted cents=1250
}

func ExampleFactory_GetLoggerFor() {
	f := logger.NewFactory(logger.FactoryConfig{
		Configurator: stdoutConfigurator(),
		Diagnostic:   io.Discard,
	})

	type pump struct{}
	log := f.GetLoggerFor(&pump{})
	log.Warn("pressure high")

	// Output: [WARN] logger_test.pump: pressure high
}

func ExampleParseLevel() {
	lvl, err := logger.ParseLevel("warning")
	fmt.Println(lvl, err)

	_, err = logger.ParseLevel("loud")
	fmt.Println(err)

	// Output:
	// WARN <nil>
	// unknown level: "loud"
}
