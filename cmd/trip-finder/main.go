package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/cmalloy/trip-finder/internal/config"
	"github.com/cmalloy/trip-finder/internal/optimizer"
	"github.com/cmalloy/trip-finder/internal/providers"
	"github.com/cmalloy/trip-finder/internal/retrieval"
	"github.com/cmalloy/trip-finder/pkg/constants"
	"github.com/cmalloy/trip-finder/pkg/output"
	"github.com/cmalloy/trip-finder/pkg/validation"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func buildProvider(conf config.ProviderConfig) (providers.Provider, error) {
	switch conf.Type {
	case constants.ProviderFixture:
		return providers.NewFixtureProvider(conf.FixturePath)
	case constants.ProviderHTTP:
		timeout := time.Duration(conf.TimeoutSeconds) * time.Second
		return providers.NewHTTPProvider(conf.BaseURL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", conf.Type)
	}
}

func main() {
	// Optional .env for local overrides; absence is not an error.
	_ = godotenv.Load()

	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, json")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	if err := validation.ValidateStayThresholds(conf.Search.MinStopover1Days, conf.Search.MinStopover2Days); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Expand the configured date specifications into concrete date lists.
	if err := conf.ParseDateLists(); err != nil {
		logger.Fatal("failed to parse date lists",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	provider, err := buildProvider(conf.Provider)
	if err != nil {
		logger.Fatal("failed to construct flight data provider",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	retriever := retrieval.NewRetriever(provider, logger)
	constraints := optimizer.Constraints{
		MinStopover1Days: conf.Search.MinStopover1Days,
		MinStopover2Days: conf.Search.MinStopover2Days,
	}
	ctx := context.Background()

	switch conf.Search.Mode {
	case constants.ModeSegments:
		lists, err := retriever.RetrieveSegments(ctx, conf.Search)
		if err != nil {
			logger.Fatal("failed to retrieve segment candidates",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

		opt := optimizer.NewSegmentOptimizer(constraints, logger)
		results, err := opt.FindBestCombinations(lists, conf.Search.TopN)
		if err != nil {
			logger.Fatal("failed to search segment combinations",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if len(results) == 0 {
			logger.Info("no valid combinations found; consider expanding date ranges or relaxing constraints",
				zap.String("op", "main"),
			)
			return
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			err = output.PrettyFormatSegments(results)
		case constants.OutputFormatJSON:
			var rows []output.SegmentItineraryResult
			if rows, err = output.BuildSegmentResults(results); err == nil {
				err = output.WriteJSON(conf.Output.File, rows)
			}
		}
		if err != nil {
			logger.Fatal("failed to write results",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

	case constants.ModeRoundTrips:
		outer, inner := retriever.RetrieveRoundTrips(ctx, conf.Search)

		opt := optimizer.NewRoundTripOptimizer(constraints, logger)
		results, err := opt.FindBestCombinations(outer, inner, conf.Search.TopN)
		if err != nil {
			logger.Fatal("failed to search round trip combinations",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if len(results) == 0 {
			logger.Info("no valid combinations found; consider expanding date ranges or relaxing constraints",
				zap.String("op", "main"),
			)
			return
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			err = output.PrettyFormatRoundTrips(results)
		case constants.OutputFormatJSON:
			var rows []output.RoundTripItineraryResult
			if rows, err = output.BuildRoundTripResults(results); err == nil {
				err = output.WriteJSON(conf.Output.File, rows)
			}
		}
		if err != nil {
			logger.Fatal("failed to write results",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}

	default:
		logger.Fatal(fmt.Sprintf("unknown search mode %q", conf.Search.Mode),
			zap.String("op", "main"),
		)
	}
}
