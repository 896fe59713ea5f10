package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/efreitasn/minimatch/internal/config"
	"github.com/efreitasn/minimatch/internal/service"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <input-file>\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	outPath := flag.String("o", "", "Output file path (default: derived from the input filename)")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up slog logger with configured level. Logs go to stderr so
	// they never interleave with a report written to stdout.
	var logLevel slog.Level
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	in, err := os.Open(inputPath)
	if err != nil {
		logger.Error("failed to open input", slog.String("path", inputPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer in.Close()

	outputPath := *outPath
	if outputPath == "" {
		outputPath = filepath.Join(cfg.OutputDir, deriveOutputName(filepath.Base(inputPath)))
	}
	out, err := os.Create(outputPath)
	if err != nil {
		logger.Error("failed to create output", slog.String("path", outputPath), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer out.Close()

	sess := service.NewSession(logger)
	if err := sess.Run(in, out); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("report written", slog.String("path", outputPath))
}

// deriveOutputName maps an input filename to its report filename: the
// digit run starting at the first digit and ending at the ".txt"
// suffix becomes "output<digits>.txt", so "input3.txt" maps to
// "output3.txt". A name without digits maps to "output.txt".
func deriveOutputName(name string) string {
	start := strings.IndexAny(name, "0123456789")
	end := strings.Index(name, ".txt")
	number := ""
	if start != -1 && end != -1 && start < end {
		number = name[start:end]
	}
	return "output" + number + ".txt"
}
