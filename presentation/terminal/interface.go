// Package terminal is the CLI front end: it wires the compiler, engine
// and infrastructure together and renders a run report to stdout.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"qa_automation/application/compiler"
	"qa_automation/application/engine"
	"qa_automation/domain/entities"
	"qa_automation/domain/interfaces"
	"qa_automation/infrastructure/ai"
	"qa_automation/infrastructure/browser"
	"qa_automation/infrastructure/storage"
)

type options struct {
	headless   bool
	randomData bool
	reportID   string
	reportsDir string
	verbose    bool
}

// NewRootCommand builds the qa-agent command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "qa-agent \"<instruction>\"",
		Short: "Run a browser test from a natural-language instruction",
		Long: "qa-agent compiles a plain-English instruction like\n" +
			"\"search apples on google\" into browser actions, executes them\n" +
			"and writes a step-by-step report with screenshots.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.headless, "headless", true, "run the browser without a visible window")
	cmd.Flags().BoolVar(&opts.randomData, "random-data", false, "generate throwaway values for unfilled signup fields")
	cmd.Flags().StringVar(&opts.reportID, "report-id", "", "report identifier (generated when empty)")
	cmd.Flags().StringVar(&opts.reportsDir, "reports-dir", "", "directory for reports and screenshots (default reports/ or QA_REPORTS_DIR)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute runs the CLI with signal-aware cancellation.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCommand().ExecuteContext(ctx)
}

func run(ctx context.Context, instruction string, opts *options) error {
	if err := godotenv.Load(); err != nil {
		// .env file is optional
		fmt.Println("Warning: .env file not found, using environment variables")
	}

	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	reportsDir := opts.reportsDir
	if reportsDir == "" {
		reportsDir = os.Getenv("QA_REPORTS_DIR")
	}
	if reportsDir == "" {
		reportsDir = "reports"
	}

	store, err := storage.NewFileScreenshotStore(reportsDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize screenshot storage: %w", err)
	}

	var summarizer interfaces.Summarizer
	if client, err := ai.NewSummarizerClient(logger); err != nil {
		logger.WithError(err).Info("running without AI summaries")
	} else {
		summarizer = client
	}

	actions, err := compiler.New().Compile(instruction, opts.randomData)
	if err != nil {
		var cerr *entities.CompileError
		if errors.As(err, &cerr) {
			printCompileError(cerr)
		}
		return err
	}

	eng := engine.New(browser.NewBrowserController, store, summarizer, logger)
	result, err := eng.Run(ctx, actions, engine.Options{
		Headless:    opts.headless,
		ReportID:    opts.reportID,
		Instruction: instruction,
	})
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	printResult(result)
	return nil
}

func printCompileError(cerr *entities.CompileError) {
	fmt.Printf("Cannot run this instruction: %s\n", cerr.Reason)
	if len(cerr.MissingFields) > 0 {
		names := make([]string, len(cerr.MissingFields))
		for i, f := range cerr.MissingFields {
			names[i] = string(f)
		}
		fmt.Printf("Missing: %s\n", strings.Join(names, ", "))
	}
	if cerr.Suggestion != "" {
		fmt.Printf("Hint: %s\n", cerr.Suggestion)
	}
}

func printResult(result *entities.ExecutionResult) {
	fmt.Printf("\nReport %s\n", result.ReportID)
	fmt.Println(strings.Repeat("=", 50))

	for _, step := range result.Steps {
		marker := statusMarker(step.Status)
		line := step.Description
		if line == "" {
			line = string(step.Action)
		}
		fmt.Printf("%s Step %d: %s\n", marker, step.Step, line)
		if step.Details != "" {
			fmt.Printf("   %s\n", step.Details)
		}
		if len(step.Indicators) > 0 {
			fmt.Printf("   indicators: %s\n", strings.Join(step.Indicators, ", "))
		}
	}

	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Steps: %d total, %d passed, %d failed (%.0f%%)\n",
		result.Summary.TotalSteps, result.Summary.PassedSteps,
		result.Summary.FailedSteps, result.Summary.SuccessRate)

	if result.ResultSummary != "" {
		fmt.Printf("\nResult page: %s\n", result.ResultSummary)
	}
	if result.FinalScreenshot != nil {
		fmt.Printf("Screenshot: %s\n", result.FinalScreenshot.Path)
	}
}

func statusMarker(status entities.StepStatus) string {
	switch status {
	case entities.StatusPassed:
		return "[PASS]"
	case entities.StatusFailed:
		return "[FAIL]"
	case entities.StatusWarning:
		return "[WARN]"
	}
	return "[INFO]"
}
