package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/oneinabillion/vedic-match/internal/matching"
	"github.com/oneinabillion/vedic-match/internal/payload"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	PromptShowMatches   = "Show ranked matches"
	PromptReportByGrade = "Report by grade"
	PromptMatchesToFile = "Dump matches to tmp file"
	PromptWriteResult   = "Write result and exit"
	PromptExit          = "Exit"
)

var errExit = errors.New("exit requested")

var prompt = promptui.Select{
	Label: "Proceed?",
	Items: []string{PromptShowMatches, PromptReportByGrade, PromptMatchesToFile, PromptWriteResult, PromptExit},
}

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank candidate charts against a source chart",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("request", "r", "", "file with the rank request document")
	rankCmd.Flags().String("inline", "", "inline rank request document")
	rankCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
	rankCmd.Flags().BoolP("auto-approve", "y", false, "write the result without the interactive prompt")
	rankCmd.Flags().Bool("include-ineligible", false, "keep gate-rejected candidates in the result")
}

// rank is the one-to-many command of the cli.
func rank(cmd *cobra.Command) {
	ctx := context.Background()

	logger := requestLogger(newLogger(), "rank", requestOrigin(cmd))

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the "+app, zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	data, err := loadRequest(cmd, "rank request")
	if err != nil {
		logger.Fatal("loading rank request",
			zap.Error(err),
			zap.String("hint", "pass --request FILE or --inline JSON"),
		)
	}
	logRequestDocument(logger, data)

	request, err := payload.NewParser(logger).ParseRankRequest(data, baseOptions(config))
	if err != nil {
		logger.Fatal("invalid rank request", zap.Error(err))
	}

	opts := request.Options
	if cmd.Flag("include-ineligible").Value.String() == "true" {
		opts.IncludeIneligible = true
	}

	logger.Info("starting the ranking",
		zap.String("source", request.Source.ID),
		zap.Int("candidates", len(request.Candidates)),
	)

	result, err := matching.New(logger).Rank(ctx, request.Source, request.Candidates, opts)
	if err != nil {
		logger.Fatal("ranking failed", zap.Error(err))
	}

	output := outputPath(cmd, config)

	if result.Len() == 0 {
		logger.Info("no matches left after the gate",
			zap.Int("candidates", result.TotalCandidates),
			zap.Int("excluded", result.ExcludedByGate),
		)
		if err := writeResult(logger, result, output); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		return
	}

	if cmd.Flag("auto-approve").Value.String() == "true" {
		if err := writeResult(logger, result, output); err != nil {
			logger.Fatal("writing result", zap.Error(err))
		}
		return
	}

	for {
		logger.Info("current list of matches",
			zap.Int("count", result.Len()),
			zap.Int("excluded", result.ExcludedByGate),
		)

		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, result, output); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func handleAction(action string, logger *zap.Logger, result *matching.RankResult, output string) error {
	switch action {
	case PromptShowMatches:
		pretty, _ := json.MarshalIndent(result.Matches, "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", result.Len()))
		return nil
	case PromptReportByGrade:
		pretty, _ := json.MarshalIndent(result.ReportByGrade(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", result.Len()))
		return nil
	case PromptMatchesToFile:
		filename, err := result.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump results to file: %w", err)
		}
		logger.Info("dumping result to file", zap.String("filename", filename))
		return nil
	case PromptWriteResult:
		if err := writeResult(logger, result, output); err != nil {
			return err
		}
		return errExit
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "got exit from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
