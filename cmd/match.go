package cmd

import (
	"github.com/oneinabillion/vedic-match/internal/matching"
	"github.com/oneinabillion/vedic-match/internal/payload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Compute the full compatibility result for a pair of charts",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("request", "r", "", "file with the match request document")
	matchCmd.Flags().String("inline", "", "inline match request document")
	matchCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
}

func match(cmd *cobra.Command) {
	logger := requestLogger(newLogger(), "match", requestOrigin(cmd))

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the "+app, zap.String("version", version))

	data, err := loadRequest(cmd, "match request")
	if err != nil {
		logger.Fatal("loading match request",
			zap.Error(err),
			zap.String("hint", "pass --request FILE or --inline JSON"),
		)
	}
	logRequestDocument(logger, data)

	request, err := payload.NewParser(logger).ParseMatchRequest(data, baseOptions(config))
	if err != nil {
		logger.Fatal("invalid match request", zap.Error(err))
	}

	result := matching.New(logger).Match(request.PersonA, request.PersonB, request.Options)

	if err := writeResult(logger, result, outputPath(cmd, config)); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}
