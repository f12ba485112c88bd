package cmd

import (
	"github.com/oneinabillion/vedic-match/internal/matching"
	"github.com/oneinabillion/vedic-match/internal/payload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute the compact breakdown and eligibility for a pair of charts",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("request", "r", "", "file with the score request document")
	scoreCmd.Flags().String("inline", "", "inline score request document")
	scoreCmd.Flags().StringP("output", "o", "", "write the result to a file instead of stdout")
}

func score(cmd *cobra.Command) {
	logger := requestLogger(newLogger(), "score", requestOrigin(cmd))

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	data, err := loadRequest(cmd, "score request")
	if err != nil {
		logger.Fatal("loading score request",
			zap.Error(err),
			zap.String("hint", "pass --request FILE or --inline JSON"),
		)
	}
	logRequestDocument(logger, data)

	request, err := payload.NewParser(logger).ParseMatchRequest(data, baseOptions(config))
	if err != nil {
		logger.Fatal("invalid score request", zap.Error(err))
	}

	result := matching.New(logger).Score(request.PersonA, request.PersonB, request.Options)

	if err := writeResult(logger, result, outputPath(cmd, config)); err != nil {
		logger.Fatal("writing result", zap.Error(err))
	}
}
