package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/oneinabillion/vedic-match/internal/logger"
	"github.com/oneinabillion/vedic-match/internal/matching"
	"github.com/oneinabillion/vedic-match/internal/payload"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	app = "vedic-match"
)

type Config struct {
	Options *payload.OptionsDoc `mapstructure:"options"`
	Output  string              `mapstructure:"output"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "vedic-match is a deterministic ashtakoota compatibility engine for matchmaking requests",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("output", "VEDIC_MATCH_OUTPUT"); err != nil {
		log.Fatalf("binding VEDIC_MATCH_OUTPUT environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is vedic-match.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		// The engine runs fine on built-in defaults; only an explicitly
		// named config file has to exist and parse.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}

// baseOptions resolves the option defaults with the config file applied.
// Request documents are applied on top of these by the payload parser.
func baseOptions(config *Config) matching.Options {
	if config == nil {
		return matching.DefaultOptions()
	}
	return payload.ResolveOptions(matching.DefaultOptions(), config.Options)
}

// newLogger builds the command logger from the persistent flags.
func newLogger() *zap.Logger {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}
	return l
}

// requestLogger attaches the operation and request origin to the logger.
func requestLogger(l *zap.Logger, operation, origin string) *zap.Logger {
	return logger.WithCommonFields(l, operation, origin)
}

func logRequestDocument(l *zap.Logger, data []byte) {
	l.Debug("request document loaded",
		zap.String("document", logger.TruncateForLog(string(data), 512)),
	)
}

// loadRequest reads the request document from the command flags. The
// --request file takes precedence over the --inline value.
func loadRequest(cmd *cobra.Command, name string) ([]byte, error) {
	return payload.Load(payload.Source{
		Name:  name,
		Value: cmd.Flag("inline").Value.String(),
		Path:  cmd.Flag("request").Value.String(),
	})
}

// requestOrigin names where the request document came from, for logging.
func requestOrigin(cmd *cobra.Command) string {
	if path := cmd.Flag("request").Value.String(); path != "" {
		return path
	}
	return "inline"
}

// outputPath picks the result destination: the --output flag wins over the
// config file; empty means stdout.
func outputPath(cmd *cobra.Command, config *Config) string {
	if path := cmd.Flag("output").Value.String(); path != "" {
		return path
	}
	if path := viper.GetString("output"); path != "" {
		return path
	}
	if config != nil {
		return config.Output
	}
	return ""
}

// writeResult renders a result document to stdout or to the given file.
func writeResult(l *zap.Logger, result any, path string) error {
	pretty, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}

	if path == "" {
		fmt.Println(string(pretty))
		return nil
	}

	if err := os.WriteFile(path, append(pretty, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing result to %q: %w", path, err)
	}

	l.Info("result written", zap.String("filename", path))
	return nil
}
