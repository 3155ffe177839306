package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagesift/pagesift/internal/logger"
	"github.com/pagesift/pagesift/internal/output"
	"github.com/pagesift/pagesift/pkg/convert"
	"github.com/pagesift/pagesift/pkg/pagesift"
)

// extractResult is the CLI's serialized form of an extraction.
type extractResult struct {
	URL       string `json:"url" yaml:"url"`
	Content   string `json:"content" yaml:"content"`
	Format    string `json:"format" yaml:"format"`
	Type      string `json:"type" yaml:"type"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Encoding  string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	FetchedAt string `json:"fetched_at" yaml:"fetched_at"`
}

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract content from a URL",
	Long: `Fetch a page and print its main content.

Examples:
  # Plain text (the default)
  pagesift extract -u "https://example.com/article"

  # Markdown, written to a file
  pagesift extract -u "https://example.com/article" -f markdown -o out.json

  # YAML-wrapped result
  pagesift extract -u "https://example.com/article" --output-format yaml`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	flags := extractCmd.Flags()
	flags.StringP("url", "u", "", "URL to extract (required)")
	flags.StringP("format", "f", "text", "content format: html, markdown, text")
	flags.StringP("out", "o", "", "output file (default: stdout)")
	flags.String("output-format", "json", "output serialization: json, jsonl, yaml")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.String("user-agent", "", "outbound User-Agent header")

	_ = extractCmd.MarkFlagRequired("url")
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
		JSON:  viper.GetBool("log_json"),
	})

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	flags := cmd.Flags()
	targetURL, _ := flags.GetString("url")
	format, _ := flags.GetString("format")
	outPath, _ := flags.GetString("out")
	outputFormat, _ := flags.GetString("output-format")
	timeout, _ := flags.GetDuration("timeout")
	userAgent, _ := flags.GetString("user-agent")

	var opts []pagesift.Option
	if userAgent != "" {
		opts = append(opts, pagesift.WithUserAgent(userAgent))
	}
	if timeout > 0 {
		opts = append(opts, pagesift.WithTimeout(timeout))
	}

	pipeline := pagesift.New(opts...)
	result, err := pipeline.Extract(ctx, targetURL, convert.Format(format))
	if err != nil {
		logError("%v", err)
		return err
	}

	dest := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			logError("create output file: %v", err)
			return err
		}
		defer f.Close()
		dest = f
	}

	writer, err := output.NewWriter(dest, output.Format(outputFormat))
	if err != nil {
		logError("%v", err)
		return err
	}

	if err := writer.Write(extractResult{
		URL:       result.URL,
		Content:   result.Content,
		Format:    string(result.Format),
		Type:      result.Type.String(),
		Title:     result.Title,
		Encoding:  result.Encoding,
		FetchedAt: result.FetchedAt.UTC().Format(time.RFC3339),
	}); err != nil {
		logError("write output: %v", err)
		return err
	}
	return writer.Close()
}
