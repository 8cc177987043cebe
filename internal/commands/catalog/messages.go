package catalogcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const generateMessageType = "indexer.catalog.generate"

// GenerateCommand runs the full indexing pass: scan the articles tree under
// Root, group the results, and overwrite the three output artifacts.
type GenerateCommand struct {
	// Root selects the directory of topic folders to scan.
	Root string `json:"root"`
	// Intro is the static introduction document prepended to the README.
	Intro string `json:"intro"`
	// ArticlesOut receives the serialized article list.
	ArticlesOut string `json:"articles_out"`
	// SeriesOut receives the serialized series list.
	SeriesOut string `json:"series_out"`
	// ReadmeOut receives the regenerated README document.
	ReadmeOut string `json:"readme_out"`
	// RawBaseURL is the source-hosting base for raw document URLs.
	RawBaseURL string `json:"raw_base_url"`
}

// Type implements command.Message.
func (GenerateCommand) Type() string { return generateMessageType }

// Validate ensures the required inputs are present before the handler runs.
func (cmd GenerateCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Root, validation.Required, validation.By(requireNonBlank("indexer.catalog.generate.root_required", "root is required"))),
		validation.Field(&cmd.Intro, validation.Required),
		validation.Field(&cmd.ArticlesOut, validation.Required),
		validation.Field(&cmd.SeriesOut, validation.Required),
		validation.Field(&cmd.ReadmeOut, validation.Required),
		validation.Field(&cmd.RawBaseURL, validation.Required),
	)
}

func requireNonBlank(code, message string) func(value any) error {
	return func(value any) error {
		if str, ok := value.(string); ok && strings.TrimSpace(str) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
