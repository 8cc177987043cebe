package catalogcmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-article-index/catalog"
	"github.com/goliatone/go-article-index/digest"
	"github.com/goliatone/go-article-index/internal/commands"
	"github.com/goliatone/go-article-index/internal/logging"
	"github.com/goliatone/go-article-index/pkg/interfaces"
)

const generateOperation = "catalog.generate"

var _ command.Commander[GenerateCommand] = (*GenerateHandler)(nil)

// GenerateHandler orchestrates the scan-group-emit pipeline via the shared
// command handler foundation.
type GenerateHandler struct {
	inner *commands.Handler[GenerateCommand]
}

// NewGenerateHandler creates the handler. The provider scopes module loggers
// for the scan and emit phases; a nil provider disables logging.
func NewGenerateHandler(provider interfaces.LoggerProvider, opts ...commands.HandlerOption[GenerateCommand]) *GenerateHandler {
	baseLogger := logging.CommandsLogger(provider)
	catalogLogger := logging.CatalogLogger(provider)
	digestLogger := logging.DigestLogger(provider)

	exec := func(ctx context.Context, msg GenerateCommand) error {
		urls := catalog.NewRawURLBuilder(msg.RawBaseURL)
		scanner, err := catalog.NewScanner(msg.Root, urls, catalogLogger)
		if err != nil {
			return err
		}

		cat, err := scanner.Scan(ctx)
		if err != nil {
			return err
		}

		groups := catalog.GroupByPrimaryTag(cat.Articles)
		catalogLogger.Debug("catalog.grouping.completed",
			"groups", len(groups),
			"distinct_tags", catalog.DistinctPrimaryTags(cat.Articles),
		)

		if err := digest.WriteArticles(msg.ArticlesOut, cat.Articles); err != nil {
			return err
		}
		if err := digest.WriteSeries(msg.SeriesOut, cat.Series); err != nil {
			return err
		}
		if err := digest.NewRenderer().WriteREADME(msg.Intro, msg.ReadmeOut, groups); err != nil {
			return err
		}

		logging.WithFields(digestLogger, map[string]any{
			"articles": len(cat.Articles),
			"series":   len(cat.Series),
			"groups":   len(groups),
		}).Info("catalog.command.generate.completed")
		return nil
	}

	handlerOpts := []commands.HandlerOption[GenerateCommand]{
		commands.WithLogger[GenerateCommand](baseLogger),
		commands.WithOperation[GenerateCommand](generateOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &GenerateHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[GenerateCommand].
func (h *GenerateHandler) Execute(ctx context.Context, msg GenerateCommand) error {
	return h.inner.Execute(ctx, msg)
}
