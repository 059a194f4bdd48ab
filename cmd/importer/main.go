package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"salesboard/config"
	deliverycontext "salesboard/internal/delivery/context"
	"salesboard/internal/domain/lifecycle"
	"salesboard/internal/infra/blobsource"
	"salesboard/internal/infra/csvimport"
	logs "salesboard/internal/infra/log"
	"salesboard/internal/infra/persistence/postgres"
	"salesboard/internal/infra/pubsub"
	"salesboard/internal/usecase"
	"salesboard/internal/usecase/impl"
	"salesboard/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// importer loads one sales export through the same coordinator as POST /import_data.
//
//	importer -platform Amazon -source ./exports/amazon.csv
//	importer -platform Flipkart -source gs://exports/2024/01/flipkart.csv
func main() {
	platform := flag.String("platform", "", "Platform the export was downloaded from (e.g. Amazon)")
	source := flag.String("source", "", "CSV location: a local path, file:// URL, or gs:// URL")
	flag.Parse()

	if strings.TrimSpace(*platform) == "" || strings.TrimSpace(*source) == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runImporter(ctx, *platform, *source); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runImporter(ctx context.Context, platform, source string) error {
	var (
		importUC usecase.ImportUsecase
		logger   *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			postgres.NewTransactionManager,
			impl.NewImportService,
		),
		pubsub.Module,
		fx.Populate(&importUC, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build importer")
	}

	startCtx, cancelStart := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start importer")
	}

	runErr := importFile(ctx, importUC, logger, platform, source)

	stopCtx, cancelStop := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop importer")
	}

	return runErr
}

func importFile(ctx context.Context, importUC usecase.ImportUsecase, logger *slog.Logger, platform, source string) error {
	obj, err := blobsource.Open(ctx, source)
	if err != nil {
		return err
	}
	defer obj.Close()

	digest := util.NewDigestReader(obj)
	rows, err := csvimport.NewReader(digest)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("request_id", requestID)))

	started := time.Now()
	result, err := importUC.ImportBatch(ctx, platform, rows)
	if err != nil {
		return err
	}
	elapsed := time.Since(started)

	logger.InfoContext(ctx, "Import finished",
		slog.String("source", source),
		slog.String("size", util.FormatBytes(digest.BytesRead())),
		slog.String("sha256", digest.SHA256()),
		slog.String("elapsed", util.FormatDuration(elapsed)),
	)

	fmt.Printf("Imported %d rows for %s in %s (%d new customers)\n",
		result.RowsProcessed, result.Platform.Name, util.FormatDuration(elapsed), result.CustomersCreated)

	return nil
}
