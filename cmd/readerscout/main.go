package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"readerscout/internal/core/domain/models"
	"readerscout/internal/core/service"
	"syscall"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cmd := newFetchCommand(os.Stdout, os.Stderr, service.CreateDocumentSource)
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		reportError(os.Stdout, err)
		os.Exit(exitCode(err))
	}
}

// reportError prints the user-facing message for err.
func reportError(w io.Writer, err error) {
	var apiErr *models.APIError
	switch {
	case errors.As(err, &apiErr):
		fmt.Fprintf(w, "Error: API returned status %d\n%s\n", apiErr.StatusCode, apiErr.Body)
	case errors.Is(err, models.ErrMissingAPIKey):
		fmt.Fprintf(w, "Error: %v\n", models.ErrMissingAPIKey)
	case errors.Is(err, models.ErrInvalidToken):
		fmt.Fprintln(w, "Error: Invalid API token")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// exitCode maps errors to process exit codes. Transport failures get their
// own code so scripts can tell them apart from rejected requests.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, models.ErrNetwork), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return 3
	default:
		return 1
	}
}
