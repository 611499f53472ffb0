package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"storycrafter/internal/config"
	"storycrafter/internal/logging"
	"storycrafter/internal/services"
	"storycrafter/internal/state"
)

var errNotLoggedIn = errors.New("no active session (run `storycrafter login`, or check that the Story API is reachable)")

// openClient loads configuration and wires the client services. interactive clients keep
// the configured minimum loading time; one-shot commands skip it.
func openClient(cmd *cobra.Command, interactive bool) (*services.ClientService, func(), error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, nil, err
	}
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.APIURL = strings.TrimRight(u, "/")
	}

	var out io.Writer = os.Stderr
	var logFile *os.File
	if path, _ := cmd.Flags().GetString("log-file"); path != "" {
		logFile, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = logFile
	} else if interactive {
		out = io.Discard
	}
	log := logging.NewWithWriter(out, "storycrafter-cli", cfg.LogLevel)

	opts := services.ClientOptions{}
	if !interactive {
		zero := time.Duration(0)
		opts.MinLoading = &zero
	}
	client, err := services.NewClientService(cfg, log, opts)
	if err != nil {
		if logFile != nil {
			logFile.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("close database")
		}
		if logFile != nil {
			logFile.Close()
		}
	}
	return client, cleanup, nil
}

// restoredSession opens the client and resumes the stored session.
func restoredSession(cmd *cobra.Command) (*services.ClientService, state.AppState, func(), error) {
	client, cleanup, err := openClient(cmd, false)
	if err != nil {
		return nil, state.AppState{}, nil, err
	}
	client.Startup(cmd.Context(), true)
	st := client.Controller.State()
	if st.Session == nil {
		cleanup()
		return nil, st, nil, errNotLoggedIn
	}
	return client, st, cleanup, nil
}
