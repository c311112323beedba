package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

var healthcheckURL string

var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Exit non-zero unless the server reports ready",
	RunE: func(cmd *cobra.Command, args []string) error {
		url := healthcheckURL
		if url == "" {
			url = fmt.Sprintf("http://127.0.0.1:%s/health/ready", cfg.Server.Port)
		}
		if err := probe(cmd.Context(), url); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ready")
		return nil
	},
}

func init() {
	healthcheckCmd.Flags().StringVar(&healthcheckURL, "url", "", "readiness URL (default http://127.0.0.1:$PORT/health/ready)")
}

func probe(ctx context.Context, url string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("invalid healthcheck url: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("healthcheck request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server not ready: %s", resp.Status)
	}
	return nil
}
