package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmcdole/todoadmin/internal/adapter"
	"github.com/mmcdole/todoadmin/internal/adapter/source"
	"github.com/mmcdole/todoadmin/internal/domain"
)

const (
	checkTimeout = 15 * time.Second

	// clearSpinnerLine clears the spinner line from the terminal
	clearSpinnerLine = "\r                                    \r"
)

func newSetupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure the backend URL and token",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) {
				return errors.New("setup needs an interactive terminal")
			}
			cfg, logger, cleanup, err := bootstrap()
			if err != nil {
				return err
			}
			defer cleanup()
			return runSetupFlow(cfg, logger)
		},
	}
}

// runSetupFlow prompts for the backend URL and token, checks them against
// the backend and saves the config
func runSetupFlow(cfg *adapter.Config, logger *slog.Logger) error {
	fmt.Println()
	fmt.Println("Welcome to todoadmin!")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)

	for {
		// Prompt for server URL
		fmt.Print("Enter the API URL (e.g., http://localhost:3900/api): ")
		input, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		serverURL := strings.TrimRight(strings.TrimSpace(input), "/")

		if serverURL == "" {
			fmt.Println("API URL cannot be empty. Please try again.")
			continue
		}

		// Prompt for token (hidden input)
		fmt.Print("Auth token (leave empty if none): ")
		tokenBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
		token := strings.TrimSpace(string(tokenBytes))
		fmt.Println() // Add newline after hidden input

		cfg.Server.URL = serverURL
		cfg.Server.Token = token

		fmt.Println()
		count, err := checkBackendWithSpinner(cfg, logger)
		if err != nil {
			fmt.Printf("\n✗ Could not reach the backend: %v\n", err)
			if errors.Is(err, domain.ErrAuthFailed) {
				fmt.Println("The token was rejected.")
			}
			fmt.Println("Please check the URL and token and try again.")
			fmt.Println()
			continue
		}

		fmt.Printf("✓ Connected: %d users\n", count)
		break
	}

	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	logger.Info("saved config", "url", cfg.Server.URL)

	fmt.Println()
	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	fmt.Println("Run todoadmin again to start the application.")

	return nil
}

// checkBackendWithSpinner lists users to prove the URL and token work
func checkBackendWithSpinner(cfg *adapter.Config, logger *slog.Logger) (int, error) {
	client, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	type result struct {
		count int
		err   error
	}
	resultCh := make(chan result, 1)

	go func() {
		users, err := client.GetAllUsers(ctx)
		resultCh <- result{len(users), err}
	}()

	frames := spinner.Dot.Frames
	frame := 0
	fmt.Printf("\r%s Checking backend...", frames[frame])

	ticker := time.NewTicker(spinner.Dot.FPS)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			fmt.Print(clearSpinnerLine)
			return res.count, res.err

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Checking backend...", frames[frame%len(frames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return 0, fmt.Errorf("check timed out")
		}
	}
}
