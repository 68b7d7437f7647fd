package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/deppfellow/v1-api/internal/config"
	"github.com/deppfellow/v1-api/internal/lib/apiclient"
	"github.com/deppfellow/v1-api/internal/lib/utils"
	"github.com/spf13/cobra"
)

var (
	clientBaseURL string
	clientAPIKey  string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running V1 API",
	Long: `Call a running V1 API and print the JSON result.

The target defaults to client.base_url (http://localhost:4400).`,
}

var clientSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search products",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return printResult(cmd, c.SearchProducts(cmd.Context(), args[0]))
	},
}

var clientOrderCmd = &cobra.Command{
	Use:   "order <product> <quantity>",
	Short: "Create an order",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("quantity must be an integer: %w", err)
		}

		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return printResult(cmd, c.CreateOrder(cmd.Context(), args[0], quantity))
	},
}

var clientShippingCmd = &cobra.Command{
	Use:   "shipping <weight>",
	Short: "Calculate a shipping quote",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		weight, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("weight must be a number: %w", err)
		}

		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return printResult(cmd, c.CalculateShipping(cmd.Context(), weight))
	},
}

var clientUserCmd = &cobra.Command{
	Use:   "user [user_id]",
	Short: "Look up a user, or generate one without an id",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var userID string
		if len(args) == 1 {
			userID = args[0]
		}

		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return printResult(cmd, c.GetUser(cmd.Context(), userID))
	},
}

var clientMetricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Show usage counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return printResult(cmd, c.GetMetrics(cmd.Context()))
	},
}

var clientSubscribeCmd = &cobra.Command{
	Use:   "subscribe <email> <user_group>",
	Short: "Subscribe an email address to the newsletter",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return printResult(cmd, c.Subscribe(cmd.Context(), args[0], args[1]))
	},
}

var clientHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check server health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := newAPIClient()
		if err != nil {
			return err
		}
		return printResult(cmd, c.Health(cmd.Context()))
	},
}

func init() {
	clientCmd.PersistentFlags().StringVar(&clientBaseURL, "base-url", "", "API base URL (overrides client.base_url)")
	clientCmd.PersistentFlags().StringVar(&clientAPIKey, "api-key", "", "bearer token (overrides client.api_key)")

	clientCmd.AddCommand(
		clientSearchCmd,
		clientOrderCmd,
		clientShippingCmd,
		clientUserCmd,
		clientMetricsCmd,
		clientSubscribeCmd,
		clientHealthCmd,
	)
}

func newAPIClient() (*apiclient.Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	clientCfg := cfg.Client
	if clientBaseURL != "" {
		clientCfg.BaseURL = clientBaseURL
	}
	if clientAPIKey != "" {
		clientCfg.APIKey = clientAPIKey
	}

	return apiclient.NewFromConfig(clientCfg), nil
}

// printResult prints the payload, or the error envelope followed by a
// non-nil error so the process exits non-zero.
func printResult[T any](cmd *cobra.Command, res apiclient.Result[T]) error {
	if res.OK() {
		return utils.PrintJSON(cmd.OutOrStdout(), res.Data)
	}

	if err := utils.PrintJSON(cmd.ErrOrStderr(), res.Err); err != nil {
		return err
	}

	return errors.New(res.Err.Error())
}
