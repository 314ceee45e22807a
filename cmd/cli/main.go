package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pesaboard-cli",
		Short: "PesaBoard CLI tool",
		Long:  `A command line interface for interacting with the PesaBoard API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:3000", "Base URL of the PesaBoard API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Provider commands
	providerCmd := &cobra.Command{
		Use:   "provider",
		Short: "Provider operations",
	}

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Fetch an access token from the provider",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/token")
		},
	}

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register the webhook URLs with the provider",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/register-url", nil)
		},
	}

	credentialsCmd := &cobra.Command{
		Use:   "credentials",
		Short: "Verify the configured provider credentials",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/test-credentials")
		},
	}

	providerCmd.AddCommand(tokenCmd, registerCmd, credentialsCmd)

	// Transaction commands
	transactionsCmd := &cobra.Command{
		Use:   "transactions",
		Short: "List stored transactions, newest-first",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/transactions")
		},
	}

	// Statistics commands
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Statistics operations",
	}

	summaryCmd := &cobra.Command{
		Use:   "summary",
		Short: "Show summary statistics",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/statistics")
		},
	}

	var timeframe string
	cashflowCmd := &cobra.Command{
		Use:   "cashflow",
		Short: "Show the bucketed cash flow report",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/statistics/cashflow?timeframe=" + timeframe)
		},
	}
	cashflowCmd.Flags().StringVar(&timeframe, "timeframe", "daily", "daily, weekly, monthly or yearly")

	scoreCmd := &cobra.Command{
		Use:   "score",
		Short: "Show the heuristic credit score",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/statistics/credit-score")
		},
	}

	alertsCmd := &cobra.Command{
		Use:   "alerts",
		Short: "Show the rule-based risk alerts",
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/statistics/risk-alerts")
		},
	}

	statsCmd.AddCommand(summaryCmd, cashflowCmd, scoreCmd, alertsCmd)

	// Seed command
	var count int
	var expenseRatio float64
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Post synthetic confirmation webhooks for local development",
		Run: func(cmd *cobra.Command, args []string) {
			seed(count, expenseRatio)
		},
	}
	seedCmd.Flags().IntVar(&count, "count", 20, "Number of confirmations to post")
	seedCmd.Flags().Float64Var(&expenseRatio, "expense-ratio", 0.4, "Fraction of seeded transactions that are expenses")

	rootCmd.AddCommand(providerCmd, transactionsCmd, statsCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func postJSON(path string, body []byte) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Printf("Error reading response: %v\n", err)
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Printf("Status: %s\n%s\n", resp.Status, pretty.String())
}

// seed posts synthetic C2B confirmations so the dashboard has data to show.
func seed(count int, expenseRatio float64) {
	client := &http.Client{Timeout: timeout}

	for i := 0; i < count; i++ {
		amount := float64(rand.Intn(20000)+100) / 10
		if rand.Float64() < expenseRatio {
			amount = -amount
		}

		now := time.Now()
		payload, _ := json.Marshal(map[string]string{
			"TransactionType": "Pay Bill",
			"TransID":         fmt.Sprintf("SEED%s%04d", now.Format("20060102"), i),
			"TransTime":       now.Format("20060102150405"),
			"TransAmount":     strconv.FormatFloat(amount, 'f', 2, 64),
			"BillRefNumber":   fmt.Sprintf("INV-%04d", i),
			"MSISDN":          fmt.Sprintf("2547%08d", rand.Intn(100000000)),
		})

		resp, err := client.Post(baseURL+"/api/confirmation", "application/json", bytes.NewReader(payload))
		if err != nil {
			fmt.Printf("Error posting confirmation %d: %v\n", i, err)
			os.Exit(1)
		}
		resp.Body.Close()
	}

	fmt.Printf("Posted %d confirmations\n", count)
}
