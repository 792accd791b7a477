// EdgarAI serves SEC EDGAR filings and financial facts for AI assistants.
//
// Main CLI entrypoint using cobra command framework.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seenimoa/edgarai/api"
	"github.com/seenimoa/edgarai/internal/config"
	"github.com/seenimoa/edgarai/internal/tools"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Global config and suite, wired in PersistentPreRunE.
var (
	cfg   *config.Config
	suite *tools.Suite
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "edgarai",
	Short: "EdgarAI: SEC EDGAR filings and financial facts for AI assistants",
	Long: `EdgarAI exposes SEC EDGAR company filings, XBRL financial facts and
SEC feeds as structured operations, consumable from the command line,
over REST, or as MCP tools by an AI host.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		configFile, _ := cmd.Flags().GetString("config")
		if configFile != "" {
			cfg, err = config.LoadFromFile(configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if level, _ := cmd.Flags().GetString("log-level"); level != "" {
			cfg.Logging.Level = level
		}
		config.SetupLogging(cfg.Logging)
		suite = tools.NewSuiteFromConfig(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(filingsCmd)
	rootCmd.AddCommand(annualCmd)
	rootCmd.AddCommand(quarterlyCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(proxiesCmd)
	rootCmd.AddCommand(insidersCmd)
	rootCmd.AddCommand(ownershipCmd)
	rootCmd.AddCommand(factsCmd)
	rootCmd.AddCommand(conceptCmd)
	rootCmd.AddCommand(discoverCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
}

// printJSON renders any result as indented JSON on stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// --- Version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("EdgarAI %s\n", version)
		fmt.Printf("  commit:  %s\n", commit)
		fmt.Printf("  built:   %s\n", date)
	},
}

// --- Filings ---

var filingsCmd = &cobra.Command{
	Use:   "filings [ticker]",
	Short: "List a company's SEC filings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formType, _ := cmd.Flags().GetString("form")
		limit, _ := cmd.Flags().GetInt("limit")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		return printJSON(suite.CompanyFilings(cmd.Context(), args[0], formType, limit, start, end))
	},
}

func init() {
	filingsCmd.Flags().String("form", "", "form type filter, e.g. 10-K, 8-K, DEF 14A")
	filingsCmd.Flags().Int("limit", 10, "maximum number of filings")
	filingsCmd.Flags().String("start", "", "earliest filing date (YYYY-MM-DD)")
	filingsCmd.Flags().String("end", "", "latest filing date (YYYY-MM-DD)")
}

var annualCmd = &cobra.Command{
	Use:   "annual [ticker]",
	Short: "Get the latest 10-K annual report with a text preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(suite.LatestAnnualReport(cmd.Context(), args[0]))
	},
}

var quarterlyCmd = &cobra.Command{
	Use:   "quarterly [ticker]",
	Short: "Get the latest 10-Q quarterly report with a text preview",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(suite.LatestQuarterlyReport(cmd.Context(), args[0]))
	},
}

var currentCmd = &cobra.Command{
	Use:   "current [ticker]",
	Short: "Get recent 8-K current reports with event summaries",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printJSON(suite.RecentCurrentReports(cmd.Context(), args[0], limit))
	},
}

var proxiesCmd = &cobra.Command{
	Use:   "proxies [ticker]",
	Short: "Get recent DEF 14A proxy statements",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printJSON(suite.ProxyStatements(cmd.Context(), args[0], limit))
	},
}

var insidersCmd = &cobra.Command{
	Use:   "insiders [ticker]",
	Short: "Get recent Form 4 insider filings with parsed transactions",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printJSON(suite.InsiderTransactions(cmd.Context(), args[0], limit))
	},
}

var ownershipCmd = &cobra.Command{
	Use:   "ownership [ticker]",
	Short: "Get recent Schedule 13D/13G beneficial ownership filings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printJSON(suite.BeneficialOwnership(cmd.Context(), args[0], limit))
	},
}

func init() {
	for _, c := range []*cobra.Command{currentCmd, proxiesCmd, insidersCmd, ownershipCmd} {
		c.Flags().Int("limit", 5, "maximum number of filings")
	}
}

// --- Facts ---

var factsCmd = &cobra.Command{
	Use:   "facts [ticker]",
	Short: "Get a company's financial metrics from SEC XBRL data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		metrics, _ := cmd.Flags().GetString("metrics")
		return printJSON(suite.CompanyFacts(cmd.Context(), args[0], tools.SplitMetrics(metrics)))
	},
}

func init() {
	factsCmd.Flags().String("metrics", "", "comma-separated XBRL concept names (default: headline set)")
}

var conceptCmd = &cobra.Command{
	Use:   "concept [ticker] [concept]",
	Short: "Get the annual and quarterly history of one XBRL concept",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(suite.Concept(cmd.Context(), args[0], args[1]))
	},
}

var discoverCmd = &cobra.Command{
	Use:   "discover [ticker]",
	Short: "List the XBRL metrics available for a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, _ := cmd.Flags().GetString("filter")
		return printJSON(suite.DiscoverMetrics(cmd.Context(), args[0], filter))
	},
}

func init() {
	discoverCmd.Flags().String("filter", "", "substring filter on concept names")
}

var contentCmd = &cobra.Command{
	Use:   "content [ticker]",
	Short: "Get a company's latest filing with its financial metrics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filingType, _ := cmd.Flags().GetString("form")
		metrics, _ := cmd.Flags().GetString("metrics")
		return printJSON(suite.FilingContent(cmd.Context(), args[0], filingType, tools.SplitMetrics(metrics)))
	},
}

func init() {
	contentCmd.Flags().String("form", "10-K", "form type of the filing")
	contentCmd.Flags().String("metrics", "", "comma-separated XBRL concept names for specific mode")
}

// --- Search / feeds / meta ---

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search SEC-registered companies by ticker or name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printJSON(suite.SearchCompanies(cmd.Context(), args[0], limit))
	},
}

func init() {
	searchCmd.Flags().Int("limit", 10, "maximum number of matches")
}

var feedCmd = &cobra.Command{
	Use:   "feed [source]",
	Short: "Get recent entries from an SEC RSS feed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		return printJSON(suite.LatestFeed(cmd.Context(), args[0], limit))
	},
}

func init() {
	feedCmd.Flags().Int("limit", 10, "maximum number of entries")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check SEC EDGAR API availability",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(suite.APIStatus(cmd.Context()))
	},
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Exercise every operation against a reference company",
	RunE: func(cmd *cobra.Command, args []string) error {
		result := suite.SelfTest(cmd.Context())
		if err := printJSON(result); err != nil {
			return err
		}
		if result.Failed > 0 {
			return fmt.Errorf("%d of %d checks failed", result.Failed, result.Total)
		}
		return nil
	},
}

// --- Servers ---

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := api.NewServer(cfg, suite)
		addr := srv.Addr()
		fmt.Printf("EdgarAI API listening on %s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the tool suite over MCP stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tools.ServeStdio(tools.NewMCPServer(suite, version))
	},
}
