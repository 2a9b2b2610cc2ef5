package cmd

import (
	"context"
	"errors"
	"fmt"
	u "net/url"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/unicodetools/ucdsync/internal/fetcher"
	"github.com/unicodetools/ucdsync/internal/output"
	"github.com/unicodetools/ucdsync/internal/utils"
)

var (
	baseURL       string
	manifestFile  string
	timeout       time.Duration
	kaTimeout     time.Duration
	userAgent     string
	proxyURL      string
	proxyUsername string
	proxyPassword string
	headers       []string
	debug         bool
)

var UCDSyncVersion = "dev"

var errUsage = errors.New("usage error")

var rootCmd = &cobra.Command{
	Use:     "ucdsync [output-directory]",
	Short:   "ucdsync mirrors normalized Unicode Character Database files into a local directory",
	Version: UCDSyncVersion,
	Args:    cobra.ArbitraryArgs,
	Run: func(cmd *cobra.Command, args []string) {
		utils.InitLogger(debug)
		if err := runSync(cmd, args); err != nil {
			if !errors.Is(err, errUsage) {
				output.PrintError(fmt.Sprintf("Sync failed: %v", err))
			}
			os.Exit(1)
		}
	},
}

func runSync(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		output.PrintError("No output directory provided")
		fmt.Println(cmd.UsageString())
		return errUsage
	}
	outputDir := args[0]
	if userAgent == "randomize" {
		userAgent = utils.GetRandomUserAgent()
	}
	// Check if proxy URL contains auth
	parsedProxy, err := u.Parse(proxyURL)
	if err == nil && parsedProxy.User != nil && proxyUsername == "" {
		proxyUsername = parsedProxy.User.Username()
		if password, set := parsedProxy.User.Password(); set {
			proxyPassword = password
		}
		parsedProxy.User = nil
		proxyURL = parsedProxy.String()
	}
	descriptors := utils.DefaultUCDFiles
	if manifestFile != "" {
		descriptors, err = utils.ReadFetchList(manifestFile)
		if err != nil {
			return fmt.Errorf("error reading manifest: %v", err)
		}
	}
	client := utils.NewUCDHTTPClient(utils.HTTPClientConfig{
		Timeout:       timeout,
		KATimeout:     kaTimeout,
		ProxyURL:      proxyURL,
		ProxyUsername: proxyUsername,
		ProxyPassword: proxyPassword,
		UserAgent:     userAgent,
		Headers:       utils.ParseHeaderArgs(headers),
	})
	if err := fetcher.New(baseURL, client).Run(context.Background(), descriptors, outputDir); err != nil {
		return err
	}
	for _, descriptor := range descriptors {
		output.PrintDetail("  " + fetcher.OutputName(descriptor))
	}
	output.PrintSuccess(fmt.Sprintf("Synced %d files to %s", len(descriptors), outputDir))
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base-url", utils.UCDBaseURL, "Base URL to mirror UCD files from")
	rootCmd.Flags().StringVarP(&manifestFile, "manifest", "m", "", "Path to YAML file overriding the default UCD file list")
	rootCmd.Flags().DurationVarP(&timeout, "timeout", "t", 3*time.Minute, "Connection timeout (eg. 5s, 10m)")
	rootCmd.Flags().DurationVarP(&kaTimeout, "keep-alive-timeout", "k", 90*time.Second, "Keep-alive timeout for client (eg. 10s, 1m, 80s)")
	rootCmd.Flags().StringVarP(&userAgent, "user-agent", "a", utils.ToolUserAgent, "User agent ('randomize' picks a browser one)")
	rootCmd.Flags().StringVarP(&proxyURL, "proxy", "p", "", "HTTP/HTTPS proxy URL (e.g., proxy.example.com:8080)")
	rootCmd.Flags().StringVar(&proxyUsername, "proxy-username", "", "Proxy username (if not provided in proxy URL)")
	rootCmd.Flags().StringVar(&proxyPassword, "proxy-password", "", "Proxy password (if not provided in proxy URL)")
	rootCmd.Flags().StringArrayVarP(&headers, "header", "H", []string{}, "Custom headers (like 'Authorization: Basic dXNlcjpwYXNz'); can be specified multiple times")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newMirrorCmd())
}
