package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"kgeyst.com/xposter/pkg/common"
	"kgeyst.com/xposter/pkg/xposter/api"
)

type flags struct {
	configPath     string
	envFilePath    string
	imagePath      string
	apiURL         string
	caption        string
	imageMIMEType  string
	healthURL      string
	requestTimeout int
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	f := &flags{}
	rootCmd := &cobra.Command{
		Use:   "xpost",
		Short: "Post a captioned image to the posting API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(cmd, f)
		},
		SilenceUsage: true,
	}
	persistent := rootCmd.PersistentFlags()
	persistent.StringVar(&f.configPath, "config", "config.yaml", "YAML config file (optional)")
	persistent.StringVar(&f.envFilePath, "env-file", ".env", ".env file with XPOST_* variables (optional)")
	persistent.StringVar(&f.apiURL, "url", "", "posting API URL")
	persistent.StringVar(&f.healthURL, "health-url", "", "health endpoint URL")
	persistent.IntVar(&f.requestTimeout, "timeout", 0, "request timeout in milliseconds, 0 for none")
	rootCmd.Flags().StringVar(&f.imagePath, "image", "", "image file path or http(s) URL")
	rootCmd.Flags().StringVar(&f.caption, "caption", "", "caption text")
	rootCmd.Flags().StringVar(&f.imageMIMEType, "mime", "", "MIME type of the image, or \"auto\"")

	postCmd := &cobra.Command{
		Use:   "post",
		Short: "Post a captioned image (the default command)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(cmd, f)
		},
	}
	postCmd.Flags().AddFlagSet(rootCmd.Flags())

	healthCmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether the posting API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			// The outcome is already printed, and the exit code doesn't depend on it.
			_ = api.NewAPI(config).CheckHealth(context.Background(), cmd.OutOrStdout())
			return nil
		},
	}

	rootCmd.AddCommand(postCmd, healthCmd)
	return rootCmd
}

func runPost(cmd *cobra.Command, f *flags) error {
	config, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	// Every outcome, successful or not, is reported to the console; the process always exits normally.
	api.NewAPI(config).Post(context.Background(), cmd.OutOrStdout(), api.PostRequest{})
	return nil
}

func loadConfig(cmd *cobra.Command, f *flags) (*common.Config, error) {
	config, err := api.LoadConfig(f.configPath, f.envFilePath)
	if err != nil {
		return nil, err
	}
	setIfChanged(cmd, config, "image", api.ConfigKeyImagePath, f.imagePath)
	setIfChanged(cmd, config, "url", api.ConfigKeyAPIURL, f.apiURL)
	setIfChanged(cmd, config, "caption", api.ConfigKeyCaption, f.caption)
	setIfChanged(cmd, config, "mime", api.ConfigKeyImageMIMEType, f.imageMIMEType)
	setIfChanged(cmd, config, "health-url", api.ConfigKeyHealthURL, f.healthURL)
	if cmd.Flags().Changed("timeout") {
		config.Set(api.ConfigKeyRequestTimeout, f.requestTimeout)
	}
	return config, nil
}

func setIfChanged(cmd *cobra.Command, config *common.Config, flagName, key, value string) {
	if cmd.Flags().Changed(flagName) {
		config.Set(key, value)
	}
}
