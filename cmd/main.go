package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voiceshowcase/internal/cli/scheme/colours"
	"voiceshowcase/internal/config"
	"voiceshowcase/internal/playback"
	"voiceshowcase/internal/studio"
)

func main() {

	config.LoadEnvFile()
	config.SetDefaults()

	app := studio.NewApp()

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		app.Interrupted(os.Stdout)
		os.Exit(0)
	}()

	rootCmd := &cobra.Command{
		Use:   "voiceshowcase",
		Short: "🎙️ Generate and play a MiniMax voice showcase",
		Long: `
Generates one sample per showcase voice with the MiniMax text-to-audio API,
saves them with a JSON report, then plays them back one after another.

Requires API_KEY and GROUP_ID in the environment (or a .env file).
		`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.Showcase,
	}

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "🎤 Generate the voice samples",
		Long:  "Synthesize every showcase voice and write the samples and report",
		RunE:  app.Generate,
	}

	// Play command
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "🔊 Play the last generated samples",
		Long:  "Play the samples listed in the saved showcase report",
		RunE:  app.Play,
	}

	// Voices command
	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "📋 List showcase voices",
		Long:  "Display the fixed list of showcase voices and their settings",
		Run:   app.ListVoices,
	}

	// Add flags
	types := make([]string, 0, len(playback.AvailableTypes()))
	for _, t := range playback.AvailableTypes() {
		types = append(types, t.String())
	}
	rootCmd.Flags().Bool("no-play", false, "Only generate, skip playback")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output directory for samples and report")
	rootCmd.PersistentFlags().StringP("player", "p", "", "Player type: "+strings.Join(types, ", "))
	rootCmd.PersistentFlags().String("command", "", "External playback command for the exec player")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	viper.BindPFlag("output.dir", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("playback.type", rootCmd.PersistentFlags().Lookup("player"))
	viper.BindPFlag("playback.command", rootCmd.PersistentFlags().Lookup("command"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(generateCmd, playCmd, voicesCmd)

	if err := rootCmd.Execute(); err != nil {
		colours.Error.Printf("❌ Error: %v\n", err)
		os.Exit(1)
	}
}

// Configuration management with Viper
func init() {
	viper.SetConfigName("voiceshowcase")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.voiceshowcase")
	viper.AddConfigPath(".")

	viper.ReadInConfig()
}
