package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Madmartigan1/zeldachat/internal/config"
	"github.com/Madmartigan1/zeldachat/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <file>",
	Short: "Transcribe an audio file",
	Long:  `Transcribe a local audio file to text using the speech-to-text API.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTranscribe,
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForSpeech(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	audio, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read audio file: %w", err)
	}

	tr := transcribe.New(transcribe.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.TranscribeModel,
	})

	text, err := tr.Transcribe(context.Background(), filepath.Base(args[0]), audio)
	if err != nil {
		return fmt.Errorf("transcribe: %w", err)
	}

	fmt.Println(text)
	return nil
}
