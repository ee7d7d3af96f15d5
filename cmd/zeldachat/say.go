package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Madmartigan1/zeldachat/internal/config"
	"github.com/Madmartigan1/zeldachat/internal/prosody"
	"github.com/Madmartigan1/zeldachat/internal/voice"
)

var saySpeak bool

var sayCmd = &cobra.Command{
	Use:   "say [text]",
	Short: "Classify and shape a reply locally",
	Long: `Classify the emotional tone of a reply and print the speech-shaped
text. Runs entirely locally; with --speak the shaped text is also
synthesized to an mp3 file in the audio directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSay,
}

func init() {
	sayCmd.Flags().BoolVar(&saySpeak, "speak", false, "synthesize the shaped text to an mp3 file")
	rootCmd.AddCommand(sayCmd)
}

func runSay(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	tone := prosody.Detect(text)
	shaped := prosody.FormatForTTS(text)

	fmt.Printf("tone: %s\n", tone)
	fmt.Println("shaped:")
	fmt.Println(shaped)

	if !saySpeak {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.ValidateForSpeech(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	synth, err := voice.New(voice.Config{
		APIKey:   cfg.OpenAIAPIKey,
		AudioDir: cfg.AudioDir,
		Model:    cfg.TTSModel,
		Voice:    cfg.TTSVoice,
		Speed:    cfg.TTSSpeed,
	})
	if err != nil {
		return fmt.Errorf("create synthesizer: %w", err)
	}

	url, err := synth.Synthesize(context.Background(), text)
	if err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}

	fmt.Printf("audio: %s%s\n", cfg.AudioDir, strings.TrimPrefix(url, "/audio"))
	return nil
}
