package app

import (
	"context"

	"github.com/Madmartigan1/zeldachat/internal/chat"
	"github.com/Madmartigan1/zeldachat/internal/config"
	"github.com/Madmartigan1/zeldachat/internal/httpapi"
	"github.com/Madmartigan1/zeldachat/internal/store"
	"github.com/Madmartigan1/zeldachat/internal/transcribe"
	"github.com/Madmartigan1/zeldachat/internal/voice"
)

// App is the main application container holding all dependencies.
type App struct {
	Config      *config.Config
	Store       *store.Store
	Chat        *chat.Client
	Synthesizer *voice.Synthesizer
	Transcriber *transcribe.Transcriber
	Cleaner     *voice.Cleaner
	Server      *httpapi.Server
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	st, err := store.NewStore(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}

	chatClient := chat.New(chat.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.ChatModel,
	})

	synth, err := voice.New(voice.Config{
		APIKey:   cfg.OpenAIAPIKey,
		AudioDir: cfg.AudioDir,
		Model:    cfg.TTSModel,
		Voice:    cfg.TTSVoice,
		Speed:    cfg.TTSSpeed,
	})
	if err != nil {
		st.Close()
		return nil, err
	}

	transcriber := transcribe.New(transcribe.Config{
		APIKey: cfg.OpenAIAPIKey,
		Model:  cfg.TranscribeModel,
	})

	server := httpapi.NewServer(httpapi.Config{
		Chat:        chatClient,
		Synthesizer: synth,
		Transcriber: transcriber,
		Store:       st,
		DefaultMode: cfg.DefaultMode,
		AudioDir:    cfg.AudioDir,
		VideoDir:    cfg.VideoDir,
		FrontendDir: cfg.FrontendDir,
	})

	return &App{
		Config:      cfg,
		Store:       st,
		Chat:        chatClient,
		Synthesizer: synth,
		Transcriber: transcriber,
		Cleaner:     voice.NewCleaner(cfg.AudioDir, cfg.AudioTTL, cfg.CleanupInterval),
		Server:      server,
	}, nil
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
