package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/Madmartigan1/zeldachat/internal/chat"
	"github.com/Madmartigan1/zeldachat/internal/prosody"
	"github.com/Madmartigan1/zeldachat/internal/store"
)

const quotaReply = "It looks like the API key I'm using has run out of quota or there's " +
	"a billing/quota issue. Once that's sorted, I'll be able to reply normally again."

// Upstream error strings can carry URLs or key hints, so only this
// fixed text ever reaches the client; the detail goes to the log.
const providerErrorReply = "Something went wrong talking to the chat model. " +
	"Please try again in a moment."

type chatRequest struct {
	Message string         `json:"message"`
	Mode    string         `json:"mode,omitempty"`
	History []chat.Message `json:"history,omitempty"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	AudioURL string `json:"audio_url,omitempty"`
	Tone     string `json:"tone"`
}

type transcribeResponse struct {
	Text string `json:"text"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	if body.Message == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	mode := strings.ToLower(body.Mode)
	if mode == "" {
		mode = s.defaultMode
	}

	ctx := r.Context()

	reply, err := s.chat.Reply(ctx, mode, body.Message, body.History)
	if err != nil {
		slog.Error("chat completion failed", "error", err)

		// Provider failures still answer 200 with a spoken-style
		// explanation so the frontend keeps working.
		text := providerErrorReply
		if chat.IsRateLimited(err) {
			text = quotaReply
		}
		writeJSON(w, chatResponse{Reply: text, Tone: prosody.ToneNeutral.String()})
		return
	}

	tone := prosody.Detect(reply)

	// Audio is best effort; a TTS failure should not lose the reply.
	var audioURL string
	if s.synth != nil {
		synthCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()

		audioURL, err = s.synth.Synthesize(synthCtx, reply)
		if err != nil {
			slog.Error("speech synthesis failed", "error", err)
			audioURL = ""
		}
	}

	if s.store != nil {
		if err := s.store.RecordExchange(ctx, store.Exchange{
			Mode:      mode,
			Message:   body.Message,
			Reply:     reply,
			Tone:      tone.String(),
			AudioFile: audioURL,
		}); err != nil {
			slog.Warn("failed to record exchange", "error", err)
		}
	}

	writeJSON(w, chatResponse{Reply: reply, AudioURL: audioURL, Tone: tone.String()})
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		slog.Error("failed to read uploaded audio", "error", err)
		writeJSON(w, transcribeResponse{Text: ""})
		return
	}

	text, err := s.transcriber.Transcribe(r.Context(), header.Filename, audio)
	if err != nil {
		// The frontend treats an empty transcription as "try again".
		slog.Error("transcription failed", "error", err)
		writeJSON(w, transcribeResponse{Text: ""})
		return
	}

	writeJSON(w, transcribeResponse{Text: text})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
