package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"zoxnova/internal/config"
	"zoxnova/internal/db"
	"zoxnova/internal/domain"
	"zoxnova/internal/llm"
	"zoxnova/internal/store"
)

// Chat interactivo por terminal contra el mismo proveedor del API.
// Comandos: /save <titulo> guarda la transcripción, /exit termina.
func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	client, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Disconnect(ctx)

	docStore := store.NewMongoStore(client.Database(cfg.DatabaseName))

	var provider llm.Provider
	if cfg.DemoMode() {
		fmt.Println("(demo mode: no EMERGENT_API_KEY configured)")
		provider = llm.NewDemoProvider(cfg.LLMModel)
	} else {
		provider = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	}

	var transcript []domain.Message

	fmt.Println("===== ZoxNova Chat =====")
	fmt.Println("Escribe un mensaje, /save <titulo> para guardar, /exit para salir.")

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == "/exit" {
			return
		}

		if strings.HasPrefix(line, "/save") {
			title := strings.TrimSpace(strings.TrimPrefix(line, "/save"))
			if title == "" {
				title = "CLI chat " + time.Now().UTC().Format(time.RFC3339)
			}
			saveTranscript(ctx, docStore, title, transcript)
			continue
		}

		transcript = append(transcript, domain.Message{Role: "user", Content: line})

		resp, err := provider.Complete(ctx, domain.AIRequest{
			Task:     "chat",
			Messages: transcript,
		})
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}

		fmt.Println(resp.Output)
		transcript = append(transcript, domain.Message{Role: "assistant", Content: resp.Output})
	}
}

func saveTranscript(ctx context.Context, docStore store.DocumentStore, title string, transcript []domain.Message) {
	if len(transcript) == 0 {
		fmt.Println("nothing to save yet")
		return
	}

	created, err := docStore.Create(ctx, "chat", store.Document{
		"title":    title,
		"messages": transcript,
	})
	if err != nil {
		fmt.Printf("save failed: %v\n", err)
		return
	}
	fmt.Printf("saved chat %v (%d messages)\n", created["id"], len(transcript))
}
