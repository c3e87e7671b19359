package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// Minimal OpenAI-compatible stub so the CLI can run end to end without a real
// key. It recognizes the answer prompt and echoes a deterministic reply that
// names the query and the size of the supplied context.
func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		prompt := ""
		if len(req.Messages) > 0 {
			prompt = req.Messages[len(req.Messages)-1].Content
		}
		const contextMark = "Given the following context: "
		const queryMark = "\n\nCarefully answer this query: "
		if !strings.HasPrefix(prompt, contextMark) || !strings.Contains(prompt, queryMark) {
			http.Error(w, "unexpected prompt", http.StatusBadRequest)
			return
		}
		contextText := prompt[len(contextMark):strings.Index(prompt, queryMark)]
		query := prompt[strings.Index(prompt, queryMark)+len(queryMark):]
		content := fmt.Sprintf("Stub answer to %q based on %d characters of page text.", query, len(contextText))
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	})

	log.Printf("openai-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
