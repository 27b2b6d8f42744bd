package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarWebhookHonorarioQuitado avisa o sistema financeiro quando todas as
// parcelas de um honorário foram quitadas. Best-effort: falhas só geram log.
func EnviarWebhookHonorarioQuitado(honorarioID, numeroProcesso string) {
	url := os.Getenv("WEBHOOK_URL")
	if url == "" {
		return
	}

	payload := map[string]string{
		"mensagem":        "Honorário quitado: todas as parcelas foram pagas",
		"honorario_id":    honorarioID,
		"numero_processo": numeroProcesso,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
