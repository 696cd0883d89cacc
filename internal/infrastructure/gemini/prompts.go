package gemini

import "fmt"

const transcribePrompt = "Extract text and summarize:"

func analyzePrompt(text, domain string) string {
	return fmt.Sprintf("Predict legal success probability for this Indian %s draft: %s", domain, text)
}

func citationsPrompt(query, domain string) string {
	return fmt.Sprintf("Provide 3 SC citations for: %s in %s law.", query, domain)
}
