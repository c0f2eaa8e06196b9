package main

import (
	"fmt"
	"os"

	"suomicast/cmd/suomicast/cmd"
	"suomicast/internal/config"
)

func main() {
	// Initialize configuration (non-blocking - only warns about missing keys)
	apiKeys, err := config.InitializeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "⚠️  Configuration Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "💡 To enable episode generation, copy .env.example to .env and add your Gemini API key\n")
		// Continue execution - cached and sample episodes still work
	} else {
		if apiKeys.Gemini != "" {
			os.Setenv("GEMINI_API_KEY", apiKeys.Gemini)
		}
		if apiKeys.OpenAI != "" {
			os.Setenv("OPENAI_API_KEY", apiKeys.OpenAI)
		}
	}

	// Execute the CLI command
	cmd.Execute()
}
