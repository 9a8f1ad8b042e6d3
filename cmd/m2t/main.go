package main

import (
	"media2text/cmd/m2t/cmd"

	// Import providers to register them.
	_ "media2text/internal/app/api/fal"
	_ "media2text/internal/app/api/groq"
	_ "media2text/internal/app/api/openai"
)

func main() {
	cmd.Execute()
}
