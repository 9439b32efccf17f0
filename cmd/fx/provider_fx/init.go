package provider_fx

import (
	"context"
	"log"
	"os"

	"go.uber.org/fx"

	"tripconcierge/internal/providers"
	"tripconcierge/internal/services"
)

var Module = fx.Provide(
	provideCandidateSource,
	provideRemotePlanner)

// provideCandidateSource picks the candidate backend from PLANNER_PROVIDER:
// openai, gemini, or the deterministic static catalog.
func provideCandidateSource() providers.CandidateSource {
	switch os.Getenv("PLANNER_PROVIDER") {
	case "openai":
		log.Println("Candidate source: openai")
		return providers.NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	case "gemini":
		source, err := providers.NewGeminiProvider(context.Background(),
			os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
		if err != nil {
			log.Fatalf("Failed to initialize gemini provider: %v", err)
		}
		log.Println("Candidate source: gemini")
		return source
	default:
		log.Println("Candidate source: static catalog")
		return providers.NewStaticProvider()
	}
}

// provideRemotePlanner is nil unless PLANNER_BACKEND_URL is set; the planner
// rejects delegated requests when no backend is configured.
func provideRemotePlanner() services.RemotePlanner {
	base := os.Getenv("PLANNER_BACKEND_URL")
	if base == "" {
		return nil
	}
	log.Printf("Delegated planning via %s", base)
	return providers.NewRemotePlannerClient(base)
}
