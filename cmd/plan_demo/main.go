// README: CLI demo; runs the full planning pipeline against live providers.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"tripgen/internal/ai"
	"tripgen/internal/modules/trip"
)

func main() {
	creds := ai.Credentials{
		ai.CredentialGemini: os.Getenv("GEMINI_API_KEY"),
		ai.CredentialOpenAI: os.Getenv("OPENAI_API_KEY"),
	}
	if creds[ai.CredentialGemini] == "" && creds[ai.CredentialOpenAI] == "" {
		log.Fatal("set GEMINI_API_KEY or OPENAI_API_KEY")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	orchestrator := ai.NewOrchestrator(creds, nil)
	planner := trip.NewPlanner(orchestrator)

	start := time.Now().AddDate(0, 0, 7)
	req := trip.PlanRequest{
		Locations: []string{"Jaipur"},
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 2),
		AutoMode:  true,
	}

	itin, err := planner.Generate(ctx, req, func(provider string) {
		fmt.Printf("trying %s...\n", provider)
	})
	if err != nil {
		log.Fatalf("plan failed: %v", err)
	}

	fmt.Printf("\n%s\n", itin.Summary)
	for _, day := range itin.Days {
		fmt.Printf("\nDay %d (%s): %s\n", day.Day, day.Date, day.Theme)
		for _, p := range day.Places {
			fmt.Printf("  %s  %s (%s)\n", p.ArrivalTime, p.Name, p.VisitDuration)
		}
	}
}
