// Command test-reality exercises the client against the live Trello API and
// reports which endpoints answer with payloads our types fully capture.
//
// Credentials come from flags, the environment, or a .env file:
//
//	TRELLO_API_KEY=...  TRELLO_API_TOKEN=...  go run ./cmd/test-reality
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/cedric-marchal/trello"
)

var (
	apiKey   = flag.String("api-key", "", "Trello API key (or TRELLO_API_KEY env)")
	apiToken = flag.String("api-token", "", "Trello API token (or TRELLO_API_TOKEN env)")
	boardID  = flag.String("board", "", "Board ID to read (defaults to the first board of the token's member)")
	verbose  = flag.Bool("verbose", false, "Verbose output with full JSON responses")
)

type TestResult struct {
	Endpoint   string
	Success    bool
	Error      string
	JSONSample string
	Duration   time.Duration
}

func main() {
	// A missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()
	flag.Parse()

	key := *apiKey
	if key == "" {
		key = os.Getenv("TRELLO_API_KEY")
	}
	token := *apiToken
	if token == "" {
		token = os.Getenv("TRELLO_API_TOKEN")
	}
	if key == "" || token == "" {
		log.Fatal("Credentials are required. Use -api-key/-api-token flags or TRELLO_API_KEY/TRELLO_API_TOKEN environment variables")
	}

	fmt.Println("🧪 Testing go-trello against reality...")
	fmt.Println("=" + strings.Repeat("=", 60))
	fmt.Println()

	client, err := trello.New(key, token)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx := context.Background()

	fmt.Println("📡 Connecting to Trello API...")
	me, err := client.GetMember(ctx, "me")
	if err != nil {
		log.Fatalf("Failed to resolve token member: %v", err)
	}
	fmt.Printf("   Member: %s (@%s)\n", me.FullName, me.Username)
	fmt.Println()

	target := *boardID
	if target == "" {
		boards, err := client.GetBoardsForMember(ctx, "me")
		if err != nil {
			log.Fatalf("Failed to list boards: %v", err)
		}
		if len(boards) == 0 {
			log.Fatal("The token's member has no boards; pass -board explicitly")
		}
		target = boards[0].ID
		fmt.Printf("   Using board: %s (%s)\n\n", boards[0].Name, target)
	}

	results := []TestResult{
		run("GetBoard", func() (any, error) { return client.GetBoard(ctx, target) }),
		run("GetListsOnBoard", func() (any, error) { return client.GetListsOnBoard(ctx, target) }),
		run("GetCardsOnBoard", func() (any, error) { return client.GetCardsOnBoard(ctx, target) }),
		run("GetLabelsForBoard", func() (any, error) { return client.GetLabelsForBoard(ctx, target) }),
		run("GetBoardMembers", func() (any, error) { return client.GetBoardMembers(ctx, target) }),
		run("GetActionsOnBoard", func() (any, error) { return client.GetActionsOnBoard(ctx, target) }),
		run("GetCustomFieldsOnBoard", func() (any, error) { return client.GetCustomFieldsOnBoard(ctx, target) }),
		run("GetWebhooksForToken", func() (any, error) { return client.GetWebhooksForToken(ctx) }),
	}

	fmt.Println()
	fmt.Println("📊 Test Summary")
	fmt.Println("=" + strings.Repeat("=", 60))
	fmt.Println()

	failed := 0
	for _, result := range results {
		status := "✅"
		if !result.Success {
			status = "❌"
			failed++
		}

		fmt.Printf("%s %s (%v)\n", status, result.Endpoint, result.Duration)

		if result.Error != "" {
			fmt.Printf("   Error: %s\n", result.Error)
		}

		if *verbose && result.JSONSample != "" {
			fmt.Printf("   JSON Sample:\n%s\n", indent(result.JSONSample, "      "))
		}
	}

	fmt.Println()
	fmt.Println("=" + strings.Repeat("=", 60))
	if failed == 0 {
		fmt.Println("✅ All endpoints answered as expected.")
	} else {
		fmt.Printf("❌ %d endpoint(s) failed\n", failed)
		os.Exit(1)
	}
}

func run(endpoint string, call func() (any, error)) TestResult {
	start := time.Now()
	result := TestResult{Endpoint: endpoint}

	resp, err := call()
	result.Duration = time.Since(start)

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true
	if sample, err := json.MarshalIndent(resp, "", "  "); err == nil {
		result.JSONSample = string(sample)
	}

	return result
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
