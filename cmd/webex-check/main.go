// Command webex-check is a standalone connectivity self-test. It verifies,
// stage by stage, that configuration loads, credentials are present, and the
// Webex API answers live identity and room-listing calls. Exit code is 0 when
// every stage passes and 1 otherwise.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"webex-mcp/internal/config"
	"webex-mcp/internal/webex"
)

var configPath = flag.String("config", "", "Path to configuration file (JSON)")

func main() {
	flag.Parse()

	// The check is a console diagnostic; keep the structured logger quiet.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	_ = godotenv.Load()

	fmt.Println("Webex MCP connectivity check")
	fmt.Println("============================")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	failed := false
	var api *webex.Client

	// Stage 1: configuration and credentials.
	cfg, err := loadConfig()
	switch {
	case err != nil:
		report(1, "configuration", false, err.Error())
		failed = true
	case !cfg.HasCredentials():
		report(1, "configuration", false, webex.ErrNoCredentials.Error())
		failed = true
	default:
		report(1, "configuration", true, "credentials configured")
	}

	// Stage 2: client handle construction (guest issuer login happens here).
	if !failed {
		api, err = webex.NewClientFromCredentials(ctx, cfg.Credentials())
		if err != nil {
			report(2, "client", false, err.Error())
			failed = true
		} else {
			report(2, "client", true, "client constructed")
		}
	} else {
		skip(2, "client")
	}

	// Stage 3: live identity call.
	if !failed {
		me, err := api.GetMe(ctx)
		if err != nil {
			report(3, "identity", false, err.Error())
			failed = true
		} else {
			report(3, "identity", true, fmt.Sprintf("authenticated as %s", me.DisplayName))
		}
	} else {
		skip(3, "identity")
	}

	// Stage 4: live space listing.
	if !failed {
		rooms, err := api.ListRooms(ctx, webex.ListRoomsOpts{Max: 5})
		if err != nil {
			report(4, "spaces", false, err.Error())
			failed = true
		} else {
			report(4, "spaces", true, fmt.Sprintf("listed %d spaces", len(rooms)))
			for _, room := range rooms {
				fmt.Printf("        - %s (%s)\n", room.Title, room.Type)
			}
		}
	} else {
		skip(4, "spaces")
	}

	fmt.Println()
	if failed {
		fmt.Println("Result: FAIL")
		os.Exit(1)
	}
	fmt.Println("Result: PASS")
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error

	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadFromEnvironment()
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func report(stage int, name string, ok bool, detail string) {
	status := "PASS"
	if !ok {
		status = "FAIL"
	}
	fmt.Printf("[%d/4] %-13s %s  %s\n", stage, name, status, detail)
}

func skip(stage int, name string) {
	fmt.Printf("[%d/4] %-13s SKIP\n", stage, name)
}
