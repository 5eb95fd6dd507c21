package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/pzulian/sitegen"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Optional .env next to the project; absence is fine.
	_ = godotenv.Load()

	switch os.Args[1] {
	case "images":
		run(loadApp().NormalizeImages())
	case "generate":
		run(loadApp().GeneratePortfolio())
	case "new":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: sitegen new <entry title>")
			os.Exit(1)
		}
		run(runNew(loadApp(), os.Args[2]))
	case "watch":
		app := loadApp()
		stop := make(chan struct{})
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-sig
			close(stop)
		}()
		run(app.WatchPortfolio(stop))
	case "serve":
		run(loadApp().Serve())
	case "version":
		fmt.Printf("sitegen %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func loadApp() *sitegen.App {
	configPath := os.Getenv("SITEGEN_CONFIG")
	if configPath == "" {
		configPath = "sitegen.yaml"
	}
	cfg, err := sitegen.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return sitegen.New(cfg)
}

func run(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`sitegen - personal website maintenance tools

Usage:
  sitegen <command> [arguments]

Commands:
  images        Trim and pad portfolio thumbnails to the target aspect ratio
  generate      Render the portfolio page from entry descriptors
  new <title>   Scaffold a new portfolio entry directory
  watch         Regenerate the portfolio page on descriptor changes
  serve         Preview the project root on a local server
  version       Print the sitegen version
  help          Show this help message

Configuration is read from sitegen.yaml in the working directory (or
SITEGEN_CONFIG), with SITEGEN_* environment overrides.`)
}
