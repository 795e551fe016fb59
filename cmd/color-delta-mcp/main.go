package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/color-delta-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("color-delta-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("color-delta-mcp - MCP server for perceptual color difference (delta E)")
			fmt.Println()
			fmt.Println("Usage: color-delta-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  COLOR_DELTA_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("Colors are CIE L*a*b* triples: L in [0,100], a and b in [-128,127].")
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	srv := server.New()
	if os.Getenv("COLOR_DELTA_MCP_LOG_LEVEL") == "debug" {
		log.Printf("Color Delta MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		srv.SetDebug(true)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
