// Command mcp-scorer exposes score_question and improve_and_rescore as MCP
// tools on the stdio transport. Logs go to stderr so they do not interfere
// with the protocol stream on stdout.
//
// Usage:
//
//	mcp-scorer            # serve on stdio
//	mcp-scorer version    # print the build version
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/heartmarshall/question-scorer/internal/app"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("mcp-scorer %s\n", app.BuildVersion())
			return
		default:
			fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
			os.Exit(1)
		}
	}

	if err := app.RunMCP(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
