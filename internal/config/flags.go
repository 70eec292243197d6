package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/postill/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base URL (e.g., "http://127.0.0.1:3000")
//	-d string   sqlite database path
//	-t int      HTTP request timeout, seconds
//	-r string   receipt output file ("" prints to stdout only)
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled
// by the JSON loader.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-r"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.APIBaseURL, "a", config.APIBaseURL, "POS API base URL")
	fs.StringVar(&config.DatabasePath, "d", config.DatabasePath, "sqlite database path")
	fs.StringVar(&config.ReceiptFile, "r", config.ReceiptFile, "receipt output file")

	httpTimeout := fs.Int("t", int(config.HTTPTimeout.Seconds()), "HTTP request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.HTTPTimeout = time.Duration(*httpTimeout) * time.Second
}
