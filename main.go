package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/bulga138/led/config"
	"github.com/bulga138/led/console"
	"github.com/bulga138/led/editor"
	"github.com/bulga138/led/file"
	"github.com/bulga138/led/version"
)

// Define the command-line flags. Each sizing flag has a long and a short
// form (--buffer-length/--bl and so on).
var (
	bufferLength uint
	lineWidth    uint
	inputStream  string
	initConfig   = flag.Bool("init-config", false, "Create a default config file and exit.")
	showVersion  = flag.Bool("version", false, "Show version information and exit.")
)

func init() {
	flag.UintVar(&bufferLength, "buffer-length", 0, "Initial line buffer allocation.")
	flag.UintVar(&bufferLength, "bl", 0, "Shorthand for -buffer-length.")
	flag.UintVar(&lineWidth, "line-width", 0, "Advisory input line width.")
	flag.UintVar(&lineWidth, "lw", 0, "Shorthand for -line-width.")
	flag.StringVar(&inputStream, "input-stream", "", "Read commands from a file instead of stdin.")
	flag.StringVar(&inputStream, "is", "", "Shorthand for -input-stream.")
}

func main() {
	// Parse command-line flags
	flag.Parse()

	// --- Handle --version flag ---
	if *showVersion {
		fmt.Printf("led %s\n", version.GetFullVersion())
		os.Exit(0)
	}

	// --- Handle --init-config flag ---
	if *initConfig {
		cfg := config.DefaultConfig()
		if err := config.SaveConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0) // Exit cleanly after creating the file
	}

	// 1. Load config; flags override the file.
	cfg := config.LoadConfig()
	if bufferLength > 0 {
		cfg.BufferLength = int(bufferLength)
	}
	if lineWidth > 0 {
		cfg.LineWidth = int(lineWidth)
	}

	// 2. Set up logging based on config
	if cfg.EnableLogger {
		f, err := os.OpenFile("led.log", os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
		log.Println("--- led started (logging enabled) ---")
	} else {
		log.SetOutput(io.Discard)
	}

	log.Printf("Config loaded: %+v", cfg)

	// 3. Command input: stdin unless -input-stream names a file.
	in := os.Stdin
	if inputStream != "" {
		f, err := os.Open(inputStream)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input stream: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	color := console.Interactive(os.Stderr)
	if color {
		if err := console.EnableANSI(); err != nil {
			log.Printf("ANSI disabled: %v", err)
			color = false
		}
	}

	// 4. Initialize the session.
	sess := editor.NewSession(cfg, in, os.Stdout, os.Stderr)
	defer sess.Close()
	sess.Prompt = cfg.Prompt && console.Interactive(in)
	sess.Color = color

	// 5. Positional argument: the file being edited.
	args := flag.Args()
	if len(args) > 1 {
		fmt.Println("Usage: led [flags] [filename]")
		os.Exit(1)
	}
	if len(args) == 1 {
		f, created, err := file.Open(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", args[0], err)
			os.Exit(1)
		}
		if created {
			fmt.Printf("Creating file: %s\n", args[0])
		} else {
			fmt.Printf("Editing file: %s\n", args[0])
		}
		if err := sess.Edit(f); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", args[0], err)
			os.Exit(1)
		}
	}

	// 6. Run the session loop.
	if err := sess.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Printf("session error: %v", err)
		os.Exit(1)
	}

	log.Println("--- led exited cleanly ---")
}
