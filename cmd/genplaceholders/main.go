package main

import (
	"fmt"
	"os"

	"chosenoffset.com/sonarsweep/internal/placeholders"
)

func main() {
	fmt.Println("SonarSweep Placeholder Graphics Generator")
	fmt.Println("=========================================")
	fmt.Println()

	dir := "assets"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	configPath, err := placeholders.GenerateAndSave(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  Wrote %s\n", configPath)
	fmt.Println()
	fmt.Println("Done! Point atlas.path in your config at the file above to use it.")
}
