package main

import (
	"fmt"
	"os"

	"pjadhav.dev/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: validate <portfolio.json>")
		os.Exit(1)
	}
	path := os.Args[1]

	doc, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read %s: %v\n", path, err)
		os.Exit(1)
	}

	data, err := services.DecodePortfolio(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s is invalid:\n  %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("%s is valid\n", path)
	fmt.Printf("  Name:      %s\n", data.Profile.Name)
	fmt.Printf("  Skills:    %d\n", len(data.Skills))
	fmt.Printf("  Projects:  %d\n", len(data.Projects))
	fmt.Printf("  Hobbies:   %d\n", len(data.Interests.Hobbies))
	fmt.Printf("  Education: %d\n", len(data.About.Education))
}
