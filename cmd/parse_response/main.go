// Parses a saved model response and prints the resulting shopping list.
//
//	go run ./cmd/parse_response response.txt
//	cat response.txt | go run ./cmd/parse_response -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"ai-shopping-list-be/pkg/grocery"

	"github.com/fatih/color"
)

func main() {
	asJSON := flag.Bool("json", false, "print items as JSON instead of a grouped list")
	flag.Parse()

	text, err := readInput(flag.Arg(0))
	if err != nil {
		color.Red("Failed to read input: %v", err)
		os.Exit(1)
	}

	result := grocery.NewParser(grocery.NewSequentialIDs("item")).ParseDetailed(text)
	if result.IsEmpty() {
		color.Red("No items parsed (%d headers, %d skipped lines)", result.Headers, result.Skipped)
		os.Exit(1)
	}

	if *asJSON {
		b, _ := json.MarshalIndent(result.Items, "", "  ")
		fmt.Println(string(b))
		return
	}

	printGrouped(result)
}

func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func printGrouped(result *grocery.ParseResult) {
	byCategory := make(map[grocery.Category][]grocery.ShoppingItem)
	for _, item := range result.Items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}

	header := color.New(color.FgCyan, color.Bold)
	for _, category := range grocery.Categories() {
		items := byCategory[category]
		if len(items) == 0 {
			continue
		}
		header.Printf("\n%s (%d)\n", category, len(items))
		for _, item := range items {
			fmt.Printf("  - %-30s %g %s\n", item.Name, item.Quantity, item.Unit)
		}
	}

	color.Green("\n%d items, %d headers, %d skipped lines", len(result.Items), result.Headers, result.Skipped)
}
