// Command smoke is a local verification harness: it exercises a running
// accesslens server end to end, including one real generation call.
// For local testing only; the generation test needs the model credential
// exported on the server side.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type SmokeClient struct {
	baseURL string
	client  *http.Client
}

func NewSmokeClient(baseURL string) *SmokeClient {
	return &SmokeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 90 * time.Second,
		},
	}
}

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the server")
	testType := flag.String("test", "all", "Test type: all, health, personas, generate")
	personaLabel := flag.String("persona", "", "Persona label for the generate test (default: first listed)")
	category := flag.String("category", "Social Security / Pensions / DBT", "Scheme category for the generate test")
	whatIf := flag.String("whatif", "", "Optional What-If option for the generate test")
	flag.Parse()

	client := NewSmokeClient(*baseURL)

	printHeader("AccessLens Smoke Tests")
	fmt.Printf("%sBase URL: %s%s\n\n", colorCyan, *baseURL, colorReset)

	switch *testType {
	case "all":
		client.runAll(*personaLabel, *category, *whatIf)
	case "health":
		client.testHealth()
	case "personas":
		client.testPersonas()
	case "generate":
		client.testGenerate(*personaLabel, *category, *whatIf)
	default:
		printError(fmt.Sprintf("Unknown test type: %s", *testType))
		fmt.Println("\nAvailable tests: all, health, personas, generate")
		os.Exit(1)
	}
}

func (sc *SmokeClient) runAll(personaLabel, category, whatIf string) {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Health Check", sc.testHealth},
		{"Persona Listing", sc.testPersonas},
		{"Scenario Generation", func() bool { return sc.testGenerate(personaLabel, category, whatIf) }},
	}

	passed := 0
	failed := 0
	for _, test := range tests {
		if test.fn() {
			passed++
		} else {
			failed++
		}
		fmt.Println()
	}

	printHeader("Summary")
	fmt.Printf("%sPassed: %d%s\n", colorGreen, passed, colorReset)
	fmt.Printf("%sFailed: %d%s\n", colorRed, failed, colorReset)
	if failed > 0 {
		os.Exit(1)
	}
}

func (sc *SmokeClient) testHealth() bool {
	printTestHeader("Testing Health Endpoint")

	body, status, err := sc.get("/health")
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK || string(body) != "OK" {
		printError(fmt.Sprintf("Expected 200 'OK', got %d %q", status, string(body)))
		return false
	}
	printSuccess("Health check passed")
	return true
}

func (sc *SmokeClient) testPersonas() bool {
	printTestHeader("Testing Persona Listing")

	body, status, err := sc.get("/api/personas")
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	if status != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", status))
		return false
	}

	var payload struct {
		Personas []struct {
			Label       string `json:"label"`
			Description string `json:"description"`
		} `json:"personas"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if len(payload.Personas) == 0 {
		printError("No personas returned")
		return false
	}

	printSuccess(fmt.Sprintf("Listed %d personas", len(payload.Personas)))
	for _, p := range payload.Personas {
		fmt.Printf("  - %s\n", p.Label)
	}
	return true
}

func (sc *SmokeClient) testGenerate(personaLabel, category, whatIf string) bool {
	printTestHeader("Testing Scenario Generation")

	if personaLabel == "" {
		label, ok := sc.firstPersonaLabel()
		if !ok {
			printError("Could not resolve a persona label")
			return false
		}
		personaLabel = label
	}

	request := map[string]interface{}{
		"personaLabel":   personaLabel,
		"schemeCategory": category,
	}
	if whatIf != "" {
		request["whatIf"] = map[string]interface{}{
			"enabled": true,
			"option":  whatIf,
		}
	}

	jsonData, _ := json.Marshal(request)
	fmt.Printf("%sPersona:%s %s\n", colorCyan, colorReset, personaLabel)
	fmt.Printf("%sCategory:%s %s\n\n", colorCyan, colorReset, category)

	resp, err := sc.client.Post(sc.baseURL+"/api/generate", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		printError(fmt.Sprintf("Request failed: %v", err))
		return false
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		printError(fmt.Sprintf("Expected status 200, got %d", resp.StatusCode))
		fmt.Printf("Response: %s\n", string(body))
		return false
	}

	var result struct {
		Narrative     string `json:"narrative"`
		WhatIfApplied *struct {
			FieldLabel   string `json:"fieldLabel"`
			ValueDisplay string `json:"valueDisplay"`
		} `json:"whatIfApplied"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		printError(fmt.Sprintf("Invalid JSON response: %v", err))
		return false
	}
	if strings.TrimSpace(result.Narrative) == "" {
		printError("Empty narrative returned")
		return false
	}

	printSuccess("Scenario generation completed")
	if result.WhatIfApplied != nil {
		fmt.Printf("%sWhat-If applied:%s %s -> %s\n",
			colorYellow, colorReset, result.WhatIfApplied.FieldLabel, result.WhatIfApplied.ValueDisplay)
	}
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println(result.Narrative)
	fmt.Println(strings.Repeat("=", 80))
	return true
}

func (sc *SmokeClient) firstPersonaLabel() (string, bool) {
	body, status, err := sc.get("/api/personas")
	if err != nil || status != http.StatusOK {
		return "", false
	}
	var payload struct {
		Personas []struct {
			Label string `json:"label"`
		} `json:"personas"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Personas) == 0 {
		return "", false
	}
	return payload.Personas[0].Label, true
}

func (sc *SmokeClient) get(path string) ([]byte, int, error) {
	resp, err := sc.client.Get(sc.baseURL + path)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode, nil
}

func printHeader(text string) {
	fmt.Printf("\n%s%s%s\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
	fmt.Printf("%s= %s =%s\n", colorBlue, text, colorReset)
	fmt.Printf("%s%s%s\n\n", colorBlue, strings.Repeat("=", len(text)+4), colorReset)
}

func printTestHeader(text string) {
	fmt.Printf("%s[TEST] %s%s\n", colorCyan, text, colorReset)
	fmt.Println(strings.Repeat("-", 80))
}

func printSuccess(text string) {
	fmt.Printf("%s✓ %s%s\n", colorGreen, text, colorReset)
}

func printError(text string) {
	fmt.Printf("%s✗ %s%s\n", colorRed, text, colorReset)
}
