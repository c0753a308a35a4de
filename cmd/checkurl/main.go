package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"scamintel-lab/internal/heuristics"
	"scamintel-lab/internal/intel"
	"scamintel-lab/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: checkurl <url> [--scan]")
		os.Exit(1)
	}
	rawURL := os.Args[1]
	activeScan := len(os.Args) > 2 && os.Args[2] == "--scan"

	// Initialize logger
	log := logger.NewDevelopment()

	vtKey := os.Getenv("SCAMINTEL_INTEL_VIRUSTOTAL_API_KEY")
	urlscanKey := os.Getenv("SCAMINTEL_INTEL_URLSCAN_API_KEY")

	fmt.Println("===========================================")
	fmt.Println("URL Risk Check")
	fmt.Println("===========================================")
	fmt.Printf("URL: %s\n", rawURL)
	fmt.Println()

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	// Test 1: local heuristics
	fmt.Println("📋 Test 1: Local heuristics...")
	fmt.Println("-------------------------------------------")
	engine := heuristics.NewEngine(log)
	result := engine.Analyze("", rawURL)
	fmt.Printf("   - Risk score: %d (%s)\n", result.RiskScore, result.RiskLevel())
	fmt.Printf("   - Flags: %d\n", len(result.RedFlags))
	for _, flag := range result.RedFlags {
		fmt.Printf("     • [%d] %s\n", flag.Severity(), flag.Description())
	}
	fmt.Println()

	client := intel.NewClient(intel.Config{
		VirusTotalAPIKey:   vtKey,
		URLScanAPIKey:      urlscanKey,
		AllowActiveURLScan: activeScan,
	}, log)

	// Test 2: passive VirusTotal lookup
	fmt.Println("🔍 Test 2: VirusTotal passive lookup...")
	fmt.Println("-------------------------------------------")
	if vtKey == "" {
		fmt.Println("⚠️  SCAMINTEL_INTEL_VIRUSTOTAL_API_KEY not set, skipping")
	} else {
		summary, err := client.Lookup(ctx, rawURL)
		if err != nil {
			fmt.Printf("❌ Lookup failed: %v\n", err)
		} else {
			fmt.Printf("✅ Lookup successful!\n")
			fmt.Printf("   - Score: %d\n", summary.RiskScore)
			fmt.Printf("   - Verdict: %s\n", summary.Verdict)
			for _, finding := range summary.Findings {
				fmt.Printf("   - %s\n", finding)
			}
			if summary.ReportURL != "" {
				fmt.Printf("   - Report: %s\n", summary.ReportURL)
			}
		}
	}
	fmt.Println()

	// Test 3: active urlscan.io scan (opt-in via --scan)
	if activeScan {
		fmt.Println("🛰  Test 3: urlscan.io active scan...")
		fmt.Println("-------------------------------------------")
		summary, err := client.Scan(ctx, rawURL, true)
		if err != nil {
			fmt.Printf("❌ Scan failed: %v\n", err)
		} else {
			fmt.Printf("✅ Scan complete!\n")
			fmt.Printf("   - Score: %d\n", summary.RiskScore)
			fmt.Printf("   - Verdict: %s\n", summary.Verdict)
			for _, finding := range summary.Findings {
				fmt.Printf("   - %s\n", finding)
			}
			if summary.ReportURL != "" {
				fmt.Printf("   - Report: %s\n", summary.ReportURL)
			}
		}
	}
}
