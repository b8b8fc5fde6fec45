// Command datemetrics prints calendar metrics for dates.
//
// Usage:
//
//	datemetrics info 2025-01-01
//	datemetrics info --extra-holidays closures.yaml --format yaml 2025-03-10
//	datemetrics lunar 2025 2026
//	datemetrics holidays 2026
//	datemetrics week 2021-01-01
package main

import "github.com/rabitt1ove/datemetrics/internal/cli"

func main() {
	cli.Execute()
}
