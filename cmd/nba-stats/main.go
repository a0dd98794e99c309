// Command nba-stats scrapes NBA per-game and advanced player statistics from
// basketball-reference.com and produces one merged, cleaned table.
package main

import "github.com/zjtippetts/Data-Acquisition-NBA/internal/cli"

func main() {
	cli.Execute()
}
