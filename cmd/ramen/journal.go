// Journal command: the chronological list of every recorded bowl.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/internal/aggregate"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Browse all recorded bowls",
	Long: `Journal lists every recorded bowl across all shops, most recent
first, with the shop each was eaten at. A bowl whose shop has been removed
shows as ` + aggregate.UnknownShopLabel + `.

Example:
  ramen journal
  ramen journal --json`,
	RunE: runJournal,
}

func runJournal(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	shops, err := st.Shops()
	if err != nil {
		return fmt.Errorf("fetch shops: %w", err)
	}
	logs, err := st.Logs()
	if err != nil {
		return fmt.Errorf("fetch logs: %w", err)
	}

	entries := aggregate.Journal(shops, logs)
	if flagJSON {
		type row struct {
			Shop string `json:"shop"`
			Log  any    `json:"log"`
		}
		rows := make([]row, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, row{Shop: e.ShopName, Log: e.Log})
		}
		return printJSON(rows)
	}

	if len(entries) == 0 {
		fmt.Println("No bowls recorded yet.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %s · %s  ★%.1f\n",
			e.Log.Date.Format("2006-01-02"), e.ShopName, e.Log.ItemName, e.Log.Rating)
	}
	totals := aggregate.CollectionTotals(shops, logs)
	fmt.Printf("Total: %d bowl(s) at %d shop(s)\n", totals.Logs, totals.Shops)
	return nil
}
