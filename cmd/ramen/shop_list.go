// Shop list command shows all saved shops with their tasting stats.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/internal/aggregate"
	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved shops",
	Long: `List shows every saved shop with its log count and average rating.

Example:
  ramen shop list
  ramen shop list --json`,
	RunE: runShopList,
}

func runShopList(cmd *cobra.Command, args []string) error {
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

	if flagJSON {
		type shopRow struct {
			types.Shop
			Bowls  int      `json:"bowls"`
			Rating *float64 `json:"rating"`
		}
		rows := make([]shopRow, 0, len(shops))
		for _, shop := range shops {
			stats := aggregate.StatsForShop(logs, shop.ID)
			rows = append(rows, shopRow{Shop: shop, Bowls: stats.Count, Rating: stats.AvgRating})
		}
		return printJSON(rows)
	}

	printShopTable(shops, logs)
	return nil
}

// printShopTable prints shops in a human-readable table format.
func printShopTable(shops []types.Shop, logs []types.BowlLog) {
	if len(shops) == 0 {
		fmt.Println("No shops pinned yet.")
		return
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tNAME\tRATING\tBOWLS\tADDRESS")
	fmt.Fprintln(w, "--\t----\t------\t-----\t-------")
	for _, shop := range shops {
		stats := aggregate.StatsForShop(logs, shop.ID)
		shortID := shop.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			shortID,
			shop.Name,
			ratingLabel(stats.AvgRating),
			stats.Count,
			shop.Address,
		)
	}
	w.Flush()

	output := sb.String()
	for _, line := range strings.Split(output, "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	fmt.Printf("Total: %d shop(s)\n", len(shops))
}
