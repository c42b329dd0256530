// Shop show command displays one shop and its tasting history.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/internal/aggregate"
	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

var shopShowCmd = &cobra.Command{
	Use:   "show SHOP_ID",
	Short: "Show a shop and its logs",
	Long: `Show displays a shop's details, its average rating, and every bowl
logged there, most recent first.

Example:
  ramen shop show demo-1
  ramen shop show demo-1 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShopShow,
}

func runShopShow(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	shop, err := st.ShopByID(args[0])
	if err != nil {
		return fmt.Errorf("get shop %s: %w", args[0], err)
	}
	shopLogs, err := st.LogsForShop(shop.ID)
	if err != nil {
		return fmt.Errorf("fetch logs: %w", err)
	}
	logs, err := st.Logs()
	if err != nil {
		return fmt.Errorf("fetch logs: %w", err)
	}
	stats := aggregate.StatsForShop(logs, shop.ID)

	if flagJSON {
		return printJSON(struct {
			Shop   types.Shop      `json:"shop"`
			Bowls  int             `json:"bowls"`
			Rating *float64        `json:"rating"`
			Logs   []types.BowlLog `json:"logs"`
		}{shop, stats.Count, stats.AvgRating, shopLogs})
	}

	fmt.Printf("%s\n", shop.Name)
	fmt.Printf("  %s\n", shop.Address)
	fmt.Printf("  (%.4f, %.4f)\n", shop.Location.Lat, shop.Location.Lng)
	fmt.Printf("  Rating %s over %d bowl(s)\n", ratingLabel(stats.AvgRating), stats.Count)

	if len(shopLogs) == 0 {
		fmt.Println("\nNo bowls logged yet.")
		return nil
	}
	fmt.Println()
	for _, log := range shopLogs {
		printLogCard(log)
	}
	return nil
}

// printLogCard prints one tasting record in a compact card format.
func printLogCard(log types.BowlLog) {
	kaedama := ""
	if log.HasKaedama {
		kaedama = "  替玉"
	}
	fmt.Printf("%s  %s  ★%.1f%s\n", log.Date.Format("2006-01-02"), log.ItemName, log.Rating, kaedama)
	fmt.Printf("    麵:%s 湯:%s 背脂:%s  $%d  排隊%d分  [%s]\n",
		log.NoodleHardness, log.SoupConcentration, log.BackFat,
		log.Price, log.QueueTime, log.ID)
	if log.Notes != "" {
		fmt.Printf("    %s\n", log.Notes)
	}
}
