// Shop add command pins a new shop at a coordinate.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

var (
	shopAddName    string
	shopAddAddress string
	shopAddLat     float64
	shopAddLng     float64
)

var shopAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Pin a new shop",
	Long: `Add pins a new shop at the given coordinate, like clicking the map.

Example:
  ramen shop add --name "一蘭 台北本店" --address "台北市信義區" --lat 25.0443 --lng 121.5654`,
	RunE: runShopAdd,
}

func init() {
	shopAddCmd.Flags().StringVar(&shopAddName, "name", "", "shop name (required)")
	shopAddCmd.Flags().StringVar(&shopAddAddress, "address", "", "shop address")
	shopAddCmd.Flags().Float64Var(&shopAddLat, "lat", 0, "latitude (required)")
	shopAddCmd.Flags().Float64Var(&shopAddLng, "lng", 0, "longitude (required)")
	_ = shopAddCmd.MarkFlagRequired("name")
	_ = shopAddCmd.MarkFlagRequired("lat")
	_ = shopAddCmd.MarkFlagRequired("lng")
}

func runShopAdd(cmd *cobra.Command, args []string) error {
	loc := types.Location{Lat: shopAddLat, Lng: shopAddLng}
	if !loc.IsFinite() {
		return fmt.Errorf("coordinate must be finite numbers")
	}

	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	sess := newSession(st)
	sess.StageAddShop(loc)
	shop, err := sess.ConfirmAddShop(shopAddName, shopAddAddress)
	if err != nil {
		return fmt.Errorf("add shop: %w", err)
	}

	if flagJSON {
		return printJSON(shop)
	}
	fmt.Printf("Pinned shop: %s (%s)\n", shop.Name, shop.ID)
	return nil
}
