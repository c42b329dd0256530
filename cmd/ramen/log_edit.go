// Log edit command updates an existing bowl record in place.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/ramenreality/internal/session"
	"github.com/mesh-intelligence/ramenreality/pkg/types"
)

var (
	logEditItem    string
	logEditRating  float64
	logEditNoodle  string
	logEditSoup    string
	logEditFat     string
	logEditPrice   int
	logEditQueue   int
	logEditNotes   string
	logEditKaedama bool
)

var logEditCmd = &cobra.Command{
	Use:   "edit LOG_ID",
	Short: "Edit a recorded bowl",
	Long: `Edit updates a recorded bowl. Only the given flags change; the log's
ID, shop, and date always stay as they were.

Example:
  ramen log edit log-1 --rating 4 --notes "第二次沒那麼驚豔"`,
	Args: cobra.ExactArgs(1),
	RunE: runLogEdit,
}

func init() {
	logEditCmd.Flags().StringVar(&logEditItem, "item", "", "menu item name")
	logEditCmd.Flags().Float64Var(&logEditRating, "rating", 0, "rating, 1-5 in half steps")
	logEditCmd.Flags().StringVar(&logEditNoodle, "noodle", "", "noodle hardness")
	logEditCmd.Flags().StringVar(&logEditSoup, "soup", "", "soup concentration")
	logEditCmd.Flags().StringVar(&logEditFat, "fat", "", "back fat amount")
	logEditCmd.Flags().IntVar(&logEditPrice, "price", 0, "price paid")
	logEditCmd.Flags().IntVar(&logEditQueue, "queue", 0, "queue time in minutes")
	logEditCmd.Flags().StringVar(&logEditNotes, "notes", "", "free-text notes")
	logEditCmd.Flags().BoolVar(&logEditKaedama, "kaedama", false, "ordered a noodle refill")
}

func runLogEdit(cmd *cobra.Command, args []string) error {
	st, err := attachStore()
	if err != nil {
		return err
	}
	defer st.Detach()

	existing, err := st.LogByID(args[0])
	if err != nil {
		return fmt.Errorf("get log %s: %w", args[0], err)
	}

	// Start from the stored record and overlay only the flags the user set.
	form := session.LogForm{
		ItemName:          existing.ItemName,
		Rating:            existing.Rating,
		NoodleHardness:    existing.NoodleHardness,
		SoupConcentration: existing.SoupConcentration,
		BackFat:           existing.BackFat,
		Price:             existing.Price,
		QueueTime:         existing.QueueTime,
		Notes:             existing.Notes,
		HasKaedama:        existing.HasKaedama,
	}
	flags := cmd.Flags()
	if flags.Changed("item") {
		form.ItemName = logEditItem
	}
	if flags.Changed("rating") {
		form.Rating = logEditRating
	}
	if flags.Changed("noodle") {
		form.NoodleHardness = logEditNoodle
	}
	if flags.Changed("soup") {
		form.SoupConcentration = logEditSoup
	}
	if flags.Changed("fat") {
		form.BackFat = logEditFat
	}
	if flags.Changed("price") {
		form.Price = logEditPrice
	}
	if flags.Changed("queue") {
		form.QueueTime = logEditQueue
	}
	if flags.Changed("notes") {
		form.Notes = logEditNotes
	}
	if flags.Changed("kaedama") {
		form.HasKaedama = logEditKaedama
	}

	// Entry rules apply only to values the user typed; a stored record's
	// existing fields pass through untouched.
	if flags.Changed("rating") {
		if err := validateRatingInput(form.Rating); err != nil {
			return err
		}
	}
	if flags.Changed("noodle") {
		if err := validateOptionInput("noodle hardness", form.NoodleHardness, types.NoodleHardnessOptions); err != nil {
			return err
		}
	}
	if flags.Changed("soup") {
		if err := validateOptionInput("soup concentration", form.SoupConcentration, types.SoupConcentrationOptions); err != nil {
			return err
		}
	}
	if flags.Changed("fat") {
		if err := validateOptionInput("back fat", form.BackFat, types.BackFatOptions); err != nil {
			return err
		}
	}

	sess := newSession(st)
	log, err := sess.EditLog(existing.ID, form)
	if err != nil {
		return fmt.Errorf("edit log: %w", err)
	}

	if flagJSON {
		return printJSON(log)
	}
	fmt.Printf("Updated bowl: %s (%s)\n", log.ItemName, log.ID)
	return nil
}
