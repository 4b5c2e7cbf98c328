package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VillePajala/linkedin-post-generator/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past generation runs",
		Long:  "List recent generation runs from the local run log, newest first.",
		Run:   runHistory,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max results")
	cmd.Flags().String("mode", "", "Filter by mode: manual, context or style")
	cmd.Flags().Bool("json", false, "Output JSON instead of text")

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	mode, _ := cmd.Flags().GetString("mode")
	asJSON, _ := cmd.Flags().GetBool("json")

	h, err := openHistory()
	if err != nil {
		exitErr("open history", err)
	}
	defer h.Close()

	runs, err := h.List(cmd.Context(), store.ListParams{Mode: mode, Limit: limit})
	if err != nil {
		exitErr("list history", err)
	}

	if asJSON {
		b, _ := json.MarshalIndent(runs, "", "  ")
		fmt.Println(string(b))
		return
	}

	if len(runs) == 0 {
		fmt.Println("No generation runs recorded yet.")
		return
	}

	for _, r := range runs {
		variant := ""
		if r.Variant != "" && r.Variant != "Standard" {
			variant = " [" + r.Variant + "]"
		}
		fmt.Printf("%s  %-7s %s%s\n", r.CreatedAt.Format("2006-01-02 15:04"), r.Mode, r.Identifier, variant)
		if r.DraftPath != "" {
			fmt.Printf("    %s\n", r.DraftPath)
		}
	}
}
