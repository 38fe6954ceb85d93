package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/gigmarket/pkg/client"
)

var offersCmd = &cobra.Command{
	Use:   "offers",
	Short: "Browse and manage offers",
}

var offersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := client.OfferListParams{}

		flags := cmd.Flags()
		if flags.Changed("creator") {
			id, _ := flags.GetInt64("creator")
			params.CreatorID = &id
		}
		if flags.Changed("min-price") {
			p, _ := flags.GetFloat64("min-price")
			params.MinPrice = &p
		}
		if flags.Changed("max-delivery") {
			d, _ := flags.GetInt("max-delivery")
			params.MaxDeliveryTime = &d
		}
		params.Search, _ = flags.GetString("search")
		params.Ordering, _ = flags.GetString("ordering")
		params.Page, _ = flags.GetInt("page")
		params.PageSize, _ = flags.GetInt("page-size")
		params.FullDetails, _ = flags.GetBool("full")

		page, err := apiClient().ListOffers(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printJSON(page)
	},
}

var offersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		full, _ := cmd.Flags().GetBool("full")

		o, err := apiClient().GetOffer(cmd.Context(), id, full)
		if err != nil {
			return err
		}
		return printJSON(o)
	},
}

var offersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an offer from a JSON payload file",
	Long: `Create an offer with its three pricing tiers. The payload file holds the
request body, e.g.:

  {
    "title": "Logo design",
    "description": "Professional logo design",
    "details": [
      {"title": "Basic", "revisions": 1, "delivery_time_in_days": 7,
       "price": 30, "features": ["1 concept"], "offer_type": "basic"},
      ...
    ]
  }`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := cmd.Flags().GetString("file")
		if err != nil {
			return err
		}

		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}
		var input client.OfferCreateInput
		if err := json.Unmarshal(data, &input); err != nil {
			return fmt.Errorf("parsing %s: %w", file, err)
		}

		o, err := apiClient().CreateOffer(cmd.Context(), input)
		if err != nil {
			return err
		}
		return printJSON(o)
	},
}

var offersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an own offer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		if err := apiClient().DeleteOffer(cmd.Context(), id); err != nil {
			return err
		}
		printf("offer %d deleted", id)
		return nil
	},
}

var offerDetailCmd = &cobra.Command{
	Use:   "detail <id>",
	Short: "Show a single pricing tier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		d, err := apiClient().GetOfferDetail(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printJSON(d)
	},
}

func init() {
	offersListCmd.Flags().Int64("creator", 0, "filter by creator user ID")
	offersListCmd.Flags().Float64("min-price", 0, "minimum offer price")
	offersListCmd.Flags().Int("max-delivery", 0, "maximum delivery time in days")
	offersListCmd.Flags().String("search", "", "search in title and description")
	offersListCmd.Flags().String("ordering", "", "ordering (min_price, -min_price, updated_at, -updated_at)")
	offersListCmd.Flags().Int("page", 0, "page number")
	offersListCmd.Flags().Int("page-size", 0, "results per page")
	offersListCmd.Flags().Bool("full", false, "include full tier objects")

	offersGetCmd.Flags().Bool("full", false, "include full tier objects")

	offersCreateCmd.Flags().String("file", "", "path to the JSON payload file")
	offersCreateCmd.MarkFlagRequired("file")

	offersCmd.AddCommand(offersListCmd, offersGetCmd, offersCreateCmd, offersDeleteCmd, offerDetailCmd)
	rootCmd.AddCommand(offersCmd)
}
