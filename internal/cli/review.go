package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pratik-mahalle/gigmarket/pkg/client"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read and write reviews",
}

var reviewsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List reviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := client.ReviewListParams{}

		flags := cmd.Flags()
		if flags.Changed("business-user") {
			id, _ := flags.GetInt64("business-user")
			params.BusinessUserID = &id
		}
		if flags.Changed("reviewer") {
			id, _ := flags.GetInt64("reviewer")
			params.ReviewerID = &id
		}
		params.Ordering, _ = flags.GetString("ordering")

		reviews, err := apiClient().ListReviews(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printJSON(reviews)
	},
}

var reviewsCreateCmd = &cobra.Command{
	Use:   "create <business-user-id> <rating>",
	Short: "Review a business user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		businessUserID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}
		description, _ := cmd.Flags().GetString("description")

		rv, err := apiClient().CreateReview(cmd.Context(), client.ReviewCreateInput{
			BusinessUser: businessUserID,
			Rating:       rating,
			Description:  description,
		})
		if err != nil {
			return err
		}
		return printJSON(rv)
	},
}

var reviewsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an own review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		var rating *int
		var description *string
		flags := cmd.Flags()
		if flags.Changed("rating") {
			r, _ := flags.GetInt("rating")
			rating = &r
		}
		if flags.Changed("description") {
			d, _ := flags.GetString("description")
			description = &d
		}

		rv, err := apiClient().UpdateReview(cmd.Context(), id, rating, description)
		if err != nil {
			return err
		}
		return printJSON(rv)
	},
}

var reviewsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an own review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		if err := apiClient().DeleteReview(cmd.Context(), id); err != nil {
			return err
		}
		printf("review %d deleted", id)
		return nil
	},
}

func init() {
	reviewsListCmd.Flags().Int64("business-user", 0, "filter by reviewed business user ID")
	reviewsListCmd.Flags().Int64("reviewer", 0, "filter by reviewer user ID")
	reviewsListCmd.Flags().String("ordering", "", "ordering (rating, -rating, updated_at, -updated_at)")

	reviewsCreateCmd.Flags().String("description", "", "review text")

	reviewsUpdateCmd.Flags().Int("rating", 0, "new rating (1-5)")
	reviewsUpdateCmd.Flags().String("description", "", "new review text")

	reviewsCmd.AddCommand(reviewsListCmd, reviewsCreateCmd, reviewsUpdateCmd, reviewsDeleteCmd)
	rootCmd.AddCommand(reviewsCmd)
}
