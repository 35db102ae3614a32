package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mentorlane/internal/errors"
	"mentorlane/internal/mentor"
)

var (
	mentorsSearch   string
	mentorsMode     string
	mentorsSort     string
	mentorsMaxPrice int64
)

var mentorsCmd = &cobra.Command{
	Use:   "mentors",
	Short: "List available mentors",
	Long: `List active mentors without entering the interactive browser.

Examples:
  mentorlane mentors
  mentorlane mentors --search kubernetes
  mentorlane mentors --mode video --sort price
  mentorlane mentors --max-price 100`,
	RunE: runMentors,
}

func init() {
	mentorsCmd.Flags().StringVarP(&mentorsSearch, "search", "s", "", "match against name, title and skills")
	mentorsCmd.Flags().StringVarP(&mentorsMode, "mode", "m", "", "only mentors offering this session type (chat|video)")
	mentorsCmd.Flags().StringVar(&mentorsSort, "sort", "name", "sort order (name|price|sessions)")
	mentorsCmd.Flags().Int64Var(&mentorsMaxPrice, "max-price", 0, "only mentors at or under this price per 15 minutes")
	rootCmd.AddCommand(mentorsCmd)
}

func runMentors(cmd *cobra.Command, args []string) error {
	query, err := mentorsQuery()
	if err != nil {
		return err
	}

	app, err := newAppContext()
	if err != nil {
		return err
	}
	defer app.close()

	if err := app.requireLogin(); err != nil {
		return err
	}

	mentors, err := app.client.Mentors(cmd.Context())
	if err != nil {
		return err
	}
	matched := mentor.Filter(mentors, query)

	if len(matched) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No mentors match.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTITLE\tPER 15M\tSESSIONS\tSKILLS")
	for _, m := range matched {
		price := "-"
		if unit, ok := m.CheapestUnit(); ok {
			price = fmt.Sprintf("₹%d", unit)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			m.Name, m.Title, price, m.Stats.SessionsCompleted, strings.Join(m.Skills, ","))
	}
	return w.Flush()
}

func mentorsQuery() (mentor.Query, error) {
	query := mentor.Query{
		Search:       mentorsSearch,
		Sort:         mentor.SortOrder(mentorsSort),
		MaxUnitPrice: mentorsMaxPrice,
	}
	if mentorsMode != "" {
		mode := mentor.SessionType(mentorsMode)
		if !mode.Valid() {
			return mentor.Query{}, errors.NewValidationError("mode must be chat or video").
				WithField("mode").WithValue(mentorsMode)
		}
		query.Mode = mode
	}
	switch query.Sort {
	case mentor.SortByName, mentor.SortByPrice, mentor.SortBySessions:
	default:
		return mentor.Query{}, errors.NewValidationError("sort must be name, price or sessions").
			WithField("sort").WithValue(mentorsSort)
	}
	return query, nil
}
