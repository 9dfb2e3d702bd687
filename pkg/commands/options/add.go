package options

import (
	"time"

	"github.com/spf13/cobra"
)

// SubscriptionOptions captures the flags for recording a payment.
type SubscriptionOptions struct {
	Amount     float64
	Cycle      string
	Currency   string
	Category   string
	NextString string
	RemindDays int
}

func AddSubscriptionArgs(cmd *cobra.Command, o *SubscriptionOptions) {
	cmd.Flags().Float64VarP(&o.Amount, "amount", "a", 0,
		"Amount charged per billing cycle.")
	cmd.Flags().StringVar(&o.Cycle, "cycle", "monthly",
		"Billing cycle, monthly or yearly.")
	cmd.Flags().StringVar(&o.Currency, "currency", "",
		"Currency code, example: USD.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category key, example: entertainment.")
	cmd.Flags().StringVar(&o.NextString, "next", "",
		`Next billing date, example: --next="2026-9-1" or --next="9/1".`)
	cmd.Flags().IntVar(&o.RemindDays, "remind", 3,
		"Days of warning before the billing date.")
}

func (o *SubscriptionOptions) GetNext() (*time.Time, error) {
	return parseDate(o.NextString)
}

// TaskOptions captures the flags for recording a responsibility.
type TaskOptions struct {
	DueString string
	Priority  string
	Recurring bool
	Months    int
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.DueString, "due", "",
		`Due date, example: --due="2026-9-1" or --due="9/1".`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority, one of high, medium, low.")
	cmd.Flags().BoolVar(&o.Recurring, "recurring", false,
		"Repeat the responsibility on a monthly interval.")
	cmd.Flags().IntVar(&o.Months, "months", 1,
		"Months between repeats when recurring.")
}

func (o *TaskOptions) GetDue() (*time.Time, error) {
	return parseDate(o.DueString)
}
