package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/luxtra-app/luxtra/pkg/category"
	"github.com/luxtra-app/luxtra/pkg/glyph"
	"github.com/luxtra-app/luxtra/pkg/subscription"
	"github.com/luxtra-app/luxtra/pkg/task"
	"github.com/luxtra-app/luxtra/pkg/view"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69f8b99dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

func (pp *PrettyPrint) id(id string) {
	if !pp.ShowID {
		return
	}
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	_, _ = y.Print(id)
	_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
}

// Subscriptions renders the subscription table.
func (pp *PrettyPrint) Subscriptions(subs ...*subscription.Subscription) {
	if len(subs) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, s := range subs {
		mark := glyph.Payment
		if s.IsPaid {
			mark = glyph.Paid
		}
		row := []interface{}{
			mark.String(),
			s.Name,
			s.Currency.Format(s.Amount),
			string(s.BillingCycle),
			category.Lookup(s.Category).Label,
			s.NextBillingDate.Local().Format("2006-01-02"),
		}
		if pp.ShowID {
			row = append([]interface{}{s.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Tasks renders the responsibility table.
func (pp *PrettyPrint) Tasks(tasks ...*task.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		mark := glyph.Responsibility
		if t.IsCompleted {
			mark = glyph.Done
		}
		title := t.Title
		if t.IsCompleted {
			title = glyph.Strike(title)
		}
		row := []interface{}{
			mark.String(),
			priorityGlyph(t.Priority).String(),
			title,
			t.DueDate.Local().Format("2006-01-02"),
		}
		if t.IsRecurring {
			row = append(row, fmt.Sprintf("every %dmo", t.RecurringMonths))
		}
		if pp.ShowID {
			row = append([]interface{}{t.ID}, row...)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Bucket renders one timeline partition under its heading.
func (pp *PrettyPrint) Bucket(name view.Bucket, items []view.Item, now time.Time) {
	if len(items) == 0 {
		return
	}
	pp.Items(bucketHeading(name), items, now)
}

// Items renders timeline rows under an arbitrary heading.
func (pp *PrettyPrint) Items(heading string, items []view.Item, now time.Time) {
	pp.TitleWithCount(heading, len(items))
	if len(items) == 0 {
		pp.none()
		return
	}

	t := color.New()
	for _, item := range items {
		pp.id(item.ID)
		switch item.Kind {
		case view.KindPayment:
			mark := glyph.Payment
			if item.IsPaid {
				mark = glyph.Paid
			}
			_, _ = t.Printf("%s %s %s (%s)\n",
				mark.String(), item.Title, item.Currency.Format(item.Amount), view.DueLabel(item.Date, now))
		default:
			_, _ = t.Printf("%s %s %s (%s)\n",
				glyph.Responsibility.String(), priorityGlyph(item.Priority).String(), item.Title, view.DueLabel(item.Date, now))
		}
	}
	fmt.Println("")
}

// Summary renders totals and the category breakdown.
func (pp *PrettyPrint) Summary(cur subscription.Currency, monthly, annual float64, groups []view.CategoryGroup) {
	pp.Title("Summary")

	t := color.New()
	_, _ = t.Printf("monthly %s\n", cur.Format(monthly))
	_, _ = t.Printf("annual  %s\n\n", cur.Format(annual))

	if len(groups) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, g := range groups {
		label := color.New(g.Config.Color).Sprint(g.Config.Label)
		tbl.AddRow(label, cur.Format(g.Total), fmt.Sprintf("%d", g.Count))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Insight renders the generated observation.
func (pp *PrettyPrint) Insight(text string) {
	i := color.New(color.Italic)
	_, _ = i.Println(text)
	fmt.Println("")
}

func priorityGlyph(p task.Priority) glyph.Kind {
	switch p {
	case task.High:
		return glyph.High
	case task.Low:
		return glyph.Low
	}
	return glyph.Medium
}

func bucketHeading(name view.Bucket) string {
	switch name {
	case view.BucketOverdue:
		return "Overdue"
	case view.BucketToday:
		return "Today"
	case view.BucketTomorrow:
		return "Tomorrow"
	case view.BucketThisWeek:
		return "This week"
	case view.BucketThisMonth:
		return "This month"
	}
	return "Later"
}
