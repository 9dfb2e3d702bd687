package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/luxtra-app/luxtra/pkg/view"
)

// Calendar renders the month containing `on` with due days highlighted,
// followed by the items falling due in that month.
func (pp *PrettyPrint) Calendar(on time.Time, items ...view.Item) {
	then := time.Date(on.Year(), on.Month(), 1, 1, 0, 0, 0, time.Local)

	count := make([]int, DaysIn(then))
	for _, item := range items {
		if item.Date.IsZero() {
			continue
		}
		d := item.Date.Local()
		if d.Month() == then.Month() && d.Year() == then.Year() {
			count[d.Day()-1]++
		}
	}

	pp.PrintMonthCount(then, count)
	fmt.Println("")

	t := color.New()
	for _, item := range items {
		if item.Date.IsZero() {
			continue
		}
		d := item.Date.Local()
		if d.Month() != then.Month() || d.Year() != then.Year() {
			continue
		}
		pp.id(item.ID)
		if item.Kind == view.KindPayment {
			_, _ = t.Printf("%2d  %s %s\n", d.Day(), item.Title, item.Currency.Format(item.Amount))
		} else {
			_, _ = t.Printf("%2d  %s\n", d.Day(), item.Title)
		}
	}
	fmt.Println("")
}

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonthCount renders a month grid; days with a nonzero count render
// bold, today renders highlighted.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	hl := color.New(color.Bold, color.FgHiCyan)

	now := time.Now()
	for i := 0; i < days; i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if now.Month() == then.Month() && now.Year() == then.Year() && now.Day() == i+1 {
			printer = hl
		}
		_, _ = printer.Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Println("")
		}
	}
	fmt.Println("")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, then.Local().Day(), 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
