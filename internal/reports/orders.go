package reports

import (
	"sort"
	"strings"
	"time"

	"prodlogs/internal/services/p21"
)

// WeightBucket is an aggregated pound total under one label.
type WeightBucket struct {
	Label    string
	Orders   int
	WeightLB float64
}

// OrdersReport is the open-order workload inside the scheduling window.
type OrdersReport struct {
	WindowEnd   time.Time
	Orders      int
	TotalLB     float64
	ByMachine   []WeightBucket
	ByScheduler []WeightBucket
}

// BuildOrdersReport aggregates the open orders due on or before the next
// Friday cap. Orders without a due date are treated as due now. Orders
// without a production line or scheduler fall under "Unassigned".
func BuildOrdersReport(orders []p21.OpenOrder, now time.Time) OrdersReport {
	report := OrdersReport{WindowEnd: NextFridayCap(now)}
	byMachine := map[string]*WeightBucket{}
	byScheduler := map[string]*WeightBucket{}

	for _, order := range orders {
		if !order.DueDate.IsZero() && order.DueDate.After(report.WindowEnd) {
			continue
		}
		report.Orders++
		report.TotalLB += order.ExtendedWeightLB
		accumulate(byMachine, order.Machine, order.ExtendedWeightLB)
		accumulate(byScheduler, order.Scheduler, order.ExtendedWeightLB)
	}

	report.ByMachine = sortedBuckets(byMachine)
	report.ByScheduler = sortedBuckets(byScheduler)
	return report
}

func accumulate(buckets map[string]*WeightBucket, label string, lb float64) {
	label = strings.TrimSpace(label)
	if label == "" {
		label = "Unassigned"
	}
	bucket, ok := buckets[label]
	if !ok {
		bucket = &WeightBucket{Label: label}
		buckets[label] = bucket
	}
	bucket.Orders++
	bucket.WeightLB += lb
}

// sortedBuckets orders heaviest first, then by label for stable output.
func sortedBuckets(buckets map[string]*WeightBucket) []WeightBucket {
	out := make([]WeightBucket, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WeightLB != out[j].WeightLB {
			return out[i].WeightLB > out[j].WeightLB
		}
		return out[i].Label < out[j].Label
	})
	return out
}

// RenderOrdersReport renders the workload tables.
func RenderOrdersReport(report OrdersReport, styled bool) string {
	var sections []string

	summaryRows := [][]string{
		{"Window ends", report.WindowEnd.Format("2006-01-02 (Monday)")},
		{"Open orders", formatLB(float64(report.Orders))},
		{"Total weight (LB)", formatLB(report.TotalLB)},
	}
	sections = append(sections, renderTable("Open Orders", []string{"Metric", "Value"}, summaryRows, []columnAlignment{alignLeft, alignRight}, styled))

	sections = append(sections, renderBuckets("Weight by Machine", "Machine", report.ByMachine, styled))
	sections = append(sections, renderBuckets("Weight by Scheduler", "Scheduler", report.ByScheduler, styled))

	return strings.Join(sections, "\n\n")
}

func renderBuckets(title, label string, buckets []WeightBucket, styled bool) string {
	rows := make([][]string, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, []string{bucket.Label, formatLB(float64(bucket.Orders)), formatLB(bucket.WeightLB)})
	}
	return renderTable(title,
		[]string{label, "Orders", "Weight (LB)"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight},
		styled)
}
