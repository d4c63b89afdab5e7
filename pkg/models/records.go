// Package models defines the record types produced by the control states
// extraction pipeline and consumed by the upload layer.
package models

import "fmt"

// ReportType distinguishes the single-month figures from the trailing
// twelve-month figures reported in the same table row.
type ReportType string

const (
	ReportMonthly   ReportType = "monthly"
	ReportRolling12 ReportType = "rolling_12"
)

// TableSource identifies which report table a record came from.
type TableSource string

const (
	SourceSpiritsMarkets    TableSource = "spirits_markets"
	SourceSpiritsOnPremise  TableSource = "spirits_on_premise"
	SourceWine              TableSource = "wine"
	SourceSpiritsCategories TableSource = "spirits_categories"
)

// Channel is the sales channel covered by a table.
type Channel string

const (
	ChannelTotal     Channel = "total"
	ChannelOnPremise Channel = "on_premise"
)

// ProductType is the product family covered by a table.
type ProductType string

const (
	ProductSpirits ProductType = "spirits"
	ProductWine    ProductType = "wine"
)

// GeographyType distinguishes individual state rows from the aggregate
// "Total Control" row.
type GeographyType string

const (
	GeoState        GeographyType = "state"
	GeoTotalControl GeographyType = "total_control"
)

// ReportPeriod is the (year, month) a report covers, derived once from the
// document filename and immutable afterwards.
type ReportPeriod struct {
	Year  int
	Month int // 1-12
}

// ReportDate returns the first-of-month date string used on every record.
func (p ReportPeriod) ReportDate() string {
	return fmt.Sprintf("%d-%02d-01", p.Year, p.Month)
}

func (p ReportPeriod) String() string {
	return fmt.Sprintf("%d-%02d", p.Year, p.Month)
}

// RawTable is a grid of cell strings (rows x columns) as extracted by the
// document-analysis service. Read-only to the core.
type RawTable [][]string

// TableType is the semantic type assigned to a table by the classifier.
type TableType string

const (
	TableWine              TableType = "wine"
	TableSpiritsMarkets    TableType = "spirits_markets_total"
	TableSpiritsOnPremise  TableType = "spirits_on_premise"
	TableSpiritsCategories TableType = "spirits_categories"
	TableUnknown           TableType = "unknown"
)

// ClassifiedTable pairs a raw grid with its semantic type. The type depends
// on the contents of other tables in the same document, so it is assigned by
// a document-scoped pass, never per table in isolation.
type ClassifiedTable struct {
	Rows RawTable
	Type TableType
}

// DataRows returns the rows below the header row.
func (t ClassifiedTable) DataRows() [][]string {
	if len(t.Rows) < 2 {
		return nil
	}
	return t.Rows[1:]
}

// SalesRecord is one (report_type, geography) observation from a wine or
// spirits market table.
type SalesRecord struct {
	Year            int           `json:"year"`
	Month           int           `json:"month"`
	ReportDate      string        `json:"report_date"`
	ReportType      ReportType    `json:"report_type"`
	TableSource     TableSource   `json:"table_source"`
	Channel         Channel       `json:"channel"`
	ProductType     ProductType   `json:"product_type"`
	GeographyType   GeographyType `json:"geography_type"`
	StateName       *string       `json:"state_name"`
	Volume9L        *Number       `json:"volume_9l"`
	VolumePctChange *Number       `json:"volume_pct_change"`
	DollarSales     *Number       `json:"dollar_sales"`
	DollarPctChange *Number       `json:"dollar_pct_change"`
}

// CategoryRecord is one observation from the spirit categories table.
// PriceMix is reported only on rolling-12 rows.
type CategoryRecord struct {
	Year            int         `json:"year"`
	Month           int         `json:"month"`
	ReportDate      string      `json:"report_date"`
	ReportType      ReportType  `json:"report_type"`
	TableSource     TableSource `json:"table_source"`
	Channel         Channel     `json:"channel"`
	ProductType     ProductType `json:"product_type"`
	Category        string      `json:"category"`
	Volume9L        *Number     `json:"volume_9l"`
	VolumePctChange *Number     `json:"volume_pct_change"`
	DollarSales     *Number     `json:"dollar_sales"`
	DollarPctChange *Number     `json:"dollar_pct_change"`
	PriceMix        *Number     `json:"price_mix"`
}

// CommentaryRecord holds the narrative text of one report. At most one per
// document.
type CommentaryRecord struct {
	CommentaryID string `json:"commentary_id"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	ReportDate   string `json:"report_date"`
	Section      string `json:"section"`
	Content      string `json:"content"`
}

// SectionFullReport is the only commentary section the monthly reports carry.
const SectionFullReport = "full_report"

// CommentaryID formats the deterministic per-month commentary identifier,
// e.g. NABCA-2025-12-001.
func CommentaryID(period ReportPeriod) string {
	return fmt.Sprintf("NABCA-%d-%02d-001", period.Year, period.Month)
}
