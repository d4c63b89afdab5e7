package extract

import (
	"strings"

	"controlstates/pkg/models"
)

// tableLayout carries the fixed (table_source, channel, product_type) values
// of each classified table type.
type tableLayout struct {
	source  models.TableSource
	channel models.Channel
	product models.ProductType
}

var layouts = map[models.TableType]tableLayout{
	models.TableWine:              {models.SourceWine, models.ChannelTotal, models.ProductWine},
	models.TableSpiritsMarkets:    {models.SourceSpiritsMarkets, models.ChannelTotal, models.ProductSpirits},
	models.TableSpiritsOnPremise:  {models.SourceSpiritsOnPremise, models.ChannelOnPremise, models.ProductSpirits},
	models.TableSpiritsCategories: {models.SourceSpiritsCategories, models.ChannelTotal, models.ProductSpirits},
}

// minRowCells is the cell count a data row needs: entity name plus two blocks
// of four value columns (monthly, rolling-12).
const minRowCells = 9

// Expand turns one data row into its monthly and rolling-12 records. Exactly
// one of the returned slices is populated: sales records for the wine and
// spirits market tables, category records for the spirit categories table.
// Malformed rows (fewer than nine cells, empty entity name) and rows of
// unknown tables expand to nothing.
func Expand(row []string, period models.ReportPeriod, tableType models.TableType) ([]models.SalesRecord, []models.CategoryRecord) {
	layout, ok := layouts[tableType]
	if !ok {
		return nil, nil
	}
	if len(row) < minRowCells {
		return nil, nil
	}
	entity := strings.TrimSpace(row[0])
	if entity == "" {
		return nil, nil
	}

	if tableType == models.TableSpiritsCategories {
		return nil, expandCategoryRow(row, entity, period, layout)
	}
	return expandSalesRow(row, entity, period, layout), nil
}

func expandSalesRow(row []string, entity string, period models.ReportPeriod, layout tableLayout) []models.SalesRecord {
	geo := models.GeoState
	var stateName *string
	if IsTotalControl(entity) {
		geo = models.GeoTotalControl
	} else {
		name := entity
		stateName = &name
	}

	base := models.SalesRecord{
		Year:          period.Year,
		Month:         period.Month,
		ReportDate:    period.ReportDate(),
		TableSource:   layout.source,
		Channel:       layout.channel,
		ProductType:   layout.product,
		GeographyType: geo,
		StateName:     stateName,
	}

	monthly := base
	monthly.ReportType = models.ReportMonthly
	monthly.Volume9L = Normalize(row[1])
	monthly.VolumePctChange = Normalize(row[2])
	monthly.DollarSales = Normalize(row[3])
	monthly.DollarPctChange = Normalize(row[4])

	rolling := base
	rolling.ReportType = models.ReportRolling12
	rolling.Volume9L = Normalize(row[5])
	rolling.VolumePctChange = Normalize(row[6])
	rolling.DollarSales = Normalize(row[7])
	rolling.DollarPctChange = Normalize(row[8])

	return []models.SalesRecord{monthly, rolling}
}

func expandCategoryRow(row []string, entity string, period models.ReportPeriod, layout tableLayout) []models.CategoryRecord {
	base := models.CategoryRecord{
		Year:        period.Year,
		Month:       period.Month,
		ReportDate:  period.ReportDate(),
		TableSource: layout.source,
		Channel:     layout.channel,
		ProductType: layout.product,
		Category:    entity,
	}

	monthly := base
	monthly.ReportType = models.ReportMonthly
	monthly.Volume9L = Normalize(row[1])
	monthly.VolumePctChange = Normalize(row[2])
	monthly.DollarSales = Normalize(row[3])
	monthly.DollarPctChange = Normalize(row[4])

	rolling := base
	rolling.ReportType = models.ReportRolling12
	rolling.Volume9L = Normalize(row[5])
	rolling.VolumePctChange = Normalize(row[6])
	rolling.DollarSales = Normalize(row[7])
	rolling.DollarPctChange = Normalize(row[8])
	// Price mix is only reported on the rolling-12 side, in an optional
	// tenth column.
	if len(row) > 9 {
		rolling.PriceMix = Normalize(row[9])
	}

	return []models.CategoryRecord{monthly, rolling}
}
