package extract

import (
	"testing"

	"controlstates/pkg/models"
)

var testPeriod = models.ReportPeriod{Year: 2025, Month: 12}

func TestExpandSalesRowFanOut(t *testing.T) {
	row := []string{"Alabama", "725,000", "3.3%", "$14,100,000", "4.1%", "8,700,000", "1.2%", "$169,000,000", "2.2%"}

	sales, categories := Expand(row, testPeriod, models.TableSpiritsMarkets)
	if len(categories) != 0 {
		t.Fatalf("expected no category records, got %d", len(categories))
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales records, got %d", len(sales))
	}

	monthly, rolling := sales[0], sales[1]
	if monthly.ReportType != models.ReportMonthly || rolling.ReportType != models.ReportRolling12 {
		t.Fatalf("report types = %s, %s", monthly.ReportType, rolling.ReportType)
	}
	if !monthly.Volume9L.Equal(models.Int(725000)) {
		t.Errorf("monthly volume = %s, want 725000", monthly.Volume9L)
	}
	if !monthly.DollarPctChange.Equal(models.Float(4.1)) {
		t.Errorf("monthly dollar pct = %s, want 4.1", monthly.DollarPctChange)
	}
	if !rolling.Volume9L.Equal(models.Int(8700000)) {
		t.Errorf("rolling volume = %s, want 8700000", rolling.Volume9L)
	}
	if !rolling.DollarSales.Equal(models.Int(169000000)) {
		t.Errorf("rolling dollars = %s, want 169000000", rolling.DollarSales)
	}

	for _, rec := range sales {
		if rec.GeographyType != models.GeoState {
			t.Errorf("geography = %s, want state", rec.GeographyType)
		}
		if rec.StateName == nil || *rec.StateName != "Alabama" {
			t.Errorf("state name = %v, want Alabama", rec.StateName)
		}
		if rec.ReportDate != "2025-12-01" {
			t.Errorf("report date = %s, want 2025-12-01", rec.ReportDate)
		}
		if rec.TableSource != models.SourceSpiritsMarkets || rec.Channel != models.ChannelTotal || rec.ProductType != models.ProductSpirits {
			t.Errorf("layout = %s/%s/%s", rec.TableSource, rec.Channel, rec.ProductType)
		}
	}
}

func TestExpandTotalControl(t *testing.T) {
	for _, name := range []string{"Total Control", "TOTAL CONTROL", "total  control"} {
		row := []string{name, "1", "2", "3", "4", "5", "6", "7", "8"}
		sales, _ := Expand(row, testPeriod, models.TableWine)
		if len(sales) != 2 {
			t.Fatalf("%q: expected 2 records, got %d", name, len(sales))
		}
		for _, rec := range sales {
			if rec.GeographyType != models.GeoTotalControl {
				t.Errorf("%q: geography = %s, want total_control", name, rec.GeographyType)
			}
			if rec.StateName != nil {
				t.Errorf("%q: state name = %q, want nil", name, *rec.StateName)
			}
		}
	}
}

func TestExpandCategoryPriceMix(t *testing.T) {
	row := []string{"VODKA", "1,200", "0.5%", "$30,000", "1.5%", "14,000", "0.7%", "$360,000", "1.9%", "38.5"}

	sales, categories := Expand(row, testPeriod, models.TableSpiritsCategories)
	if len(sales) != 0 {
		t.Fatalf("expected no sales records, got %d", len(sales))
	}
	if len(categories) != 2 {
		t.Fatalf("expected 2 category records, got %d", len(categories))
	}

	monthly, rolling := categories[0], categories[1]
	if monthly.PriceMix != nil {
		t.Errorf("monthly price mix = %s, want nil", monthly.PriceMix)
	}
	if !rolling.PriceMix.Equal(models.Float(38.5)) {
		t.Errorf("rolling price mix = %s, want 38.5", rolling.PriceMix)
	}
	if monthly.Category != "VODKA" || rolling.Category != "VODKA" {
		t.Errorf("category = %q/%q, want VODKA", monthly.Category, rolling.Category)
	}

	// Nine columns: price mix absent on both sides.
	_, nine := Expand(row[:9], testPeriod, models.TableSpiritsCategories)
	if len(nine) != 2 || nine[0].PriceMix != nil || nine[1].PriceMix != nil {
		t.Errorf("9-column row should have nil price mix on both records")
	}
}

func TestExpandRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name string
		row  []string
		typ  models.TableType
	}{
		{"too few cells", []string{"Alabama", "1", "2", "3", "4", "5", "6", "7"}, models.TableWine},
		{"empty entity", []string{"   ", "1", "2", "3", "4", "5", "6", "7", "8"}, models.TableWine},
		{"unknown table", []string{"Alabama", "1", "2", "3", "4", "5", "6", "7", "8"}, models.TableUnknown},
	}
	for _, tc := range tests {
		sales, categories := Expand(tc.row, testPeriod, tc.typ)
		if len(sales) != 0 || len(categories) != 0 {
			t.Errorf("%s: expected no records, got %d sales, %d categories", tc.name, len(sales), len(categories))
		}
	}
}

func TestExpandUnparseableCellsAreNull(t *testing.T) {
	row := []string{"Oregon", "N/A", "", "abc", "4.4%", "5", "6", "7", "8"}
	sales, _ := Expand(row, testPeriod, models.TableWine)
	if len(sales) != 2 {
		t.Fatalf("expected 2 records, got %d", len(sales))
	}
	monthly := sales[0]
	if monthly.Volume9L != nil || monthly.VolumePctChange != nil || monthly.DollarSales != nil {
		t.Errorf("unparseable cells should normalize to nil")
	}
	if !monthly.DollarPctChange.Equal(models.Float(4.4)) {
		t.Errorf("dollar pct = %s, want 4.4", monthly.DollarPctChange)
	}
}
