package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"controlstates/pkg/models"
)

func newMockRepo(t *testing.T) (*ReportRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewReportRepo(mock, "nabca"), mock
}

func commentaryRecords(n int) []models.CommentaryRecord {
	recs := make([]models.CommentaryRecord, n)
	for i := range recs {
		recs[i] = models.CommentaryRecord{
			CommentaryID: fmt.Sprintf("NABCA-2025-%02d-001", i+1),
			Year:         2025,
			Month:        i + 1,
			ReportDate:   fmt.Sprintf("2025-%02d-01", i+1),
			Section:      models.SectionFullReport,
			Content:      "Spirits volume growth softened across the control states.",
		}
	}
	return recs
}

// anyCommentaryArgs matches the six commentary insert bind parameters without
// asserting their values; pgxmock requires an argument matcher per parameter.
func anyCommentaryArgs() []any {
	args := make([]any, 6)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestDeleteMonthClearsAllTables(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM nabca.sales_fact`).
		WithArgs(2025, 12).
		WillReturnResult(pgxmock.NewResult("DELETE", 208))
	mock.ExpectExec(`DELETE FROM nabca.brand_category_data`).
		WithArgs(2025, 12).
		WillReturnResult(pgxmock.NewResult("DELETE", 22))
	mock.ExpectExec(`DELETE FROM nabca.commentary`).
		WithArgs(2025, 12).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.DeleteMonth(context.Background(), 2025, 12))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMonthStopsOnError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`DELETE FROM nabca.sales_fact`).
		WithArgs(2025, 12).
		WillReturnError(errors.New("connection reset"))

	err := repo.DeleteMonth(context.Background(), 2025, 12)
	require.Error(t, err)
	require.Contains(t, err.Error(), "sales_fact")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSalesBindsNullableColumns(t *testing.T) {
	repo, mock := newMockRepo(t)

	state := "Alabama"
	rec := models.SalesRecord{
		Year:            2025,
		Month:           12,
		ReportDate:      "2025-12-01",
		ReportType:      models.ReportMonthly,
		TableSource:     models.SourceSpiritsMarkets,
		Channel:         models.ChannelTotal,
		ProductType:     models.ProductSpirits,
		GeographyType:   models.GeoState,
		StateName:       &state,
		Volume9L:        models.Int(81422),
		VolumePctChange: models.Float(-1.9),
		DollarSales:     models.Int(1200000),
		// DollarPctChange stays nil, must bind as SQL NULL.
	}

	batch := mock.ExpectBatch()
	batch.ExpectExec(`INSERT INTO nabca.sales_fact`).
		WithArgs(2025, 12, "2025-12-01", models.ReportMonthly, models.SourceSpiritsMarkets,
			models.ChannelTotal, models.ProductSpirits, models.GeoState, &state,
			int64(81422), -1.9, int64(1200000), nil).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	uploaded, failed, err := repo.InsertSales(context.Background(), []models.SalesRecord{rec})
	require.NoError(t, err)
	require.Equal(t, 1, uploaded)
	require.Equal(t, 0, failed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertCommentarySplitsBatches(t *testing.T) {
	repo, mock := newMockRepo(t)
	repo.commentaryBatchSize = 2

	for _, size := range []int{2, 2, 1} {
		batch := mock.ExpectBatch()
		for i := 0; i < size; i++ {
			batch.ExpectExec(`INSERT INTO nabca.commentary`).
				WithArgs(anyCommentaryArgs()...).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
	}

	uploaded, failed, err := repo.InsertCommentary(context.Background(), commentaryRecords(5))
	require.NoError(t, err)
	require.Equal(t, 5, uploaded)
	require.Equal(t, 0, failed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertCommentaryCountsFailedBatch(t *testing.T) {
	repo, mock := newMockRepo(t)
	repo.commentaryBatchSize = 1

	failing := mock.ExpectBatch()
	failing.ExpectExec(`INSERT INTO nabca.commentary`).
		WithArgs(anyCommentaryArgs()...).
		WillReturnError(errors.New("value too long"))
	for i := 0; i < 2; i++ {
		batch := mock.ExpectBatch()
		batch.ExpectExec(`INSERT INTO nabca.commentary`).
			WithArgs(anyCommentaryArgs()...).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
	}

	uploaded, failed, err := repo.InsertCommentary(context.Background(), commentaryRecords(3))
	require.Error(t, err)
	require.Equal(t, 2, uploaded)
	require.Equal(t, 1, failed)
	require.NoError(t, mock.ExpectationsWereMet())
}
