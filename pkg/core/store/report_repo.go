package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"controlstates/pkg/models"
)

// DB is the slice of the pgx pool the repository needs. pgxpool.Pool
// satisfies it, and so does a pgxmock pool in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Default batch sizes, matching the upload layer's historical behavior.
const (
	DefaultRecordBatchSize     = 100
	DefaultCommentaryBatchSize = 50
)

// ReportRepo uploads extracted records into the reporting schema. A month is
// always cleared before re-insert so repeated runs never accumulate
// duplicates.
type ReportRepo struct {
	db                  DB
	schema              string
	recordBatchSize     int
	commentaryBatchSize int
}

// NewReportRepo creates a repository writing into the given schema
// ("nabca" in production).
func NewReportRepo(db DB, schema string) *ReportRepo {
	return &ReportRepo{
		db:                  db,
		schema:              schema,
		recordBatchSize:     DefaultRecordBatchSize,
		commentaryBatchSize: DefaultCommentaryBatchSize,
	}
}

// reportTables are the three destination tables, cleared together per month.
var reportTables = []string{"sales_fact", "brand_category_data", "commentary"}

// DeleteMonth removes all previously uploaded records for one report month.
func (r *ReportRepo) DeleteMonth(ctx context.Context, year, month int) error {
	for _, table := range reportTables {
		query := fmt.Sprintf(`DELETE FROM %s.%s WHERE year = $1 AND month = $2`, r.schema, table)
		if _, err := r.db.Exec(ctx, query, year, month); err != nil {
			return fmt.Errorf("clear %s for %d-%02d: %w", table, year, month, err)
		}
	}
	return nil
}

// InsertSales uploads sales records in batches. A failed batch counts all of
// its records as failed and the upload continues with the next batch.
func (r *ReportRepo) InsertSales(ctx context.Context, recs []models.SalesRecord) (uploaded, failed int, err error) {
	query := fmt.Sprintf(`INSERT INTO %s.sales_fact
		(year, month, report_date, report_type, table_source, channel, product_type,
		 geography_type, state_name, volume_9l, volume_pct_change, dollar_sales, dollar_pct_change)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, r.schema)

	for start := 0; start < len(recs); start += r.recordBatchSize {
		end := min(start+r.recordBatchSize, len(recs))
		chunk := recs[start:end]

		batch := &pgx.Batch{}
		for _, rec := range chunk {
			batch.Queue(query,
				rec.Year, rec.Month, rec.ReportDate, rec.ReportType, rec.TableSource,
				rec.Channel, rec.ProductType, rec.GeographyType, rec.StateName,
				rec.Volume9L.Arg(), rec.VolumePctChange.Arg(), rec.DollarSales.Arg(), rec.DollarPctChange.Arg())
		}
		if batchErr := r.sendBatch(ctx, batch); batchErr != nil {
			failed += len(chunk)
			err = batchErr
			continue
		}
		uploaded += len(chunk)
	}
	return uploaded, failed, err
}

// InsertCategories uploads category records in batches.
func (r *ReportRepo) InsertCategories(ctx context.Context, recs []models.CategoryRecord) (uploaded, failed int, err error) {
	query := fmt.Sprintf(`INSERT INTO %s.brand_category_data
		(year, month, report_date, report_type, table_source, channel, product_type,
		 category, volume_9l, volume_pct_change, dollar_sales, dollar_pct_change, price_mix)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`, r.schema)

	for start := 0; start < len(recs); start += r.recordBatchSize {
		end := min(start+r.recordBatchSize, len(recs))
		chunk := recs[start:end]

		batch := &pgx.Batch{}
		for _, rec := range chunk {
			batch.Queue(query,
				rec.Year, rec.Month, rec.ReportDate, rec.ReportType, rec.TableSource,
				rec.Channel, rec.ProductType, rec.Category,
				rec.Volume9L.Arg(), rec.VolumePctChange.Arg(), rec.DollarSales.Arg(), rec.DollarPctChange.Arg(),
				rec.PriceMix.Arg())
		}
		if batchErr := r.sendBatch(ctx, batch); batchErr != nil {
			failed += len(chunk)
			err = batchErr
			continue
		}
		uploaded += len(chunk)
	}
	return uploaded, failed, err
}

// InsertCommentary uploads commentary records in (smaller) batches; the
// content column is large.
func (r *ReportRepo) InsertCommentary(ctx context.Context, recs []models.CommentaryRecord) (uploaded, failed int, err error) {
	query := fmt.Sprintf(`INSERT INTO %s.commentary
		(commentary_id, year, month, report_date, section, content)
		VALUES ($1, $2, $3, $4, $5, $6)`, r.schema)

	for start := 0; start < len(recs); start += r.commentaryBatchSize {
		end := min(start+r.commentaryBatchSize, len(recs))
		chunk := recs[start:end]

		batch := &pgx.Batch{}
		for _, rec := range chunk {
			batch.Queue(query, rec.CommentaryID, rec.Year, rec.Month, rec.ReportDate, rec.Section, rec.Content)
		}
		if batchErr := r.sendBatch(ctx, batch); batchErr != nil {
			failed += len(chunk)
			err = batchErr
			continue
		}
		uploaded += len(chunk)
	}
	return uploaded, failed, err
}

func (r *ReportRepo) sendBatch(ctx context.Context, batch *pgx.Batch) error {
	results := r.db.SendBatch(ctx, batch)
	defer results.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("batch insert: %w", err)
		}
	}
	return nil
}
