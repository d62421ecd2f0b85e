// Package report_repo provides PostgreSQL implementations for report repositories.
package report_repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/shopspring/decimal"

	"retailops/internal/domain/reports"
	"retailops/internal/infrastructure/storage/postgres"
)

// ReportRepo implements reports.Repository.
type ReportRepo struct {
	txManager *postgres.TxManager
	builder   squirrel.StatementBuilderType
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txManager *postgres.TxManager) *ReportRepo {
	return &ReportRepo{
		txManager: txManager,
		builder:   squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func orderClause(sortBy, sortOrder string, allowed map[string]string, fallback string) string {
	col, ok := allowed[sortBy]
	if !ok {
		col = fallback
	}
	dir := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		dir = "ASC"
	}
	return col + " " + dir
}

// GetPurchaseJournal returns the purchase order journal.
func (r *ReportRepo) GetPurchaseJournal(ctx context.Context, filter reports.PurchaseJournalFilter) (*reports.PurchaseJournal, error) {
	q := r.builder.
		Select(
			"d.id AS document_id",
			"d.number",
			"d.date",
			"d.store_id",
			"s.name AS store_name",
			"d.supplier_name",
			"d.status",
			"d.payment_status",
			"d.grand_total",
			"d.amount_due",
			"(SELECT COUNT(*) FROM doc_purchase_order_lines l WHERE l.document_id = d.id) AS line_count",
		).
		From("doc_purchase_orders d").
		Join("cat_stores s ON s.id = d.store_id").
		Where(squirrel.Eq{"d.deletion_mark": false})

	q = applyPurchaseJournalFilters(q, filter)

	// Totals over the filtered set, before pagination
	totalsQ := r.builder.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(d.grand_total), 0)",
			"COALESCE(SUM(d.amount_due), 0)",
		).
		From("doc_purchase_orders d").
		Where(squirrel.Eq{"d.deletion_mark": false})
	totalsQ = applyPurchaseJournalFilters(totalsQ, filter)

	totalsSQL, totalsArgs, err := totalsQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build totals query: %w", err)
	}

	journal := &reports.PurchaseJournal{
		TotalValue: decimal.Zero,
		TotalDue:   decimal.Zero,
	}

	querier := r.txManager.GetQuerier(ctx)
	err = querier.QueryRow(ctx, totalsSQL, totalsArgs...).
		Scan(&journal.TotalRows, &journal.TotalValue, &journal.TotalDue)
	if err != nil {
		return nil, fmt.Errorf("purchase journal totals: %w", err)
	}

	allowed := map[string]string{
		"date":        "d.date",
		"number":      "d.number",
		"grand_total": "d.grand_total",
	}
	q = q.OrderBy(orderClause(filter.SortBy, filter.SortOrder, allowed, "d.date"))

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &journal.Rows, sql, args...); err != nil {
		return nil, fmt.Errorf("purchase journal: %w", err)
	}

	return journal, nil
}

func applyPurchaseJournalFilters(q squirrel.SelectBuilder, filter reports.PurchaseJournalFilter) squirrel.SelectBuilder {
	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"d.date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"d.date": *filter.ToDate})
	}
	if len(filter.StoreIDs) > 0 {
		q = q.Where(squirrel.Eq{"d.store_id": filter.StoreIDs})
	}
	if len(filter.SupplierIDs) > 0 {
		q = q.Where(squirrel.Eq{"d.supplier_id": filter.SupplierIDs})
	}
	if len(filter.Statuses) > 0 {
		q = q.Where(squirrel.Eq{"d.status": filter.Statuses})
	}
	return q
}

// GetReturnsJournal returns the sales return journal.
func (r *ReportRepo) GetReturnsJournal(ctx context.Context, filter reports.ReturnsJournalFilter) (*reports.ReturnsJournal, error) {
	q := r.builder.
		Select(
			"d.id AS document_id",
			"d.number",
			"d.date",
			"d.store_id",
			"s.name AS store_name",
			"d.order_number",
			"d.return_reason_id AS reason_id",
			"d.return_total",
			"d.exchange_total",
			"d.refund_total",
		).
		From("doc_sales_returns d").
		Join("cat_stores s ON s.id = d.store_id").
		Where(squirrel.Eq{"d.deletion_mark": false})

	q = applyReturnsJournalFilters(q, filter)

	totalsQ := r.builder.
		Select(
			"COUNT(*)",
			"COALESCE(SUM(d.refund_total), 0)",
		).
		From("doc_sales_returns d").
		Where(squirrel.Eq{"d.deletion_mark": false})
	totalsQ = applyReturnsJournalFilters(totalsQ, filter)

	totalsSQL, totalsArgs, err := totalsQ.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build totals query: %w", err)
	}

	journal := &reports.ReturnsJournal{
		TotalRefund: decimal.Zero,
	}

	querier := r.txManager.GetQuerier(ctx)
	err = querier.QueryRow(ctx, totalsSQL, totalsArgs...).
		Scan(&journal.TotalRows, &journal.TotalRefund)
	if err != nil {
		return nil, fmt.Errorf("returns journal totals: %w", err)
	}

	allowed := map[string]string{
		"date":         "d.date",
		"number":       "d.number",
		"refund_total": "d.refund_total",
	}
	q = q.OrderBy(orderClause(filter.SortBy, filter.SortOrder, allowed, "d.date"))

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &journal.Rows, sql, args...); err != nil {
		return nil, fmt.Errorf("returns journal: %w", err)
	}

	return journal, nil
}

func applyReturnsJournalFilters(q squirrel.SelectBuilder, filter reports.ReturnsJournalFilter) squirrel.SelectBuilder {
	if filter.FromDate != nil {
		q = q.Where(squirrel.GtOrEq{"d.date": *filter.FromDate})
	}
	if filter.ToDate != nil {
		q = q.Where(squirrel.LtOrEq{"d.date": *filter.ToDate})
	}
	if len(filter.StoreIDs) > 0 {
		q = q.Where(squirrel.Eq{"d.store_id": filter.StoreIDs})
	}
	if len(filter.ReasonIDs) > 0 {
		q = q.Where(squirrel.Eq{"d.return_reason_id": filter.ReasonIDs})
	}
	return q
}

// GetStockBalance computes stock on hand per store and product from document
// movements: received purchase lines and returned goods add to stock, goods
// handed out in exchange subtract from it.
func (r *ReportRepo) GetStockBalance(ctx context.Context, filter reports.StockBalanceFilter) (*reports.StockBalanceReport, error) {
	asOfDate := time.Now()
	if filter.AsOfDate != nil {
		asOfDate = *filter.AsOfDate
	}

	query := `
		WITH movements AS (
			SELECT d.store_id, l.product_id, l.quantity_received AS quantity
			FROM doc_purchase_order_lines l
			JOIN doc_purchase_orders d ON d.id = l.document_id
			WHERE d.deletion_mark = false AND d.date <= $1

			UNION ALL

			SELECT d.store_id, l.product_id, l.return_quantity
			FROM doc_sales_return_lines l
			JOIN doc_sales_returns d ON d.id = l.document_id
			WHERE d.deletion_mark = false AND d.date <= $1

			UNION ALL

			SELECT d.store_id, l.product_id, -l.quantity
			FROM doc_sales_return_exchange_lines l
			JOIN doc_sales_returns d ON d.id = l.document_id
			WHERE d.deletion_mark = false AND d.date <= $1
		),
		balance_data AS (
			SELECT store_id, product_id, SUM(quantity) AS quantity
			FROM movements
			GROUP BY store_id, product_id
	`
	args := []any{asOfDate}
	argIndex := 2

	if len(filter.StoreIDs) > 0 {
		placeholders := make([]string, len(filter.StoreIDs))
		for i, storeID := range filter.StoreIDs {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, storeID)
			argIndex++
		}
		query = strings.Replace(query, "FROM movements",
			fmt.Sprintf("FROM movements WHERE store_id IN (%s)", strings.Join(placeholders, ",")), 1)
	}

	if filter.ExcludeZero {
		query += " HAVING SUM(quantity) != 0"
	}

	query += `
		)
		SELECT
			bd.store_id,
			s.name AS store_name,
			bd.product_id,
			p.name AS product_name,
			COALESCE(p.sku, '') AS product_sku,
			COALESCE(p.unit_name, '') AS unit_name,
			bd.quantity,
			ROUND(bd.quantity * p.purchase_price, 2) AS total_cost
		FROM balance_data bd
		JOIN cat_stores s ON bd.store_id = s.id
		JOIN cat_products p ON bd.product_id = p.id
	`

	if len(filter.ProductIDs) > 0 {
		placeholders := make([]string, len(filter.ProductIDs))
		for i, pID := range filter.ProductIDs {
			placeholders[i] = fmt.Sprintf("$%d", argIndex)
			args = append(args, pID)
			argIndex++
		}
		query += fmt.Sprintf(" WHERE bd.product_id IN (%s)", strings.Join(placeholders, ","))
	}

	query += " ORDER BY s.name, p.name"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET %d", filter.Offset)
	}

	var rows []reports.StockBalanceRow
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("stock balance report: %w", err)
	}

	totalValue := decimal.Zero
	for _, row := range rows {
		totalValue = totalValue.Add(row.TotalCost)
	}

	return &reports.StockBalanceReport{
		AsOfDate:   asOfDate,
		Rows:       rows,
		TotalRows:  len(rows),
		TotalValue: totalValue,
	}, nil
}
