package document_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"retailops/internal/core/id"
	"retailops/internal/domain"
	"retailops/internal/domain/documents/salesreturn"
	"retailops/internal/infrastructure/storage/postgres"
)

const (
	salesReturnsTable       = "doc_sales_returns"
	salesReturnLinesTable   = "doc_sales_return_lines"
	salesExchangeLinesTable = "doc_sales_return_exchange_lines"
)

// SalesReturnRepo implements salesreturn.Repository.
type SalesReturnRepo struct {
	*BaseDocumentRepo[*salesreturn.SalesReturn]
}

// NewSalesReturnRepo creates a new sales return repository.
func NewSalesReturnRepo(txManager *postgres.TxManager) *SalesReturnRepo {
	return &SalesReturnRepo{
		BaseDocumentRepo: NewBaseDocumentRepo[*salesreturn.SalesReturn](
			txManager,
			salesReturnsTable,
			postgres.ExtractDBColumns[salesreturn.SalesReturn](),
			func() *salesreturn.SalesReturn { return &salesreturn.SalesReturn{} },
		),
	}
}

// GetReturnedLines retrieves returned lines for a sales return.
func (r *SalesReturnRepo) GetReturnedLines(ctx context.Context, docID id.ID) ([]salesreturn.ReturnedLine, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "order_item_id", "product_id", "product_name",
			"original_quantity", "return_quantity", "rate", "amount",
		).
		From(salesReturnLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []salesreturn.ReturnedLine
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get returned lines: %w", err)
	}

	return lines, nil
}

// GetExchangeLines retrieves exchange lines for a sales return.
func (r *SalesReturnRepo) GetExchangeLines(ctx context.Context, docID id.ID) ([]salesreturn.ExchangeLine, error) {
	q := r.Builder().
		Select(
			"line_id", "line_no", "product_id", "stock_id", "product_name",
			"quantity", "rate", "amount", "is_wholesale", "serial_numbers", "warranty_id",
		).
		From(salesExchangeLinesTable).
		Where(squirrel.Eq{"document_id": docID}).
		OrderBy("line_no")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var lines []salesreturn.ExchangeLine
	querier := r.txManager.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &lines, sql, args...); err != nil {
		return nil, fmt.Errorf("get exchange lines: %w", err)
	}

	return lines, nil
}

// SaveLines replaces both line tables for a sales return.
func (r *SalesReturnRepo) SaveLines(ctx context.Context, docID id.ID, returned []salesreturn.ReturnedLine, exchanged []salesreturn.ExchangeLine) error {
	querier := r.txManager.GetQuerier(ctx)

	for _, table := range []string{salesReturnLinesTable, salesExchangeLinesTable} {
		deleteSQL := "DELETE FROM " + table + " WHERE document_id = $1"
		if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
			return fmt.Errorf("delete existing lines from %s: %w", table, err)
		}
	}

	if len(returned) > 0 {
		q := r.Builder().
			Insert(salesReturnLinesTable).
			Columns(
				"line_id", "document_id", "line_no", "order_item_id", "product_id", "product_name",
				"original_quantity", "return_quantity", "rate", "amount",
			)

		for _, line := range returned {
			q = q.Values(
				line.LineID, docID, line.LineNo, line.OrderItemID, line.ProductID, line.ProductName,
				line.OriginalQuantity, line.ReturnQuantity, line.Rate, line.Amount,
			)
		}

		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build insert returned lines: %w", err)
		}

		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert returned lines: %w", err)
		}
	}

	if len(exchanged) > 0 {
		q := r.Builder().
			Insert(salesExchangeLinesTable).
			Columns(
				"line_id", "document_id", "line_no", "product_id", "stock_id", "product_name",
				"quantity", "rate", "amount", "is_wholesale", "serial_numbers", "warranty_id",
			)

		for _, line := range exchanged {
			q = q.Values(
				line.LineID, docID, line.LineNo, line.ProductID, line.StockID, line.ProductName,
				line.Quantity, line.Rate, line.Amount, line.IsWholesale, line.SerialNumbers, line.WarrantyID,
			)
		}

		sql, args, err := q.ToSql()
		if err != nil {
			return fmt.Errorf("build insert exchange lines: %w", err)
		}

		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert exchange lines: %w", err)
		}
	}

	return nil
}

// List retrieves sales returns with filtering.
func (r *SalesReturnRepo) List(ctx context.Context, filter salesreturn.ListFilter) (domain.ListResult[*salesreturn.SalesReturn], error) {
	result := domain.ListResult[*salesreturn.SalesReturn]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.baseSelect()

	if !filter.IncludeDeleted {
		q = q.Where(squirrel.Eq{"deletion_mark": false})
	}

	if filter.StoreID != nil {
		q = q.Where(squirrel.Eq{"store_id": *filter.StoreID})
	}

	if filter.OrderID != nil {
		q = q.Where(squirrel.Eq{"order_id": *filter.OrderID})
	}

	if filter.ReasonID != nil {
		q = q.Where(squirrel.Eq{"return_reason_id": *filter.ReasonID})
	}

	if filter.DateFrom != nil {
		q = q.Where(squirrel.GtOrEq{"date": *filter.DateFrom})
	}

	if filter.DateTo != nil {
		q = q.Where(squirrel.LtOrEq{"date": *filter.DateTo})
	}

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"number": searchPattern},
			squirrel.ILike{"order_number": searchPattern},
		})
	}

	countQ := r.Builder().Select("COUNT(*)").FromSelect(q, "sub")
	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.txManager.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count: %w", err)
	}

	orderBy, err := r.parseOrderBy(filter.OrderBy)
	if err != nil {
		return result, err
	}
	q = q.OrderBy(orderBy)

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	if err := pgxscan.Select(ctx, querier, &result.Items, sql, args...); err != nil {
		return result, fmt.Errorf("select: %w", err)
	}

	return result, nil
}
