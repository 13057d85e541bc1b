package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ar_statements/internal/middleware"
	"github.com/SscSPs/ar_statements/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// moveColumns maps filterable fields to their SQL columns.
var moveColumns = map[string]string{
	domain.FieldState:       "m.state",
	domain.FieldMoveType:    "m.move_type",
	domain.FieldCompanyID:   "m.company_id",
	domain.FieldJournalID:   "m.journal_id",
	domain.FieldPartnerID:   "m.partner_id",
	domain.FieldInvoiceDate: "m.invoice_date",
}

const (
	storedResidualExpr = "m.amount_residual"
	// Unreconciled receivable items, in company currency.
	ledgerResidualExpr = `COALESCE((
		SELECT SUM(l.amount_residual)
		FROM account_move_line l
		WHERE l.move_id = m.id AND l.account_type = 'asset_receivable' AND NOT l.reconciled
	), 0)`
	// The same items in the document currency. NULL unless every item is
	// booked in the move's currency.
	ledgerResidualCurrencyExpr = `(
		SELECT CASE WHEN COUNT(*) > 0 AND COUNT(*) = COUNT(*) FILTER (WHERE l.currency_id = m.currency_id)
			THEN SUM(l.amount_residual_currency) END
		FROM account_move_line l
		WHERE l.move_id = m.id AND l.account_type = 'asset_receivable' AND NOT l.reconciled
	)`

	partnerTreeSQL = `m.partner_id IN (
		WITH RECURSIVE partner_tree AS (
			SELECT p.id FROM res_partner p WHERE p.id = ?
			UNION ALL
			SELECT c.id FROM res_partner c JOIN partner_tree t ON c.parent_id = t.id
		)
		SELECT id FROM partner_tree
	)`
)

type PgxMoveRepository struct {
	BaseRepository
	rates portsrepo.ExchangeRateReader
	now   func() time.Time
}

func newPgxMoveRepository(pool *pgxpool.Pool, rates portsrepo.ExchangeRateReader) *PgxMoveRepository {
	return &PgxMoveRepository{
		BaseRepository: BaseRepository{Pool: pool},
		rates:          rates,
		now:            time.Now,
	}
}

var _ portsrepo.MoveRepositoryFacade = (*PgxMoveRepository)(nil)

func (r *PgxMoveRepository) FindMoves(ctx context.Context, query domain.MoveQuery) ([]domain.Move, error) {
	sqlStr, args, err := buildMovesQuery(query)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB(ctx).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query moves: %w", err)
	}
	defer rows.Close()

	modelMoves, err := pgx.CollectRows(rows, scanMove)
	if err != nil {
		return nil, fmt.Errorf("failed to scan moves: %w", err)
	}

	if query.ResidualSource == domain.ResidualLedger {
		return r.convertLedgerResiduals(ctx, modelMoves, query.Domain.Has(domain.FieldAmountResidual, domain.OpNotZero))
	}

	moves := make([]domain.Move, len(modelMoves))
	for i, m := range modelMoves {
		moves[i] = m.ToDomain()
	}
	return moves, nil
}

// convertLedgerResiduals expresses ledger residuals in the document
// currency, then applies the zero test in that currency. The items' own
// document-currency residual is used when available; otherwise the
// company-currency residual is converted at the latest rate.
func (r *PgxMoveRepository) convertLedgerResiduals(ctx context.Context, modelMoves []models.Move, dropZero bool) ([]domain.Move, error) {
	asOf := r.now()
	rates := map[string]decimal.Decimal{}
	moves := make([]domain.Move, 0, len(modelMoves))

	for _, mm := range modelMoves {
		mv := mm.ToDomain()
		if mm.AmountResidualCurrency.Valid {
			mv.AmountResidual = mv.Currency.Round(mm.AmountResidualCurrency.Decimal.Abs())
			if dropZero && mv.Currency.IsZero(mv.AmountResidual) {
				continue
			}
			moves = append(moves, mv)
			continue
		}

		residual := mm.AmountResidual.Abs()
		if mm.CompanyCurrency != mv.Currency.Name {
			pair := mm.CompanyCurrency + "/" + mv.Currency.Name
			rate, ok := rates[pair]
			if !ok {
				er, err := r.rates.FindExchangeRate(ctx, mm.CompanyCurrency, mv.Currency.Name, asOf)
				if err != nil {
					middleware.GetLoggerFromCtx(ctx).Error("Missing exchange rate for ledger residual",
						slog.String("pair", pair), slog.Int64("move_id", mv.ID))
					return nil, fmt.Errorf("failed to convert residual of move %d: %w", mv.ID, err)
				}
				rate = er.Rate
				rates[pair] = rate
			}
			residual = residual.Mul(rate)
		}
		mv.AmountResidual = mv.Currency.Round(residual)
		if dropZero && mv.Currency.IsZero(mv.AmountResidual) {
			continue
		}
		moves = append(moves, mv)
	}
	return moves, nil
}

// buildMovesQuery compiles a move query to SQL.
func buildMovesQuery(query domain.MoveQuery) (string, []any, error) {
	residualExpr, residualCurrencyExpr := storedResidualExpr, "NULL::numeric"
	switch query.ResidualSource {
	case domain.ResidualStored, "":
	case domain.ResidualLedger:
		residualExpr, residualCurrencyExpr = ledgerResidualExpr, ledgerResidualCurrencyExpr
	default:
		return "", nil, apperrors.NewValidationError(fmt.Sprintf("unknown residual source %q", query.ResidualSource))
	}

	b := psql.Select(
		"m.id", "m.name", "m.external_number", "m.partner_id", "p.name",
		"c.id", "c.name", "c.symbol", "c.position", "c.decimal_places", "c.rounding",
		"m.company_id", "cc.name", "m.journal_id", "m.move_type", "m.state",
		"m.invoice_date", "m.invoice_date_due", "m.amount_total",
		residualExpr+" AS residual",
		residualCurrencyExpr+" AS residual_currency",
	).
		From("account_move m").
		LeftJoin("res_partner p ON p.id = m.partner_id").
		Join("res_currency c ON c.id = m.currency_id").
		Join("res_company co ON co.id = m.company_id").
		Join("res_currency cc ON cc.id = co.currency_id").
		OrderBy("p.name NULLS FIRST", "c.name", "m.invoice_date NULLS FIRST", "m.id")

	for _, cond := range query.Domain {
		pred, err := compileCondition(cond, query.ResidualSource)
		if err != nil {
			return "", nil, err
		}
		if pred != nil {
			b = b.Where(pred)
		}
	}
	return b.ToSql()
}

// compileCondition returns nil for conditions evaluated after the query.
func compileCondition(cond domain.Condition, source domain.ResidualSource) (sq.Sqlizer, error) {
	if cond.Field == domain.FieldAmountResidual {
		if cond.Operator != domain.OpNotZero {
			return nil, unsupported(cond)
		}
		if source == domain.ResidualLedger {
			return nil, nil
		}
		return sq.Expr("ABS(" + storedResidualExpr + ") >= c.rounding / 2"), nil
	}

	col, ok := moveColumns[cond.Field]
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown filter field %q", cond.Field))
	}

	switch cond.Operator {
	case domain.OpEqual, domain.OpIn:
		return sq.Eq{col: cond.Value}, nil
	case domain.OpGreaterOrEqual:
		return sq.GtOrEq{col: cond.Value}, nil
	case domain.OpLessOrEqual:
		return sq.LtOrEq{col: cond.Value}, nil
	case domain.OpChildOf:
		if cond.Field != domain.FieldPartnerID {
			return nil, unsupported(cond)
		}
		return sq.Expr(partnerTreeSQL, cond.Value), nil
	}
	return nil, unsupported(cond)
}

func unsupported(cond domain.Condition) error {
	return apperrors.NewValidationError(fmt.Sprintf("operator %q is not supported on %q", cond.Operator, cond.Field))
}

func scanMove(row pgx.CollectableRow) (models.Move, error) {
	var m models.Move
	err := row.Scan(
		&m.ID, &m.Name, &m.ExternalNumber, &m.PartnerID, &m.PartnerName,
		&m.Currency.ID, &m.Currency.Name, &m.Currency.Symbol, &m.Currency.Position,
		&m.Currency.DecimalPlaces, &m.Currency.Rounding,
		&m.CompanyID, &m.CompanyCurrency, &m.JournalID, &m.MoveType, &m.State,
		&m.InvoiceDate, &m.InvoiceDateDue, &m.AmountTotal, &m.AmountResidual,
		&m.AmountResidualCurrency,
	)
	return m, err
}
