package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ar_statements/internal/apperrors"
	"github.com/SscSPs/ar_statements/internal/core/domain"
	portsrepo "github.com/SscSPs/ar_statements/internal/core/ports/repositories"
	"github.com/SscSPs/ar_statements/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const partnerColumns = `id, name, email, statement_email, statement_email_cc,
	parent_id, commercial_partner_id, company_id`

type PgxPartnerRepository struct {
	BaseRepository
}

func newPgxPartnerRepository(pool *pgxpool.Pool) *PgxPartnerRepository {
	return &PgxPartnerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PartnerRepositoryFacade = (*PgxPartnerRepository)(nil)

func (r *PgxPartnerRepository) FindPartnerByID(ctx context.Context, partnerID int64) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM res_partner WHERE id = $1;`

	rows, err := r.DB(ctx).Query(ctx, query, partnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query partner %d: %w", partnerID, err)
	}
	modelPartner, err := pgx.CollectExactlyOneRow(rows, scanPartner)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("partner %d", partnerID))
		}
		return nil, fmt.Errorf("failed to find partner %d: %w", partnerID, err)
	}

	p := modelPartner.ToDomain()
	return &p, nil
}

func (r *PgxPartnerRepository) FindPartnersByIDs(ctx context.Context, partnerIDs []int64) ([]domain.Partner, error) {
	if len(partnerIDs) == 0 {
		return []domain.Partner{}, nil
	}
	query := `SELECT ` + partnerColumns + ` FROM res_partner WHERE id = ANY($1) ORDER BY name, id;`

	rows, err := r.DB(ctx).Query(ctx, query, partnerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	modelPartners, err := pgx.CollectRows(rows, scanPartner)
	if err != nil {
		return nil, fmt.Errorf("failed to scan partners: %w", err)
	}

	partners := make([]domain.Partner, len(modelPartners))
	for i, p := range modelPartners {
		partners[i] = p.ToDomain()
	}
	return partners, nil
}

func (r *PgxPartnerRepository) UpdateStatementEmails(ctx context.Context, partnerID int64, email, emailCC string) error {
	query := `UPDATE res_partner SET statement_email = $1, statement_email_cc = $2 WHERE id = $3;`

	tag, err := r.DB(ctx).Exec(ctx, query, models.NullableString(email), models.NullableString(emailCC), partnerID)
	if err != nil {
		return fmt.Errorf("failed to update statement emails of partner %d: %w", partnerID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("partner %d", partnerID))
	}
	return nil
}

func scanPartner(row pgx.CollectableRow) (models.Partner, error) {
	var p models.Partner
	err := row.Scan(
		&p.ID, &p.Name, &p.Email, &p.StatementEmail, &p.StatementEmailCC,
		&p.ParentID, &p.CommercialPartnerID, &p.CompanyID,
	)
	return p, err
}
