package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/visita360-api/infrastructure/database/postgres"
	"github.com/vfg2006/visita360-api/internal/domain"
)

const followUpsTableAs = "followups f"

type FollowUpRepository interface {
	ListFollowUps() ([]*domain.FollowUp, error)
	ListFollowUpsByVisitID(visitID int64) ([]*domain.FollowUp, error)
	CreateFollowUp(followUp *domain.FollowUp) (int64, error)
}

type followUpRepository struct {
	conn *postgres.Connection
}

func NewFollowUpRepository(conn *postgres.Connection) FollowUpRepository {
	return &followUpRepository{
		conn: conn,
	}
}

// ListFollowUps retorna os follow-ups em ordem de data e, dentro da mesma
// data, em ordem de cadastro
func (r *followUpRepository) ListFollowUps() ([]*domain.FollowUp, error) {
	return r.list(nil)
}

func (r *followUpRepository) ListFollowUpsByVisitID(visitID int64) ([]*domain.FollowUp, error) {
	return r.list(squirrel.Eq{"f.visita_id": visitID})
}

func (r *followUpRepository) list(filter squirrel.Sqlizer) ([]*domain.FollowUp, error) {
	builder := squirrel.
		Select(
			"f.id",
			"f.visita_id",
			"to_char(f.data, 'YYYY-MM-DD')",
			"f.status",
			"f.valor",
			"f.motivo_perda",
			"f.created_at",
			"f.updated_at",
		).
		From(followUpsTableAs).
		OrderBy("f.data ASC", "f.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar follow-ups")
	}
	defer rows.Close()

	followUps := make([]*domain.FollowUp, 0)
	for rows.Next() {
		followUp, err := scanFollowUp(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear follow-up")
		}
		followUps = append(followUps, followUp)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return followUps, nil
}

func (r *followUpRepository) CreateFollowUp(followUp *domain.FollowUp) (int64, error) {
	var lossReason *string
	if followUp.LossReason != nil {
		value := string(*followUp.LossReason)
		lossReason = &value
	}

	query, args, err := squirrel.
		Insert(followUpsTable).
		Columns("visita_id", "data", "status", "valor", "motivo_perda").
		Values(followUp.VisitID, followUp.Date, string(followUp.Status), followUp.Value, lossReason).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir query de inserção")
	}

	var id int64
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, errors.Wrapf(err, "erro ao inserir follow-up da visita %d", followUp.VisitID)
	}

	return id, nil
}

func scanFollowUp(row rowScanner) (*domain.FollowUp, error) {
	followUp := &domain.FollowUp{}

	var (
		status               string
		value                sql.NullFloat64
		lossReason           sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	if err := row.Scan(
		&followUp.ID,
		&followUp.VisitID,
		&followUp.Date,
		&status,
		&value,
		&lossReason,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	followUp.Status = domain.FollowUpStatus(status)

	if value.Valid {
		followUp.Value = &value.Float64
	}
	if lossReason.Valid && lossReason.String != "" {
		reason := domain.LossReason(lossReason.String)
		followUp.LossReason = &reason
	}
	if createdAt.Valid {
		followUp.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		followUp.UpdatedAt = &updatedAt.Time
	}

	return followUp, nil
}
