// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/visita360-api/infrastructure/database/postgres"
	"github.com/vfg2006/visita360-api/internal/domain"
)

const (
	visitsTable    = "visitas"
	visitsTableAs  = "visitas v"
	followUpsTable = "followups"
)

// ErrNotFound é retornado quando uma atualização ou exclusão não encontra o registro
var ErrNotFound = errors.New("registro não encontrado")

var visitColumns = []string{
	"v.id",
	"to_char(v.data, 'YYYY-MM-DD')",
	"v.endereco",
	"v.lat",
	"v.lng",
	"v.empresa",
	"v.segmento",
	"v.responsavel",
	"v.estagio",
	"v.concorrencia",
	"v.classificacao",
	"v.contato",
	"v.obs",
	"v.fotos",
	"v.vendedor",
	"v.created_at",
	"v.updated_at",
}

type VisitRepository interface {
	ListVisits() ([]*domain.Visit, error)
	GetVisitByID(id int64) (*domain.Visit, error)
	CreateVisit(visit *domain.Visit) (int64, error)
	UpdateVisit(req *domain.UpdateVisitRequest) error
	DeleteVisit(id int64) error
	ResetAll() error
}

type visitRepository struct {
	conn *postgres.Connection
}

func NewVisitRepository(conn *postgres.Connection) VisitRepository {
	return &visitRepository{
		conn: conn,
	}
}

func (r *visitRepository) ListVisits() ([]*domain.Visit, error) {
	query, args, err := squirrel.
		Select(visitColumns...).
		From(visitsTableAs).
		OrderBy("v.created_at DESC", "v.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar visitas")
	}
	defer rows.Close()

	visits := make([]*domain.Visit, 0)
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao escanear visita")
		}
		visits = append(visits, visit)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante a iteração de linhas")
	}

	return visits, nil
}

func (r *visitRepository) GetVisitByID(id int64) (*domain.Visit, error) {
	query, args, err := squirrel.
		Select(visitColumns...).
		From(visitsTableAs).
		Where(squirrel.Eq{"v.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	visit, err := scanVisit(r.conn.QueryRow(query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao buscar visita %d", id)
	}

	return visit, nil
}

func (r *visitRepository) CreateVisit(visit *domain.Visit) (int64, error) {
	query, args, err := buildInsertVisitQuery(visit)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir query de inserção")
	}

	var id int64
	if err := r.conn.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, errors.Wrap(err, "erro ao inserir visita")
	}

	return id, nil
}

func (r *visitRepository) UpdateVisit(req *domain.UpdateVisitRequest) error {
	query, args, err := buildUpdateVisitQuery(req)
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de atualização")
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return errors.Wrapf(err, "erro ao atualizar visita %d", req.ID)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "erro ao verificar linhas atualizadas")
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteVisit exclui a visita e seus follow-ups na mesma transação
func (r *visitRepository) DeleteVisit(id int64) error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		followUpsSQL, followUpsArgs, err := squirrel.
			Delete(followUpsTable).
			Where(squirrel.Eq{"visita_id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir exclusão de follow-ups")
		}

		if _, err := tx.Exec(followUpsSQL, followUpsArgs...); err != nil {
			return errors.Wrapf(err, "erro ao excluir follow-ups da visita %d", id)
		}

		visitSQL, visitArgs, err := squirrel.
			Delete(visitsTable).
			Where(squirrel.Eq{"id": id}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir exclusão de visita")
		}

		result, err := tx.Exec(visitSQL, visitArgs...)
		if err != nil {
			return errors.Wrapf(err, "erro ao excluir visita %d", id)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "erro ao verificar linhas excluídas")
		}
		if affected == 0 {
			return ErrNotFound
		}

		return nil
	})
}

// ResetAll apaga todos os follow-ups e visitas (uso em desenvolvimento)
func (r *visitRepository) ResetAll() error {
	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM " + followUpsTable); err != nil {
			return errors.Wrap(err, "erro ao apagar follow-ups")
		}
		if _, err := tx.Exec("DELETE FROM " + visitsTable); err != nil {
			return errors.Wrap(err, "erro ao apagar visitas")
		}
		return nil
	})
}

func buildInsertVisitQuery(visit *domain.Visit) (string, []interface{}, error) {
	photos := visit.Photos
	if photos == nil {
		photos = []string{}
	}

	return squirrel.
		Insert(visitsTable).
		Columns(
			"data",
			"endereco",
			"lat",
			"lng",
			"empresa",
			"segmento",
			"responsavel",
			"estagio",
			"concorrencia",
			"classificacao",
			"contato",
			"obs",
			"fotos",
			"vendedor",
		).
		Values(
			visit.Date,
			visit.Address,
			visit.Lat,
			visit.Lng,
			visit.Company,
			string(visit.Segment),
			string(visit.Responsible),
			string(visit.Stage),
			visit.Competition,
			string(visit.Classification),
			visit.Contact,
			visit.Observation,
			pq.Array(photos),
			visit.Salesperson,
		).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildUpdateVisitQuery monta a atualização parcial apenas com os campos informados
func buildUpdateVisitQuery(req *domain.UpdateVisitRequest) (string, []interface{}, error) {
	if req.ID == 0 {
		return "", nil, errors.New("ID is required")
	}

	fields := map[string]interface{}{}
	if req.Date != nil {
		fields["data"] = *req.Date
	}
	if req.Address != nil {
		fields["endereco"] = *req.Address
	}
	if req.Lat != nil {
		fields["lat"] = *req.Lat
	}
	if req.Lng != nil {
		fields["lng"] = *req.Lng
	}
	if req.Company != nil {
		fields["empresa"] = *req.Company
	}
	if req.Segment != nil {
		fields["segmento"] = string(*req.Segment)
	}
	if req.Responsible != nil {
		fields["responsavel"] = string(*req.Responsible)
	}
	if req.Stage != nil {
		fields["estagio"] = string(*req.Stage)
	}
	if req.Competition != nil {
		fields["concorrencia"] = *req.Competition
	}
	if req.Classification != nil {
		fields["classificacao"] = string(*req.Classification)
	}
	if req.Contact != nil {
		fields["contato"] = *req.Contact
	}
	if req.Observation != nil {
		fields["obs"] = *req.Observation
	}
	if req.Photos != nil {
		fields["fotos"] = pq.Array(req.Photos)
	}
	if req.Salesperson != nil {
		fields["vendedor"] = *req.Salesperson
	}

	if len(fields) == 0 {
		return "", nil, errors.New("nenhum campo para atualizar")
	}

	return squirrel.
		Update(visitsTable).
		SetMap(fields).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": req.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVisit(row rowScanner) (*domain.Visit, error) {
	visit := &domain.Visit{}

	var (
		lat, lng             sql.NullFloat64
		createdAt, updatedAt sql.NullTime
		photos               []string
		segment              string
		responsible          string
		stage                string
		classification       string
	)

	if err := row.Scan(
		&visit.ID,
		&visit.Date,
		&visit.Address,
		&lat,
		&lng,
		&visit.Company,
		&segment,
		&responsible,
		&stage,
		&visit.Competition,
		&classification,
		&visit.Contact,
		&visit.Observation,
		pq.Array(&photos),
		&visit.Salesperson,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	visit.Segment = domain.Segment(segment)
	visit.Responsible = domain.Responsible(responsible)
	visit.Stage = domain.Stage(stage)
	visit.Classification = domain.Classification(classification)

	if lat.Valid {
		visit.Lat = &lat.Float64
	}
	if lng.Valid {
		visit.Lng = &lng.Float64
	}

	if photos == nil {
		photos = []string{}
	}
	visit.Photos = photos

	if createdAt.Valid {
		visit.CreatedAt = &createdAt.Time
	}
	if updatedAt.Valid {
		visit.UpdatedAt = &updatedAt.Time
	}

	return visit, nil
}
