package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/visita360-api/infrastructure/database/postgres"
)

const stateTable = "app_state"

// StateRepository guarda blobs JSON sob chaves fixas (cache de geocodificação,
// configurações locais)
type StateRepository interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

type stateRepository struct {
	conn *postgres.Connection
}

func NewStateRepository(conn *postgres.Connection) StateRepository {
	return &stateRepository{
		conn: conn,
	}
}

// Get retorna nil, nil quando a chave não existe
func (r *stateRepository) Get(key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("s.value").
		From(stateTable + " s").
		Where(squirrel.Eq{"s.key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	var value []byte
	if err := r.conn.QueryRow(query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "erro ao ler estado %s", key)
	}

	return value, nil
}

func (r *stateRepository) Put(key string, value []byte) error {
	query, args, err := squirrel.
		Insert(stateTable).
		Columns("key", "value").
		Values(key, string(value)).
		Suffix(`
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = CURRENT_TIMESTAMP
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de upsert")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrapf(err, "erro ao gravar estado %s", key)
	}

	return nil
}

func (r *stateRepository) Delete(key string) error {
	query, args, err := squirrel.
		Delete(stateTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir query de exclusão")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrapf(err, "erro ao excluir estado %s", key)
	}

	return nil
}
