package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/visita360-api/infrastructure/database/postgres"
	"github.com/vfg2006/visita360-api/internal/config"
	"github.com/vfg2006/visita360-api/internal/domain"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS visitas (
		id            BIGSERIAL PRIMARY KEY,
		data          DATE NOT NULL,
		endereco      TEXT NOT NULL DEFAULT '',
		lat           DOUBLE PRECISION,
		lng           DOUBLE PRECISION,
		empresa       TEXT NOT NULL,
		segmento      TEXT NOT NULL,
		responsavel   TEXT NOT NULL,
		estagio       TEXT NOT NULL,
		concorrencia  TEXT NOT NULL DEFAULT '',
		classificacao TEXT NOT NULL,
		contato       TEXT NOT NULL DEFAULT '',
		obs           TEXT NOT NULL DEFAULT '',
		fotos         TEXT[] NOT NULL DEFAULT '{}',
		vendedor      TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS followups (
		id           BIGSERIAL PRIMARY KEY,
		visita_id    BIGINT NOT NULL REFERENCES visitas(id) ON DELETE CASCADE,
		data         DATE NOT NULL,
		status       TEXT NOT NULL,
		valor        NUMERIC(14, 2) NOT NULL DEFAULT 0,
		motivo_perda TEXT,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_followups_visita_id ON followups (visita_id, data, id)`,
	`CREATE TABLE IF NOT EXISTS app_state (
		key        TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

type seedVisit struct {
	Date           string
	Address        string
	Lat, Lng       float64
	Company        string
	Segment        string
	Responsible    string
	Stage          string
	Competition    string
	Classification string
	Contact        string
	Observation    string
	FollowUps      []seedFollowUp
}

type seedFollowUp struct {
	Date       string
	Status     string
	Value      float64
	LossReason *string
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	logrus.Info("Conexão estabelecida com sucesso")

	createSchema(ctx, conn)

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		seedDemoData(ctx, conn, cfg.Seller.Name)
	}
}

func createSchema(ctx context.Context, conn *postgres.Connection) {
	startTime := time.Now()

	for i, statement := range schema {
		if _, err := conn.ExecContext(ctx, statement); err != nil {
			logrus.WithError(err).WithField("statement", i+1).Fatal("Erro ao criar schema")
		}
	}

	logrus.WithField("elapsed", time.Since(startTime).String()).Info("Schema criado")
}

func seedDemoData(ctx context.Context, conn *postgres.Connection, seller string) {
	lost := string(domain.LossReasonLowerPrice)

	visits := []seedVisit{
		{
			Date: "2024-01-02", Address: "Av. Paulista, 1000, São Paulo", Lat: -23.56503, Lng: -46.65191,
			Company: "Construtora Horizonte", Segment: string(domain.SegmentContractors),
			Responsible: string(domain.ResponsibleCivilEngineer), Stage: string(domain.StageInitial),
			Classification: string(domain.ClassificationStrong), Contact: "(11) 99999-0000",
			FollowUps: []seedFollowUp{
				{Date: "2024-01-05", Status: string(domain.FollowUpStatusQuote), Value: 0},
				{Date: "2024-01-10", Status: string(domain.FollowUpStatusDealClosed), Value: 3500},
			},
		},
		{
			Date: "2024-01-03", Address: "Rua XV de Novembro, 200, Curitiba", Lat: -25.42905, Lng: -49.27130,
			Company: "Condomínio Jardim das Flores", Segment: string(domain.SegmentCondominium),
			Responsible: string(domain.ResponsibleTrustee), Stage: string(domain.StageRenovation),
			Competition: "Loja do bairro", Classification: string(domain.ClassificationMedium),
			FollowUps: []seedFollowUp{
				{Date: "2024-01-08", Status: string(domain.FollowUpStatusNoResponse), Value: 0, LossReason: &lost},
			},
		},
		{
			Date: "2024-01-04", Address: "Rua da Bahia, 50, Belo Horizonte",
			Company: "Studio Arq", Segment: string(domain.SegmentArchitecture),
			Responsible: string(domain.ResponsibleArchitect), Stage: string(domain.StageIntermediate),
			Classification: string(domain.ClassificationWeak), Observation: "Retornar em fevereiro",
		},
	}

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, v := range visits {
			var lat, lng sql.NullFloat64
			if v.Lat != 0 || v.Lng != 0 {
				lat = sql.NullFloat64{Float64: v.Lat, Valid: true}
				lng = sql.NullFloat64{Float64: v.Lng, Valid: true}
			}

			var id int64
			err := tx.QueryRowContext(ctx,
				`INSERT INTO visitas (data, endereco, lat, lng, empresa, segmento, responsavel, estagio,
					concorrencia, classificacao, contato, obs, fotos, vendedor)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`,
				v.Date, v.Address, lat, lng, v.Company, v.Segment, v.Responsible, v.Stage,
				v.Competition, v.Classification, v.Contact, v.Observation, pq.Array([]string{}), seller,
			).Scan(&id)
			if err != nil {
				return err
			}

			for _, f := range v.FollowUps {
				var lossReason sql.NullString
				if f.LossReason != nil {
					lossReason = sql.NullString{String: *f.LossReason, Valid: true}
				}

				if _, err := tx.ExecContext(ctx,
					`INSERT INTO followups (visita_id, data, status, valor, motivo_perda) VALUES ($1, $2, $3, $4, $5)`,
					id, f.Date, f.Status, f.Value, lossReason,
				); err != nil {
					return err
				}
			}

			logrus.WithFields(logrus.Fields{
				"visit_id":      id,
				"visit_company": v.Company,
				"followups":     len(v.FollowUps),
			}).Info("Visita de demonstração inserida")
		}

		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir dados de demonstração, transação revertida")
	}

	logrus.WithField("visits", len(visits)).Info("Carga de demonstração concluída")
}
