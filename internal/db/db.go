package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"shipment-generator/internal/shipment"
)

func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// EnsureDatabase creates the database named in dsn when it does not exist yet.
// It connects through the cluster's 'postgres' database to do so.
func EnsureDatabase(ctx context.Context, dsn string, log *zap.Logger) error {
	name, err := DBName(dsn)
	if err != nil {
		return err
	}
	rootDSN, err := WithDBName(dsn, "postgres")
	if err != nil {
		return fmt.Errorf("compose meta DSN: %w", err)
	}
	meta, err := Open(rootDSN)
	if err != nil {
		return fmt.Errorf("db open (meta): %w", err)
	}
	defer meta.Close()
	if err := Ping(ctx, meta); err != nil {
		return fmt.Errorf("db ping (meta): %w", err)
	}

	var exists bool
	q := `SELECT EXISTS (SELECT 1 FROM pg_database WHERE datname = $1)`
	if err := meta.QueryRowContext(ctx, q, name).Scan(&exists); err != nil {
		return fmt.Errorf("lookup database %q: %w", name, err)
	}
	if exists {
		return nil
	}
	// CREATE DATABASE cannot take a bind parameter
	if _, err := meta.ExecContext(ctx, "CREATE DATABASE "+quoteIdent(name)); err != nil {
		return fmt.Errorf("create database %q: %w", name, err)
	}
	log.Info("created database", zap.String("database", name))
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS shipments (
		profile TEXT NOT NULL,
		id TEXT NOT NULL,
		company TEXT NOT NULL,
		status TEXT NOT NULL,
		progress INTEGER NOT NULL,
		departure_time TIMESTAMP NOT NULL,
		estimated_arrival_time TIMESTAMP NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		estimated_duration_hours DOUBLE PRECISION NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		document JSONB NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (profile, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shipments_profile_status ON shipments (profile, status)`,
}

func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}
	return nil
}

const upsertShipment = `
INSERT INTO shipments (
	profile, id, company, status, progress,
	departure_time, estimated_arrival_time,
	distance_km, estimated_duration_hours,
	origin, destination, document, generated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
ON CONFLICT (profile, id) DO UPDATE SET
	company = EXCLUDED.company,
	status = EXCLUDED.status,
	progress = EXCLUDED.progress,
	departure_time = EXCLUDED.departure_time,
	estimated_arrival_time = EXCLUDED.estimated_arrival_time,
	distance_km = EXCLUDED.distance_km,
	estimated_duration_hours = EXCLUDED.estimated_duration_hours,
	origin = EXCLUDED.origin,
	destination = EXCLUDED.destination,
	document = EXCLUDED.document,
	generated_at = EXCLUDED.generated_at`

// InsertShipments upserts the whole collection in one transaction and
// returns the number of rows written.
func InsertShipments(ctx context.Context, db *sql.DB, profile string, shipments []shipment.Shipment) (int, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("insert shipments: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, upsertShipment)
	if err != nil {
		return 0, fmt.Errorf("insert shipments: prepare: %w", err)
	}
	defer stmt.Close()

	for _, s := range shipments {
		args, err := shipmentArgs(profile, s)
		if err != nil {
			return 0, err
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("insert shipments: id=%s: %w", s.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("insert shipments: commit tx: %w", err)
	}
	return len(shipments), nil
}

func shipmentArgs(profile string, s shipment.Shipment) ([]any, error) {
	doc, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode shipment %s: %w", s.ID, err)
	}
	return []any{
		profile, s.ID, s.Company, string(s.Status), s.Progress,
		s.DepartureTime.Time, s.EstimatedArrivalTime.Time,
		s.DistanceKm, s.EstimatedDurationHours,
		s.Origin.Name, s.Destination.Name, string(doc),
	}, nil
}
