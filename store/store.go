// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"time"

	"github.com/cpmech/clusterdyn/engine"
	"github.com/cpmech/clusterdyn/material"
	"github.com/cpmech/clusterdyn/reactor"
	"github.com/cpmech/gosl/chk"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	_ "github.com/lib/pq"
)

// Store is a thin wrapper over a SQL database holding materials,
// reactors, runs, and per-run snapshot history.
type Store struct {
	db *sqlx.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS materials (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	i_migration DOUBLE PRECISION NOT NULL,
	v_migration DOUBLE PRECISION NOT NULL,
	lattice_param DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS reactors (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	flux DOUBLE PRECISION NOT NULL,
	temperature_kelvin DOUBLE PRECISION NOT NULL
);

CREATE TABLE IF NOT EXISTS runs (
	id UUID PRIMARY KEY,
	material_id INTEGER NOT NULL REFERENCES materials(id),
	reactor_id INTEGER NOT NULL REFERENCES reactors(id),
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS snapshots (
	run_id UUID NOT NULL REFERENCES runs(id),
	seq INTEGER NOT NULL,
	time DOUBLE PRECISION NOT NULL,
	dpa DOUBLE PRECISION NOT NULL,
	dislocation_density DOUBLE PRECISION NOT NULL,
	interstitials BYTEA NOT NULL,
	vacancies BYTEA NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (run_id, seq)
);
`

// Open connects to a PostgreSQL database via the given DSN and ensures
// the schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, chk.Err("cannot connect to persistence database: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, chk.Err("cannot ensure persistence schema: %v", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// SaveMaterial inserts m and returns its new opaque integer id, matching
// spec.md §6's "keyed by opaque integer ids."
func (s *Store) SaveMaterial(m *material.Material) (int64, error) {
	var id int64
	err := s.db.QueryRow(
		`INSERT INTO materials (name, i_migration, v_migration, lattice_param) VALUES ($1,$2,$3,$4) RETURNING id`,
		m.Name, m.IMigration, m.VMigration, m.LatticeParameter(),
	).Scan(&id)
	if err != nil {
		return 0, chk.Err("cannot save material: %v", err)
	}
	m.ID = id
	return id, nil
}

// SaveReactor inserts r and returns its new opaque integer id.
func (s *Store) SaveReactor(r *reactor.Reactor) (int64, error) {
	var id int64
	err := s.db.QueryRow(
		`INSERT INTO reactors (name, flux, temperature_kelvin) VALUES ($1,$2,$3) RETURNING id`,
		r.Name, r.Flux, r.TemperatureKelvin,
	).Scan(&id)
	if err != nil {
		return 0, chk.Err("cannot save reactor: %v", err)
	}
	r.ID = id
	return id, nil
}

// StartRun creates a new run associated with the given material and
// reactor ids and returns its id.
func (s *Store) StartRun(materialID, reactorID int64) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, material_id, reactor_id, created_at) VALUES ($1,$2,$3,$4)`,
		id, materialID, reactorID, time.Now().UTC(),
	)
	if err != nil {
		return uuid.Nil, chk.Err("cannot start run: %v", err)
	}
	return id, nil
}

// AppendSnapshot stores one snapshot in a run's history. seq orders
// snapshots within the run.
func (s *Store) AppendSnapshot(runID uuid.UUID, seq int, snap engine.Snapshot) error {
	iBlob, err := encodeBlob(snap.Interstitials)
	if err != nil {
		return err
	}
	vBlob, err := encodeBlob(snap.Vacancies)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO snapshots (run_id, seq, time, dpa, dislocation_density, interstitials, vacancies, recorded_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		runID, seq, snap.Time, snap.Dpa, snap.DislocationDensity, iBlob, vBlob, time.Now().UTC(),
	)
	if err != nil {
		return chk.Err("cannot append snapshot: %v", err)
	}
	return nil
}

// snapshotRow mirrors the snapshots table for sqlx scanning.
type snapshotRow struct {
	Time               float64 `db:"time"`
	Dpa                float64 `db:"dpa"`
	DislocationDensity float64 `db:"dislocation_density"`
	Interstitials      []byte  `db:"interstitials"`
	Vacancies          []byte  `db:"vacancies"`
}

// History returns every snapshot recorded for a run, ordered by seq,
// decoded back into engine.Snapshot values.
func (s *Store) History(runID uuid.UUID) ([]engine.Snapshot, error) {
	var rows []snapshotRow
	err := s.db.Select(&rows,
		`SELECT time, dpa, dislocation_density, interstitials, vacancies
		 FROM snapshots WHERE run_id = $1 ORDER BY seq ASC`, runID)
	if err != nil {
		return nil, chk.Err("cannot read run history: %v", err)
	}
	out := make([]engine.Snapshot, len(rows))
	for i, row := range rows {
		ci, err := decodeBlob(row.Interstitials)
		if err != nil {
			return nil, err
		}
		cv, err := decodeBlob(row.Vacancies)
		if err != nil {
			return nil, err
		}
		out[i] = engine.Snapshot{
			Time:               row.Time,
			Dpa:                row.Dpa,
			DislocationDensity: row.DislocationDensity,
			Interstitials:      ci,
			Vacancies:          cv,
		}
	}
	return out, nil
}
