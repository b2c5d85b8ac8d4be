// Copyright 2025 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2025 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	"github.com/technical-communicator/American-Transcendentalism/engine"
)

const (
	bulkInsertChunkSize   = 500
	defaultWordColumnSize = 300
)

// ReportDatabase writes analysis reports into PostgreSQL.
// Rows of different runs are distinguished by `run_id`.
type ReportDatabase struct {
	db     *pgxpool.Pool
	prefix string
	ctx    context.Context
}

func (rdb *ReportDatabase) tableName(table string) string {
	return fmt.Sprintf("%s_%s", rdb.prefix, table)
}

func (rdb *ReportDatabase) tableDDL() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			run_id varchar(40) NOT NULL,
			text_id varchar(100) NOT NULL,
			title text NOT NULL,
			author text NOT NULL,
			year int NOT NULL,
			gutenberg_id int NOT NULL,
			total_words int NOT NULL,
			total_sentences int NOT NULL,
			unique_words int NOT NULL,
			filtered_tokens int NOT NULL,
			lexical_diversity double precision NOT NULL,
			avg_sentence_length double precision NOT NULL,
			sentiment_compound double precision NOT NULL,
			sentiment_positive double precision NOT NULL,
			sentiment_neutral double precision NOT NULL,
			sentiment_negative double precision NOT NULL,
			sentiment_overall varchar(20) NOT NULL,
			sentences_analyzed int NOT NULL,
			PRIMARY KEY (run_id, text_id)
		)`, rdb.tableName("texts")),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			run_id varchar(40) NOT NULL,
			text_id varchar(100) NOT NULL,
			rank int NOT NULL,
			word varchar(%d) NOT NULL,
			freq int NOT NULL,
			PRIMARY KEY (run_id, text_id, rank)
		)`, rdb.tableName("word_freqs"), defaultWordColumnSize),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			run_id varchar(40) NOT NULL,
			text_id varchar(100) NOT NULL,
			rank int NOT NULL,
			word varchar(%d) NOT NULL,
			score int NOT NULL,
			PRIMARY KEY (run_id, text_id, rank)
		)`, rdb.tableName("distinctive"), defaultWordColumnSize),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			run_id varchar(40) NOT NULL,
			text_id varchar(100) NOT NULL,
			other_text_id varchar(100) NOT NULL,
			shared_words int NOT NULL,
			overlap_percentage double precision NOT NULL,
			PRIMARY KEY (run_id, text_id, other_text_id)
		)`, rdb.tableName("overlap")),
	}
}

func (rdb *ReportDatabase) tables() []string {
	return []string{
		rdb.tableName("texts"),
		rdb.tableName("word_freqs"),
		rdb.tableName("distinctive"),
		rdb.tableName("overlap"),
	}
}

// InitializeDB creates all the report tables. With force, existing
// tables are dropped first.
func (rdb *ReportDatabase) InitializeDB(force bool) error {
	tx, err := rdb.db.Begin(rdb.ctx)
	if err != nil {
		return err
	}
	if force {
		log.Info().Msg("dropping existing tables (requested by the -f arg.)")
		for _, table := range rdb.tables() {
			if _, err := tx.Exec(rdb.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
				tx.Rollback(rdb.ctx)
				return fmt.Errorf("failed to DROP table %s: %w", table, err)
			}
		}
	}
	log.Info().Msg("creating tables")
	for i, ddl := range rdb.tableDDL() {
		if _, err := tx.Exec(rdb.ctx, ddl); err != nil {
			tx.Rollback(rdb.ctx)
			return fmt.Errorf("failed to CREATE table %s: %w", rdb.tables()[i], err)
		}
	}
	if err := tx.Commit(rdb.ctx); err != nil {
		tx.Rollback(rdb.ctx)
		return err
	}
	return nil
}

func (rdb *ReportDatabase) copyTable(tx pgx.Tx, data *TableRows) error {
	table := rdb.tableName(data.Table)
	for _, chunk := range chunkRows(data.Rows, bulkInsertChunkSize) {
		copyCount, err := tx.CopyFrom(
			rdb.ctx,
			pgx.Identifier{table},
			data.Cols,
			pgx.CopyFromRows(chunk),
		)
		if err != nil {
			return fmt.Errorf("failed to write into %s: %w", table, err)
		}
		log.Debug().Str("table", table).Int64("items", copyCount).Msg("written bulk into database")
	}
	return nil
}

// StoreReport writes all the report data in a single transaction.
// Previously stored rows of the same run are replaced.
func (rdb *ReportDatabase) StoreReport(report *engine.Report) error {
	if report.Metadata.RunID == "" {
		return fmt.Errorf("cannot store report without run_id")
	}
	tx, err := rdb.db.Begin(rdb.ctx)
	if err != nil {
		return err
	}
	for _, table := range rdb.tables() {
		_, err := tx.Exec(
			rdb.ctx,
			fmt.Sprintf("DELETE FROM %s WHERE run_id = @runId", table),
			pgx.NamedArgs{"runId": report.Metadata.RunID},
		)
		if err != nil {
			tx.Rollback(rdb.ctx)
			return fmt.Errorf("failed to clean up %s: %w", table, err)
		}
	}

	log.Info().Str("runId", report.Metadata.RunID).Msg("writing data into database")
	t0 := time.Now()
	for _, data := range ReportRows(report) {
		if err := rdb.copyTable(tx, data); err != nil {
			tx.Rollback(rdb.ctx)
			return err
		}
	}
	if err := tx.Commit(rdb.ctx); err != nil {
		return err
	}
	log.Info().Float64("durationSec", time.Since(t0).Seconds()).Msg("...writing done")
	return nil
}

// NewReportDatabase
// note: the lifecycle of the instance
// is "per job"
func NewReportDatabase(ctx context.Context, db *pgxpool.Pool, tablePrefix string) *ReportDatabase {
	return &ReportDatabase{
		db:     db,
		prefix: tablePrefix,
		ctx:    ctx,
	}
}
