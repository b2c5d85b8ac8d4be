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
	"regexp"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const (
	dfltPort        = 5432
	dfltPoolSize    = 4
	dfltTablePrefix = "distread"
)

var tablePrefixRx = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

type DBConf struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Name     string `json:"name"`
	User     string `json:"user"`
	Password string `json:"password"`
	PoolSize int    `json:"poolSize"`

	// TablePrefix is used for all the created tables
	// (e.g. `distread_texts`). Only lowercase identifiers
	// are accepted as the value is not quoted in DDL.
	TablePrefix string `json:"tablePrefix"`
}

func (conf *DBConf) ValidateAndDefaults(confContext string) error {
	if conf.Host == "" {
		return fmt.Errorf("missing `%s.host`", confContext)
	}
	if conf.Name == "" {
		return fmt.Errorf("missing `%s.name`", confContext)
	}
	if conf.User == "" {
		return fmt.Errorf("missing `%s.user`", confContext)
	}
	if conf.Port == 0 {
		conf.Port = dfltPort
		log.Warn().Msgf("%s.port not specified, using default: %d", confContext, conf.Port)
	}
	if conf.PoolSize == 0 {
		conf.PoolSize = dfltPoolSize
		log.Warn().Msgf("%s.poolSize not specified, using default: %d", confContext, conf.PoolSize)
	}
	if conf.TablePrefix == "" {
		conf.TablePrefix = dfltTablePrefix
		log.Warn().Msgf(
			"%s.tablePrefix not specified, using default: %s", confContext, conf.TablePrefix)
	}
	if !tablePrefixRx.MatchString(conf.TablePrefix) {
		return fmt.Errorf("invalid `%s.tablePrefix`: %s", confContext, conf.TablePrefix)
	}
	return nil
}

func (conf *DBConf) DSN() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%d dbname=%s sslmode=disable pool_max_conns=%d",
		conf.User, conf.Password, conf.Host, conf.Port, conf.Name, conf.PoolSize,
	)
}

func OpenPool(ctx context.Context, conf *DBConf) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, conf.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database %s@%s: %w", conf.Name, conf.Host, err)
	}
	return pool, nil
}
