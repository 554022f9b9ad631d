// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for accounts, the product catalog and
// orders on top of database/sql.
//
// Two drivers are supported: PostgreSQL through pgx ("pgx") and SQLite
// through mattn/go-sqlite3 ("sqlite3"). Queries are built with squirrel,
// whose placeholder format is chosen per dialect, so every repository runs
// unchanged on both. Driver specific error codes are translated into the
// sentinel errors of this package by an [ErrorClassificator].
package store
