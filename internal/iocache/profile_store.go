package iocache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql" // MySQL driver
	"github.com/huangsam/crs/internal/contract"
	"github.com/huangsam/crs/schema"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // SQLite driver
)

// Table names created by the embedded migrations.
const (
	profilesTable = "crs_profiles"
	metaTable     = "crs_store_meta"
	migrateTable  = "schema_migrations"
)

// metaRuleSet records which rule set last wrote the profiles.
const metaRuleSet = "rule_set"

// SQLProfileStore keeps the comparison set in a relational database.
type SQLProfileStore struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	connStr string
	now     func() time.Time
}

var _ contract.ProfileStore = &SQLProfileStore{} // Compile-time check

// openSQL opens and pings a database for one of the SQL backends.
func openSQL(backend schema.DatabaseBackend, connStr string) (*sql.DB, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create profile store directory for %q: %w", dbPath, err)
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=mysecretpassword dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	default:
		return nil, fmt.Errorf("unsupported SQL backend: %s", backend)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}
	return db, nil
}

// NewSQLProfileStore opens a SQL-backed store and migrates it to the latest schema.
func NewSQLProfileStore(backend schema.DatabaseBackend, connStr string) (*SQLProfileStore, error) {
	db, err := openSQL(backend, connStr)
	if err != nil {
		return nil, err
	}
	if err := migrateToLatest(db, backend); err != nil {
		_ = db.Close()
		return nil, err
	}
	return newSQLProfileStore(db, backend, connStr), nil
}

// newSQLProfileStore wraps an already migrated database.
func newSQLProfileStore(db *sql.DB, backend schema.DatabaseBackend, connStr string) *SQLProfileStore {
	return &SQLProfileStore{db: db, backend: backend, connStr: connStr, now: time.Now}
}

// placeholders returns n comma-separated bind parameters for the backend.
func (ps *SQLProfileStore) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if ps.backend == schema.PostgreSQLBackend {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// getMetaUpsertQuery returns the UPSERT query for the meta table.
func (ps *SQLProfileStore) getMetaUpsertQuery() string {
	switch ps.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (meta_key, meta_value, updated_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE meta_value = new.meta_value, updated_at = new.updated_at`, metaTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (meta_key, meta_value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (meta_key) DO UPDATE SET meta_value = EXCLUDED.meta_value, updated_at = EXCLUDED.updated_at`, metaTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (meta_key, meta_value, updated_at) VALUES (?, ?, ?)`, metaTable)
	}
}

// Load returns the stored profiles in their saved order, or the defaults when the table is empty.
func (ps *SQLProfileStore) Load(ctx context.Context) ([]schema.ProfileInput, error) {
	query := fmt.Sprintf(`SELECT profile_name, profile_inputs FROM %s ORDER BY sort_order`, profilesTable)
	rows, err := ps.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var profiles []schema.ProfileInput
	for rows.Next() {
		var name, raw string
		if err := rows.Scan(&name, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		var in schema.ApplicantInput
		if err := json.Unmarshal([]byte(raw), &in); err != nil {
			return nil, fmt.Errorf("failed to decode inputs of profile %q: %w", name, err)
		}
		profiles = append(profiles, schema.ProfileInput{Name: name, Inputs: in.Normalize()})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profiles: %w", err)
	}

	if len(profiles) == 0 {
		return schema.DefaultProfileInputs(), nil
	}
	return profiles, nil
}

// Save replaces every stored profile inside a single transaction.
func (ps *SQLProfileStore) Save(ctx context.Context, profiles []schema.ProfileInput) error {
	if err := schema.ValidateProfileSet(profiles); err != nil {
		return err
	}

	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, profilesTable)); err != nil {
		return fmt.Errorf("failed to clear profiles: %w", err)
	}

	ts := ps.now().Unix()
	insert := fmt.Sprintf(`INSERT INTO %s (profile_name, sort_order, profile_inputs, updated_at) VALUES (%s)`,
		profilesTable, ps.placeholders(4))
	for i, p := range profiles {
		raw, err := json.Marshal(p.Inputs)
		if err != nil {
			return fmt.Errorf("failed to encode inputs of profile %q: %w", p.Name, err)
		}
		if _, err := tx.ExecContext(ctx, insert, strings.TrimSpace(p.Name), i, string(raw), ts); err != nil {
			return fmt.Errorf("failed to insert profile %q: %w", p.Name, err)
		}
	}

	if _, err := tx.ExecContext(ctx, ps.getMetaUpsertQuery(), metaRuleSet, schema.RuleSetVersion, ts); err != nil {
		return fmt.Errorf("failed to record rule set: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit profiles: %w", err)
	}
	contract.Logger().Debug("saved profiles", zap.String("backend", string(ps.backend)), zap.Int("count", len(profiles)))
	return nil
}

// Reset deletes every stored profile and returns the defaults.
func (ps *SQLProfileStore) Reset(ctx context.Context) ([]schema.ProfileInput, error) {
	if _, err := ps.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, profilesTable)); err != nil {
		return nil, fmt.Errorf("failed to reset profiles: %w", err)
	}
	return schema.DefaultProfileInputs(), nil
}

// Close closes the underlying DB connection.
func (ps *SQLProfileStore) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

// location describes where the data lives without leaking credentials.
func (ps *SQLProfileStore) location() string {
	switch ps.backend {
	case schema.SQLiteBackend:
		if ps.connStr == "" {
			return contract.GetDBFilePath()
		}
		return ps.connStr
	case schema.MySQLBackend:
		if cfg, err := mysql.ParseDSN(ps.connStr); err == nil {
			return fmt.Sprintf("%s/%s", cfg.Addr, cfg.DBName)
		}
	case schema.PostgreSQLBackend:
		var host, dbName string
		for field := range strings.FieldsSeq(ps.connStr) {
			key, value, _ := strings.Cut(field, "=")
			switch key {
			case "host":
				host = value
			case "dbname":
				dbName = value
			}
		}
		return fmt.Sprintf("%s/%s", host, dbName)
	}
	return string(ps.backend)
}

// GetStatus returns status information about the profile store.
func (ps *SQLProfileStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:   string(ps.backend),
		Connected: ps.db != nil,
		Location:  ps.location(),
	}
	if ps.db == nil {
		return status, nil
	}

	row := ps.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*), COALESCE(MAX(updated_at), 0) FROM %s`, profilesTable))
	var lastTs int64
	if err := row.Scan(&status.TotalProfiles, &lastTs); err != nil {
		return status, fmt.Errorf("failed to count profiles: %w", err)
	}
	if lastTs > 0 {
		status.LastUpdated = time.Unix(lastTs, 0)
	}

	row = ps.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT version FROM %s LIMIT 1`, migrateTable))
	if err := row.Scan(&status.SchemaVersion); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return status, fmt.Errorf("failed to read schema version: %w", err)
	}

	row = ps.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT meta_value FROM %s WHERE meta_key = %s`, metaTable, ps.placeholders(1)), metaRuleSet)
	if err := row.Scan(&status.RuleSet); err != nil && !errors.Is(err, sql.ErrNoRows) {
		return status, fmt.Errorf("failed to read rule set: %w", err)
	}

	status.SizeBytes = ps.tableSize(ctx, status.TotalProfiles)
	return status, nil
}

// tableSize estimates the storage used by the profiles table.
func (ps *SQLProfileStore) tableSize(ctx context.Context, rows int) int64 {
	estimate := int64(rows) * 1000 // Rough estimate
	var size int64
	var err error

	switch ps.backend {
	case schema.SQLiteBackend:
		row := ps.db.QueryRowContext(ctx, "SELECT page_count * page_size FROM pragma_page_count(), pragma_page_size()")
		err = row.Scan(&size)

	case schema.MySQLBackend:
		cfg, parseErr := mysql.ParseDSN(ps.connStr)
		if parseErr != nil || cfg.DBName == "" {
			return estimate
		}
		row := ps.db.QueryRowContext(ctx,
			"SELECT data_length + index_length FROM information_schema.tables WHERE table_schema = ? AND table_name = ?",
			cfg.DBName, profilesTable)
		err = row.Scan(&size)

	case schema.PostgreSQLBackend:
		row := ps.db.QueryRowContext(ctx, "SELECT pg_total_relation_size($1)", profilesTable)
		err = row.Scan(&size)

	default:
		return estimate
	}

	if err != nil {
		return estimate
	}
	return size
}
