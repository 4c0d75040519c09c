// Package sqlite implements the ChunkStore port on an embedded SQLite
// database. Embeddings are stored as little-endian float32 blobs next
// to the chunk text and metadata; similarity search is an exhaustive
// cosine scan over the stored vectors, which is adequate for the
// corpus sizes this pipeline targets.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/binary"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Isha3007/Gov-chatbot/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/Isha3007/Gov-chatbot/internal/core/domain"
	"github.com/Isha3007/Gov-chatbot/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ChunkStore = (*Store)(nil)

// dbFileName is the database file created inside the store directory.
const dbFileName = "chunks.db"

// Store is the SQLite-backed chunk store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the store under dataDir.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("%w: store directory is required", domain.ErrInvalidInput)
	}

	if err := os.MkdirAll(dataDir, 0o700); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// WAL mode for readers concurrent with the single ingestion writer.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: dbPath}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Inventory scans all persisted chunk IDs and content hashes. A fresh
// store yields an empty inventory.
func (s *Store) Inventory(ctx context.Context) (*domain.StoreInventory, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, sha256 FROM chunks")
	if err != nil {
		return nil, fmt.Errorf("scanning inventory: %w", err)
	}
	defer rows.Close()

	inv := domain.NewStoreInventory()
	for rows.Next() {
		var id, hash string
		if err := rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		inv.Add(id, hash)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading inventory rows: %w", err)
	}

	return inv, nil
}

// Count returns the number of persisted chunks.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	row := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks")
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return n, nil
}

// Upsert writes the chunks in one transaction, keyed by chunk ID. An
// existing row with the same ID is replaced.
func (s *Store) Upsert(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO chunks (id, document_id, source, source_type, page, title, position, content, sha256, embedding)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			document_id = excluded.document_id,
			source      = excluded.source,
			source_type = excluded.source_type,
			page        = excluded.page,
			title       = excluded.title,
			position    = excluded.position,
			content     = excluded.content,
			sha256      = excluded.sha256,
			embedding   = excluded.embedding
	`)
	if err != nil {
		return fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	for i := range chunks {
		c := &chunks[i]
		_, err := stmt.ExecContext(ctx,
			c.ID, c.DocumentID, c.Source, string(c.SourceType), c.Page,
			c.Title, c.Position, c.Content, c.SHA256,
			float32SliceToBytes(c.Embedding),
		)
		if err != nil {
			return fmt.Errorf("upserting chunk %s: %w", c.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing upsert: %w", err)
	}
	return nil
}

// Search returns up to k chunks nearest the query embedding by cosine
// similarity, closest first. An empty store returns an empty slice.
func (s *Store) Search(ctx context.Context, embedding []float32, k int) ([]domain.RetrievedChunk, error) {
	if k <= 0 || len(embedding) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, source, source_type, page, title, position, content, sha256, embedding
		FROM chunks
		WHERE embedding IS NOT NULL
	`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var results []domain.RetrievedChunk
	for rows.Next() {
		chunk, err := scanChunk(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.RetrievedChunk{
			Chunk: *chunk,
			Score: cosineSimilarity(embedding, chunk.Embedding),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading chunk rows: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > k {
		results = results[:k]
	}
	return results, nil
}

// migrate runs all pending .up.sql migrations in lexical order.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for i, name := range upFiles {
		version := i + 1
		if version <= currentVersion {
			continue
		}

		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// scanChunk reads one chunk row including its embedding blob.
func scanChunk(rows *sql.Rows) (*domain.Chunk, error) {
	var c domain.Chunk
	var sourceType string
	var blob []byte

	err := rows.Scan(&c.ID, &c.DocumentID, &c.Source, &sourceType, &c.Page,
		&c.Title, &c.Position, &c.Content, &c.SHA256, &blob)
	if err != nil {
		return nil, fmt.Errorf("scanning chunk row: %w", err)
	}

	c.SourceType = domain.SourceType(sourceType)
	c.Embedding = bytesToFloat32Slice(blob)
	return &c, nil
}

// float32SliceToBytes encodes a vector as a little-endian blob.
// A nil or empty vector encodes as nil so the column stays NULL.
func float32SliceToBytes(floats []float32) []byte {
	if len(floats) == 0 {
		return nil
	}
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice decodes a little-endian blob back into a vector.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 || len(data)%4 != 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}

// cosineSimilarity computes the cosine of the angle between two
// vectors. Mismatched or zero-norm vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
