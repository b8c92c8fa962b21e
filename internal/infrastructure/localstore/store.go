// Package localstore implementa el snapshot durable clave-valor de sesión
// sobre SQLite embebido: un archivo local al perfil, sin servidor, que
// sobrevive reinicios del proceso igual que el local storage del navegador.
package localstore

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS session_store (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store snapshot clave-valor respaldado por un archivo SQLite.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) el archivo en path y asegura el esquema.
// Acepta ":memory:" para tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("localstore: abrir %s: %w", path, err)
	}
	// SQLite embebido: una sola conexión evita bloqueos de escritura.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("localstore: crear esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get devuelve el valor de la clave y si existe.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM session_store WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("localstore: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set escribe la clave (upsert).
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO session_store (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("localstore: set %s: %w", key, err)
	}
	return nil
}

// Delete elimina las claves dadas; las inexistentes se ignoran.
func (s *Store) Delete(keys ...string) error {
	for _, k := range keys {
		if _, err := s.db.Exec(`DELETE FROM session_store WHERE key = ?`, k); err != nil {
			return fmt.Errorf("localstore: delete %s: %w", k, err)
		}
	}
	return nil
}

// Close cierra el archivo subyacente.
func (s *Store) Close() error {
	return s.db.Close()
}
