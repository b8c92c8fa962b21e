package auth

// SnapshotStore es el puerto del almacenamiento durable clave-valor donde
// vive el snapshot de sesión (el análogo del local storage del navegador).
// Lo implementa infrastructure/localstore sobre SQLite embebido.
type SnapshotStore interface {
	// Get devuelve el valor y si la clave existe.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	// Delete elimina las claves dadas; las inexistentes se ignoran.
	Delete(keys ...string) error
}
