package database

// MaxQueryParams bounds the number of placeholders bound in a single
// statement. SQLite builds before 3.32 reject more than 999.
const MaxQueryParams = 500

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// chunkKeys removes duplicates from keys, keeping first occurrences, and
// splits the result into slices of at most size elements.
func chunkKeys(keys []string, size int) [][]string {
	seen := make(map[string]struct{}, len(keys))
	unique := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		unique = append(unique, k)
	}

	var chunks [][]string
	for len(unique) > 0 {
		n := min(size, len(unique))
		chunks = append(chunks, unique[:n])
		unique = unique[n:]
	}
	return chunks
}
