package repositories

import "context"

// Store groups the repositories that share one database handle.
// WithinTx runs fn against repositories bound to a single transaction;
// returning an error from fn rolls it back.
type Store interface {
	Users() UserRepository
	Jobs() JobRepository
	Skills() SkillRepository
	Applications() ApplicationRepository
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}
