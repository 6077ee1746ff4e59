package sqlstore

import (
	"errors"

	"gorm.io/gorm"

	"jobboard-service/internal/domain"
)

// translate maps storage errors that carry domain meaning. TranslateError
// must be enabled on the *gorm.DB for duplicate keys to be recognised.
func translate(err error, conflictMessage string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.Wrap(domain.KindConflict, conflictMessage, err)
	}
	return err
}
