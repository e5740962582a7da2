package rule

import (
	"errors"
	"strings"

	ruleerrors "go-integration/internal/rule/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ruleerrors.ErrRuleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_integration_rule_name" {
			return ruleerrors.ErrRuleNameExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_integration_rule_name") {
		return ruleerrors.ErrRuleNameExists
	}

	return err
}
