package analytics

import (
	"fmt"

	"github.com/jhoicas/pdv-api/internal/domain"
)

var errInvalidPeriod = fmt.Errorf("%w: period debe ser today, week o month", domain.ErrInvalidInput)
